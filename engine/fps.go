package engine

import "time"

// FPSCounter counts frames per wall-clock second
// Count reports the frame rate measured over the previous window of at least one second
type FPSCounter struct {
	clock       TimeProvider
	windowStart time.Time
	frames      int
	count       int
}

// NewFPSCounter creates a counter whose first window starts now
func NewFPSCounter(clock TimeProvider) *FPSCounter {
	return &FPSCounter{
		clock:       clock,
		windowStart: clock.Now(),
	}
}

// Update records one frame
func (f *FPSCounter) Update() {
	now := f.clock.Now()
	elapsed := now.Sub(f.windowStart)
	if elapsed >= time.Second {
		// Normalized so a stalled window does not overstate the rate
		f.count = int(int64(f.frames) * int64(time.Second) / int64(elapsed))
		f.frames = 0
		f.windowStart = now
	}
	f.frames++
}

// Count returns the frames counted in the last completed second
func (f *FPSCounter) Count() int {
	return f.count
}
