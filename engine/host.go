package engine

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/input"
)

// Host pumps frames into a Loop at a fixed interval from a tcell screen
// Terminal events are read on a separate goroutine and handed over through a channel;
// the loop, keyboard and buffer are only touched by the goroutine calling Run
type Host struct {
	screen   tcell.Screen
	loop     *Loop
	keyboard *input.Keyboard
	buffer   *core.Buffer
	interval time.Duration

	events   chan tcell.Event
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewHost creates a host drawing frameRate frames per second, clamped to [1, FrameRateMax]
func NewHost(screen tcell.Screen, loop *Loop, keyboard *input.Keyboard, frameRate int) *Host {
	if frameRate < 1 {
		frameRate = 1
	}
	if frameRate > constants.FrameRateMax {
		frameRate = constants.FrameRateMax
	}

	w, h := screen.Size()
	return &Host{
		screen:   screen,
		loop:     loop,
		keyboard: keyboard,
		buffer:   core.NewBuffer(w, h),
		interval: time.Second / time.Duration(frameRate),
		events:   make(chan tcell.Event, constants.EventQueueSize),
		stopChan: make(chan struct{}),
	}
}

// Run blocks until the loop requests termination or Stop is called
func (h *Host) Run() {
	defer h.Stop()

	core.Go(h.pollEvents)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.stopChan:
			return
		case <-ticker.C:
			if !h.Step() {
				return
			}
		}
	}
}

// Stop ends Run; safe to call more than once
func (h *Host) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopChan)
	})
}

// Step drains pending events and renders one frame, returning false once the loop stops
func (h *Host) Step() bool {
	h.drainEvents()

	running := h.loop.Frame(h.keyboard, h.buffer)
	h.keyboard.EndFrame()

	h.buffer.FlushTo(h.screen)
	h.screen.Show()

	return running
}

// HandleEvent applies a single terminal event
func (h *Host) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		h.keyboard.Handle(ev)
	case *tcell.EventResize:
		w, hgt := h.screen.Size()
		h.buffer.Resize(w, hgt)
		h.screen.Sync()
	}
}

func (h *Host) drainEvents() {
	for {
		select {
		case ev := <-h.events:
			h.HandleEvent(ev)
		default:
			return
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or the host stops
func (h *Host) pollEvents() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case h.events <- ev:
		case <-h.stopChan:
			return
		}
	}
}
