package game

// Heading is the direction of travel, a closed set of four values
type Heading uint8

const (
	Up Heading = iota
	Down
	Left
	Right
)

// headingDelta is indexed by Heading; Y grows downwards in screen coordinates
var headingDelta = [...]Position{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

var headingNames = [...]string{
	Up:    "Up",
	Down:  "Down",
	Left:  "Left",
	Right: "Right",
}

// Delta returns the unit vector for one step in this heading
func (h Heading) Delta() Position {
	if int(h) >= len(headingDelta) {
		return Position{}
	}
	return headingDelta[h]
}

func (h Heading) String() string {
	if int(h) >= len(headingNames) {
		return "Unknown"
	}
	return headingNames[h]
}
