package maze

// Dir is a movement direction.
type Dir int

const (
	DirNone Dir = iota
	DirUp
	DirLeft
	DirDown
	DirRight
)

// cardinals lists the four movement directions in enemy retry order.
var cardinals = [4]Dir{DirUp, DirLeft, DirDown, DirRight}

// Delta returns the unit step for the direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Horizontal reports whether d moves along the x axis.
func (d Dir) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirLeft:
		return "Left"
	case DirDown:
		return "Down"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}
