package types

// Direction represents a cardinal direction
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// ToPoint converts a Direction into a unit movement vector.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

// IsVertical reports whether d is Up or Down.
func (d Direction) IsVertical() bool {
	return d == Up || d == Down
}

// IsHorizontal reports whether d is Left or Right.
func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

// SameAxis reports whether d and other move along the same axis.
func (d Direction) SameAxis(other Direction) bool {
	return d.IsVertical() == other.IsVertical()
}

// EyeOffsets returns the pixel offsets of the two eyes drawn on the head,
// relative to the head cell's top-left corner.
func (d Direction) EyeOffsets() (Point, Point) {
	switch d {
	case Left:
		return Point{X: 5, Y: 5}, Point{X: 5, Y: 20}
	case Up:
		return Point{X: 20, Y: 5}, Point{X: 5, Y: 5}
	case Down:
		return Point{X: 20, Y: 20}, Point{X: 5, Y: 20}
	default:
		return Point{X: 20, Y: 5}, Point{X: 20, Y: 20}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
