package types

// Direction is a cardinal heading. The encoding keeps Opposite a pure
// function: (d+2) mod 4.
type Direction int

const (
	Right Direction = iota
	Down
	Left
	Up
)

func (d Direction) Valid() bool {
	return d >= Right && d <= Up
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// ToPoint converts a Direction into a unit movement vector
func (d Direction) ToPoint() Point {
	switch d {
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Up:
		return Point{X: 0, Y: -1}
	default:
		return Point{X: 0, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	default:
		return "invalid"
	}
}
