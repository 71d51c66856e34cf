package model

// Direction is a compass heading used while hunting a damaged ship
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions returns all headings in N, E, S, W order
func Directions() []Direction {
	return []Direction{North, East, South, West}
}

// Delta returns the row and column step for the direction
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}
