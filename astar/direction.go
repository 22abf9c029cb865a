package astar

// Direction is a cardinal heading on the grid. None marks the initial
// state, before any move has been made.
type Direction int8

const (
	// None is the heading of the start state.
	None Direction = iota
	// North moves toward row 0.
	North
	// East moves toward the last column.
	East
	// South moves toward the last row.
	South
	// West moves toward column 0.
	West
)

// Directions lists the four cardinal headings in clockwise order.
var Directions = [4]Direction{North, East, South, West}

// Maneuver classifies an ordered pair of headings.
type Maneuver int8

const (
	// Straight keeps the current heading.
	Straight Maneuver = iota
	// Turn switches to a perpendicular heading (or leaves the start state).
	Turn
	// Reverse is the exact opposite heading; it is never legal.
	Reverse
)

// Classify reports how moving from heading "from" to heading "to" is
// categorized. Leaving None is always a Turn.
func Classify(from, to Direction) Maneuver {
	switch {
	case from == None || to == None:
		return Turn
	case from == to:
		return Straight
	case from.Opposite() == to:
		return Reverse
	default:
		return Turn
	}
}

// Opposite returns the reverse heading; None is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}

	return None
}

// Delta returns the (dx, dy) unit step for d; (0,0) for None.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}

	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}

	return "-"
}

func (m Maneuver) String() string {
	switch m {
	case Straight:
		return "straight"
	case Turn:
		return "turn"
	case Reverse:
		return "reverse"
	}

	return "unknown"
}
