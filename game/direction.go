package game

// Direction is the snake's facing
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// directionDeltas maps each facing to its unit step in screen coordinates (y grows downward)
var directionDeltas = [...][2]int{
	Up:    {0, -1},
	Right: {1, 0},
	Down:  {0, 1},
	Left:  {-1, 0},
}

var directionNames = [...]string{
	Up:    "up",
	Right: "right",
	Down:  "down",
	Left:  "left",
}

// Delta returns the unit vector for the direction
func (d Direction) Delta() (dx, dy int) {
	v := directionDeltas[d]
	return v[0], v[1]
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// Directions lists every facing in declaration order
func Directions() []Direction {
	return []Direction{Up, Right, Down, Left}
}
