package battleship

import "fmt"

// Side length of the square board
const GridSize int = 9

const PositionStateDefenceGridEmpty uint8 = 0

type Outcome uint8

const (
	OutcomeMiss Outcome = iota + 1
	OutcomeHit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// X is the row, Y is the column.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

func (c Coordinates) Step(d Direction) Coordinates {
	return Coordinates{X: c.X + d.DX, Y: c.Y + d.DY}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit step along one axis.
type Direction struct {
	DX int
	DY int
}

var (
	DirectionUp    = Direction{DX: -1, DY: 0}
	DirectionDown  = Direction{DX: 1, DY: 0}
	DirectionLeft  = Direction{DX: 0, DY: -1}
	DirectionRight = Direction{DX: 0, DY: 1}

	// Neighbors of a hit are always enqueued in this order
	neighborOrder = [4]Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}
)

func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Returns the unit direction from `from` to `to` if they share a row
// or a column.
func directionBetween(from, to Coordinates) (Direction, bool) {
	dx, dy := to.X-from.X, to.Y-from.Y
	if (dx == 0) == (dy == 0) {
		return Direction{}, false
	}
	return Direction{DX: sign(dx), DY: sign(dy)}, true
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

type Grid [][]uint8

// Creates a new default grid
// All indexes are zero/PositionStateDefenceGridEmpty
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]uint8, gridSize)
	}
	return grid
}
