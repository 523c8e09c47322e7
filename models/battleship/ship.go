package battleship

// Ship lengths of a full fleet
var FleetSizes = []int{4, 3, 3, 2, 1}

// Number of hits needed to destroy the whole fleet
var FleetCells = fleetCells(FleetSizes)

func fleetCells(sizes []int) int {
	total := 0
	for _, s := range sizes {
		total += s
	}
	return total
}

type Ship struct {
	Origin     Coordinates `json:"origin"`
	Size       int         `json:"size"`
	Horizontal bool        `json:"horizontal"`
	hits       int
}

func NewShip(origin Coordinates, size int, horizontal bool) *Ship {
	return &Ship{
		Origin:     origin,
		Size:       size,
		Horizontal: horizontal,
	}
}

// Cells occupied by the ship, starting at the origin.
func (sh *Ship) Cells() []Coordinates {
	cells := make([]Coordinates, 0, sh.Size)
	step := DirectionDown
	if sh.Horizontal {
		step = DirectionRight
	}

	c := sh.Origin
	for i := 0; i < sh.Size; i++ {
		cells = append(cells, c)
		c = c.Step(step)
	}
	return cells
}

func (sh *Ship) GotHit() {
	sh.hits++
}

func (sh *Ship) IsSunk() bool {
	return sh.hits == sh.Size
}
