package battleship

import (
	"github.com/dolthub/swiss"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

const (
	maxShipPlacementTries  = 200
	maxFleetPlacementTries = 50
)

// AttackBoard is the view of a board the targeting engine needs.
type AttackBoard interface {
	Size() int
	InBounds(c Coordinates) bool
	IsAttacked(c Coordinates) bool
}

// Board holds the ship layout of one side together with the record of
// attacks made against it.
type Board struct {
	size       int
	fleetCells int
	// 0 means empty, otherwise index of the ship + 1
	cells   Grid
	ships   []*Ship
	attacks *swiss.Map[Coordinates, Outcome]
	hits    int
}

var _ AttackBoard = (*Board)(nil)

func NewBoard(size int, fleet []int) *Board {
	return &Board{
		size:       size,
		fleetCells: fleetCells(fleet),
		cells:      NewGrid(size),
		ships:      make([]*Ship, 0, len(fleet)),
		attacks:    swiss.NewMap[Coordinates, Outcome](uint32(size * size)),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(c Coordinates) bool {
	return c.X >= 0 && c.X < b.size && c.Y >= 0 && c.Y < b.size
}

func (b *Board) Ships() []*Ship {
	return b.ships
}

func (b *Board) IsOccupied(c Coordinates) bool {
	return b.InBounds(c) && b.cells[c.X][c.Y] != PositionStateDefenceGridEmpty
}

func (b *Board) ShipAt(c Coordinates) (*Ship, bool) {
	if !b.IsOccupied(c) {
		return nil, false
	}
	return b.ships[b.cells[c.X][c.Y]-1], true
}

// Checks bounds, overlap and adjacency. Ships may not touch each other,
// diagonals included.
func (b *Board) CanPlaceShip(ship *Ship) error {
	if ship.Size <= 0 {
		return cerr.ErrShipOutOfGridBound(ship.Origin.X, ship.Origin.Y, ship.Size)
	}
	cells := ship.Cells()
	if !b.InBounds(ship.Origin) || !b.InBounds(cells[len(cells)-1]) {
		return cerr.ErrShipOutOfGridBound(ship.Origin.X, ship.Origin.Y, ship.Size)
	}

	for _, c := range cells {
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if b.IsOccupied(NewCoordinates(c.X+dx, c.Y+dy)) {
					return cerr.ErrShipOverlap(c.X, c.Y)
				}
			}
		}
	}
	return nil
}

func (b *Board) PlaceShip(ship *Ship) error {
	if err := b.CanPlaceShip(ship); err != nil {
		return err
	}

	b.ships = append(b.ships, ship)
	code := uint8(len(b.ships))
	for _, c := range ship.Cells() {
		b.cells[c.X][c.Y] = code
	}
	return nil
}

// Places every ship of the fleet at a random legal position. If a ship
// can not be placed the whole layout is dropped and tried again.
func (b *Board) PlaceFleetRandomly(rng Randomizer, fleet []int) error {
	for attempt := 0; attempt < maxFleetPlacementTries; attempt++ {
		if b.tryPlaceFleet(rng, fleet) {
			return nil
		}
		b.clearShips()
	}
	return cerr.ErrFleetPlacementFailed(maxFleetPlacementTries)
}

func (b *Board) tryPlaceFleet(rng Randomizer, fleet []int) bool {
	for _, size := range fleet {
		placed := false
		for try := 0; try < maxShipPlacementTries && !placed; try++ {
			horizontal := rng.IntN(2) == 0
			maxX, maxY := b.size, b.size-size+1
			if !horizontal {
				maxX, maxY = b.size-size+1, b.size
			}
			origin := NewCoordinates(rng.IntN(maxX), rng.IntN(maxY))

			placed = b.PlaceShip(NewShip(origin, size, horizontal)) == nil
		}
		if !placed {
			return false
		}
	}
	return true
}

func (b *Board) clearShips() {
	b.cells = NewGrid(b.size)
	b.ships = b.ships[:0]
}

func (b *Board) IsAttacked(c Coordinates) bool {
	return b.attacks.Has(c)
}

func (b *Board) OutcomeAt(c Coordinates) (Outcome, bool) {
	return b.attacks.Get(c)
}

// Records an attack and returns its outcome. Out of bound and repeated
// coordinates are rejected and leave the record untouched.
func (b *Board) Attack(c Coordinates) (Outcome, error) {
	if !b.InBounds(c) {
		return 0, cerr.ErrXorYOutOfGridBound(c.X, c.Y)
	}
	if b.IsAttacked(c) {
		return 0, cerr.ErrAttackPositionAlreadyFilled(c.X, c.Y)
	}

	outcome := OutcomeMiss
	if ship, ok := b.ShipAt(c); ok {
		outcome = OutcomeHit
		ship.GotHit()
		b.hits++
	}
	b.attacks.Put(c, outcome)
	return outcome, nil
}

func (b *Board) HitCount() int {
	return b.hits
}

func (b *Board) AttackCount() int {
	return b.attacks.Count()
}

func (b *Board) AllShipsDestroyed() bool {
	return b.hits == b.fleetCells
}

// Unattacked cells in row-major order.
func (b *Board) Unattacked() []Coordinates {
	free := make([]Coordinates, 0, b.size*b.size-b.attacks.Count())
	for x := 0; x < b.size; x++ {
		for y := 0; y < b.size; y++ {
			c := NewCoordinates(x, y)
			if !b.IsAttacked(c) {
				free = append(free, c)
			}
		}
	}
	return free
}

// Row-major occupancy bits, 1 for a ship cell.
func (b *Board) Bits() []uint8 {
	bits := make([]uint8, 0, b.size*b.size)
	for x := 0; x < b.size; x++ {
		for y := 0; y < b.size; y++ {
			if b.cells[x][y] != PositionStateDefenceGridEmpty {
				bits = append(bits, 1)
			} else {
				bits = append(bits, 0)
			}
		}
	}
	return bits
}
