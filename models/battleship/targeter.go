package battleship

import (
	"fmt"
	"math/rand/v2"
)

// Randomizer is the source of randomness for random placement and the
// targeting fallback. *rand.Rand satisfies it.
type Randomizer interface {
	IntN(n int) int
}

func NewSeededRandomizer(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Targeter picks the computer's attacks against a board it can not see.
//
// It works in three modes, checked in this order on every call:
//   - directed: two hits fixed a direction, keep stepping along it from
//     the tip of the line, then once from the anchor the other way.
//   - hunt: a single hit is known, try its neighbours in FIFO order.
//   - random: pick any unattacked cell uniformly.
type Targeter struct {
	board AttackBoard
	rng   Randomizer

	anchor    *Coordinates
	tip       Coordinates
	direction Direction
	reversed  bool
	queue     []Coordinates

	// last coordinate handed out and not yet recorded
	pending *Coordinates
}

func NewTargeter(board AttackBoard, rng Randomizer) *Targeter {
	return &Targeter{
		board: board,
		rng:   rng,
		queue: make([]Coordinates, 0, len(neighborOrder)),
	}
}

// Drops all hunt state. Called at the start of every game.
func (t *Targeter) Reset() {
	t.clearLine()
	t.pending = nil
}

// Rebinds the targeter to a new board and resets it.
func (t *Targeter) ResetWithBoard(board AttackBoard) {
	t.board = board
	t.Reset()
}

func (t *Targeter) Anchor() (Coordinates, bool) {
	if t.anchor == nil {
		return Coordinates{}, false
	}
	return *t.anchor, true
}

func (t *Targeter) Direction() (Direction, bool) {
	return t.direction, !t.direction.IsZero()
}

// Remaining neighbour candidates, front first.
func (t *Targeter) Queue() []Coordinates {
	return append([]Coordinates(nil), t.queue...)
}

// NextMove returns an in-bounds coordinate that has not been attacked.
// It panics if every cell of the board has been attacked already.
func (t *Targeter) NextMove() Coordinates {
	c, ok := t.directedMove()
	if !ok {
		c, ok = t.huntMove()
	}
	if !ok {
		c = t.randomMove()
	}

	if !t.isOpen(c) {
		panic(fmt.Sprintf("targeter chose an invalid cell %s", c))
	}
	t.pending = &c
	return c
}

// RecordOutcome feeds back the result of the move last returned by
// NextMove.
func (t *Targeter) RecordOutcome(c Coordinates, outcome Outcome) {
	if t.pending == nil || *t.pending != c {
		panic(fmt.Sprintf("outcome recorded for %s which was not the pending move", c))
	}
	t.pending = nil

	if outcome != OutcomeHit {
		// misses need no bookkeeping; the next call sees them on the board
		return
	}

	switch {
	case t.anchor == nil:
		t.anchor = &c
		t.tip = c
		t.enqueueNeighbors(c)

	case t.direction.IsZero():
		d, ok := directionBetween(*t.anchor, c)
		if !ok {
			// not on a line with the anchor, start over from this hit
			t.clearLine()
			t.anchor = &c
			t.tip = c
			t.enqueueNeighbors(c)
			return
		}
		t.direction = d
		t.tip = c
		t.queue = t.queue[:0]

	default:
		t.tip = c
	}
}

func (t *Targeter) directedMove() (Coordinates, bool) {
	if t.anchor == nil || t.direction.IsZero() {
		return Coordinates{}, false
	}

	for {
		next := t.tip.Step(t.direction)
		if t.isOpen(next) {
			return next, true
		}
		if t.reversed {
			break
		}
		t.reversed = true
		t.direction = t.direction.Opposite()
		t.tip = *t.anchor
	}

	// both ends are blocked, the line is resolved
	t.clearLine()
	return Coordinates{}, false
}

func (t *Targeter) huntMove() (Coordinates, bool) {
	if t.anchor == nil {
		return Coordinates{}, false
	}

	for len(t.queue) > 0 {
		c := t.queue[0]
		t.queue = t.queue[1:]
		if t.isOpen(c) {
			return c, true
		}
	}

	// every neighbour missed, the anchor was a ship on its own
	t.clearLine()
	return Coordinates{}, false
}

func (t *Targeter) randomMove() Coordinates {
	size := t.board.Size()
	free := make([]Coordinates, 0, size*size)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			c := NewCoordinates(x, y)
			if !t.board.IsAttacked(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		panic("targeter asked for a move on a fully attacked board")
	}
	return free[t.rng.IntN(len(free))]
}

func (t *Targeter) enqueueNeighbors(c Coordinates) {
	for _, d := range neighborOrder {
		if n := c.Step(d); t.isOpen(n) {
			t.queue = append(t.queue, n)
		}
	}
}

func (t *Targeter) isOpen(c Coordinates) bool {
	return t.board.InBounds(c) && !t.board.IsAttacked(c)
}

func (t *Targeter) clearLine() {
	t.anchor = nil
	t.tip = Coordinates{}
	t.direction = Direction{}
	t.reversed = false
	t.queue = t.queue[:0]
}
