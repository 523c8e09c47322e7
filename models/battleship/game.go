package battleship

import (
	"fmt"
	"slices"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

const (
	GameStatusPlacing uint8 = iota
	GameStatusInProgress
	GameStatusFinished
)

type AttackResult struct {
	Coordinates Coordinates
	Outcome     Outcome
	// Size of the ship sunk by this attack, 0 if none
	SunkShipSize int
	IsGameOver   bool
}

// Game is one match of a human against the computer. The computer's
// fleet is placed at random when the game is set up; the human places
// theirs ship by ship (or all at once) before the first attack.
type Game struct {
	uuid       string
	status     uint8
	gridSize   int
	rng        Randomizer
	human      *Player
	computer   *Player
	targeter   *Targeter
	commitment Commitment
	// sizes of the human ships not yet placed
	unplaced []int
}

func NewGame(gameUuid string, rng Randomizer) (*Game, error) {
	g := &Game{
		uuid:     gameUuid,
		gridSize: GridSize,
		rng:      rng,
	}
	if err := g.setup(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) setup() error {
	g.human = NewPlayer(true, true, g.gridSize)
	g.computer = NewPlayer(false, false, g.gridSize)

	computerBoard := g.computer.DefenceBoard()
	if err := computerBoard.PlaceFleetRandomly(g.rng, FleetSizes); err != nil {
		return err
	}
	commitment, err := CommitBoard(computerBoard.Bits())
	if err != nil {
		return err
	}
	g.commitment = commitment

	if g.targeter == nil {
		g.targeter = NewTargeter(g.human.DefenceBoard(), g.rng)
	} else {
		g.targeter.ResetWithBoard(g.human.DefenceBoard())
	}

	g.unplaced = slices.Clone(FleetSizes)
	g.status = GameStatusPlacing
	return nil
}

// Restart drops both boards and the computer's hunt state and deals a
// new computer fleet. The game keeps its uuid.
func (g *Game) Restart() error {
	return g.setup()
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Status() uint8 {
	return g.status
}

func (g *Game) IsFinished() bool {
	return g.status == GameStatusFinished
}

func (g *Game) GridSize() int {
	return g.gridSize
}

func (g *Game) Human() *Player {
	return g.human
}

func (g *Game) Computer() *Player {
	return g.computer
}

func (g *Game) Targeter() *Targeter {
	return g.targeter
}

// Only the root is meaningful until the game is over.
func (g *Game) Commitment() Commitment {
	if g.status != GameStatusFinished {
		return Commitment{Root: g.commitment.Root}
	}
	return g.commitment
}

// Layout of the computer's board. Hidden until the game is over.
func (g *Game) RevealComputerBoard() ([]*Ship, bool) {
	if g.status != GameStatusFinished {
		return nil, false
	}
	return g.computer.DefenceBoard().Ships(), true
}

func (g *Game) UnplacedShips() []int {
	return slices.Clone(g.unplaced)
}

// Places the next human ship of the given size. The game starts once
// the whole fleet is on the board.
func (g *Game) PlaceHumanShip(size int, origin Coordinates, horizontal bool) error {
	if g.status != GameStatusPlacing {
		return cerr.ErrGameNotInPlacement()
	}

	idx := slices.Index(g.unplaced, size)
	if idx == -1 {
		return cerr.ErrInvalidShipSize(size)
	}

	if err := g.human.DefenceBoard().PlaceShip(NewShip(origin, size, horizontal)); err != nil {
		return err
	}

	g.unplaced = slices.Delete(g.unplaced, idx, idx+1)
	if len(g.unplaced) == 0 {
		g.start()
	}
	return nil
}

// Discards any ship the human already placed and deals the full fleet
// at random, then starts the game.
func (g *Game) AutoPlaceHumanFleet() error {
	if g.status != GameStatusPlacing {
		return cerr.ErrGameNotInPlacement()
	}

	board := NewBoard(g.gridSize, FleetSizes)
	if err := board.PlaceFleetRandomly(g.rng, FleetSizes); err != nil {
		return err
	}
	g.human.defenceBoard = board
	g.targeter.ResetWithBoard(board)

	g.unplaced = g.unplaced[:0]
	g.start()
	return nil
}

func (g *Game) start() {
	g.status = GameStatusInProgress
	g.human.SetTurn(true)
	g.computer.SetTurn(false)
}

func (g *Game) HumanAttack(c Coordinates) (AttackResult, error) {
	if g.status != GameStatusInProgress {
		return AttackResult{}, cerr.ErrGameNotInProgress()
	}
	if !g.human.IsTurn() {
		return AttackResult{}, cerr.ErrNotPlayerTurn()
	}

	return g.attack(g.human, g.computer, c)
}

// ComputerTurn lets the targeting engine fire one shot at the human's
// board. It must only be called on the computer's turn of a running
// game; anything else is a bug in the caller.
func (g *Game) ComputerTurn() AttackResult {
	if g.status != GameStatusInProgress || !g.computer.IsTurn() {
		panic(fmt.Sprintf("computer turn requested out of order, game: %s", g.uuid))
	}

	c := g.targeter.NextMove()
	result, err := g.attack(g.computer, g.human, c)
	if err != nil {
		panic(fmt.Sprintf("targeter produced an illegal attack %s: %v", c, err))
	}
	g.targeter.RecordOutcome(c, result.Outcome)
	return result
}

func (g *Game) attack(attacker, defender *Player, c Coordinates) (AttackResult, error) {
	board := defender.DefenceBoard()
	outcome, err := board.Attack(c)
	if err != nil {
		return AttackResult{}, err
	}

	result := AttackResult{Coordinates: c, Outcome: outcome}
	if ship, ok := board.ShipAt(c); ok && ship.IsSunk() {
		result.SunkShipSize = ship.Size
	}
	attacker.recordShot(outcome, result.SunkShipSize != 0)

	if board.AllShipsDestroyed() {
		g.finish(attacker, defender)
		result.IsGameOver = true
		return result, nil
	}

	attacker.SetTurn(false)
	defender.SetTurn(true)
	return result, nil
}

func (g *Game) finish(winner, loser *Player) {
	g.status = GameStatusFinished
	winner.SetMatchStatus(PlayerMatchStatusWon)
	loser.SetMatchStatus(PlayerMatchStatusLost)
	winner.SetTurn(false)
	loser.SetTurn(false)
}
