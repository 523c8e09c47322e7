package battleship

import (
	"testing"
)

// Human fleet laid out with one empty cell between every ship.
var testHumanFleet = []struct {
	size       int
	origin     Coordinates
	horizontal bool
}{
	{4, NewCoordinates(0, 0), true},
	{3, NewCoordinates(2, 0), true},
	{3, NewCoordinates(4, 0), true},
	{2, NewCoordinates(6, 0), true},
	{1, NewCoordinates(8, 0), true},
}

func newPlacedGame(t *testing.T, seed uint64) *Game {
	t.Helper()
	game, err := NewGame("test01", NewSeededRandomizer(seed))
	if err != nil {
		t.Fatal(err)
	}
	for _, ship := range testHumanFleet {
		if err := game.PlaceHumanShip(ship.size, ship.origin, ship.horizontal); err != nil {
			t.Fatalf("failed to place ship of size %d: %v", ship.size, err)
		}
	}
	return game
}

func TestPlaceHumanShip(t *testing.T) {
	game, err := NewGame("test01", NewSeededRandomizer(1))
	if err != nil {
		t.Fatal(err)
	}

	if game.Status() != GameStatusPlacing {
		t.Fatalf("expected status: %d\tgot: %d", GameStatusPlacing, game.Status())
	}
	if !game.Human().IsHuman() || game.Computer().IsHuman() {
		t.Fatal("expected exactly the human player to be human")
	}
	if game.Human().Uuid() == "" || game.Human().Uuid() == game.Computer().Uuid() {
		t.Fatalf("expected distinct player uuids, got: %q and %q", game.Human().Uuid(), game.Computer().Uuid())
	}
	if _, err := game.HumanAttack(NewCoordinates(0, 0)); err == nil {
		t.Fatal("expected attack to fail before the fleet is placed")
	}

	tests := []struct {
		name       string
		size       int
		origin     Coordinates
		horizontal bool
		expectErr  bool
	}{
		{name: "battleship", size: 4, origin: NewCoordinates(0, 0), horizontal: true},
		{name: "second battleship", size: 4, origin: NewCoordinates(2, 0), horizontal: true, expectErr: true},
		{name: "unknown size", size: 5, origin: NewCoordinates(2, 0), horizontal: true, expectErr: true},
		{name: "touching", size: 3, origin: NewCoordinates(1, 0), horizontal: true, expectErr: true},
		{name: "cruiser", size: 3, origin: NewCoordinates(2, 0), horizontal: true},
		{name: "second cruiser", size: 3, origin: NewCoordinates(4, 0), horizontal: true},
		{name: "destroyer", size: 2, origin: NewCoordinates(6, 0), horizontal: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := game.PlaceHumanShip(test.size, test.origin, test.horizontal)
			if test.expectErr && err == nil {
				t.Fatal("expected error")
			}
			if !test.expectErr && err != nil {
				t.Fatalf("expected no error\tgot: %v", err)
			}
		})
	}

	if unplaced := game.UnplacedShips(); len(unplaced) != 1 || unplaced[0] != 1 {
		t.Fatalf("expected only the size 1 ship unplaced\tgot: %v", unplaced)
	}

	if err := game.PlaceHumanShip(1, NewCoordinates(8, 8), true); err != nil {
		t.Fatal(err)
	}
	if game.Status() != GameStatusInProgress {
		t.Fatalf("expected game to start once the fleet is placed, status: %d", game.Status())
	}
	if !game.Human().IsTurn() {
		t.Fatal("expected human to move first")
	}
	if err := game.PlaceHumanShip(1, NewCoordinates(8, 8), true); err == nil {
		t.Fatal("expected placement to fail once the game started")
	}
}

func TestHumanAttackTurns(t *testing.T) {
	game := newPlacedGame(t, 2)

	result, err := game.HumanAttack(NewCoordinates(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if result.IsGameOver {
		t.Fatal("game can not be over after one shot")
	}
	if !game.Computer().IsTurn() || game.Human().IsTurn() {
		t.Fatal("expected computer's turn after human attack")
	}

	if _, err := game.HumanAttack(NewCoordinates(0, 1)); err == nil {
		t.Fatal("expected error attacking out of turn")
	}

	computerResult := game.ComputerTurn()
	if !game.Human().DefenceBoard().IsAttacked(computerResult.Coordinates) {
		t.Fatalf("computer attack %s not recorded", computerResult.Coordinates)
	}
	if !game.Human().IsTurn() {
		t.Fatal("expected human's turn after computer attack")
	}

	if _, err := game.HumanAttack(NewCoordinates(0, 0)); err == nil {
		t.Fatal("expected error attacking the same cell twice")
	}
	if _, err := game.HumanAttack(NewCoordinates(9, 0)); err == nil {
		t.Fatal("expected error attacking outside the grid")
	}
}

func TestHumanWins(t *testing.T) {
	game := newPlacedGame(t, 3)
	root := game.Commitment().Root
	if game.Commitment().Salt != "" {
		t.Fatal("salt must stay hidden while the game runs")
	}
	if _, ok := game.RevealComputerBoard(); ok {
		t.Fatal("computer board must stay hidden while the game runs")
	}

	var targets []Coordinates
	for _, ship := range game.Computer().DefenceBoard().Ships() {
		targets = append(targets, ship.Cells()...)
	}

	var last AttackResult
	sunk := 0
	for _, c := range targets {
		var err error
		last, err = game.HumanAttack(c)
		if err != nil {
			t.Fatal(err)
		}
		if last.Outcome != OutcomeHit {
			t.Fatalf("expected hit at %s", c)
		}
		if last.SunkShipSize != 0 {
			sunk++
		}
		if !last.IsGameOver {
			game.ComputerTurn()
		}
	}

	if !last.IsGameOver || !game.IsFinished() {
		t.Fatal("expected the game to be over")
	}
	if sunk != len(FleetSizes) {
		t.Fatalf("expected sunken ships: %d\tgot: %d", len(FleetSizes), sunk)
	}
	if game.Human().MatchStatus() != PlayerMatchStatusWon || game.Computer().MatchStatus() != PlayerMatchStatusLost {
		t.Fatal("expected human to win")
	}

	stats := game.Human().Stats()
	if stats.Shots != FleetCells || stats.Hits != FleetCells || stats.Accuracy != 100 {
		t.Fatalf("unexpected human stats %+v", stats)
	}

	revealed := game.Commitment()
	if revealed.Root != root {
		t.Fatal("commitment root changed during the game")
	}
	if err := VerifyCommitment(revealed.Root, revealed.Salt, game.Computer().DefenceBoard().Bits()); err != nil {
		t.Fatal(err)
	}
	if _, ok := game.RevealComputerBoard(); !ok {
		t.Fatal("expected computer board to be revealed")
	}
}

func TestComputerWins(t *testing.T) {
	game := newPlacedGame(t, 4)

	// the human passes every turn
	turns := 0
	for !game.IsFinished() {
		if turns == GridSize*GridSize {
			t.Fatal("computer did not win within the board size")
		}
		game.Human().SetTurn(false)
		game.Computer().SetTurn(true)
		game.ComputerTurn()
		turns++
	}

	if game.Computer().MatchStatus() != PlayerMatchStatusWon {
		t.Fatal("expected computer to win")
	}
	if game.Human().DefenceBoard().HitCount() != FleetCells {
		t.Fatalf("expected hits: %d\tgot: %d", FleetCells, game.Human().DefenceBoard().HitCount())
	}
	if game.Computer().Stats().SunkenShips != len(FleetSizes) {
		t.Fatalf("expected computer to sink %d ships\tgot: %d", len(FleetSizes), game.Computer().Stats().SunkenShips)
	}
}

func TestComputerTurnOutOfOrderPanics(t *testing.T) {
	game := newPlacedGame(t, 5)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	game.ComputerTurn()
}

func TestRestartGame(t *testing.T) {
	game := newPlacedGame(t, 6)
	if _, err := game.HumanAttack(NewCoordinates(0, 0)); err != nil {
		t.Fatal(err)
	}
	game.ComputerTurn()

	if err := game.Restart(); err != nil {
		t.Fatal(err)
	}

	if game.Status() != GameStatusPlacing {
		t.Fatalf("expected status: %d\tgot: %d", GameStatusPlacing, game.Status())
	}
	if game.Human().DefenceBoard().AttackCount() != 0 || game.Computer().DefenceBoard().AttackCount() != 0 {
		t.Fatal("expected clean attack records after restart")
	}
	if _, ok := game.Targeter().Anchor(); ok {
		t.Fatal("expected hunt state to be reset")
	}
	if len(game.UnplacedShips()) != len(FleetSizes) {
		t.Fatalf("expected the full fleet unplaced\tgot: %v", game.UnplacedShips())
	}
	if game.Uuid() != "test01" {
		t.Fatal("restart must keep the game uuid")
	}
}

func TestAutoPlaceHumanFleet(t *testing.T) {
	game, err := NewGame("test01", NewSeededRandomizer(7))
	if err != nil {
		t.Fatal(err)
	}
	if err := game.PlaceHumanShip(4, NewCoordinates(0, 0), true); err != nil {
		t.Fatal(err)
	}

	if err := game.AutoPlaceHumanFleet(); err != nil {
		t.Fatal(err)
	}
	if game.Status() != GameStatusInProgress {
		t.Fatal("expected game to start after auto placement")
	}
	if n := len(game.Human().DefenceBoard().Ships()); n != len(FleetSizes) {
		t.Fatalf("expected ships: %d\tgot: %d", len(FleetSizes), n)
	}

	// the engine must aim at the new board
	if _, err := game.HumanAttack(NewCoordinates(0, 0)); err != nil {
		t.Fatal(err)
	}
	result := game.ComputerTurn()
	if !game.Human().DefenceBoard().IsAttacked(result.Coordinates) {
		t.Fatal("computer attacked a stale board")
	}
}
