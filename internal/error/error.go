package error

import "fmt"

const (
	ConstErrAttackFailed = "attack operation failed"
	ConstErrPlaceFailed  = "ship placement failed"
	ConstErrInvalidInput = "invalid request payload"
)

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrGameIsNil(gameUuid string) error {
	return fmt.Errorf("game with this uuid is nil, uuid: %s", gameUuid)
}

func ErrNoActiveGame() error {
	return fmt.Errorf("this session has no active game; create one first")
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session with this id is nil, id: %s", sessionId)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("incoming x or y is out of game grid bound\tx: %d\ty: %d", x, y)
}

func ErrAttackPositionAlreadyFilled(x, y int) error {
	return fmt.Errorf("current position in grid already taken\tx: %d\ty: %d", x, y)
}

func ErrNotPlayerTurn() error {
	return fmt.Errorf("it is not the player's turn to attack")
}

func ErrGameNotInProgress() error {
	return fmt.Errorf("game is not in the attack phase")
}

func ErrGameNotInPlacement() error {
	return fmt.Errorf("ships can only be placed before the game starts")
}

func ErrInvalidShipSize(size int) error {
	return fmt.Errorf("no unplaced ship of this size in the fleet\tsize: %d", size)
}

func ErrShipOutOfGridBound(x, y, size int) error {
	return fmt.Errorf("ship does not fit in the grid\tx: %d\ty: %d\tsize: %d", x, y, size)
}

func ErrShipOverlap(x, y int) error {
	return fmt.Errorf("ship overlaps or touches another ship\tx: %d\ty: %d", x, y)
}

func ErrFleetPlacementFailed(tries int) error {
	return fmt.Errorf("failed to place the fleet randomly after %d tries", tries)
}

func ErrInvalidCommitment(reason string) error {
	return fmt.Errorf("board commitment is invalid: %s", reason)
}
