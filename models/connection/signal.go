package connection

const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID
	CodeCreateGame

	// Human places one ship, or lets the server place the whole fleet
	CodePlaceShip
	CodeAutoPlaceFleet

	// Sent once the human fleet is complete
	CodeStartGame

	CodeAttack
	// Sent after the pacing delay that follows a human attack
	CodeComputerAttack
	CodeEndGame

	// Start over with the same game uuid
	CodeRestartGame
	CodeStats

	CodeInvalidSignal
	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
