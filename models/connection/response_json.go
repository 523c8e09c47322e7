package connection

import (
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespCreateGame struct {
	GameUuid string `json:"game_uuid"`
	GridSize int    `json:"grid_size"`
	Fleet    []int  `json:"fleet"`
	// MiMC root of the computer's board, see RespEndGame
	BoardCommitment string `json:"board_commitment"`
}

type RespPlaceShip struct {
	UnplacedShips []int `json:"unplaced_ships"`
}

type RespAutoPlaceFleet struct {
	Ships []*mb.Ship `json:"ships"`
}

type RespAttack struct {
	X             int  `json:"x"`
	Y             int  `json:"y"`
	PositionState int  `json:"position_state"`
	IsTurn        bool `json:"is_turn"`
	SunkShipSize  int  `json:"sunk_ship_size,omitempty"`
}

func NewRespAttack(result mb.AttackResult, isTurn bool) RespAttack {
	return RespAttack{
		X:             result.Coordinates.X,
		Y:             result.Coordinates.Y,
		PositionState: int(result.Outcome),
		IsTurn:        isTurn,
		SunkShipSize:  result.SunkShipSize,
	}
}

type RespEndGame struct {
	PlayerMatchStatus int `json:"player_match_status"`
	// Revealed so the client can check the layout against the commitment
	Commitment    mb.Commitment `json:"commitment"`
	ComputerShips []*mb.Ship    `json:"computer_ships"`
}

type RespStats struct {
	Human    mb.PlayerStats `json:"human"`
	Computer mb.PlayerStats `json:"computer"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
