package api

import (
	"encoding/json"

	"github.com/charmbracelet/log"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	mc "github.com/saeidalz13/battleship-solo/models/connection"
)

type RequestHandler interface {
	HandleCreateGame(gameManager mb.GameManager) (*mb.Game, mc.Message[mc.RespCreateGame])
	HandlePlaceShip(game *mb.Game) mc.Message[mc.RespPlaceShip]
	HandleAutoPlaceFleet(game *mb.Game) mc.Message[mc.RespAutoPlaceFleet]
	HandleAttack(game *mb.Game) (mc.Message[mc.RespAttack], mb.AttackResult)
	HandleRestartGame(game *mb.Game) mc.Message[mc.RespCreateGame]
	HandleStats(game *mb.Game) mc.Message[mc.RespStats]
}

// Every incoming valid request will have this structure
// The request then is handled in line with RequestHandler interface
type Request struct {
	payload []byte
}

var _ RequestHandler = Request{}

func NewRequest(payload ...[]byte) Request {
	var req Request
	if len(payload) != 0 {
		req.payload = payload[0]
	}
	return req
}

func newCreateGameMessage(code uint8, game *mb.Game) mc.Message[mc.RespCreateGame] {
	resp := mc.NewMessage[mc.RespCreateGame](code)
	resp.AddPayload(mc.RespCreateGame{
		GameUuid:        game.Uuid(),
		GridSize:        game.GridSize(),
		Fleet:           game.UnplacedShips(),
		BoardCommitment: game.Commitment().Root,
	})
	return resp
}

// Creates a game with a freshly placed computer fleet. The human places
// theirs next.
func (r Request) HandleCreateGame(gameManager mb.GameManager) (*mb.Game, mc.Message[mc.RespCreateGame]) {
	game, err := gameManager.CreateGame()
	if err != nil {
		resp := mc.NewMessage[mc.RespCreateGame](mc.CodeCreateGame)
		resp.AddError(err.Error(), "failed to create game")
		return nil, resp
	}

	log.Info("game created", "game", game.Uuid())
	return game, newCreateGameMessage(mc.CodeCreateGame, game)
}

func (r Request) HandlePlaceShip(game *mb.Game) mc.Message[mc.RespPlaceShip] {
	resp := mc.NewMessage[mc.RespPlaceShip](mc.CodePlaceShip)
	if game == nil {
		resp.AddError(cerr.ErrNoActiveGame().Error(), cerr.ConstErrPlaceFailed)
		return resp
	}

	var req mc.Message[mc.ReqPlaceShip]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrInvalidInput)
		return resp
	}

	p := req.Payload
	if err := game.PlaceHumanShip(p.Size, mb.NewCoordinates(p.X, p.Y), p.Horizontal); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrPlaceFailed)
		return resp
	}

	resp.AddPayload(mc.RespPlaceShip{UnplacedShips: game.UnplacedShips()})
	return resp
}

func (r Request) HandleAutoPlaceFleet(game *mb.Game) mc.Message[mc.RespAutoPlaceFleet] {
	resp := mc.NewMessage[mc.RespAutoPlaceFleet](mc.CodeAutoPlaceFleet)
	if game == nil {
		resp.AddError(cerr.ErrNoActiveGame().Error(), cerr.ConstErrPlaceFailed)
		return resp
	}

	if err := game.AutoPlaceHumanFleet(); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrPlaceFailed)
		return resp
	}

	resp.AddPayload(mc.RespAutoPlaceFleet{Ships: game.Human().DefenceBoard().Ships()})
	return resp
}

// Applies the human's shot to the computer's board. The response tells
// the human it is no longer their turn unless the attack failed.
func (r Request) HandleAttack(game *mb.Game) (mc.Message[mc.RespAttack], mb.AttackResult) {
	resp := mc.NewMessage[mc.RespAttack](mc.CodeAttack)
	if game == nil {
		resp.AddError(cerr.ErrNoActiveGame().Error(), cerr.ConstErrAttackFailed)
		return resp, mb.AttackResult{}
	}

	var req mc.Message[mc.ReqAttack]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrInvalidInput)
		return resp, mb.AttackResult{}
	}

	result, err := game.HumanAttack(mb.NewCoordinates(req.Payload.X, req.Payload.Y))
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrAttackFailed)
		return resp, mb.AttackResult{}
	}

	resp.AddPayload(mc.NewRespAttack(result, game.Human().IsTurn()))
	return resp, result
}

func HandleComputerTurn(game *mb.Game) (mc.Message[mc.RespAttack], mb.AttackResult) {
	result := game.ComputerTurn()
	log.Debug("computer attacked", "game", game.Uuid(), "coords", result.Coordinates, "outcome", result.Outcome)

	resp := mc.NewMessage[mc.RespAttack](mc.CodeComputerAttack)
	resp.AddPayload(mc.NewRespAttack(result, game.Human().IsTurn()))
	return resp, result
}

func (r Request) HandleRestartGame(game *mb.Game) mc.Message[mc.RespCreateGame] {
	if game == nil {
		resp := mc.NewMessage[mc.RespCreateGame](mc.CodeRestartGame)
		resp.AddError(cerr.ErrNoActiveGame().Error(), "failed to restart game")
		return resp
	}

	if err := game.Restart(); err != nil {
		resp := mc.NewMessage[mc.RespCreateGame](mc.CodeRestartGame)
		resp.AddError(err.Error(), "failed to restart game")
		return resp
	}

	log.Info("game restarted", "game", game.Uuid())
	return newCreateGameMessage(mc.CodeRestartGame, game)
}

func (r Request) HandleStats(game *mb.Game) mc.Message[mc.RespStats] {
	resp := mc.NewMessage[mc.RespStats](mc.CodeStats)
	if game == nil {
		resp.AddError(cerr.ErrNoActiveGame().Error(), "failed to fetch stats")
		return resp
	}

	resp.AddPayload(mc.RespStats{
		Human:    game.Human().Stats(),
		Computer: game.Computer().Stats(),
	})
	return resp
}

// Message for the end of the game from the human's point of view, with
// the computer's layout revealed.
func NewEndGameMessage(game *mb.Game) mc.Message[mc.RespEndGame] {
	ships, _ := game.RevealComputerBoard()

	resp := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
	resp.AddPayload(mc.RespEndGame{
		PlayerMatchStatus: game.Human().MatchStatus(),
		Commitment:        game.Commitment(),
		ComputerShips:     ships,
	})
	return resp
}
