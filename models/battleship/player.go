package battleship

import (
	"github.com/google/uuid"
)

const (
	PlayerMatchStatusLost      = -1
	PlayerMatchStatusUndefined = 0
	PlayerMatchStatusWon       = 1
)

type Player struct {
	uuid        string
	isHuman     bool
	isTurn      bool
	matchStatus int
	shots       int
	hits        int
	sunkenShips int
	// Board this player defends
	defenceBoard *Board
}

func NewPlayer(isHuman, isTurn bool, gridSize int) *Player {
	return &Player{
		uuid:         uuid.NewString()[:10],
		isHuman:      isHuman,
		isTurn:       isTurn,
		matchStatus:  PlayerMatchStatusUndefined,
		defenceBoard: NewBoard(gridSize, FleetSizes),
	}
}

func (p *Player) Uuid() string {
	return p.uuid
}

func (p *Player) IsHuman() bool {
	return p.isHuman
}

func (p *Player) IsTurn() bool {
	return p.isTurn
}

func (p *Player) SetTurn(isTurn bool) {
	p.isTurn = isTurn
}

func (p *Player) MatchStatus() int {
	return p.matchStatus
}

func (p *Player) SetMatchStatus(status int) {
	p.matchStatus = status
}

func (p *Player) DefenceBoard() *Board {
	return p.defenceBoard
}

func (p *Player) SunkenShips() int {
	return p.sunkenShips
}

// Registers a shot fired by this player.
func (p *Player) recordShot(outcome Outcome, sunk bool) {
	p.shots++
	if outcome == OutcomeHit {
		p.hits++
	}
	if sunk {
		p.sunkenShips++
	}
}

type PlayerStats struct {
	Shots       int     `json:"shots"`
	Hits        int     `json:"hits"`
	SunkenShips int     `json:"sunken_ships"`
	Accuracy    float64 `json:"accuracy"`
}

func (p *Player) Stats() PlayerStats {
	stats := PlayerStats{Shots: p.shots, Hits: p.hits, SunkenShips: p.sunkenShips}
	if p.shots > 0 {
		stats.Accuracy = float64(p.hits) * 100 / float64(p.shots)
	}
	return stats
}
