package battleship

import (
	"sync"
	"time"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type GameManager interface {
	CreateGame() (*Game, error)
	GetGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
}

type BattleshipGameManager struct {
	games map[string]*Game
	// builds the random source of every new game
	newRandomizer func() Randomizer
	mu            sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager() *BattleshipGameManager {
	return NewBattleshipGameManagerWithRandomizer(func() Randomizer {
		return NewSeededRandomizer(uint64(time.Now().UnixNano()))
	})
}

// Used by tests to make every game deterministic.
func NewBattleshipGameManagerWithRandomizer(newRandomizer func() Randomizer) *BattleshipGameManager {
	return &BattleshipGameManager{
		games:         make(map[string]*Game, 10),
		newRandomizer: newRandomizer,
	}
}

func (bgm *BattleshipGameManager) CreateGame() (*Game, error) {
	gameUuid := uuid.NewString()[:6]
	game, err := NewGame(gameUuid, bgm.newRandomizer())
	if err != nil {
		return nil, err
	}

	bgm.mu.Lock()
	bgm.games[gameUuid] = game
	bgm.mu.Unlock()

	return game, nil
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}
	if game == nil {
		return nil, cerr.ErrGameIsNil(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}

func (bgm *BattleshipGameManager) GamesCount() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.games)
}
