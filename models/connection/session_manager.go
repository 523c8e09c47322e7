package connection

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

const (
	defaultGracePeriod     time.Duration = time.Minute * 2
	defaultCleanupInterval time.Duration = time.Minute * 20
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	CleanupPeriodically()

	FindSession(sessionId string) (*Session, error)
	TerminateSession(sessionId string)
	ReconnectSession(sessionId string, conn *websocket.Conn) error
	HandleAbnormalClosureSession(session *Session) error

	WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error
	ReadFromSessionConn(session *Session) (int, []byte, error)
}

type BattleshipSessionManager struct {
	cleanupInterval time.Duration
	gracePeriod     time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

var _ SessionManager = (*BattleshipSessionManager)(nil)

type SessionManagerOption func(*BattleshipSessionManager)

func WithGracePeriod(d time.Duration) SessionManagerOption {
	return func(bsm *BattleshipSessionManager) {
		bsm.gracePeriod = d
	}
}

func WithCleanupInterval(d time.Duration) SessionManagerOption {
	return func(bsm *BattleshipSessionManager) {
		bsm.cleanupInterval = d
	}
}

func NewBattleshipSessionManager(opts ...SessionManagerOption) *BattleshipSessionManager {
	initMapSize := 10

	bsm := &BattleshipSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		cleanupInterval: defaultCleanupInterval,
		gracePeriod:     defaultGracePeriod,
	}
	for _, opt := range opts {
		opt(bsm)
	}
	return bsm
}

func (bsm *BattleshipSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, conn)

	bsm.mu.Lock()
	bsm.sessions[sessionId] = session
	bsm.mu.Unlock()

	return session
}

func (bsm *BattleshipSessionManager) FindSession(sessionId string) (*Session, error) {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	session, prs := bsm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}

	if session == nil {
		return nil, cerr.ErrSessionIsNil(sessionId)
	}

	return session, nil
}

func (bsm *BattleshipSessionManager) TerminateSession(sessionId string) {
	bsm.mu.Lock()
	delete(bsm.sessions, sessionId)
	bsm.mu.Unlock()
}

func (bsm *BattleshipSessionManager) SessionsCount() int {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()
	return len(bsm.sessions)
}

// Hands the new connection to a session that lost its connection.
// The read loop of that session picks it up after the grace wait.
func (bsm *BattleshipSessionManager) ReconnectSession(sessionId string, conn *websocket.Conn) error {
	session, err := bsm.FindSession(sessionId)
	if err != nil {
		return err
	}

	session.reconnect(conn)
	log.Info("session reconnected", "session", sessionId)
	return nil
}

// To ensure that there is no dangling connections,
// server session manager marks the sessions idle for
// more than the cleanup interval as stale and deletes them.
func (bsm *BattleshipSessionManager) CleanupPeriodically() {
	for {
		time.Sleep(bsm.cleanupInterval)
		removed := bsm.cleanupIdleSessions(time.Now())
		log.Debug("cleaned up sessions", "removed", removed)
	}
}

// Deletes the sessions without activity for longer than the cleanup
// interval and closes their connections, which ends their read loops.
func (bsm *BattleshipSessionManager) cleanupIdleSessions(now time.Time) int {
	assumedClosedConns := 10

	bsm.mu.Lock()
	stale := make([]*Session, 0, assumedClosedConns)
	for ID, session := range bsm.sessions {
		if session.idleFor(now) > bsm.cleanupInterval {
			stale = append(stale, session)
			delete(bsm.sessions, ID)
		}
	}
	bsm.mu.Unlock()

	for _, session := range stale {
		if conn := session.Conn(); conn != nil {
			conn.Close()
		}
	}
	return len(stale)
}

// Waits for the client to come back after an abnormal closure. A nil
// error means the session now holds a new connection.
func (bsm *BattleshipSessionManager) HandleAbnormalClosureSession(s *Session) error {
	reconnected := s.reconnectionSignal()

	timer := time.NewTimer(bsm.gracePeriod)
	defer timer.Stop()

	select {
	case <-timer.C:
		log.Info("grace period is over", "session", s.id)
		return NewConnErr(ConnLoopBreak).AddDesc("grace period is over for session: " + s.id)

	case <-reconnected:
		log.Info("player reconnected", "session", s.id)
		return nil
	}
}

func (bsm *BattleshipSessionManager) WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error {
	err := session.writeToConnWithRetry(msg, msgType)
	if err == nil {
		return nil
	}

	var connErr ConnErr
	if !errors.As(err, &connErr) {
		return err
	}

	if connErr.Code() == ConnLoopAbnormalClosureRetry {
		if err := bsm.HandleAbnormalClosureSession(session); err != nil {
			return connErr
		}
		return session.writeToConnWithRetry(msg, msgType)
	}
	return connErr
}

func (bsm *BattleshipSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	var retries uint8

	for {
		messageType, payload, err := session.Conn().ReadMessage()
		if err == nil {
			session.touch()
			return messageType, payload, nil
		}

		switch session.handleReadFromConnErr(err, retries) {
		case ConnLoopContinue:
			retries++
			continue

		case ConnLoopAbnormalClosureRetry:
			if err := bsm.HandleAbnormalClosureSession(session); err != nil {
				return -1, []byte{}, err
			}

		default:
			return -1, []byte{}, err
		}
	}
}

func FetchCodeFromMsg(payload []byte) (uint8, error) {
	var signal Signal
	const randomInvalidCode uint8 = 255

	if err := json.Unmarshal(payload, &signal); err != nil {
		return randomInvalidCode, err
	}

	return signal.Code, nil
}
