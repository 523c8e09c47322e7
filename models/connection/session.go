package connection

import (
	"errors"
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	maxWriteWsRetries uint8 = 2
	backOffFactor     uint8 = 2
)

const (
	MessageTypeBytes uint8 = iota
	MessageTypeJSON
)

type ConnectionHandler interface {
	reconnect(conn *websocket.Conn)
	handleReadFromConnErr(err error, retries uint8) uint8
	writeToConnWithRetry(msg interface{}, msgType uint8) error
	onConnErr(err error) uint8
}

type Session struct {
	id                     string
	conn                   *websocket.Conn
	gameUuid               string
	reconnectionSignalChan chan struct{}
	// last successful read or reconnection
	lastActivity time.Time
	// guards conn, lastActivity and reconnectionSignalChan, swapped on reconnection
	mu sync.Mutex
}

var _ ConnectionHandler = (*Session)(nil)

func NewSession(id string, conn *websocket.Conn) *Session {
	return &Session{
		id:                     id,
		conn:                   conn,
		reconnectionSignalChan: make(chan struct{}),
		lastActivity:           time.Now(),
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Conn() *websocket.Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn
}

func (s *Session) GameUuid() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameUuid
}

func (s *Session) SetGameUuid(gameUuid string) {
	s.mu.Lock()
	s.gameUuid = gameUuid
	s.mu.Unlock()
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActivity = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleFor(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastActivity)
}

func (s *Session) reconnectionSignal() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reconnectionSignalChan
}

func (s *Session) remoteAddr() string {
	if conn := s.Conn(); conn != nil {
		return conn.RemoteAddr().String()
	}
	return ""
}

func (s *Session) onConnErr(err error) uint8 {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		log.Warn("timeout error", "err", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		log.Warn("high server load/traffic error", "err", err)
		return ConnLoopRetry
	}

	// Happens if a mobile browser puts the tab in the background
	if websocket.IsCloseError(err, websocket.CloseAbnormalClosure) {
		log.Warn("abnormal closure error", "err", err)
		return ConnLoopAbnormalClosureRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
		log.Info("close error", "err", err)
		return ConnLoopBreak
	}

	if websocket.IsCloseError(err, websocket.CloseProtocolError, websocket.CloseInternalServerErr, websocket.CloseTLSHandshake, websocket.CloseMandatoryExtension) {
		log.Error("critical error", "err", err)
		return ConnLoopBreak
	}

	/*
		This might mean that the client is not from the application.
		Breaking not to overwhelm the server with invalid payloads (e.g. binary data)
	*/
	if websocket.IsCloseError(err, websocket.CloseInvalidFramePayloadData, websocket.CloseUnsupportedData, websocket.CloseMessageTooBig, websocket.ClosePolicyViolation, websocket.CloseServiceRestart, websocket.CloseNoStatusReceived) {
		log.Warn("non-critical error", "err", err)
		return ConnLoopBreak
	}

	log.Error("unexpected error", "err", err)
	return ConnLoopBreak
}

// Writes to the connection of that session. It also
// handles the abnormal or other types of errors of
// writing to a websocket connection.
func (s *Session) writeToConnWithRetry(msg interface{}, msgType uint8) error {
	var retries uint8

writeJsonLoop:
	for {
		conn := s.Conn()
		var err error

		switch msgType {
		case MessageTypeJSON:
			err = conn.WriteJSON(msg)

		case MessageTypeBytes:
			respBytes, ok := msg.([]byte)
			if !ok {
				return NewConnErr(ConnInvalidMsgType).AddDesc("msg type expected: []byte got invalid")
			}
			err = conn.WriteMessage(websocket.TextMessage, respBytes)

		default:
			return NewConnErr(ConnInvalidMsgType).AddDesc("invalid meessage type to write with retry")
		}

		if err == nil {
			return nil
		}

		switch s.onConnErr(err) {
		case ConnLoopRetry:
			if retries < maxWriteWsRetries {
				retries++
				log.Warn("writing to ws failed; retrying...", "remote", s.remoteAddr(), "retry", retries)
				time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
				continue writeJsonLoop
			}
			log.Error("max retries reached for writing to ws", "remote", s.remoteAddr(), "err", err)
			return NewConnErr(ConnLoopBreak)

		case ConnLoopAbnormalClosureRetry:
			return NewConnErr(ConnLoopAbnormalClosureRetry)

		default:
			return NewConnErr(ConnLoopBreak).AddDesc("breaking writeJsonLoop due to:" + err.Error())
		}
	}
}

// Handles the errors that occurs when reading from
// ws connection. `ConnLoopBreak` will result in
// terminating the session.
func (s *Session) handleReadFromConnErr(err error, retries uint8) uint8 {
	switch s.onConnErr(err) {
	case ConnLoopAbnormalClosureRetry:
		return ConnLoopAbnormalClosureRetry

	case ConnLoopRetry:
		if retries < maxWriteWsRetries {
			log.Warn("failed to read from ws conn; retrying...", "remote", s.remoteAddr(), "retry", retries)
			time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
			return ConnLoopContinue
		}
		return ConnLoopBreak

	default:
		log.Info("break ws conn loop", "remote", s.remoteAddr(), "err", err)
		return ConnLoopBreak
	}
}

func (s *Session) reconnect(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Signal for reconnection
	close(s.reconnectionSignalChan)

	// Setting the new fields for the session
	s.conn = conn
	s.reconnectionSignalChan = make(chan struct{})
	s.lastActivity = time.Now()
}
