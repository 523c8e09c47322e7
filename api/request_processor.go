package api

import (
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"

	"github.com/saeidalz13/battleship-solo/db/sqlc"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	mc "github.com/saeidalz13/battleship-solo/models/connection"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var (
	upgrader = websocket.Upgrader{

		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		// probably more that enough but this is a good average size
		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

type RequestProcessor struct {
	sessionManager mc.SessionManager
	gameManager    mb.GameManager
	analytics      *sqlc.AnalyticsManager
	ipnet          net.IPNet
	computerDelay  time.Duration
}

type Option func(*RequestProcessor)

// Pause before the computer answers a human attack.
func WithComputerDelay(d time.Duration) Option {
	return func(rp *RequestProcessor) {
		rp.computerDelay = d
	}
}

func NewRequestProcessor(
	sessionManager mc.SessionManager,
	gameManager mb.GameManager,
	dbManager sqlc.DbManager,
	opts ...Option,
) *RequestProcessor {
	rp := &RequestProcessor{
		sessionManager: sessionManager,
		gameManager:    gameManager,
		analytics:      dbManager.Analytics,
		ipnet:          findServerIpNet(),
	}
	for _, opt := range opts {
		opt(rp)
	}
	return rp
}

// First non-loopback IPv4 address of the host, or loopback if there is
// none. Analytics rows are keyed by it.
func findServerIpNet() net.IPNet {
	loopback := net.IPNet{IP: net.IPv4(127, 0, 0, 1), Mask: net.CIDRMask(32, 32)}

	ifaces, err := net.Interfaces()
	if err != nil {
		log.Warn("failed to list network interfaces", "err", err)
		return loopback
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ip := ipnet.IP.To4(); ip != nil && !ip.IsLoopback() {
				return net.IPNet{IP: ip, Mask: net.CIDRMask(32, 32)}
			}
		}
	}

	return loopback
}

// Expose this method to use it in testing
func (rp *RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp *RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("could not upgrade connection", "err", err)
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		log.Info("a new connection established", "remote", conn.RemoteAddr().String())
		rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))

	default:
		// The read loop of the previous connection continues on this conn
		if err := rp.sessionManager.ReconnectSession(sessionIdQuery, conn); err != nil {
			_ = conn.WriteJSON(mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID))
			conn.Close()
		}
	}
}

func (rp *RequestProcessor) processSessionRequests(session *mc.Session) {
	var (
		sessionGame *mb.Game
		sessionId   = session.Id()
	)

	defer func() {
		if sessionGame != nil {
			rp.gameManager.TerminateGame(sessionGame.Uuid())
		}
		if conn := session.Conn(); conn != nil {
			conn.Close()
		}
		rp.sessionManager.TerminateSession(sessionId)
		log.Info("session terminated", "session", sessionId)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

	serverPqtypeInet := pqtype.Inet{IPNet: rp.ipnet, Valid: true}

sessionLoop:
	for {
		// A WebSocket frame can be one of 6 types: text=1, binary=2, ping=9, pong=10, close=8 and continuation=0
		// https://www.rfc-editor.org/rfc/rfc6455.html#section-11.8
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// This error happens after retries. If it's not nil,
			// then something was wrong with the session connection
			// and couldn't be resolved
			break sessionLoop
		}

		code, err := mc.FetchCodeFromMsg(payload)
		if err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch code {

		// A session plays one game at a time; creating a new one drops the old
		case mc.CodeCreateGame:
			game, respMsg := NewRequest(payload).HandleCreateGame(rp.gameManager)
			if respMsg.Error == nil {
				if sessionGame != nil {
					rp.gameManager.TerminateGame(sessionGame.Uuid())
				}
				sessionGame = game
				session.SetGameUuid(game.Uuid())
				rp.analytics.RecordGameCreated(serverPqtypeInet)
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodePlaceShip:
			respMsg := NewRequest(payload).HandlePlaceShip(sessionGame)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			if respMsg.Error == nil && sessionGame.Status() == mb.GameStatusInProgress {
				if err := rp.notifyStartGame(session); err != nil {
					break sessionLoop
				}
			}

		case mc.CodeAutoPlaceFleet:
			respMsg := NewRequest(payload).HandleAutoPlaceFleet(sessionGame)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			if respMsg.Error == nil {
				if err := rp.notifyStartGame(session); err != nil {
					break sessionLoop
				}
			}

		// The human attacks, then after the pacing delay the computer
		// answers. No other input is read until the computer is done.
		case mc.CodeAttack:
			respMsg, result := NewRequest(payload).HandleAttack(sessionGame)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

			// This means attack operation did not complete
			if respMsg.Error != nil {
				continue sessionLoop
			}

			if result.IsGameOver {
				if err := rp.endGame(session, sessionGame, serverPqtypeInet); err != nil {
					break sessionLoop
				}
				continue sessionLoop
			}

			rp.waitForComputer()

			computerMsg, computerResult := HandleComputerTurn(sessionGame)
			if err := rp.sessionManager.WriteToSessionConn(session, computerMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

			if computerResult.IsGameOver {
				if err := rp.endGame(session, sessionGame, serverPqtypeInet); err != nil {
					break sessionLoop
				}
			}

		case mc.CodeRestartGame:
			respMsg := NewRequest(payload).HandleRestartGame(sessionGame)
			if respMsg.Error == nil {
				rp.analytics.RecordRestartCalled(serverPqtypeInet)
			}
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeStats:
			respMsg := NewRequest(payload).HandleStats(sessionGame)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}

// Single shot pause that paces the computer's answer.
func (rp *RequestProcessor) waitForComputer() {
	if rp.computerDelay <= 0 {
		return
	}
	timer := time.NewTimer(rp.computerDelay)
	<-timer.C
}

func (rp *RequestProcessor) notifyStartGame(session *mc.Session) error {
	return rp.sessionManager.WriteToSessionConn(session, mc.NewMessage[mc.NoPayload](mc.CodeStartGame), mc.MessageTypeJSON)
}

func (rp *RequestProcessor) endGame(session *mc.Session, game *mb.Game, serverIpNet pqtype.Inet) error {
	winner := game.Computer()
	if game.Human().MatchStatus() == mb.PlayerMatchStatusWon {
		winner = game.Human()
	}
	log.Info("game over", "game", game.Uuid(), "winner", winner.Uuid(), "human_won", winner.IsHuman())
	rp.analytics.RecordGameFinished(serverIpNet, winner.IsHuman())

	return rp.sessionManager.WriteToSessionConn(session, NewEndGameMessage(game), mc.MessageTypeJSON)
}
