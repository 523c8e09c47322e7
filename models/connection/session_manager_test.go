package connection

import (
	"testing"
	"time"
)

func TestFetchCodeFromMsg(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		expectedCode uint8
		expectErr    bool
	}{
		{name: "attack", payload: `{"code":6,"payload":{"x":1,"y":2}}`, expectedCode: CodeAttack},
		{name: "no payload", payload: `{"code":2}`, expectedCode: CodeCreateGame},
		{name: "code missing", payload: `{"payload":{}}`, expectedCode: 0},
		{name: "not an object", payload: `[1,2]`, expectErr: true},
		{name: "code out of range", payload: `{"code":300}`, expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			code, err := FetchCodeFromMsg([]byte(test.payload))
			if test.expectErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if code != test.expectedCode {
				t.Fatalf("expected code: %d\tgot: %d", test.expectedCode, code)
			}
		})
	}
}

func TestSessionLifecycle(t *testing.T) {
	bsm := NewBattleshipSessionManager(WithGracePeriod(10 * time.Millisecond))

	session := bsm.GenerateNewSession(nil)
	if bsm.SessionsCount() != 1 {
		t.Fatalf("expected 1 session, got: %d", bsm.SessionsCount())
	}

	found, err := bsm.FindSession(session.Id())
	if err != nil {
		t.Fatal(err)
	}
	if found != session {
		t.Fatal("found a different session")
	}

	session.SetGameUuid("abc123")
	if found.GameUuid() != "abc123" {
		t.Fatalf("expected game uuid abc123, got: %s", found.GameUuid())
	}

	// Nobody comes back within the grace period
	if err := bsm.HandleAbnormalClosureSession(session); err == nil {
		t.Fatal("expected grace period to run out")
	}

	bsm.TerminateSession(session.Id())
	if _, err := bsm.FindSession(session.Id()); err == nil {
		t.Fatal("expected session not found error")
	}
	if err := bsm.ReconnectSession(session.Id(), nil); err == nil {
		t.Fatal("expected reconnecting a terminated session to fail")
	}
}

func TestHandleAbnormalClosureReconnected(t *testing.T) {
	bsm := NewBattleshipSessionManager(WithGracePeriod(5 * time.Second))
	session := bsm.GenerateNewSession(nil)

	done := make(chan error)
	go func() {
		done <- bsm.HandleAbnormalClosureSession(session)
	}()

	// Let the waiter pick up the current signal channel
	time.Sleep(50 * time.Millisecond)
	if err := bsm.ReconnectSession(session.Id(), nil); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("waiter was not released by the reconnection")
	}
}

func TestCleanupIdleSessions(t *testing.T) {
	bsm := NewBattleshipSessionManager(WithCleanupInterval(time.Minute))

	idle := bsm.GenerateNewSession(nil)
	active := bsm.GenerateNewSession(nil)
	reconnected := bsm.GenerateNewSession(nil)

	// All three are old, only two of them did something recently
	start := time.Now().Add(-time.Hour)
	for _, s := range []*Session{idle, active, reconnected} {
		s.lastActivity = start
	}
	active.touch()
	if err := bsm.ReconnectSession(reconnected.Id(), nil); err != nil {
		t.Fatal(err)
	}

	if removed := bsm.cleanupIdleSessions(time.Now()); removed != 1 {
		t.Fatalf("expected 1 removed session, got: %d", removed)
	}
	if _, err := bsm.FindSession(idle.Id()); err == nil {
		t.Fatal("expected idle session to be removed")
	}
	for _, s := range []*Session{active, reconnected} {
		if _, err := bsm.FindSession(s.Id()); err != nil {
			t.Fatalf("expected session %s to survive cleanup: %v", s.Id(), err)
		}
	}

	// Long after the last activity everything goes
	if removed := bsm.cleanupIdleSessions(time.Now().Add(2 * time.Minute)); removed != 2 {
		t.Fatalf("expected 2 removed sessions, got: %d", removed)
	}
	if bsm.SessionsCount() != 0 {
		t.Fatalf("expected no sessions left, got: %d", bsm.SessionsCount())
	}
}
