package sqlc

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager counts game events per server ip. A nil querier turns
// every recording into a no-op so the server runs without a database.
type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) Enabled() bool {
	return a != nil && a.queries != nil
}

// Runs an increment with its own timeout. Failures are logged, a game
// never stops because analytics could not be written.
func (a *AnalyticsManager) record(event string, serverIpNet pqtype.Inet, increment func(context.Context, pqtype.Inet) error) {
	if !a.Enabled() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), QuerierCtxTimeout)
	defer cancel()

	if err := increment(ctx, serverIpNet); err != nil {
		log.Error("failed to record analytics", "event", event, "err", err)
	}
}

func (a *AnalyticsManager) RecordGameCreated(serverIpNet pqtype.Inet) {
	if a.Enabled() {
		a.record("game_created", serverIpNet, a.queries.AnalyticsIncrementGamesCreatedCount)
	}
}

func (a *AnalyticsManager) RecordRestartCalled(serverIpNet pqtype.Inet) {
	if a.Enabled() {
		a.record("restart_called", serverIpNet, a.queries.AnalyticsIncrementRestartsCalledCount)
	}
}

func (a *AnalyticsManager) RecordGameFinished(serverIpNet pqtype.Inet, humanWon bool) {
	if !a.Enabled() {
		return
	}
	if humanWon {
		a.record("human_won", serverIpNet, a.queries.AnalyticsIncrementHumanWinsCount)
		return
	}
	a.record("computer_won", serverIpNet, a.queries.AnalyticsIncrementComputerWinsCount)
}

func (a *AnalyticsManager) GetGamesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetGamesCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetRestartsCalledCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetRestartsCalledCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetWinsCount(ctx context.Context, serverIpNet pqtype.Inet) (AnalyticsGetWinsCountRow, error) {
	return a.queries.AnalyticsGetWinsCount(ctx, serverIpNet)
}
