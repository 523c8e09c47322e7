package sqlc

import "time"

const (
	QuerierCtxTimeout = time.Second * 10
)

type DbManager struct {
	Analytics *AnalyticsManager
}

// A nil querier gives a manager whose analytics are disabled.
func NewDbManager(queries Querier) DbManager {
	return DbManager{
		Analytics: NewAnalyticsManager(queries),
	}
}
