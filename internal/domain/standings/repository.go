package standings

import "context"

// Repository exposes the aggregation reads over recorded round facts.
// Rows whose team or player no longer resolves are left out.
type Repository interface {
	ManOfMatch(ctx context.Context, roundID int64) (ManOfMatch, bool, error)
	TeamTotalsBySeries(ctx context.Context, seriesID int64) ([]TeamTotal, error)
	PlayerTotalsBySeries(ctx context.Context, seriesID int64) ([]PlayerTotal, error)
	TeamTotalsByRound(ctx context.Context, roundID int64) ([]TeamTotal, error)
	PlayerTotalsByRound(ctx context.Context, roundID int64) ([]PlayerTotal, error)
}
