package round

import "context"

// Repository describes round persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, r Round) (Round, error)
	GetByID(ctx context.Context, roundID int64) (Round, bool, error)
	ListBySeries(ctx context.Context, seriesID int64) ([]Round, error)
}
