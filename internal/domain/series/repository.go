package series

import "context"

// Repository describes series persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, s Series) (Series, error)
	GetByID(ctx context.Context, seriesID int64) (Series, bool, error)
}
