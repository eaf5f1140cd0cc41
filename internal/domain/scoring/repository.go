package scoring

import "context"

// Repository appends round facts. Rows are never updated or removed.
type Repository interface {
	AddTeamPoint(ctx context.Context, p TeamPoint) (TeamPoint, error)
	AddPlayerPerformance(ctx context.Context, p PlayerPerformance) (PlayerPerformance, error)
}
