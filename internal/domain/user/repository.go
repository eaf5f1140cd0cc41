package user

import "context"

// Repository describes user persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, userID int64) (User, bool, error)
	CountByRole(ctx context.Context, role Role) (int, error)
}
