package team

import "context"

// Repository describes team and membership persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, t Team) (Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	AddMember(ctx context.Context, m Member) (Member, error)
	ListMembers(ctx context.Context, teamID int64) ([]Member, error)
}
