package httpapi

import (
	"context"

	"github.com/riskibarqy/series-points/internal/domain/user"
)

type contextKey string

const actorContextKey contextKey = "actor"

func withActor(ctx context.Context, actor user.User) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

func actorFromContext(ctx context.Context) (user.User, bool) {
	actor, ok := ctx.Value(actorContextKey).(user.User)
	return actor, ok
}
