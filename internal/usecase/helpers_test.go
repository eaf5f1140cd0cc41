package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type fakeTxKey struct{}

// fakeTx marks the context it hands to fn so tests can assert which calls ran
// inside the transaction.
type fakeTx struct {
	calls int
}

func (f *fakeTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(context.WithValue(ctx, fakeTxKey{}, f.calls))
}

func inTx() any {
	return mock.MatchedBy(func(v context.Context) bool { return v.Value(fakeTxKey{}) != nil })
}

func sameCtx(ctx context.Context) any {
	return mock.MatchedBy(func(v context.Context) bool { return v == ctx })
}

type ctxMarkKey struct{}

// markedCtx returns a context that derivedFrom can recognise after it has been
// detached from its caller's cancellation.
func markedCtx(name string) context.Context {
	return context.WithValue(context.Background(), ctxMarkKey{}, name)
}

func derivedFrom(ctx context.Context) any {
	mark := ctx.Value(ctxMarkKey{})
	return mock.MatchedBy(func(v context.Context) bool { return v.Value(ctxMarkKey{}) == mark })
}
