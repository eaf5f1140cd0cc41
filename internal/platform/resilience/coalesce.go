// Package resilience holds helpers that shield the store from bursts of
// identical work.
package resilience

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// Coalescer deduplicates concurrent loads that share a key. Callers arriving
// while a load is in flight wait for it and receive the same result. Nothing
// is retained once the load returns.
type Coalescer[T any] struct {
	group singleflight.Group
}

// Do runs fn once per in-flight key. The load runs under ctx stripped of its
// cancellation so one caller leaving does not fail the others; each caller
// still stops waiting when its own ctx is done. shared reports whether the
// result was handed to more than one caller.
func (c *Coalescer[T]) Do(ctx context.Context, key string, fn func(ctx context.Context) (T, error)) (value T, shared bool, err error) {
	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		return fn(loadCtx)
	})

	select {
	case <-ctx.Done():
		return value, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return value, res.Shared, res.Err
		}
		out, _ := res.Val.(T)
		return out, res.Shared, nil
	}
}
