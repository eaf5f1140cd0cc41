package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/riskibarqy/series-points/internal/platform/metrics"
)

// Transactor runs fn in a single store transaction. Repositories called with
// the context handed to fn take part in it.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// committedWrites advances after every successful write. Read coalescing keys
// include it, so a read issued after a commit never joins a load that began
// before it.
var committedWrites atomic.Uint64

// write runs one mutating operation atomically and records its outcome.
func write(ctx context.Context, tx Transactor, op string, fn func(ctx context.Context) error) error {
	started := time.Now()
	err := tx.RunInTx(ctx, fn)
	if err == nil {
		committedWrites.Add(1)
	}
	metrics.ObserveWrite(op, started, err)
	return err
}

func readKey(scope string, id int64) string {
	return fmt.Sprintf("%s:%d@%d", scope, id, committedWrites.Load())
}
