package resilience

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCoalescer_Do(t *testing.T) {
	var c Coalescer[int]
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			got, _, err := c.Do(context.Background(), "series:1", func(context.Context) (int, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return 42, nil
			})
			if err != nil {
				t.Errorf("coalesced call failed: %v", err)
			}
			if got != 42 {
				t.Errorf("unexpected value: %d", got)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestCoalescer_CancelledCallerDoesNotFailOthers(t *testing.T) {
	t.Parallel()

	var c Coalescer[string]
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	load := func(ctx context.Context) (string, error) {
		once.Do(func() { close(entered) })
		<-release
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "totals", nil
	}

	ctxA, cancelA := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, _, err := c.Do(ctxA, "series:7", load)
		firstErr <- err
	}()
	<-entered

	secondDone := make(chan struct{})
	var secondVal string
	var secondErr error
	go func() {
		defer close(secondDone)
		secondVal, _, secondErr = c.Do(context.Background(), "series:7", load)
	}()

	cancelA()
	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancelled caller to see context.Canceled, got %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	<-secondDone

	if secondErr != nil {
		t.Fatalf("uncancelled caller failed: %v", secondErr)
	}
	if secondVal != "totals" {
		t.Fatalf("unexpected value: %q", secondVal)
	}
}

func TestCoalescer_DoesNotRetainResults(t *testing.T) {
	t.Parallel()

	var c Coalescer[string]
	calls := 0
	load := func(context.Context) (string, error) {
		calls++
		return "fresh", nil
	}

	for i := 0; i < 3; i++ {
		if _, shared, err := c.Do(context.Background(), "round:7", load); err != nil || shared {
			t.Fatalf("unexpected result: shared=%v err=%v", shared, err)
		}
	}
	if calls != 3 {
		t.Fatalf("expected sequential calls to reload, got %d", calls)
	}
}

func TestCoalescer_PropagatesError(t *testing.T) {
	t.Parallel()

	var c Coalescer[[]int]
	boom := errors.New("boom")

	got, _, err := c.Do(context.Background(), "k", func(context.Context) ([]int, error) { return []int{1}, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected zero value on error, got %v", got)
	}
}
