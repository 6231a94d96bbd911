// Package fanout runs a function over a slice of items on a bounded number of
// goroutines and returns the outcomes in input order.
package fanout

import (
	"context"
	"sync"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers calls in flight and
// blocks until all of them return. Values of maxWorkers below 1 are treated
// as 1.
//
// Items still waiting for a worker slot when ctx is canceled are not passed
// to fn; their Result carries ctx.Err(). Calls already running are expected
// to observe ctx themselves.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := make(chan struct{}, max(maxWorkers, 1))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}

			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
		})
	}

	wg.Wait()
	return results
}
