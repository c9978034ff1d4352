// Package testutil provides test doubles for the paged library.
package testutil

import (
	"context"
	"sync"
)

// FakeQuery is a scripted deferred source that records how it is called.
// Configure Items (the full collection) or force failures via CountErr /
// FetchErr; the tracking fields then tell a test exactly which round
// trips were issued and with what window.
type FakeQuery[T any] struct {
	mu sync.Mutex

	// Items is the full, already-ordered collection the fake "stores".
	Items []T

	// CountErr and FetchErr, when set, fail the respective operation.
	CountErr error
	FetchErr error

	// AfterCount, if set, runs once the count round trip has completed.
	// Useful for cancelling a context between the two suspension points.
	AfterCount func()

	// Tracking
	CountCalls int
	FetchCalls int
	LastSkip   int
	LastTake   int
}

// Count reports len(Items), honoring ctx like a real engine would.
func (q *FakeQuery[T]) Count(ctx context.Context) (int, error) {
	q.mu.Lock()
	q.CountCalls++
	q.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if q.CountErr != nil {
		return 0, q.CountErr
	}
	if q.AfterCount != nil {
		q.AfterCount()
	}
	return len(q.Items), nil
}

// FetchRange returns the [skip, skip+take) window of Items, clipped to
// the collection length.
func (q *FakeQuery[T]) FetchRange(ctx context.Context, skip, take int) ([]T, error) {
	q.mu.Lock()
	q.FetchCalls++
	q.LastSkip = skip
	q.LastTake = take
	q.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if q.FetchErr != nil {
		return nil, q.FetchErr
	}

	if skip >= len(q.Items) || take <= 0 {
		return []T{}, nil
	}
	end := min(skip+take, len(q.Items))
	out := make([]T, end-skip)
	copy(out, q.Items[skip:end])
	return out, nil
}
