package paged

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Query is the capability pair a deferred source must expose. Count
// reports the number of records matching the unmodified predicate;
// FetchRange asks the engine to skip and take, pushing the slicing down
// into the engine instead of pulling the whole result set locally.
//
// Both operations may block; implementations must honor ctx. Failures
// from the engine pass through PaginateQuery unchanged: no retries, no
// masking.
type Query[T any] interface {
	Count(ctx context.Context) (int, error)
	FetchRange(ctx context.Context, skip, take int) ([]T, error)
}

// PaginateQuery pages a deferred source in two strictly sequential round
// trips: count first, then the range fetch built from the normalized
// window. A zero count skips the fetch entirely. Cancellation via ctx
// aborts the call at either suspension point and surfaces ctx.Err(),
// distinct from ErrInvalidArgument.
func PaginateQuery[T any](ctx context.Context, q Query[T], pageNumber, pageSize *int) (*Page[T], error) {
	if q == nil {
		pagesTotal.WithLabelValues(sourceQuery, outcomeInvalid).Inc()
		return nil, ErrNilSource
	}
	// Reject bad parameters before the first round trip.
	if err := validateRequest(pageNumber, pageSize); err != nil {
		pagesTotal.WithLabelValues(sourceQuery, outcomeInvalid).Inc()
		return nil, err
	}

	start := time.Now()

	countStart := time.Now()
	total, err := q.Count(ctx)
	queryRoundtripDuration.WithLabelValues("count").Observe(time.Since(countStart).Seconds())
	if err != nil {
		pagesTotal.WithLabelValues(sourceQuery, outcomeError).Inc()
		return nil, fmt.Errorf("count deferred source: %w", err)
	}

	page, size, err := Normalize(pageNumber, pageSize, total)
	if err != nil {
		// The engine reported a nonsensical count.
		pagesTotal.WithLabelValues(sourceQuery, outcomeInvalid).Inc()
		return nil, err
	}

	if total == 0 {
		pagesTotal.WithLabelValues(sourceQuery, outcomeOK).Inc()
		pageSizes.Observe(float64(size))
		log.Debug().
			Int("total", 0).
			Dur("duration", time.Since(start)).
			Msg("Deferred source empty, range fetch skipped")
		return newPage([]T{}, page, size, 0), nil
	}

	// The range request depends on the count; never issue it once the
	// caller has given up.
	if err := ctx.Err(); err != nil {
		pagesTotal.WithLabelValues(sourceQuery, outcomeError).Inc()
		return nil, err
	}

	skip := (page - 1) * size
	fetchStart := time.Now()
	items, err := q.FetchRange(ctx, skip, size)
	queryRoundtripDuration.WithLabelValues("fetch_range").Observe(time.Since(fetchStart).Seconds())
	if err != nil {
		pagesTotal.WithLabelValues(sourceQuery, outcomeError).Inc()
		return nil, fmt.Errorf("fetch range [%d, %d): %w", skip, skip+size, err)
	}
	if items == nil {
		items = []T{}
	}

	pagesTotal.WithLabelValues(sourceQuery, outcomeOK).Inc()
	pageSizes.Observe(float64(size))
	log.Debug().
		Int("total", total).
		Int("page", page).
		Int("size", size).
		Int("items", len(items)).
		Dur("duration", time.Since(start)).
		Msg("Deferred page fetched")

	return newPage(items, page, size, total), nil
}
