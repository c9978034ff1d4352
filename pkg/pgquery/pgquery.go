// Package pgquery adapts a SQL query on a pgx pool to the paged
// deferred-source capabilities: the count runs as a COUNT(*) subquery
// over the unmodified base statement, and the range fetch appends
// LIMIT/OFFSET so Postgres does the slicing.
package pgquery

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/paged-go/paged/pkg/paged"
)

var _ paged.Query[string] = (*Query[string])(nil)

// Query pages the rows of a base SELECT statement. The base statement
// must carry its own ORDER BY; pgquery never alters the predicate or the
// ordering, only wraps and windows it.
type Query[T any] struct {
	pool    *pgxpool.Pool
	baseSQL string
	args    []any
	scan    pgx.RowToFunc[T]
}

// New creates a deferred source over baseSQL executed on pool. Rows are
// mapped with scan (pgx.RowTo, pgx.RowToStructByName, or a custom func);
// args are the base statement's positional arguments.
func New[T any](pool *pgxpool.Pool, baseSQL string, scan pgx.RowToFunc[T], args ...any) *Query[T] {
	if pool == nil {
		panic("pgx pool cannot be nil")
	}
	return &Query[T]{
		pool:    pool,
		baseSQL: baseSQL,
		args:    args,
		scan:    scan,
	}
}

// Count runs the base statement wrapped in a COUNT(*) subquery.
func (q *Query[T]) Count(ctx context.Context) (int, error) {
	var total int
	if err := q.pool.QueryRow(ctx, countSQL(q.baseSQL), q.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}
	return total, nil
}

// FetchRange runs the base statement with LIMIT take OFFSET skip.
func (q *Query[T]) FetchRange(ctx context.Context, skip, take int) ([]T, error) {
	if take <= 0 {
		return []T{}, nil
	}

	rows, err := q.pool.Query(ctx, rangeSQL(q.baseSQL, len(q.args)), append(rangeArgs(q.args), take, skip)...)
	if err != nil {
		return nil, fmt.Errorf("range query: %w", err)
	}
	items, err := pgx.CollectRows(rows, q.scan)
	if err != nil {
		return nil, fmt.Errorf("scan range rows: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// countSQL wraps the base statement so its predicate stays untouched.
func countSQL(baseSQL string) string {
	return fmt.Sprintf("SELECT count(*) FROM (%s) AS paged_count", baseSQL)
}

// rangeSQL appends the LIMIT/OFFSET window as the next two positional
// parameters after the base statement's own.
func rangeSQL(baseSQL string, argCount int) string {
	return fmt.Sprintf("%s LIMIT $%d OFFSET $%d", baseSQL, argCount+1, argCount+2)
}

// rangeArgs copies the base arguments so appending the window never
// mutates a shared backing array.
func rangeArgs(args []any) []any {
	out := make([]any, 0, len(args)+2)
	return append(out, args...)
}
