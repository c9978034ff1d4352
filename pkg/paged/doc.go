// Package paged computes bounds-safe pages over in-memory and deferred
// data sources.
//
// Callers hand over a source plus a possibly absent, invalid or
// out-of-range (page number, page size) request; paged normalizes the
// request against the total item count and returns exactly the items in
// the resulting window together with position metadata (total pages,
// has-previous, has-next).
//
// Example usage:
//
//	page, err := paged.Paginate(orders, paged.Int(2), paged.Int(25))
//
// Three source shapes are supported, selected by entry point:
//   - Paginate: random-access slices with known length (fast path)
//   - PaginateSeq / PaginateSeqN: forward-only sequences
//   - PaginateQuery: deferred sources that count and fetch remotely
//
// The deferred path issues exactly two round trips, count before range
// fetch, and honors context cancellation between them. Sources are only
// read, never modified; paged assumes they are already filtered and
// ordered by the caller.
package paged
