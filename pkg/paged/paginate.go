package paged

import (
	"iter"
	"slices"
)

// Paginate slices a random-access in-memory collection. The count is the
// slice length, so this is the fast path: O(size) work, no traversal to
// determine the total. A nil slice is treated as an empty collection.
func Paginate[T any](items []T, pageNumber, pageSize *int) (*Page[T], error) {
	return paginateSlice(sourceSlice, items, pageNumber, pageSize)
}

// PaginateSeq slices a forward-only sequence of unknown length. The
// sequence is materialized once to learn its count and the buffer is then
// indexed directly, so the sequence is consumed exactly once.
func PaginateSeq[T any](seq iter.Seq[T], pageNumber, pageSize *int) (*Page[T], error) {
	if seq == nil {
		pagesTotal.WithLabelValues(sourceSeq, outcomeInvalid).Inc()
		return nil, ErrNilSource
	}
	// Reject bad parameters before paying for the traversal.
	if err := validateRequest(pageNumber, pageSize); err != nil {
		pagesTotal.WithLabelValues(sourceSeq, outcomeInvalid).Inc()
		return nil, err
	}
	return paginateSlice(sourceSeq, slices.Collect(seq), pageNumber, pageSize)
}

// PaginateSeqN slices a forward-only sequence whose length the caller
// already knows to be totalCount. It walks the sequence once, collecting
// only elements whose index falls inside the normalized window, and stops
// as soon as the window is full. Elements past the window are never
// visited.
func PaginateSeqN[T any](seq iter.Seq[T], totalCount int, pageNumber, pageSize *int) (*Page[T], error) {
	if seq == nil {
		pagesTotal.WithLabelValues(sourceSeq, outcomeInvalid).Inc()
		return nil, ErrNilSource
	}
	page, size, err := Normalize(pageNumber, pageSize, totalCount)
	if err != nil {
		pagesTotal.WithLabelValues(sourceSeq, outcomeInvalid).Inc()
		return nil, err
	}
	if totalCount == 0 {
		pagesTotal.WithLabelValues(sourceSeq, outcomeOK).Inc()
		pageSizes.Observe(float64(size))
		return newPage([]T{}, page, size, 0), nil
	}

	skip := (page - 1) * size
	out := make([]T, 0, size)
	idx := 0
	for v := range seq {
		if idx >= skip {
			out = append(out, v)
		}
		idx++
		if len(out) == size {
			break
		}
	}
	pagesTotal.WithLabelValues(sourceSeq, outcomeOK).Inc()
	pageSizes.Observe(float64(size))
	return newPage(out, page, size, totalCount), nil
}

// paginateSlice is the shared random-access strategy behind Paginate and
// PaginateSeq; source only labels the metrics.
func paginateSlice[T any](source string, items []T, pageNumber, pageSize *int) (*Page[T], error) {
	total := len(items)
	page, size, err := Normalize(pageNumber, pageSize, total)
	if err != nil {
		pagesTotal.WithLabelValues(source, outcomeInvalid).Inc()
		return nil, err
	}

	pagesTotal.WithLabelValues(source, outcomeOK).Inc()
	pageSizes.Observe(float64(size))

	// One page covers the whole collection: copy once, skip the index math.
	if size >= total {
		out := make([]T, total)
		copy(out, items)
		return newPage(out, page, size, total), nil
	}

	skip := (page - 1) * size
	end := min(skip+size, total)
	out := make([]T, end-skip)
	copy(out, items[skip:end])
	return newPage(out, page, size, total), nil
}
