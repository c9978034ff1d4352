package paged

import "fmt"

// Int returns a pointer to v, for building optional request parameters
// inline. A nil parameter means "not supplied".
func Int(v int) *int {
	return &v
}

// Normalize turns a raw (page number, page size) request into the
// effective pair actually used for slicing. Rules, in order:
//
//  1. Negative supplied values are rejected (zero is allowed).
//  2. An empty collection collapses to page 1 with a size of at least 1,
//     so downstream total-pages math stays stable.
//  3. An absent page number, absent page size, or zero page size means
//     "return everything": page 1, size = totalCount.
//  4. Otherwise both values are raised to at least 1.
//  5. A page number past the last page is clamped to the last page.
//  6. A page size larger than the collection is clamped to totalCount.
//
// Normalize is a pure function; normalizing an already-normalized pair
// against the same totalCount yields the same pair.
func Normalize(pageNumber, pageSize *int, totalCount int) (int, int, error) {
	if err := validateRequest(pageNumber, pageSize); err != nil {
		return 0, 0, err
	}
	if totalCount < 0 {
		return 0, 0, fmt.Errorf("%w: total count must not be negative (got %d)", ErrInvalidArgument, totalCount)
	}

	if totalCount == 0 {
		size := 1
		if pageSize != nil && *pageSize > 1 {
			size = *pageSize
		}
		return 1, size, nil
	}

	if pageNumber == nil || pageSize == nil || *pageSize == 0 {
		return 1, totalCount, nil
	}

	page := max(*pageNumber, 1)
	size := max(*pageSize, 1)

	totalPages := (totalCount + size - 1) / size
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	if size > totalCount {
		size = totalCount
	}
	return page, size, nil
}
