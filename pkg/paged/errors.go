package paged

import (
	"errors"
	"fmt"
)

// Common errors returned by the paginator.
var (
	// ErrInvalidArgument is the marker error for rejected pagination
	// parameters. Check with errors.Is; the wrapping error carries the
	// offending value.
	ErrInvalidArgument = errors.New("invalid pagination argument")

	// ErrNilSource is returned when the source to paginate is absent.
	ErrNilSource = fmt.Errorf("%w: nil source", ErrInvalidArgument)
)

// validateRequest rejects negative raw parameters. It runs before any
// traversal or remote call so a bad request never costs a round trip.
func validateRequest(pageNumber, pageSize *int) error {
	if pageNumber != nil && *pageNumber < 0 {
		return fmt.Errorf("%w: page number must not be negative (got %d)", ErrInvalidArgument, *pageNumber)
	}
	if pageSize != nil && *pageSize < 0 {
		return fmt.Errorf("%w: page size must not be negative (got %d)", ErrInvalidArgument, *pageSize)
	}
	return nil
}
