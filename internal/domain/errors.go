package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrMissingID is returned when a control carries no item identifier.
	ErrMissingID = errors.New("id required")
	// ErrInvalidPrice is returned when a control carries a price that is not a non-negative number.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrUnknownKind is returned for a removal target that is neither cart nor wishlist.
	ErrUnknownKind = errors.New("unknown list kind")
)
