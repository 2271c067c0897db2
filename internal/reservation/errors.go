package reservation

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the Store.  Concrete failures wrap one of
// these with %w so callers can branch with errors.Is and still print a
// message that names the seat or file involved.
var (
	// ErrInvalidInput covers blank names and queries and malformed seat labels.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when the seat is already booked (Book) or
	// not booked (Cancel).
	ErrConflict = errors.New("conflict")

	// ErrIO wraps any read or write failure of a snapshot archive.
	ErrIO = errors.New("i/o failure")

	// ErrNoSnapshot is returned by Archive.Open when nothing has been
	// saved at the archive's location yet.  Load treats it as a no-op.
	ErrNoSnapshot = errors.New("no snapshot found")
)

// Input details, all matching ErrInvalidInput.
var (
	ErrEmptyName   = fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	ErrInvalidSeat = fmt.Errorf("%w: seat label is invalid", ErrInvalidInput)
	ErrEmptyQuery  = fmt.Errorf("%w: search text cannot be empty", ErrInvalidInput)
)

// Conflict details, both matching ErrConflict.
var (
	ErrAlreadyBooked = fmt.Errorf("%w: seat is already booked", ErrConflict)
	ErrNotBooked     = fmt.Errorf("%w: seat is not booked", ErrConflict)
)
