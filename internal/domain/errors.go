package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrWriteConflict  = errors.New("booking conflicted with a concurrent write, please try again")
)

type ErrorKind string

const (
	KindConfiguration ErrorKind = "configuration"
	KindValidation    ErrorKind = "validation"
	KindConflict      ErrorKind = "conflict"
	KindNotFound      ErrorKind = "not_found"
	KindForbidden     ErrorKind = "forbidden"
	KindTooEarly      ErrorKind = "too_early"
	KindInternal      ErrorKind = "internal"
)

// SeatError is implemented by errors that point at specific seats of a request.
type SeatError interface {
	error
	OffendingSeats() []SeatPosition
}

// ConfigurationError means the hall layout itself is malformed. It is a data
// problem on the catalogue side, not a client error.
type ConfigurationError struct {
	HallID int
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid layout for cinema hall %d: %s", e.HallID, e.Reason)
}

func (e *ConfigurationError) Kind() ErrorKind { return KindConfiguration }

type ValidationError struct {
	Reason       string
	InvalidSeats []SeatCoordinate
}

func (e *ValidationError) Error() string {
	if len(e.InvalidSeats) == 0 {
		return e.Reason
	}

	return fmt.Sprintf("%s: %s", e.Reason, formatSeats(e.InvalidSeats))
}

func (e *ValidationError) Kind() ErrorKind { return KindValidation }

func (e *ValidationError) OffendingSeats() []SeatPosition {
	return Positions(e.InvalidSeats)
}

type DuplicateSeatError struct {
	Duplicates []SeatPosition
}

func (e *DuplicateSeatError) Error() string {
	return fmt.Sprintf("seats are selected more than once: %s", formatPositions(e.Duplicates))
}

func (e *DuplicateSeatError) Kind() ErrorKind { return KindValidation }

func (e *DuplicateSeatError) OffendingSeats() []SeatPosition {
	return e.Duplicates
}

type SeatsAlreadyBookedError struct {
	Conflicts []SeatCoordinate
}

func (e *SeatsAlreadyBookedError) Error() string {
	return fmt.Sprintf("these seats are already booked: %s", formatSeats(e.Conflicts))
}

func (e *SeatsAlreadyBookedError) Kind() ErrorKind { return KindConflict }

func (e *SeatsAlreadyBookedError) OffendingSeats() []SeatPosition {
	return Positions(e.Conflicts)
}

type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Kind() ErrorKind { return KindNotFound }

func (e *NotFoundError) Unwrap() error { return ErrRecordNotFound }

type ForbiddenError struct {
	BookingID int
	UserID    int
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("booking %d does not belong to user %d", e.BookingID, e.UserID)
}

func (e *ForbiddenError) Kind() ErrorKind { return KindForbidden }

type TooEarlyError struct {
	DaysRemaining int
}

func (e *TooEarlyError) Error() string {
	return fmt.Sprintf("booking is not open yet, try again in %d day(s)", e.DaysRemaining)
}

func (e *TooEarlyError) Kind() ErrorKind { return KindTooEarly }

// KindOf classifies err by the first kinded error in its chain. Unknown errors
// are internal.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var kinded interface{ Kind() ErrorKind }
	if errors.As(err, &kinded) {
		return kinded.Kind()
	}

	switch {
	case errors.Is(err, ErrWriteConflict):
		return KindConflict
	case errors.Is(err, ErrRecordNotFound):
		return KindNotFound
	}

	return KindInternal
}
