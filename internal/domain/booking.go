package domain

import (
	"context"
	"time"
)

type Booking struct {
	ID             int
	UserID         int
	MovieSessionID int
	CreatedAt      time.Time
	Seats          []BookingSeat
}

type BookingSeat struct {
	BookingID      int
	MovieSessionID int
	SeatCoordinate
}

func NewBooking(movieSessionID, userID int, seats []SeatCoordinate) Booking {
	bookingSeats := make([]BookingSeat, len(seats))
	for i, s := range seats {
		bookingSeats[i] = BookingSeat{
			MovieSessionID: movieSessionID,
			SeatCoordinate: s,
		}
	}

	return Booking{
		UserID:         userID,
		MovieSessionID: movieSessionID,
		Seats:          bookingSeats,
	}
}

func (b Booking) Coordinates() []SeatCoordinate {
	coords := make([]SeatCoordinate, len(b.Seats))
	for i, s := range b.Seats {
		coords[i] = s.SeatCoordinate
	}

	return coords
}

// BookingTx is the set of booking operations available inside a serializable
// transaction.
type BookingTx interface {
	GetSeatsBySessionId(ctx context.Context, movieSessionId int) ([]BookingSeat, error)
	GetByIdForUpdate(ctx context.Context, id int) (*Booking, error)
	Create(ctx context.Context, booking *Booking) error
	Delete(ctx context.Context, id int) error
	DeleteBySessionAndUser(ctx context.Context, movieSessionId, userId int) ([]int, error)
}

type BookingRepository interface {
	GetById(ctx context.Context, id int) (*Booking, error)
	GetByUserId(ctx context.Context, userId int, pagination Pagination) ([]Booking, *Metadata, error)
	GetSeatsBySessionId(ctx context.Context, movieSessionId int) ([]BookingSeat, error)

	// RunInTx runs fn in a serializable transaction. Write conflicts detected by
	// the database are reported as ErrWriteConflict.
	RunInTx(ctx context.Context, fn func(tx BookingTx) error) error
}
