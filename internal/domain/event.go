package domain

import (
	"context"
	"time"
)

type BookingEventType string

const (
	BookingCreated   BookingEventType = "booking.created"
	BookingCancelled BookingEventType = "booking.cancelled"
)

type BookingEvent struct {
	Type           BookingEventType
	BookingID      int
	UserID         int
	MovieSessionID int
	Seats          []SeatCoordinate
	OccurredAt     time.Time
}

// EventPublisher hands booking events to a broker. Publish must not wait for
// the broker, since it runs on the request path.
type EventPublisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}
