package publisher

import (
	"time"

	"github.com/metinatakli/seat-booking/internal/domain"
)

type seatMessage struct {
	Row      int    `json:"row"`
	Column   int    `json:"column"`
	SeatType string `json:"seatType,omitempty"`
}

type bookingMessage struct {
	Type           string        `json:"type"`
	BookingID      int           `json:"bookingId"`
	UserID         int           `json:"userId"`
	MovieSessionID int           `json:"movieSessionId"`
	Seats          []seatMessage `json:"seats"`
	OccurredAt     time.Time     `json:"occurredAt"`
}

func newBookingMessage(event domain.BookingEvent) bookingMessage {
	seats := make([]seatMessage, len(event.Seats))
	for i, s := range event.Seats {
		seats[i] = seatMessage{
			Row:      s.Row,
			Column:   s.Column,
			SeatType: string(s.SeatType),
		}
	}

	return bookingMessage{
		Type:           string(event.Type),
		BookingID:      event.BookingID,
		UserID:         event.UserID,
		MovieSessionID: event.MovieSessionID,
		Seats:          seats,
		OccurredAt:     event.OccurredAt.UTC(),
	}
}
