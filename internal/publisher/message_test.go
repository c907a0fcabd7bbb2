package publisher

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/metinatakli/seat-booking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingMessageEncoding(t *testing.T) {
	occurredAt := time.Date(2025, 5, 1, 18, 30, 0, 0, time.FixedZone("CET", 3600))

	body, err := json.Marshal(newBookingMessage(domain.BookingEvent{
		Type:           domain.BookingCreated,
		BookingID:      7,
		UserID:         3,
		MovieSessionID: 11,
		Seats: []domain.SeatCoordinate{
			{Row: 2, Column: 4, SeatType: domain.SeatTypeVIP},
		},
		OccurredAt: occurredAt,
	}))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "booking.created",
		"bookingId": 7,
		"userId": 3,
		"movieSessionId": 11,
		"seats": [{"row": 2, "column": 4, "seatType": "VIP"}],
		"occurredAt": "2025-05-01T17:30:00Z"
	}`, string(body))
}

func TestCancelledMessageWithoutSeats(t *testing.T) {
	body, err := json.Marshal(newBookingMessage(domain.BookingEvent{
		Type:       domain.BookingCancelled,
		BookingID:  7,
		OccurredAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "booking.cancelled",
		"bookingId": 7,
		"userId": 0,
		"movieSessionId": 0,
		"seats": [],
		"occurredAt": "2025-05-01T00:00:00Z"
	}`, string(body))
}

func TestMockPublisher(t *testing.T) {
	m := NewMockPublisher()

	require.NoError(t, m.Publish(t.Context(), domain.BookingEvent{Type: domain.BookingCreated, BookingID: 1}))
	assert.Len(t, m.Events(), 1)

	m.FailWith(assert.AnError)
	assert.ErrorIs(t, m.Publish(t.Context(), domain.BookingEvent{BookingID: 2}), assert.AnError)
	assert.Len(t, m.Events(), 1)

	m.Reset()
	assert.Empty(t, m.Events())
}
