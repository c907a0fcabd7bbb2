package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/seat-booking/api"
	"github.com/metinatakli/seat-booking/internal/booking"
	"github.com/metinatakli/seat-booking/internal/domain"
)

func (app *Application) GetBookingSchema(w http.ResponseWriter, r *http.Request, movieSessionId int) {
	if movieSessionId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("movie session ID must be greater than zero"))
		return
	}

	view, err := app.bookings.MergedSchema(r.Context(), movieSessionId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	resp := toBookingSchemaResponse(view)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingSchemaResponse(view *booking.MergedSchemaView) api.BookingSchemaResponse {
	return api.BookingSchemaResponse{
		MovieSessionId: view.Session.ID,
		CinemaHallId:   view.Session.CinemaHallID,
		StartDate:      view.Session.StartDate,
		TotalSeats:     len(view.Schema.Seats),
		AvailableSeats: view.Schema.AvailableCount(),
		SeatRows:       toSeatRows(view.Schema.Seats),
	}
}

func toSeatRows(seats []domain.MergedSeat) []api.SeatRow {
	if len(seats) == 0 {
		return []api.SeatRow{}
	}

	// Seats come ordered by row, then column, so rows can be cut in a single pass.

	var seatRows []api.SeatRow
	currentRow := api.SeatRow{Row: seats[0].Row}

	for _, v := range seats {
		if v.Row != currentRow.Row {
			seatRows = append(seatRows, currentRow)
			currentRow = api.SeatRow{Row: v.Row}
		}

		currentRow.Seats = append(currentRow.Seats, api.Seat{
			Row:       v.Row,
			Column:    v.Column,
			Type:      api.SeatType(v.SeatType),
			Available: v.Available,
		})
	}

	seatRows = append(seatRows, currentRow)

	return seatRows
}
