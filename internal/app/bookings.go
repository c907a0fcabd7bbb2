package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/seat-booking/api"
	"github.com/metinatakli/seat-booking/internal/booking"
	"github.com/metinatakli/seat-booking/internal/domain"
)

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	created, err := app.bookings.CreateBooking(r.Context(), booking.CreateBookingInput{
		MovieSessionID: input.MovieSessionId,
		UserID:         userId,
		DesiredSeats:   toDesiredSeats(input.DesiredSeats),
	})
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).InfoContext(r.Context(), "booking created",
		"booking_id", created.ID,
		"movie_session_id", created.MovieSessionID,
		"seats", len(created.Seats))

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/bookings/%d", created.ID))

	err = app.writeJSON(w, http.StatusCreated, toBookingResponse(*created), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingsOfCurrentUser(
	w http.ResponseWriter,
	r *http.Request,
	params api.GetBookingsOfCurrentUserParams) {

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)
	pagination := toPagination(params)

	bookings, metadata, err := app.bookings.BookingsForUser(r.Context(), userId, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserBookingsResponse{
		Bookings: make([]api.BookingResponse, len(bookings)),
		Metadata: toApiMetadata(metadata),
	}

	for i, b := range bookings {
		resp.Bookings[i] = toBookingResponse(b)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelBookingsOfCurrentUserForSession(w http.ResponseWriter, r *http.Request, movieSessionId int) {
	if movieSessionId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("movie session ID must be greater than zero"))
		return
	}

	userId := app.contextGetUserId(r)

	count, err := app.bookings.CancelAllForSessionAndUser(r.Context(), movieSessionId, userId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.CancelBookingsResponse{Count: count}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingById(w http.ResponseWriter, r *http.Request, bookingId int) {
	if bookingId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("booking ID must be greater than zero"))
		return
	}

	userId := app.contextGetUserId(r)

	b, err := app.bookings.GetBooking(r.Context(), bookingId, userId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toBookingResponse(*b), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingSeats(w http.ResponseWriter, r *http.Request, bookingId int) {
	if bookingId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("booking ID must be greater than zero"))
		return
	}

	userId := app.contextGetUserId(r)

	seats, err := app.bookings.BookingSeats(r.Context(), bookingId, userId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	resp := api.BookingSeatsResponse{
		BookingId: bookingId,
		Seats:     toBookedSeats(seats),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelBooking(w http.ResponseWriter, r *http.Request, bookingId int) {
	if bookingId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("booking ID must be greater than zero"))
		return
	}

	userId := app.contextGetUserId(r)

	cancelled, err := app.bookings.CancelBooking(r.Context(), bookingId, userId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).InfoContext(r.Context(), "booking cancelled",
		"booking_id", cancelled.ID,
		"movie_session_id", cancelled.MovieSessionID)

	err = app.writeJSON(w, http.StatusOK, toBookingResponse(*cancelled), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toDesiredSeats(seats []api.DesiredSeat) []domain.SeatCoordinate {
	coords := make([]domain.SeatCoordinate, len(seats))
	for i, s := range seats {
		coords[i] = domain.SeatCoordinate{
			Row:      s.Row,
			Column:   s.Column,
			SeatType: domain.SeatType(s.SeatType),
		}
	}

	return coords
}

func toBookedSeats(seats []domain.SeatCoordinate) []api.BookedSeat {
	booked := make([]api.BookedSeat, len(seats))
	for i, s := range seats {
		booked[i] = api.BookedSeat{
			Row:    s.Row,
			Column: s.Column,
			Type:   api.SeatType(s.SeatType),
		}
	}

	return booked
}

func toBookingResponse(b domain.Booking) api.BookingResponse {
	return api.BookingResponse{
		Id:             b.ID,
		UserId:         b.UserID,
		MovieSessionId: b.MovieSessionID,
		CreatedAt:      b.CreatedAt,
		Seats:          toBookedSeats(b.Coordinates()),
	}
}

func toApiMetadata(metadata *domain.Metadata) api.Metadata {
	if metadata == nil {
		return api.Metadata{}
	}

	return api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}

func toPagination(params api.GetBookingsOfCurrentUserParams) domain.Pagination {
	pagination := domain.Pagination{
		Page:     domain.DefaultPage,
		PageSize: domain.DefaultPageSize,
	}

	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}

	return pagination
}
