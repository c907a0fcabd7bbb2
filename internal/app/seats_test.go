package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/seat-booking/api"
	"github.com/metinatakli/seat-booking/internal/booking"
	"github.com/metinatakli/seat-booking/internal/domain"
	"github.com/metinatakli/seat-booking/internal/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SeatsTestSuite struct {
	suite.Suite
	app            *Application
	bookingService *mocks.MockBookingService
}

func (s *SeatsTestSuite) SetupTest() {
	s.bookingService = new(mocks.MockBookingService)

	s.app = newTestApplication(func(a *Application) {
		a.bookings = s.bookingService
	})
}

func TestSeatsSuite(t *testing.T) {
	suite.Run(t, new(SeatsTestSuite))
}

func (s *SeatsTestSuite) TestGetBookingSchema() {
	startDate := time.Date(2025, 6, 20, 19, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		url            string
		setupMocks     func()
		wantStatus     int
		wantResponse   *api.BookingSchemaResponse
		wantErrMessage string
	}{
		{
			name:           "should fail when movie session ID is not a number",
			url:            "/bookings/booking-schema/abc",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "invalid value for parameter movieSessionId",
		},
		{
			name:           "should fail when movie session ID is zero or negative",
			url:            "/bookings/booking-schema/0",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "movie session ID must be greater than zero",
		},
		{
			name: "should fail when movie session does not exist",
			url:  "/bookings/booking-schema/999",
			setupMocks: func() {
				s.bookingService.On("MergedSchema", mock.Anything, 999).
					Return(nil, &domain.NotFoundError{Resource: "movie session", ID: 999})
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "movie session with id 999 not found",
		},
		{
			name: "should hide malformed hall layouts behind a server error",
			url:  "/bookings/booking-schema/1",
			setupMocks: func() {
				s.bookingService.On("MergedSchema", mock.Anything, 1).
					Return(nil, &domain.ConfigurationError{HallID: 4, Reason: "hall must have at least one row, got 0"})
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name: "should fail when booked seats cannot be read",
			url:  "/bookings/booking-schema/1",
			setupMocks: func() {
				s.bookingService.On("MergedSchema", mock.Anything, 1).
					Return(nil, fmt.Errorf("failed to get booked seats: %w", fmt.Errorf("connection reset")))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name: "should group seats by row and count available seats",
			url:  "/bookings/booking-schema/1",
			setupMocks: func() {
				s.bookingService.On("MergedSchema", mock.Anything, 1).Return(&booking.MergedSchemaView{
					Session: domain.MovieSession{ID: 1, CinemaHallID: 4, StartDate: startDate},
					Schema: domain.MergedSeatingSchema{
						HallID: 4,
						Seats: []domain.MergedSeat{
							{SeatCoordinate: domain.SeatCoordinate{Row: 1, Column: 1, SeatType: domain.SeatTypeStandard}, Available: true},
							{SeatCoordinate: domain.SeatCoordinate{Row: 1, Column: 2, SeatType: domain.SeatTypeStandard}, Available: false},
							{SeatCoordinate: domain.SeatCoordinate{Row: 2, Column: 1, SeatType: domain.SeatTypeVIP}, Available: true},
						},
					},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.BookingSchemaResponse{
				MovieSessionId: 1,
				CinemaHallId:   4,
				StartDate:      startDate,
				TotalSeats:     3,
				AvailableSeats: 2,
				SeatRows: []api.SeatRow{
					{
						Row: 1,
						Seats: []api.Seat{
							{Row: 1, Column: 1, Type: api.STANDARD, Available: true},
							{Row: 1, Column: 2, Type: api.STANDARD, Available: false},
						},
					},
					{
						Row: 2,
						Seats: []api.Seat{
							{Row: 2, Column: 1, Type: api.VIP, Available: true},
						},
					},
				},
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.bookingService.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodGet, tt.url, nil)

			s.app.Routes().ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.BookingSchemaResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func (s *SeatsTestSuite) TestToSeatRowsWithoutSeats() {
	s.Equal([]api.SeatRow{}, toSeatRows(nil))
}
