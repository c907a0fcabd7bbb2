package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/seat-booking/api"
	"github.com/metinatakli/seat-booking/internal/domain"
	appvalidator "github.com/metinatakli/seat-booking/internal/validator"
)

const (
	ErrInternalServer     = "The server encountered a problem and could not process your request"
	ErrNotFound           = "The requested resource not found"
	ErrMethodNotAllowed   = "The %s method is not supported for this resource"
	ErrUnauthorizedAccess = "You must be authenticated to access this resource"
	ErrFailedValidation   = "One or more fields have invalid values"
	ErrRateLimitExceeded  = "Too many booking attempts, please retry later"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.contextGetLogger(r).ErrorContext(r.Context(), err.Error(), "method", method, "uri", uri)
}

func (app *Application) newErrorResponse(r *http.Request, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}
}

func (app *Application) writeError(w http.ResponseWriter, r *http.Request, status int, resp any, headers http.Header) {
	err := app.writeJSON(w, status, resp, headers)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	app.writeError(w, r, status, app.newErrorResponse(r, message), nil)
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, fmt.Sprintf(ErrMethodNotAllowed, r.Method))
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) unauthorizedAccessResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrUnauthorizedAccess)
}

func (app *Application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter int) {
	headers := http.Header{}
	headers.Set("Retry-After", fmt.Sprintf("%d", retryAfter))

	app.writeError(w, r, http.StatusTooManyRequests, app.newErrorResponse(r, ErrRateLimitExceeded), headers)
}

// invalidParamResponse reports path and query parameters that could not be bound.
func (app *Application) invalidParamResponse(w http.ResponseWriter, r *http.Request, err error) {
	var paramErr *api.InvalidParamFormatError
	if errors.As(err, &paramErr) {
		app.badRequestResponse(w, r, fmt.Errorf("invalid value for parameter %s", paramErr.ParamName))
		return
	}

	app.badRequestResponse(w, r, err)
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := api.ValidationErrorResponse{
		Message:          ErrFailedValidation,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: make([]api.ValidationError, len(validationErrs)),
	}

	for i, fe := range validationErrs {
		resp.ValidationErrors[i] = api.ValidationError{
			Field: fe.Field(),
			Issue: appvalidator.ValidationMessage(fe),
		}
	}

	app.writeError(w, r, http.StatusUnprocessableEntity, resp, nil)
}

// bookingErrorResponse translates errors of the booking engine. Seats already
// taken are a client error; a write conflict that survived the retry is 409.
func (app *Application) bookingErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var status int

	kind := domain.KindOf(err)

	switch kind {
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindValidation, domain.KindTooEarly:
		status = http.StatusBadRequest
	case domain.KindForbidden:
		status = http.StatusForbidden
	case domain.KindConflict:
		status = http.StatusConflict

		var alreadyBooked *domain.SeatsAlreadyBookedError
		if errors.As(err, &alreadyBooked) {
			status = http.StatusBadRequest
		}
	default:
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := app.newErrorResponse(r, err.Error())
	resp.Kind = ptr(string(kind))

	var seatErr domain.SeatError
	if errors.As(err, &seatErr) {
		resp.Seats = toSeatPositions(seatErr.OffendingSeats())
	}

	var tooEarly *domain.TooEarlyError
	if errors.As(err, &tooEarly) {
		resp.DaysRemaining = ptr(tooEarly.DaysRemaining)
	}

	app.writeError(w, r, status, resp, nil)
}

func toSeatPositions(positions []domain.SeatPosition) []api.SeatPosition {
	seats := make([]api.SeatPosition, len(positions))
	for i, p := range positions {
		seats[i] = api.SeatPosition{Row: p.Row, Column: p.Column}
	}

	return seats
}

func ptr[T any](v T) *T {
	return &v
}
