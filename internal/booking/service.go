package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metinatakli/seat-booking/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/metinatakli/seat-booking/internal/booking"

	// maxWriteRetries bounds how often a booking transaction is replayed after
	// the database reported a write conflict.
	maxWriteRetries = 1
)

type Config struct {
	MinDaysUntilBooking int
}

type CreateBookingInput struct {
	MovieSessionID int
	UserID         int
	DesiredSeats   []domain.SeatCoordinate
}

type AvailabilityResult struct {
	OK              bool
	BookedConflicts []domain.SeatCoordinate
}

type MergedSchemaView struct {
	Session domain.MovieSession
	Schema  domain.MergedSeatingSchema
}

type Option func(*Service)

// WithClock replaces the clock used for the booking window check.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

type Service struct {
	bookings domain.BookingRepository
	sessions domain.MovieSessionRepository
	halls    domain.HallRepository
	events   domain.EventPublisher
	logger   *slog.Logger
	tracer   trace.Tracer
	metrics  *metrics

	minDaysUntilBooking int
	now                 func() time.Time
}

func NewService(
	cfg Config,
	bookings domain.BookingRepository,
	sessions domain.MovieSessionRepository,
	halls domain.HallRepository,
	events domain.EventPublisher,
	logger *slog.Logger,
	opts ...Option) (*Service, error) {

	m, err := newMetrics(otel.Meter(instrumentationName))
	if err != nil {
		return nil, err
	}

	s := &Service{
		bookings:            bookings,
		sessions:            sessions,
		halls:               halls,
		events:              events,
		logger:              logger,
		tracer:              otel.Tracer(instrumentationName),
		metrics:             m,
		minDaysUntilBooking: cfg.MinDaysUntilBooking,
		now:                 time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *Service) MergedSchema(ctx context.Context, movieSessionID int) (*MergedSchemaView, error) {
	session, err := s.getSession(ctx, movieSessionID)
	if err != nil {
		return nil, err
	}

	schema, err := s.sourceSchema(ctx, session)
	if err != nil {
		return nil, err
	}

	bookedSeats, err := s.bookings.GetSeatsBySessionId(ctx, movieSessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booked seats: %w", err)
	}

	return &MergedSchemaView{
		Session: *session,
		Schema:  domain.MergeSchema(schema, domain.BookedPositions(bookedSeats)),
	}, nil
}

// CheckAvailability intersects the desired seats with the seats booked at the
// time of the read. The answer is advisory; CreateBooking repeats the check
// inside its transaction.
func (s *Service) CheckAvailability(
	ctx context.Context,
	movieSessionID int,
	desired []domain.SeatCoordinate) (AvailabilityResult, error) {

	bookedSeats, err := s.bookings.GetSeatsBySessionId(ctx, movieSessionID)
	if err != nil {
		return AvailabilityResult{}, fmt.Errorf("failed to get booked seats: %w", err)
	}

	conflicts := domain.FindConflicts(desired, domain.BookedPositions(bookedSeats))

	return AvailabilityResult{
		OK:              len(conflicts) == 0,
		BookedConflicts: conflicts,
	}, nil
}

func (s *Service) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	ctx, span := s.tracer.Start(ctx, "booking.CreateBooking", trace.WithAttributes(
		attribute.Int("movie_session.id", input.MovieSessionID),
		attribute.Int("booking.seat_count", len(input.DesiredSeats)),
	))
	defer span.End()

	booking, err := s.createBooking(ctx, input)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("booking.id", booking.ID))

	return booking, nil
}

func (s *Service) createBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	session, err := s.getSession(ctx, input.MovieSessionID)
	if err != nil {
		return nil, err
	}

	err = domain.CheckBookingWindow(session.StartDate, s.now(), s.minDaysUntilBooking)
	if err != nil {
		return nil, err
	}

	schema, err := s.sourceSchema(ctx, session)
	if err != nil {
		return nil, err
	}

	if len(input.DesiredSeats) == 0 {
		return nil, &domain.ValidationError{Reason: "at least one seat must be selected"}
	}

	err = domain.CheckDuplicateSeats(input.DesiredSeats)
	if err != nil {
		return nil, err
	}

	result := domain.ValidateDesiredSeats(schema, input.DesiredSeats)
	if !result.OK {
		return nil, &domain.ValidationError{
			Reason:       "seats are not part of the hall",
			InvalidSeats: result.InvalidSeats,
		}
	}

	seats := domain.ResolveSeatTypes(schema, input.DesiredSeats)

	availability, err := s.CheckAvailability(ctx, session.ID, seats)
	if err != nil {
		return nil, err
	}

	if !availability.OK {
		s.metrics.conflicts.Add(ctx, 1)
		return nil, &domain.SeatsAlreadyBookedError{Conflicts: availability.BookedConflicts}
	}

	booking, err := s.reserve(ctx, session.ID, input.UserID, seats)
	if err != nil {
		if domain.KindOf(err) == domain.KindConflict {
			s.metrics.conflicts.Add(ctx, 1)
		}
		return nil, err
	}

	s.metrics.created.Add(ctx, 1)
	s.publish(ctx, domain.BookingCreated, booking)

	return booking, nil
}

// reserve writes the booking inside a serializable transaction, re-checking
// the seats against the bookings visible to that transaction.
func (s *Service) reserve(
	ctx context.Context,
	movieSessionID, userID int,
	seats []domain.SeatCoordinate) (*domain.Booking, error) {

	var booking domain.Booking

	err := s.withRetry(ctx, "create booking", func() error {
		booking = domain.NewBooking(movieSessionID, userID, seats)

		return s.bookings.RunInTx(ctx, func(tx domain.BookingTx) error {
			bookedSeats, err := tx.GetSeatsBySessionId(ctx, movieSessionID)
			if err != nil {
				return err
			}

			conflicts := domain.FindConflicts(seats, domain.BookedPositions(bookedSeats))
			if len(conflicts) > 0 {
				return &domain.SeatsAlreadyBookedError{Conflicts: conflicts}
			}

			return tx.Create(ctx, &booking)
		})
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (s *Service) CancelBooking(ctx context.Context, bookingID, userID int) (*domain.Booking, error) {
	var cancelled *domain.Booking

	err := s.withRetry(ctx, "cancel booking", func() error {
		return s.bookings.RunInTx(ctx, func(tx domain.BookingTx) error {
			booking, err := tx.GetByIdForUpdate(ctx, bookingID)
			if err != nil {
				if errors.Is(err, domain.ErrRecordNotFound) {
					return &domain.NotFoundError{Resource: "booking", ID: bookingID}
				}
				return err
			}

			if booking.UserID != userID {
				return &domain.ForbiddenError{BookingID: bookingID, UserID: userID}
			}

			err = tx.Delete(ctx, booking.ID)
			if err != nil {
				return err
			}

			cancelled = booking
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.metrics.cancelled.Add(ctx, 1)
	s.publish(ctx, domain.BookingCancelled, cancelled)

	return cancelled, nil
}

func (s *Service) CancelAllForSessionAndUser(ctx context.Context, movieSessionID, userID int) (int, error) {
	_, err := s.getSession(ctx, movieSessionID)
	if err != nil {
		return 0, err
	}

	var deletedIDs []int

	err = s.withRetry(ctx, "cancel session bookings", func() error {
		return s.bookings.RunInTx(ctx, func(tx domain.BookingTx) error {
			ids, err := tx.DeleteBySessionAndUser(ctx, movieSessionID, userID)
			if err != nil {
				return err
			}

			deletedIDs = ids
			return nil
		})
	})
	if err != nil {
		return 0, err
	}

	s.metrics.cancelled.Add(ctx, int64(len(deletedIDs)))

	for _, id := range deletedIDs {
		s.publish(ctx, domain.BookingCancelled, &domain.Booking{
			ID:             id,
			UserID:         userID,
			MovieSessionID: movieSessionID,
		})
	}

	return len(deletedIDs), nil
}

func (s *Service) BookingsForUser(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.Booking, *domain.Metadata, error) {

	bookings, metadata, err := s.bookings.GetByUserId(ctx, userID, pagination)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get bookings of user: %w", err)
	}

	return bookings, metadata, nil
}

func (s *Service) GetBooking(ctx context.Context, bookingID, userID int) (*domain.Booking, error) {
	booking, err := s.bookings.GetById(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Resource: "booking", ID: bookingID}
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.UserID != userID {
		return nil, &domain.ForbiddenError{BookingID: bookingID, UserID: userID}
	}

	return booking, nil
}

func (s *Service) BookingSeats(ctx context.Context, bookingID, userID int) ([]domain.SeatCoordinate, error) {
	booking, err := s.GetBooking(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	return booking.Coordinates(), nil
}

func (s *Service) getSession(ctx context.Context, movieSessionID int) (*domain.MovieSession, error) {
	session, err := s.sessions.GetById(ctx, movieSessionID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Resource: "movie session", ID: movieSessionID}
		}
		return nil, fmt.Errorf("failed to get movie session: %w", err)
	}

	return session, nil
}

func (s *Service) sourceSchema(ctx context.Context, session *domain.MovieSession) (domain.SourceBookingSchema, error) {
	layout, err := s.halls.GetLayout(ctx, session.CinemaHallID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.SourceBookingSchema{}, &domain.NotFoundError{Resource: "cinema hall", ID: session.CinemaHallID}
		}
		return domain.SourceBookingSchema{}, fmt.Errorf("failed to get hall layout: %w", err)
	}

	schema, err := domain.BuildSourceSchema(*layout)
	if err != nil {
		s.logger.ErrorContext(ctx, "malformed hall layout",
			"cinema_hall_id", session.CinemaHallID,
			"movie_session_id", session.ID,
			"error", err)
		return domain.SourceBookingSchema{}, err
	}

	return schema, nil
}

// withRetry replays fn while it fails with ErrWriteConflict, at most
// maxWriteRetries times. Any other outcome is returned as is.
func (s *Service) withRetry(ctx context.Context, op string, fn func() error) error {
	var err error

	for attempt := 0; attempt <= maxWriteRetries; attempt++ {
		if attempt > 0 {
			s.metrics.retries.Add(ctx, 1)
			s.logger.WarnContext(ctx, "retrying after write conflict", "operation", op, "attempt", attempt)
		}

		err = fn()
		if !errors.Is(err, domain.ErrWriteConflict) || ctx.Err() != nil {
			return err
		}
	}

	return err
}

// publish emits a booking event. Delivery is best effort and never changes the
// outcome of the committed operation.
func (s *Service) publish(ctx context.Context, eventType domain.BookingEventType, booking *domain.Booking) {
	if s.events == nil {
		return
	}

	event := domain.BookingEvent{
		Type:           eventType,
		BookingID:      booking.ID,
		UserID:         booking.UserID,
		MovieSessionID: booking.MovieSessionID,
		Seats:          booking.Coordinates(),
		OccurredAt:     s.now(),
	}

	err := s.events.Publish(context.WithoutCancel(ctx), event)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to publish booking event",
			"event_type", string(eventType),
			"booking_id", booking.ID,
			"error", err)
	}
}
