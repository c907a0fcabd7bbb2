package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seat-booking/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) RunInTx(ctx context.Context, fn func(tx domain.BookingTx) error) error {
	txOptions := pgx.TxOptions{IsoLevel: pgx.Serializable}

	err := runInTx(ctx, p.db, txOptions, func(tx pgx.Tx) error {
		return fn(&postgresBookingTx{tx: tx})
	})

	return asWriteConflict(err)
}

func (p *PostgresBookingRepository) GetSeatsBySessionId(
	ctx context.Context,
	movieSessionId int) ([]domain.BookingSeat, error) {

	return getSeatsBySessionId(ctx, p.db, movieSessionId)
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	query := `
		SELECT id, user_id, movie_session_id, created_at
		FROM bookings
		WHERE id = $1
	`

	return getBooking(ctx, p.db, query, id)
}

func (p *PostgresBookingRepository) GetByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.Booking, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, user_id, movie_session_id, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userId, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	totalRecords := 0

	for rows.Next() {
		var booking domain.Booking

		err = rows.Scan(
			&totalRecords,
			&booking.ID,
			&booking.UserID,
			&booking.MovieSessionID,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	if len(bookings) > 0 {
		err = attachSeats(ctx, p.db, bookings)
		if err != nil {
			return nil, nil, err
		}
	}

	metadata := pagination.Metadata(totalRecords)

	return bookings, metadata, nil
}

type postgresBookingTx struct {
	tx pgx.Tx
}

func (t *postgresBookingTx) GetSeatsBySessionId(
	ctx context.Context,
	movieSessionId int) ([]domain.BookingSeat, error) {

	return getSeatsBySessionId(ctx, t.tx, movieSessionId)
}

func (t *postgresBookingTx) GetByIdForUpdate(ctx context.Context, id int) (*domain.Booking, error) {
	query := `
		SELECT id, user_id, movie_session_id, created_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE
	`

	return getBooking(ctx, t.tx, query, id)
}

func (t *postgresBookingTx) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (user_id, movie_session_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := t.tx.QueryRow(ctx, query, booking.UserID, booking.MovieSessionID).
		Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return err
	}

	rows := make([][]any, 0, len(booking.Seats))
	for i := range booking.Seats {
		seat := &booking.Seats[i]
		seat.BookingID = booking.ID
		seat.MovieSessionID = booking.MovieSessionID

		rows = append(rows, []any{
			booking.ID,
			booking.MovieSessionID,
			seat.Row,
			seat.Column,
			string(seat.SeatType),
		})
	}

	_, err = t.tx.CopyFrom(
		ctx,
		pgx.Identifier{"seats_on_booking"},
		[]string{"booking_id", "movie_session_id", "seat_row", "seat_col", "seat_type"},
		pgx.CopyFromRows(rows),
	)

	return err
}

func (t *postgresBookingTx) Delete(ctx context.Context, id int) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (t *postgresBookingTx) DeleteBySessionAndUser(ctx context.Context, movieSessionId, userId int) ([]int, error) {
	query := `
		DELETE FROM bookings
		WHERE movie_session_id = $1 AND user_id = $2
		RETURNING id
	`

	rows, err := t.tx.Query(ctx, query, movieSessionId, userId)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowTo[int])
}

func getBooking(ctx context.Context, q querier, query string, id int) (*domain.Booking, error) {
	var booking domain.Booking

	err := q.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.MovieSessionID,
		&booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	bookings := []domain.Booking{booking}

	err = attachSeats(ctx, q, bookings)
	if err != nil {
		return nil, err
	}

	return &bookings[0], nil
}

func getSeatsBySessionId(ctx context.Context, q querier, movieSessionId int) ([]domain.BookingSeat, error) {
	query := `
		SELECT booking_id, movie_session_id, seat_row, seat_col, seat_type
		FROM seats_on_booking
		WHERE movie_session_id = $1
	`

	rows, err := q.Query(ctx, query, movieSessionId)
	if err != nil {
		return nil, err
	}

	return collectSeats(rows)
}

// attachSeats loads the seats of all given bookings with a single query.
func attachSeats(ctx context.Context, q querier, bookings []domain.Booking) error {
	ids := make([]int, len(bookings))
	byID := make(map[int]*domain.Booking, len(bookings))

	for i := range bookings {
		ids[i] = bookings[i].ID
		byID[bookings[i].ID] = &bookings[i]
		bookings[i].Seats = make([]domain.BookingSeat, 0)
	}

	query := `
		SELECT booking_id, movie_session_id, seat_row, seat_col, seat_type
		FROM seats_on_booking
		WHERE booking_id = ANY($1)
		ORDER BY booking_id, seat_row, seat_col
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return err
	}

	seats, err := collectSeats(rows)
	if err != nil {
		return err
	}

	for _, seat := range seats {
		if b, ok := byID[seat.BookingID]; ok {
			b.Seats = append(b.Seats, seat)
		}
	}

	return nil
}

func collectSeats(rows pgx.Rows) ([]domain.BookingSeat, error) {
	defer rows.Close()

	seats := make([]domain.BookingSeat, 0)

	for rows.Next() {
		var seat domain.BookingSeat
		var seatType string

		err := rows.Scan(
			&seat.BookingID,
			&seat.MovieSessionID,
			&seat.Row,
			&seat.Column,
			&seatType,
		)
		if err != nil {
			return nil, err
		}

		seat.SeatType = domain.SeatType(seatType)
		seats = append(seats, seat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}
