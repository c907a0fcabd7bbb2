package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seat-booking/internal/domain"
)

type PostgresHallRepository struct {
	db *pgxpool.Pool
}

func NewPostgresHallRepository(db *pgxpool.Pool) *PostgresHallRepository {
	return &PostgresHallRepository{
		db: db,
	}
}

// GetLayout returns the layout as stored. It is not validated here; building
// the seating schema reports malformed layouts.
func (p *PostgresHallRepository) GetLayout(ctx context.Context, hallID int) (*domain.HallLayout, error) {
	query := `
		SELECT id, seat_rows, seats_per_row
		FROM cinema_halls
		WHERE id = $1
	`

	var layout domain.HallLayout
	var seatsPerRow []int32

	err := p.db.QueryRow(ctx, query, hallID).Scan(&layout.HallID, &layout.Rows, &seatsPerRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	layout.SeatsPerRow = make([]int, len(seatsPerRow))
	for i, n := range seatsPerRow {
		layout.SeatsPerRow[i] = int(n)
	}

	query = `
		SELECT seat_row, seat_col, seat_type
		FROM hall_seat_types
		WHERE cinema_hall_id = $1
	`

	rows, err := p.db.Query(ctx, query, hallID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	layout.SeatTypes = make(map[domain.SeatPosition]domain.SeatType)

	for rows.Next() {
		var pos domain.SeatPosition
		var seatType string

		err = rows.Scan(&pos.Row, &pos.Column, &seatType)
		if err != nil {
			return nil, err
		}

		layout.SeatTypes[pos] = domain.SeatType(seatType)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &layout, nil
}
