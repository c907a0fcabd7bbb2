package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seat-booking/internal/domain"
)

type PostgresMovieSessionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieSessionRepository(db *pgxpool.Pool) *PostgresMovieSessionRepository {
	return &PostgresMovieSessionRepository{
		db: db,
	}
}

func (p *PostgresMovieSessionRepository) GetById(ctx context.Context, id int) (*domain.MovieSession, error) {
	query := `
		SELECT id, cinema_hall_id, start_date, end_date
		FROM movie_sessions
		WHERE id = $1
	`

	var session domain.MovieSession

	err := p.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.CinemaHallID,
		&session.StartDate,
		&session.EndDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &session, nil
}
