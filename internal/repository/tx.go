package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seat-booking/internal/domain"
)

// seatUniqueConstraint guards against the same seat being booked twice for a
// movie session.
const seatUniqueConstraint = "seats_on_booking_session_seat_key"

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func runInTx(ctx context.Context, db *pgxpool.Pool, txOptions pgx.TxOptions, fn func(tx pgx.Tx) error) error {
	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	// the request context may already be cancelled
	rollbackErr := tx.Rollback(context.WithoutCancel(ctx))
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

// asWriteConflict reports serialization failures, deadlocks and duplicate
// seats as domain.ErrWriteConflict. Other errors are returned unchanged.
func asWriteConflict(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case pgErr.Code == pgerrcode.SerializationFailure,
		pgErr.Code == pgerrcode.DeadlockDetected,
		pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == seatUniqueConstraint:
		return fmt.Errorf("%w: %s", domain.ErrWriteConflict, pgErr.Message)
	}

	return err
}
