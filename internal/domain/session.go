package domain

import (
	"context"
	"time"
)

type MovieSession struct {
	ID           int
	CinemaHallID int
	StartDate    time.Time
	EndDate      time.Time
}

type MovieSessionRepository interface {
	GetById(ctx context.Context, id int) (*MovieSession, error)
}
