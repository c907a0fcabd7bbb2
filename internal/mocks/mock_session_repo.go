package mocks

import (
	"context"

	"github.com/metinatakli/seat-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockMovieSessionRepo struct {
	mock.Mock
}

func (m *MockMovieSessionRepo) GetById(ctx context.Context, id int) (*domain.MovieSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MovieSession), args.Error(1)
}

type MockHallRepo struct {
	mock.Mock
}

func (m *MockHallRepo) GetLayout(ctx context.Context, hallID int) (*domain.HallLayout, error) {
	args := m.Called(ctx, hallID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HallLayout), args.Error(1)
}
