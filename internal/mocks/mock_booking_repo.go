package mocks

import (
	"context"

	"github.com/metinatakli/seat-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockBookingRepo records RunInTx calls and runs the callback against Tx
// unless the expectation returns an error.
type MockBookingRepo struct {
	mock.Mock
	Tx *MockBookingTx
}

func (m *MockBookingRepo) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.Booking, *domain.Metadata, error) {

	args := m.Called(ctx, userId, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Booking), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockBookingRepo) GetSeatsBySessionId(ctx context.Context, movieSessionId int) ([]domain.BookingSeat, error) {
	args := m.Called(ctx, movieSessionId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingSeat), args.Error(1)
}

func (m *MockBookingRepo) RunInTx(ctx context.Context, fn func(tx domain.BookingTx) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m.Tx)
}

type MockBookingTx struct {
	mock.Mock
}

func (m *MockBookingTx) GetSeatsBySessionId(ctx context.Context, movieSessionId int) ([]domain.BookingSeat, error) {
	args := m.Called(ctx, movieSessionId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingSeat), args.Error(1)
}

func (m *MockBookingTx) GetByIdForUpdate(ctx context.Context, id int) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingTx) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingTx) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingTx) DeleteBySessionAndUser(ctx context.Context, movieSessionId, userId int) ([]int, error) {
	args := m.Called(ctx, movieSessionId, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}
