package booking_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/metinatakli/seat-booking/internal/domain"
)

// memStore is a BookingRepository that serializes transactions with a mutex,
// which is the isolation a SERIALIZABLE database transaction guarantees. It
// can inject write conflicts on commit to exercise the retry path.
type memStore struct {
	mu       sync.Mutex
	nextID   int
	bookings map[int]domain.Booking

	conflictsToInject int
	commits           int
}

func newMemStore() *memStore {
	return &memStore{bookings: make(map[int]domain.Booking)}
}

func (s *memStore) GetById(_ context.Context, id int) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &b, nil
}

func (s *memStore) GetByUserId(_ context.Context, userId int, pagination domain.Pagination) ([]domain.Booking, *domain.Metadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []domain.Booking
	for _, b := range s.bookings {
		if b.UserID == userId {
			all = append(all, b)
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	start := min(pagination.Offset(), len(all))
	end := min(start+pagination.Limit(), len(all))

	return all[start:end], pagination.Metadata(len(all)), nil
}

func (s *memStore) GetSeatsBySessionId(_ context.Context, movieSessionId int) ([]domain.BookingSeat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.seatsOf(movieSessionId), nil
}

func (s *memStore) seatsOf(movieSessionId int) []domain.BookingSeat {
	var seats []domain.BookingSeat
	for _, b := range s.bookings {
		if b.MovieSessionID == movieSessionId {
			seats = append(seats, b.Seats...)
		}
	}

	return seats
}

func (s *memStore) RunInTx(ctx context.Context, fn func(tx domain.BookingTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, deleted: make(map[int]struct{})}

	err := fn(tx)
	if err != nil {
		return err
	}

	if s.conflictsToInject > 0 {
		s.conflictsToInject--
		return fmt.Errorf("%w: could not serialize access due to concurrent update", domain.ErrWriteConflict)
	}

	// unique (movie_session_id, seat_row, seat_col)
	for _, b := range tx.created {
		booked := domain.BookedPositions(s.seatsOf(b.MovieSessionID))
		if len(domain.FindConflicts(b.Coordinates(), booked)) > 0 {
			return fmt.Errorf("%w: duplicate key value violates unique constraint", domain.ErrWriteConflict)
		}
	}

	for id := range tx.deleted {
		delete(s.bookings, id)
	}
	for _, b := range tx.created {
		s.bookings[b.ID] = b
	}
	s.commits++

	return nil
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.bookings)
}

type memTx struct {
	store   *memStore
	created []domain.Booking
	deleted map[int]struct{}
}

func (t *memTx) GetSeatsBySessionId(_ context.Context, movieSessionId int) ([]domain.BookingSeat, error) {
	return t.store.seatsOf(movieSessionId), nil
}

func (t *memTx) GetByIdForUpdate(_ context.Context, id int) (*domain.Booking, error) {
	b, ok := t.store.bookings[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &b, nil
}

func (t *memTx) Create(_ context.Context, booking *domain.Booking) error {
	t.store.nextID++
	booking.ID = t.store.nextID
	booking.CreatedAt = time.Now()

	for i := range booking.Seats {
		booking.Seats[i].BookingID = booking.ID
	}

	stored := *booking
	stored.Seats = append([]domain.BookingSeat(nil), booking.Seats...)
	t.created = append(t.created, stored)

	return nil
}

func (t *memTx) Delete(_ context.Context, id int) error {
	if _, ok := t.store.bookings[id]; !ok {
		return domain.ErrRecordNotFound
	}

	t.deleted[id] = struct{}{}
	return nil
}

func (t *memTx) DeleteBySessionAndUser(_ context.Context, movieSessionId, userId int) ([]int, error) {
	var ids []int
	for id, b := range t.store.bookings {
		if b.MovieSessionID == movieSessionId && b.UserID == userId {
			t.deleted[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	sort.Ints(ids)
	return ids, nil
}

type staticSessions map[int]domain.MovieSession

func (s staticSessions) GetById(_ context.Context, id int) (*domain.MovieSession, error) {
	session, ok := s[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &session, nil
}

type staticHalls map[int]domain.HallLayout

func (h staticHalls) GetLayout(_ context.Context, hallID int) (*domain.HallLayout, error) {
	layout, ok := h[hallID]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &layout, nil
}
