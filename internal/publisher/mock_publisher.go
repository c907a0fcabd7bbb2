package publisher

import (
	"context"
	"sync"

	"github.com/metinatakli/seat-booking/internal/domain"
)

// MockPublisher records published events for tests.
type MockPublisher struct {
	mu     sync.RWMutex
	events []domain.BookingEvent
	err    error
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{
		events: make([]domain.BookingEvent, 0),
	}
}

// FailWith makes every following Publish call return err without recording.
func (m *MockPublisher) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.err = err
}

func (m *MockPublisher) Publish(_ context.Context, event domain.BookingEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	m.events = append(m.events, event)

	return nil
}

// Events returns a copy of all recorded events.
func (m *MockPublisher) Events() []domain.BookingEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := make([]domain.BookingEvent, len(m.events))
	copy(events, m.events)
	return events
}

func (m *MockPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = make([]domain.BookingEvent, 0)
	m.err = nil
}
