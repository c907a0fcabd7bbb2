package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/seat-booking/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	publishTimeout = 5 * time.Second
	dialTimeout    = 3 * time.Second
	heartbeat      = 10 * time.Second

	defaultQueueSize = 256
)

// ErrPublishQueueFull is returned when events arrive faster than the broker
// accepts them. The event is dropped.
var ErrPublishQueueFull = errors.New("booking event queue is full")

var eventQueues = []domain.BookingEventType{
	domain.BookingCreated,
	domain.BookingCancelled,
}

type deliverFunc func(ctx context.Context, event domain.BookingEvent) error

// AMQPPublisher sends booking events to RabbitMQ through the default exchange.
// Every event type has its own durable queue named after the type.
//
// Publish only enqueues. A single worker delivers queued events and reopens
// the connection when the broker drops it, so a broker outage never stalls
// the caller.
type AMQPPublisher struct {
	url    string
	logger *slog.Logger

	conn *amqp.Connection
	ch   *amqp.Channel

	mu      sync.RWMutex
	closed  bool
	queue   chan domain.BookingEvent
	deliver deliverFunc
	done    chan struct{}
}

func NewAMQPPublisher(url string, logger *slog.Logger) (*AMQPPublisher, error) {
	p := &AMQPPublisher{url: url}

	err := p.connect()
	if err != nil {
		return nil, err
	}

	p.start(p.send, defaultQueueSize, logger)

	return p, nil
}

func (p *AMQPPublisher) start(deliver deliverFunc, queueSize int, logger *slog.Logger) {
	p.logger = logger
	p.deliver = deliver
	p.queue = make(chan domain.BookingEvent, queueSize)
	p.done = make(chan struct{})

	go p.run()
}

func (p *AMQPPublisher) run() {
	defer close(p.done)

	for event := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		err := p.deliver(ctx, event)
		cancel()

		if err != nil {
			p.logger.Warn("failed to deliver booking event",
				"event_type", string(event.Type),
				"booking_id", event.BookingID,
				"error", err)
		}
	}
}

// Publish queues the event for delivery. It never waits for the broker.
func (p *AMQPPublisher) Publish(_ context.Context, event domain.BookingEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return errors.New("booking event publisher is closed")
	}

	select {
	case p.queue <- event:
		return nil
	default:
		return ErrPublishQueueFull
	}
}

func (p *AMQPPublisher) connect() error {
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: heartbeat,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(dialTimeout),
	})
	if err != nil {
		return fmt.Errorf("failed to dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	for _, queue := range eventQueues {
		_, err = ch.QueueDeclare(string(queue), true, false, false, false, nil)
		if err != nil {
			conn.Close()
			return fmt.Errorf("failed to declare queue %s: %w", queue, err)
		}
	}

	p.conn = conn
	p.ch = ch

	return nil
}

// send runs on the worker goroutine only.
func (p *AMQPPublisher) send(ctx context.Context, event domain.BookingEvent) error {
	body, err := json.Marshal(newBookingMessage(event))
	if err != nil {
		return fmt.Errorf("failed to encode booking event: %w", err)
	}

	if p.ch == nil || p.ch.IsClosed() {
		p.closeConn()

		err = p.connect()
		if err != nil {
			return err
		}
	}

	return p.ch.PublishWithContext(ctx, "", string(event.Type), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Type:         string(event.Type),
		Timestamp:    event.OccurredAt.UTC(),
		Body:         body,
	})
}

// Close stops accepting events, waits for the queued ones to be delivered and
// closes the broker connection.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	<-p.done

	return p.closeConn()
}

func (p *AMQPPublisher) closeConn() error {
	var errs []error

	if p.ch != nil && !p.ch.IsClosed() {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil && !p.conn.IsClosed() {
		errs = append(errs, p.conn.Close())
	}

	p.ch = nil
	p.conn = nil

	return errors.Join(errs...)
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, domain.BookingEvent) error {
	return nil
}
