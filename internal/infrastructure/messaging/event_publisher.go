package messaging

import (
	"context"
	"time"

	"github.com/xiebiao/literary-depot/internal/domain/book"
	"github.com/xiebiao/literary-depot/pkg/circuitbreaker"
)

// Broker is the subset of mq.Publisher the adapter needs.
type Broker interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// EventMessage is the JSON body published for every catalog event.
// The routing key equals Type, so consumers can bind to "book.*".
type EventMessage struct {
	Type       string    `json:"type"`
	BookID     string    `json:"book_id,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
	Count      int       `json:"count,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher adapts a Broker to book.EventPublisher.
type EventPublisher struct {
	broker  Broker
	breaker *circuitbreaker.CircuitBreaker
}

// Option configures an EventPublisher.
type Option func(*EventPublisher)

// WithBreaker guards the broker with cb. While cb is open, Publish returns
// circuitbreaker.ErrOpenState immediately instead of waiting on a dead
// connection inside the request path.
func WithBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(p *EventPublisher) { p.breaker = cb }
}

// NewEventPublisher creates the adapter.
func NewEventPublisher(broker Broker, opts ...Option) *EventPublisher {
	p := &EventPublisher{broker: broker}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ book.EventPublisher = (*EventPublisher)(nil)

func (p *EventPublisher) Publish(ctx context.Context, e book.Event) error {
	msg := EventMessage{
		Type:       e.Type,
		BookID:     e.BookID,
		ImageURL:   e.ImageURL,
		Count:      e.Count,
		OccurredAt: e.OccurredAt.UTC(),
	}
	if p.breaker == nil {
		return p.broker.Publish(ctx, e.Type, msg)
	}
	return p.breaker.Execute(func() error {
		return p.broker.Publish(ctx, e.Type, msg)
	})
}
