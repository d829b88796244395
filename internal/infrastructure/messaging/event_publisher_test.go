package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/literary-depot/internal/domain/book"
	"github.com/xiebiao/literary-depot/pkg/circuitbreaker"
)

type mockBroker struct {
	mock.Mock
}

func (m *mockBroker) Publish(ctx context.Context, routingKey string, message interface{}) error {
	return m.Called(ctx, routingKey, message).Error(0)
}

func TestEventPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 6, 25, 14, 2, 11, 0, time.FixedZone("CST", 8*3600))
	broker := new(mockBroker)

	want := EventMessage{
		Type:       book.EventCoverUploaded,
		BookID:     "b1",
		ImageURL:   "/uploads/b1.jpg",
		OccurredAt: at.UTC(),
	}
	broker.On("Publish", ctx, "book.cover_uploaded", want).Return(nil)

	err := NewEventPublisher(broker).Publish(ctx, book.Event{
		Type:       book.EventCoverUploaded,
		BookID:     "b1",
		ImageURL:   "/uploads/b1.jpg",
		OccurredAt: at,
	})
	require.NoError(t, err)
	broker.AssertExpectations(t)
}

func TestEventPublisher_PropagatesBrokerError(t *testing.T) {
	broker := new(mockBroker)
	broker.On("Publish", mock.Anything, "catalog.seeded", mock.Anything).Return(errors.New("channel closed"))

	err := NewEventPublisher(broker).Publish(context.Background(), book.Event{Type: book.EventCatalogSeeded, Count: 17})
	assert.EqualError(t, err, "channel closed")
}

func TestEventMessage_JSON(t *testing.T) {
	data, err := json.Marshal(EventMessage{
		Type:       book.EventCatalogSeeded,
		Count:      17,
		OccurredAt: time.Date(2025, 6, 25, 6, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"catalog.seeded","count":17,"occurred_at":"2025-06-25T06:00:00Z"}`, string(data))
}

func TestEventPublisher_BreakerFailsFast(t *testing.T) {
	broker := new(mockBroker)
	broker.On("Publish", mock.Anything, book.EventBookCreated, mock.Anything).Return(errors.New("connection refused"))

	cb := circuitbreaker.NewCircuitBreaker("events", circuitbreaker.Config{
		Timeout:     time.Minute,
		ReadyToTrip: func(c circuitbreaker.Counts) bool { return c.ConsecutiveFailures >= 2 },
	})
	p := NewEventPublisher(broker, WithBreaker(cb))

	for i := 0; i < 2; i++ {
		assert.EqualError(t, p.Publish(context.Background(), book.Event{Type: book.EventBookCreated}), "connection refused")
	}
	err := p.Publish(context.Background(), book.Event{Type: book.EventBookCreated})

	assert.ErrorIs(t, err, circuitbreaker.ErrOpenState)
	broker.AssertNumberOfCalls(t, "Publish", 2)
}
