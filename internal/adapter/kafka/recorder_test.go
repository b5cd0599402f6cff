package kafka_test

import (
	"context"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	events chan domain.CartEvent
}

func newFakeProducer() *fakeProducer {
	return &fakeProducer{events: make(chan domain.CartEvent, 1)}
}

func (f *fakeProducer) ProduceEvent(_ context.Context, e domain.CartEvent) error {
	f.events <- e
	return nil
}

func (f *fakeProducer) Close() {}

func (f *fakeProducer) wait(t *testing.T) domain.CartEvent {
	t.Helper()
	select {
	case e := <-f.events:
		return e
	case <-time.After(time.Second):
		t.Fatal("no event produced")
		return domain.CartEvent{}
	}
}

func TestEventsRecorder(t *testing.T) {

	t.Run("AddedToCart", func(t *testing.T) {
		producer := newFakeProducer()
		recorder := kafka.NewEventsRecorder(producer)

		recorder.AddedToCart(domain.CartLine{
			ProductID:     3,
			Name:          "Chouchou en Satin",
			Price:         5,
			SelectedColor: "Rose",
			Quantity:      2,
		})

		e := producer.wait(t)
		assert.Equal(t, domain.EventAddedToCart, e.Kind)
		assert.Equal(t, 3, e.ProductID)
		assert.Equal(t, "Rose", e.SelectedColor)
		assert.Equal(t, 2, e.Quantity)
		assert.Equal(t, 5.0, e.UnitPrice)
		require.False(t, e.OccurredAt.IsZero())
	})

	t.Run("CartChanged", func(t *testing.T) {
		producer := newFakeProducer()
		recorder := kafka.NewEventsRecorder(producer)

		recorder.CartChanged(7)

		e := producer.wait(t)
		assert.Equal(t, domain.EventCartChanged, e.Kind)
		assert.Equal(t, 7, e.TotalItems)
	})

	t.Run("ColorRequired", func(t *testing.T) {
		producer := newFakeProducer()
		recorder := kafka.NewEventsRecorder(producer)

		recorder.ColorRequired(1)

		e := producer.wait(t)
		assert.Equal(t, domain.EventColorRequired, e.Kind)
		assert.Equal(t, 1, e.ProductID)
	})
}
