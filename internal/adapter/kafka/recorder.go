package kafka

import (
	"context"
	"log/slog"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CartObserver = (*EventsRecorder)(nil)

const emitTimeout = 5 * time.Second

// An EventsRecorder forwards cart observer signals to the
// client-events topic. Emission is asynchronous and best-effort:
// a broker failure is logged and never reaches the cart engine.
type EventsRecorder struct {
	producer port.CartEventsProducer
}

func NewEventsRecorder(producer port.CartEventsProducer) EventsRecorder {
	return EventsRecorder{producer}
}

func (r EventsRecorder) CartChanged(totalItems int) {
	r.emit(domain.CartEvent{
		Kind:       domain.EventCartChanged,
		TotalItems: totalItems,
	})
}

func (r EventsRecorder) ColorRequired(productID int) {
	r.emit(domain.CartEvent{
		Kind:      domain.EventColorRequired,
		ProductID: productID,
	})
}

func (r EventsRecorder) AddedToCart(line domain.CartLine) {
	r.emit(domain.CartEvent{
		Kind:          domain.EventAddedToCart,
		ProductID:     line.ProductID,
		ProductName:   line.Name,
		SelectedColor: line.SelectedColor,
		Quantity:      line.Quantity,
		UnitPrice:     line.Price,
	})
}

func (r EventsRecorder) emit(e domain.CartEvent) {
	e.OccurredAt = time.Now()
	go func() {
		const op = "EventsRecorder.emit"

		ctx, cancel := context.WithTimeout(context.Background(), emitTimeout)
		defer cancel()

		if err := r.producer.ProduceEvent(ctx, e); err != nil {
			slog.With("op", op).Error("failed to produce cart event",
				"kind", e.Kind, "err", err)
		}
	}()
}
