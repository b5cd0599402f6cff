package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

// SlotStorage persists named slots, each holding one JSON array of
// records. Reading an absent or malformed slot yields an empty
// sequence; writing replaces the slot wholesale.
type SlotStorage interface {
	ReadSlot(ctx context.Context, slot string, v any) error
	WriteSlot(ctx context.Context, slot string, v any) error
}

type CatalogReader interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int) (domain.Product, error)
}

type CatalogAdmin interface {
	Create(ctx context.Context, draft domain.ProductDraft) (domain.Product, error)
	Update(ctx context.Context, id int, name string, price float64) (domain.Product, error)
	Delete(ctx context.Context, id int) error
	Clear(ctx context.Context) error
	Export(ctx context.Context) ([]byte, error)
}

type CartReader interface {
	Lines(ctx context.Context) ([]domain.CartLine, error)
	ItemCount(ctx context.Context) (int, error)
	Totals(ctx context.Context) (domain.CartTotals, error)
}

type CartEditor interface {
	Add(ctx context.Context, productID int, selectedColor string) error
	Remove(ctx context.Context, productID int, selectedColor string) error
	SetQuantity(ctx context.Context, productID, quantity int, selectedColor string) error
}

type CartCheckout interface {
	Checkout(ctx context.Context) (domain.CheckoutSummary, error)
	ConfirmCheckout(ctx context.Context) error
}

// CartObserver receives the collaborator-facing signals fired after
// cart engine operations. Implementations must not block.
type CartObserver interface {
	CartChanged(totalItems int)
	ColorRequired(productID int)
	AddedToCart(line domain.CartLine)
}

type CartEventsProducer interface {
	ProduceEvent(ctx context.Context, e domain.CartEvent) error
	Close()
}
