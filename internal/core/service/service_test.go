package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/require"
)

const (
	productsSlot = "storefront_products"
	cartSlot     = "storefront_cart"
)

type memStorage struct {
	slots      map[string][]byte
	failWrites bool
}

func newMemStorage() *memStorage {
	return &memStorage{slots: make(map[string][]byte)}
}

func (m *memStorage) ReadSlot(_ context.Context, slot string, v any) error {
	b, ok := m.slots[slot]
	if !ok {
		return nil
	}
	return json.Unmarshal(b, v)
}

func (m *memStorage) WriteSlot(_ context.Context, slot string, v any) error {
	if m.failWrites {
		return fmt.Errorf("memStorage: %w", domain.ErrStorageUnavailable)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.slots[slot] = b
	return nil
}

type observerSpy struct {
	changed       []int
	colorRequired []int
	added         []domain.CartLine
}

func (o *observerSpy) CartChanged(total int) {
	o.changed = append(o.changed, total)
}

func (o *observerSpy) ColorRequired(productID int) {
	o.colorRequired = append(o.colorRequired, productID)
}

func (o *observerSpy) AddedToCart(line domain.CartLine) {
	o.added = append(o.added, line)
}

func fixtureProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Bonnet Satin", Price: 20, Colors: []string{"Noir", "Rose"}},
		{ID: 3, Name: "Chouchou en Satin", Price: 5, Colors: []string{"Rose", "Noir"}},
		{ID: 4, Name: "Pochette Satin", Price: 12},
	}
}

func newCartFixture(
	t *testing.T, taxRate float64,
) (*memStorage, *service.CartService, *observerSpy) {
	t.Helper()

	storage := newMemStorage()
	err := storage.WriteSlot(t.Context(), productsSlot, fixtureProducts())
	require.NoError(t, err)

	catalog := service.NewCatalogService(storage, productsSlot)
	cart := service.NewCartService(storage, catalog, cartSlot, taxRate)

	spy := new(observerSpy)
	cart.Subscribe(spy)

	return storage, cart, spy
}
