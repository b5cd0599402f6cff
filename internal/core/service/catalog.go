package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/placeholder"
)

var _ port.CatalogReader = (*CatalogService)(nil)
var _ port.CatalogAdmin = (*CatalogService)(nil)

// A CatalogService owns the product slot: seed data, listing,
// point lookup and the admin read-modify-write-all mutations.
type CatalogService struct {
	storage port.SlotStorage
	slot    string
}

func NewCatalogService(storage port.SlotStorage, slot string) CatalogService {
	return CatalogService{storage, slot}
}

// Seed populates an absent or empty product slot with the built-in
// catalog. A populated slot is left untouched unless force is set,
// which clears and reseeds it.
func (s CatalogService) Seed(ctx context.Context, force bool) error {
	const op = "CatalogService.Seed"
	log := slog.With("op", op)

	if !force {
		ps, err := s.readAll(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if len(ps) > 0 {
			log.Debug("catalog already populated", "nProducts", len(ps))
			return nil
		}
	}

	seed := SeedCatalog()
	if err := s.storage.WriteSlot(ctx, s.slot, seed); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("catalog seeded", "nProducts", len(seed), "force", force)
	return nil
}

func (s CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogService.List"

	ps, err := s.readAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s CatalogService) Get(ctx context.Context, id int) (domain.Product, error) {
	const op = "CatalogService.Get"

	ps, err := s.readAll(ctx)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, p := range ps {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}

func (s CatalogService) Create(
	ctx context.Context, draft domain.ProductDraft,
) (domain.Product, error) {
	const op = "CatalogService.Create"
	log := slog.With("op", op)

	if err := validateDraft(draft); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.readAll(ctx)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p := domain.Product{
		ID:          nextID(ps),
		Name:        strings.TrimSpace(draft.Name),
		Price:       draft.Price,
		Description: strings.TrimSpace(draft.Description),
		Image:       draft.Image,
		Colors:      draft.Colors,
	}
	if p.Image == "" {
		p.Image = placeholder.DataURI(p.Name)
	}

	ps = append(ps, p)
	if err := s.storage.WriteSlot(ctx, s.slot, ps); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("product created", "productID", p.ID, "name", p.Name)
	return p, nil
}

func (s CatalogService) Update(
	ctx context.Context, id int, name string, price float64,
) (domain.Product, error) {
	const op = "CatalogService.Update"
	log := slog.With("op", op)

	if err := validateDraft(domain.ProductDraft{Name: name, Price: price}); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.readAll(ctx)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	for i := range ps {
		if ps[i].ID != id {
			continue
		}
		ps[i].Name = strings.TrimSpace(name)
		ps[i].Price = price
		if err := s.storage.WriteSlot(ctx, s.slot, ps); err != nil {
			return domain.Product{}, fmt.Errorf("%s: %w", op, err)
		}
		log.Info("product updated", "productID", id)
		return ps[i], nil
	}

	return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
}

// Delete removes the product wholesale. Cart lines referencing the
// id are left alone and keep their snapshot.
func (s CatalogService) Delete(ctx context.Context, id int) error {
	const op = "CatalogService.Delete"
	log := slog.With("op", op)

	ps, err := s.readAll(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	kept := ps[:0]
	for _, p := range ps {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(ps) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	if err := s.storage.WriteSlot(ctx, s.slot, kept); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("product deleted", "productID", id)
	return nil
}

func (s CatalogService) Clear(ctx context.Context) error {
	const op = "CatalogService.Clear"
	log := slog.With("op", op)

	if err := s.storage.WriteSlot(ctx, s.slot, []domain.Product{}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("catalog cleared")
	return nil
}

// Export dumps the catalog as indented JSON for backups.
func (s CatalogService) Export(ctx context.Context) ([]byte, error) {
	const op = "CatalogService.Export"

	ps, err := s.readAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	b, err := json.MarshalIndent(ps, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

func (s CatalogService) readAll(ctx context.Context) ([]domain.Product, error) {
	var ps []domain.Product
	if err := s.storage.ReadSlot(ctx, s.slot, &ps); err != nil {
		return nil, err
	}
	return ps, nil
}

func validateDraft(d domain.ProductDraft) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is empty", domain.ErrInvalidProduct)
	}
	if d.Price < 0 {
		return fmt.Errorf("%w: price is negative", domain.ErrInvalidProduct)
	}
	return nil
}

// nextID assigns max(ids)+1, or 1 for an empty catalog.
// Ids are never reused after deletion.
func nextID(ps []domain.Product) int {
	maxID := 0
	for _, p := range ps {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}
