package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CartReader = (*CartService)(nil)
var _ port.CartEditor = (*CartService)(nil)
var _ port.CartCheckout = (*CartService)(nil)

// A CartService owns the cart slot. Lines are keyed by
// (productID, selectedColor) and carry a product snapshot taken at
// add time; every mutation is one read-modify-write of the whole
// slot. Concurrent writers are last-write-wins, the store assumes a
// single writer.
type CartService struct {
	storage   port.SlotStorage
	catalog   port.CatalogReader
	slot      string
	taxRate   float64
	observers []port.CartObserver
}

func NewCartService(
	storage port.SlotStorage,
	catalog port.CatalogReader,
	slot string,
	taxRate float64,
) *CartService {
	return &CartService{
		storage: storage,
		catalog: catalog,
		slot:    slot,
		taxRate: taxRate,
	}
}

// Subscribe registers an observer. Call during wiring, before the
// service handles operations.
func (s *CartService) Subscribe(o port.CartObserver) {
	s.observers = append(s.observers, o)
}

// Add puts one unit of the product into the cart. An unknown product
// is a silent no-op. A colored product without a selected color is
// rejected with domain.ErrColorRequired and a ColorRequired signal,
// leaving the cart untouched. An existing (productID, color) line is
// incremented by one, otherwise a new snapshot line is appended.
func (s *CartService) Add(
	ctx context.Context, productID int, selectedColor string,
) error {
	const op = "CartService.Add"
	log := slog.With("op", op)

	p, err := s.catalog.Get(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.Debug("product is absent", "productID", productID)
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if p.HasColors() && selectedColor == "" {
		s.notifyColorRequired(productID)
		return fmt.Errorf("%s: %w", op, domain.ErrColorRequired)
	}
	if selectedColor == "" {
		selectedColor = domain.NoColor
	}

	lines, err := s.readLines(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var line domain.CartLine
	merged := false
	for i := range lines {
		if lines[i].SameLine(productID, selectedColor) {
			lines[i].Quantity++
			line = lines[i]
			merged = true
			break
		}
	}
	if !merged {
		line = domain.NewCartLine(p, selectedColor)
		lines = append(lines, line)
	}

	if err := s.storage.WriteSlot(ctx, s.slot, lines); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.notifyCartChanged(sumQuantities(lines))
	s.notifyAddedToCart(line)
	log.Debug("added to cart",
		"productID", productID, "color", selectedColor, "quantity", line.Quantity)
	return nil
}

// Remove deletes the line matching the exact identity key, a no-op
// when no line matches.
func (s *CartService) Remove(
	ctx context.Context, productID int, selectedColor string,
) error {
	const op = "CartService.Remove"

	lines, err := s.readLines(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	kept := lines[:0]
	for _, l := range lines {
		if !l.SameLine(productID, selectedColor) {
			kept = append(kept, l)
		}
	}

	if err := s.storage.WriteSlot(ctx, s.slot, kept); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.notifyCartChanged(sumQuantities(kept))
	return nil
}

// SetQuantity sets the line quantity to an absolute value. Zero or
// negative removes the line. A missing line is a no-op, never a
// create.
func (s *CartService) SetQuantity(
	ctx context.Context, productID, quantity int, selectedColor string,
) error {
	const op = "CartService.SetQuantity"

	if quantity <= 0 {
		if err := s.Remove(ctx, productID, selectedColor); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}

	lines, err := s.readLines(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i := range lines {
		if !lines[i].SameLine(productID, selectedColor) {
			continue
		}
		lines[i].Quantity = quantity
		if err := s.storage.WriteSlot(ctx, s.slot, lines); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		s.notifyCartChanged(sumQuantities(lines))
		return nil
	}

	return nil
}

func (s *CartService) Lines(ctx context.Context) ([]domain.CartLine, error) {
	const op = "CartService.Lines"

	lines, err := s.readLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return lines, nil
}

// ItemCount sums the quantities over all lines, the badge value.
func (s *CartService) ItemCount(ctx context.Context) (int, error) {
	const op = "CartService.ItemCount"

	lines, err := s.readLines(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return sumQuantities(lines), nil
}

// Totals computes the subtotal over the stored line prices. The
// snapshot price is authoritative, the live catalog price is never
// consulted. Tax applies the configured rate on top of the subtotal.
func (s *CartService) Totals(ctx context.Context) (domain.CartTotals, error) {
	const op = "CartService.Totals"

	lines, err := s.readLines(ctx)
	if err != nil {
		return domain.CartTotals{}, fmt.Errorf("%s: %w", op, err)
	}
	return s.totals(lines), nil
}

// Checkout returns the order summary without touching the cart.
// Confirmation is a separate step, see ConfirmCheckout.
func (s *CartService) Checkout(ctx context.Context) (domain.CheckoutSummary, error) {
	const op = "CartService.Checkout"

	lines, err := s.readLines(ctx)
	if err != nil {
		return domain.CheckoutSummary{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(lines) == 0 {
		return domain.CheckoutSummary{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	summary := domain.CheckoutSummary{Totals: s.totals(lines)}
	for _, l := range lines {
		summary.Lines = append(summary.Lines, domain.CheckoutLine{
			Name:          l.Name,
			SelectedColor: l.SelectedColor,
			Quantity:      l.Quantity,
			LineTotal:     l.Total(),
		})
	}
	return summary, nil
}

// ConfirmCheckout empties the cart. No order record is persisted.
// An already empty cart is rejected with domain.ErrEmptyCart, same
// as Checkout; confirmation is unreachable without a summary.
func (s *CartService) ConfirmCheckout(ctx context.Context) error {
	const op = "CartService.ConfirmCheckout"
	log := slog.With("op", op)

	lines, err := s.readLines(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(lines) == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	if err := s.storage.WriteSlot(ctx, s.slot, []domain.CartLine{}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.notifyCartChanged(0)
	log.Info("checkout confirmed, cart cleared")
	return nil
}

func (s *CartService) readLines(ctx context.Context) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	if err := s.storage.ReadSlot(ctx, s.slot, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *CartService) totals(lines []domain.CartLine) domain.CartTotals {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.Total()
	}
	tax := subtotal * s.taxRate
	return domain.CartTotals{
		Subtotal:   subtotal,
		TaxRate:    s.taxRate,
		Tax:        tax,
		GrandTotal: subtotal + tax,
	}
}

func (s *CartService) notifyCartChanged(total int) {
	for _, o := range s.observers {
		o.CartChanged(total)
	}
}

func (s *CartService) notifyColorRequired(productID int) {
	for _, o := range s.observers {
		o.ColorRequired(productID)
	}
}

func (s *CartService) notifyAddedToCart(line domain.CartLine) {
	for _, o := range s.observers {
		o.AddedToCart(line)
	}
}

func sumQuantities(lines []domain.CartLine) (total int) {
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}
