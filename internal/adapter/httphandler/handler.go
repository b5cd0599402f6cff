package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET /v1/products, GET /v1/products/{id} (200 OK, 404 Not found)

type CatalogHandler struct {
	catalog port.CatalogReader
}

func RegisterCatalog(mux *http.ServeMux, catalog port.CatalogReader) {
	h := CatalogHandler{catalog}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	ps, err := h.catalog.List(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	dtos := make([]Product, 0, len(ps))
	for _, p := range ps {
		dtos = append(dtos, productToDTO(p))
	}
	writeJSON(w, log, http.StatusOK, dtos)
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"
	log := slog.With("op", op)

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, productToDTO(p))
}

// GET /v1/cart
// POST /v1/cart/items JSON {"product_id", "selected_color"} (204, 400)
// PUT /v1/cart/items JSON {"product_id", "selected_color", "quantity"} (204)
// DELETE /v1/cart/items?product_id=N&selected_color=C (204)
// POST /v1/cart/checkout (200, 400 empty cart)
// POST /v1/cart/checkout/confirm (204, 400 empty cart)

type CartHandler struct {
	reader   port.CartReader
	editor   port.CartEditor
	checkout port.CartCheckout
}

func RegisterCart(
	mux *http.ServeMux,
	reader port.CartReader,
	editor port.CartEditor,
	checkout port.CartCheckout,
) {
	h := CartHandler{reader, editor, checkout}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostItem)
	mux.HandleFunc("PUT /v1/cart/items", h.PutItem)
	mux.HandleFunc("DELETE /v1/cart/items", h.DeleteItem)
	mux.HandleFunc("POST /v1/cart/checkout", h.PostCheckout)
	mux.HandleFunc("POST /v1/cart/checkout/confirm", h.PostCheckoutConfirm)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	lines, err := h.reader.Lines(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}
	totals, err := h.reader.Totals(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	cart := Cart{Items: make([]CartItem, 0, len(lines)), Totals: totalsToDTO(totals)}
	for _, l := range lines {
		cart.Items = append(cart.Items, CartItem{
			ProductID:     l.ProductID,
			Name:          l.Name,
			Price:         l.Price,
			Image:         l.Image,
			SelectedColor: l.SelectedColor,
			Quantity:      l.Quantity,
			LineTotal:     l.Total(),
		})
		cart.TotalItems += l.Quantity
	}
	writeJSON(w, log, http.StatusOK, cart)
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var ref CartItemRef
	if err := json.NewDecoder(r.Body).Decode(&ref); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	err := h.editor.Add(r.Context(), ref.ProductID, ref.SelectedColor)
	if err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) PutItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PutItem"
	log := slog.With("op", op)

	var item CartItemQuantity
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	err := h.editor.SetQuantity(
		r.Context(), item.ProductID, item.Quantity, item.SelectedColor,
	)
	if err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteItem"
	log := slog.With("op", op)

	productID, err := strconv.Atoi(r.URL.Query().Get("product_id"))
	if err != nil {
		http.Error(w, "invalid product_id", http.StatusBadRequest)
		return
	}
	selectedColor := r.URL.Query().Get("selected_color")

	if err := h.editor.Remove(r.Context(), productID, selectedColor); err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostCheckout"
	log := slog.With("op", op)

	summary, err := h.checkout.Checkout(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	dto := CheckoutSummary{Totals: totalsToDTO(summary.Totals)}
	for _, l := range summary.Lines {
		dto.Lines = append(dto.Lines, CheckoutLine{
			Name:          l.Name,
			SelectedColor: l.SelectedColor,
			Quantity:      l.Quantity,
			LineTotal:     l.LineTotal,
		})
	}
	writeJSON(w, log, http.StatusOK, dto)
}

func (h CartHandler) PostCheckoutConfirm(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostCheckoutConfirm"
	log := slog.With("op", op)

	if err := h.checkout.ConfirmCheckout(r.Context()); err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /v1/admin/products JSON draft (201, 400)
// PATCH /v1/admin/products/{id} JSON {"name", "price"} (200, 404)
// DELETE /v1/admin/products/{id} (204, 404)
// DELETE /v1/admin/products (204)
// GET /v1/admin/products/export (200, attachment)

type AdminHandler struct {
	admin port.CatalogAdmin
}

func RegisterAdmin(mux *http.ServeMux, admin port.CatalogAdmin) {
	h := AdminHandler{admin}
	mux.HandleFunc("POST /v1/admin/products", h.PostProduct)
	mux.HandleFunc("PATCH /v1/admin/products/{id}", h.PatchProduct)
	mux.HandleFunc("DELETE /v1/admin/products/{id}", h.DeleteProduct)
	mux.HandleFunc("DELETE /v1/admin/products", h.DeleteAllProducts)
	mux.HandleFunc("GET /v1/admin/products/export", h.GetExport)
}

func (h AdminHandler) PostProduct(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.PostProduct"
	log := slog.With("op", op)

	var draft ProductDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	p, err := h.admin.Create(r.Context(), domain.ProductDraft{
		Name:        draft.Name,
		Price:       draft.Price,
		Description: draft.Description,
		Image:       draft.Image,
		Colors:      draft.Colors,
	})
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusCreated, productToDTO(p))
}

func (h AdminHandler) PatchProduct(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.PatchProduct"
	log := slog.With("op", op)

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	p, err := h.admin.Update(r.Context(), id, patch.Name, patch.Price)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, productToDTO(p))
}

func (h AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.DeleteProduct"
	log := slog.With("op", op)

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.admin.Delete(r.Context(), id); err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h AdminHandler) DeleteAllProducts(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.DeleteAllProducts"
	log := slog.With("op", op)

	if err := h.admin.Clear(r.Context()); err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h AdminHandler) GetExport(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.GetExport"
	log := slog.With("op", op)

	b, err := h.admin.Export(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(
		"Content-Disposition", `attachment; filename="products_backup.json"`,
	)
	if _, err := w.Write(b); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func productToDTO(p domain.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
		Colors:      p.Colors,
	}
}

func totalsToDTO(t domain.CartTotals) Totals {
	return Totals{
		Subtotal:   t.Subtotal,
		TaxRate:    t.TaxRate,
		Tax:        t.Tax,
		GrandTotal: t.GrandTotal,
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrColorRequired):
		http.Error(w, "color selection required", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidProduct):
		http.Error(w, "invalid product data", http.StatusBadRequest)
	case errors.Is(err, domain.ErrEmptyCart):
		http.Error(w, "cart is empty", http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrStorageUnavailable):
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
		log.Error("slot storage failure", "err", err)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
		log.Error("unexpected failure", "err", err)
	}
}
