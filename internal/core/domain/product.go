package domain

type (
	// Product is a persisted record of the product slot.
	Product struct {
		ID          int      `json:"id"`
		Name        string   `json:"name"`
		Price       float64  `json:"price"`
		Description string   `json:"description"`
		Image       string   `json:"image"`
		Colors      []string `json:"colors,omitempty"`
	}

	ProductDraft struct {
		Name        string
		Price       float64
		Description string
		Image       string
		Colors      []string
	}
)

// HasColors reports whether the product requires a color
// selection before it can be added to the cart.
func (p Product) HasColors() bool {
	return len(p.Colors) > 0
}
