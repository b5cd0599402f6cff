package domain

// NoColor is the selected-color sentinel stored on cart lines
// of products without color variants.
const NoColor = "N/A"

type (
	// A CartLine is a persisted record of the cart slot. It carries a
	// snapshot of the product taken at add time; later catalog edits
	// never flow back into the line.
	CartLine struct {
		ProductID     int     `json:"productId"`
		Name          string  `json:"name"`
		Price         float64 `json:"price"`
		Description   string  `json:"description"`
		Image         string  `json:"image"`
		SelectedColor string  `json:"selectedColor"`
		Quantity      int     `json:"quantity"`
	}

	CartTotals struct {
		Subtotal   float64
		TaxRate    float64
		Tax        float64
		GrandTotal float64
	}

	CheckoutLine struct {
		Name          string
		SelectedColor string
		Quantity      int
		LineTotal     float64
	}

	CheckoutSummary struct {
		Lines  []CheckoutLine
		Totals CartTotals
	}
)

// SameLine reports whether the line matches the identity key
// (productID, selectedColor).
func (l CartLine) SameLine(productID int, selectedColor string) bool {
	return l.ProductID == productID && l.SelectedColor == selectedColor
}

func (l CartLine) Total() float64 {
	return l.Price * float64(l.Quantity)
}

func NewCartLine(p Product, selectedColor string) CartLine {
	return CartLine{
		ProductID:     p.ID,
		Name:          p.Name,
		Price:         p.Price,
		Description:   p.Description,
		Image:         p.Image,
		SelectedColor: selectedColor,
		Quantity:      1,
	}
}
