package httphandler

type (
	Product struct {
		ID          int      `json:"id"`
		Name        string   `json:"name"`
		Price       float64  `json:"price"`
		Description string   `json:"description"`
		Image       string   `json:"image"`
		Colors      []string `json:"colors,omitempty"`
	}

	ProductDraft struct {
		Name        string   `json:"name"`
		Price       float64  `json:"price"`
		Description string   `json:"description"`
		Image       string   `json:"image"`
		Colors      []string `json:"colors,omitempty"`
	}

	ProductPatch struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
)

type (
	CartItem struct {
		ProductID     int     `json:"product_id"`
		Name          string  `json:"name"`
		Price         float64 `json:"price"`
		Image         string  `json:"image"`
		SelectedColor string  `json:"selected_color"`
		Quantity      int     `json:"quantity"`
		LineTotal     float64 `json:"line_total"`
	}

	CartItemRef struct {
		ProductID     int    `json:"product_id"`
		SelectedColor string `json:"selected_color"`
	}

	CartItemQuantity struct {
		ProductID     int    `json:"product_id"`
		SelectedColor string `json:"selected_color"`
		Quantity      int    `json:"quantity"`
	}

	Totals struct {
		Subtotal   float64 `json:"subtotal"`
		TaxRate    float64 `json:"tax_rate"`
		Tax        float64 `json:"tax"`
		GrandTotal float64 `json:"grand_total"`
	}

	Cart struct {
		Items      []CartItem `json:"items"`
		TotalItems int        `json:"total_items"`
		Totals     Totals     `json:"totals"`
	}

	CheckoutLine struct {
		Name          string  `json:"name"`
		SelectedColor string  `json:"selected_color"`
		Quantity      int     `json:"quantity"`
		LineTotal     float64 `json:"line_total"`
	}

	CheckoutSummary struct {
		Lines  []CheckoutLine `json:"lines"`
		Totals Totals         `json:"totals"`
	}
)
