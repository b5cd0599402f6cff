package domain

import "time"

type CartEventKind string

const (
	EventCartChanged   CartEventKind = "cart_changed"
	EventAddedToCart   CartEventKind = "added_to_cart"
	EventColorRequired CartEventKind = "color_required"
)

// A CartEvent mirrors one observer signal for the client-events stream.
type CartEvent struct {
	Kind          CartEventKind
	ProductID     int
	ProductName   string
	SelectedColor string
	Quantity      int
	UnitPrice     float64
	TotalItems    int
	OccurredAt    time.Time
}
