package schema

const CartEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "cart_event",
	"fields" : [
		{"name": "kind", "type": "string"},
		{"name": "product_id", "type": "long"},
		{"name": "product_name", "type": "string"},
		{"name": "selected_color", "type": "string"},
		{"name": "quantity", "type": "long"},
		{"name": "unit_price", "type": "double"},
		{"name": "total_items", "type": "long"},
		{"name": "occurred_at", "type": "long"}
	]
}`

// CartEventV1 mirrors one cart observer signal. OccurredAt is unix
// milliseconds.
type CartEventV1 struct {
	Kind          string  `avro:"kind"`
	ProductID     int     `avro:"product_id"`
	ProductName   string  `avro:"product_name"`
	SelectedColor string  `avro:"selected_color"`
	Quantity      int     `avro:"quantity"`
	UnitPrice     float64 `avro:"unit_price"`
	TotalItems    int     `avro:"total_items"`
	OccurredAt    int64   `avro:"occurred_at"`
}
