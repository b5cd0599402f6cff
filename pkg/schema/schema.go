package schema

import "github.com/hamba/avro/v2"

// AvroEncodeFn binds s into an sr.Serde-compatible encode function.
func AvroEncodeFn(s avro.Schema) func(v any) ([]byte, error) {
	return func(v any) ([]byte, error) {
		return avro.Marshal(s, v)
	}
}

// AvroDecodeFn binds s into an sr.Serde-compatible decode function.
func AvroDecodeFn(s avro.Schema) func([]byte, any) error {
	return func(data []byte, v any) error {
		return avro.Unmarshal(s, data, v)
	}
}
