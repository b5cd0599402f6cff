package domain

import "errors"

var (
	// ErrNotFound marks a missing product or cart line. Mutating cart
	// operations swallow it (silent no-op); lookups surface it.
	ErrNotFound = errors.New("not found")

	// ErrColorRequired rejects adding a colored product without a
	// selected color. State is unchanged when it is returned.
	ErrColorRequired = errors.New("color selection required")

	ErrInvalidProduct = errors.New("invalid product")

	ErrEmptyCart = errors.New("cart is empty")

	// ErrStorageUnavailable wraps slot read/write failures of the
	// underlying store.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
