package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	bolt "go.etcd.io/bbolt"
)

var _ port.SlotStorage = (*SlotRepository)(nil)

const slotsBucket = "slots"

// A SlotRepository keeps each named slot as one JSON array value in
// a single bucket. A write replaces the slot wholesale in one
// update tx; readers never observe a partial write. Two processes
// sharing the file are last-write-wins, there is no conflict
// detection.
type SlotRepository struct {
	db Bolt
}

func NewSlotRepository(db Bolt) SlotRepository {
	return SlotRepository{db}
}

// ReadSlot decodes the slot content into v. An absent or malformed
// slot leaves v as an empty sequence and returns nil.
func (r SlotRepository) ReadSlot(ctx context.Context, slot string, v any) error {
	const op = "SlotRepository.ReadSlot"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var raw []byte
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(slotsBucket))
		if b == nil {
			return nil
		}
		if data := b.Get([]byte(slot)); data != nil {
			raw = append(raw, data...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
	}

	if len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, v); err != nil {
		log.Warn("malformed slot, reading as empty", "slot", slot, "err", err)
		zeroTarget(v)
		return nil
	}
	return nil
}

// json.Unmarshal keeps decoding past a type mismatch, leaving the
// target partially populated. A slot that fails to decode must read
// as empty wholesale, not as whatever survived.
func zeroTarget(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv.Elem().SetZero()
	}
}

// WriteSlot replaces the slot content with the JSON encoding of v.
func (r SlotRepository) WriteSlot(ctx context.Context, slot string, v any) error {
	const op = "SlotRepository.WriteSlot"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(slotsBucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(slot), raw)
	})
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
	}
	return nil
}
