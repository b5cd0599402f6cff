package storage

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	bolt "go.etcd.io/bbolt"
)

const openTimeout = time.Second

type Bolt struct {
	*bolt.DB
}

func NewBolt(path string) (Bolt, error) {
	const op = "Bolt"
	log := slog.With("op", op)

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return Bolt{}, fmt.Errorf(
			"%s: %w: %w", op, domain.ErrStorageUnavailable, err,
		)
	}
	log.Info("slot storage is open", "path", path)
	return Bolt{db}, nil
}

func (b Bolt) Close() {
	const op = "Bolt.Close"
	log := slog.With("op", op)

	log.Info("closing slot storage...")

	if err := b.DB.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("slot storage is closed")
}
