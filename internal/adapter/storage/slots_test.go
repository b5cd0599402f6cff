package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func openRepo(t *testing.T) (storage.Bolt, storage.SlotRepository) {
	t.Helper()
	db, err := storage.NewBolt(filepath.Join(t.TempDir(), "storefront.db"))
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db, storage.NewSlotRepository(db)
}

func TestSlotRepository(t *testing.T) {

	t.Run("RoundTrip", func(t *testing.T) {
		_, repo := openRepo(t)

		in := []domain.Product{
			{ID: 1, Name: "Bonnet Satin", Price: 20, Colors: []string{"Noir"}},
			{ID: 2, Name: "Chouchou", Price: 5},
		}
		require.NoError(t, repo.WriteSlot(t.Context(), "storefront_products", in))

		var out []domain.Product
		require.NoError(t, repo.ReadSlot(t.Context(), "storefront_products", &out))
		assert.Equal(t, in, out)
	})

	t.Run("AbsentSlotReadsEmpty", func(t *testing.T) {
		_, repo := openRepo(t)

		var out []domain.Product
		require.NoError(t, repo.ReadSlot(t.Context(), "missing", &out))
		assert.Empty(t, out)
	})

	t.Run("MalformedSlotReadsEmpty", func(t *testing.T) {
		db, repo := openRepo(t)

		err := db.Update(func(tx *bolt.Tx) error {
			b, err := tx.CreateBucketIfNotExists([]byte("slots"))
			if err != nil {
				return err
			}
			return b.Put([]byte("storefront_cart"), []byte("{not json"))
		})
		require.NoError(t, err)

		var out []domain.CartLine
		require.NoError(t, repo.ReadSlot(t.Context(), "storefront_cart", &out))
		assert.Empty(t, out)
	})

	t.Run("MistypedSlotReadsEmpty", func(t *testing.T) {
		db, repo := openRepo(t)

		// valid JSON, wrong field type: decoding fails midway and
		// must not leave the survivors behind
		raw := []byte(`[{"productId":1,"quantity":2},{"productId":"oops","quantity":3}]`)
		err := db.Update(func(tx *bolt.Tx) error {
			b, err := tx.CreateBucketIfNotExists([]byte("slots"))
			if err != nil {
				return err
			}
			return b.Put([]byte("storefront_cart"), raw)
		})
		require.NoError(t, err)

		var out []domain.CartLine
		require.NoError(t, repo.ReadSlot(t.Context(), "storefront_cart", &out))
		assert.Empty(t, out)
	})

	t.Run("WriteReplacesWholesale", func(t *testing.T) {
		_, repo := openRepo(t)

		first := []domain.Product{{ID: 1, Name: "A", Price: 1}, {ID: 2, Name: "B", Price: 2}}
		require.NoError(t, repo.WriteSlot(t.Context(), "storefront_products", first))

		second := []domain.Product{{ID: 3, Name: "C", Price: 3}}
		require.NoError(t, repo.WriteSlot(t.Context(), "storefront_products", second))

		var out []domain.Product
		require.NoError(t, repo.ReadSlot(t.Context(), "storefront_products", &out))
		assert.Equal(t, second, out)
	})

	t.Run("SlotsAreIndependent", func(t *testing.T) {
		_, repo := openRepo(t)

		require.NoError(t, repo.WriteSlot(t.Context(), "storefront_products",
			[]domain.Product{{ID: 1, Name: "A", Price: 1}}))
		require.NoError(t, repo.WriteSlot(t.Context(), "storefront_cart",
			[]domain.CartLine{{ProductID: 9, Name: "Z", Quantity: 2, SelectedColor: domain.NoColor}}))

		var lines []domain.CartLine
		require.NoError(t, repo.ReadSlot(t.Context(), "storefront_cart", &lines))
		require.Len(t, lines, 1)
		assert.Equal(t, 9, lines[0].ProductID)
	})

	t.Run("ClosedStorageIsUnavailable", func(t *testing.T) {
		db, err := storage.NewBolt(filepath.Join(t.TempDir(), "storefront.db"))
		require.NoError(t, err)
		repo := storage.NewSlotRepository(db)
		db.Close()

		err = repo.WriteSlot(t.Context(), "storefront_cart", []domain.CartLine{})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		_, repo := openRepo(t)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		var out []domain.Product
		err := repo.ReadSlot(ctx, "storefront_products", &out)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
