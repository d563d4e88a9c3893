//go:build unit

package basket_test

import (
	"testing"

	"github.com/leburgeon/ecom-backapi/internal/domain/basket"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotFixture() (map[uuid.UUID]basket.Snapshot, []uuid.UUID) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	snaps := map[uuid.UUID]basket.Snapshot{
		ids[0]: {ProductID: ids[0], Name: "Keyboard", PriceCents: 4999, Stock: 10},
		ids[1]: {ProductID: ids[1], Name: "Mouse", PriceCents: 1500, Stock: 3},
		ids[2]: {ProductID: ids[2], Name: "Monitor", PriceCents: 19900, Stock: 1},
	}
	return snaps, ids
}

func TestProcess(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		snaps, ids := snapshotFixture()

		processed, err := basket.Process([]basket.Line{
			{ProductID: ids[0], Quantity: 2},
			{ProductID: ids[1], Quantity: 1},
		}, snaps)
		require.NoError(t, err)
		require.Len(t, processed.Items, 2)

		assert.Equal(t, int64(2*4999+1500), processed.TotalCents)
		for _, item := range processed.Items {
			snap := snaps[item.ProductID]
			assert.Equal(t, snap.Name, item.Name)
			assert.Equal(t, snap.PriceCents, item.UnitPriceCents)
		}
	})

	t.Run("empty basket", func(t *testing.T) {
		snaps, _ := snapshotFixture()

		_, err := basket.Process(nil, snaps)
		assert.ErrorIs(t, err, basket.ErrEmptyBasket)

		_, err = basket.Process([]basket.Line{}, snaps)
		assert.ErrorIs(t, err, basket.ErrEmptyBasket)
	})

	t.Run("duplicate lines merge before stock validation", func(t *testing.T) {
		snaps, ids := snapshotFixture()

		processed, err := basket.Process([]basket.Line{
			{ProductID: ids[1], Quantity: 1},
			{ProductID: ids[1], Quantity: 2},
		}, snaps)
		require.NoError(t, err)
		require.Len(t, processed.Items, 1)
		assert.Equal(t, int32(3), processed.Items[0].Quantity)
		assert.Equal(t, int64(3*1500), processed.TotalCents)

		// Merged quantity 4 exceeds the stock of 3 even though each line
		// alone would fit.
		_, err = basket.Process([]basket.Line{
			{ProductID: ids[1], Quantity: 2},
			{ProductID: ids[1], Quantity: 2},
		}, snaps)
		var insufficient *basket.InsufficientStockError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, ids[1], insufficient.ProductID)
		assert.Equal(t, int32(4), insufficient.Requested)
		assert.Equal(t, int32(3), insufficient.Available)
	})

	t.Run("unknown product", func(t *testing.T) {
		snaps, ids := snapshotFixture()
		phantom := uuid.New()

		_, err := basket.Process([]basket.Line{
			{ProductID: ids[0], Quantity: 1},
			{ProductID: phantom, Quantity: 1},
		}, snaps)
		var unknown *basket.UnknownProductError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, phantom, unknown.ProductID)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		snaps, ids := snapshotFixture()

		_, err := basket.Process([]basket.Line{
			{ProductID: ids[2], Quantity: 2},
		}, snaps)
		var insufficient *basket.InsufficientStockError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, int32(2), insufficient.Requested)
		assert.Equal(t, int32(1), insufficient.Available)
	})

	t.Run("exact stock boundary", func(t *testing.T) {
		snaps, ids := snapshotFixture()

		processed, err := basket.Process([]basket.Line{
			{ProductID: ids[2], Quantity: 1},
		}, snaps)
		require.NoError(t, err)
		assert.Equal(t, int32(1), processed.Items[0].Quantity)
	})

	t.Run("deterministic item order", func(t *testing.T) {
		snaps, ids := snapshotFixture()

		lines := []basket.Line{
			{ProductID: ids[2], Quantity: 1},
			{ProductID: ids[0], Quantity: 1},
			{ProductID: ids[1], Quantity: 1},
		}
		first, err := basket.Process(lines, snaps)
		require.NoError(t, err)

		reversed := []basket.Line{lines[1], lines[2], lines[0]}
		second, err := basket.Process(reversed, snaps)
		require.NoError(t, err)

		assert.Equal(t, first.Items, second.Items)
		assert.Equal(t, first.TotalCents, second.TotalCents)
	})
}
