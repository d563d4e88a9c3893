//go:build unit

package order_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/leburgeon/ecom-backapi/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumber(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("format", func(t *testing.T) {
		number := order.NewNumber(now)
		assert.Regexp(t, regexp.MustCompile(`^ORD-20250314-[0-9a-f]{6}$`), number)
	})

	t.Run("random suffix varies", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 50 {
			seen[order.NewNumber(now)] = struct{}{}
		}
		// 50 draws from a 24-bit space collide only freakishly.
		assert.Greater(t, len(seen), 45)
	})
}

func TestFallbackNumber(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	number := order.FallbackNumber(now)
	assert.Regexp(t, regexp.MustCompile(`^ORD-20250314-[0-9a-f]{32}$`), number)

	other := order.FallbackNumber(now)
	assert.NotEqual(t, number, other)
}

func TestNewSettled(t *testing.T) {
	total, err := order.NewMoney(3000, "GBP")
	require.NoError(t, err)

	pending := &order.PendingOrder{
		Items: []order.Item{
			{Name: "Keyboard", UnitPriceCents: 1500, Quantity: 2},
		},
		Total:                total,
		PaymentTransactionID: "TX-1",
	}
	payment := order.Payment{Method: "PAYPAL", ProviderStatus: "COMPLETED", TransactionID: "TX-1"}

	t.Run("basic success case", func(t *testing.T) {
		settled, err := order.NewSettled("ORD-20250314-abc123", pending, payment)
		require.NoError(t, err)

		assert.Equal(t, "ORD-20250314-abc123", settled.Number())
		assert.Equal(t, order.StatusPaid, settled.Status())
		assert.Equal(t, pending.Total, settled.Total())
		assert.Equal(t, payment, settled.Payment())
		require.Len(t, settled.Items(), 1)
		assert.Equal(t, pending.Items[0], settled.Items()[0])
	})

	t.Run("no items", func(t *testing.T) {
		empty := &order.PendingOrder{Total: total}
		_, err := order.NewSettled("ORD-20250314-abc123", empty, payment)
		assert.ErrorIs(t, err, order.ErrNoItems)
	})
}

func TestPendingOrderHasExpired(t *testing.T) {
	expiry := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	pending := &order.PendingOrder{ExpiresAt: expiry}

	assert.False(t, pending.HasExpired(expiry.Add(-time.Second)))
	assert.True(t, pending.HasExpired(expiry), "expiry instant counts as expired")
	assert.True(t, pending.HasExpired(expiry.Add(time.Second)))
}
