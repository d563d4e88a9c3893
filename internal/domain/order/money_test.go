//go:build unit

package order_test

import (
	"testing"

	"github.com/leburgeon/ecom-backapi/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		m, err := order.NewMoney(1500, "GBP")
		require.NoError(t, err)
		assert.Equal(t, int64(1500), m.Cents())
		assert.Equal(t, "GBP", m.Currency())
	})

	t.Run("zero is valid", func(t *testing.T) {
		m, err := order.NewMoney(0, "GBP")
		require.NoError(t, err)
		assert.Equal(t, "0.00", m.Amount())
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := order.NewMoney(-1, "GBP")
		assert.ErrorIs(t, err, order.ErrInvalidAmount)
	})

	t.Run("missing currency", func(t *testing.T) {
		_, err := order.NewMoney(100, "")
		assert.Error(t, err)
	})
}

func TestParseAmount(t *testing.T) {
	valid := []struct {
		value string
		cents int64
	}{
		{"15.00", 1500},
		{"15.5", 1550},
		{"15", 1500},
		{"0.01", 1},
		{"0.99", 99},
		{"1234.56", 123456},
	}
	for _, tc := range valid {
		t.Run("parses "+tc.value, func(t *testing.T) {
			m, err := order.ParseAmount(tc.value, "GBP")
			require.NoError(t, err)
			assert.Equal(t, tc.cents, m.Cents())
		})
	}

	invalid := []string{
		"",
		".",
		".50",
		"15.",
		"15.000",
		"-15.00",
		"15.0.0",
		"abc",
		"15.ab",
	}
	for _, value := range invalid {
		t.Run("rejects "+value, func(t *testing.T) {
			_, err := order.ParseAmount(value, "GBP")
			assert.Error(t, err, "expected %q to fail", value)
		})
	}
}

func TestMoneyAmount(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{1500, "15.00"},
		{1550, "15.50"},
		{5, "0.05"},
		{100, "1.00"},
		{123456, "1234.56"},
	}
	for _, tc := range cases {
		m, err := order.NewMoney(tc.cents, "GBP")
		require.NoError(t, err)
		assert.Equal(t, tc.want, m.Amount())
	}
}

func TestMoneyEqual(t *testing.T) {
	a, err := order.NewMoney(1500, "GBP")
	require.NoError(t, err)
	b, err := order.NewMoney(1500, "GBP")
	require.NoError(t, err)
	c, err := order.NewMoney(1500, "USD")
	require.NoError(t, err)
	d, err := order.NewMoney(1501, "GBP")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "same cents, different currency")
	assert.False(t, a.Equal(d))
}

func TestParseAmountRoundTrip(t *testing.T) {
	// A gateway-reported amount rendered by Amount must parse back to the
	// same value; capture validation relies on this.
	m, err := order.NewMoney(2000, "GBP")
	require.NoError(t, err)

	parsed, err := order.ParseAmount(m.Amount(), m.Currency())
	require.NoError(t, err)
	assert.True(t, m.Equal(parsed))
}
