package order

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid monetary amount")

// Money is an amount in currency minor units. Keeping cents end-to-end is what
// makes checkout totals match the gateway's 2-decimal amounts exactly.
type Money struct {
	cents    int64
	currency string
}

func NewMoney(cents int64, currency string) (Money, error) {
	if cents < 0 {
		return Money{}, ErrInvalidAmount
	}
	if currency == "" {
		return Money{}, errors.New("currency code required")
	}
	return Money{cents: cents, currency: currency}, nil
}

// ParseAmount parses a gateway-reported decimal string such as "15.00".
// At most two fractional digits are accepted; anything else fails.
func ParseAmount(value, currency string) (Money, error) {
	whole, frac, found := strings.Cut(value, ".")
	if whole == "" || strings.HasPrefix(whole, "-") {
		return Money{}, ErrInvalidAmount
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}

	cents := units * 100
	if found {
		if len(frac) == 0 || len(frac) > 2 {
			return Money{}, ErrInvalidAmount
		}
		if len(frac) == 1 {
			frac += "0"
		}
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return Money{}, ErrInvalidAmount
		}
		cents += f
	}

	return NewMoney(cents, currency)
}

func (m Money) Cents() int64     { return m.cents }
func (m Money) Currency() string { return m.currency }

// Amount renders the value the way the gateway expects it: "15.00".
func (m Money) Amount() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

func (m Money) Equal(other Money) bool {
	return m.cents == other.cents && m.currency == other.currency
}
