package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCompactCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₱0"},
		{999, "₱999"},
		{999.4, "₱999"},
		{1000, "₱1K"},
		{1500, "₱1.5K"},
		{2300000, "₱2.3M"},
		{1234567, "₱1.2M"},
		{2000000, "₱2M"},
		{7100000000, "₱7.1B"},
		{-1500, "-₱1.5K"},
		{-999, "-₱999"},
	}

	for _, c := range cases {
		got := CompactCurrency("₱", decimal.NewFromFloat(c.amount))
		assert.Equalf(t, c.want, got, "amount %v", c.amount)
	}
}

func TestCompactCurrencyCustomSymbol(t *testing.T) {
	assert.Equal(t, "$1.5K", CompactCurrency("$", decimal.NewFromInt(1500)))
}
