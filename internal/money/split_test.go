package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rate7 = decimal.NewFromFloat(0.07)

func TestSplitRevenue(t *testing.T) {
	cases := []struct {
		name         string
		amount       decimal.Decimal
		rate         decimal.Decimal
		wantCut      string
		wantEarnings string
	}{
		{
			name:         "ten thousand at seven percent",
			amount:       decimal.NewFromInt(10000),
			rate:         rate7,
			wantCut:      "700",
			wantEarnings: "9300",
		}, {
			name:         "rounding keeps parts consistent",
			amount:       decimal.NewFromFloat(99.99),
			rate:         rate7,
			wantCut:      "7",
			wantEarnings: "92.99",
		}, {
			name:         "zero amount",
			amount:       decimal.Zero,
			rate:         rate7,
			wantCut:      "0",
			wantEarnings: "0",
		}, {
			name:         "custom rate",
			amount:       decimal.NewFromInt(200),
			rate:         decimal.NewFromFloat(0.1),
			wantCut:      "20",
			wantEarnings: "180",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			split := SplitRevenue(c.amount, c.rate)
			assert.Equal(t, c.wantCut, split.Commission.String())
			assert.Equal(t, c.wantEarnings, split.SellerEarnings.String())
			// сумма частей всегда равна исходной сумме
			assert.True(t, split.Commission.Add(split.SellerEarnings).Equal(c.amount))
		})
	}
}

func TestPendingCommission(t *testing.T) {
	total := decimal.NewFromInt(10000)

	pending := PendingCommission(total, decimal.NewFromInt(300), rate7)
	require.Equal(t, "400", pending.String())

	// собрано больше проекции - никаких отрицательных значений
	pending = PendingCommission(total, decimal.NewFromInt(900), rate7)
	assert.True(t, pending.IsZero())

	pending = PendingCommission(decimal.Zero, decimal.Zero, rate7)
	assert.True(t, pending.IsZero())
}
