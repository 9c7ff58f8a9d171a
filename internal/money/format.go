package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Пороги сокращений и суффиксы для компактного формата.
var compactBreakpoints = []struct {
	threshold decimal.Decimal
	suffix    string
}{
	{decimal.New(1, 9), "B"},
	{decimal.New(1, 6), "M"},
	{decimal.New(1, 3), "K"},
}

// CompactCurrency форматирует сумму в сокращенный денежный вид: 1500 -> "₱1.5K",
// 2300000 -> "₱2.3M". Суммы ниже тысячи выводятся без дробной части, хвостовые
// нули после точки обрезаются ("₱2.0M" -> "₱2M"). Знак минус сохраняется перед
// символом валюты.
func CompactCurrency(symbol string, amount decimal.Decimal) string {
	var sign string
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	for _, bp := range compactBreakpoints {
		if amount.GreaterThanOrEqual(bp.threshold) {
			scaled := amount.Div(bp.threshold).Round(1)
			return sign + symbol + trimTrailingZeros(scaled.StringFixed(1)) + bp.suffix
		}
	}

	return sign + symbol + amount.Round(0).String()
}

func trimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
