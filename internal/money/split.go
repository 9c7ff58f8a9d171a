// Package money собирает в одном месте расчет комиссии маркетплейса и
// форматирование денежных сумм. Ставка комиссии всегда приходит параметром
// (источник - конфигурация), в коде она нигде не захардкожена.
package money

import "github.com/shopspring/decimal"

// moneyScale денежные суммы округляются до 2 знаков после запятой.
const moneyScale = 2

// CommissionSplit результат разделения выручки на комиссию площадки и
// заработок продавца.
type CommissionSplit struct {
	Commission     decimal.Decimal
	SellerEarnings decimal.Decimal
}

// SplitRevenue делит сумму amount по ставке rate. Заработок продавца считается
// как amount - commission, а не amount*(1-rate): так сумма частей всегда
// сходится с исходной суммой после округления.
func SplitRevenue(amount, rate decimal.Decimal) CommissionSplit {
	commission := amount.Mul(rate).Round(moneyScale)
	return CommissionSplit{
		Commission:     commission,
		SellerEarnings: amount.Sub(commission),
	}
}

// PendingCommission возвращает еще не собранную комиссию: проекция по выручке
// минус уже собранное. Никогда не возвращает отрицательное значение, даже если
// собрано больше наивной проекции.
func PendingCommission(totalRevenue, collected, rate decimal.Decimal) decimal.Decimal {
	pending := totalRevenue.Mul(rate).Round(moneyScale).Sub(collected)
	if pending.IsNegative() {
		return decimal.Zero
	}
	return pending
}
