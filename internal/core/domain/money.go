package domain

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places stored and displayed for amounts.
const MoneyPlaces = 2

// RoundMoney rounds half away from zero to MoneyPlaces. It is the only
// rounding rule for amounts: totals, persistence and presentation all use it.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPlaces)
}
