package utils

import (
	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of decimal places amounts are stored and displayed with.
const MoneyPrecision = domain.MoneyPlaces

// RoundMoney rounds an amount half away from zero to MoneyPrecision places,
// with the same rule the calculator applies to totals.
// Example: 12.345 returns 12.35, 12.344 returns 12.34.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return domain.RoundMoney(amount)
}

// FormatMoney renders an amount with exactly MoneyPrecision places, e.g. "50.00".
func FormatMoney(amount decimal.Decimal) string {
	return RoundMoney(amount).StringFixed(MoneyPrecision)
}

// FormatRate renders a percentage or hourly rate without trailing zeros, e.g. "20" or "5.5".
func FormatRate(rate decimal.Decimal) string {
	return rate.String()
}
