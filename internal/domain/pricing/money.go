// Package pricing computes option and estimate totals.
//
// Amounts are decimals; values that get persisted are rounded to cents with
// RoundMoney, intermediate values are not.
package pricing

import "github.com/shopspring/decimal"

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds half away from zero to two decimal places.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}
