package pricing

import (
	"fieldservice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type EstimateTotals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
}

// AggregateOptions sums the priced options. Each option's tax rate is
// already reflected in its own total.
func AggregateOptions(options []OptionPrice) EstimateTotals {
	totals := EstimateTotals{
		Subtotal:       decimal.Zero,
		DiscountAmount: decimal.Zero,
		TaxAmount:      decimal.Zero,
		Total:          decimal.Zero,
	}
	for _, o := range options {
		totals.Subtotal = totals.Subtotal.Add(o.Subtotal)
		totals.DiscountAmount = totals.DiscountAmount.Add(o.DiscountAmount)
		totals.TaxAmount = totals.TaxAmount.Add(o.TaxAmount)
		totals.Total = totals.Total.Add(o.Total)
	}
	return totals
}

// PriceEstimate reprices every option of e and refreshes the estimate totals.
func PriceEstimate(e *entities.Estimate) EstimateTotals {
	prices := make([]OptionPrice, 0, len(e.Options))
	for i := range e.Options {
		prices = append(prices, PriceEstimateOption(&e.Options[i]))
	}
	totals := AggregateOptions(prices)
	e.Subtotal = totals.Subtotal
	e.DiscountAmount = totals.DiscountAmount
	e.TaxAmount = totals.TaxAmount
	e.Total = totals.Total
	return totals
}
