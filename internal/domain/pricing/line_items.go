package pricing

import (
	"fieldservice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// LineItemTotals holds the unrounded sums of an option's line items.
type LineItemTotals struct {
	Subtotal      decimal.Decimal
	TaxableAmount decimal.Decimal
}

// TotalLineItems sums quantity × unit price over every item, and separately
// over the taxable ones.
func TotalLineItems(items []entities.LineItem) LineItemTotals {
	totals := LineItemTotals{Subtotal: decimal.Zero, TaxableAmount: decimal.Zero}
	for _, it := range items {
		line := it.LineTotal()
		totals.Subtotal = totals.Subtotal.Add(line)
		if it.IsTaxable {
			totals.TaxableAmount = totals.TaxableAmount.Add(line)
		}
	}
	return totals
}
