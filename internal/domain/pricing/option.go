package pricing

import (
	"fieldservice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type OptionInput struct {
	Subtotal      decimal.Decimal
	TaxableAmount decimal.Decimal
	DiscountType  entities.DiscountType
	DiscountValue decimal.Decimal
	TaxRate       decimal.Decimal
}

// OptionPrice is the persisted pricing of one option. Total always equals
// Subtotal - DiscountAmount + TaxAmount.
type OptionPrice struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal

	// AfterDiscountTaxable is the taxable base once the discount has been
	// prorated onto it. Not persisted.
	AfterDiscountTaxable decimal.Decimal
}

// PriceOption applies the discount, prorates it over the taxable share of the
// subtotal and computes tax on what remains. Unknown discount types price as
// NONE.
func PriceOption(in OptionInput) OptionPrice {
	discount := decimal.Zero
	switch in.DiscountType.Normalize() {
	case entities.DiscountTypePercentage:
		discount = in.Subtotal.Mul(in.DiscountValue).Div(hundred)
	case entities.DiscountTypeFixedAmount:
		discount = in.DiscountValue
	}

	afterDiscountTaxable := decimal.Zero
	if !in.Subtotal.IsZero() {
		attributed := in.TaxableAmount.Mul(discount).Div(in.Subtotal)
		afterDiscountTaxable = in.TaxableAmount.Sub(attributed)
	}

	tax := afterDiscountTaxable.Mul(in.TaxRate).Div(hundred)

	subtotal := RoundMoney(in.Subtotal)
	discountAmount := RoundMoney(discount)
	taxAmount := RoundMoney(tax)

	return OptionPrice{
		Subtotal:             subtotal,
		DiscountAmount:       discountAmount,
		TaxAmount:            taxAmount,
		Total:                subtotal.Sub(discountAmount).Add(taxAmount),
		AfterDiscountTaxable: afterDiscountTaxable,
	}
}

// PriceEstimateOption totals the option's line items and prices it, writing
// the four derived fields back onto the option.
func PriceEstimateOption(opt *entities.EstimateOption) OptionPrice {
	totals := TotalLineItems(opt.LineItems)
	price := PriceOption(OptionInput{
		Subtotal:      totals.Subtotal,
		TaxableAmount: totals.TaxableAmount,
		DiscountType:  opt.DiscountType,
		DiscountValue: opt.DiscountValue,
		TaxRate:       opt.TaxRate,
	})
	opt.Subtotal = price.Subtotal
	opt.DiscountAmount = price.DiscountAmount
	opt.TaxAmount = price.TaxAmount
	opt.Total = price.Total
	return price
}
