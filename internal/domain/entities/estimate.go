package entities

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStatus represents the lifecycle of an estimate.
type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "DRAFT"
	EstimateStatusSent     EstimateStatus = "SENT"
	EstimateStatusViewed   EstimateStatus = "VIEWED"
	EstimateStatusApproved EstimateStatus = "APPROVED"
	EstimateStatusDeclined EstimateStatus = "DECLINED"
	EstimateStatusExpired  EstimateStatus = "EXPIRED"
)

func (s EstimateStatus) Valid() bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusSent, EstimateStatusViewed,
		EstimateStatusApproved, EstimateStatusDeclined, EstimateStatusExpired:
		return true
	}
	return false
}

// DiscountType selects how an option's discount value is interpreted.
type DiscountType string

const (
	DiscountTypeNone        DiscountType = "NONE"
	DiscountTypePercentage  DiscountType = "PERCENTAGE"
	DiscountTypeFixedAmount DiscountType = "FIXED_AMOUNT"
)

// Normalize maps unknown or empty values to NONE.
func (d DiscountType) Normalize() DiscountType {
	switch d {
	case DiscountTypePercentage, DiscountTypeFixedAmount:
		return d
	}
	return DiscountTypeNone
}

type LineItemType string

const (
	LineItemTypeService   LineItemType = "SERVICE"
	LineItemTypeMaterial  LineItemType = "MATERIAL"
	LineItemTypeLabor     LineItemType = "LABOR"
	LineItemTypeEquipment LineItemType = "EQUIPMENT"
	LineItemTypeOther     LineItemType = "OTHER"
)

// LineItem is one priced unit inside an option. Its line total is always
// derived from Quantity and UnitPrice.
type LineItem struct {
	ID          string
	OptionID    string
	Type        LineItemType
	Name        string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	UnitCost    decimal.Decimal
	IsTaxable   bool
	IsOptional  bool
	IsSelected  bool
	SortOrder   int
}

func (li LineItem) LineTotal() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// EstimateOption is one priced alternative within an estimate. Subtotal,
// DiscountAmount, TaxAmount and Total are computed when the option is
// written and never lazily.
type EstimateOption struct {
	ID             string
	EstimateID     string
	Name           string
	Description    string
	CoverImageURL  string
	IsRecommended  bool
	DiscountType   DiscountType
	DiscountValue  decimal.Decimal
	TaxRate        decimal.Decimal
	SortOrder      int
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
	LineItems      []LineItem
}

// Estimate is a tenant-scoped priced proposal sent to a customer.
//
// Totals are the sums of the option totals. Status timestamps are set once,
// the first time the estimate enters the matching status.
type Estimate struct {
	ID                 string
	TenantID           string
	CustomerID         string
	AddressID          string
	EstimateNumber     string
	Status             EstimateStatus
	Title              string
	Message            string
	TermsAndConditions string
	ValidUntil         *time.Time

	SentAt     *time.Time
	ViewedAt   *time.Time
	ApprovedAt *time.Time
	DeclinedAt *time.Time
	ExpiredAt  *time.Time

	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal

	Options []EstimateOption

	// Populated on reads only.
	Customer *Customer
	Address  *Address

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StampStatus moves the estimate to status and records the matching
// timestamp if it has never been set.
func (e *Estimate) StampStatus(status EstimateStatus, at time.Time) {
	e.Status = status
	var slot **time.Time
	switch status {
	case EstimateStatusSent:
		slot = &e.SentAt
	case EstimateStatusViewed:
		slot = &e.ViewedAt
	case EstimateStatusApproved:
		slot = &e.ApprovedAt
	case EstimateStatusDeclined:
		slot = &e.DeclinedAt
	case EstimateStatusExpired:
		slot = &e.ExpiredAt
	default:
		return
	}
	if *slot == nil {
		t := at
		*slot = &t
	}
}

// SortOptions orders options, and the line items inside each, by SortOrder.
func (e *Estimate) SortOptions() {
	sort.SliceStable(e.Options, func(i, j int) bool {
		return e.Options[i].SortOrder < e.Options[j].SortOrder
	})
	for i := range e.Options {
		items := e.Options[i].LineItems
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].SortOrder < items[b].SortOrder
		})
	}
}
