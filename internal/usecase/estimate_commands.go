package usecase

import (
	"fmt"
	"strings"
	"time"

	"fieldservice/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LineItemInput struct {
	Type        entities.LineItemType
	Name        string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	UnitCost    decimal.Decimal
	IsTaxable   *bool
	IsOptional  *bool
	IsSelected  *bool
	SortOrder   *int
}

type OptionInput struct {
	Name          string
	Description   string
	CoverImageURL string
	IsRecommended bool
	DiscountType  entities.DiscountType
	DiscountValue decimal.Decimal
	// TaxRate falls back to the estimate-level rate when nil.
	TaxRate   *decimal.Decimal
	SortOrder *int
	LineItems []LineItemInput
}

type CreateEstimateCommand struct {
	TenantID           string
	CustomerID         string
	AddressID          string
	Title              string
	Message            string
	TermsAndConditions string
	ValidUntil         *time.Time
	Status             entities.EstimateStatus
	TaxRate            decimal.Decimal
	Options            []OptionInput
}

// UpdateEstimateCommand carries a partial update. Nil fields are left as
// they are; a non-nil Options replaces every option and line item.
type UpdateEstimateCommand struct {
	CustomerID         *string
	AddressID          *string
	Title              *string
	Message            *string
	TermsAndConditions *string
	ValidUntil         *time.Time
	Status             *entities.EstimateStatus
	TaxRate            *decimal.Decimal
	Options            *[]OptionInput
}

func buildOptions(estimateID string, inputs []OptionInput, defaultTaxRate decimal.Decimal) ([]entities.EstimateOption, error) {
	if len(inputs) == 0 {
		return nil, ErrNoOptions
	}
	options := make([]entities.EstimateOption, 0, len(inputs))
	for i, in := range inputs {
		if len(in.LineItems) == 0 {
			return nil, fmt.Errorf("%w (option %d)", ErrNoLineItems, i+1)
		}
		taxRate := defaultTaxRate
		if in.TaxRate != nil {
			taxRate = *in.TaxRate
		}
		if in.DiscountValue.IsNegative() || taxRate.IsNegative() {
			return nil, fmt.Errorf("%w (option %d)", ErrNegativeAmount, i+1)
		}

		opt := entities.EstimateOption{
			ID:            uuid.NewString(),
			EstimateID:    estimateID,
			Name:          strings.TrimSpace(in.Name),
			Description:   in.Description,
			CoverImageURL: in.CoverImageURL,
			IsRecommended: in.IsRecommended,
			DiscountType:  in.DiscountType.Normalize(),
			DiscountValue: in.DiscountValue,
			TaxRate:       taxRate,
			SortOrder:     intOr(in.SortOrder, i),
		}
		if opt.Name == "" {
			opt.Name = fmt.Sprintf("Option %d", i+1)
		}

		items, err := buildLineItems(opt.ID, in.LineItems, i)
		if err != nil {
			return nil, err
		}
		opt.LineItems = items
		options = append(options, opt)
	}
	return options, nil
}

func buildLineItems(optionID string, inputs []LineItemInput, optionIndex int) ([]entities.LineItem, error) {
	items := make([]entities.LineItem, 0, len(inputs))
	for j, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w (option %d, item %d)", ErrInvalidLineItemName, optionIndex+1, j+1)
		}
		if !in.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w (option %d, item %d)", ErrInvalidQuantity, optionIndex+1, j+1)
		}
		itemType := in.Type
		if itemType == "" {
			itemType = entities.LineItemTypeService
		}
		if !validLineItemType(itemType) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLineItemType, itemType)
		}
		items = append(items, entities.LineItem{
			ID:          uuid.NewString(),
			OptionID:    optionID,
			Type:        itemType,
			Name:        name,
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			UnitCost:    in.UnitCost,
			IsTaxable:   boolOr(in.IsTaxable, true),
			IsOptional:  boolOr(in.IsOptional, false),
			IsSelected:  boolOr(in.IsSelected, true),
			SortOrder:   intOr(in.SortOrder, j),
		})
	}
	return items, nil
}

func validLineItemType(t entities.LineItemType) bool {
	switch t {
	case entities.LineItemTypeService, entities.LineItemTypeMaterial, entities.LineItemTypeLabor,
		entities.LineItemTypeEquipment, entities.LineItemTypeOther:
		return true
	}
	return false
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
