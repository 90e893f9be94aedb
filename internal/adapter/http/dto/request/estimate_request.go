package request

import (
	"strings"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"

	"github.com/shopspring/decimal"
)

// Monetary and quantity fields accept JSON numbers or numeric strings.

type LineItemRequest struct {
	Type        string          `json:"type"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	IsTaxable   *bool           `json:"isTaxable"`
	IsOptional  *bool           `json:"isOptional"`
	IsSelected  *bool           `json:"isSelected"`
	SortOrder   *int            `json:"sortOrder"`
}

type OptionRequest struct {
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	CoverImageURL string            `json:"coverImageUrl"`
	IsRecommended bool              `json:"isRecommended"`
	DiscountType  string            `json:"discountType"`
	DiscountValue decimal.Decimal   `json:"discountValue"`
	TaxRate       *decimal.Decimal  `json:"taxRate"`
	SortOrder     *int              `json:"sortOrder"`
	LineItems     []LineItemRequest `json:"lineItems"`
}

type CreateEstimateRequest struct {
	CustomerID         string           `json:"customerId" binding:"required"`
	AddressID          string           `json:"addressId" binding:"required"`
	Title              string           `json:"title"`
	Message            string           `json:"message"`
	TermsAndConditions string           `json:"termsAndConditions"`
	ValidUntil         *time.Time       `json:"validUntil"`
	Status             string           `json:"status"`
	TaxRate            *decimal.Decimal `json:"taxRate"`
	Options            []OptionRequest  `json:"options"`
}

// UpdateEstimateRequest is a partial update; absent fields are kept.
type UpdateEstimateRequest struct {
	CustomerID         *string          `json:"customerId"`
	AddressID          *string          `json:"addressId"`
	Title              *string          `json:"title"`
	Message            *string          `json:"message"`
	TermsAndConditions *string          `json:"termsAndConditions"`
	ValidUntil         *time.Time       `json:"validUntil"`
	Status             *string          `json:"status"`
	TaxRate            *decimal.Decimal `json:"taxRate"`
	Options            *[]OptionRequest `json:"options"`
}

func (r CreateEstimateRequest) ToCommand(tenantID string) usecase.CreateEstimateCommand {
	cmd := usecase.CreateEstimateCommand{
		TenantID:           tenantID,
		CustomerID:         strings.TrimSpace(r.CustomerID),
		AddressID:          strings.TrimSpace(r.AddressID),
		Title:              r.Title,
		Message:            r.Message,
		TermsAndConditions: r.TermsAndConditions,
		ValidUntil:         r.ValidUntil,
		Status:             normalizeStatus(r.Status),
		Options:            toOptionInputs(r.Options),
	}
	if r.TaxRate != nil {
		cmd.TaxRate = *r.TaxRate
	}
	if cmd.Status == "" {
		cmd.Status = entities.EstimateStatusDraft
	}
	return cmd
}

func (r UpdateEstimateRequest) ToCommand() usecase.UpdateEstimateCommand {
	cmd := usecase.UpdateEstimateCommand{
		CustomerID:         trimPtr(r.CustomerID),
		AddressID:          trimPtr(r.AddressID),
		Title:              r.Title,
		Message:            r.Message,
		TermsAndConditions: r.TermsAndConditions,
		ValidUntil:         r.ValidUntil,
		TaxRate:            r.TaxRate,
	}
	if r.Status != nil {
		s := normalizeStatus(*r.Status)
		cmd.Status = &s
	}
	if r.Options != nil {
		opts := toOptionInputs(*r.Options)
		cmd.Options = &opts
	}
	return cmd
}

func toOptionInputs(in []OptionRequest) []usecase.OptionInput {
	out := make([]usecase.OptionInput, 0, len(in))
	for _, o := range in {
		items := make([]usecase.LineItemInput, 0, len(o.LineItems))
		for _, li := range o.LineItems {
			items = append(items, usecase.LineItemInput{
				Type:        entities.LineItemType(strings.ToUpper(strings.TrimSpace(li.Type))),
				Name:        li.Name,
				Description: li.Description,
				Quantity:    li.Quantity,
				UnitPrice:   li.UnitPrice,
				UnitCost:    li.UnitCost,
				IsTaxable:   li.IsTaxable,
				IsOptional:  li.IsOptional,
				IsSelected:  li.IsSelected,
				SortOrder:   li.SortOrder,
			})
		}
		out = append(out, usecase.OptionInput{
			Name:          o.Name,
			Description:   o.Description,
			CoverImageURL: o.CoverImageURL,
			IsRecommended: o.IsRecommended,
			DiscountType:  entities.DiscountType(strings.ToUpper(strings.TrimSpace(o.DiscountType))),
			DiscountValue: o.DiscountValue,
			TaxRate:       o.TaxRate,
			SortOrder:     o.SortOrder,
			LineItems:     items,
		})
	}
	return out
}

func normalizeStatus(s string) entities.EstimateStatus {
	return entities.EstimateStatus(strings.ToUpper(strings.TrimSpace(s)))
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
