package response

import (
	"time"

	"fieldservice/internal/domain/entities"
)

// Monetary values are serialised as JSON numbers already rounded to cents.

type LineItemResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	UnitCost    float64 `json:"unitCost"`
	LineTotal   float64 `json:"lineTotal"`
	IsTaxable   bool    `json:"isTaxable"`
	IsOptional  bool    `json:"isOptional"`
	IsSelected  bool    `json:"isSelected"`
	SortOrder   int     `json:"sortOrder"`
}

type OptionResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Description    string             `json:"description,omitempty"`
	CoverImageURL  string             `json:"coverImageUrl,omitempty"`
	IsRecommended  bool               `json:"isRecommended"`
	DiscountType   string             `json:"discountType"`
	DiscountValue  float64            `json:"discountValue"`
	TaxRate        float64            `json:"taxRate"`
	SortOrder      int                `json:"sortOrder"`
	Subtotal       float64            `json:"subtotal"`
	DiscountAmount float64            `json:"discountAmount"`
	TaxAmount      float64            `json:"taxAmount"`
	Total          float64            `json:"total"`
	LineItems      []LineItemResponse `json:"lineItems"`
}

type EstimateResponse struct {
	ID                 string     `json:"id"`
	TenantID           string     `json:"tenantId"`
	CustomerID         string     `json:"customerId"`
	AddressID          string     `json:"addressId"`
	EstimateNumber     string     `json:"estimateNumber"`
	Status             string     `json:"status"`
	Title              string     `json:"title,omitempty"`
	Message            string     `json:"message,omitempty"`
	TermsAndConditions string     `json:"termsAndConditions,omitempty"`
	ValidUntil         *time.Time `json:"validUntil"`
	SentAt             *time.Time `json:"sentAt"`
	ViewedAt           *time.Time `json:"viewedAt"`
	ApprovedAt         *time.Time `json:"approvedAt"`
	DeclinedAt         *time.Time `json:"declinedAt"`
	ExpiredAt          *time.Time `json:"expiredAt"`

	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	TaxAmount      float64 `json:"taxAmount"`
	Total          float64 `json:"total"`

	Options  []OptionResponse `json:"options"`
	Customer *CustomerSummary `json:"customer,omitempty"`
	Address  *AddressSummary  `json:"address,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CustomerSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type AddressSummary struct {
	ID         string `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	res := EstimateResponse{
		ID:                 e.ID,
		TenantID:           e.TenantID,
		CustomerID:         e.CustomerID,
		AddressID:          e.AddressID,
		EstimateNumber:     e.EstimateNumber,
		Status:             string(e.Status),
		Title:              e.Title,
		Message:            e.Message,
		TermsAndConditions: e.TermsAndConditions,
		ValidUntil:         e.ValidUntil,
		SentAt:             e.SentAt,
		ViewedAt:           e.ViewedAt,
		ApprovedAt:         e.ApprovedAt,
		DeclinedAt:         e.DeclinedAt,
		ExpiredAt:          e.ExpiredAt,
		Subtotal:           e.Subtotal.InexactFloat64(),
		DiscountAmount:     e.DiscountAmount.InexactFloat64(),
		TaxAmount:          e.TaxAmount.InexactFloat64(),
		Total:              e.Total.InexactFloat64(),
		Options:            make([]OptionResponse, 0, len(e.Options)),
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
	for _, o := range e.Options {
		opt := OptionResponse{
			ID:             o.ID,
			Name:           o.Name,
			Description:    o.Description,
			CoverImageURL:  o.CoverImageURL,
			IsRecommended:  o.IsRecommended,
			DiscountType:   string(o.DiscountType),
			DiscountValue:  o.DiscountValue.InexactFloat64(),
			TaxRate:        o.TaxRate.InexactFloat64(),
			SortOrder:      o.SortOrder,
			Subtotal:       o.Subtotal.InexactFloat64(),
			DiscountAmount: o.DiscountAmount.InexactFloat64(),
			TaxAmount:      o.TaxAmount.InexactFloat64(),
			Total:          o.Total.InexactFloat64(),
			LineItems:      make([]LineItemResponse, 0, len(o.LineItems)),
		}
		for _, li := range o.LineItems {
			opt.LineItems = append(opt.LineItems, LineItemResponse{
				ID:          li.ID,
				Type:        string(li.Type),
				Name:        li.Name,
				Description: li.Description,
				Quantity:    li.Quantity.InexactFloat64(),
				UnitPrice:   li.UnitPrice.InexactFloat64(),
				UnitCost:    li.UnitCost.InexactFloat64(),
				LineTotal:   li.LineTotal().InexactFloat64(),
				IsTaxable:   li.IsTaxable,
				IsOptional:  li.IsOptional,
				IsSelected:  li.IsSelected,
				SortOrder:   li.SortOrder,
			})
		}
		res.Options = append(res.Options, opt)
	}
	if e.Customer != nil {
		res.Customer = &CustomerSummary{ID: e.Customer.ID, Name: e.Customer.Name, Email: e.Customer.Email, Phone: e.Customer.Phone}
	}
	if e.Address != nil {
		res.Address = &AddressSummary{ID: e.Address.ID, Street: e.Address.Street, City: e.Address.City, State: e.Address.State, PostalCode: e.Address.PostalCode}
	}
	return res
}

func FromEstimates(list []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimate(e))
	}
	return out
}
