package gormrepo

import (
	"encoding/json"
	"time"

	"fieldservice/internal/domain/entities"
)

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func toEstimateRecord(e entities.Estimate) estimateRecord {
	return estimateRecord{
		ID:                 e.ID,
		TenantID:           e.TenantID,
		CustomerID:         e.CustomerID,
		AddressID:          e.AddressID,
		EstimateNumber:     e.EstimateNumber,
		Status:             string(e.Status),
		Title:              e.Title,
		Message:            e.Message,
		TermsAndConditions: e.TermsAndConditions,
		ValidUntil:         utcPtr(e.ValidUntil),
		SentAt:             utcPtr(e.SentAt),
		ViewedAt:           utcPtr(e.ViewedAt),
		ApprovedAt:         utcPtr(e.ApprovedAt),
		DeclinedAt:         utcPtr(e.DeclinedAt),
		ExpiredAt:          utcPtr(e.ExpiredAt),
		Subtotal:           e.Subtotal,
		DiscountAmount:     e.DiscountAmount,
		TaxAmount:          e.TaxAmount,
		Total:              e.Total,
		Options:            toOptionRecords(e.ID, e.Options),
		CreatedAt:          e.CreatedAt.UTC(),
		UpdatedAt:          e.UpdatedAt.UTC(),
	}
}

func toOptionRecords(estimateID string, options []entities.EstimateOption) []optionRecord {
	out := make([]optionRecord, 0, len(options))
	for _, o := range options {
		items := make([]lineItemRecord, 0, len(o.LineItems))
		for _, li := range o.LineItems {
			items = append(items, lineItemRecord{
				ID:          li.ID,
				OptionID:    o.ID,
				Type:        string(li.Type),
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
		out = append(out, optionRecord{
			ID:             o.ID,
			EstimateID:     estimateID,
			Name:           o.Name,
			Description:    o.Description,
			CoverImageURL:  o.CoverImageURL,
			IsRecommended:  o.IsRecommended,
			DiscountType:   string(o.DiscountType),
			DiscountValue:  o.DiscountValue,
			TaxRate:        o.TaxRate,
			SortOrder:      o.SortOrder,
			Subtotal:       o.Subtotal,
			DiscountAmount: o.DiscountAmount,
			TaxAmount:      o.TaxAmount,
			Total:          o.Total,
			LineItems:      items,
		})
	}
	return out
}

func (r estimateRecord) toEntity() entities.Estimate {
	e := entities.Estimate{
		ID:                 r.ID,
		TenantID:           r.TenantID,
		CustomerID:         r.CustomerID,
		AddressID:          r.AddressID,
		EstimateNumber:     r.EstimateNumber,
		Status:             entities.EstimateStatus(r.Status),
		Title:              r.Title,
		Message:            r.Message,
		TermsAndConditions: r.TermsAndConditions,
		ValidUntil:         r.ValidUntil,
		SentAt:             r.SentAt,
		ViewedAt:           r.ViewedAt,
		ApprovedAt:         r.ApprovedAt,
		DeclinedAt:         r.DeclinedAt,
		ExpiredAt:          r.ExpiredAt,
		Subtotal:           r.Subtotal,
		DiscountAmount:     r.DiscountAmount,
		TaxAmount:          r.TaxAmount,
		Total:              r.Total,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	for _, o := range r.Options {
		opt := entities.EstimateOption{
			ID:             o.ID,
			EstimateID:     o.EstimateID,
			Name:           o.Name,
			Description:    o.Description,
			CoverImageURL:  o.CoverImageURL,
			IsRecommended:  o.IsRecommended,
			DiscountType:   entities.DiscountType(o.DiscountType),
			DiscountValue:  o.DiscountValue,
			TaxRate:        o.TaxRate,
			SortOrder:      o.SortOrder,
			Subtotal:       o.Subtotal,
			DiscountAmount: o.DiscountAmount,
			TaxAmount:      o.TaxAmount,
			Total:          o.Total,
		}
		for _, li := range o.LineItems {
			opt.LineItems = append(opt.LineItems, entities.LineItem{
				ID:          li.ID,
				OptionID:    li.OptionID,
				Type:        entities.LineItemType(li.Type),
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
		e.Options = append(e.Options, opt)
	}
	e.SortOptions()
	return e
}

func (r customerRecord) toEntity() entities.Customer {
	return entities.Customer{
		ID:        r.ID,
		TenantID:  r.TenantID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r addressRecord) toEntity() entities.Address {
	return entities.Address{
		ID:         r.ID,
		TenantID:   r.TenantID,
		CustomerID: r.CustomerID,
		Street:     r.Street,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (r jobRecord) toEntity() entities.Job {
	return entities.Job{
		ID:          r.ID,
		TenantID:    r.TenantID,
		CustomerID:  r.CustomerID,
		EstimateID:  r.EstimateID,
		Title:       r.Title,
		Status:      entities.JobStatus(r.Status),
		ScheduledAt: r.ScheduledAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r serviceRequestRecord) toEntity() entities.ServiceRequest {
	return entities.ServiceRequest{
		ID:          r.ID,
		TenantID:    r.TenantID,
		CustomerID:  r.CustomerID,
		EstimateID:  r.EstimateID,
		Title:       r.Title,
		Description: r.Description,
		Status:      entities.ServiceRequestStatus(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r paymentRecord) toEntity() entities.BillingPayment {
	p := entities.BillingPayment{
		ID:                 r.ID,
		TenantID:           r.TenantID,
		EstimateID:         r.EstimateID,
		Amount:             r.Amount,
		Date:               r.Date,
		Status:             entities.PaymentStatus(r.Status),
		ProviderPayloadRaw: json.RawMessage(r.ProviderPayload),
	}
	if len(r.ProviderPayload) > 0 {
		_ = json.Unmarshal(r.ProviderPayload, &p.ProviderPayload)
	}
	return p
}
