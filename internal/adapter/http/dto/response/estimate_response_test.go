package response

import (
	"encoding/json"
	"testing"
	"time"

	"fieldservice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	e := entities.Estimate{
		ID:             "est-1",
		EstimateNumber: "EST-0001",
		Status:         entities.EstimateStatusSent,
		SentAt:         &now,
		Subtotal:       decimal.RequireFromString("1101.25"),
		DiscountAmount: decimal.RequireFromString("110.13"),
		TaxAmount:      decimal.RequireFromString("138.90"),
		Total:          decimal.RequireFromString("1130.02"),
		Options: []entities.EstimateOption{{
			ID:           "opt-1",
			Name:         "Best",
			DiscountType: entities.DiscountTypePercentage,
			LineItems: []entities.LineItem{
				{ID: "li-1", Name: "Unit", Quantity: decimal.RequireFromString("3"), UnitPrice: decimal.RequireFromString("333.75")},
			},
		}},
		Customer:  &entities.Customer{ID: "cust-1", Name: "Ana"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromEstimate(e)
	if res.Total != 1130.02 || res.DiscountAmount != 110.13 || res.EstimateNumber != "EST-0001" {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if res.Options[0].LineItems[0].LineTotal != 1001.25 {
		t.Fatalf("expected derived lineTotal 1001.25, got %v", res.Options[0].LineItems[0].LineTotal)
	}
	if res.Customer == nil || res.Customer.Name != "Ana" || res.Address != nil {
		t.Fatalf("unexpected summaries: %+v %+v", res.Customer, res.Address)
	}

	raw, _ := json.Marshal(res)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	if body["estimateNumber"] != "EST-0001" || body["sentAt"] == nil || body["approvedAt"] != nil {
		t.Fatalf("unexpected json: %s", raw)
	}
}

func TestFromEstimates_EmptyIsArray(t *testing.T) {
	raw, _ := json.Marshal(FromEstimates(nil))
	if string(raw) != "[]" {
		t.Fatalf("expected [], got %s", raw)
	}
}
