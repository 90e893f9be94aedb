package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestEstimate_StampStatus(t *testing.T) {
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)

	e := Estimate{Status: EstimateStatusDraft}
	e.StampStatus(EstimateStatusSent, first)
	if e.Status != EstimateStatusSent || e.SentAt == nil || !e.SentAt.Equal(first) {
		t.Fatalf("expected sentAt stamped on first transition, got %+v", e)
	}

	e.StampStatus(EstimateStatusSent, second)
	if !e.SentAt.Equal(first) {
		t.Fatalf("sentAt must not be overwritten, got %v", e.SentAt)
	}

	e.StampStatus(EstimateStatusApproved, second)
	if e.ApprovedAt == nil || !e.ApprovedAt.Equal(second) {
		t.Fatalf("expected approvedAt stamped, got %v", e.ApprovedAt)
	}

	e.StampStatus(EstimateStatusDraft, second)
	if e.Status != EstimateStatusDraft || e.ViewedAt != nil || e.DeclinedAt != nil || e.ExpiredAt != nil {
		t.Fatalf("draft must not stamp anything, got %+v", e)
	}
}

func TestDiscountType_Normalize(t *testing.T) {
	cases := map[DiscountType]DiscountType{
		DiscountTypePercentage:  DiscountTypePercentage,
		DiscountTypeFixedAmount: DiscountTypeFixedAmount,
		DiscountTypeNone:        DiscountTypeNone,
		"":                      DiscountTypeNone,
		"BOGUS":                 DiscountTypeNone,
	}
	for in, want := range cases {
		if got := in.Normalize(); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLineItem_LineTotal(t *testing.T) {
	li := LineItem{Quantity: decimal.RequireFromString("2.5"), UnitPrice: decimal.RequireFromString("40")}
	if !li.LineTotal().Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected 100, got %s", li.LineTotal())
	}
}

func TestEstimateStatus_Valid(t *testing.T) {
	if !EstimateStatusExpired.Valid() || EstimateStatus("PENDING").Valid() {
		t.Fatalf("unexpected status validity")
	}
}

func TestEstimate_SortOptions(t *testing.T) {
	e := Estimate{Options: []EstimateOption{
		{Name: "Best", SortOrder: 2, LineItems: []LineItem{{Name: "b", SortOrder: 1}, {Name: "a", SortOrder: 0}}},
		{Name: "Good", SortOrder: 0},
		{Name: "Better", SortOrder: 1},
	}}
	e.SortOptions()
	if e.Options[0].Name != "Good" || e.Options[1].Name != "Better" || e.Options[2].Name != "Best" {
		t.Fatalf("unexpected option order: %+v", e.Options)
	}
	if e.Options[2].LineItems[0].Name != "a" {
		t.Fatalf("unexpected line item order: %+v", e.Options[2].LineItems)
	}
}
