package response

import (
	"encoding/json"
	"testing"
	"time"

	"fieldservice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromBillingPayment(t *testing.T) {
	now := time.Now().UTC()
	raw := json.RawMessage(`{"id":123}`)

	p := entities.BillingPayment{
		ID:                 "pay-1",
		EstimateID:         "est-1",
		Amount:             decimal.RequireFromString("126.50"),
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: raw,
		ProviderPayload:    map[string]interface{}{"a": "b"},
	}

	res := FromBillingPayment(p)
	if res.ID != "pay-1" || res.EstimateID != "est-1" || res.Status != "APPROVED" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Amount != 126.5 || !res.Date.Equal(now) {
		t.Fatalf("unexpected amount/date: %+v", res)
	}
	if res.ProviderPayloadRaw != string(raw) || res.ProviderPayload["a"] != "b" {
		t.Fatalf("unexpected payload: %+v", res)
	}
}
