package request

import (
	"encoding/json"
	"errors"
	"testing"

	"fieldservice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestCreateEstimateRequest_ToCommand(t *testing.T) {
	body := `{
		"customerId": " cust-1 ",
		"addressId": "addr-1",
		"status": "sent",
		"taxRate": 5,
		"options": [{
			"name": "Good",
			"discountType": "fixed_amount",
			"discountValue": "10",
			"lineItems": [{"name": "Labor", "type": "labor", "quantity": 2.5, "unitPrice": 40, "isTaxable": false}]
		}]
	}`
	var req CreateEstimateRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmd := req.ToCommand("tenant-1")
	if cmd.TenantID != "tenant-1" || cmd.CustomerID != "cust-1" || cmd.Status != entities.EstimateStatusSent {
		t.Fatalf("unexpected command: %+v", cmd)
	}
	if !cmd.TaxRate.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("expected tax rate 5, got %s", cmd.TaxRate)
	}
	opt := cmd.Options[0]
	if opt.DiscountType != entities.DiscountTypeFixedAmount || !opt.DiscountValue.Equal(decimal.NewFromInt(10)) || opt.TaxRate != nil {
		t.Fatalf("unexpected option: %+v", opt)
	}
	li := opt.LineItems[0]
	if li.Type != entities.LineItemTypeLabor || !li.Quantity.Equal(decimal.RequireFromString("2.5")) {
		t.Fatalf("unexpected line item: %+v", li)
	}
	if li.IsTaxable == nil || *li.IsTaxable || li.IsSelected != nil {
		t.Fatalf("expected explicit isTaxable=false and unset isSelected, got %+v", li)
	}
}

func TestCreateEstimateRequest_DefaultStatus(t *testing.T) {
	cmd := CreateEstimateRequest{CustomerID: "c", AddressID: "a"}.ToCommand("t")
	if cmd.Status != entities.EstimateStatusDraft || !cmd.TaxRate.IsZero() {
		t.Fatalf("expected DRAFT and zero tax, got %+v", cmd)
	}
}

func TestUpdateEstimateRequest_ToCommand(t *testing.T) {
	var req UpdateEstimateRequest
	if err := json.Unmarshal([]byte(`{"taxRate": 20, "status": "approved"}`), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cmd := req.ToCommand()
	if cmd.Options != nil || cmd.Title != nil {
		t.Fatalf("absent fields must stay nil: %+v", cmd)
	}
	if cmd.Status == nil || *cmd.Status != entities.EstimateStatusApproved {
		t.Fatalf("unexpected status: %v", cmd.Status)
	}
	if cmd.TaxRate == nil || !cmd.TaxRate.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("unexpected tax rate: %v", cmd.TaxRate)
	}

	req = UpdateEstimateRequest{}
	if err := json.Unmarshal([]byte(`{"options": []}`), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd := req.ToCommand(); cmd.Options == nil || len(*cmd.Options) != 0 {
		t.Fatalf("an explicit empty options list must reach the use case, got %+v", cmd.Options)
	}
}

func TestProviderPayload(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		got, err := ProviderPayload([]byte("  "))
		if err != nil || string(got) != "{}" {
			t.Fatalf("expected {}, got %s (%v)", got, err)
		}
	})

	t.Run("envelope", func(t *testing.T) {
		got, err := ProviderPayload([]byte(`{"mp_payload":{"payment_method_id":"pix"}}`))
		if err != nil || string(got) != `{"payment_method_id":"pix"}` {
			t.Fatalf("unexpected payload %s (%v)", got, err)
		}
	})

	t.Run("bare payload", func(t *testing.T) {
		got, err := ProviderPayload([]byte(`{"payment_method_id":"pix"}`))
		if err != nil || string(got) != `{"payment_method_id":"pix"}` {
			t.Fatalf("unexpected payload %s (%v)", got, err)
		}
	})

	t.Run("null envelope", func(t *testing.T) {
		if _, err := ProviderPayload([]byte(`{"mp_payload":null}`)); !errors.Is(err, ErrEmptyProviderPayload) {
			t.Fatalf("expected ErrEmptyProviderPayload, got %v", err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		if _, err := ProviderPayload([]byte("{")); err == nil {
			t.Fatalf("expected error")
		}
	})
}
