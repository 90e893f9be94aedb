package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

type stubCreator struct {
	got  payment.Request
	resp *payment.Response
	err  error
}

func (s *stubCreator) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	s.got = req
	return s.resp, s.err
}

func TestNewMercadoPagoGateway(t *testing.T) {
	if _, err := NewMercadoPagoGateway("", false, nil); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected missing token error, got %v", err)
	}
	g, err := NewMercadoPagoGateway("", true, zap.NewNop())
	if err != nil || !g.mockMode {
		t.Fatalf("expected mock gateway, got %+v (%v)", g, err)
	}
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("mock mode approves and echoes the payload", func(t *testing.T) {
		g, _ := NewMercadoPagoGateway("", true, zap.NewNop())

		id, status, raw, err := g.CreatePayment(ctx, json.RawMessage(`{"external_reference":"EST-0042","transaction_amount":126.5}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == "" || status != "approved" {
			t.Fatalf("unexpected result id=%q status=%q", id, status)
		}
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if body["external_reference"] != "EST-0042" || body["status_detail"] != "accredited" {
			t.Fatalf("unexpected response body: %v", body)
		}
	})

	t.Run("sdk client", func(t *testing.T) {
		stub := &stubCreator{resp: &payment.Response{ID: 987, Status: "pending"}}
		g := &MercadoPagoGateway{client: stub, logger: zap.NewNop()}

		id, status, raw, err := g.CreatePayment(ctx, json.RawMessage(`{"transaction_amount":126.5,"external_reference":"EST-0042"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "987" || status != "pending" || len(raw) == 0 {
			t.Fatalf("unexpected result id=%q status=%q raw=%s", id, status, raw)
		}
		if stub.got.TransactionAmount != 126.5 || stub.got.ExternalReference != "EST-0042" {
			t.Fatalf("unexpected sdk request: %+v", stub.got)
		}
	})

	t.Run("sdk error", func(t *testing.T) {
		g := &MercadoPagoGateway{client: &stubCreator{err: errors.New("status 401")}, logger: zap.NewNop()}
		if _, _, _, err := g.CreatePayment(ctx, json.RawMessage(`{}`)); err == nil {
			t.Fatalf("expected sdk error")
		}
	})

	t.Run("unconfigured", func(t *testing.T) {
		var g *MercadoPagoGateway
		if _, _, _, err := g.CreatePayment(ctx, json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected not configured error, got %v", err)
		}
	})
}
