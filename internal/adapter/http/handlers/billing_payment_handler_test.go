package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fieldservice/internal/adapter/http/handlers/mocks"
	"fieldservice/internal/adapter/http/middleware"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestBillingPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc, nil, false)

		r := newTenantRouter()
		r.POST("/estimates/:id/payments", h.CreatePayment)

		w := doRequest(r, http.MethodPost, "/estimates/est-1/payments", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("null envelope is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc, nil, false)

		r := newTenantRouter()
		r.POST("/estimates/:id/payments", h.CreatePayment)

		w := doRequest(r, http.MethodPost, "/estimates/est-1/payments", `{"mp_payload":null}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mock mode falls back to an empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc, nil, true)

		r := newTenantRouter()
		r.POST("/estimates/:id/payments", h.CreatePayment)

		uc.EXPECT().Pay(gomock.Any(), "tenant-1", "est-1", json.RawMessage("{}")).
			Return(entities.BillingPayment{ID: "pay-1", EstimateID: "est-1", Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/estimates/est-1/payments", nil)
		req.Body = failingReadCloser{}
		req.Header.Set(middleware.TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase mapped errors", func(t *testing.T) {
		cases := map[error]int{
			usecase.ErrEstimateNotApproved:        http.StatusConflict,
			usecase.ErrEstimateNotFound:           http.StatusNotFound,
			usecase.ErrPaymentGatewayUnauthorized: http.StatusUnauthorized,
			usecase.ErrPaymentGatewayBadRequest:   http.StatusBadRequest,
			usecase.ErrPaymentGatewayMissing:      http.StatusServiceUnavailable,
		}
		for err, status := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
			h := NewBillingPaymentHandler(uc, nil, false)

			r := newTenantRouter()
			r.POST("/estimates/:id/payments", h.CreatePayment)

			uc.EXPECT().Pay(gomock.Any(), "tenant-1", "est-1", gomock.Any()).Return(entities.BillingPayment{}, err)

			w := doRequest(r, http.MethodPost, "/estimates/est-1/payments", `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)
			if w.Code != status {
				t.Fatalf("%v: expected %d, got %d", err, status, w.Code)
			}
		}
	})

	t.Run("success unwraps the envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc, nil, false)

		r := newTenantRouter()
		r.POST("/estimates/:id/payments", h.CreatePayment)

		now := time.Now().UTC()
		uc.EXPECT().Pay(gomock.Any(), "tenant-1", "est-1", json.RawMessage(`{"payment_method_id":"pix"}`)).
			Return(entities.BillingPayment{ID: "pay-1", EstimateID: "est-1", Amount: decimal.RequireFromString("150.5"), Date: now, Status: entities.PaymentStatusApproved}, nil)

		w := doRequest(r, http.MethodPost, "/estimates/est-1/payments", `{"mp_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["id"] != "pay-1" || body["amount"] != 150.5 || body["status"] != "APPROVED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestBillingPaymentHandler_GetLatestPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc, nil, false)

		r := newTenantRouter()
		r.GET("/estimates/:id/payments", h.GetLatestPayment)

		uc.EXPECT().Latest(gomock.Any(), "tenant-1", "est-1").Return(entities.BillingPayment{}, usecase.ErrBillingPaymentNotFound)

		w := doRequest(r, http.MethodGet, "/estimates/est-1/payments", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc, nil, false)

		r := newTenantRouter()
		r.GET("/estimates/:id/payments", h.GetLatestPayment)

		uc.EXPECT().Latest(gomock.Any(), "tenant-1", "est-1").Return(entities.BillingPayment{ID: "pay-2", EstimateID: "est-1", Status: entities.PaymentStatusPending}, nil)

		w := doRequest(r, http.MethodGet, "/estimates/est-1/payments", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["id"] != "pay-2" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
