package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"fieldservice/internal/adapter/http/handlers"
	"fieldservice/internal/adapter/http/middleware"
	"fieldservice/internal/config"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type testAPI struct {
	t      *testing.T
	router *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		StorageDriver:      config.StorageSQLite,
		SQLitePath:         filepath.Join(t.TempDir(), "api.db"),
		PaymentGatewayMock: true,
	}
	logger := zap.NewNop()

	repos, err := OpenRepositories(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("open repositories: %v", err)
	}
	t.Cleanup(repos.Close)

	estimates := usecase.NewEstimateUseCase(repos.Estimates, repos.Customers, logger)
	router := NewRouter(Handlers{
		Estimates: handlers.NewEstimateHandler(estimates, logger),
		Payments:  handlers.NewBillingPaymentHandler(usecase.NewBillingPaymentUseCase(repos.Payments, repos.Estimates, newPaymentGateway(cfg, logger), logger), logger, true),
		Customers: handlers.NewCustomerHandler(usecase.NewCustomerUseCase(repos.Customers, logger), logger),
		Work:      handlers.NewWorkHandler(usecase.NewWorkUseCase(repos.Work, repos.Customers, repos.Estimates, logger), logger),
	}, logger)

	return &testAPI{t: t, router: router}
}

func (a *testAPI) do(method, path, body string) (int, map[string]any) {
	a.t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.TenantHeader, "tenant-1")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 && strings.HasPrefix(w.Body.String(), "{") {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			a.t.Fatalf("invalid json %q: %v", w.Body.String(), err)
		}
	}
	return w.Code, out
}

func (a *testAPI) mustCreate(path, body string) map[string]any {
	a.t.Helper()
	code, out := a.do(http.MethodPost, path, body)
	if code != http.StatusCreated {
		a.t.Fatalf("POST %s: expected 201, got %d %v", path, code, out)
	}
	return out
}

// seedCustomer returns a customer ID and one of its address IDs.
func (a *testAPI) seedCustomer() (string, string) {
	customer := a.mustCreate("/api/customers", `{"name":"Ada Lovelace"}`)
	customerID := customer["id"].(string)
	address := a.mustCreate("/api/customers/"+customerID+"/addresses", `{"street":"12 Analytical Row"}`)
	return customerID, address["id"].(string)
}

func estimateBody(customerID, addressID, discount string) string {
	return `{"customerId":"` + customerID + `","addressId":"` + addressID + `","taxRate":10,"options":[{"name":"Standard",` + discount + `"lineItems":[` +
		`{"name":"Labor","quantity":2,"unitPrice":50,"isTaxable":true},` +
		`{"name":"Permit","quantity":1,"unitPrice":30,"isTaxable":false}]}]}`
}

func firstOption(t *testing.T, estimate map[string]any) map[string]any {
	t.Helper()
	options, ok := estimate["options"].([]any)
	if !ok || len(options) != 1 {
		t.Fatalf("expected one option, got %v", estimate["options"])
	}
	return options[0].(map[string]any)
}

func TestRouter_Ping(t *testing.T) {
	api := newTestAPI(t)
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 without tenant header, got %d", w.Code)
	}
}

func TestRouter_RequiresTenant(t *testing.T) {
	api := newTestAPI(t)
	req := httptest.NewRequest(http.MethodGet, "/api/estimates", nil)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRouter_PricingWithoutDiscount(t *testing.T) {
	api := newTestAPI(t)
	customerID, addressID := api.seedCustomer()

	est := api.mustCreate("/api/estimates", estimateBody(customerID, addressID, `"discountType":"NONE",`))
	opt := firstOption(t, est)

	want := map[string]float64{"subtotal": 130, "discountAmount": 0, "taxAmount": 10, "total": 140}
	for field, v := range want {
		if opt[field] != v {
			t.Fatalf("option %s: expected %v, got %v", field, v, opt[field])
		}
	}
	if est["total"] != 140.0 || est["status"] != "DRAFT" {
		t.Fatalf("unexpected estimate: %v", est)
	}
	if est["estimateNumber"] != "EST-0001" {
		t.Fatalf("expected first number EST-0001, got %v", est["estimateNumber"])
	}
	if est["customer"] == nil || est["address"] == nil {
		t.Fatalf("expected customer and address summaries")
	}
}

func TestRouter_PricingWithPercentageDiscount(t *testing.T) {
	api := newTestAPI(t)
	customerID, addressID := api.seedCustomer()

	est := api.mustCreate("/api/estimates", estimateBody(customerID, addressID, `"discountType":"PERCENTAGE","discountValue":10,`))
	opt := firstOption(t, est)

	want := map[string]float64{"subtotal": 130, "discountAmount": 13, "taxAmount": 9, "total": 126}
	for field, v := range want {
		if opt[field] != v {
			t.Fatalf("option %s: expected %v, got %v", field, v, opt[field])
		}
	}

	second := api.mustCreate("/api/estimates", estimateBody(customerID, addressID, ""))
	if second["estimateNumber"] != "EST-0002" {
		t.Fatalf("expected EST-0002, got %v", second["estimateNumber"])
	}
}

func TestRouter_SentAtStampedOnce(t *testing.T) {
	api := newTestAPI(t)
	customerID, addressID := api.seedCustomer()
	id := api.mustCreate("/api/estimates", estimateBody(customerID, addressID, ""))["id"].(string)

	code, first := api.do(http.MethodPut, "/api/estimates/"+id, `{"status":"SENT"}`)
	if code != http.StatusOK || first["sentAt"] == nil {
		t.Fatalf("expected sentAt after first send, got %d %v", code, first)
	}

	code, second := api.do(http.MethodPut, "/api/estimates/"+id, `{"status":"SENT"}`)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if second["sentAt"] != first["sentAt"] {
		t.Fatalf("sentAt changed: %v -> %v", first["sentAt"], second["sentAt"])
	}
}

func TestRouter_DeleteGuard(t *testing.T) {
	api := newTestAPI(t)
	customerID, addressID := api.seedCustomer()
	estimateID := api.mustCreate("/api/estimates", estimateBody(customerID, addressID, ""))["id"].(string)

	job := api.mustCreate("/api/jobs", `{"customerId":"`+customerID+`","estimateId":"`+estimateID+`","title":"Install"}`)
	jobID := job["id"].(string)

	code, body := api.do(http.MethodDelete, "/api/estimates/"+estimateID, "")
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg, _ := body["error"].(string); !strings.Contains(msg, "1 job(s)") {
		t.Fatalf("expected job count in message, got %v", body)
	}

	if code, body := api.do(http.MethodPut, "/api/jobs/"+jobID+"/estimate", `{"estimateId":null}`); code != http.StatusOK {
		t.Fatalf("unlink: expected 200, got %d %v", code, body)
	}

	if code, body := api.do(http.MethodDelete, "/api/estimates/"+estimateID, ""); code != http.StatusOK {
		t.Fatalf("expected 200 after unlink, got %d %v", code, body)
	}
	if code, _ := api.do(http.MethodGet, "/api/estimates/"+estimateID, ""); code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", code)
	}
}

func TestRouter_PaymentRequiresApproval(t *testing.T) {
	api := newTestAPI(t)
	customerID, addressID := api.seedCustomer()
	id := api.mustCreate("/api/estimates", estimateBody(customerID, addressID, ""))["id"].(string)

	if code, _ := api.do(http.MethodPost, "/api/estimates/"+id+"/payments", `{}`); code != http.StatusConflict {
		t.Fatalf("expected 409 before approval, got %d", code)
	}

	if code, _ := api.do(http.MethodPost, "/api/estimates/"+id+"/approve", ""); code != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d", code)
	}

	code, payment := api.do(http.MethodPost, "/api/estimates/"+id+"/payments", `{}`)
	if code != http.StatusOK || payment["amount"] != 140.0 {
		t.Fatalf("expected a 140.00 payment, got %d %v", code, payment)
	}

	code, latest := api.do(http.MethodGet, "/api/estimates/"+id+"/payments", "")
	if code != http.StatusOK || latest["id"] != payment["id"] {
		t.Fatalf("expected latest payment %v, got %d %v", payment["id"], code, latest)
	}
}

func TestRouter_Export(t *testing.T) {
	api := newTestAPI(t)
	customerID, addressID := api.seedCustomer()
	api.mustCreate("/api/estimates", estimateBody(customerID, addressID, ""))

	req := httptest.NewRequest(http.MethodGet, "/api/estimates/export", nil)
	req.Header.Set(middleware.TenantHeader, "tenant-1")
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK || !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Fatalf("expected an xlsx download, got %d", w.Code)
	}
}
