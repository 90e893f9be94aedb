package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	simple := NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	body := simple.ToHTTPError()
	if body.Error != "Estimate not found" || body.Message != "" || body.Code != "ESTIMATE_NOT_FOUND" {
		t.Fatalf("unexpected body: %+v", body)
	}

	cause := errors.New("connection refused")
	wrapped := NewDomainError("INTERNAL_ERROR", "Failed to create estimate", cause, http.StatusInternalServerError)
	body = wrapped.ToHTTPError()
	if body.Error != "Failed to create estimate" || body.Message != "connection refused" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if !errors.Is(wrapped, cause) {
		t.Fatalf("expected AppError to unwrap to its cause")
	}
}
