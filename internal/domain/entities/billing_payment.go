package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusDenied   PaymentStatus = "DENIED"
)

// BillingPayment is a payment collected against an approved estimate.
//
// ProviderPayloadRaw keeps the provider response body for audit;
// ProviderPayload is its parsed form.
type BillingPayment struct {
	ID         string
	TenantID   string
	EstimateID string
	Amount     decimal.Decimal
	Date       time.Time
	Status     PaymentStatus

	ProviderPayloadRaw json.RawMessage
	ProviderPayload    map[string]interface{}
}
