package response

import (
	"time"

	"fieldservice/internal/domain/entities"
)

type BillingPaymentResponse struct {
	ID         string    `json:"id"`
	EstimateID string    `json:"estimateId"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`

	ProviderPayloadRaw string                 `json:"providerPayloadRaw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"providerPayload,omitempty"`
}

func FromBillingPayment(p entities.BillingPayment) BillingPaymentResponse {
	return BillingPaymentResponse{
		ID:                 p.ID,
		EstimateID:         p.EstimateID,
		Amount:             p.Amount.InexactFloat64(),
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
