package interfaces

import (
	"context"

	"fieldservice/internal/domain/entities"
)

// IBillingPaymentRepository abstracts persistence for estimate payments.
type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	ListByEstimateID(ctx context.Context, tenantID, estimateID string) ([]entities.BillingPayment, error)
}
