package gormrepo

import (
	"context"
	"encoding/json"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BillingPaymentRepository struct {
	db *gorm.DB
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentRepository)(nil)

func NewBillingPaymentRepository(db *gorm.DB) *BillingPaymentRepository {
	return &BillingPaymentRepository{db: db}
}

func (r *BillingPaymentRepository) Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	rec := paymentRecord{
		ID:         p.ID,
		TenantID:   p.TenantID,
		EstimateID: p.EstimateID,
		Amount:     p.Amount,
		Date:       p.Date.UTC(),
		Status:     string(p.Status),
	}
	// Unparseable provider bodies are stored as an empty object.
	rec.ProviderPayload = datatypes.JSON("{}")
	if len(p.ProviderPayloadRaw) > 0 && json.Valid(p.ProviderPayloadRaw) {
		rec.ProviderPayload = datatypes.JSON(p.ProviderPayloadRaw)
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.BillingPayment{}, err
	}
	return rec.toEntity(), nil
}

func (r *BillingPaymentRepository) ListByEstimateID(ctx context.Context, tenantID, estimateID string) ([]entities.BillingPayment, error) {
	var recs []paymentRecord
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND estimate_id = ?", tenantID, estimateID).
		Order("date DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.BillingPayment, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toEntity())
	}
	return out, nil
}
