package gormrepo

import (
	"context"
	"errors"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorkRepository struct {
	db *gorm.DB
}

var _ interfaces.IWorkRepository = (*WorkRepository)(nil)

func NewWorkRepository(db *gorm.DB) *WorkRepository {
	return &WorkRepository{db: db}
}

func (r *WorkRepository) CreateJob(ctx context.Context, j entities.Job) (entities.Job, error) {
	rec := jobRecord{
		ID:          j.ID,
		TenantID:    j.TenantID,
		CustomerID:  j.CustomerID,
		EstimateID:  j.EstimateID,
		Title:       j.Title,
		Status:      string(j.Status),
		ScheduledAt: utcPtr(j.ScheduledAt),
		CreatedAt:   j.CreatedAt.UTC(),
		UpdatedAt:   j.UpdatedAt.UTC(),
	}
	if err := r.createLinked(ctx, rec.TenantID, rec.EstimateID, &rec); err != nil {
		return entities.Job{}, err
	}
	return rec.toEntity(), nil
}

func (r *WorkRepository) GetJob(ctx context.Context, tenantID, id string) (entities.Job, error) {
	var rec jobRecord
	err := r.db.WithContext(ctx).Where("tenant_id = ? AND id = ?", tenantID, id).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Job{}, nil
	}
	if err != nil {
		return entities.Job{}, err
	}
	return rec.toEntity(), nil
}

func (r *WorkRepository) ListJobs(ctx context.Context, tenantID string) ([]entities.Job, error) {
	var recs []jobRecord
	if err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Job, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toEntity())
	}
	return out, nil
}

func (r *WorkRepository) SetJobEstimate(ctx context.Context, tenantID, id string, estimateID *string) (entities.Job, error) {
	found, err := r.setEstimate(ctx, &jobRecord{}, tenantID, id, estimateID)
	if err != nil || !found {
		return entities.Job{}, err
	}
	return r.GetJob(ctx, tenantID, id)
}

func (r *WorkRepository) DeleteJob(ctx context.Context, tenantID, id string) error {
	return r.db.WithContext(ctx).Where("tenant_id = ? AND id = ?", tenantID, id).Delete(&jobRecord{}).Error
}

func (r *WorkRepository) CreateServiceRequest(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	rec := serviceRequestRecord{
		ID:          sr.ID,
		TenantID:    sr.TenantID,
		CustomerID:  sr.CustomerID,
		EstimateID:  sr.EstimateID,
		Title:       sr.Title,
		Description: sr.Description,
		Status:      string(sr.Status),
		CreatedAt:   sr.CreatedAt.UTC(),
		UpdatedAt:   sr.UpdatedAt.UTC(),
	}
	if err := r.createLinked(ctx, rec.TenantID, rec.EstimateID, &rec); err != nil {
		return entities.ServiceRequest{}, err
	}
	return rec.toEntity(), nil
}

func (r *WorkRepository) GetServiceRequest(ctx context.Context, tenantID, id string) (entities.ServiceRequest, error) {
	var rec serviceRequestRecord
	err := r.db.WithContext(ctx).Where("tenant_id = ? AND id = ?", tenantID, id).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ServiceRequest{}, nil
	}
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return rec.toEntity(), nil
}

func (r *WorkRepository) ListServiceRequests(ctx context.Context, tenantID string) ([]entities.ServiceRequest, error) {
	var recs []serviceRequestRecord
	if err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.ServiceRequest, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toEntity())
	}
	return out, nil
}

func (r *WorkRepository) SetServiceRequestEstimate(ctx context.Context, tenantID, id string, estimateID *string) (entities.ServiceRequest, error) {
	found, err := r.setEstimate(ctx, &serviceRequestRecord{}, tenantID, id, estimateID)
	if err != nil || !found {
		return entities.ServiceRequest{}, err
	}
	return r.GetServiceRequest(ctx, tenantID, id)
}

func (r *WorkRepository) DeleteServiceRequest(ctx context.Context, tenantID, id string) error {
	return r.db.WithContext(ctx).Where("tenant_id = ? AND id = ?", tenantID, id).Delete(&serviceRequestRecord{}).Error
}

func (r *WorkRepository) createLinked(ctx context.Context, tenantID string, estimateID *string, rec interface{}) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := shareLockEstimate(tx, tenantID, estimateID); err != nil {
			return err
		}
		return tx.Create(rec).Error
	})
}

// setEstimate reports false when no row matches the tenant and id.
func (r *WorkRepository) setEstimate(ctx context.Context, model interface{}, tenantID, id string, estimateID *string) (bool, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := shareLockEstimate(tx, tenantID, estimateID); err != nil {
			return err
		}
		res := tx.Model(model).
			Where("tenant_id = ? AND id = ?", tenantID, id).
			Updates(map[string]interface{}{"estimate_id": nullable(estimateID), "updated_at": time.Now().UTC()})
		affected = res.RowsAffected
		return res.Error
	})
	return affected > 0, err
}

// shareLockEstimate holds the linked estimate row until the write commits, so
// EstimateRepository.Delete either sees the new link or removes the estimate
// before it is stored.
func shareLockEstimate(tx *gorm.DB, tenantID string, estimateID *string) error {
	if estimateID == nil {
		return nil
	}
	var rec estimateRecord
	err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
		Select("id").
		Where("tenant_id = ? AND id = ?", tenantID, *estimateID).
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return interfaces.ErrLinkedEstimateMissing
	}
	return err
}

// nullable turns a nil id into SQL NULL for map updates.
func nullable(id *string) interface{} {
	if id == nil {
		return gorm.Expr("NULL")
	}
	return *id
}
