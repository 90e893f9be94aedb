package gormrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/domain/numbering"
	"fieldservice/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EstimateRepository struct {
	db *gorm.DB
}

var _ interfaces.IEstimateRepository = (*EstimateRepository)(nil)

func NewEstimateRepository(db *gorm.DB) *EstimateRepository {
	return &EstimateRepository{db: db}
}

func withOptions(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Options", func(tx *gorm.DB) *gorm.DB { return tx.Order("sort_order ASC") }).
		Preload("Options.LineItems", func(tx *gorm.DB) *gorm.DB { return tx.Order("sort_order ASC") })
}

func (r *EstimateRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	rec := toEstimateRecord(e)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rec).Error
	})
	if isDuplicateKey(err) {
		return entities.Estimate{}, interfaces.ErrDuplicateEstimateNumber
	}
	if err != nil {
		return entities.Estimate{}, err
	}
	return rec.toEntity(), nil
}

func (r *EstimateRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Estimate, error) {
	return r.load(withOptions(r.db.WithContext(ctx)), tenantID, id)
}

func (r *EstimateRepository) load(tx *gorm.DB, tenantID, id string) (entities.Estimate, error) {
	var rec estimateRecord
	err := tx.Where("tenant_id = ? AND id = ?", tenantID, id).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Estimate{}, nil
	}
	if err != nil {
		return entities.Estimate{}, err
	}
	return rec.toEntity(), nil
}

func (r *EstimateRepository) List(ctx context.Context, tenantID string) ([]entities.Estimate, error) {
	var recs []estimateRecord
	err := withOptions(r.db.WithContext(ctx)).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Estimate, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toEntity())
	}
	return out, nil
}

func (r *EstimateRepository) Update(ctx context.Context, e entities.Estimate, replaceOptions bool) (entities.Estimate, error) {
	rec := toEstimateRecord(e)
	var updated entities.Estimate
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&estimateRecord{}).
			Where("tenant_id = ? AND id = ?", e.TenantID, e.ID).
			Updates(map[string]interface{}{
				"customer_id":          rec.CustomerID,
				"address_id":           rec.AddressID,
				"status":               rec.Status,
				"title":                rec.Title,
				"message":              rec.Message,
				"terms_and_conditions": rec.TermsAndConditions,
				"valid_until":          rec.ValidUntil,
				"sent_at":              rec.SentAt,
				"viewed_at":            rec.ViewedAt,
				"approved_at":          rec.ApprovedAt,
				"declined_at":          rec.DeclinedAt,
				"expired_at":           rec.ExpiredAt,
				"subtotal":             rec.Subtotal,
				"discount_amount":      rec.DiscountAmount,
				"tax_amount":           rec.TaxAmount,
				"total":                rec.Total,
				"updated_at":           rec.UpdatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if replaceOptions {
			if err := deleteOptions(tx, e.ID); err != nil {
				return err
			}
			if len(rec.Options) > 0 {
				if err := tx.Create(&rec.Options).Error; err != nil {
					return err
				}
			}
		}

		var err error
		updated, err = r.load(withOptions(tx), e.TenantID, e.ID)
		return err
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Estimate{}, nil
	}
	if err != nil {
		return entities.Estimate{}, err
	}
	return updated, nil
}

func deleteOptions(tx *gorm.DB, estimateID string) error {
	optionIDs := tx.Model(&optionRecord{}).Select("id").Where("estimate_id = ?", estimateID)
	if err := tx.Where("option_id IN (?)", optionIDs).Delete(&lineItemRecord{}).Error; err != nil {
		return err
	}
	return tx.Where("estimate_id = ?", estimateID).Delete(&optionRecord{}).Error
}

// Delete locks the estimate row and refuses with
// *interfaces.EstimateReferencedError while jobs or service requests point at
// it. Work writes that link an estimate share-lock the same row, so the count
// and the delete cannot interleave with a new link.
func (r *EstimateRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec estimateRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("tenant_id = ? AND id = ?", tenantID, id).
			Take(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		jobs, requests, err := countReferences(tx, tenantID, id)
		if err != nil {
			return err
		}
		if jobs > 0 || requests > 0 {
			return &interfaces.EstimateReferencedError{Jobs: jobs, ServiceRequests: requests}
		}

		if err := deleteOptions(tx, id); err != nil {
			return err
		}
		return tx.Where("tenant_id = ? AND id = ?", tenantID, id).Delete(&estimateRecord{}).Error
	})
}

func (r *EstimateRepository) CountReferences(ctx context.Context, tenantID, id string) (int, int, error) {
	return countReferences(r.db.WithContext(ctx), tenantID, id)
}

func countReferences(db *gorm.DB, tenantID, id string) (int, int, error) {
	var jobs, requests int64
	if err := db.Model(&jobRecord{}).Where("tenant_id = ? AND estimate_id = ?", tenantID, id).Count(&jobs).Error; err != nil {
		return 0, 0, err
	}
	if err := db.Model(&serviceRequestRecord{}).Where("tenant_id = ? AND estimate_id = ?", tenantID, id).Count(&requests).Error; err != nil {
		return 0, 0, err
	}
	return int(jobs), int(requests), nil
}

// AllocateEstimateSequence bumps the tenant's counter under a row lock. The
// first call for a tenant seeds the counter from its newest estimate.
func (r *EstimateRepository) AllocateEstimateSequence(ctx context.Context, tenantID string) (int, error) {
	var next int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := lockCounter(tx, tenantID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			seed, serr := latestSequence(tx, tenantID)
			if serr != nil {
				return serr
			}
			fresh := counterRecord{TenantID: tenantID, LastValue: seed, UpdatedAt: time.Now().UTC()}
			if cerr := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error; cerr != nil {
				return cerr
			}
			c, err = lockCounter(tx, tenantID)
		}
		if err != nil {
			return err
		}

		next = c.LastValue + 1
		return tx.Model(&counterRecord{}).
			Where("tenant_id = ?", tenantID).
			Updates(map[string]interface{}{"last_value": next, "updated_at": time.Now().UTC()}).Error
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}

// lockCounter builds a new statement on every call; a chained *gorm.DB keeps
// the conditions and errors of earlier queries.
func lockCounter(tx *gorm.DB, tenantID string) (counterRecord, error) {
	var c counterRecord
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("tenant_id = ?", tenantID).
		Take(&c).Error
	return c, err
}

// latestSequence returns the numeric part of the tenant's newest estimate
// number, or 0 when there is none.
func latestSequence(tx *gorm.DB, tenantID string) (int, error) {
	var numbers []string
	err := tx.Model(&estimateRecord{}).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Limit(1).
		Pluck("estimate_number", &numbers).Error
	if err != nil || len(numbers) == 0 {
		return 0, err
	}
	return numbering.Next(numbers[0]) - 1, nil
}

func (r *EstimateRepository) EstimateNumberExists(ctx context.Context, tenantID, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&estimateRecord{}).
		Where("tenant_id = ? AND estimate_number = ?", tenantID, number).
		Count(&count).Error
	return count > 0, err
}

func (r *EstimateRepository) ListExpirable(ctx context.Context, now time.Time) ([]entities.Estimate, error) {
	var recs []estimateRecord
	err := withOptions(r.db.WithContext(ctx)).
		Where("status IN ?", []string{string(entities.EstimateStatusSent), string(entities.EstimateStatusViewed)}).
		Where("valid_until IS NOT NULL AND valid_until < ?", now.UTC()).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Estimate, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toEntity())
	}
	return out, nil
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
