// Package cache decorates repositories with a Redis read-through cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "estimates"

// EstimateRepository caches estimate reads per tenant and drops the tenant's
// keys on every write. Redis failures are logged and the call falls through
// to the wrapped repository.
type EstimateRepository struct {
	interfaces.IEstimateRepository

	rdb    redis.UniversalClient
	ttl    time.Duration
	logger *zap.Logger
}

var _ interfaces.IEstimateRepository = (*EstimateRepository)(nil)

func NewEstimateRepository(next interfaces.IEstimateRepository, rdb redis.UniversalClient, ttl time.Duration, logger *zap.Logger) *EstimateRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EstimateRepository{
		IEstimateRepository: next,
		rdb:                 rdb,
		ttl:                 ttl,
		logger:              logger.Named("estimate_cache"),
	}
}

func itemKey(tenantID, id string) string {
	return fmt.Sprintf("%s:%s:id:%s", keyPrefix, tenantID, id)
}

func listKey(tenantID string) string {
	return fmt.Sprintf("%s:%s:list", keyPrefix, tenantID)
}

func (r *EstimateRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Estimate, error) {
	key := itemKey(tenantID, id)
	var cached entities.Estimate
	if r.get(ctx, key, &cached) {
		return cached, nil
	}

	e, err := r.IEstimateRepository.GetByID(ctx, tenantID, id)
	if err != nil || e.ID == "" {
		return e, err
	}
	r.set(ctx, key, e)
	return e, nil
}

func (r *EstimateRepository) List(ctx context.Context, tenantID string) ([]entities.Estimate, error) {
	key := listKey(tenantID)
	var cached []entities.Estimate
	if r.get(ctx, key, &cached) {
		return cached, nil
	}

	list, err := r.IEstimateRepository.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	r.set(ctx, key, list)
	return list, nil
}

func (r *EstimateRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	created, err := r.IEstimateRepository.Create(ctx, e)
	if err == nil {
		r.invalidate(ctx, e.TenantID)
	}
	return created, err
}

func (r *EstimateRepository) Update(ctx context.Context, e entities.Estimate, replaceOptions bool) (entities.Estimate, error) {
	updated, err := r.IEstimateRepository.Update(ctx, e, replaceOptions)
	if err == nil {
		r.invalidate(ctx, e.TenantID)
	}
	return updated, err
}

func (r *EstimateRepository) Delete(ctx context.Context, tenantID, id string) error {
	err := r.IEstimateRepository.Delete(ctx, tenantID, id)
	if err == nil {
		r.invalidate(ctx, tenantID)
	}
	return err
}

func (r *EstimateRepository) get(ctx context.Context, key string, out interface{}) bool {
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		r.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		r.logger.Warn("cache entry unreadable", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (r *EstimateRepository) set(ctx context.Context, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := r.rdb.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		r.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// invalidate deletes every cached key of the tenant. SCAN keeps Redis
// responsive where KEYS would block it.
func (r *EstimateRepository) invalidate(ctx context.Context, tenantID string) {
	pattern := fmt.Sprintf("%s:%s:*", keyPrefix, tenantID)
	iter := r.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := r.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			r.logger.Warn("cache invalidation failed", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		r.logger.Warn("cache scan failed", zap.String("tenant_id", tenantID), zap.Error(err))
	}
}
