package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"techmend/internal/domain/entities"
	"techmend/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const requestCacheTTL = 5 * time.Minute

// CachedRequestRepository is a read-through cache in front of the request
// repository. Single-aggregate reads are served from Redis when possible;
// every write invalidates the cached copy before delegating. A nil or
// unreachable Redis client degrades to pass-through.

type CachedRequestRepository struct {
	inner interfaces.IMaintenanceRequestRepository
	rdb   *redis.Client
}

var _ interfaces.IMaintenanceRequestRepository = (*CachedRequestRepository)(nil)

func NewCachedRequestRepository(inner interfaces.IMaintenanceRequestRepository, rdb *redis.Client) *CachedRequestRepository {
	return &CachedRequestRepository{inner: inner, rdb: rdb}
}

func requestCacheKey(number string) string {
	return "request:" + number
}

func (r *CachedRequestRepository) GetByNumber(ctx context.Context, number string) (entities.MaintenanceRequest, error) {
	if r.rdb != nil {
		if raw, err := r.rdb.Get(ctx, requestCacheKey(number)).Bytes(); err == nil {
			var req entities.MaintenanceRequest
			if err := json.Unmarshal(raw, &req); err == nil {
				return req, nil
			}
		}
	}

	req, err := r.inner.GetByNumber(ctx, number)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if r.rdb != nil && req.Number != "" {
		if raw, err := json.Marshal(req); err == nil {
			if err := r.rdb.Set(ctx, requestCacheKey(number), raw, requestCacheTTL).Err(); err != nil {
				log.Printf("[request][cache] set failed number=%s err=%v", number, err)
			}
		}
	}
	return req, nil
}

func (r *CachedRequestRepository) Create(ctx context.Context, req entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
	created, err := r.inner.Create(ctx, req)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	r.invalidate(ctx, created.Number)
	return created, nil
}

func (r *CachedRequestRepository) Save(ctx context.Context, req entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
	saved, err := r.inner.Save(ctx, req)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	r.invalidate(ctx, saved.Number)
	return saved, nil
}

func (r *CachedRequestRepository) Delete(ctx context.Context, number string) error {
	if err := r.inner.Delete(ctx, number); err != nil {
		return err
	}
	r.invalidate(ctx, number)
	return nil
}

func (r *CachedRequestRepository) List(ctx context.Context, filter interfaces.ListFilter) ([]entities.MaintenanceRequest, string, error) {
	return r.inner.List(ctx, filter)
}

func (r *CachedRequestRepository) invalidate(ctx context.Context, number string) {
	if r.rdb == nil || number == "" {
		return
	}
	if err := r.rdb.Del(ctx, requestCacheKey(number)).Err(); err != nil {
		log.Printf("[request][cache] invalidate failed number=%s err=%v", number, err)
	}
}
