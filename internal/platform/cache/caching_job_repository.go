// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"jobboard_backend/internal/feature/jobs/domain/entity"
	"jobboard_backend/internal/feature/jobs/usecase"
)

// CachingJobRepository decorates a JobRepository with Redis caching of the
// public job listing. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository. Every write
// invalidates the listing so readers never see a stale set for longer than
// one write.
type CachingJobRepository struct {
	inner     usecase.JobRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingJobRepository decorates a JobRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "jobs".
func NewCachingJobRepository(rdb *redis.Client, ttl time.Duration, inner usecase.JobRepository, namespace string) *CachingJobRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "jobs"
	}
	return &CachingJobRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// listKey is the cache key for the full public listing.
func (c *CachingJobRepository) listKey() string {
	return c.namespace + ":all"
}

// invalidate drops the cached listing. Best effort: a failed delete only
// means one extra database read after the TTL.
func (c *CachingJobRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.listKey()).Err()
}

// List retrieves the listing, checking cache first then falling back to the
// database.
func (c *CachingJobRepository) List(ctx context.Context) ([]entity.Job, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.listKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Job
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID always reads through to the database; single-job reads are cheap
// and keeping them uncached avoids a second invalidation path.
func (c *CachingJobRepository) FindByID(ctx context.Context, id uint) (*entity.Job, error) {
	return c.inner.FindByID(ctx, id)
}

// Create inserts a job and invalidates the cached listing.
func (c *CachingJobRepository) Create(ctx context.Context, job *entity.Job) error {
	if err := c.inner.Create(ctx, job); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// UpdateOwned updates a job through the inner repository and invalidates the
// cached listing. The ownership condition stays inside the inner repository's
// single conditional update.
func (c *CachingJobRepository) UpdateOwned(ctx context.Context, id, ownerID uint, fields *entity.Job) (*entity.Job, error) {
	job, err := c.inner.UpdateOwned(ctx, id, ownerID, fields)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return job, nil
}

// DeleteOwned deletes a job through the inner repository and invalidates the
// cached listing.
func (c *CachingJobRepository) DeleteOwned(ctx context.Context, id, ownerID uint) error {
	if err := c.inner.DeleteOwned(ctx, id, ownerID); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}
