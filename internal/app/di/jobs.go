// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	jobsadapters "jobboard_backend/internal/feature/jobs/adapters"
	"jobboard_backend/internal/feature/jobs/usecase"
	"jobboard_backend/internal/platform/cache"
)

// NewJobRepository creates a JobRepository implementation.
// If Redis is available, the MySQL repository is wrapped with listing-cache
// decoration. Otherwise, the plain MySQL repository is returned.
func NewJobRepository(rdb *redis.Client, db *gorm.DB) usecase.JobRepository {
	inner := jobsadapters.NewJobMySQL(db)
	if rdb != nil {
		return cache.NewCachingJobRepository(rdb, 5*time.Minute, inner, "jobs")
	}
	return inner
}
