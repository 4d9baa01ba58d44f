package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobboard_backend/internal/feature/jobs/domain/entity"
	"jobboard_backend/internal/feature/jobs/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	// Create Job table
	err = db.AutoMigrate(&entity.Job{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// createJob persists a job with an explicit creation time for ordering tests.
func createJob(t *testing.T, repo *jobMySQL, ownerID uint, title string, createdAt time.Time) *entity.Job {
	t.Helper()

	job := &entity.Job{
		UserID:      ownerID,
		Title:       title,
		Type:        "Full-Time",
		Description: "desc",
		CreatedAt:   createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), job), "failed to create test job")
	return job
}

func TestJobMySQL_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobMySQL(db)

	job := &entity.Job{
		UserID:      1,
		Title:       "Backend Engineer",
		CompanyName: "Acme",
	}

	err := repo.Create(context.Background(), job)

	assert.NoError(t, err, "failed to create job")
	assert.NotZero(t, job.ID, "ID is not set")
	assert.False(t, job.CreatedAt.IsZero(), "CreatedAt is not set")
}

func TestJobMySQL_List(t *testing.T) {
	t.Run("returns jobs newest first", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewJobMySQL(db)

		base := time.Now().Add(-time.Hour)
		createJob(t, repo, 1, "oldest", base)
		createJob(t, repo, 1, "middle", base.Add(10*time.Minute))
		createJob(t, repo, 2, "newest", base.Add(20*time.Minute))

		jobs, err := repo.List(context.Background())

		require.NoError(t, err, "failed to list jobs")
		require.Len(t, jobs, 3, "unexpected job count")
		assert.Equal(t, "newest", jobs[0].Title, "first job should be the newest")
		assert.Equal(t, "middle", jobs[1].Title, "second job should be the middle one")
		assert.Equal(t, "oldest", jobs[2].Title, "last job should be the oldest")
	})

	t.Run("empty listing", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewJobMySQL(db)

		jobs, err := repo.List(context.Background())

		assert.NoError(t, err, "failed to list jobs")
		assert.Empty(t, jobs, "expected no jobs")
	})
}

func TestJobMySQL_FindByID(t *testing.T) {
	t.Run("find job by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewJobMySQL(db)

		expected := createJob(t, repo, 1, "Backend Engineer", time.Now())

		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err, "failed to find job")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Title, found.Title, "title does not match")
		assert.Equal(t, expected.UserID, found.UserID, "owner does not match")
	})

	t.Run("ID not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewJobMySQL(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.Error(t, err, "should return error")
		assert.Nil(t, found, "job should be nil")
		assert.ErrorIs(t, err, usecase.ErrJobNotFound, "should return ErrJobNotFound")
	})
}

func TestJobMySQL_UpdateOwned(t *testing.T) {
	t.Run("owner can update", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewJobMySQL(db)

		job := createJob(t, repo, 1, "Backend Engineer", time.Now())

		updated, err := repo.UpdateOwned(context.Background(), job.ID, 1, &entity.Job{
			Title:        "Senior Backend Engineer",
			Type:         "Contract",
			Description:  "own the payments platform",
			CompanyName:  "Acme",
			ContactEmail: "hr@acme.example",
			ContactPhone: "03-1234-5678",
			Location:     "Tokyo",
			Salary:       "¥9M-¥12M",
		})

		require.NoError(t, err, "owner update failed")
		assert.Equal(t, "Senior Backend Engineer", updated.Title, "title was not updated")
		assert.Equal(t, "Contract", updated.Type, "type was not updated")
		assert.Equal(t, "own the payments platform", updated.Description, "description was not updated")
		assert.Equal(t, "Acme", updated.CompanyName, "company name was not updated")
		assert.Equal(t, "hr@acme.example", updated.ContactEmail, "contact email was not updated")
		assert.Equal(t, "03-1234-5678", updated.ContactPhone, "contact phone was not updated")
		assert.Equal(t, "Tokyo", updated.Location, "location was not updated")
		assert.Equal(t, "¥9M-¥12M", updated.Salary, "salary was not updated")
		assert.Equal(t, uint(1), updated.UserID, "owner must not change")
	})

	t.Run("non-owner gets not found and the job stays unchanged", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewJobMySQL(db)

		job := createJob(t, repo, 1, "Backend Engineer", time.Now())

		_, err := repo.UpdateOwned(context.Background(), job.ID, 2, &entity.Job{Title: "Hijacked"})
		assert.ErrorIs(t, err, usecase.ErrJobNotFound, "non-owner must see not found")

		found, err := repo.FindByID(context.Background(), job.ID)
		require.NoError(t, err, "failed to reload job")
		assert.Equal(t, "Backend Engineer", found.Title, "job was mutated by a non-owner")
		assert.Equal(t, uint(1), found.UserID, "owner changed")
	})

	t.Run("update ignores owner in the patch", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewJobMySQL(db)

		job := createJob(t, repo, 1, "Backend Engineer", time.Now())

		updated, err := repo.UpdateOwned(context.Background(), job.ID, 1, &entity.Job{
			UserID: 99, // must be ignored: user_id is not an updatable column
			Title:  "Retitled",
		})

		require.NoError(t, err, "owner update failed")
		assert.Equal(t, uint(1), updated.UserID, "owner must not be overwritten by the patch")
		assert.Equal(t, "Retitled", updated.Title, "title was not updated")
	})

	t.Run("absent job gets not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewJobMySQL(db)

		_, err := repo.UpdateOwned(context.Background(), 999, 1, &entity.Job{Title: "x"})
		assert.ErrorIs(t, err, usecase.ErrJobNotFound, "should return ErrJobNotFound")
	})
}

func TestJobMySQL_DeleteOwned(t *testing.T) {
	t.Run("owner can delete", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewJobMySQL(db)

		job := createJob(t, repo, 1, "Backend Engineer", time.Now())

		err := repo.DeleteOwned(context.Background(), job.ID, 1)
		require.NoError(t, err, "owner delete failed")

		_, err = repo.FindByID(context.Background(), job.ID)
		assert.ErrorIs(t, err, usecase.ErrJobNotFound, "job should be gone")
	})

	t.Run("non-owner gets not found and the job survives", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewJobMySQL(db)

		job := createJob(t, repo, 1, "Backend Engineer", time.Now())

		err := repo.DeleteOwned(context.Background(), job.ID, 2)
		assert.ErrorIs(t, err, usecase.ErrJobNotFound, "non-owner must see not found")

		found, err := repo.FindByID(context.Background(), job.ID)
		require.NoError(t, err, "job should still exist")
		assert.Equal(t, job.ID, found.ID)
	})

	t.Run("absent job gets not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewJobMySQL(db)

		err := repo.DeleteOwned(context.Background(), 999, 1)
		assert.ErrorIs(t, err, usecase.ErrJobNotFound, "should return ErrJobNotFound")
	})
}
