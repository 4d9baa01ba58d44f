// Package usecase はjobsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"jobboard_backend/internal/feature/jobs/domain/entity"
)

// JobRepository は求人エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type JobRepository interface {
	// List は全求人を作成日時の降順（新しい順）で取得します。
	List(ctx context.Context) ([]entity.Job, error)

	// FindByID は指定されたIDに一致する求人を取得します。
	// 求人が存在しない場合、ErrJobNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Job, error)

	// Create は新しい求人をストレージに永続化します。
	Create(ctx context.Context, job *entity.Job) error

	// UpdateOwned はIDと所有者の両方に一致する求人を単一の条件付き更新で
	// 書き換え、更新後の求人を返します。一致する行がない場合（存在しない、
	// または所有者が異なる）、ErrJobNotFoundを返します。
	UpdateOwned(ctx context.Context, id, ownerID uint, fields *entity.Job) (*entity.Job, error)

	// DeleteOwned はIDと所有者の両方に一致する求人を単一の条件付き削除で
	// 取り除きます。一致する行がない場合、ErrJobNotFoundを返します。
	DeleteOwned(ctx context.Context, id, ownerID uint) error
}

// jobsUsecase は求人CRUDのビジネスロジックを実装します。
// 読み取りは公開、書き込みは所有者のみという方針をここで強制します。
type jobsUsecase struct {
	jobs JobRepository
}

// NewJobsUsecase はjobsUsecaseの新しいインスタンスを生成します。
func NewJobsUsecase(jobs JobRepository) *jobsUsecase {
	return &jobsUsecase{jobs: jobs}
}

// List は全求人を新しい順で返します。認証は不要です。
func (u *jobsUsecase) List(ctx context.Context) ([]entity.Job, error) {
	jobs, err := u.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// GetByID は指定されたIDの求人を返します。認証は不要です。
func (u *jobsUsecase) GetByID(ctx context.Context, id uint) (*entity.Job, error) {
	return u.jobs.FindByID(ctx, id)
}

// Create は認証済みユーザーを所有者として新しい求人を登録します。
// リクエスト由来の所有者情報は無条件に上書きし、所有者の偽装を防ぎます。
func (u *jobsUsecase) Create(ctx context.Context, ownerID uint, job *entity.Job) (*entity.Job, error) {
	job.ID = 0
	job.UserID = ownerID
	if err := u.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// Update は所有者本人による求人の更新を行います。
// ID・所有者・更新内容をひとつの条件付きストア操作として実行するため、
// 確認と書き込みの間に所有者が変わる余地はありません。所有者が異なる場合も
// 存在しない場合と同じErrJobNotFoundになります。
func (u *jobsUsecase) Update(ctx context.Context, ownerID, id uint, fields *entity.Job) (*entity.Job, error) {
	return u.jobs.UpdateOwned(ctx, id, ownerID, fields)
}

// Delete は所有者本人による求人の削除を行います。
// Updateと同じくIDと所有者を単一の条件付き操作で照合します。
func (u *jobsUsecase) Delete(ctx context.Context, ownerID, id uint) error {
	return u.jobs.DeleteOwned(ctx, id, ownerID)
}
