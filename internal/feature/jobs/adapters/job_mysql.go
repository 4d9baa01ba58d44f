// Package adapters はjobsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/feature/jobs/domain/entity"
	"jobboard_backend/internal/feature/jobs/usecase"
)

// updatableColumns は更新時に書き換える列です。所有者（user_id）と作成日時は
// 更新対象に含めず、作成時の値を保ちます。
var updatableColumns = []string{
	"title", "type", "description",
	"company_name", "contact_email", "contact_phone",
	"location", "salary",
}

// jobMySQL はJobRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type jobMySQL struct {
	db *gorm.DB
}

// jobMySQLがJobRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.JobRepository = (*jobMySQL)(nil)

// NewJobMySQL は指定されたgorm.DB接続でjobMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewJobMySQL(db *gorm.DB) *jobMySQL {
	return &jobMySQL{db: db}
}

// List は全求人を作成日時の降順で取得します。
func (r *jobMySQL) List(ctx context.Context) ([]entity.Job, error) {
	var jobs []entity.Job
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindByID はIDで求人を取得します。
// 求人が存在しない場合、usecase.ErrJobNotFoundを返します。
func (r *jobMySQL) FindByID(ctx context.Context, id uint) (*entity.Job, error) {
	var job entity.Job
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Create は求人をデータベースに追加します。
func (r *jobMySQL) Create(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// UpdateOwned はIDと所有者の両方に一致する求人を更新します。
// WHERE句でidとuser_idを同時に照合する1回のUPDATEとして実行するため、
// 確認してから書き込むまでの間隙がありません。影響行数が0の場合
// （存在しない、または所有者が異なる）、usecase.ErrJobNotFoundを返します。
func (r *jobMySQL) UpdateOwned(ctx context.Context, id, ownerID uint, fields *entity.Job) (*entity.Job, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Job{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Select(updatableColumns).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrJobNotFound
	}

	// 更新後の求人を返す（レスポンス用の再読込。所有権の判定は上のUPDATEで完結している）
	return r.FindByID(ctx, id)
}

// DeleteOwned はIDと所有者の両方に一致する求人を削除します。
// UpdateOwnedと同じく単一の条件付きDELETEとして実行し、影響行数が0の場合は
// usecase.ErrJobNotFoundを返します。
func (r *jobMySQL) DeleteOwned(ctx context.Context, id, ownerID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&entity.Job{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrJobNotFound
	}
	return nil
}
