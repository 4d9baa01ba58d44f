// Package handler はjobsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/api"
	"jobboard_backend/internal/feature/jobs/domain/entity"
	"jobboard_backend/internal/feature/jobs/usecase"
	"jobboard_backend/internal/platform/token"
)

// JobsUsecase は求人CRUD操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type JobsUsecase interface {
	List(ctx context.Context) ([]entity.Job, error)
	GetByID(ctx context.Context, id uint) (*entity.Job, error)
	Create(ctx context.Context, ownerID uint, job *entity.Job) (*entity.Job, error)
	Update(ctx context.Context, ownerID, id uint, fields *entity.Job) (*entity.Job, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

// JobHandler は求人のHTTPリクエストを処理します。
type JobHandler struct {
	uc JobsUsecase
}

// NewJobHandler は指定されたusecaseでJobHandlerの新しいインスタンスを生成します。
func NewJobHandler(uc JobsUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// parseJobID はパスパラメータのIDを検証します。整形式でないIDはストレージに
// 問い合わせる前に弾きます（400。404や500にはしない）。
func parseJobID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid job ID"})
		return 0, false
	}
	return uint(id), true
}

// List は全求人を新しい順でJSONで返します。認証は不要です。
//
// エンドポイント例:
// GET /api/jobs
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list jobs", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to retrieve jobs"})
		return
	}

	// データをフォーマット
	out := make([]api.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJobResponse(&j))
	}

	c.JSON(http.StatusOK, out)
}

// GetByID は単一の求人をJSONで返します。認証は不要です。
func (h *JobHandler) GetByID(c *gin.Context) {
	id, ok := parseJobID(c)
	if !ok {
		return
	}

	job, err := h.uc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "job not found"})
			return
		}
		slog.Error("failed to get job", "error", err, "job_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to retrieve job"})
		return
	}

	c.JSON(http.StatusOK, toJobResponse(job))
}

// Create は認証済みユーザーを所有者として求人を登録します。
// - リクエストJSONをJobRequestにバインド
// - バリデーションエラー時は400を返却
// - 成功時は201で作成済みの求人を返却
func (h *JobHandler) Create(c *gin.Context) {
	user, ok := token.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "not authorized"})
		return
	}

	var req api.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("job validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	job, err := h.uc.Create(c.Request.Context(), user.ID, jobFromRequest(&req))
	if err != nil {
		slog.Error("failed to create job", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create job"})
		return
	}

	slog.Info("job created", "job_id", job.ID, "user_id", user.ID)
	c.JSON(http.StatusCreated, toJobResponse(job))
}

// Update は所有者本人による求人の更新を処理します。
// 所有者でない場合は存在しない場合と同じ404を返し、求人の存在を
// 非所有者に知らせません。
func (h *JobHandler) Update(c *gin.Context) {
	user, ok := token.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "not authorized"})
		return
	}

	id, ok := parseJobID(c)
	if !ok {
		return
	}

	var req api.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("job validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	job, err := h.uc.Update(c.Request.Context(), user.ID, id, jobFromRequest(&req))
	if err != nil {
		if errors.Is(err, usecase.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "job not found"})
			return
		}
		slog.Error("failed to update job", "error", err, "job_id", id, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update job"})
		return
	}

	slog.Info("job updated", "job_id", id, "user_id", user.ID)
	c.JSON(http.StatusOK, toJobResponse(job))
}

// Delete は所有者本人による求人の削除を処理します。成功時は204を返します。
func (h *JobHandler) Delete(c *gin.Context) {
	user, ok := token.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "not authorized"})
		return
	}

	id, ok := parseJobID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, usecase.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "job not found"})
			return
		}
		slog.Error("failed to delete job", "error", err, "job_id", id, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete job"})
		return
	}

	slog.Info("job deleted", "job_id", id, "user_id", user.ID)
	c.Status(http.StatusNoContent)
}

// jobFromRequest はリクエストDTOをエンティティに変換します。
// 所有者はここでは設定しません（usecaseが認証済みユーザーで上書きします）。
func jobFromRequest(req *api.JobRequest) *entity.Job {
	return &entity.Job{
		Title:        req.Title,
		Type:         req.Type,
		Description:  req.Description,
		CompanyName:  req.CompanyName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Location:     req.Location,
		Salary:       req.Salary,
	}
}

// toJobResponse はエンティティをレスポンスDTOに変換します。
func toJobResponse(j *entity.Job) api.JobResponse {
	return api.JobResponse{
		ID:           j.ID,
		UserID:       j.UserID,
		Title:        j.Title,
		Type:         j.Type,
		Description:  j.Description,
		CompanyName:  j.CompanyName,
		ContactEmail: j.ContactEmail,
		ContactPhone: j.ContactPhone,
		Location:     j.Location,
		Salary:       j.Salary,
		CreatedAt:    j.CreatedAt.UTC().Format(time.RFC3339),
	}
}
