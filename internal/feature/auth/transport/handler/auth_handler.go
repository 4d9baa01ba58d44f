// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/api"
	"jobboard_backend/internal/feature/auth/usecase"
	"jobboard_backend/internal/platform/token"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は新規ユーザーを登録し、発行したトークンを返します。
	Signup(ctx context.Context, in usecase.SignupInput) (string, error)
	// Login はユーザーを認証し、成功時に新しいトークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをSignupRequestにバインド
// - バリデーションエラー・メール重複時は400を返却
// - 成功時は201でメールアドレスとトークンを返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req api.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	tok, err := h.auth.Signup(c.Request.Context(), usecase.SignupInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		PhoneNumber:      req.PhoneNumber,
		Gender:           req.Gender,
		DateOfBirth:      req.DateOfBirth,
		MembershipStatus: req.MembershipStatus,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("signup rejected: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.ErrEmailAlreadyExists.Error()})
			return
		}
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "signup failed"})
		return
	}

	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.AuthResponse{Email: req.Email, Token: tok})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginRequestにバインド
// - バリデーションエラー・認証失敗時は400を返却
// - 認証成功時はトークン付きで200を返却
// 認証失敗の応答はメール未登録・パスワード不一致のどちらでも同一です。
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	tok, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.ErrInvalidCredentials.Error()})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "login failed"})
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.AuthResponse{Email: req.Email, Token: tok})
}

// Me は認証済みユーザー自身のプロフィールを返します。
// AuthRequiredミドルウェアがコンテキストに格納したユーザーをそのまま返すだけで、
// 追加のストレージアクセスは行いません。
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := token.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "not authorized"})
		return
	}

	c.JSON(http.StatusOK, api.UserResponse{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		PhoneNumber:      user.PhoneNumber,
		Gender:           user.Gender,
		DateOfBirth:      user.DateOfBirth,
		MembershipStatus: user.MembershipStatus,
	})
}
