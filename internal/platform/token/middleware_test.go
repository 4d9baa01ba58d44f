package token

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/feature/auth/domain/entity"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockUserFinder はテスト用のUserFinderモック実装です。
type mockUserFinder struct {
	FindByIDFunc func(ctx context.Context, id uint) (*entity.User, error)
}

// FindByID はモックのFindByID関数を呼び出します。
func (m *mockUserFinder) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &entity.User{ID: id, Email: "test@example.com", Password: "hashed"}, nil
}

// TestAuthRequired_MissingBearerToken はBearerトークンがない場合やプレフィックスが不正な場合に401が返されることを検証します。
func TestAuthRequired_MissingBearerToken(t *testing.T) {
	v := NewVerifier("test-secret")

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				c.Request.Header.Set("Authorization", tt.authHeader)
			}

			handler := AuthRequired(v, &mockUserFinder{})
			handler(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
			if !c.IsAborted() {
				t.Error("expected request to be aborted")
			}
		})
	}
}

// TestAuthRequired_InvalidToken は不正なトークン（改ざん・期限切れ等）で401が返されることを検証します。
func TestAuthRequired_InvalidToken(t *testing.T) {
	const testSecret = "test-secret-key-for-invalid"
	v := NewVerifier(testSecret)

	tests := []struct {
		name  string
		token string
	}{
		{"malformed token", "not.a.valid.token"},
		{"random string", "randomstring"},
		{"wrong secret", createTokenWithSecret("wrong-secret", "1", time.Hour)},
		{"expired token", createTokenWithSecret(testSecret, "1", -time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.Header.Set("Authorization", "Bearer "+tt.token)

			handler := AuthRequired(v, &mockUserFinder{})
			handler(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
		})
	}
}

// TestAuthRequired_DeletedUser はトークンは有効でも該当ユーザーが存在しない場合に401が返されることを検証します。
func TestAuthRequired_DeletedUser(t *testing.T) {
	const testSecret = "test-secret-key-for-deleted"
	g := NewGenerator(testSecret, time.Hour)
	v := NewVerifier(testSecret)

	tokenStr, err := g.GenerateToken(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	users := &mockUserFinder{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
			return nil, context.Canceled // any lookup failure rejects the request
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer "+tokenStr)

	handler := AuthRequired(v, users)
	handler(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

// TestAuthRequired_ValidToken は有効なトークンでリクエストが通過し、
// パスワードハッシュを除いたユーザーがコンテキストに設定されることを検証します。
func TestAuthRequired_ValidToken(t *testing.T) {
	const testSecret = "test-secret-key-for-valid"
	g := NewGenerator(testSecret, time.Hour)
	v := NewVerifier(testSecret)

	tests := []struct {
		name   string
		userID uint
	}{
		{"user id 1", 1},
		{"user id 42", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenStr, err := g.GenerateToken(tt.userID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			users := &mockUserFinder{
				FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
					return &entity.User{ID: id, Email: "user@example.com", Password: "hashed-password"}, nil
				},
			}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.Header.Set("Authorization", "Bearer "+tokenStr)

			handler := AuthRequired(v, users)
			handler(c)

			if c.IsAborted() {
				t.Errorf("expected request not to be aborted, response: %s", w.Body.String())
				return
			}

			user, ok := UserFromContext(c)
			if !ok {
				t.Fatal("expected user to be set in context")
			}
			if user.ID != tt.userID {
				t.Errorf("expected user id %d, got %d", tt.userID, user.ID)
			}
			if user.Email != "user@example.com" {
				t.Errorf("unexpected email %q", user.Email)
			}
			if user.Password != "" {
				t.Error("password hash must not be attached to the context")
			}
		})
	}
}

// TestUserFromContext_Missing はミドルウェアが実行されていない場合にfalseが返されることを検証します。
func TestUserFromContext_Missing(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	if _, ok := UserFromContext(c); ok {
		t.Error("expected no user in a fresh context")
	}
}
