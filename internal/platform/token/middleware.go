package token

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/api"
	"jobboard_backend/internal/feature/auth/domain/entity"
)

// ContextUser is the gin context key under which the authenticated user is
// stored. The stored value is an entity.User with the password hash
// cleared.
const ContextUser = "authUser"

// UserFinder resolves a verified token subject to a stored user record.
// Following Go convention, the interface is defined by the consumer
// (middleware), not the provider (adapters).
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// AuthRequired returns a Gin middleware function that validates bearer
// tokens and restricts access to authenticated users only.
//
// The verifier and user repository are injected at construction; the
// middleware reads no environment and mutates no state. A request only
// reaches the protected handler after the token verified and its subject
// resolved to an existing user.
func AuthRequired(verifier Verifier, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "not authorized"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Verify signature and expiry. All failure kinds collapse into
		// the same 401 so the response leaks nothing about the cause.
		userID, err := verifier.VerifyToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "not authorized"})
			return
		}

		// 3. Resolve the subject to a stored user. A token for a deleted
		// user is as good as no token.
		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "not authorized"})
			return
		}

		// 4. Attach the user to the context, minus the password hash.
		attached := *user
		attached.Password = ""
		c.Set(ContextUser, &attached)

		// 5. Pass control to the next handler
		c.Next()
	}
}

// UserFromContext returns the authenticated user attached by AuthRequired.
// The second return value is false when the middleware did not run.
func UserFromContext(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
