// Package middleware provides the request guard for protected routes.
package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/j3-2000/routein-yoga-backend/internal/feature/auth/domain"
	"github.com/j3-2000/routein-yoga-backend/internal/feature/auth/domain/entity"
	"github.com/j3-2000/routein-yoga-backend/internal/shared/apperror"
)

// ContextUserID is the gin context key holding the authenticated user's ID.
const ContextUserID = "userID"

// TokenVerifier checks a bearer token's signature and expiry and returns its subject.
type TokenVerifier interface {
	Verify(token string) (uint, error)
}

// UserResolver re-resolves a token subject against the store. A token for a
// deleted user must be rejected even while its signature is still valid.
type UserResolver interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// RequireAuth returns a middleware that admits only requests carrying a valid
// bearer token for a user that still exists. On success the user's ID is
// attached to the request context; nothing else from the record is.
func RequireAuth(tokens TokenVerifier, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			reject(c, apperror.New(apperror.Unauthenticated, "missing bearer token"))
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		userID, err := tokens.Verify(tokenStr)
		if err != nil {
			reject(c, apperror.Wrap(apperror.InvalidToken, "token verification failed", err))
			return
		}

		// The subject is re-checked against the store on every request, so a
		// deleted account is locked out immediately instead of after expiry.
		if _, err := users.FindByID(c.Request.Context(), userID); err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				reject(c, apperror.New(apperror.StaleUser, "token subject no longer exists"))
				return
			}
			reject(c, apperror.Wrap(apperror.StoreUnavailable, "user resolution failed", err))
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated user's ID set by RequireAuth.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func reject(c *gin.Context, err error) {
	apperror.Respond(c, err)
	c.Abort()
}
