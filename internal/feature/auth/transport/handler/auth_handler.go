// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/j3-2000/routein-yoga-backend/internal/feature/auth/domain/entity"
	"github.com/j3-2000/routein-yoga-backend/internal/feature/auth/transport/http/dto"
	"github.com/j3-2000/routein-yoga-backend/internal/feature/auth/transport/middleware"
	"github.com/j3-2000/routein-yoga-backend/internal/feature/auth/usecase"
	"github.com/j3-2000/routein-yoga-backend/internal/shared/apperror"
)

// AuthUsecase defines the auth operations consumed by this handler.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Profile(ctx context.Context, userID uint) (*entity.User, error)
}

// LoginLimiter throttles login attempts per client. A nil limiter disables throttling.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// AuthHandler handles HTTP requests for registration, login and profile retrieval.
type AuthHandler struct {
	auth    AuthUsecase
	limiter LoginLimiter
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase, limiter LoginLimiter) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

// Register handles the user registration endpoint.
// Validation failures return all field errors in one 400 response; a duplicate
// email returns 400; success returns 201 with a token and the created record.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register bind failed", "error", err, "remote_addr", c.ClientIP())
		apperror.Respond(c, apperror.New(apperror.ValidationFailed, "Invalid request body"))
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		slog.Warn("register failed", "error", err, "remote_addr", c.ClientIP())
		apperror.Respond(c, err)
		return
	}

	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthResp{Success: true, Token: token, User: user})
}

// Login handles the user login endpoint.
// Missing fields return 400; bad credentials return 401 with a message that
// does not reveal whether the email is registered.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		slog.Warn("login bind failed", "remote_addr", c.ClientIP())
		apperror.Respond(c, apperror.New(apperror.ValidationFailed, "Please provide email and password"))
		return
	}

	if h.limiter != nil {
		ok, err := h.limiter.Allow(c.Request.Context(), req.Email+":"+c.ClientIP())
		if err != nil {
			// Limiter backend trouble fails open; login availability wins.
			slog.Warn("login limiter unavailable", "error", err)
		} else if !ok {
			slog.Warn("login throttled", "remote_addr", c.ClientIP())
			apperror.Respond(c, apperror.New(apperror.TooManyRequests, "Too many login attempts. Try again later"))
			return
		}
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "remote_addr", c.ClientIP())
		apperror.Respond(c, err)
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthResp{Success: true, Token: token, User: user})
}

// Profile returns the authenticated user's record.
// The guard has already resolved the user, but the handler defends against the
// record vanishing in between with a 404.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		apperror.Respond(c, apperror.New(apperror.Unauthenticated, "no authenticated user in context"))
		return
	}

	user, err := h.auth.Profile(c.Request.Context(), userID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserResp{Success: true, User: user})
}
