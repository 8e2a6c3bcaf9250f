package main

import (
	"log"
	"log/slog"
	"time"

	"github.com/j3-2000/routein-yoga-backend/internal/app/config"
	"github.com/j3-2000/routein-yoga-backend/internal/app/router"
	authadapters "github.com/j3-2000/routein-yoga-backend/internal/feature/auth/adapters"
	authhandler "github.com/j3-2000/routein-yoga-backend/internal/feature/auth/transport/handler"
	authmw "github.com/j3-2000/routein-yoga-backend/internal/feature/auth/transport/middleware"
	authusecase "github.com/j3-2000/routein-yoga-backend/internal/feature/auth/usecase"
	enquiryadapters "github.com/j3-2000/routein-yoga-backend/internal/feature/enquiry/adapters"
	enquiryhandler "github.com/j3-2000/routein-yoga-backend/internal/feature/enquiry/transport/handler"
	enquiryusecase "github.com/j3-2000/routein-yoga-backend/internal/feature/enquiry/usecase"
	workshopadapters "github.com/j3-2000/routein-yoga-backend/internal/feature/workshop/adapters"
	workshophandler "github.com/j3-2000/routein-yoga-backend/internal/feature/workshop/transport/handler"
	workshopusecase "github.com/j3-2000/routein-yoga-backend/internal/feature/workshop/usecase"
	"github.com/j3-2000/routein-yoga-backend/internal/platform/db"
	"github.com/j3-2000/routein-yoga-backend/internal/platform/mail"
	platformredis "github.com/j3-2000/routein-yoga-backend/internal/platform/redis"
	"github.com/j3-2000/routein-yoga-backend/internal/platform/token"
	"github.com/j3-2000/routein-yoga-backend/internal/shared/ratelimiter"
)

const (
	loginAttemptLimit  = 10
	loginAttemptWindow = time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if !cfg.Production() && cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
		cfg.JWTSecret = "development-only-secret"
	}

	gormDB, err := db.Open(cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Login throttling degrades gracefully when Redis is absent.
	var limiter authhandler.LoginLimiter
	if cfg.RedisAddr != "" {
		if rdb, err := platformredis.NewClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
			slog.Warn("Redis unavailable. Running without login throttling.")
		} else {
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
			limiter = ratelimiter.NewFixedWindow(rdb, "login_attempts", loginAttemptLimit, loginAttemptWindow)
		}
	}

	// Admin notifications fall back to logging when SMTP is not configured.
	var notifier enquiryusecase.Notifier = mail.LogSender{}
	if cfg.SMTPConfigured() {
		notifier = mail.NewSMTPSender(
			cfg.SMTPHost, cfg.SMTPPort,
			cfg.SMTPUser, cfg.SMTPPassword,
			cfg.NotifyFrom, cfg.NotifyTo,
		)
	}

	tokens := token.NewService(cfg.JWTSecret, token.WithTTL(cfg.TokenTTL))

	// Repositories
	userRepo := authadapters.NewUserGorm(gormDB)
	enquiryRepo := enquiryadapters.NewEnquiryGorm(gormDB)
	bookingRepo := workshopadapters.NewBookingGorm(gormDB)

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	enquiryUC := enquiryusecase.NewEnquiryUsecase(enquiryRepo, notifier)
	bookingUC := workshopusecase.NewBookingUsecase(bookingRepo, notifier)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC, limiter)
	enquiryH := enquiryhandler.NewEnquiryHandler(enquiryUC)
	workshopH := workshophandler.NewBookingHandler(bookingUC)

	guard := authmw.RequireAuth(tokens, userRepo)

	r := router.New(authH, enquiryH, workshopH, guard)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
