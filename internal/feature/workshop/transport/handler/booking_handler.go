// Package handler provides the HTTP handlers for the workshop feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authmw "github.com/j3-2000/routein-yoga-backend/internal/feature/auth/transport/middleware"
	"github.com/j3-2000/routein-yoga-backend/internal/feature/workshop/domain/entity"
	"github.com/j3-2000/routein-yoga-backend/internal/feature/workshop/usecase"
	"github.com/j3-2000/routein-yoga-backend/internal/shared/apperror"
)

// BookingUsecase defines the workshop operations consumed by this handler.
type BookingUsecase interface {
	Book(ctx context.Context, in usecase.BookingInput) (*entity.Booking, error)
	List(ctx context.Context, userID uint) ([]entity.Booking, error)
}

// BookingHandler handles HTTP requests for workshop bookings.
type BookingHandler struct {
	bookings BookingUsecase
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(bookings BookingUsecase) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Book creates a booking for the authenticated member.
func (h *BookingHandler) Book(c *gin.Context) {
	userID, ok := authmw.UserID(c)
	if !ok {
		apperror.Respond(c, apperror.New(apperror.Unauthenticated, "no authenticated user in context"))
		return
	}

	var in usecase.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apperror.Respond(c, apperror.New(apperror.ValidationFailed, "Invalid request body"))
		return
	}
	in.UserID = userID

	booking, err := h.bookings.Book(c.Request.Context(), in)
	if err != nil {
		slog.Warn("booking failed", "error", err, "user_id", userID)
		apperror.Respond(c, err)
		return
	}

	slog.Info("booking created", "reference", booking.Reference, "user_id", userID)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking created",
		"data":    booking,
	})
}

// List returns the authenticated member's bookings.
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := authmw.UserID(c)
	if !ok {
		apperror.Respond(c, apperror.New(apperror.Unauthenticated, "no authenticated user in context"))
		return
	}

	bookings, err := h.bookings.List(c.Request.Context(), userID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bookings,
	})
}
