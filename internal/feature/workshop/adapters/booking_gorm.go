// Package adapters provides the repository implementations for the workshop feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"github.com/j3-2000/routein-yoga-backend/internal/feature/workshop/domain/entity"
	"github.com/j3-2000/routein-yoga-backend/internal/feature/workshop/usecase"
)

// bookingGorm is the GORM implementation of the usecase.BookingRepository interface.
type bookingGorm struct {
	db *gorm.DB
}

// Compile-time check that bookingGorm implements BookingRepository.
var _ usecase.BookingRepository = (*bookingGorm)(nil)

// NewBookingGorm creates a new bookingGorm instance backed by the given connection.
func NewBookingGorm(db *gorm.DB) *bookingGorm {
	return &bookingGorm{db: db}
}

// Create persists a booking.
func (r *bookingGorm) Create(ctx context.Context, b *entity.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// FindByUserID returns a member's bookings, newest first.
func (r *bookingGorm) FindByUserID(ctx context.Context, userID uint) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
