// Package usecase implements the business logic for the workshop feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"

	authentity "github.com/j3-2000/routein-yoga-backend/internal/feature/auth/domain/entity"
	"github.com/j3-2000/routein-yoga-backend/internal/feature/workshop/domain/entity"
	"github.com/j3-2000/routein-yoga-backend/internal/shared/apperror"
)

// BookingRepository abstracts the persistence layer for workshop bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *entity.Booking) error
	FindByUserID(ctx context.Context, userID uint) ([]entity.Booking, error)
}

// Notifier delivers an admin notification after a booking is committed.
type Notifier interface {
	Send(subject, body string) error
}

// BookingInput is the creatable subset of a booking; UserID comes from the guard.
type BookingInput struct {
	UserID     uint   `json:"-"`
	Timeslot   string `json:"timeslot"`
	Experience string `json:"experience"`
	Message    string `json:"message"`
}

// Validate checks the booking fields and reports all violations at once.
func (b BookingInput) Validate() validation.Errors {
	err := validation.ValidateStruct(&b,
		validation.Field(&b.Timeslot,
			validation.Required.Error("Timeslot is required"),
			validation.In(entity.TimeslotMorning, entity.TimeslotAfternoon, entity.TimeslotEvening).Error("Select a valid timeslot"),
		),
		validation.Field(&b.Experience,
			validation.Required.Error("Experience level is required"),
			validation.In(authentity.ExperienceBeginner, authentity.ExperienceIntermediate, authentity.ExperienceAdvanced).Error("Select a valid experience level"),
		),
		validation.Field(&b.Message,
			validation.RuneLength(0, 1000).Error("Maximum 1000 characters"),
		),
	)
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	return validation.Errors{"request": err}
}

// bookingUsecase creates bookings for authenticated members.
type bookingUsecase struct {
	bookings BookingRepository
	notifier Notifier
}

// NewBookingUsecase creates a new bookingUsecase instance.
func NewBookingUsecase(bookings BookingRepository, notifier Notifier) *bookingUsecase {
	return &bookingUsecase{bookings: bookings, notifier: notifier}
}

// Book validates and persists a booking, then notifies the admin off the
// request path. The confirmation reference is generated server-side.
func (u *bookingUsecase) Book(ctx context.Context, in BookingInput) (*entity.Booking, error) {
	if errs := in.Validate(); errs != nil {
		fields := make(map[string]string, len(errs))
		for f, e := range errs {
			fields[f] = e.Error()
		}
		return nil, apperror.Validation(fields)
	}

	booking := &entity.Booking{
		Reference:  uuid.NewString(),
		UserID:     in.UserID,
		Timeslot:   in.Timeslot,
		Experience: in.Experience,
		Message:    in.Message,
	}
	if err := u.bookings.Create(ctx, booking); err != nil {
		return nil, apperror.Wrap(apperror.StoreUnavailable, "booking create failed", err)
	}

	go func() {
		subject := "New workshop booking " + booking.Reference
		body := fmt.Sprintf("User: %d\nTimeslot: %s\nExperience: %s\n\n%s\n",
			booking.UserID, booking.Timeslot, booking.Experience, booking.Message)
		if err := u.notifier.Send(subject, body); err != nil {
			slog.Error("booking notification failed", "reference", booking.Reference, "error", err)
		}
	}()

	return booking, nil
}

// List returns the member's bookings, newest first.
func (u *bookingUsecase) List(ctx context.Context, userID uint) ([]entity.Booking, error) {
	bookings, err := u.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Wrap(apperror.StoreUnavailable, "booking lookup failed", err)
	}
	return bookings, nil
}
