// Package usecase implements the business logic for the enquiry feature.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/j3-2000/routein-yoga-backend/internal/feature/enquiry/domain/entity"
	"github.com/j3-2000/routein-yoga-backend/internal/shared/apperror"
)

// EnquiryRepository abstracts the persistence layer for enquiries and contact messages.
type EnquiryRepository interface {
	CreateEnquiry(ctx context.Context, e *entity.Enquiry) error
	CreateContact(ctx context.Context, m *entity.ContactMessage) error
}

// Notifier delivers an admin notification. Delivery happens after the record
// is committed and its failure never propagates to the request.
type Notifier interface {
	Send(subject, body string) error
}

// enquiryUsecase persists form submissions and notifies the studio admin.
type enquiryUsecase struct {
	enquiries EnquiryRepository
	notifier  Notifier
}

// NewEnquiryUsecase creates a new enquiryUsecase instance.
func NewEnquiryUsecase(enquiries EnquiryRepository, notifier Notifier) *enquiryUsecase {
	return &enquiryUsecase{enquiries: enquiries, notifier: notifier}
}

// SubmitEnquiry stores a community-join enquiry and notifies the admin.
func (u *enquiryUsecase) SubmitEnquiry(ctx context.Context, e *entity.Enquiry) error {
	if err := u.enquiries.CreateEnquiry(ctx, e); err != nil {
		return apperror.Wrap(apperror.StoreUnavailable, "enquiry create failed", err)
	}

	u.notifyAsync(
		"New community enquiry from "+e.FullName,
		fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nExperience: %s\n\nMotivation:\n%s\n",
			e.FullName, e.Email, e.Phone, e.YogaExperience, e.Motivation),
	)
	return nil
}

// SubmitContact stores a contact message and notifies the admin.
func (u *enquiryUsecase) SubmitContact(ctx context.Context, m *entity.ContactMessage) error {
	if err := u.enquiries.CreateContact(ctx, m); err != nil {
		return apperror.Wrap(apperror.StoreUnavailable, "contact create failed", err)
	}

	subject := m.Subject
	if subject == "" {
		subject = "New contact message from " + m.Name
	}
	u.notifyAsync(
		subject,
		fmt.Sprintf("Name: %s\nEmail: %s\n\n%s\n", m.Name, m.Email, m.Message),
	)
	return nil
}

// notifyAsync delivers the notification off the request path.
func (u *enquiryUsecase) notifyAsync(subject, body string) {
	go func() {
		if err := u.notifier.Send(subject, body); err != nil {
			slog.Error("admin notification failed", "subject", subject, "error", err)
		}
	}()
}
