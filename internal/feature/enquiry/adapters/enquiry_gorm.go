// Package adapters provides the repository implementations for the enquiry feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"github.com/j3-2000/routein-yoga-backend/internal/feature/enquiry/domain/entity"
	"github.com/j3-2000/routein-yoga-backend/internal/feature/enquiry/usecase"
)

// enquiryGorm is the GORM implementation of the usecase.EnquiryRepository interface.
type enquiryGorm struct {
	db *gorm.DB
}

// Compile-time check that enquiryGorm implements EnquiryRepository.
var _ usecase.EnquiryRepository = (*enquiryGorm)(nil)

// NewEnquiryGorm creates a new enquiryGorm instance backed by the given connection.
func NewEnquiryGorm(db *gorm.DB) *enquiryGorm {
	return &enquiryGorm{db: db}
}

// CreateEnquiry persists a community-join enquiry.
func (r *enquiryGorm) CreateEnquiry(ctx context.Context, e *entity.Enquiry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// CreateContact persists a contact message.
func (r *enquiryGorm) CreateContact(ctx context.Context, m *entity.ContactMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}
