// Package handler provides the HTTP handlers for the enquiry feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/j3-2000/routein-yoga-backend/internal/feature/enquiry/domain/entity"
	"github.com/j3-2000/routein-yoga-backend/internal/shared/apperror"
)

// EnquiryUsecase defines the enquiry operations consumed by this handler.
type EnquiryUsecase interface {
	SubmitEnquiry(ctx context.Context, e *entity.Enquiry) error
	SubmitContact(ctx context.Context, m *entity.ContactMessage) error
}

// EnquiryHandler handles HTTP requests for the public enquiry and contact forms.
type EnquiryHandler struct {
	enquiries EnquiryUsecase
}

// NewEnquiryHandler creates a new EnquiryHandler instance.
func NewEnquiryHandler(enquiries EnquiryUsecase) *EnquiryHandler {
	return &EnquiryHandler{enquiries: enquiries}
}

type enquiryReq struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	YogaExperience string `json:"yogaExperience"`
	Motivation     string `json:"motivation"`
}

// SubmitEnquiry handles the community-join form.
func (h *EnquiryHandler) SubmitEnquiry(c *gin.Context) {
	var req enquiryReq
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.FullName == "" || req.Email == "" || req.Phone == "" ||
		req.YogaExperience == "" || req.Motivation == "" {
		apperror.Respond(c, apperror.New(apperror.ValidationFailed, "All fields are required"))
		return
	}

	err := h.enquiries.SubmitEnquiry(c.Request.Context(), &entity.Enquiry{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		YogaExperience: req.YogaExperience,
		Motivation:     req.Motivation,
	})
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	slog.Info("enquiry submitted", "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Enquiry submitted successfully",
	})
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact handles the contact form. Subject is optional.
func (h *EnquiryHandler) SubmitContact(c *gin.Context) {
	var req contactReq
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Name == "" || req.Email == "" || req.Message == "" {
		apperror.Respond(c, apperror.New(apperror.ValidationFailed, "All fields are required"))
		return
	}

	err := h.enquiries.SubmitContact(c.Request.Context(), &entity.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	slog.Info("contact message submitted", "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Message sent successfully",
	})
}
