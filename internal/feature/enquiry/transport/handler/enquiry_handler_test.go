package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j3-2000/routein-yoga-backend/internal/feature/enquiry/domain/entity"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// mockEnquiryUsecase is a func-field mock of the EnquiryUsecase interface.
type mockEnquiryUsecase struct {
	SubmitEnquiryFunc func(ctx context.Context, e *entity.Enquiry) error
	SubmitContactFunc func(ctx context.Context, m *entity.ContactMessage) error
}

func (m *mockEnquiryUsecase) SubmitEnquiry(ctx context.Context, e *entity.Enquiry) error {
	if m.SubmitEnquiryFunc != nil {
		return m.SubmitEnquiryFunc(ctx, e)
	}
	return nil
}

func (m *mockEnquiryUsecase) SubmitContact(ctx context.Context, c *entity.ContactMessage) error {
	if m.SubmitContactFunc != nil {
		return m.SubmitContactFunc(ctx, c)
	}
	return nil
}

func postJSON(t *testing.T, r *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEnquiryHandler_SubmitEnquiry(t *testing.T) {
	fullBody := gin.H{
		"fullName":       "Asha Rao",
		"email":          "asha@example.com",
		"phone":          "9876543210",
		"yogaExperience": "beginner",
		"motivation":     "Morning practice",
	}

	t.Run("success returns 201", func(t *testing.T) {
		var got *entity.Enquiry
		uc := &mockEnquiryUsecase{
			SubmitEnquiryFunc: func(ctx context.Context, e *entity.Enquiry) error {
				got = e
				return nil
			},
		}
		r := gin.New()
		r.POST("/community/join", NewEnquiryHandler(uc).SubmitEnquiry)

		w := postJSON(t, r, "/community/join", fullBody)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Enquiry submitted successfully")
		require.NotNil(t, got)
		assert.Equal(t, "asha@example.com", got.Email)
	})

	t.Run("each missing field returns 400", func(t *testing.T) {
		r := gin.New()
		r.POST("/community/join", NewEnquiryHandler(&mockEnquiryUsecase{}).SubmitEnquiry)

		for field := range fullBody {
			body := gin.H{}
			for k, v := range fullBody {
				if k != field {
					body[k] = v
				}
			}
			w := postJSON(t, r, "/community/join", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, "missing %s", field)
			assert.Contains(t, w.Body.String(), "All fields are required")
		}
	})
}

func TestEnquiryHandler_SubmitContact(t *testing.T) {
	t.Run("success without optional subject", func(t *testing.T) {
		r := gin.New()
		r.POST("/contact", NewEnquiryHandler(&mockEnquiryUsecase{}).SubmitContact)

		w := postJSON(t, r, "/contact", gin.H{
			"name":    "Ravi",
			"email":   "ravi@example.com",
			"message": "Weekend workshops?",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing message returns 400", func(t *testing.T) {
		r := gin.New()
		r.POST("/contact", NewEnquiryHandler(&mockEnquiryUsecase{}).SubmitContact)

		w := postJSON(t, r, "/contact", gin.H{
			"name":  "Ravi",
			"email": "ravi@example.com",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
