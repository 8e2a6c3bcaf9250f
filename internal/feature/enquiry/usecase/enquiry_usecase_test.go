package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j3-2000/routein-yoga-backend/internal/feature/enquiry/domain/entity"
	"github.com/j3-2000/routein-yoga-backend/internal/shared/apperror"
)

// mockEnquiryRepository is a func-field mock of the EnquiryRepository interface.
type mockEnquiryRepository struct {
	CreateEnquiryFunc func(ctx context.Context, e *entity.Enquiry) error
	CreateContactFunc func(ctx context.Context, m *entity.ContactMessage) error
}

func (m *mockEnquiryRepository) CreateEnquiry(ctx context.Context, e *entity.Enquiry) error {
	if m.CreateEnquiryFunc != nil {
		return m.CreateEnquiryFunc(ctx, e)
	}
	return nil
}

func (m *mockEnquiryRepository) CreateContact(ctx context.Context, c *entity.ContactMessage) error {
	if m.CreateContactFunc != nil {
		return m.CreateContactFunc(ctx, c)
	}
	return nil
}

// recordingNotifier captures sent messages on a channel so tests can wait for
// the fire-and-forget goroutine.
type recordingNotifier struct {
	sent chan [2]string
	err  error
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{sent: make(chan [2]string, 1)}
}

func (n *recordingNotifier) Send(subject, body string) error {
	n.sent <- [2]string{subject, body}
	return n.err
}

func (n *recordingNotifier) wait(t *testing.T) [2]string {
	t.Helper()
	select {
	case msg := <-n.sent:
		return msg
	case <-time.After(time.Second):
		t.Fatal("notification was never sent")
		return [2]string{}
	}
}

func testEnquiry() *entity.Enquiry {
	return &entity.Enquiry{
		FullName:       "Asha Rao",
		Email:          "asha@example.com",
		Phone:          "9876543210",
		YogaExperience: "beginner",
		Motivation:     "Looking for a morning practice group",
	}
}

func TestEnquiryUsecase_SubmitEnquiry(t *testing.T) {
	t.Run("persists then notifies", func(t *testing.T) {
		notifier := newRecordingNotifier()
		uc := NewEnquiryUsecase(&mockEnquiryRepository{}, notifier)

		err := uc.SubmitEnquiry(context.Background(), testEnquiry())
		require.NoError(t, err)

		msg := notifier.wait(t)
		assert.Contains(t, msg[0], "Asha Rao")
		assert.Contains(t, msg[1], "asha@example.com")
	})

	t.Run("store failure is returned and nothing is sent", func(t *testing.T) {
		notifier := newRecordingNotifier()
		repo := &mockEnquiryRepository{
			CreateEnquiryFunc: func(ctx context.Context, e *entity.Enquiry) error {
				return errors.New("connection refused")
			},
		}
		uc := NewEnquiryUsecase(repo, notifier)

		err := uc.SubmitEnquiry(context.Background(), testEnquiry())

		var appErr *apperror.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.StoreUnavailable, appErr.Kind)
		assert.Empty(t, notifier.sent)
	})

	t.Run("notifier failure does not fail the request", func(t *testing.T) {
		notifier := newRecordingNotifier()
		notifier.err = errors.New("smtp down")
		uc := NewEnquiryUsecase(&mockEnquiryRepository{}, notifier)

		err := uc.SubmitEnquiry(context.Background(), testEnquiry())
		require.NoError(t, err)

		notifier.wait(t) // delivery was attempted
	})
}

func TestEnquiryUsecase_SubmitContact(t *testing.T) {
	t.Run("uses the submitted subject when present", func(t *testing.T) {
		notifier := newRecordingNotifier()
		uc := NewEnquiryUsecase(&mockEnquiryRepository{}, notifier)

		err := uc.SubmitContact(context.Background(), &entity.ContactMessage{
			Name:    "Ravi",
			Email:   "ravi@example.com",
			Subject: "Workshop question",
			Message: "Do you run weekend workshops?",
		})
		require.NoError(t, err)

		msg := notifier.wait(t)
		assert.Equal(t, "Workshop question", msg[0])
	})

	t.Run("falls back to a generated subject", func(t *testing.T) {
		notifier := newRecordingNotifier()
		uc := NewEnquiryUsecase(&mockEnquiryRepository{}, notifier)

		err := uc.SubmitContact(context.Background(), &entity.ContactMessage{
			Name:    "Ravi",
			Email:   "ravi@example.com",
			Message: "Do you run weekend workshops?",
		})
		require.NoError(t, err)

		msg := notifier.wait(t)
		assert.Contains(t, msg[0], "Ravi")
	})
}
