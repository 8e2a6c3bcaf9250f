package usecase

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/j3-2000/routein-yoga-backend/internal/feature/auth/domain/entity"
)

// RegisterInput is the creatable subset of the user record. Normalize must be
// called before Validate so lookups and stored values share one casing.
type RegisterInput struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PhoneNumber     string `json:"phoneNumber"`
	Age             int    `json:"age"`
	Gender          string `json:"gender"`
	Experience      string `json:"experience"`
	HealthCondition string `json:"healthCondition"`
	BatchTime       string `json:"batchTime"`
	AcceptTerms     bool   `json:"acceptTerms"`
}

// Normalize trims whitespace and lower-cases the email.
func (r *RegisterInput) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = normalizeEmail(r.Email)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
}

// normalizeEmail applies the casing used for stored emails to a lookup key.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var (
	phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

	passwordLower = regexp.MustCompile(`[a-z]`)
	passwordUpper = regexp.MustCompile(`[A-Z]`)
	passwordDigit = regexp.MustCompile(`\d`)
)

// passwordStrength enforces the password complexity rule as a single message,
// since Go's regexp has no lookaheads to express it in one pattern.
func passwordStrength(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // Required reports the empty case
	}
	if len(s) < 8 || !passwordLower.MatchString(s) || !passwordUpper.MatchString(s) || !passwordDigit.MatchString(s) {
		return errors.New("Password must be at least 8 characters with 1 uppercase, 1 lowercase, and 1 number")
	}
	return nil
}

// Validate checks every field rule independently and reports all violations at
// once as a field-to-message map. It never touches the store.
func (r RegisterInput) Validate() validation.Errors {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.FullName,
			validation.Required.Error("Name is required"),
			validation.RuneLength(0, 150).Error("Maximum 150 characters"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			is.Email.Error("Invalid email"),
			validation.RuneLength(0, 300).Error("Maximum 300 characters"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("Password is required"),
			validation.By(passwordStrength),
			validation.RuneLength(0, 100).Error("Maximum 100 characters"),
		),
		validation.Field(&r.PhoneNumber,
			validation.Required.Error("Phone number is required"),
			validation.Match(phonePattern).Error("Enter a valid Indian phone number"),
		),
		validation.Field(&r.Age,
			validation.Required.Error("Age is required"),
			validation.Min(12).Error("Minimum age is 12"),
			validation.Max(100).Error("Maximum age is 100"),
		),
		validation.Field(&r.Gender,
			validation.Required.Error("Gender is required"),
			validation.In(entity.GenderMale, entity.GenderFemale, entity.GenderOther).Error("Select a valid gender"),
		),
		validation.Field(&r.Experience,
			validation.Required.Error("Experience level is required"),
			validation.In(entity.ExperienceBeginner, entity.ExperienceIntermediate, entity.ExperienceAdvanced).Error("Select a valid experience level"),
		),
		validation.Field(&r.HealthCondition,
			validation.RuneLength(0, 500).Error("Maximum 500 characters"),
		),
		validation.Field(&r.BatchTime,
			validation.Required.Error("Preferred batch time is required"),
			validation.In(entity.BatchMorning, entity.BatchAfternoon, entity.BatchEvening).Error("Select a valid batch time"),
		),
		validation.Field(&r.AcceptTerms,
			validation.Required.Error("You must accept the terms and conditions"),
		),
	)
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	// Internal validator failure; attribute it so the caller still gets the envelope.
	return validation.Errors{"request": err}
}

// messages flattens a validation error map into plain strings for the response envelope.
func messages(errs validation.Errors) map[string]string {
	out := make(map[string]string, len(errs))
	for field, err := range errs {
		out[field] = err.Error()
	}
	return out
}
