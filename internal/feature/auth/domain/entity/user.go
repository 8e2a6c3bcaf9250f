// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Gender values accepted at registration.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Experience levels accepted at registration.
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
)

// Batch times accepted at registration.
const (
	BatchMorning   = "Morning"
	BatchAfternoon = "Afternoon"
	BatchEvening   = "Evening"
)

// User represents a registered studio member.
// Password holds only the bcrypt hash and is excluded from every JSON response.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"size:150;not null" json:"fullName"`

	// Email is stored lower-cased and must be unique across all users.
	Email string `gorm:"uniqueIndex;size:300;not null" json:"email"`

	Password string `gorm:"size:255;not null" json:"-"`

	PhoneNumber string `gorm:"size:10;not null" json:"phoneNumber"`

	Age int `gorm:"not null" json:"age"`

	Gender string `gorm:"size:10;not null" json:"gender"`

	Experience string `gorm:"size:20;not null" json:"experience"`

	HealthCondition string `gorm:"size:500" json:"healthCondition"`

	BatchTime string `gorm:"size:10;not null" json:"batchTime"`

	AcceptTerms bool `gorm:"not null" json:"acceptTerms"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
