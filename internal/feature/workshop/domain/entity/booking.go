// Package entity defines the domain entities for the workshop feature.
package entity

import "time"

// Timeslot values accepted for a workshop booking.
const (
	TimeslotMorning   = "morning"
	TimeslotAfternoon = "afternoon"
	TimeslotEvening   = "evening"
)

// Booking is a workshop booking made by an authenticated member.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Reference is the confirmation code shown to the member.
	Reference string `gorm:"uniqueIndex;size:36;not null" json:"reference"`

	// UserID is the booking member, resolved by the request guard.
	UserID uint `gorm:"index;not null" json:"userId"`

	Timeslot   string `gorm:"size:10;not null" json:"timeslot"`
	Experience string `gorm:"size:20;not null" json:"experience"`
	Message    string `gorm:"size:1000" json:"message"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
