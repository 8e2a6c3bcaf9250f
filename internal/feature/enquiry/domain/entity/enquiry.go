// Package entity defines the domain entities for the enquiry feature.
package entity

import "time"

// Enquiry is a community-join enquiry submitted from the public site.
type Enquiry struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	FullName       string `gorm:"size:150;not null" json:"fullName"`
	Email          string `gorm:"size:300;not null" json:"email"`
	Phone          string `gorm:"size:20;not null" json:"phone"`
	YogaExperience string `gorm:"size:100;not null" json:"yogaExperience"`
	Motivation     string `gorm:"size:2000;not null" json:"motivation"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:150;not null" json:"name"`
	Email   string `gorm:"size:300;not null" json:"email"`
	Subject string `gorm:"size:300" json:"subject"`
	Message string `gorm:"size:2000;not null" json:"message"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
