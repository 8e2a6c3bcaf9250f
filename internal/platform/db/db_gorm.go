// Package db opens the Postgres connection and runs schema migrations.
package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "github.com/j3-2000/routein-yoga-backend/internal/feature/auth/domain/entity"
	enquiryentity "github.com/j3-2000/routein-yoga-backend/internal/feature/enquiry/domain/entity"
	workshopentity "github.com/j3-2000/routein-yoga-backend/internal/feature/workshop/domain/entity"
)

const (
	connectDeadline = 60 * time.Second
	connectRetry    = 3 * time.Second
)

// Open connects to Postgres, retrying until the deadline so the service
// survives the database coming up after it in container environments.
func Open(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(connectDeadline)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", connectDeadline, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(connectRetry)
	}

	return db, nil
}

// Migrate creates or updates the schema for every persisted entity, including
// the unique index on users.email that arbitrates concurrent registrations.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&workshopentity.Booking{},
		&enquiryentity.Enquiry{},
		&enquiryentity.ContactMessage{},
	)
}
