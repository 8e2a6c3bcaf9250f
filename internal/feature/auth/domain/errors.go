// Package domain defines domain-level errors for the auth feature.
package domain

import "github.com/j3-2000/routein-yoga-backend/internal/shared/apperror"

// Domain errors for authentication operations. They are apperror values so the
// transport layer can map them to a status and a stable message with no extra
// translation step.
var (
	// ErrEmailAlreadyExists indicates that a user with the given email already exists.
	// Returned during registration, whether from the pre-check or from the store's
	// unique-index rejection.
	ErrEmailAlreadyExists = apperror.New(apperror.Conflict, "User with this email already exists")

	// ErrUserNotFound indicates that no user was found with the given criteria.
	ErrUserNotFound = apperror.New(apperror.NotFound, "User not found")

	// ErrInvalidCredentials indicates a failed login. The same value is returned
	// for an unknown email and a wrong password.
	ErrInvalidCredentials = apperror.New(apperror.InvalidCredentials, "Invalid email or password")
)
