// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/j3-2000/routein-yoga-backend/internal/feature/auth/domain"
	"github.com/j3-2000/routein-yoga-backend/internal/feature/auth/domain/entity"
	"github.com/j3-2000/routein-yoga-backend/internal/shared/apperror"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns domain.ErrEmailAlreadyExists when the
	// store's unique constraint on email rejects the insert.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by its lower-cased email address.
	// It returns domain.ErrUserNotFound if no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by ID.
	// It returns domain.ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer creates signed bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uint) (string, error)
}

// authUsecase implements registration, login and profile retrieval.
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *authUsecase {
	return &authUsecase{users: users, tokens: tokens}
}

// Register validates the payload, persists the user with a hashed password and
// issues a token. Validation reports every failing field before the store is
// touched. The pre-check on email is a fast path for a friendly error; the
// store's unique constraint stays authoritative for the concurrent case.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	in.Normalize()
	if errs := in.Validate(); errs != nil {
		return nil, "", apperror.Validation(messages(errs))
	}

	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, "", domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", apperror.Wrap(apperror.StoreUnavailable, "user lookup failed", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		FullName:        in.FullName,
		Email:           in.Email,
		Password:        string(hashed),
		PhoneNumber:     in.PhoneNumber,
		Age:             in.Age,
		Gender:          in.Gender,
		Experience:      in.Experience,
		HealthCondition: in.HealthCondition,
		BatchTime:       in.BatchTime,
		AcceptTerms:     in.AcceptTerms,
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			// Lost the race against a concurrent registration with the same email.
			return nil, "", domain.ErrEmailAlreadyExists
		}
		return nil, "", apperror.Wrap(apperror.StoreUnavailable, "user create failed", err)
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// dummyHash is compared against when the email is unknown, so login takes the
// same time whether the email exists or not.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login authenticates a user and returns it with a fresh token. An unknown
// email and a wrong password produce the identical error value.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	email = normalizeEmail(email)

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		// A store outage must never masquerade as bad credentials.
		return nil, "", apperror.Wrap(apperror.StoreUnavailable, "user lookup failed", err)
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}

	// Always run the comparison to keep timing uniform.
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// Profile retrieves the user record for an already-authenticated identity.
func (u *authUsecase) Profile(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperror.Wrap(apperror.StoreUnavailable, "user lookup failed", err)
	}
	return user, nil
}
