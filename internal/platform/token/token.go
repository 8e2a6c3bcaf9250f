// Package token issues and verifies the signed bearer tokens used for authentication.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the validity window for issued tokens.
const DefaultTTL = 30 * 24 * time.Hour

var (
	// ErrTokenExpired indicates a well-formed token whose expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates a malformed token or a failed signature check.
	ErrTokenInvalid = errors.New("token invalid")
)

// Service signs and verifies HS256 tokens carrying a user identity claim.
type Service struct {
	secret []byte
	ttl    time.Duration
	// now is injectable so tests can control issue and verification time.
	now func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithTTL overrides the default 30-day validity window.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) { s.ttl = ttl }
}

// WithClock overrides the time source used for issuing and verifying tokens.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a token service with the given signing secret.
func NewService(secret string, opts ...Option) *Service {
	s := &Service{
		secret: []byte(secret),
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue creates a signed token with subject = userID, valid for the service TTL.
func (s *Service) Issue(userID uint) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the token's signature and expiry and returns its subject.
// Expired tokens and invalid tokens return distinct errors so callers and tests
// can tell them apart, even though both surface identically to clients.
func (s *Service) Verify(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; rejects alg-substitution tokens.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !token.Valid {
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrTokenInvalid
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return 0, ErrTokenInvalid
	}

	return uint(sub), nil
}
