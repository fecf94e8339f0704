// Package app holds the application services and business logic.
package app

import (
	"context"
	"strings"
	"time"

	"storefront/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MinPasswordLength is the shortest password the mock backend accepts.
const MinPasswordLength = 6

// AuthResult is the outcome of a login or signup attempt. OK is false when
// the simulated backend rejected the credentials.
type AuthResult struct {
	User *domain.SessionUser
	OK   bool
}

// AuthService is a stand-in for a remote authentication backend. It accepts
// any well-formed credentials after a fixed delay.
type AuthService struct {
	users *UserPersister
	carts *CartPersister
	delay time.Duration
	log   *logrus.Logger
}

// NewAuthService creates a new mock authentication service.
func NewAuthService(users *UserPersister, carts *CartPersister, delay time.Duration, log *logrus.Logger) *AuthService {
	return &AuthService{users: users, carts: carts, delay: delay, log: log}
}

// Login signs a session in. The display name is the local part of the email.
func (s *AuthService) Login(ctx context.Context, sessionID, email, password string) (AuthResult, error) {
	return s.authenticate(ctx, sessionID, email, password, localPart(email))
}

// Signup registers and signs a session in under the given display name.
func (s *AuthService) Signup(ctx context.Context, sessionID, email, password, name string) (AuthResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = localPart(email)
	}
	return s.authenticate(ctx, sessionID, email, password, name)
}

// Logout forgets the session user and clears the cart.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.users.Discard(ctx, sessionID); err != nil {
		return err
	}
	return s.carts.Discard(ctx, sessionID)
}

// Current returns the signed-in user of a session, or nil.
func (s *AuthService) Current(ctx context.Context, sessionID string) *domain.SessionUser {
	return s.users.Load(ctx, sessionID)
}

func (s *AuthService) authenticate(ctx context.Context, sessionID, email, password, name string) (AuthResult, error) {
	if err := s.wait(ctx); err != nil {
		return AuthResult{}, err
	}

	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") || len(password) < MinPasswordLength {
		s.log.WithField("session", sessionID).Info("mock auth rejected credentials")
		return AuthResult{}, nil
	}

	user := &domain.SessionUser{
		ID:    UserID(email),
		Name:  name,
		Email: email,
	}
	if err := s.users.Save(ctx, sessionID, user); err != nil {
		return AuthResult{}, err
	}
	s.log.WithFields(logrus.Fields{"session": sessionID, "user": user.ID}).Info("session signed in")
	return AuthResult{User: user, OK: true}, nil
}

func (s *AuthService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// UserID derives a stable user id from an email address.
func UserID(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(strings.TrimSpace(email)))).String()
}

func localPart(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	return local
}
