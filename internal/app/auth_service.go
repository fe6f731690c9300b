// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"ifjourney/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrWeakPassword indicates the password is shorter than six characters.
	ErrWeakPassword = errors.New("password must be at least 6 characters")
	// ErrMissingName indicates the name was blank after trimming.
	ErrMissingName = errors.New("name is required")
	// ErrInvalidCredentials indicates that email or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidIdentityClaim indicates an OAuth claim without email or name.
	ErrInvalidIdentityClaim = errors.New("identity claim is missing email or name")
	// ErrSessionNotFound indicates that the login session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the login session has expired.
	ErrSessionExpired = errors.New("session expired")
)

const sessionTTL = 24 * time.Hour

// AuthService handles registration, login and the login-session markers.
type AuthService struct {
	users    domain.UserRepository
	sessions domain.LoginSessionRepository
	now      func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, sessions domain.LoginSessionRepository) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		now:      time.Now,
	}
}

// Register creates an account and logs it in, returning the user and the
// session token. Emails are stored lowercased; duplicates are detected
// case-insensitively.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*domain.User, string, error) {
	existing, err := s.users.FindUser(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrDuplicateEmail
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", ErrMissingName
	}
	if len(password) < 6 {
		return nil, "", ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := domain.User{
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Password:  string(hash),
		Name:      name,
		CreatedAt: s.now().UTC(),
	}
	if err := s.users.AppendUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.createSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login authenticates with email and password and issues a session token.
// Accounts created via Google sign-in hold the sentinel marker instead of a
// hash and therefore never pass the password compare.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.FindUser(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.createSession(ctx, *user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// LoginWithGoogle logs in from an already verified identity claim,
// provisioning the account on first sight. An existing account is reused
// unconditionally; the claim's name is not reconciled against it.
func (s *AuthService) LoginWithGoogle(ctx context.Context, claim domain.IdentityClaim) (*domain.User, string, error) {
	if claim.Email == "" || claim.Name == "" {
		return nil, "", ErrInvalidIdentityClaim
	}

	user, err := s.users.FindUser(ctx, claim.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		u := domain.User{
			Email:     strings.ToLower(claim.Email),
			Password:  domain.GoogleAuthSentinel,
			Name:      claim.Name,
			Picture:   claim.Picture,
			GoogleID:  claim.Subject,
			CreatedAt: s.now().UTC(),
		}
		if err := s.users.AppendUser(ctx, u); err != nil {
			return nil, "", err
		}
		user = &u
	}

	token, err := s.createSession(ctx, *user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout removes the login session for token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.DeleteLoginSession(ctx, token)
}

// ValidateSession resolves a token to its login marker.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*domain.LoginSession, error) {
	sess, err := s.sessions.LoginSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	if s.now().After(sess.ExpiresAt) {
		_ = s.sessions.DeleteLoginSession(ctx, token)
		return nil, ErrSessionExpired
	}
	return sess, nil
}

func (s *AuthService) createSession(ctx context.Context, user domain.User) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	now := s.now().UTC()
	sess := domain.LoginSession{
		Token:     token,
		Email:     user.Email,
		Name:      user.Name,
		ExpiresAt: now.Add(sessionTTL),
		CreatedAt: now,
	}
	if err := s.sessions.SaveLoginSession(ctx, sess); err != nil {
		return "", err
	}
	return token, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
