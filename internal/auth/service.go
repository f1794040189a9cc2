package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// DefaultSessionTTL is how long a sign-in stays valid.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Service implements sign-up, sign-in and sign-out on top of a Store.
type Service struct {
	store  *Store
	ttl    time.Duration
	now    func() time.Time
	cost   int
	logger *slog.Logger
}

// NewService creates a Service. A zero ttl means DefaultSessionTTL.
func NewService(store *Store, ttl time.Duration, logger *slog.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  store,
		ttl:    ttl,
		now:    time.Now,
		cost:   bcrypt.DefaultCost,
		logger: logger,
	}
}

// Store returns the underlying store.
func (s *Service) Store() *Store { return s.store }

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp registers a new account and stores its profile record.
func (s *Service) SignUp(ctx context.Context, email, password, displayName string) (*User, error) {
	email = NormalizeEmail(email)
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &User{
		Email:        email,
		DisplayName:  strings.TrimSpace(displayName),
		CreatedAt:    s.now().UTC().Truncate(time.Second),
		passwordHash: string(hash),
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", "user_id", u.ID)
	return u, nil
}

// SignIn checks credentials and opens a new session.
func (s *Service) SignIn(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.store.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}
	expires := s.now().Add(s.ttl).UTC().Truncate(time.Second)
	if err := s.store.CreateSession(ctx, hashToken(token), u.ID, expires); err != nil {
		return nil, err
	}

	s.logger.Info("user signed in", "user_id", u.ID)
	return &Session{Token: token, User: u, ExpiresAt: expires}, nil
}

// SignOut ends the session for token.
func (s *Service) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthorized
	}
	return s.store.DeleteSession(ctx, hashToken(token))
}

// UserForToken returns the user signed in with token.
func (s *Service) UserForToken(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	return s.store.UserForSession(ctx, hashToken(token), s.now())
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t\r\n")
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
