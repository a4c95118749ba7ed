package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/platform/apperr"
	"github.com/AmrAnter44/sys-body-sub004/platform/config"
	"github.com/AmrAnter44/sys-body-sub004/platform/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Service handles staff authentication.
type Service struct {
	repo *Repository
	cfg  config.AuthServiceConfig
	log  *logger.Logger
	now  func() time.Time
}

// NewService creates a new auth service.
func NewService(repo *Repository, cfg config.AuthServiceConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, log: log, now: time.Now}
}

// LoginResult carries the issued token and the authenticated account.
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        StaffUser
}

// Login verifies credentials and issues an access token. Lookup and hash
// failures collapse into the same error so callers cannot probe for accounts.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)
	user, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		s.log.AuthEvent("login_failed", email, false, "unknown account")
		return LoginResult{}, apperr.Unauthorized("invalid credentials")
	}
	if err != nil {
		return LoginResult{}, apperr.Internal("login failed", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.AuthEvent("login_failed", email, false, "bad password")
		return LoginResult{}, apperr.Unauthorized("invalid credentials")
	}

	expiresAt := s.now().Add(s.cfg.GetAccessTokenTTL())
	token, err := s.issueAccessToken(user, expiresAt)
	if err != nil {
		return LoginResult{}, apperr.Internal("token generation failed", err)
	}

	s.log.AuthEvent("login", email, true, "")
	return LoginResult{AccessToken: token, ExpiresAt: expiresAt, User: user}, nil
}

// Register creates a staff account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, name, email, password string) (StaffUser, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return StaffUser{}, apperr.Validation("name is required")
	}
	if email == "" {
		return StaffUser{}, apperr.Validation("email is required")
	}
	if len(password) < 8 {
		return StaffUser{}, apperr.Validation("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return StaffUser{}, apperr.Internal("password hashing failed", err)
	}

	user, err := s.repo.Create(ctx, CreateStaffParams{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return StaffUser{}, apperr.Internal("account creation failed", err)
	}
	return user, nil
}

// ResolveEmail returns the email address behind a sales name.
func (s *Service) ResolveEmail(ctx context.Context, salesName string) (StaffUser, error) {
	user, err := s.repo.GetByName(ctx, salesName)
	if errors.Is(err, ErrNotFound) {
		return StaffUser{}, apperr.NotFound("staff user not found")
	}
	return user, err
}

func (s *Service) issueAccessToken(user StaffUser, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"name": user.Name,
		"type": "access",
		"iat":  s.now().Unix(),
		"exp":  expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.GetJWTAccessSecret()))
}
