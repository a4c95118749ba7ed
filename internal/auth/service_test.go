package auth

import (
	"context"
	"testing"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/platform/apperr"
	"github.com/AmrAnter44/sys-body-sub004/platform/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type testAuthConfig struct {
	secret string
	ttl    time.Duration
}

func (c testAuthConfig) GetJWTAccessSecret() string       { return c.secret }
func (c testAuthConfig) GetAccessTokenTTL() time.Duration { return c.ttl }

func TestRegisterValidation(t *testing.T) {
	svc := NewService(nil, testAuthConfig{secret: "test-secret", ttl: time.Hour}, logger.New("development"))

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"empty name", "", "sara@gym.test", "supersecret"},
		{"whitespace name", "   ", "sara@gym.test", "supersecret"},
		{"empty email", "Sara", "", "supersecret"},
		{"short password", "Sara", "sara@gym.test", "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)
			if !apperr.IsKind(err, apperr.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestIssueAccessTokenClaims(t *testing.T) {
	cfg := testAuthConfig{secret: "test-secret", ttl: time.Hour}
	svc := NewService(nil, cfg, logger.New("development"))

	fixed := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	user := StaffUser{ID: uuid.New(), Name: "Sara", Email: "sara@gym.test"}
	expiresAt := fixed.Add(cfg.ttl)

	raw, err := svc.issueAccessToken(user, expiresAt)
	if err != nil {
		t.Fatalf("issueAccessToken: %v", err)
	}

	parsed, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(func() time.Time { return fixed }))
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", parsed.Claims)
	}
	if got, _ := claims["sub"].(string); got != user.ID.String() {
		t.Errorf("sub = %q, want %q", got, user.ID.String())
	}
	if got, _ := claims["name"].(string); got != "Sara" {
		t.Errorf("name = %q, want %q", got, "Sara")
	}
	if got, _ := claims["type"].(string); got != "access" {
		t.Errorf("type = %q, want %q", got, "access")
	}
	if got, _ := claims["exp"].(float64); int64(got) != expiresAt.Unix() {
		t.Errorf("exp = %d, want %d", int64(got), expiresAt.Unix())
	}
}
