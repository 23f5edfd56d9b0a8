package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/blogforge/blog-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = int64(len(r.users) + 1)
	clone := *user
	r.users[user.Email] = &clone
	return nil
}

type stubLimiter struct {
	allowed  bool
	failures int
	err      error
}

func (l *stubLimiter) Allow(_ context.Context, _ string) (bool, error) {
	return l.allowed, l.err
}

func (l *stubLimiter) RecordFailure(_ context.Context, _ string) error {
	l.failures++
	return nil
}

func newAuthService(repo *stubUserRepo, limiter *stubLimiter) *AuthService {
	return NewAuthService(repo, limiter, "secret", time.Hour, "blogforge", zerolog.Nop())
}

func seedUser(t *testing.T, svc *AuthService, repo *stubUserRepo, email, password string) {
	t.Helper()
	if err := svc.EnsureUser(context.Background(), email, password); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, ok := repo.users[email]; !ok {
		t.Fatalf("seed user not stored")
	}
}

func TestAuthService_Authorize_MissingCredentials(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubLimiter{allowed: true})

	if _, err := svc.Authorize(context.Background(), "", "s3cret"); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := svc.Authorize(context.Background(), "a@example.com", ""); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestAuthService_Authorize_UnknownClientID(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	svc := newAuthService(newStubUserRepo(), limiter)

	_, err := svc.Authorize(context.Background(), "ghost@example.com", "s3cret")
	if !errors.Is(err, domain.ErrWrongCredentials) {
		t.Fatalf("expected ErrWrongCredentials for unknown client, got %v", err)
	}
	if limiter.failures != 1 {
		t.Fatalf("expected 1 recorded failure, got %d", limiter.failures)
	}
}

func TestAuthService_Authorize_WrongSecret(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{allowed: true}
	svc := newAuthService(repo, limiter)
	seedUser(t, svc, repo, "alice@example.com", "goodpass")

	if _, err := svc.Authorize(context.Background(), "alice@example.com", "badpass"); !errors.Is(err, domain.ErrWrongCredentials) {
		t.Fatalf("expected ErrWrongCredentials, got %v", err)
	}
	if limiter.failures != 1 {
		t.Fatalf("expected 1 recorded failure, got %d", limiter.failures)
	}
}

func TestAuthService_Authorize_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubLimiter{allowed: true})
	seedUser(t, svc, repo, "alice@example.com", "s3cret")

	token, err := svc.Authorize(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("authorize failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty string")
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Subject != "alice@example.com" {
		t.Fatalf("expected subject bound to authenticated email, got %q", claims.Subject)
	}
	if claims.Organization != "blogforge" {
		t.Fatalf("unexpected organization: %q", claims.Organization)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", claims.ExpiresAt)
	}
}

func TestAuthService_Authorize_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubLimiter{allowed: false})
	seedUser(t, svc, repo, "alice@example.com", "s3cret")

	if _, err := svc.Authorize(context.Background(), "alice@example.com", "s3cret"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Authorize_LimiterUnavailable(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{allowed: false, err: errors.New("redis down")}
	svc := newAuthService(repo, limiter)
	seedUser(t, svc, repo, "alice@example.com", "s3cret")

	// An unreachable limiter must not block logins.
	if _, err := svc.Authorize(context.Background(), "alice@example.com", "s3cret"); err != nil {
		t.Fatalf("authorize failed with broken limiter: %v", err)
	}
}

func TestAuthService_HashSecret_Construction(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte("s3cret"))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if got := svc.HashSecret("s3cret"); got != want {
		t.Fatalf("hash construction mismatch: got %q want %q", got, want)
	}
}

func TestAuthService_EnsureUser_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	if err := svc.EnsureUser(context.Background(), "alice@example.com", "s3cret"); err != nil {
		t.Fatalf("first EnsureUser: %v", err)
	}
	first := repo.users["alice@example.com"].PasswordHash

	if err := svc.EnsureUser(context.Background(), "alice@example.com", "other"); err != nil {
		t.Fatalf("second EnsureUser: %v", err)
	}
	if repo.users["alice@example.com"].PasswordHash != first {
		t.Fatalf("EnsureUser overwrote an existing credential record")
	}
}
