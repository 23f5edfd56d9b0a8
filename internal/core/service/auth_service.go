package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/blogforge/blog-api/internal/core/domain"
	"github.com/blogforge/blog-api/internal/core/ports"
)

// Claims is the payload carried by issued bearer tokens. The subject is the
// authenticated user's email.
type Claims struct {
	Organization string `json:"org"`
	jwt.RegisteredClaims
}

// AuthService implements credential verification and token issuance.
//
// Stored password hashes are base64(HMAC-SHA256(secret, client_secret)), with
// the same server secret used to sign tokens. Provisioned hashes must follow
// the same construction or no login will ever succeed.
type AuthService struct {
	repo         ports.UserRepository
	limiter      ports.LoginLimiter
	secret       []byte
	tokenTTL     time.Duration
	organization string
	logger       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, limiter ports.LoginLimiter, secret string, tokenTTL time.Duration, organization string, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:         repo,
		limiter:      limiter,
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
		organization: organization,
		logger:       logger,
	}
}

// Authorize verifies the credentials and returns a signed access token.
func (s *AuthService) Authorize(ctx context.Context, clientID, clientSecret string) (string, error) {
	if clientID == "" || clientSecret == "" {
		return "", domain.ErrMissingCredentials
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, clientID)
		if err != nil {
			// Throttling is best effort; an unreachable limiter must not
			// take down the login path.
			s.logger.Warn().Err(err).Str("client_id", clientID).Msg("login limiter unavailable")
		} else if !allowed {
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, clientID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Unknown client_id looks exactly like a bad secret.
			s.recordFailure(ctx, clientID)
			return "", domain.ErrWrongCredentials
		}
		return "", err
	}

	if !hmac.Equal([]byte(s.HashSecret(clientSecret)), []byte(user.PasswordHash)) {
		s.recordFailure(ctx, clientID)
		return "", domain.ErrWrongCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Str("client_id", clientID).Msg("token signing failed")
		return "", domain.ErrTokenCreation
	}

	s.logger.Info().Str("client_id", clientID).Msg("access token issued")
	return token, nil
}

// HashSecret applies the keyed-MAC construction used for stored password
// hashes: base64(HMAC-SHA256(server_secret, secret)).
func (s *AuthService) HashSecret(secret string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(secret))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// EnsureUser provisions a credential record unless one already exists for the
// email. Called at startup when seed configuration is present.
func (s *AuthService) EnsureUser(ctx context.Context, email, secret string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: s.HashSecret(secret),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}
	s.logger.Info().Str("email", email).Msg("seed user provisioned")
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Organization: s.organization,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *AuthService) recordFailure(ctx context.Context, clientID string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, clientID); err != nil {
		s.logger.Warn().Err(err).Str("client_id", clientID).Msg("failed to record login attempt")
	}
}
