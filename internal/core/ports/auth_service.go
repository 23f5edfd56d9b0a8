package ports

import "context"

// AuthService verifies client credentials and issues bearer tokens.
type AuthService interface {
	// Authorize returns a signed access token on success. Failure modes:
	// domain.ErrMissingCredentials, domain.ErrWrongCredentials,
	// domain.ErrTooManyAttempts, domain.ErrTokenCreation.
	Authorize(ctx context.Context, clientID, clientSecret string) (string, error)
}

// LoginLimiter throttles repeated credential failures per client id.
type LoginLimiter interface {
	// Allow reports whether the client is still within its failure budget.
	Allow(ctx context.Context, clientID string) (bool, error)
	// RecordFailure counts one failed attempt against the client.
	RecordFailure(ctx context.Context, clientID string) error
}
