package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/blogforge/blog-api/internal/core/domain"
)

type stubAuthService struct {
	authorizeFn func(ctx context.Context, clientID, clientSecret string) (string, error)
}

func (s *stubAuthService) Authorize(ctx context.Context, clientID, clientSecret string) (string, error) {
	return s.authorizeFn(ctx, clientID, clientSecret)
}

func TestAuthHandler_Authorize_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		authorizeFn: func(ctx context.Context, clientID, clientSecret string) (string, error) {
			if clientID != "alice@example.com" || clientSecret != "s3cret" {
				t.Fatalf("unexpected args: %s %s", clientID, clientSecret)
			}
			return "signed-token", nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"client_id":"alice@example.com","client_secret":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/authorize", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Authorize(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "signed-token" {
		t.Fatalf("unexpected access_token: %v", resp["access_token"])
	}
	if resp["token_type"] != "Bearer" {
		t.Fatalf("unexpected token_type: %v", resp["token_type"])
	}
}

// Failures propagate to the central error handler, which owns the
// status mapping. The handler's job is only to pass the error through.
func TestAuthHandler_Authorize_PropagatesAuthErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"missing credentials", domain.ErrMissingCredentials},
		{"wrong credentials", domain.ErrWrongCredentials},
		{"throttled", domain.ErrTooManyAttempts},
		{"token creation", domain.ErrTokenCreation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			stub := &stubAuthService{
				authorizeFn: func(ctx context.Context, clientID, clientSecret string) (string, error) {
					return "", tc.err
				},
			}
			handler := NewAuthHandler(stub)

			req := httptest.NewRequest(http.MethodPost, "/authorize", strings.NewReader(`{"client_id":"a@example.com","client_secret":"x"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.Authorize(c)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			if rec.Body.Len() != 0 {
				t.Fatalf("handler wrote a body on error: %s", rec.Body.String())
			}
		})
	}
}

func TestAuthHandler_Authorize_PropagatesUnexpectedErrors(t *testing.T) {
	e := echo.New()
	cause := errors.New("find user: dial tcp 10.0.0.3:5432: connection refused")
	stub := &stubAuthService{
		authorizeFn: func(ctx context.Context, clientID, clientSecret string) (string, error) {
			return "", cause
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/authorize", strings.NewReader(`{"client_id":"a@example.com","client_secret":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Authorize(c)
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to propagate, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("handler wrote a body on error: %s", rec.Body.String())
	}
}
