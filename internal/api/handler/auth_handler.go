package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blogforge/blog-api/internal/api/metrics"
	"github.com/blogforge/blog-api/internal/core/domain"
	"github.com/blogforge/blog-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Authorize verifies client credentials and returns a bearer token.
//
// @Summary      Exchange credentials for an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authorizeRequest  true  "Client credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /authorize [post]
func (h *AuthHandler) Authorize(c echo.Context) error {
	var req authorizeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.authService.Authorize(c.Request().Context(), req.ClientID, req.ClientSecret)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues(authResult(err)).Inc()
		// The central error handler maps the auth taxonomy to its HTTP
		// codes and keeps unexpected causes out of the response body.
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}

func authResult(err error) string {
	switch err {
	case domain.ErrMissingCredentials:
		return "missing_credentials"
	case domain.ErrWrongCredentials:
		return "wrong_credentials"
	case domain.ErrTooManyAttempts:
		return "throttled"
	default:
		return "error"
	}
}
