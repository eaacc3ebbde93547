package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/badgeforge/issuer-api/internal/api/handler"
	"github.com/badgeforge/issuer-api/internal/api/metrics"
	"github.com/badgeforge/issuer-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders field-keyed validation failures as 400 with a fields map.
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var fe domain.FieldErrors
		if errors.As(err, &fe) {
			for field := range fe {
				metrics.ValidationRejectionsTotal.WithLabelValues(field).Inc()
			}
			_ = c.JSON(http.StatusBadRequest, handler.ErrorResponse{
				Error:  "validation failed",
				Fields: fe,
			})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, handler.ErrorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrIssuerNotFound):
		return http.StatusNotFound, "issuer not found"
	case errors.Is(err, domain.ErrBadgeClassNotFound):
		return http.StatusNotFound, "badge class not found"
	case errors.Is(err, domain.ErrAssertionNotFound):
		return http.StatusNotFound, "assertion not found"
	case errors.Is(err, domain.ErrAlreadyRevoked):
		return http.StatusBadRequest, "assertion already revoked"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
