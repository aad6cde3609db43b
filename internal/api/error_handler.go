package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tfxsoftware/PickPegaAPI/internal/core/domain"
)

// errorEnvelope is the canonical error shape: {status, error}.
type errorEnvelope struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the consistent envelope: {"status": <code>, "error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorEnvelope{Status: code, Error: msg})
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
	case errors.Is(err, domain.ErrRestaurantNotFound):
		return http.StatusNotFound, "restaurant not found"
	case errors.Is(err, domain.ErrMenuNotFound):
		return http.StatusNotFound, "menu not found"
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, "orders not found"
	case errors.Is(err, domain.ErrIdentityNotFound):
		return http.StatusNotFound, "account not found"
	case errors.Is(err, domain.ErrIdentityExists):
		return http.StatusConflict, "account already exists"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrPartialWrite):
		// Distinct from a plain backend failure so operators can tell a
		// diverged dual-write from a transient store error.
		log.Error().Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("partial write")
		return http.StatusInternalServerError, "partial write: stores may be inconsistent"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
