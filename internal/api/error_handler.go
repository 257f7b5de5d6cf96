package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userdept/admin-system/internal/api/handler"
	"github.com/userdept/admin-system/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the canonical envelope: {"code": <status>, "message": "<msg>", "data": null}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, handler.Envelope{Code: code, Message: msg})
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
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrTokenRevoked):
		return http.StatusUnauthorized, "token has been revoked"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "username already exists"
	case errors.Is(err, domain.ErrDepartmentNotFound):
		return http.StatusNotFound, "department not found"
	case errors.Is(err, domain.ErrDepartmentExists):
		return http.StatusConflict, "department code already exists"
	case errors.Is(err, domain.ErrHasChildren):
		return http.StatusConflict, "department has child departments"
	case errors.Is(err, domain.ErrSelfParent):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrCyclicParent):
		return http.StatusUnprocessableEntity, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
