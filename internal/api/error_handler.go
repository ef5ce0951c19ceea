package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lepdv/todolist-rest/internal/core/domain"
)

// ErrorResponse is the canonical error envelope, shared by every failure the
// API can produce.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Errors    []string  `json:"errors"`
	Type      string    `json:"type"`
	Path      string    `json:"path"`
	Message   string    `json:"message"`
}

// NewHTTPErrorHandler returns the single translation point from domain
// errors to HTTP. Each domain error kind maps to exactly one status code;
// handlers and services never choose status codes themselves.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, kind, errs := resolveError(err, log, c)
		body := ErrorResponse{
			Timestamp: time.Now().UTC(),
			Status:    status,
			Errors:    errs,
			Type:      kind,
			Path:      c.Request().RequestURI,
			Message:   messageForStatus(status),
		}

		log.Info().
			Int("status", status).
			Str("type", kind).
			Str("path", body.Path).
			Strs("errors", errs).
			Msg("request failed")

		_ = c.JSON(status, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, []string) {
	var de *domain.Error
	if errors.As(err, &de) {
		status := statusForKind(de.Kind)
		errs := []string{de.Message}
		if de.Kind == domain.KindValidation {
			errs = splitFieldErrors(de.Message)
		}
		return status, string(de.Kind), errs
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, http.StatusText(he.Code), []string{fmt.Sprintf("%v", he.Message)}
	}

	// Unexpected error: log the real cause, return the reason phrase.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, string(domain.KindInternal),
		[]string{http.StatusText(http.StatusInternalServerError)}
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindPolicyViolation, domain.KindValidation,
		domain.KindAuthExpired, domain.KindAuthMalformed:
		return http.StatusBadRequest
	case domain.KindRoleDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func messageForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Invalid request"
	case http.StatusUnauthorized, http.StatusForbidden:
		return "Access denied!"
	default:
		return http.StatusText(status)
	}
}

// splitFieldErrors turns "a: m1; b: m2; " into its individual entries.
func splitFieldErrors(msg string) []string {
	parts := strings.Split(msg, "; ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{msg}
	}
	return out
}
