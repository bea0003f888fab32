package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/mindfultrack/mindfultrack/core"
)

// handleError maps a service error to an HTTP response. Server-side
// failures get a generic body; remote error details stay in the logs.
func (a *Adapter) handleError(c fiber.Ctx, err error) error {
	status := mapErrorToStatus(err)
	if status >= http.StatusInternalServerError {
		a.mt.Log.Error("request failed", "path", c.Path(), "error", err)
		return c.Status(status).JSON(fiber.Map{
			"error": "something went wrong",
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// mapErrorToStatus maps service error types to HTTP status codes
func mapErrorToStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, core.ErrInvalidEmail),
		errors.Is(err, core.ErrInvalidUsername),
		errors.Is(err, core.ErrWeakPassword),
		errors.Is(err, core.ErrPasswordMismatch),
		errors.Is(err, core.ErrInvalidName),
		errors.Is(err, core.ErrInvalidAge),
		errors.Is(err, core.ErrInvalidMood),
		errors.Is(err, core.ErrInvalidSleep),
		errors.Is(err, core.ErrEmptyJournal),
		errors.Is(err, core.ErrIncompleteDraft):
		return http.StatusBadRequest

	case errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrEmailNotVerified),
		errors.Is(err, core.ErrMissingAuthHeader),
		errors.Is(err, core.ErrInvalidToken),
		errors.Is(err, core.ErrSessionNotFound),
		errors.Is(err, core.ErrSessionExpired):
		return http.StatusUnauthorized

	case errors.Is(err, core.ErrWizardNotFound),
		errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrProfileNotFound):
		return http.StatusNotFound

	case errors.Is(err, core.ErrEmailTaken),
		errors.Is(err, core.ErrUsernameTaken):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
