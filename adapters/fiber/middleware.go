package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mindfultrack/mindfultrack/core"
)

// requireAuth validates the session token and stores the session data in
// the context for downstream handlers.
func (a *Adapter) requireAuth(c fiber.Ctx) error {
	token := extractToken(c)
	if token == "" {
		return a.handleError(c, core.ErrMissingAuthHeader)
	}

	sessionData, err := a.mt.Auth.GetSession(c.Context(), token)
	if err != nil {
		return a.handleError(c, err)
	}

	c.Locals("user", sessionData.User)
	c.Locals("profile", sessionData.Profile)
	c.Locals("session", sessionData.Session)
	c.Locals("token", token)

	return c.Next()
}

// extractToken extracts the authentication token from the request.
// Checks Authorization header (Bearer token) first, then falls back to cookie.
func extractToken(c fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}

	return c.Cookies("auth_token")
}

// currentUser returns the user stored by requireAuth.
func currentUser(c fiber.Ctx) *core.User {
	user, _ := c.Locals("user").(*core.User)
	return user
}
