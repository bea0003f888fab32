package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/mindfultrack/mindfultrack/core"
	"github.com/mindfultrack/mindfultrack/services"
)

// signin returns a handler response for the sign-in endpoint
func (a *Adapter) signin(c fiber.Ctx) error {
	var input services.SignInInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	ipAddress := c.IP()
	userAgent := c.Get(fiber.HeaderUserAgent)

	result, err := a.mt.Auth.SignIn(c.Context(), input, ipAddress, userAgent)
	if err != nil {
		return a.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(result)
}

func (a *Adapter) signout(c fiber.Ctx) error {
	token, _ := c.Locals("token").(string)

	if err := a.mt.Auth.SignOut(c.Context(), token); err != nil {
		return a.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "signed out successfully",
	})
}

func (a *Adapter) session(c fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(core.SessionData{
		User:    currentUser(c),
		Profile: currentProfile(c),
		Session: currentSession(c),
	})
}

// verifyEmail is the landing hook for the out-of-band confirmation flow;
// it flips the identity's verified flag so sign-in stops refusing it.
func (a *Adapter) verifyEmail(c fiber.Ctx) error {
	var input struct {
		UserID string `json:"userId"`
	}
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := a.mt.Auth.VerifyEmail(c.Context(), input.UserID); err != nil {
		return a.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "email verified",
	})
}

// checkEmail gives the email step its fast feedback; the store's unique
// index still decides on the terminal transaction.
func (a *Adapter) checkEmail(c fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := a.mt.Signup.CheckEmailAvailable(c.Context(), input.Email); err != nil {
		return a.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"available": true})
}

func (a *Adapter) checkUsername(c fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
	}
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := a.mt.Signup.CheckUsernameAvailable(c.Context(), input.Username); err != nil {
		return a.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"available": true})
}

func currentProfile(c fiber.Ctx) *core.Profile {
	profile, _ := c.Locals("profile").(*core.Profile)
	return profile
}

func currentSession(c fiber.Ctx) *core.Session {
	session, _ := c.Locals("session").(*core.Session)
	return session
}
