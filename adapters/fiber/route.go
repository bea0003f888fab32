// Package fiber exposes the mindfultrack services over HTTP using the
// Fiber framework.
package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mindfultrack/mindfultrack"
)

type Adapter struct {
	app *fiber.App
	mt  *mindfultrack.App
}

func New(app *fiber.App, mt *mindfultrack.App) *Adapter {
	return &Adapter{app: app, mt: mt}
}

func (a *Adapter) RegisterRoutes() error {
	auth := a.app.Group(a.mt.BasePath)

	// Public routes
	auth.Post("/sign-in", a.signin)
	auth.Post("/verify-email", a.verifyEmail)
	auth.Post("/check-email", a.checkEmail)
	auth.Post("/check-username", a.checkUsername)

	// Signup wizard
	auth.Post("/signup", a.signupStart)
	auth.Get("/signup/:id", a.signupGet)
	auth.Post("/signup/:id/advance", a.signupAdvance)
	auth.Post("/signup/:id/back", a.signupBack)
	auth.Post("/signup/:id/reset", a.signupReset)

	// Protected routes
	auth.Post("/sign-out", a.requireAuth, a.signout)
	auth.Get("/session", a.requireAuth, a.session)

	entries := a.app.Group("/api/entries", a.requireAuth)
	entries.Post("/", a.submitEntry)
	entries.Get("/recent", a.recentEntries)
	entries.Get("/today", a.todayEntries)

	a.app.Delete("/api/account", a.requireAuth, a.deleteAccount)

	return nil
}
