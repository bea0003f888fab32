package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/mindfultrack/mindfultrack/core"
)

// stepInput carries every field any wizard step accepts; each step reads
// only its own fields and ignores the rest.
type stepInput struct {
	Email           string `json:"email"`
	Name            string `json:"name"`
	Age             string `json:"age"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Username        string `json:"username"`
}

// wizardView is the client's picture of a signup session after any
// operation on it.
type wizardView struct {
	ID    string `json:"id"`
	Step  string `json:"step"`
	Error string `json:"error,omitempty"`

	// Populated once the wizard reaches the summary step.
	Username  string `json:"username,omitempty"`
	AccountID string `json:"accountId,omitempty"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
}

func viewOf(id string, w *core.Wizard) wizardView {
	view := wizardView{
		ID:    id,
		Step:  string(w.Step()),
		Error: w.ErrorMessage(),
	}
	if w.Step() == core.StepSummary {
		draft := w.Draft()
		view.Username = draft.Username
		view.AccountID = draft.AccountID
		view.Email = draft.Email
		view.Name = draft.Name
	}
	return view
}

func (a *Adapter) signupStart(c fiber.Ctx) error {
	id, w, err := a.mt.Wizards.Start()
	if err != nil {
		return a.handleError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(viewOf(id, w))
}

func (a *Adapter) signupGet(c fiber.Ctx) error {
	var view wizardView
	err := a.mt.Wizards.With(c.Params("id"), func(w *core.Wizard) error {
		view = viewOf(c.Params("id"), w)
		return nil
	})
	if err != nil {
		return a.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// signupAdvance validates the submitted fields against the wizard's
// current step and moves it forward. A validation or conflict error
// leaves the wizard where it is; the username step additionally runs the
// terminal signup transaction.
func (a *Adapter) signupAdvance(c fiber.Ctx) error {
	var input stepInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	id := c.Params("id")
	var view wizardView
	err := a.mt.Wizards.With(id, func(w *core.Wizard) error {
		if err := a.advanceStep(c, w, input); err != nil {
			return err
		}
		view = viewOf(id, w)
		return nil
	})
	if err != nil {
		return a.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

func (a *Adapter) advanceStep(c fiber.Ctx, w *core.Wizard, input stepInput) error {
	switch w.Step() {
	case core.StepLogin, core.StepCongrats:
		// navigation-only steps
		w.Advance(core.StepOutput{})
		return nil

	case core.StepEmail:
		if !core.IsValidEmail(input.Email) {
			return core.ErrInvalidEmail
		}
		if err := a.mt.Signup.CheckEmailAvailable(c.Context(), input.Email); err != nil {
			if mapErrorToStatus(err) >= http.StatusInternalServerError {
				w.Fail("Something went wrong. Please try again later.")
			}
			return err
		}
		w.Advance(core.StepOutput{Email: &input.Email})
		return nil

	case core.StepNameAge:
		if !core.IsValidNameAge(input.Name, input.Age) {
			if input.Name == "" {
				return core.ErrInvalidName
			}
			return core.ErrInvalidAge
		}
		age, err := core.ParseAge(input.Age)
		if err != nil {
			return err
		}
		w.Advance(core.StepOutput{Name: &input.Name, Age: &age})
		return nil

	case core.StepPassword:
		if !core.IsStrongPassword(input.Password) {
			return core.ErrWeakPassword
		}
		if !core.PasswordsMatch(input.Password, input.ConfirmPassword) {
			return core.ErrPasswordMismatch
		}
		w.Advance(core.StepOutput{Password: &input.Password})
		return nil

	case core.StepUsername:
		_, err := a.mt.Signup.Complete(c.Context(), w, input.Username)
		return err

	default:
		// summary and error states do not advance
		return nil
	}
}

func (a *Adapter) signupBack(c fiber.Ctx) error {
	id := c.Params("id")
	var view wizardView
	err := a.mt.Wizards.With(id, func(w *core.Wizard) error {
		w.Retreat()
		view = viewOf(id, w)
		return nil
	})
	if err != nil {
		return a.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// signupReset is the "back to login" action from the error screen: it
// discards the draft and returns the wizard to its first step.
func (a *Adapter) signupReset(c fiber.Ctx) error {
	id := c.Params("id")
	var view wizardView
	err := a.mt.Wizards.With(id, func(w *core.Wizard) error {
		w.Reset()
		view = viewOf(id, w)
		return nil
	})
	if err != nil {
		return a.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}
