package core

// Step identifies one screen of the signup wizard.
type Step string

const (
	StepLogin    Step = "login"
	StepEmail    Step = "email"
	StepNameAge  Step = "name-age"
	StepPassword Step = "password"
	StepCongrats Step = "congrats"
	StepUsername Step = "username"
	StepSummary  Step = "summary"

	// StepError is not part of the ordered list; the wizard reports it
	// after Fail until Reset is called.
	StepError Step = "error"
)

func stepOrder() []Step {
	return []Step{
		StepLogin,
		StepEmail,
		StepNameAge,
		StepPassword,
		StepCongrats,
		StepUsername,
		StepSummary,
	}
}

// Draft accumulates validated step outputs for one signup session. It is
// owned by a single Wizard, lives only until the wizard completes or is
// abandoned, and is only handed to the account gateway once every field
// has passed its validator.
type Draft struct {
	Email     string
	Name      string
	Age       int
	Password  string
	Username  string
	AccountID string
}

// Complete reports whether every field required for the terminal signup
// transaction is present. AccountID is excluded: it is generated during
// the transaction itself.
func (d Draft) Complete() bool {
	return d.Email != "" && d.Name != "" && d.Age > 0 && d.Password != "" && d.Username != ""
}

// StepOutput is the validated, typed result of one step. Nil fields leave
// the corresponding draft field untouched, so callers only set what their
// step produced.
type StepOutput struct {
	Email     *string
	Name      *string
	Age       *int
	Password  *string
	Username  *string
	AccountID *string
}

// Wizard sequences the signup steps: it owns the ordered step list, the
// current position, the accumulated draft, and the terminal error state.
// It is not safe for concurrent use; the registry serializes access.
type Wizard struct {
	steps  []Step
	index  int
	draft  Draft
	failed bool
	errMsg string
}

func NewWizard() *Wizard {
	return &Wizard{steps: stepOrder()}
}

// Step returns the current step, or StepError after a failure.
func (w *Wizard) Step() Step {
	if w.failed {
		return StepError
	}
	return w.steps[w.index]
}

func (w *Wizard) Draft() Draft {
	return w.draft
}

// Advance merges the step output into the draft and moves to the next
// step. Advancing past the last step, or while failed, is a no-op.
func (w *Wizard) Advance(out StepOutput) {
	if w.failed {
		return
	}
	w.merge(out)
	if w.index < len(w.steps)-1 {
		w.index++
	}
}

// Retreat moves to the previous step. Retreating from the first step, or
// while failed, is a no-op.
func (w *Wizard) Retreat() {
	if w.failed {
		return
	}
	if w.index > 0 {
		w.index--
	}
}

// Fail puts the wizard into the terminal error state. The only way out is
// Reset (the "back to login" action).
func (w *Wizard) Fail(msg string) {
	w.failed = true
	w.errMsg = msg
}

// ErrorMessage returns the user-facing message set by Fail, or "".
func (w *Wizard) ErrorMessage() string {
	if !w.failed {
		return ""
	}
	return w.errMsg
}

// Reset discards the draft and returns to the initial step.
func (w *Wizard) Reset() {
	w.index = 0
	w.draft = Draft{}
	w.failed = false
	w.errMsg = ""
}

func (w *Wizard) merge(out StepOutput) {
	if out.Email != nil {
		w.draft.Email = *out.Email
	}
	if out.Name != nil {
		w.draft.Name = *out.Name
	}
	if out.Age != nil {
		w.draft.Age = *out.Age
	}
	if out.Password != nil {
		w.draft.Password = *out.Password
	}
	if out.Username != nil {
		w.draft.Username = *out.Username
	}
	if out.AccountID != nil {
		w.draft.AccountID = *out.AccountID
	}
}
