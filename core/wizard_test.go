package core

import "testing"

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// Requirement: the wizard starts at the login step and walks the fixed
// step order one Advance at a time.
func TestWizard_StepOrder(t *testing.T) {
	w := NewWizard()

	want := []Step{StepLogin, StepEmail, StepNameAge, StepPassword, StepCongrats, StepUsername, StepSummary}
	for i, step := range want {
		if got := w.Step(); got != step {
			t.Fatalf("step %d = %q, want %q", i, got, step)
		}
		w.Advance(StepOutput{})
	}
}

// Requirement: advancing past the last step is a no-op.
func TestWizard_AdvancePastEnd(t *testing.T) {
	w := NewWizard()
	for range stepOrder() {
		w.Advance(StepOutput{})
	}

	if got := w.Step(); got != StepSummary {
		t.Fatalf("Step() = %q, want %q", got, StepSummary)
	}
	w.Advance(StepOutput{})
	if got := w.Step(); got != StepSummary {
		t.Errorf("Step() after extra Advance = %q, want %q", got, StepSummary)
	}
}

// Requirement: retreating from the first step is a no-op; otherwise
// Retreat moves one step back without touching the draft.
func TestWizard_Retreat(t *testing.T) {
	w := NewWizard()

	w.Retreat()
	if got := w.Step(); got != StepLogin {
		t.Fatalf("Step() after Retreat at start = %q, want %q", got, StepLogin)
	}

	w.Advance(StepOutput{})
	w.Advance(StepOutput{Email: strPtr("alice@example.com")})
	if got := w.Step(); got != StepNameAge {
		t.Fatalf("Step() = %q, want %q", got, StepNameAge)
	}

	w.Retreat()
	if got := w.Step(); got != StepEmail {
		t.Errorf("Step() after Retreat = %q, want %q", got, StepEmail)
	}
	if w.Draft().Email != "alice@example.com" {
		t.Errorf("Retreat should not clear the draft, got %+v", w.Draft())
	}
}

// Requirement: Advance merges only the fields the step produced; earlier
// fields survive later steps.
func TestWizard_DraftMerge(t *testing.T) {
	w := NewWizard()

	w.Advance(StepOutput{})
	w.Advance(StepOutput{Email: strPtr("alice@example.com")})
	w.Advance(StepOutput{Name: strPtr("Alice"), Age: intPtr(30)})
	w.Advance(StepOutput{Password: strPtr("hunter22hunter22")})

	draft := w.Draft()
	if draft.Email != "alice@example.com" || draft.Name != "Alice" || draft.Age != 30 || draft.Password != "hunter22hunter22" {
		t.Errorf("draft = %+v, want all earlier fields retained", draft)
	}
	if draft.Complete() {
		t.Error("draft should not be complete without a username")
	}

	draft.Username = "alice"
	if !draft.Complete() {
		t.Error("draft with all fields should be complete")
	}
}

// Requirement: Fail is terminal. The wizard reports the error step and the
// message, and Advance/Retreat become no-ops until Reset.
func TestWizard_FailAndReset(t *testing.T) {
	w := NewWizard()
	w.Advance(StepOutput{})
	w.Advance(StepOutput{Email: strPtr("alice@example.com")})

	w.Fail("Something went wrong. Please try again later.")

	if got := w.Step(); got != StepError {
		t.Fatalf("Step() after Fail = %q, want %q", got, StepError)
	}
	if got := w.ErrorMessage(); got != "Something went wrong. Please try again later." {
		t.Errorf("ErrorMessage() = %q", got)
	}

	w.Advance(StepOutput{Name: strPtr("Mallory")})
	w.Retreat()
	if got := w.Step(); got != StepError {
		t.Errorf("Step() after Advance/Retreat while failed = %q, want %q", got, StepError)
	}
	if w.Draft().Name != "" {
		t.Error("Advance while failed should not merge into the draft")
	}

	w.Reset()
	if got := w.Step(); got != StepLogin {
		t.Errorf("Step() after Reset = %q, want %q", got, StepLogin)
	}
	if w.Draft() != (Draft{}) {
		t.Errorf("Reset should discard the draft, got %+v", w.Draft())
	}
	if got := w.ErrorMessage(); got != "" {
		t.Errorf("ErrorMessage() after Reset = %q, want empty", got)
	}
}
