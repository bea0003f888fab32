package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mindfultrack/mindfultrack/core"
	"github.com/mindfultrack/mindfultrack/pkg/logger"
)

// Requirement: providers are tried in order; the first non-empty response
// wins and later providers are never called.
func TestSuggestionChain_FirstProviderWins(t *testing.T) {
	primary := &fakeProvider{name: "primary", text: "Take a walk."}
	backup := &fakeProvider{name: "backup", text: "Drink water."}
	chain := NewSuggestionChain(logger.NewNop(), primary, backup)

	got := chain.Suggest(context.Background(), SuggestionInput{Mood: 3, Sleep: 7, Journal: "ok day"})
	if got != "Take a walk." {
		t.Errorf("Suggest() = %q, want primary response", got)
	}
	if backup.callCount() != 0 {
		t.Errorf("backup called %d times, want 0", backup.callCount())
	}
}

// Requirement: a failing or empty provider is skipped and the next one is
// tried.
func TestSuggestionChain_FallsThrough(t *testing.T) {
	tests := []struct {
		name    string
		primary *fakeProvider
	}{
		{"primary errors", &fakeProvider{name: "primary", err: errors.New("rate limited")}},
		{"primary empty", &fakeProvider{name: "primary", text: ""}},
		{"primary whitespace", &fakeProvider{name: "primary", text: "   "}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			backup := &fakeProvider{name: "backup", text: "Keep going!"}
			chain := NewSuggestionChain(logger.NewNop(), test.primary, backup)

			got := chain.Suggest(context.Background(), SuggestionInput{Mood: 2, Sleep: 5, Journal: "rough day"})
			if got != "Keep going!" {
				t.Errorf("Suggest() = %q, want backup response", got)
			}
			if test.primary.callCount() != 1 {
				t.Errorf("primary called %d times, want 1", test.primary.callCount())
			}
		})
	}
}

// Requirement: when every provider fails the chain returns the fixed
// fallback text, never an error.
func TestSuggestionChain_Exhaustion(t *testing.T) {
	primary := &fakeProvider{name: "primary", err: errors.New("down")}
	backup := &fakeProvider{name: "backup", err: errors.New("also down")}
	chain := NewSuggestionChain(logger.NewNop(), primary, backup)

	got := chain.Suggest(context.Background(), SuggestionInput{Mood: 1, Sleep: 3, Journal: "bad day"})
	if got != core.FallbackSuggestion {
		t.Errorf("Suggest() = %q, want %q", got, core.FallbackSuggestion)
	}
}

// Requirement: an empty chain yields the fallback immediately.
func TestSuggestionChain_NoProviders(t *testing.T) {
	chain := NewSuggestionChain(logger.NewNop())

	got := chain.Suggest(context.Background(), SuggestionInput{Mood: 3, Sleep: 8, Journal: "fine"})
	if got != core.FallbackSuggestion {
		t.Errorf("Suggest() = %q, want %q", got, core.FallbackSuggestion)
	}
}
