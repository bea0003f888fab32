package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindfultrack/mindfultrack/core"
	"github.com/mindfultrack/mindfultrack/pkg/logger"
)

const suggestionSystemPrompt = "You are a supportive wellness companion. " +
	"Reply with one short, encouraging, concrete suggestion based on the user's day. " +
	"Do not give medical advice."

// SuggestionInput is what the completion endpoints see about a day.
type SuggestionInput struct {
	Mood    int
	Sleep   float64
	Journal string
}

// SuggestionChain tries each provider in order and returns the first
// non-empty response. It never fails: provider errors are logged and
// skipped, and exhaustion yields core.FallbackSuggestion.
type SuggestionChain struct {
	providers []core.SuggestionProvider
	log       *logger.Logger
}

func NewSuggestionChain(log *logger.Logger, providers ...core.SuggestionProvider) *SuggestionChain {
	return &SuggestionChain{
		providers: providers,
		log:       log,
	}
}

func (c *SuggestionChain) Suggest(ctx context.Context, in SuggestionInput) string {
	user := fmt.Sprintf("Mood: %d/5\nSleep: %g hours\nJournal: %s", in.Mood, in.Sleep, in.Journal)

	for _, p := range c.providers {
		text, err := p.Complete(ctx, suggestionSystemPrompt, user)
		if err != nil {
			c.log.Warn("suggestion provider failed", "provider", p.Name(), "error", err)
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			c.log.Warn("suggestion provider returned empty response", "provider", p.Name())
			continue
		}
		return text
	}

	return core.FallbackSuggestion
}
