package core

import (
	"fmt"
	"time"
)

// FallbackSuggestion is returned when every suggestion provider fails or
// answers with an empty string.
const FallbackSuggestion = "Try some sunlight or a short walk!"

// SleepEntry records hours slept for one day.
type SleepEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Hours     float64   `json:"hours"`
	CreatedAt time.Time `json:"createdAt"`
}

// MoodEntry records a 1-5 mood score for one day.
type MoodEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

// JournalEntry is the free-text record for one day. A day counts as
// complete once this row exists. Summary is derived at insert time;
// Suggestion is attached after the fact by the suggestion chain and is the
// only mutable column.
type JournalEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Text       string    `json:"text"`
	Summary    string    `json:"summary"`
	Suggestion string    `json:"suggestion"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SessionLog marks that the user checked in, and carries the medications
// they reported taking that day.
type SessionLog struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Medications []string  `json:"medications"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TodaySnapshot pre-populates the dashboard form when a partial day
// already exists. Nil fields mean no row was written yet.
type TodaySnapshot struct {
	Mood    *int          `json:"mood,omitempty"`
	Sleep   *float64      `json:"sleep,omitempty"`
	Journal *JournalEntry `json:"journal,omitempty"`
}

// EntrySummary is the one-line digest stored with the journal row and
// shown on the dashboard card.
func EntrySummary(mood int, sleep float64) string {
	return fmt.Sprintf("Mood: %d/5 · Sleep: %g hrs", mood, sleep)
}
