package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mindfultrack/mindfultrack/core"
	"github.com/mindfultrack/mindfultrack/pkg/logger"
)

const defaultSuggestionTimeout = 30 * time.Second

// SubmitInput is one day's dashboard form.
type SubmitInput struct {
	UserID      string
	Mood        int
	Sleep       float64
	Journal     string
	Medications []string
}

// SubmitResult reports a submitted entry. Suggestion yields the settled
// suggestion text (provider response or the fixed fallback) once the
// journal row has been updated; the entry counts as submitted regardless.
type SubmitResult struct {
	JournalID   string
	Summary     string
	SubmittedAt time.Time
	Suggestion  <-chan string
}

// EntryService validates and persists daily entries: four related rows
// written concurrently, then a best-effort suggestion attached to the
// journal row.
type EntryService struct {
	storage core.EntryStorage
	chain   *SuggestionChain
	log     *logger.Logger

	now            func() time.Time
	newID          func() string
	suggestTimeout time.Duration
}

func NewEntryService(storage core.EntryStorage, chain *SuggestionChain, log *logger.Logger) *EntryService {
	return &EntryService{
		storage:        storage,
		chain:          chain,
		log:            log,
		now:            time.Now,
		newID:          uuid.NewString,
		suggestTimeout: defaultSuggestionTimeout,
	}
}

// Submit persists one day's entry. The four base writes are issued
// concurrently and all of them settle before any error is surfaced, so a
// partial write is never invisible. Partial successes are not rolled
// back; the first error comes back wrapped in ErrPartialWrite so callers
// (and tests) can tell that state apart.
func (s *EntryService) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	// Step 1: local validation gate; nothing touches the store on failure
	if in.UserID == "" {
		return nil, core.ErrUserNotFound
	}
	if !core.IsValidMood(in.Mood) {
		return nil, core.ErrInvalidMood
	}
	if !core.IsValidSleep(in.Sleep) {
		return nil, core.ErrInvalidSleep
	}
	journalText := strings.TrimSpace(in.Journal)
	if journalText == "" {
		return nil, core.ErrEmptyJournal
	}

	// Step 2: four row payloads sharing one timestamp
	ts := s.now().UTC()
	summary := core.EntrySummary(in.Mood, in.Sleep)

	sleep := &core.SleepEntry{ID: s.newID(), UserID: in.UserID, Hours: in.Sleep, CreatedAt: ts}
	mood := &core.MoodEntry{ID: s.newID(), UserID: in.UserID, Score: in.Mood, CreatedAt: ts}
	journal := &core.JournalEntry{ID: s.newID(), UserID: in.UserID, Text: journalText, Summary: summary, CreatedAt: ts}
	sessionLog := &core.SessionLog{ID: s.newID(), UserID: in.UserID, Medications: in.Medications, CreatedAt: ts}

	// Step 3: issue all four inserts concurrently and let every one
	// settle before looking at errors
	writes := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"sleep", func(ctx context.Context) error { return s.storage.InsertSleep(ctx, sleep) }},
		{"mood", func(ctx context.Context) error { return s.storage.InsertMood(ctx, mood) }},
		{"journal", func(ctx context.Context) error { return s.storage.InsertJournal(ctx, journal) }},
		{"session", func(ctx context.Context) error { return s.storage.InsertSessionLog(ctx, sessionLog) }},
	}

	errs := make([]error, len(writes))
	var wg sync.WaitGroup
	for i, w := range writes {
		wg.Add(1)
		go func(i int, fn func(context.Context) error) {
			defer wg.Done()
			errs[i] = fn(ctx)
		}(i, w.fn)
	}
	wg.Wait()

	var firstErr error
	failed := 0
	for i, err := range errs {
		if err == nil {
			continue
		}
		failed++
		if firstErr == nil {
			firstErr = fmt.Errorf("%s write failed: %w", writes[i].name, err)
		}
	}
	if firstErr != nil {
		if failed < len(writes) {
			s.log.Error("daily entry partially written", "user_id", in.UserID, "failed", failed, "error", firstErr)
			return nil, fmt.Errorf("%w: %v", core.ErrPartialWrite, firstErr)
		}
		return nil, fmt.Errorf("%w: %v", core.ErrEntryNotSubmitted, firstErr)
	}

	// Step 4: the entry is submitted; the suggestion is best-effort and
	// never delays or fails the submission
	ch := make(chan string, 1)
	go s.attachSuggestion(journal.ID, SuggestionInput{Mood: in.Mood, Sleep: in.Sleep, Journal: journalText}, ch)

	return &SubmitResult{
		JournalID:   journal.ID,
		Summary:     summary,
		SubmittedAt: ts,
		Suggestion:  ch,
	}, nil
}

// attachSuggestion runs on a detached context: the request that triggered
// the submit may be gone by the time a provider answers.
func (s *EntryService) attachSuggestion(journalID string, in SuggestionInput, ch chan string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.suggestTimeout)
	defer cancel()

	text := s.chain.Suggest(ctx, in)
	if err := s.storage.UpdateJournalSuggestion(ctx, journalID, text); err != nil {
		s.log.Warn("failed to store suggestion", "journal_id", journalID, "error", err)
	}

	ch <- text
	close(ch)
}

// Recent returns the last three journal entries, newest first.
func (s *EntryService) Recent(ctx context.Context, userID string) ([]*core.JournalEntry, error) {
	return s.storage.RecentJournals(ctx, userID, 3)
}

// Today returns whatever was already written for the current UTC day, to
// pre-populate the form when a partial day exists.
func (s *EntryService) Today(ctx context.Context, userID string) (*core.TodaySnapshot, error) {
	return s.storage.TodaySnapshot(ctx, userID, s.now().UTC())
}
