package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mindfultrack/mindfultrack/core"
)

// FakeStorage is a test-only fake implementing core.Storage. It keeps
// everything in maps and slices, enforces the same unique constraints the
// real store does, and exposes error fields for behavior injection.
type FakeStorage struct {
	mu sync.RWMutex

	users    map[string]*core.User    // by id
	profiles map[string]*core.Profile // by user id
	sessions map[string]*core.Session // by token hash

	sleep    []*core.SleepEntry
	mood     []*core.MoodEntry
	journals []*core.JournalEntry
	logs     []*core.SessionLog

	createUserErr        error
	insertProfileErr     error
	checkErr             error
	insertSleepErr       error
	insertMoodErr        error
	insertJournalErr     error
	insertLogErr         error
	updateSuggestionErr  error
	deleteSleepErr       error
	deleteMoodErr        error
	deleteJournalsErr    error
	deleteLogsErr        error
	deleteProfileErr     error
	deleteUserErr        error
	createSessionErr     error
	getSessionErr        error
	deleteSessionErr     error
}

var _ core.Storage = (*FakeStorage)(nil)

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{
		users:    make(map[string]*core.User),
		profiles: make(map[string]*core.Profile),
		sessions: make(map[string]*core.Session),
	}
}

// --- users ---

func (f *FakeStorage) CreateUser(_ context.Context, u *core.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createUserErr != nil {
		return f.createUserErr
	}
	for _, existing := range f.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return core.ErrEmailTaken
		}
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	f.users[u.ID] = u
	return nil
}

func (f *FakeStorage) GetUserByID(_ context.Context, id string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	u, ok := f.users[id]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	return u, nil
}

func (f *FakeStorage) GetUserByEmail(_ context.Context, email string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, core.ErrUserNotFound
}

func (f *FakeStorage) MarkEmailVerified(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return core.ErrUserNotFound
	}
	u.EmailVerified = true
	return nil
}

func (f *FakeStorage) DeleteUser(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteUserErr != nil {
		return f.deleteUserErr
	}
	delete(f.users, id)
	return nil
}

// --- profiles ---

func (f *FakeStorage) InsertProfile(_ context.Context, p *core.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertProfileErr != nil {
		return f.insertProfileErr
	}
	for _, existing := range f.profiles {
		if strings.EqualFold(existing.Username, p.Username) {
			return core.ErrUsernameTaken
		}
		if existing.AccountID == p.AccountID {
			return fmt.Errorf("duplicate account id %q", p.AccountID)
		}
	}
	f.profiles[p.UserID] = p
	return nil
}

func (f *FakeStorage) GetProfileByUserID(_ context.Context, userID string) (*core.Profile, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	p, ok := f.profiles[userID]
	if !ok {
		return nil, core.ErrProfileNotFound
	}
	return p, nil
}

func (f *FakeStorage) DeleteProfile(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteProfileErr != nil {
		return f.deleteProfileErr
	}
	delete(f.profiles, userID)
	return nil
}

// --- uniqueness ---

func (f *FakeStorage) CheckFieldUnique(_ context.Context, table, field, value string) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.checkErr != nil {
		return false, f.checkErr
	}
	switch table + "." + field {
	case "users.email":
		for _, u := range f.users {
			if strings.EqualFold(u.Email, value) {
				return true, nil
			}
		}
		return false, nil
	case "profiles.username":
		for _, p := range f.profiles {
			if strings.EqualFold(p.Username, value) {
				return true, nil
			}
		}
		return false, nil
	case "profiles.account_id":
		for _, p := range f.profiles {
			if p.AccountID == value {
				return true, nil
			}
		}
		return false, nil
	}
	return false, fmt.Errorf("uniqueness check not allowed for %s.%s", table, field)
}

// --- entries ---

func (f *FakeStorage) InsertSleep(_ context.Context, e *core.SleepEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertSleepErr != nil {
		return f.insertSleepErr
	}
	f.sleep = append(f.sleep, e)
	return nil
}

func (f *FakeStorage) InsertMood(_ context.Context, e *core.MoodEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertMoodErr != nil {
		return f.insertMoodErr
	}
	f.mood = append(f.mood, e)
	return nil
}

func (f *FakeStorage) InsertJournal(_ context.Context, e *core.JournalEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertJournalErr != nil {
		return f.insertJournalErr
	}
	f.journals = append(f.journals, e)
	return nil
}

func (f *FakeStorage) InsertSessionLog(_ context.Context, e *core.SessionLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertLogErr != nil {
		return f.insertLogErr
	}
	f.logs = append(f.logs, e)
	return nil
}

func (f *FakeStorage) UpdateJournalSuggestion(_ context.Context, journalID, suggestion string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateSuggestionErr != nil {
		return f.updateSuggestionErr
	}
	for _, j := range f.journals {
		if j.ID == journalID {
			j.Suggestion = suggestion
			return nil
		}
	}
	return fmt.Errorf("journal %q not found", journalID)
}

func (f *FakeStorage) RecentJournals(_ context.Context, userID string, limit int) ([]*core.JournalEntry, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []*core.JournalEntry
	for _, j := range f.journals {
		if j.UserID == userID {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.After(out[k].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *FakeStorage) TodaySnapshot(_ context.Context, userID string, day time.Time) (*core.TodaySnapshot, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	inDay := func(ts time.Time) bool { return !ts.Before(start) && ts.Before(end) }

	snap := &core.TodaySnapshot{}
	for _, m := range f.mood {
		if m.UserID == userID && inDay(m.CreatedAt) {
			score := m.Score
			snap.Mood = &score
		}
	}
	for _, s := range f.sleep {
		if s.UserID == userID && inDay(s.CreatedAt) {
			hours := s.Hours
			snap.Sleep = &hours
		}
	}
	for _, j := range f.journals {
		if j.UserID == userID && inDay(j.CreatedAt) {
			snap.Journal = j
		}
	}
	return snap, nil
}

func (f *FakeStorage) DeleteSleepByUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteSleepErr != nil {
		return f.deleteSleepErr
	}
	f.sleep = filterSleep(f.sleep, userID)
	return nil
}

func (f *FakeStorage) DeleteMoodByUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteMoodErr != nil {
		return f.deleteMoodErr
	}
	var kept []*core.MoodEntry
	for _, e := range f.mood {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	f.mood = kept
	return nil
}

func (f *FakeStorage) DeleteJournalsByUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteJournalsErr != nil {
		return f.deleteJournalsErr
	}
	var kept []*core.JournalEntry
	for _, e := range f.journals {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	f.journals = kept
	return nil
}

func (f *FakeStorage) DeleteSessionLogsByUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteLogsErr != nil {
		return f.deleteLogsErr
	}
	var kept []*core.SessionLog
	for _, e := range f.logs {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	f.logs = kept
	return nil
}

func filterSleep(entries []*core.SleepEntry, userID string) []*core.SleepEntry {
	var kept []*core.SleepEntry
	for _, e := range entries {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	return kept
}

// --- sessions ---

func (f *FakeStorage) CreateSession(_ context.Context, s *core.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createSessionErr != nil {
		return f.createSessionErr
	}
	f.sessions[s.TokenHash] = s
	return nil
}

func (f *FakeStorage) GetSessionByHash(_ context.Context, tokenHash string) (*core.Session, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getSessionErr != nil {
		return nil, f.getSessionErr
	}
	s, ok := f.sessions[tokenHash]
	if !ok {
		return nil, core.ErrSessionNotFound
	}
	return s, nil
}

func (f *FakeStorage) DeleteSessionByID(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteSessionErr != nil {
		return f.deleteSessionErr
	}
	for k, s := range f.sessions {
		if s.ID == id {
			delete(f.sessions, k)
			return nil
		}
	}
	return core.ErrSessionNotFound
}

func (f *FakeStorage) DeleteSessionByHash(_ context.Context, tokenHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteSessionErr != nil {
		return f.deleteSessionErr
	}
	if _, ok := f.sessions[tokenHash]; !ok {
		return core.ErrSessionNotFound
	}
	delete(f.sessions, tokenHash)
	return nil
}

func (f *FakeStorage) DeleteUserSessions(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, s := range f.sessions {
		if s.UserID == userID {
			delete(f.sessions, k)
		}
	}
	return nil
}

func (f *FakeStorage) DeleteExpiredSessions(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	now := time.Now()
	for k, s := range f.sessions {
		if s.ExpiresAt.Before(now) {
			delete(f.sessions, k)
			count++
		}
	}
	return count, nil
}

// counters for assertions

func (f *FakeStorage) SleepCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.sleep)
}

func (f *FakeStorage) MoodCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.mood)
}

func (f *FakeStorage) JournalCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.journals)
}

func (f *FakeStorage) LogCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.logs)
}

func (f *FakeStorage) UserCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.users)
}

// fakeProvider is a canned suggestion provider for chain tests.
type fakeProvider struct {
	mu    sync.Mutex
	name  string
	text  string
	err   error
	calls int
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Complete(_ context.Context, _, _ string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.text, nil
}

func (p *fakeProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
