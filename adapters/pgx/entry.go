package pgx

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mindfultrack/mindfultrack/core"
)

func (a *Adapter) InsertSleep(ctx context.Context, e *core.SleepEntry) error {
	q := `INSERT INTO public.sleep_entries (id, user_id, hours, created_at) VALUES ($1, $2, $3, $4)`
	_, err := a.pool.Exec(ctx, q, e.ID, e.UserID, e.Hours, e.CreatedAt)
	return err
}

func (a *Adapter) InsertMood(ctx context.Context, e *core.MoodEntry) error {
	q := `INSERT INTO public.mood_entries (id, user_id, score, created_at) VALUES ($1, $2, $3, $4)`
	_, err := a.pool.Exec(ctx, q, e.ID, e.UserID, e.Score, e.CreatedAt)
	return err
}

func (a *Adapter) InsertJournal(ctx context.Context, e *core.JournalEntry) error {
	q := `INSERT INTO public.journal_entries (id, user_id, text, summary, suggestion, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := a.pool.Exec(ctx, q, e.ID, e.UserID, e.Text, e.Summary, e.Suggestion, e.CreatedAt)
	return err
}

func (a *Adapter) InsertSessionLog(ctx context.Context, e *core.SessionLog) error {
	q := `INSERT INTO public.session_logs (id, user_id, medications, created_at) VALUES ($1, $2, $3, $4)`
	_, err := a.pool.Exec(ctx, q, e.ID, e.UserID, e.Medications, e.CreatedAt)
	return err
}

func (a *Adapter) UpdateJournalSuggestion(ctx context.Context, journalID, suggestion string) error {
	q := `UPDATE public.journal_entries SET suggestion = $1 WHERE id = $2`
	tag, err := a.pool.Exec(ctx, q, suggestion, journalID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (a *Adapter) RecentJournals(ctx context.Context, userID string, limit int) ([]*core.JournalEntry, error) {
	q := `SELECT id, user_id, text, summary, suggestion, created_at FROM public.journal_entries WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := a.pool.Query(ctx, q, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*core.JournalEntry
	for rows.Next() {
		e := &core.JournalEntry{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.Text, &e.Summary, &e.Suggestion, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (a *Adapter) TodaySnapshot(ctx context.Context, userID string, day time.Time) (*core.TodaySnapshot, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	snap := &core.TodaySnapshot{}

	var score int
	err := a.pool.QueryRow(ctx,
		`SELECT score FROM public.mood_entries WHERE user_id = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at DESC LIMIT 1`,
		userID, start, end).Scan(&score)
	switch err {
	case nil:
		snap.Mood = &score
	case pgx.ErrNoRows:
	default:
		return nil, err
	}

	var hours float64
	err = a.pool.QueryRow(ctx,
		`SELECT hours FROM public.sleep_entries WHERE user_id = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at DESC LIMIT 1`,
		userID, start, end).Scan(&hours)
	switch err {
	case nil:
		snap.Sleep = &hours
	case pgx.ErrNoRows:
	default:
		return nil, err
	}

	j := &core.JournalEntry{}
	err = a.pool.QueryRow(ctx,
		`SELECT id, user_id, text, summary, suggestion, created_at FROM public.journal_entries WHERE user_id = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at DESC LIMIT 1`,
		userID, start, end).Scan(&j.ID, &j.UserID, &j.Text, &j.Summary, &j.Suggestion, &j.CreatedAt)
	switch err {
	case nil:
		snap.Journal = j
	case pgx.ErrNoRows:
	default:
		return nil, err
	}

	return snap, nil
}

func (a *Adapter) DeleteSleepByUser(ctx context.Context, userID string) error {
	_, err := a.pool.Exec(ctx, `DELETE FROM public.sleep_entries WHERE user_id = $1`, userID)
	return err
}

func (a *Adapter) DeleteMoodByUser(ctx context.Context, userID string) error {
	_, err := a.pool.Exec(ctx, `DELETE FROM public.mood_entries WHERE user_id = $1`, userID)
	return err
}

func (a *Adapter) DeleteJournalsByUser(ctx context.Context, userID string) error {
	_, err := a.pool.Exec(ctx, `DELETE FROM public.journal_entries WHERE user_id = $1`, userID)
	return err
}

func (a *Adapter) DeleteSessionLogsByUser(ctx context.Context, userID string) error {
	_, err := a.pool.Exec(ctx, `DELETE FROM public.session_logs WHERE user_id = $1`, userID)
	return err
}
