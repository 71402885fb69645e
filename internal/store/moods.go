package store

import (
	"database/sql"
	"fmt"
	"time"
)

// AddEmotionalEntry appends a mood entry dated today. The date is never
// caller-supplied; entries are append-only and multiple entries per day
// are allowed.
func (s *Store) AddEmotionalEntry(mood string, rating int, notes string) (*EmotionalEntry, error) {
	now := time.Now()
	res, err := s.db.Exec(
		`INSERT INTO emotional_entries (date, mood, day_rating, notes, created_at) VALUES (?, ?, ?, ?, ?)`,
		now.Format(DateFormat), mood, rating, notes, now.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("insert emotional entry: %w", err)
	}
	id, _ := res.LastInsertId()

	e := &EmotionalEntry{}
	var createdAt string
	err = s.db.QueryRow(
		`SELECT id, date, mood, day_rating, notes, created_at FROM emotional_entries WHERE id = ?`, id,
	).Scan(&e.ID, &e.Date, &e.Mood, &e.DayRating, &e.Notes, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("get emotional entry %d: %w", id, err)
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return e, nil
}

// GetEmotionalEntries returns entries with date in [startDate, endDate]
// inclusive, ordered by date ascending (ties by id ascending).
func (s *Store) GetEmotionalEntries(startDate, endDate string) ([]EmotionalEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, date, mood, day_rating, notes, created_at
		 FROM emotional_entries WHERE date BETWEEN ? AND ? ORDER BY date ASC, id ASC`,
		startDate, endDate,
	)
	if err != nil {
		return nil, fmt.Errorf("list emotional entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// GetRecentEmotionalEntries returns entries from the last `days` calendar
// days, inclusive of today.
func (s *Store) GetRecentEmotionalEntries(days int) ([]EmotionalEntry, error) {
	now := time.Now()
	end := now.Format(DateFormat)
	start := now.AddDate(0, 0, -days).Format(DateFormat)
	return s.GetEmotionalEntries(start, end)
}

// GetAllEmotionalEntries returns every entry, oldest first.
func (s *Store) GetAllEmotionalEntries() ([]EmotionalEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, date, mood, day_rating, notes, created_at
		 FROM emotional_entries ORDER BY date ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list emotional entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]EmotionalEntry, error) {
	var entries []EmotionalEntry
	for rows.Next() {
		var e EmotionalEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Date, &e.Mood, &e.DayRating, &e.Notes, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
