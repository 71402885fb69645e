package store

import (
	"fmt"
	"strconv"
)

// Keys for the countdown configuration, seeded by the migration.
const (
	keyTimerMinutes     = "timer_minutes"
	keyTimerSeconds     = "timer_seconds"
	keyTimerDescription = "timer_description"
)

// TimerDefaults returns the configured countdown duration and session
// description, falling back to 25:00 "Focus Time" for missing or
// malformed rows.
func (s *Store) TimerDefaults() (minutes, seconds int, description string) {
	minutes, seconds, description = 25, 0, "Focus Time"
	if v, err := s.GetSetting(keyTimerMinutes); err == nil {
		if n, err := strconv.Atoi(v); err == nil {
			minutes = n
		}
	}
	if v, err := s.GetSetting(keyTimerSeconds); err == nil {
		if n, err := strconv.Atoi(v); err == nil {
			seconds = n
		}
	}
	if v, err := s.GetSetting(keyTimerDescription); err == nil && v != "" {
		description = v
	}
	return minutes, seconds, description
}

// SaveTimerDefaults persists the countdown configuration.
func (s *Store) SaveTimerDefaults(minutes, seconds int, description string) error {
	if err := s.SetSetting(keyTimerMinutes, strconv.Itoa(minutes)); err != nil {
		return err
	}
	if err := s.SetSetting(keyTimerSeconds, strconv.Itoa(seconds)); err != nil {
		return err
	}
	return s.SetSetting(keyTimerDescription, description)
}

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *Store) GetAllSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}
