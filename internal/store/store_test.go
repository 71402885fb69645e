package store

import (
	"errors"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// Should have run migration v1
	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/studyzone.db"
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen — should succeed and not re-migrate
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s2.Close()
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("empty path")
	}
}

func TestPragmasConfigured(t *testing.T) {
	s := newTestStore(t)

	var fk int
	s.db.QueryRow("PRAGMA foreign_keys").Scan(&fk)
	if fk != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", fk)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	// Running migrate again should be a no-op
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

// ============================================================
// Tasks
// ============================================================

func TestAddAndGetTask(t *testing.T) {
	s := newTestStore(t)
	task, err := s.AddTask("Study", "chapters 1-3", "2025-01-10")
	if err != nil {
		t.Fatal(err)
	}
	if task.Title != "Study" || task.Description != "chapters 1-3" || task.DueDate != "2025-01-10" {
		t.Fatalf("unexpected task: %+v", task)
	}
	if task.ID == 0 {
		t.Fatal("expected non-zero ID")
	}
	if task.Completed {
		t.Fatal("new task should not be completed")
	}
	if task.CreatedAt.IsZero() {
		t.Fatal("CreatedAt should be set")
	}

	fetched, err := s.GetTask(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if fetched.Title != "Study" {
		t.Fatalf("GetTask returned wrong title: %s", fetched.Title)
	}
}

func TestGetTaskNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetTask(999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetAllTasksOrder(t *testing.T) {
	s := newTestStore(t)
	s.AddTask("old", "", "2025-01-05")
	s.AddTask("new", "", "2025-01-20")
	s.AddTask("mid", "", "2025-01-10")

	tasks, err := s.GetAllTasks()
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	// Due date descending
	if tasks[0].Title != "new" || tasks[1].Title != "mid" || tasks[2].Title != "old" {
		t.Fatalf("wrong order: %s, %s, %s", tasks[0].Title, tasks[1].Title, tasks[2].Title)
	}
}

func TestGetAllTasksSameDueDateNewestFirst(t *testing.T) {
	s := newTestStore(t)
	first, _ := s.AddTask("first", "", "2025-01-10")
	second, _ := s.AddTask("second", "", "2025-01-10")

	tasks, _ := s.GetAllTasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != second.ID || tasks[1].ID != first.ID {
		t.Fatal("ties on due_date should be newest first")
	}
}

func TestGetAllTasksEmpty(t *testing.T) {
	s := newTestStore(t)
	tasks, err := s.GetAllTasks()
	if err != nil {
		t.Fatal(err)
	}
	if tasks != nil {
		t.Fatalf("expected nil slice, got %d items", len(tasks))
	}
}

func TestGetTasksByDate(t *testing.T) {
	s := newTestStore(t)
	s.AddTask("Study", "", "2025-01-10")
	s.AddTask("Other day", "", "2025-01-11")

	tasks, err := s.GetTasksByDate("2025-01-10")
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected exactly 1 task, got %d", len(tasks))
	}
	if tasks[0].Title != "Study" || tasks[0].Completed {
		t.Fatalf("unexpected task: %+v", tasks[0])
	}
}

func TestGetTasksByDateInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	s.AddTask("a", "", "2025-01-10")
	s.AddTask("b", "", "2025-01-10")
	s.AddTask("c", "", "2025-01-10")

	tasks, _ := s.GetTasksByDate("2025-01-10")
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "a" || tasks[1].Title != "b" || tasks[2].Title != "c" {
		t.Fatal("tasks for a date should come back in insertion order")
	}
}

func TestGetTasksByDateNoMatch(t *testing.T) {
	s := newTestStore(t)
	s.AddTask("Study", "", "2025-01-10")

	tasks, err := s.GetTasksByDate("2025-02-01")
	if err != nil {
		t.Fatal(err)
	}
	if tasks != nil {
		t.Fatal("expected nil slice for date with no tasks")
	}
}

func TestUpdateTask(t *testing.T) {
	s := newTestStore(t)
	task, _ := s.AddTask("Old", "old desc", "2025-01-10")

	err := s.UpdateTask(task.ID, "New", "new desc", "2025-02-20", true)
	if err != nil {
		t.Fatal(err)
	}
	updated, _ := s.GetTask(task.ID)
	if updated.Title != "New" || updated.Description != "new desc" || updated.DueDate != "2025-02-20" {
		t.Fatalf("update failed: %+v", updated)
	}
	if !updated.Completed {
		t.Fatal("completed flag should be set")
	}
}

func TestUpdateTaskMissingIDNoOp(t *testing.T) {
	s := newTestStore(t)
	s.AddTask("keep", "", "2025-01-10")

	// Missing id: no error, no row created
	if err := s.UpdateTask(999, "ghost", "", "2025-01-01", false); err != nil {
		t.Fatalf("expected no error for missing id, got %v", err)
	}
	tasks, _ := s.GetAllTasks()
	if len(tasks) != 1 {
		t.Fatalf("no row should have been created, got %d tasks", len(tasks))
	}
}

func TestDeleteTask(t *testing.T) {
	s := newTestStore(t)
	task, _ := s.AddTask("Doomed", "", "2025-01-10")

	if err := s.DeleteTask(task.ID); err != nil {
		t.Fatal(err)
	}
	_, err := s.GetTask(task.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatal("task should be gone")
	}
}

func TestDeleteTaskMissingIDNoOp(t *testing.T) {
	s := newTestStore(t)
	if err := s.DeleteTask(999); err != nil {
		t.Fatalf("expected no error for missing id, got %v", err)
	}
}

// ============================================================
// Emotional entries
// ============================================================

func TestAddEmotionalEntry(t *testing.T) {
	s := newTestStore(t)
	e, err := s.AddEmotionalEntry("Happy", 8, "good day")
	if err != nil {
		t.Fatal(err)
	}
	if e.Mood != "Happy" || e.DayRating != 8 || e.Notes != "good day" {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.ID == 0 {
		t.Fatal("expected non-zero ID")
	}
	// Date is always stamped with today, never caller-supplied
	if e.Date != time.Now().Format(DateFormat) {
		t.Fatalf("expected today's date, got %s", e.Date)
	}
	if e.CreatedAt.IsZero() {
		t.Fatal("CreatedAt should be set")
	}
}

func TestAddEmotionalEntryMultiplePerDay(t *testing.T) {
	s := newTestStore(t)
	s.AddEmotionalEntry("Happy", 8, "")
	s.AddEmotionalEntry("Tired", 4, "")

	entries, err := s.GetRecentEmotionalEntries(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries for today, got %d", len(entries))
	}
}

func TestGetEmotionalEntriesRangeInclusive(t *testing.T) {
	s := newTestStore(t)
	insertEntryOn(t, s, "2025-01-01", "Happy", 7)
	insertEntryOn(t, s, "2025-01-03", "Sad", 3)
	insertEntryOn(t, s, "2025-01-05", "Excited", 9)

	entries, err := s.GetEmotionalEntries("2025-01-01", "2025-01-03")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries (both endpoints inclusive), got %d", len(entries))
	}
	// Date ascending
	if entries[0].Date != "2025-01-01" || entries[1].Date != "2025-01-03" {
		t.Fatal("entries should be ordered by date ascending")
	}
}

func TestGetEmotionalEntriesEmpty(t *testing.T) {
	s := newTestStore(t)
	entries, err := s.GetEmotionalEntries("2025-01-01", "2025-12-31")
	if err != nil {
		t.Fatal(err)
	}
	if entries != nil {
		t.Fatal("expected nil slice for empty range")
	}
}

func TestGetRecentEmotionalEntries(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()
	insertEntryOn(t, s, now.Format(DateFormat), "Happy", 8)
	insertEntryOn(t, s, now.AddDate(0, 0, -2).Format(DateFormat), "Tired", 5)
	insertEntryOn(t, s, now.AddDate(0, 0, -10).Format(DateFormat), "Sad", 2)

	entries, err := s.GetRecentEmotionalEntries(4)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries within 4 days, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Mood == "Sad" {
			t.Fatal("10-day-old entry should be outside the window")
		}
	}
}

func TestGetAllEmotionalEntries(t *testing.T) {
	s := newTestStore(t)
	insertEntryOn(t, s, "2025-01-05", "Happy", 7)
	insertEntryOn(t, s, "2025-01-01", "Sad", 3)

	entries, err := s.GetAllEmotionalEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Date != "2025-01-01" {
		t.Fatal("oldest entry should come first")
	}
}

// insertEntryOn is a test helper that inserts an entry with an explicit
// date, bypassing AddEmotionalEntry's today-only stamping.
func insertEntryOn(t *testing.T, s *Store, date, mood string, rating int) {
	t.Helper()
	_, err := s.db.Exec(
		`INSERT INTO emotional_entries (date, mood, day_rating, notes, created_at) VALUES (?, ?, ?, '', ?)`,
		date, mood, rating, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("insert entry: %v", err)
	}
}

// ============================================================
// Settings
// ============================================================

func TestSettingsDefaults(t *testing.T) {
	s := newTestStore(t)

	defaults := map[string]string{
		"timer_minutes":     "25",
		"timer_seconds":     "0",
		"timer_description": "Focus Time",
	}

	for k, expected := range defaults {
		val, err := s.GetSetting(k)
		if err != nil {
			t.Fatalf("GetSetting(%q): %v", k, err)
		}
		if val != expected {
			t.Fatalf("GetSetting(%q) = %q, want %q", k, val, expected)
		}
	}
}

func TestSetSetting(t *testing.T) {
	s := newTestStore(t)

	s.SetSetting("timer_minutes", "45")
	val, _ := s.GetSetting("timer_minutes")
	if val != "45" {
		t.Fatalf("expected 45, got %s", val)
	}
}

func TestSetSettingNewKey(t *testing.T) {
	s := newTestStore(t)

	s.SetSetting("custom_key", "custom_value")
	val, err := s.GetSetting("custom_key")
	if err != nil {
		t.Fatal(err)
	}
	if val != "custom_value" {
		t.Fatalf("expected custom_value, got %s", val)
	}
}

func TestSetSettingOverwrite(t *testing.T) {
	s := newTestStore(t)

	s.SetSetting("key", "v1")
	s.SetSetting("key", "v2")
	val, _ := s.GetSetting("key")
	if val != "v2" {
		t.Fatalf("expected v2, got %s", val)
	}
}

func TestGetSettingNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetSetting("nonexistent")
	if err == nil {
		t.Fatal("expected error for missing setting")
	}
}

func TestGetAllSettings(t *testing.T) {
	s := newTestStore(t)
	all, err := s.GetAllSettings()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) < 3 {
		t.Fatalf("expected at least 3 default settings, got %d", len(all))
	}
	// Should be sorted by key
	for i := 1; i < len(all); i++ {
		if all[i-1].Key >= all[i].Key {
			t.Fatalf("settings not sorted: %s >= %s", all[i-1].Key, all[i].Key)
		}
	}
}

func TestTimerDefaultsSeeded(t *testing.T) {
	s := newTestStore(t)
	mins, secs, desc := s.TimerDefaults()
	if mins != 25 || secs != 0 || desc != "Focus Time" {
		t.Fatalf("unexpected seeded defaults: %d:%d %q", mins, secs, desc)
	}
}

func TestSaveTimerDefaultsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	if err := s.SaveTimerDefaults(50, 30, "Deep Work"); err != nil {
		t.Fatal(err)
	}
	mins, secs, desc := s.TimerDefaults()
	if mins != 50 || secs != 30 || desc != "Deep Work" {
		t.Fatalf("round trip failed: %d:%d %q", mins, secs, desc)
	}
}

func TestTimerDefaultsMalformedValue(t *testing.T) {
	s := newTestStore(t)
	s.SetSetting("timer_minutes", "not a number")
	s.SetSetting("timer_description", "")

	mins, _, desc := s.TimerDefaults()
	if mins != 25 {
		t.Fatalf("malformed minutes should fall back to 25, got %d", mins)
	}
	if desc != "Focus Time" {
		t.Fatalf("blank description should fall back, got %q", desc)
	}
}

// ============================================================
// Close safety
// ============================================================

func TestCloseStore(t *testing.T) {
	s, _ := NewMemory()
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
