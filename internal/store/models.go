package store

import "time"

// DateFormat is how calendar dates are stored: ISO-8601, no time of day.
const DateFormat = "2006-01-02"

type Task struct {
	ID          int64
	Title       string
	Description string
	DueDate     string // YYYY-MM-DD
	Completed   bool
	CreatedAt   time.Time
}

type EmotionalEntry struct {
	ID        int64
	Date      string // YYYY-MM-DD, always "today" at creation
	Mood      string
	DayRating int // 1..10
	Notes     string
	CreatedAt time.Time
}

type Setting struct {
	Key   string
	Value string
}

// Moods is the fixed set offered by the input surface. Entries are stored
// as plain text; nothing below the UI enforces membership.
var Moods = []string{
	"Happy", "Sad", "Anxious", "Excited",
	"Tired", "Angry", "Peaceful", "Stressed",
}
