package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/studyzone/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewHome viewState = iota
	viewTasks
	viewTimer
	viewMood
	viewSettings
)

var viewNames = []string{"Home", "Tasks", "Timer", "Mood", "Settings"}

// --- Messages ---

type tickMsg time.Time

type statusMsg struct {
	text    string
	isError bool
}

type thoughtMsg struct {
	text string
}

type homeTasksMsg struct {
	date  string
	tasks []store.Task
}

type tasksDataMsg struct {
	tasks []store.Task
}

type moodDataMsg struct {
	entries []store.EmotionalEntry
}

type settingsDataMsg struct {
	settings []store.Setting
}

type timerDoneMsg struct {
	description string
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

// formatClock renders whole seconds as MM:SS.
func formatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// truncate shortens s to at most n runes, ending in an ellipsis. Slicing
// on runes keeps multibyte text intact.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func taskStatusIcon(completed bool) string {
	if completed {
		return "✓"
	}
	return "○"
}
