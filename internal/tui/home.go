package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/studyzone/internal/quote"
	"github.com/sadopc/studyzone/internal/store"
)

// homeModel is the landing view: thought of the day on top, a browsable
// per-day task list underneath. Left/right step the date; t jumps back
// to today.
type homeModel struct {
	store  *store.Store
	quotes *quote.Client
	width  int
	height int

	date    string // currently browsed date, YYYY-MM-DD
	tasks   []store.Task
	thought string
}

func newHomeModel(s *store.Store, q *quote.Client) homeModel {
	return homeModel{
		store:   s,
		quotes:  q,
		date:    time.Now().Format(store.DateFormat),
		thought: "Loading thought of the day...",
	}
}

func (h *homeModel) setSize(w, height int) {
	h.width = w
	h.height = height
}

// fetchThought loads the daily quote off the update loop. The client
// never fails; it degrades to a built-in fallback.
func (h homeModel) fetchThought() tea.Cmd {
	return func() tea.Msg {
		return thoughtMsg{text: h.quotes.ThoughtOfTheDay()}
	}
}

func (h homeModel) refresh() tea.Cmd {
	date := h.date
	return func() tea.Msg {
		tasks, err := h.store.GetTasksByDate(date)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return homeTasksMsg{date: date, tasks: tasks}
	}
}

func (h homeModel) update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case thoughtMsg:
		h.thought = msg.text
		return h, nil

	case homeTasksMsg:
		// Stale responses from a quickly-stepped date are dropped.
		if msg.date == h.date {
			h.tasks = msg.tasks
		}
		return h, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			return h.stepDate(-1)
		case key.Matches(msg, keys.Right):
			return h.stepDate(1)
		case key.Matches(msg, keys.Today):
			h.date = time.Now().Format(store.DateFormat)
			return h, h.refresh()
		}
	}
	return h, nil
}

func (h homeModel) stepDate(days int) (homeModel, tea.Cmd) {
	d, err := time.Parse(store.DateFormat, h.date)
	if err != nil {
		d = time.Now()
	}
	h.date = d.AddDate(0, 0, days).Format(store.DateFormat)
	return h, h.refresh()
}

func (h homeModel) view() string {
	w := h.width - 4

	thought := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Thought of the Day"),
		"",
		quoteStyle.Width(w-6).Render(h.thought),
	)
	thoughtPanel := panelStyle.Width(w).Render(thought)

	dateLabel := h.date
	if h.date == time.Now().Format(store.DateFormat) {
		dateLabel += " (today)"
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Tasks for ")+highlightStyle.Render(dateLabel))
	rows = append(rows, "")

	if len(h.tasks) == 0 {
		rows = append(rows, mutedStyle.Render("No tasks for this date."))
	} else {
		for _, task := range h.tasks {
			icon := taskStatusIcon(task.Completed)
			if task.Completed {
				icon = successStyle.Render(icon)
			} else {
				icon = mutedStyle.Render(icon)
			}
			line := fmt.Sprintf("%s %s", icon, task.Title)
			if task.Description != "" {
				line += mutedStyle.Render("  — " + task.Description)
			}
			rows = append(rows, normalItemStyle.Render(line))
		}
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("←/→: browse days  t: today"))

	tasksPanel := panelStyle.Width(w).Render(strings.Join(rows, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, thoughtPanel, tasksPanel)
}
