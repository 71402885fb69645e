package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/studyzone/internal/store"
)

// timerModel is the focus timer view. The countdown engine holds the
// state machine; this model feeds it ticks, renders it, and keeps the
// configured duration in sync with the settings table.
type timerModel struct {
	store  *store.Store
	width  int
	height int

	engine      countdown
	shown       int // seconds last shown, updated per tick
	description string

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formMinutes *string
	formSeconds *string
	formDesc    *string
}

func newTimerModel(s *store.Store) timerModel {
	mins, secs, desc := s.TimerDefaults()
	m, sc, d := "", "", ""
	t := timerModel{
		store:       s,
		engine:      newCountdown(mins, secs),
		description: desc,
		formMinutes: &m,
		formSeconds: &sc,
		formDesc:    &d,
	}
	t.shown = t.engine.remaining
	return t
}

func (t *timerModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

// reloadDefaults re-reads settings into the engine. Only an idle clock
// picks the new duration up immediately.
func (t *timerModel) reloadDefaults() {
	mins, secs, desc := t.store.TimerDefaults()
	t.engine.configure(mins, secs)
	t.description = desc
	if t.engine.state == countdownIdle {
		t.shown = t.engine.remaining
	}
}

func (t timerModel) update(msg tea.Msg) (timerModel, tea.Cmd) {
	if t.formActive && t.form != nil {
		return t.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tickMsg:
		display, completed := t.engine.tick()
		t.shown = display
		if completed {
			desc := t.description
			return t, func() tea.Msg { return timerDoneMsg{description: desc} }
		}
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			if err := t.engine.start(); err != nil {
				return t, func() tea.Msg {
					return statusMsg{text: "Error: " + err.Error(), isError: true}
				}
			}
			t.shown = t.engine.remaining
			return t, nil

		case key.Matches(msg, keys.Pause):
			t.engine.pause()
			return t, nil

		case key.Matches(msg, keys.Reset):
			t.engine.reset()
			t.shown = t.engine.remaining
			return t, nil

		case key.Matches(msg, keys.Edit):
			return t.showConfigureForm()
		}
	}
	return t, nil
}

func (t timerModel) showConfigureForm() (timerModel, tea.Cmd) {
	*t.formMinutes = strconv.Itoa(t.engine.minutes)
	*t.formSeconds = strconv.Itoa(t.engine.seconds)
	*t.formDesc = t.description

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Minutes").Value(t.formMinutes).Validate(validateSpinner(0, 180)),
			huh.NewInput().Title("Seconds").Value(t.formSeconds).Validate(validateSpinner(0, 59)),
			huh.NewInput().Title("Description").Value(t.formDesc),
		),
	).WithShowHelp(true).WithShowErrors(true)

	t.formActive = true
	return t, t.form.Init()
}

func validateSpinner(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

func (t timerModel) updateForm(msg tea.Msg) (timerModel, tea.Cmd) {
	// The clock keeps counting while the form is open; ticks feed the
	// engine, not the form.
	if _, ok := msg.(tickMsg); ok {
		display, completed := t.engine.tick()
		t.shown = display
		if completed {
			desc := t.description
			return t, func() tea.Msg { return timerDoneMsg{description: desc} }
		}
		return t, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			t.formActive = false
			t.form = nil
			return t, nil
		}
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State == huh.StateCompleted {
		t.formActive = false
		mins, _ := strconv.Atoi(strings.TrimSpace(*t.formMinutes))
		secs, _ := strconv.Atoi(strings.TrimSpace(*t.formSeconds))
		t.engine.configure(mins, secs)
		t.description = *t.formDesc
		if t.engine.state == countdownIdle {
			t.shown = t.engine.remaining
		}
		t.store.SaveTimerDefaults(mins, secs, t.description)
		return t, nil
	}

	return t, cmd
}

func (t timerModel) view() string {
	w := t.width - 4

	if t.formActive && t.form != nil {
		title := titleStyle.Render("Configure Timer")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", t.form.View())
		return panelStyle.Width(w).Render(content)
	}

	title := titleStyle.Render("Focus Timer")

	var timeDisplay, indicator string
	switch t.engine.state {
	case countdownRunning:
		timeDisplay = timerRunningStyle.Width(w - 6).Render(formatClock(t.shown))
		indicator = successStyle.Render("●  RUNNING")
	case countdownPaused:
		timeDisplay = timerPausedStyle.Width(w - 6).Render(formatClock(t.shown))
		indicator = warningStyle.Render("⏸  PAUSED")
	case countdownCompleted:
		timeDisplay = timerRunningStyle.Width(w - 6).Render("00:00")
		indicator = successStyle.Render("✔  COMPLETED — " + t.description)
	default:
		timeDisplay = timerStyle.Width(w - 6).Render(formatClock(t.shown))
		indicator = mutedStyle.Render("■  READY")
	}

	descLine := highlightStyle.Render(t.description)
	progress := t.renderProgressBar(w - 10)

	var controls string
	switch t.engine.state {
	case countdownRunning:
		controls = mutedStyle.Render("space: pause  r: reset")
	case countdownPaused:
		controls = mutedStyle.Render("s: resume  r: reset")
	default:
		controls = mutedStyle.Render("s: start  c: configure  r: reset")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		timeDisplay,
		indicator,
		descLine,
		"",
		progress,
		"",
		controls,
	)

	if t.engine.running() {
		return activePanelStyle.Width(w).Render(content)
	}
	return panelStyle.Width(w).Render(content)
}

func (t timerModel) renderProgressBar(w int) string {
	if w < 12 {
		w = 12
	}
	pct := t.engine.progress()
	barWidth := w - 5
	filled := barWidth * pct / 100
	bar := successStyle.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf("%s %3d%%", bar, pct)
}
