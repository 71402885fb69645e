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

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings   []store.Setting
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	timerMinutes *string
	timerSeconds *string
	timerDesc    *string
}

func newSettingsModel(s *store.Store) settingsModel {
	tm, ts, td := "", "", ""
	return settingsModel{
		store:        s,
		timerMinutes: &tm,
		timerSeconds: &ts,
		timerDesc:    &td,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, _ := s.store.GetAllSettings()
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	// Load current values
	*s.timerMinutes = s.getVal("timer_minutes", "25")
	*s.timerSeconds = s.getVal("timer_seconds", "0")
	*s.timerDesc = s.getVal("timer_description", "Focus Time")

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Default minutes").Value(s.timerMinutes).Validate(validateSpinner(0, 180)),
			huh.NewInput().Title("Default seconds").Value(s.timerSeconds).Validate(validateSpinner(0, 59)),
			huh.NewInput().Title("Session description").Value(s.timerDesc),
		).Title("Timer"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.saveSettings()
		return s, s.refresh()
	}

	return s, cmd
}

func (s settingsModel) saveSettings() {
	s.store.SetSetting("timer_minutes", strings.TrimSpace(*s.timerMinutes))
	s.store.SetSetting("timer_seconds", strings.TrimSpace(*s.timerSeconds))
	s.store.SetSetting("timer_description", strings.TrimSpace(*s.timerDesc))
}

func (s settingsModel) getVal(k, fallback string) string {
	v, err := s.store.GetSetting(k)
	if err != nil {
		return fallback
	}
	return v
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		formView := s.form.View()
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", formView),
		)
	}

	title := titleStyle.Render("Settings")
	hint := mutedStyle.Render("Press enter to edit settings")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for _, setting := range s.settings {
		label := lipgloss.NewStyle().Width(24).Render(setting.Key)
		value := highlightStyle.Render(formatSettingValue(setting.Key, setting.Value))
		rows = append(rows, fmt.Sprintf("  %s %s", label, value))
	}

	rows = append(rows, "")
	rows = append(rows, hint)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func formatSettingValue(k, v string) string {
	switch k {
	case "timer_minutes":
		if n, err := strconv.Atoi(v); err == nil {
			return fmt.Sprintf("%d min", n)
		}
	case "timer_seconds":
		if n, err := strconv.Atoi(v); err == nil {
			return fmt.Sprintf("%d sec", n)
		}
	}
	return v
}
