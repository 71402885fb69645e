package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/studyzone/internal/store"
)

// moodWindowDays is the lookback for the analysis chart and listing.
const moodWindowDays = 4

// moodModel is the emotional tracker: a quick entry form plus a
// frequency chart and listing over the last few days.
type moodModel struct {
	store  *store.Store
	width  int
	height int

	entries []store.EmotionalEntry
	chart   barchart.Model

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formMood   *string
	formRating *int
	formNotes  *string
}

func newMoodModel(s *store.Store) moodModel {
	mood, notes := "", ""
	rating := 5
	return moodModel{
		store:      s,
		chart:      barchart.New(60, 10),
		formMood:   &mood,
		formRating: &rating,
		formNotes:  &notes,
	}
}

func (m *moodModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m moodModel) refresh() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.store.GetRecentEmotionalEntries(moodWindowDays)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return moodDataMsg{entries: entries}
	}
}

func (m moodModel) update(msg tea.Msg) (moodModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case moodDataMsg:
		m.entries = msg.entries
		m.buildChart()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.New):
			return m.showEntryForm()
		}
	}
	return m, nil
}

func (m moodModel) showEntryForm() (moodModel, tea.Cmd) {
	*m.formMood = store.Moods[0]
	*m.formRating = 5
	*m.formNotes = ""

	moodOpts := make([]huh.Option[string], len(store.Moods))
	for i, mood := range store.Moods {
		moodOpts[i] = huh.NewOption(mood, mood)
	}
	ratingOpts := make([]huh.Option[int], 10)
	for i := 0; i < 10; i++ {
		ratingOpts[i] = huh.NewOption(fmt.Sprintf("%d", i+1), i+1)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("How are you feeling?").Options(moodOpts...).Value(m.formMood),
			huh.NewSelect[int]().Title("Rate your day (1-10)").Options(ratingOpts...).Value(m.formRating),
			huh.NewText().Title("Notes (optional)").Value(m.formNotes),
		),
	).WithShowHelp(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m moodModel) updateForm(msg tea.Msg) (moodModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		_, err := m.store.AddEmotionalEntry(*m.formMood, *m.formRating, strings.TrimSpace(*m.formNotes))
		if err != nil {
			return m, errStatus(err)
		}
		return m, tea.Batch(m.refresh(), okStatus("Mood entry saved"))
	}

	return m, cmd
}

// moodCounts tallies how often each mood appears in the entries.
func moodCounts(entries []store.EmotionalEntry) map[string]int {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Mood]++
	}
	return counts
}

// ratingTier buckets a day rating for display: 2 good, 1 okay, 0 rough.
func ratingTier(rating int) int {
	switch {
	case rating >= 8:
		return 2
	case rating >= 5:
		return 1
	default:
		return 0
	}
}

func ratingStyle(rating int) lipgloss.Style {
	switch ratingTier(rating) {
	case 2:
		return ratingHighStyle
	case 1:
		return ratingMidStyle
	default:
		return ratingLowStyle
	}
}

func (m *moodModel) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	m.chart = barchart.New(chartWidth, 10)

	counts := moodCounts(m.entries)

	// One bar per mood that actually occurred, in canonical order so
	// colors stay stable between refreshes.
	var bars []barchart.BarData
	for i, mood := range store.Moods {
		n, ok := counts[mood]
		if !ok {
			continue
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(moodColors[i%len(moodColors)]))
		bars = append(bars, barchart.BarData{
			Label: mood,
			Values: []barchart.BarValue{
				{Name: mood, Value: float64(n), Style: style},
			},
		})
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m moodModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("How Do You Feel Today?")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View())
		return panelStyle.Width(w).Render(content)
	}

	header := titleStyle.Render("Mood Analysis") + "  " +
		mutedStyle.Render(fmt.Sprintf("last %d days", moodWindowDays))

	if len(m.entries) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			mutedStyle.Render(fmt.Sprintf("No data for last %d days. Press n to log your mood.", moodWindowDays)),
		)
		return panelStyle.Width(w).Render(content)
	}

	chartView := m.chart.View()
	tableView := m.renderEntryTable(w)
	nav := mutedStyle.Render("  n: new entry")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", chartView, "", tableView, "", nav,
		),
	)
}

func (m moodModel) renderEntryTable(w int) string {
	var rows []string
	headerRow := mutedStyle.Render(fmt.Sprintf("  %-12s %-10s %6s  %s", "Date", "Mood", "Rating", "Notes"))
	rows = append(rows, headerRow)
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 54))))

	for _, e := range m.entries {
		rating := ratingStyle(e.DayRating).Render(fmt.Sprintf("%6d", e.DayRating))
		notes := truncate(e.Notes, 30)
		rows = append(rows, fmt.Sprintf("  %-12s %-10s %s  %s",
			e.Date, e.Mood, rating, mutedStyle.Render(notes),
		))
	}

	return strings.Join(rows, "\n")
}
