package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/studyzone/internal/store"
)

var errEmptyTitle = fmt.Errorf("title must not be empty")

// tasksModel is the task list plus the add/edit/delete flows. The
// cursor-to-id mapping lives in the tasks slice and is rebuilt on every
// refresh; row position never stands in for a task id.
type tasksModel struct {
	store  *store.Store
	width  int
	height int

	tasks  []store.Task
	cursor int

	formActive bool
	form       *huh.Form
	formType   string // "new", "edit", "delete"

	// Form field pointers (survive value copies)
	formTitle     *string
	formDesc      *string
	formDue       *string
	formCompleted *bool
	formConfirm   *bool

	editingID int64
}

func newTasksModel(s *store.Store) tasksModel {
	title, desc, due := "", "", ""
	completed, confirm := false, false
	return tasksModel{
		store:         s,
		formTitle:     &title,
		formDesc:      &desc,
		formDue:       &due,
		formCompleted: &completed,
		formConfirm:   &confirm,
	}
}

func (t *tasksModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t tasksModel) refresh() tea.Cmd {
	return func() tea.Msg {
		tasks, err := t.store.GetAllTasks()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return tasksDataMsg{tasks: tasks}
	}
}

func (t tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if t.formActive && t.form != nil {
		return t.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tasksDataMsg:
		t.tasks = msg.tasks
		if t.cursor >= len(t.tasks) {
			t.cursor = max(0, len(t.tasks)-1)
		}
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if t.cursor > 0 {
				t.cursor--
			}
		case key.Matches(msg, keys.Down):
			if t.cursor < len(t.tasks)-1 {
				t.cursor++
			}
		case key.Matches(msg, keys.New):
			return t.showNewForm()
		case key.Matches(msg, keys.Enter):
			if len(t.tasks) > 0 {
				return t.showEditForm(t.tasks[t.cursor])
			}
		case key.Matches(msg, keys.Delete):
			if len(t.tasks) > 0 {
				return t.showDeleteConfirm(t.tasks[t.cursor])
			}
		}
	}
	return t, nil
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errEmptyTitle
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(store.DateFormat, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func (t tasksModel) showNewForm() (tasksModel, tea.Cmd) {
	*t.formTitle = ""
	*t.formDesc = ""
	*t.formDue = time.Now().Format(store.DateFormat)
	t.formType = "new"

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Task Title").Value(t.formTitle).Validate(validateTitle),
			huh.NewText().Title("Description").Value(t.formDesc),
			huh.NewInput().Title("Due Date (YYYY-MM-DD)").Value(t.formDue).Validate(validateDate),
		),
	).WithShowHelp(true).WithShowErrors(true)

	t.formActive = true
	return t, t.form.Init()
}

func (t tasksModel) showEditForm(task store.Task) (tasksModel, tea.Cmd) {
	*t.formTitle = task.Title
	*t.formDesc = task.Description
	*t.formDue = task.DueDate
	*t.formCompleted = task.Completed
	t.formType = "edit"
	t.editingID = task.ID

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Task Title").Value(t.formTitle).Validate(validateTitle),
			huh.NewText().Title("Description").Value(t.formDesc),
			huh.NewInput().Title("Due Date (YYYY-MM-DD)").Value(t.formDue).Validate(validateDate),
			huh.NewConfirm().Title("Completed").Value(t.formCompleted),
		),
	).WithShowHelp(true).WithShowErrors(true)

	t.formActive = true
	return t, t.form.Init()
}

func (t tasksModel) showDeleteConfirm(task store.Task) (tasksModel, tea.Cmd) {
	*t.formConfirm = false
	t.formType = "delete"
	t.editingID = task.ID

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", task.Title)).
				Affirmative("Yes").
				Negative("No").
				Value(t.formConfirm),
		),
	).WithShowHelp(true)

	t.formActive = true
	return t, t.form.Init()
}

func (t tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
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
		switch t.formType {
		case "new":
			return t.saveNew()
		case "edit":
			return t.saveEdit()
		case "delete":
			if *t.formConfirm {
				if err := t.store.DeleteTask(t.editingID); err != nil {
					return t, errStatus(err)
				}
				return t, tea.Batch(t.refresh(), okStatus("Task deleted"))
			}
			return t, nil
		}
	}

	return t, cmd
}

func (t tasksModel) saveNew() (tasksModel, tea.Cmd) {
	title := strings.TrimSpace(*t.formTitle)
	if title == "" {
		// Validation also runs inside the form; this guards direct calls.
		return t, errStatus(errEmptyTitle)
	}
	_, err := t.store.AddTask(title, strings.TrimSpace(*t.formDesc), strings.TrimSpace(*t.formDue))
	if err != nil {
		return t, errStatus(err)
	}
	*t.formTitle = ""
	*t.formDesc = ""
	*t.formDue = ""
	return t, tea.Batch(t.refresh(), okStatus("Task added"))
}

func (t tasksModel) saveEdit() (tasksModel, tea.Cmd) {
	title := strings.TrimSpace(*t.formTitle)
	if title == "" {
		return t, errStatus(errEmptyTitle)
	}
	err := t.store.UpdateTask(t.editingID, title,
		strings.TrimSpace(*t.formDesc), strings.TrimSpace(*t.formDue), *t.formCompleted)
	if err != nil {
		return t, errStatus(err)
	}
	return t, tea.Batch(t.refresh(), okStatus("Task updated"))
}

func errStatus(err error) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
	}
}

func okStatus(text string) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text}
	}
}

func (t tasksModel) view() string {
	w := t.width - 4

	if t.formActive && t.form != nil {
		var title string
		switch t.formType {
		case "new":
			title = titleStyle.Render("Add New Task")
		case "edit":
			title = titleStyle.Render("Edit Task")
		case "delete":
			title = titleStyle.Render("Confirm Delete")
		}
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", t.form.View())
		return panelStyle.Width(w).Render(content)
	}

	title := titleStyle.Render("All Tasks")

	if len(t.tasks) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No tasks yet. Press n to create one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-2s %-32s %-12s", "", "Title", "Due"))
	rows = append(rows, header)

	for i, task := range t.tasks {
		cursor := "  "
		style := normalItemStyle
		if i == t.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		icon := taskStatusIcon(task.Completed)
		if task.Completed {
			icon = successStyle.Render(icon)
		} else {
			icon = mutedStyle.Render(icon)
		}
		row := style.Render(fmt.Sprintf("%s%s %-32s %-12s", cursor, icon, task.Title, task.DueDate))
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  enter: edit  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
