package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// AddTask inserts a new task and returns it. Title validation is the
// caller's responsibility; the store accepts whatever it is given.
func (s *Store) AddTask(title, description, dueDate string) (*Task, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`INSERT INTO tasks (title, description, due_date, created_at) VALUES (?, ?, ?, ?)`,
		title, description, dueDate, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetTask(id)
}

func (s *Store) GetTask(id int64) (*Task, error) {
	t := &Task{}
	var completed int
	var createdAt string
	err := s.db.QueryRow(
		`SELECT id, title, description, due_date, completed, created_at FROM tasks WHERE id = ?`, id,
	).Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &completed, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get task %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}
	t.Completed = completed == 1
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return t, nil
}

// GetAllTasks returns every task ordered by due_date descending.
// Ties are broken by id descending (newest first).
func (s *Store) GetAllTasks() ([]Task, error) {
	rows, err := s.db.Query(
		`SELECT id, title, description, due_date, completed, created_at
		 FROM tasks ORDER BY due_date DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

// GetTasksByDate returns tasks whose due_date matches exactly,
// ordered by created_at ascending (ties by id ascending).
func (s *Store) GetTasksByDate(date string) ([]Task, error) {
	rows, err := s.db.Query(
		`SELECT id, title, description, due_date, completed, created_at
		 FROM tasks WHERE due_date = ? ORDER BY created_at ASC, id ASC`, date,
	)
	if err != nil {
		return nil, fmt.Errorf("tasks by date: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

// UpdateTask replaces every mutable field of the task. A missing id is a
// silent no-op: no row is created and no error is returned.
func (s *Store) UpdateTask(id int64, title, description, dueDate string, completed bool) error {
	c := 0
	if completed {
		c = 1
	}
	_, err := s.db.Exec(
		`UPDATE tasks SET title = ?, description = ?, due_date = ?, completed = ? WHERE id = ?`,
		title, description, dueDate, c, id,
	)
	if err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}
	return nil
}

// DeleteTask removes the task; a missing id is a no-op.
func (s *Store) DeleteTask(id int64) error {
	_, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

func scanTasks(rows *sql.Rows) ([]Task, error) {
	var tasks []Task
	for rows.Next() {
		var t Task
		var completed int
		var createdAt string
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &completed, &createdAt); err != nil {
			return nil, err
		}
		t.Completed = completed == 1
		t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
