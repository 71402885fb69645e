package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/studyzone/internal/store"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	TaskCount  int         `json:"task_count"`
	MoodCount  int         `json:"mood_count"`
	Tasks      []jsonTask  `json:"tasks"`
	Moods      []jsonEntry `json:"moods"`
}

type jsonTask struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
}

type jsonEntry struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Mood      string `json:"mood"`
	DayRating int    `json:"day_rating"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at"`
}

func ToJSON(tasks []store.Task, entries []store.EmotionalEntry, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		TaskCount:  len(tasks),
		MoodCount:  len(entries),
	}

	for _, t := range tasks {
		export.Tasks = append(export.Tasks, jsonTask{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			DueDate:     t.DueDate,
			Completed:   t.Completed,
			CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	for _, e := range entries {
		export.Moods = append(export.Moods, jsonEntry{
			ID:        e.ID,
			Date:      e.Date,
			Mood:      e.Mood,
			DayRating: e.DayRating,
			Notes:     e.Notes,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
