// Package export writes tasks and mood entries to flat files for use
// outside the app.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sadopc/studyzone/internal/store"
)

func ToCSV(tasks []store.Task, entries []store.EmotionalEntry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Tasks section
	if err := w.Write([]string{"Type", "ID", "Date", "Title", "Description", "Completed"}); err != nil {
		return err
	}
	for _, t := range tasks {
		row := []string{
			"task",
			fmt.Sprintf("%d", t.ID),
			t.DueDate,
			t.Title,
			t.Description,
			fmt.Sprintf("%t", t.Completed),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	// Mood section reuses the same columns: Title carries the mood,
	// Description the notes, Completed the rating.
	for _, e := range entries {
		row := []string{
			"mood",
			fmt.Sprintf("%d", e.ID),
			e.Date,
			e.Mood,
			e.Notes,
			fmt.Sprintf("%d", e.DayRating),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
