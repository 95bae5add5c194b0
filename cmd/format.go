package cmd

import (
	"fmt"

	"github.com/yarlson/taskdeck/internal/taskstore"
)

// statusMarker returns the list marker for a task status.
func statusMarker(status taskstore.Status) string {
	if status == taskstore.StatusCompleted {
		return "✓"
	}
	return "○"
}

// formatTaskLine renders a task as a single list line.
func formatTaskLine(task *taskstore.Task) string {
	return fmt.Sprintf("[%s] %d: %s", statusMarker(task.Status), task.ID, task.Title)
}
