package internal

import (
	"fmt"
	"strings"

	"github.com/yarlson/go-todo/internal/taskstore"
)

// Separator is printed after every task block in a listing.
var Separator = strings.Repeat("-", 40)

// TimeLayout is the layout used for task timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// FormatTask renders a task as a multi-line block.
//
// Example:
//
//	ID: task_1a2b3c4d
//	Title: Buy groceries
//	Description: milk, bread
//	Status: PENDING
//	Created: 2026-10-15 09:30:00
//	Updated: 2026-10-15 09:30:00
func FormatTask(t taskstore.Task) string {
	description := t.Description
	if description == "" {
		description = "None"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "ID: %s\n", t.ID)
	fmt.Fprintf(&sb, "Title: %s\n", t.Title)
	fmt.Fprintf(&sb, "Description: %s\n", description)
	fmt.Fprintf(&sb, "Status: %s\n", t.Status)
	fmt.Fprintf(&sb, "Created: %s\n", t.CreatedAt.Format(TimeLayout))
	fmt.Fprintf(&sb, "Updated: %s\n", t.UpdatedAt.Format(TimeLayout))
	return sb.String()
}

// FormatTaskList renders every task followed by a separator line,
// or a placeholder when there are none.
func FormatTaskList(tasks []taskstore.Task) string {
	if len(tasks) == 0 {
		return "No tasks found.\n"
	}

	var sb strings.Builder
	for _, t := range tasks {
		sb.WriteString(FormatTask(t))
		sb.WriteString(Separator)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Summary returns a one-line count of pending and complete tasks.
func Summary(tasks []taskstore.Task) string {
	var done int
	for _, t := range tasks {
		if t.IsComplete() {
			done++
		}
	}
	return fmt.Sprintf("%d tasks: %d pending, %d complete", len(tasks), len(tasks)-done, done)
}
