// Package taskstore provides task persistence and retrieval for the todo CLI.
package taskstore

import (
	"fmt"
	"strings"
	"time"
)

// TaskStatus represents the completion state of a task.
type TaskStatus string

// Valid task status values.
const (
	StatusPending  TaskStatus = "PENDING"
	StatusComplete TaskStatus = "COMPLETE"
)

// validStatuses contains all valid status values for quick lookup.
var validStatuses = map[TaskStatus]bool{
	StatusPending:  true,
	StatusComplete: true,
}

// IsValid returns true if the status is a valid TaskStatus value.
func (s TaskStatus) IsValid() bool {
	return validStatuses[s]
}

func (s TaskStatus) String() string {
	return string(s)
}

// Toggled returns the opposite status.
func (s TaskStatus) Toggled() TaskStatus {
	if s == StatusComplete {
		return StatusPending
	}
	return StatusComplete
}

// MarshalText implements encoding.TextMarshaler.
func (s TaskStatus) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid task status: %q", string(s))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Unknown status names are rejected.
func (s *TaskStatus) UnmarshalText(text []byte) error {
	status, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// ParseStatus converts a status name into a TaskStatus.
func ParseStatus(name string) (TaskStatus, error) {
	status := TaskStatus(name)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid task status: %q", name)
	}
	return status, nil
}

// Task represents a single todo item.
type Task struct {
	// ID is the unique identifier for the task.
	ID string

	// Title is the short summary of the task. Never blank once stored.
	Title string

	// Description is optional free text.
	Description string

	// Status is the completion state of the task.
	Status TaskStatus

	// CreatedAt is when the task was created.
	CreatedAt time.Time

	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time
}

// IsComplete reports whether the task is marked COMPLETE.
func (t Task) IsComplete() bool {
	return t.Status == StatusComplete
}

// Validate checks that the task has all required fields and valid values.
// Returns an error describing the first validation failure, or nil if valid.
func (t *Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task id is required")
	}

	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title is required")
	}

	if !t.Status.IsValid() {
		return fmt.Errorf("task status is invalid: %q", t.Status)
	}

	if t.CreatedAt.IsZero() {
		return fmt.Errorf("task created_at is required")
	}

	if t.UpdatedAt.IsZero() {
		return fmt.Errorf("task updated_at is required")
	}

	if t.UpdatedAt.Before(t.CreatedAt) {
		return fmt.Errorf("task updated_at is before created_at")
	}

	return nil
}
