package taskstore

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrValidation is returned when input to a store operation fails validation.
var ErrValidation = errors.New("task validation failed")

// ValidationError wraps ErrValidation with details about the validation failure.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("task validation failed: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("task validation failed: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// errEmptyTitle is returned by Add and Update for blank titles.
func errEmptyTitle() error {
	return &ValidationError{Field: "title", Reason: "task title cannot be empty"}
}

// checkUTF8 rejects text that the storage codecs cannot write back unchanged.
func checkUTF8(field, value string) error {
	if utf8.ValidString(value) {
		return nil
	}
	return &ValidationError{Field: field, Reason: "task " + field + " is not valid UTF-8"}
}

// TaskUpdate describes a partial edit of a task.
// A nil field leaves the stored value unchanged.
type TaskUpdate struct {
	Title       *string
	Description *string
}

// Store defines the interface for task persistence and retrieval.
// Unknown IDs are reported through the boolean results, never as errors.
type Store interface {
	// Add creates a PENDING task with a generated ID.
	// Returns ValidationError if the trimmed title is empty.
	Add(title, description string) (Task, error)

	// List returns all tasks in insertion order.
	List() []Task

	// Get retrieves a task by its ID.
	Get(id string) (Task, bool)

	// Update applies a partial edit and refreshes UpdatedAt.
	// Returns ValidationError if a supplied title is blank; nothing is changed then.
	Update(id string, upd TaskUpdate) (Task, bool, error)

	// Delete removes a task by its ID.
	Delete(id string) bool

	// SetComplete marks a task COMPLETE.
	SetComplete(id string) bool

	// SetIncomplete marks a task PENDING.
	SetIncomplete(id string) bool

	// ToggleStatus flips a task between PENDING and COMPLETE and returns the new status.
	ToggleStatus(id string) (TaskStatus, bool)
}
