package taskstore

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// LintIssue is a problem found in a task file, tied to a task when TaskID is set.
type LintIssue struct {
	TaskID  string
	Message string
}

// String returns a formatted string representation of the issue.
func (i LintIssue) String() string {
	if i.TaskID == "" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.TaskID, i.Message)
}

// LintResult contains the results of linting a task set.
type LintResult struct {
	Valid    bool
	Errors   []LintIssue
	Warnings []LintIssue
}

func newLintResult() *LintResult {
	return &LintResult{
		Valid:    true,
		Errors:   []LintIssue{},
		Warnings: []LintIssue{},
	}
}

func (r *LintResult) addError(taskID, msg string) {
	r.Valid = false
	r.Errors = append(r.Errors, LintIssue{TaskID: taskID, Message: msg})
}

// Error returns an error if the lint result is invalid, or nil if valid.
func (r *LintResult) Error() error {
	if r.Valid || len(r.Errors) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(r.Errors))
	for _, issue := range r.Errors {
		msgs = append(msgs, issue.String())
	}

	return fmt.Errorf("%d validation errors:\n%s", len(r.Errors), strings.Join(msgs, "\n"))
}

// LintTaskWithWarnings validates a single task and returns non-fatal warnings.
// now is used to spot timestamps in the future.
func LintTaskWithWarnings(task *Task, now time.Time) ([]string, error) {
	if err := task.Validate(); err != nil {
		return nil, err
	}

	var warnings []string
	if task.Title != strings.TrimSpace(task.Title) {
		warnings = append(warnings, "title has leading or trailing whitespace")
	}
	if !strings.HasPrefix(task.ID, IDPrefix) {
		warnings = append(warnings, fmt.Sprintf("id does not start with %q", IDPrefix))
	}
	if task.Description != "" && strings.TrimSpace(task.Description) == strings.TrimSpace(task.Title) {
		warnings = append(warnings, "description repeats the title")
	}
	if task.UpdatedAt.After(now) {
		warnings = append(warnings, "updated_at is in the future")
	}

	return warnings, nil
}

// LintTaskSet validates every task and checks that IDs are unique.
func LintTaskSet(tasks []Task, now time.Time) *LintResult {
	result := newLintResult()

	seen := make(map[string]bool, len(tasks))
	for i := range tasks {
		task := &tasks[i]

		warnings, err := LintTaskWithWarnings(task, now)
		if err != nil {
			result.addError(task.ID, err.Error())
		}
		for _, w := range warnings {
			result.Warnings = append(result.Warnings, LintIssue{TaskID: task.ID, Message: w})
		}

		if task.ID == "" {
			continue
		}
		if seen[task.ID] {
			result.addError(task.ID, "duplicate task id")
		}
		seen[task.ID] = true
	}

	return result
}

// LintFile reads and lints a task file. format may be empty to infer it from
// the path. A file that cannot be parsed yields a single file-level error;
// only read failures are returned as errors.
func LintFile(path, format string, now time.Time) (*LintResult, error) {
	format, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = FormatForPath(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}

	tasks, err := decodeTasks(codecFor(format), data)
	if err != nil {
		result := newLintResult()
		result.addError("", err.Error())
		return result, nil
	}

	return LintTaskSet(tasks, now), nil
}
