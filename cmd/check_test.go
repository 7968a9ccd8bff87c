package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		chdirTemp(t)
		addTask(t, "Checked")

		out, _, err := execute(t, "check")
		require.NoError(t, err)
		assert.Contains(t, out, ".todo_data.json is valid")
	})

	t.Run("missing file", func(t *testing.T) {
		chdirTemp(t)

		out, _, err := execute(t, "check")
		require.NoError(t, err)
		assert.Contains(t, out, "No task file at")
	})

	t.Run("duplicate ids fail", func(t *testing.T) {
		tmpDir := chdirTemp(t)
		task := `{"id":"task_00000001","title":"A","status":"PENDING","created_at":"2026-01-01T10:00:00Z","updated_at":"2026-01-01T10:00:00Z"}`
		require.NoError(t, os.WriteFile(tmpDir+"/.todo_data.json", []byte("["+task+","+task+"]"), 0644))

		_, _, err := execute(t, "check")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "task_00000001: duplicate task id")
	})

	t.Run("warnings do not fail", func(t *testing.T) {
		tmpDir := chdirTemp(t)
		task := `[{"id":"legacy-1","title":"A","status":"PENDING","created_at":"2026-01-01T10:00:00Z","updated_at":"2026-01-01T10:00:00Z"}]`
		require.NoError(t, os.WriteFile(tmpDir+"/.todo_data.json", []byte(task), 0644))

		out, _, err := execute(t, "check")
		require.NoError(t, err)
		assert.Contains(t, out, "Warning: legacy-1: id does not start with")
		assert.Contains(t, out, "is valid")
	})
}
