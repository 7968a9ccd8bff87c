package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCommand(t *testing.T) {
	t.Run("shows file and counts", func(t *testing.T) {
		chdirTemp(t)
		addTask(t, "One")
		done := addTask(t, "Two")
		_, _, err := execute(t, "complete", done)
		require.NoError(t, err)

		out, _, err := execute(t, "status")
		require.NoError(t, err)
		assert.Contains(t, out, ".todo_data.json (json)")
		assert.Contains(t, out, "2 tasks: 1 pending, 1 complete")
		assert.NotContains(t, out, "Warning")
	})

	t.Run("no task file yet", func(t *testing.T) {
		chdirTemp(t)

		out, _, err := execute(t, "status")
		require.NoError(t, err)
		assert.Contains(t, out, "0 tasks: 0 pending, 0 complete")
	})

	t.Run("reports unreadable file", func(t *testing.T) {
		tmpDir := chdirTemp(t)
		require.NoError(t, os.WriteFile(tmpDir+"/.todo_data.json", []byte("not json"), 0644))

		out, _, err := execute(t, "status")
		require.NoError(t, err)
		assert.Contains(t, out, "Warning: existing file could not be loaded")
	})
}
