package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-todo/internal/taskstore"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the task file",
		Long: `Parse the task file without loading it into a store and report problems.

Errors (unparsable content, schema violations, duplicate IDs) make the command
fail. Warnings (padded titles, foreign IDs, timestamps in the future) are
printed but do not.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd)
		},
	}
}

func runCheck(cmd *cobra.Command) error {
	settings, err := resolveStorage(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	result, err := taskstore.LintFile(settings.path, settings.format, time.Now())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			_, _ = fmt.Fprintf(out, "No task file at %s\n", settings.path)
			return nil
		}
		return err
	}

	for _, w := range result.Warnings {
		_, _ = fmt.Fprintf(out, "Warning: %s\n", w)
	}
	if err := result.Error(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "%s is valid\n", settings.path)
	return nil
}
