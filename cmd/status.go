package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-todo/cmd/internal"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show task file and counts",
		Long:  "Display the task file in use, its format, and how many tasks are pending and complete.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd)
		},
	}
}

func runStatus(cmd *cobra.Command) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "File: %s (%s)\n", store.Path(), store.Format())
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), internal.Summary(store.List()))
	if err := store.LoadErr(); err != nil {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Warning: existing file could not be loaded: %v\n", err)
	}
	return nil
}
