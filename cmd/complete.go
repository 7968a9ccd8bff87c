package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "complete <id>",
		Aliases: []string{"done"},
		Short:   "Mark a task as complete",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComplete(cmd, args[0])
		},
	}
}

func newIncompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "incomplete <id>",
		Aliases: []string{"undone"},
		Short:   "Mark a task as incomplete",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIncomplete(cmd, args[0])
		},
	}
}

func runComplete(cmd *cobra.Command, id string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	if !store.SetComplete(id) {
		return taskNotFound(id)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task with ID %s marked as complete\n", id)
	return nil
}

func runIncomplete(cmd *cobra.Command, id string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	if !store.SetIncomplete(id) {
		return taskNotFound(id)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task with ID %s marked as incomplete\n", id)
	return nil
}
