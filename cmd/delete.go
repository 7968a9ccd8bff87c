package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Long:    "Remove a task permanently.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, args[0])
		},
	}
}

func runDelete(cmd *cobra.Command, id string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	if !store.Delete(id) {
		return taskNotFound(id)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task with ID %s deleted successfully\n", id)
	return nil
}
