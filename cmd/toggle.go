package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a task between PENDING and COMPLETE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(cmd, args[0])
		},
	}
}

func runToggle(cmd *cobra.Command, id string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	status, ok := store.ToggleStatus(id)
	if !ok {
		return taskNotFound(id)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task with ID %s is now %s\n", id, status)
	return nil
}
