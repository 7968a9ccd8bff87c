package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-todo/cmd/internal"
)

func newAddCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Long:  "Create a PENDING task with the given title and optional description.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args[0], description)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")

	return cmd
}

func runAdd(cmd *cobra.Command, title, description string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	task, err := store.Add(title, description)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task added: %s\n", task.ID)
	_, _ = fmt.Fprint(cmd.OutOrStdout(), internal.FormatTask(task))
	return nil
}
