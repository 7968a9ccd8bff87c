package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-todo/cmd/internal"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0])
		},
	}
}

func runShow(cmd *cobra.Command, id string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	task, ok := store.Get(id)
	if !ok {
		return taskNotFound(id)
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), internal.FormatTask(task))
	return nil
}
