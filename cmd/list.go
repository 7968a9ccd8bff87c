package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-todo/cmd/internal"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all tasks",
		Long:    "Print every task in the order it was added.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd)
		},
	}
}

func runList(cmd *cobra.Command) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), internal.FormatTaskList(store.List()))
	return nil
}
