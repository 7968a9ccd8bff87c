package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-todo/internal/taskstore"
)

func newUpdateCmd() *cobra.Command {
	var title string
	var description string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Long: `Change the title and/or description of a task.

Only the flags that are given are applied; --description "" clears the description.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd taskstore.TaskUpdate
			if cmd.Flags().Changed("title") {
				upd.Title = &title
			}
			if cmd.Flags().Changed("description") {
				upd.Description = &description
			}
			return runUpdate(cmd, args[0], upd)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new task title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new task description")

	return cmd
}

func runUpdate(cmd *cobra.Command, id string, upd taskstore.TaskUpdate) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	task, ok, err := store.Update(id, upd)
	if !ok {
		return taskNotFound(id)
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task updated: %s\n", task.ID)
	return nil
}
