package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/taskdeck/internal/taskstore"
)

func newListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List all tasks in insertion order, optionally filtered by status.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, status)
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "filter by status (pending or completed)")

	return cmd
}

func runList(cmd *cobra.Command, status string) error {
	filter := taskstore.Status(status)
	if status != "" && !filter.IsValid() {
		return fmt.Errorf("invalid status %q: must be %q or %q", status, taskstore.StatusPending, taskstore.StatusCompleted)
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	tasks := store.List(filter)
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
		return nil
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "Tasks:")
	for _, task := range tasks {
		_, _ = fmt.Fprintln(out, formatTaskLine(task))
		if task.Description != "" {
			_, _ = fmt.Fprintf(out, "    Description: %s\n", task.Description)
		}
	}

	return nil
}
