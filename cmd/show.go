package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a task",
		Long:  "Display the full details of a single task.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			return runShow(cmd, id)
		},
	}
}

func runShow(cmd *cobra.Command, id int) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	task, ok := store.Get(id)
	if !ok {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %d not found.\n", id)
		return nil
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, formatTaskLine(task))
	if task.Description != "" {
		_, _ = fmt.Fprintf(out, "Description: %s\n", task.Description)
	}
	_, _ = fmt.Fprintf(out, "Status: %s\n", task.Status)
	_, _ = fmt.Fprintf(out, "Created: %s\n", task.CreatedAt.Format(time.RFC3339))
	if task.CompletedAt != nil {
		_, _ = fmt.Fprintf(out, "Completed: %s\n", task.CompletedAt.Format(time.RFC3339))
	}

	return nil
}
