package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/taskdeck/internal/taskstore"
)

func newCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as completed",
		Long:  "Mark the task with the given ID as completed. Completing a task twice is a no-op.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			return runComplete(cmd, id)
		},
	}
}

func runComplete(cmd *cobra.Command, id int) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	outcome, err := store.Complete(id)
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}

	switch outcome {
	case taskstore.Completed:
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %d marked as completed!\n", id)
	case taskstore.AlreadyCompleted:
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %d is already completed.\n", id)
	case taskstore.NotFound:
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %d not found.\n", id)
	}

	return nil
}
