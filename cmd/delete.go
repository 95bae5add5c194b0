package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long:  "Remove the task with the given ID. Remaining tasks keep their IDs; deleted IDs are never reused.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			return runDelete(cmd, id)
		},
	}
}

func runDelete(cmd *cobra.Command, id int) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	deleted, err := store.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}

	if deleted {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %d deleted.\n", id)
	} else {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %d not found.\n", id)
	}

	return nil
}
