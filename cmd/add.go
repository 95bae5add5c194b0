package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Long:  "Create a pending task with the given title and persist it to the tasks file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args[0], description)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")

	return cmd
}

func runAdd(cmd *cobra.Command, title, description string) error {
	if title == "" {
		return errors.New("title must not be empty")
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	task, err := store.Add(title, description)
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task added: %s\n", formatTaskLine(task))
	return nil
}
