package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		Long:  "Display total, completed, and pending task counts plus the completion rate.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd)
		},
	}
}

func runStats(cmd *cobra.Command) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	stats := store.Stats()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "Task Statistics:")
	_, _ = fmt.Fprintf(out, "Total tasks: %d\n", stats.Total)
	_, _ = fmt.Fprintf(out, "Completed: %d\n", stats.Completed)
	_, _ = fmt.Fprintf(out, "Pending: %d\n", stats.Pending)
	if stats.Total > 0 {
		rate := float64(stats.Completed) / float64(stats.Total) * 100
		_, _ = fmt.Fprintf(out, "Completion rate: %.1f%%\n", rate)
	}

	return nil
}
