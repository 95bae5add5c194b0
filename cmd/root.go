// Package cmd implements the taskdeck command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yarlson/taskdeck/internal/config"
	"github.com/yarlson/taskdeck/internal/taskstore"
)

var (
	cfgFile   string
	tasksFile string
)

// GetConfigFile returns the config file path from the flag.
func GetConfigFile() string {
	return cfgFile
}

// NewRootCmd creates the root command for the taskdeck CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taskdeck",
		Short: "Simple task tracker backed by a local JSON file",
		Long: `Taskdeck is a single-user task tracker. Tasks live in a local JSON
file that is rewritten on every change, so state survives between
invocations without a server or a database.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./taskdeck.yaml)")
	rootCmd.PersistentFlags().StringVar(&tasksFile, "file", "", "tasks file (default: tasks.file from config, or tasks.json)")

	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newCompleteCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newImportCmd())

	return rootCmd
}

// openStore resolves the tasks file path from flags and config, then loads
// any existing state. A missing file is fine; an unreadable or malformed
// one is reported as a warning on stderr and the command continues with an
// empty store.
func openStore(cmd *cobra.Command) (*taskstore.Store, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigWithFile(workDir, GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	path := cfg.Tasks.File
	if tasksFile != "" {
		path = tasksFile
	}

	store := taskstore.NewStore(path)
	if err := store.Load(); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; starting with an empty task list\n", err)
	}

	return store, nil
}

// parseTaskID parses a task ID argument.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id %q: must be a positive integer", arg)
	}
	return id, nil
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
