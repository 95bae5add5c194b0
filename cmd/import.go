package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yarlson/taskdeck/internal/taskstore"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import tasks from a YAML file",
		Long: `Import tasks from a YAML file into the task store.

The YAML file should contain a 'tasks' array with task definitions.
Entries are validated before import. Invalid entries are skipped and
reported. IDs are assigned by the store, never read from the file.

Example YAML format:
  tasks:
    - title: Buy milk
      description: Semi-skimmed
    - title: File taxes
      status: completed
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0])
		},
	}
}

func runImport(cmd *cobra.Command, yamlPath string) error {
	if _, err := os.Stat(yamlPath); err != nil {
		return fmt.Errorf("file not found: %s", yamlPath)
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	result, err := taskstore.ImportFromYAML(store, yamlPath)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully imported %d task(s)\n", result.Imported)

	if len(result.Errors) > 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%d error(s) occurred during import:\n", len(result.Errors))
		for _, impErr := range result.Errors {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  - Task %q: %s\n", impErr.Title, impErr.Reason)
		}
	}

	return nil
}
