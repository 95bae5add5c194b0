package taskstore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLTask represents a task entry in an import file. IDs are never read
// from the file; the store assigns them.
type YAMLTask struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Status      string `yaml:"status,omitempty"`
}

// YAMLFile represents the structure of a tasks YAML file.
type YAMLFile struct {
	Tasks []YAMLTask `yaml:"tasks"`
}

// ImportError records why a single entry was skipped.
type ImportError struct {
	Title  string
	Reason string
}

// ImportResult contains the results of a YAML import operation.
type ImportResult struct {
	Imported int
	Errors   []ImportError
}

// ImportFromYAML reads tasks from a YAML file and adds them to the store.
// Entries with status "completed" are completed immediately after being
// added, stamped at import time. Invalid entries are skipped and reported
// in the result.
func ImportFromYAML(store *Store, path string) (*ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file: %w", err)
	}

	var yamlFile YAMLFile
	if err := yaml.Unmarshal(data, &yamlFile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	result := &ImportResult{}

	for _, yt := range yamlFile.Tasks {
		if yt.Title == "" {
			result.Errors = append(result.Errors, ImportError{
				Title:  yt.Title,
				Reason: "title is required",
			})
			continue
		}

		status := StatusPending
		if yt.Status != "" {
			status = Status(yt.Status)
			if !status.IsValid() {
				result.Errors = append(result.Errors, ImportError{
					Title:  yt.Title,
					Reason: fmt.Sprintf("invalid status %q", yt.Status),
				})
				continue
			}
		}

		task, err := store.Add(yt.Title, yt.Description)
		if err != nil {
			result.Errors = append(result.Errors, ImportError{
				Title:  yt.Title,
				Reason: err.Error(),
			})
			continue
		}

		if status == StatusCompleted {
			if _, err := store.Complete(task.ID); err != nil {
				result.Errors = append(result.Errors, ImportError{
					Title:  yt.Title,
					Reason: err.Error(),
				})
				continue
			}
		}

		result.Imported++
	}

	return result, nil
}
