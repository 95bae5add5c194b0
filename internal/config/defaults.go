package config

// Tasks defaults
const (
	DefaultTasksFile = "tasks.json"
)
