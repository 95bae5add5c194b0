package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_WithValidFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "taskdeck.yaml")

	configContent := `
tasks:
  file: "my-tasks.json"
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "my-tasks.json", cfg.Tasks.File)
}

func TestLoadConfig_WithDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "tasks.json", cfg.Tasks.File)
}

func TestLoadConfig_FallsBackToGlobalConfig(t *testing.T) {
	xdgDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdgDir)

	globalDir := filepath.Join(xdgDir, "taskdeck")
	require.NoError(t, os.MkdirAll(globalDir, 0755))

	configContent := `
tasks:
  file: "global-tasks.json"
`
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "taskdeck.yaml"), []byte(configContent), 0644))

	// No local taskdeck.yaml: the global one applies.
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "global-tasks.json", cfg.Tasks.File)
}

func TestLoadConfig_LocalOverridesGlobal(t *testing.T) {
	xdgDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdgDir)

	globalDir := filepath.Join(xdgDir, "taskdeck")
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "taskdeck.yaml"), []byte("tasks:\n  file: global.json\n"), 0644))

	localDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(localDir, "taskdeck.yaml"), []byte("tasks:\n  file: local.json\n"), 0644))

	cfg, err := LoadConfig(localDir)
	require.NoError(t, err)

	assert.Equal(t, "local.json", cfg.Tasks.File)
}

func TestLoadConfigFromPath_WithValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "custom.yaml")

	configContent := `
tasks:
  file: "elsewhere.json"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := LoadConfigFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "elsewhere.json", cfg.Tasks.File)
}

func TestLoadConfigFromPath_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "tasks.json", cfg.Tasks.File)
}

func TestLoadConfigFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bad.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("tasks: [unbalanced"), 0644))

	_, err := LoadConfigFromPath(configPath)
	assert.Error(t, err)
}

func TestLoadConfigWithFile_PrefersExplicitFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	workDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "taskdeck.yaml"), []byte("tasks:\n  file: workdir.json\n"), 0644))

	explicitPath := filepath.Join(t.TempDir(), "explicit.yaml")
	require.NoError(t, os.WriteFile(explicitPath, []byte("tasks:\n  file: explicit.json\n"), 0644))

	cfg, err := LoadConfigWithFile(workDir, explicitPath)
	require.NoError(t, err)
	assert.Equal(t, "explicit.json", cfg.Tasks.File)

	cfg, err = LoadConfigWithFile(workDir, "")
	require.NoError(t, err)
	assert.Equal(t, "workdir.json", cfg.Tasks.File)
}
