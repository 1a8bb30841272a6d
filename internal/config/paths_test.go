package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePaths_Default(t *testing.T) {
	t.Setenv(EnvHome, "")
	t.Setenv(EnvConfig, "")

	paths, err := ResolvePaths()
	require.NoError(t, err)

	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, ".moqui-agents"), paths.Base)
	assert.Equal(t, filepath.Join(home, ".moqui-agents", "config.yaml"), paths.Config)
}

func TestResolvePaths_CustomHome(t *testing.T) {
	t.Setenv(EnvHome, "/tmp/ma")
	t.Setenv(EnvConfig, "")

	paths, err := ResolvePaths()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ma", paths.Base)
	assert.Equal(t, "/tmp/ma/config.yaml", paths.Config)
}

func TestResolvePaths_ConfigOverride(t *testing.T) {
	t.Setenv(EnvHome, "/tmp/ma")
	t.Setenv(EnvConfig, "/etc/moqui-agents.yaml")

	paths, err := ResolvePaths()
	require.NoError(t, err)
	assert.Equal(t, "/etc/moqui-agents.yaml", paths.Config)
}

func TestDocPaths(t *testing.T) {
	cfg := Defaults()
	cfg.ProjectRoot = "/work/moqui_example"

	dp, err := cfg.DocPaths()
	require.NoError(t, err)
	assert.Equal(t, "/work/moqui_example", dp.ProjectRoot)
	assert.Equal(t, "/work/moqui_example/.github/agents", dp.AgentsDir)
	assert.Equal(t, "/work/moqui_example/.github/AGENT_COLLABORATION.md", dp.CollaborationFile)
}

func TestDocPaths_StayUnderProjectRoot(t *testing.T) {
	tests := []struct {
		name       string
		agentsPath string
		collabPath string
		wantAgents string
		wantCollab string
	}{
		{"relative", "docs/agents", "docs/COLLAB.md", "/work/moqui/docs/agents", "/work/moqui/docs/COLLAB.md"},
		{"leading slash", "/.github/agents", "/.github/AGENT_COLLABORATION.md", "/work/moqui/.github/agents", "/work/moqui/.github/AGENT_COLLABORATION.md"},
		{"trailing slash", "shared/agents/", "shared/COLLAB.md", "/work/moqui/shared/agents", "/work/moqui/shared/COLLAB.md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.ProjectRoot = "/work/moqui"
			cfg.AgentsPath = tt.agentsPath
			cfg.CollaborationPath = tt.collabPath

			dp, err := cfg.DocPaths()
			require.NoError(t, err)
			assert.Equal(t, tt.wantAgents, dp.AgentsDir)
			assert.Equal(t, tt.wantCollab, dp.CollaborationFile)
		})
	}
}

func TestDocPaths_HomeExpansion(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := Defaults()
	cfg.ProjectRoot = "~/IdeaProjects/moqui"

	dp, err := cfg.DocPaths()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "IdeaProjects", "moqui"), dp.ProjectRoot)
}

func TestDocPaths_RequiresProjectRoot(t *testing.T) {
	_, err := Defaults().DocPaths()
	require.Error(t, err)
	var ce *ConfigError
	assert.ErrorAs(t, err, &ce)
	assert.Contains(t, err.Error(), EnvProjectRoot)
}

func TestLogFile(t *testing.T) {
	cfg := Defaults()
	assert.Empty(t, cfg.LogFile(), "file logging is off unless configured")

	cfg.Logging.File = "/var/log/custom.log"
	assert.Equal(t, "/var/log/custom.log", cfg.LogFile())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "x"), ExpandHome("~/x"))
	assert.Equal(t, "/abs", ExpandHome("/abs"))
	assert.Equal(t, "rel/~/x", ExpandHome("rel/~/x"))
	assert.Equal(t, "~user/x", ExpandHome("~user/x"))
}

func TestParseConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"single segment", "projectRoot", []string{"projectRoot"}, false},
		{"two segments", "logging.level", []string{"logging", "level"}, false},
		{"empty", "", nil, true},
		{"empty segment", "logging..level", nil, true},
		{"leading dot", ".logging", nil, true},
		{"trailing dot", "logging.", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfigPath(tt.input)
			if tt.wantErr {
				var ce *ConfigError
				assert.ErrorAs(t, err, &ce)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestGetSetUnsetValueAtPath(t *testing.T) {
	root := map[string]any{"projectRoot": "/p"}

	SetValueAtPath(root, []string{"logging", "level"}, "debug")
	val, ok := GetValueAtPath(root, []string{"logging", "level"})
	require.True(t, ok)
	assert.Equal(t, "debug", val)

	_, ok = GetValueAtPath(root, []string{"projectRoot", "sub"})
	assert.False(t, ok)

	SetValueAtPath(root, []string{"projectRoot", "sub"}, 1)
	val, ok = GetValueAtPath(root, []string{"projectRoot", "sub"})
	require.True(t, ok)
	assert.Equal(t, 1, val)

	assert.True(t, UnsetValueAtPath(root, []string{"logging", "level"}))
	assert.False(t, UnsetValueAtPath(root, []string{"logging", "level"}))
	assert.False(t, UnsetValueAtPath(root, []string{"missing", "x"}))
	_, ok = GetValueAtPath(root, []string{"logging"})
	assert.True(t, ok)
}

func TestSaveAndLoadRaw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	raw, err := LoadRaw(path)
	require.NoError(t, err)
	assert.Empty(t, raw)

	SetValueAtPath(raw, []string{"projectRoot"}, "/work/moqui")
	require.NoError(t, SaveRaw(path, raw))

	raw, err = LoadRaw(path)
	require.NoError(t, err)
	assert.Equal(t, "/work/moqui", raw["projectRoot"])

	clearEnv(t)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/work/moqui", cfg.ProjectRoot)
}

func TestLoadRawEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	raw, err := LoadRaw(path)
	require.NoError(t, err)
	assert.NotNil(t, raw)
}
