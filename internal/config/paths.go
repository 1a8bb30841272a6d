package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultBaseDir = ".moqui-agents"

	// EnvHome overrides the base directory for the config file.
	EnvHome = "MOQUI_AGENTS_HOME"
	// EnvConfig overrides the config file location.
	EnvConfig = "MOQUI_AGENTS_CONFIG"
)

// Paths holds resolved filesystem paths for moqui-agents' own files.
type Paths struct {
	Base   string // ~/.moqui-agents
	Config string // ~/.moqui-agents/config.yaml
}

// ResolvePaths computes the standard paths from the home directory.
// MOQUI_AGENTS_HOME overrides the base directory and MOQUI_AGENTS_CONFIG the
// config file.
func ResolvePaths() (Paths, error) {
	base := os.Getenv(EnvHome)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, err
		}
		base = filepath.Join(home, defaultBaseDir)
	}

	p := Paths{
		Base:   base,
		Config: filepath.Join(base, "config.yaml"),
	}
	if v := os.Getenv(EnvConfig); v != "" {
		p.Config = ExpandHome(v)
	}
	return p, nil
}

// DocPaths locates the documents served to clients.
type DocPaths struct {
	ProjectRoot       string
	AgentsDir         string
	CollaborationFile string
}

// DocPaths resolves the agent and collaboration document locations.
// It fails when no project root is configured.
func (c Config) DocPaths() (DocPaths, error) {
	if c.ProjectRoot == "" {
		return DocPaths{}, &ConfigError{Message: "projectRoot is not set (set " + EnvProjectRoot + " or projectRoot in the config file)"}
	}
	root := ExpandHome(c.ProjectRoot)
	return DocPaths{
		ProjectRoot:       root,
		AgentsDir:         underRoot(root, c.AgentsPath),
		CollaborationFile: underRoot(root, c.CollaborationPath),
	}, nil
}

// LogFile returns the configured log file, or "" when file logging is off.
func (c Config) LogFile() string {
	if c.Logging.File == "" {
		return ""
	}
	return ExpandHome(c.Logging.File)
}

// underRoot places rel beneath root. A leading "/" does not escape the
// project root: "/docs/agents" and "docs/agents" resolve alike.
func underRoot(root, rel string) string {
	return filepath.Join(root, rel)
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ParseConfigPath splits a dot-separated config path into segments.
// Returns an error if any segment is empty.
func ParseConfigPath(raw string) ([]string, error) {
	if raw == "" {
		return nil, &ConfigError{Message: "empty config path"}
	}
	parts := strings.Split(raw, ".")
	for _, p := range parts {
		if p == "" {
			return nil, &ConfigError{Message: "config path contains empty segment"}
		}
	}
	return parts, nil
}

// GetValueAtPath traverses a nested map using the given path segments.
func GetValueAtPath(root map[string]any, path []string) (any, bool) {
	current := any(root)
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// SetValueAtPath sets a value in a nested map, creating intermediate maps as needed.
func SetValueAtPath(root map[string]any, path []string, value any) {
	current := root
	for _, key := range path[:len(path)-1] {
		m, ok := current[key].(map[string]any)
		if !ok {
			m = map[string]any{}
			current[key] = m
		}
		current = m
	}
	current[path[len(path)-1]] = value
}

// UnsetValueAtPath removes a value at the given path. Returns true if removed.
func UnsetValueAtPath(root map[string]any, path []string) bool {
	current := root
	for _, key := range path[:len(path)-1] {
		m, ok := current[key].(map[string]any)
		if !ok {
			return false
		}
		current = m
	}
	last := path[len(path)-1]
	if _, ok := current[last]; !ok {
		return false
	}
	delete(current, last)
	return true
}
