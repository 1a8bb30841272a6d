package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by applyEnvOverrides.
const (
	EnvProjectRoot = "MOQUI_PROJECT_ROOT"
	EnvAgentsPath  = "AGENTS_PATH"
	EnvLogLevel    = "MOQUI_AGENTS_LOG_LEVEL"
	EnvLogFile     = "MOQUI_AGENTS_LOG_FILE"
)

// envVarPattern matches ${VAR_NAME} patterns in strings.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnvVars replaces ${VAR} patterns with environment variable values.
// Unset variables are left unchanged.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		return match
	})
}

// expandPathFields lets path values in the file reference ${ENV_VAR}.
func expandPathFields(cfg *Config) {
	cfg.ProjectRoot = expandEnvVars(cfg.ProjectRoot)
	cfg.AgentsPath = expandEnvVars(cfg.AgentsPath)
	cfg.CollaborationPath = expandEnvVars(cfg.CollaborationPath)
	cfg.Logging.File = expandEnvVars(cfg.Logging.File)
}

// Load reads the config file, applies environment overrides, and returns
// a merged Config. Missing files produce defaults only.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(&cfg)
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ConfigError{Message: "failed to parse config: " + err.Error()}
	}

	expandPathFields(&cfg)
	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// LoadRaw reads the config file into a generic map for path-based access.
func LoadRaw(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigError{Message: "failed to parse config: " + err.Error()}
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

// SaveRaw writes a generic map back to a YAML config file.
func SaveRaw(path string, raw map[string]any) error {
	data, err := yaml.Marshal(raw)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// applyDefaults fills zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.AgentsPath == "" {
		cfg.AgentsPath = DefaultAgentsPath
	}
	if cfg.CollaborationPath == "" {
		cfg.CollaborationPath = DefaultCollaborationPath
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
}

// applyEnvOverrides reads MOQUI_* and AGENTS_PATH environment variables and
// overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvProjectRoot); v != "" {
		cfg.ProjectRoot = v
	}
	if v := os.Getenv(EnvAgentsPath); v != "" {
		cfg.AgentsPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Logging.File = v
	}
}
