package config

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValidationIssue describes a problem with a config value.
type ValidationIssue struct {
	Path    string
	Message string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

var validLogLevels = []string{"silent", "fatal", "error", "warn", "info", "debug", "trace"}

// Validate checks a Config for issues. Returns nil if valid.
func Validate(cfg *Config) []ValidationIssue {
	var issues []ValidationIssue
	if cfg.ProjectRoot == "" {
		issues = append(issues, ValidationIssue{
			Path:    "projectRoot",
			Message: fmt.Sprintf("required; set %s or projectRoot in the config file", EnvProjectRoot),
		})
	}
	return append(issues, validateValues(cfg)...)
}

// validateValues checks the fields that have a fixed shape. projectRoot may
// still come from the environment or a flag, so its absence is not checked.
func validateValues(cfg *Config) []ValidationIssue {
	var issues []ValidationIssue

	if cfg.AgentsPath == "" {
		issues = append(issues, ValidationIssue{Path: "agentsPath", Message: "must not be empty"})
	}
	if cfg.CollaborationPath == "" {
		issues = append(issues, ValidationIssue{Path: "collaborationPath", Message: "must not be empty"})
	}

	if cfg.Logging.Level != "" && !slices.Contains(validLogLevels, cfg.Logging.Level) {
		issues = append(issues, ValidationIssue{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of %v, got %q", validLogLevels, cfg.Logging.Level),
		})
	}

	return issues
}

// IssuesError folds validation issues into one ConfigError.
func IssuesError(issues []ValidationIssue) error {
	msgs := make([]string, len(issues))
	for i, issue := range issues {
		msgs[i] = issue.String()
	}
	return &ConfigError{Message: strings.Join(msgs, "; ")}
}

// CheckRaw decodes an edited config file map as a Config. It rejects keys
// that are not config fields, values of the wrong type, and values Validate
// would report. A missing projectRoot is allowed.
func CheckRaw(raw map[string]any) error {
	data, err := yaml.Marshal(raw)
	if err != nil {
		return err
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return &ConfigError{Message: "invalid config: " + err.Error()}
	}
	expandPathFields(&cfg)
	applyDefaults(&cfg)

	if issues := validateValues(&cfg); len(issues) > 0 {
		return IssuesError(issues)
	}
	return nil
}
