package config

import "fmt"

const (
	DefaultAgentsPath        = ".github/agents"
	DefaultCollaborationPath = ".github/AGENT_COLLABORATION.md"
	DefaultLogLevel          = "info"
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s", e.Message)
}

// Defaults returns a Config with sensible defaults applied. ProjectRoot has
// no default and must be configured.
func Defaults() Config {
	return Config{
		AgentsPath:        DefaultAgentsPath,
		CollaborationPath: DefaultCollaborationPath,
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}
