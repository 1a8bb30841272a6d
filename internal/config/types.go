package config

// Config is the root configuration for moqui-agents.
type Config struct {
	ProjectRoot       string        `yaml:"projectRoot,omitempty"`       // Moqui project checkout; required
	AgentsPath        string        `yaml:"agentsPath,omitempty"`        // agent docs dir, relative to ProjectRoot unless absolute
	CollaborationPath string        `yaml:"collaborationPath,omitempty"` // collaboration doc, relative to ProjectRoot unless absolute
	Logging           LoggingConfig `yaml:"logging,omitempty"`
}

// LoggingConfig controls the server log file.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // "trace" | "debug" | "info" | "warn" | "error" | "fatal" | "silent"
	File  string `yaml:"file,omitempty"`  // defaults to <home>/logs/moqui-agents.log
}
