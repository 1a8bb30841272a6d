package agents

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DocMetadata is the optional YAML frontmatter at the top of an agent document.
type DocMetadata struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tools       []string `yaml:"tools,omitempty"`
}

// ParseFrontmatter extracts the leading "---" fenced YAML block of a document.
func ParseFrontmatter(content []byte) (*DocMetadata, error) {
	lines := strings.Split(string(content), "\n")
	if len(lines) < 3 || strings.TrimSpace(lines[0]) != "---" {
		return nil, fmt.Errorf("no frontmatter found")
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, fmt.Errorf("unclosed frontmatter")
	}

	var meta DocMetadata
	if err := yaml.Unmarshal([]byte(strings.Join(lines[1:end], "\n")), &meta); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &meta, nil
}
