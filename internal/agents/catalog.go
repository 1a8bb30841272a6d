// Package agents holds the fixed catalog of Moqui project agents and the
// rules that map an agent identifier to its role document.
package agents

import "strings"

// DocExt is the extension of every agent role document.
const DocExt = ".md"

// Agent is one catalog entry.
type Agent struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog is an ordered, read-only set of agents keyed by identifier.
type Catalog struct {
	list  []Agent
	index map[string]int
}

// NewCatalog builds a catalog preserving the order of entries.
// A repeated name keeps its first position and takes the last description.
func NewCatalog(entries []Agent) *Catalog {
	c := &Catalog{index: make(map[string]int, len(entries))}
	for _, a := range entries {
		if i, ok := c.index[a.Name]; ok {
			c.list[i] = a
			continue
		}
		c.index[a.Name] = len(c.list)
		c.list = append(c.list, a)
	}
	return c
}

// Default returns the catalog of Moqui agents.
func Default() *Catalog {
	return NewCatalog([]Agent{
		{"architecture_agent", "Chief Architect - Domain-driven design and architectural integrity"},
		{"moqui_developer_agent", "Moqui Implementation Expert - Turns architecture and design into working code"},
		{"dba_agent", "Expert Database Administrator - Performance tuning, schema design, and database security"},
		{"sre_agent", "SRE/Observability Agent - Functional & Operational Metrics, OpenTelemetry, Grafana Integration"},
		{"test_agent", "QA Software Engineer - Writes, runs, and analyzes tests"},
		{"lint_agent", "Code Quality Engineer - Style enforcement and static analysis"},
		{"api_agent", "Senior Software Engineer - REST API development and error handling"},
		{"dev_deploy_agent", "Senior DevOps Engineer - Local development deployment and containerization"},
		{"docs_agent", "Expert Technical Writer - Documentation and knowledge base"},
	})
}

// List returns a copy of the entries in catalog order.
func (c *Catalog) List() []Agent {
	out := make([]Agent, len(c.list))
	copy(out, c.list)
	return out
}

// Names returns the identifiers in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.list))
	for i, a := range c.list {
		names[i] = a.Name
	}
	return names
}

// Lookup returns the agent with the given identifier.
func (c *Catalog) Lookup(name string) (Agent, bool) {
	i, ok := c.index[name]
	if !ok {
		return Agent{}, false
	}
	return c.list[i], true
}

// Len returns the number of agents.
func (c *Catalog) Len() int { return len(c.list) }

// FileName returns the role document file name for an agent identifier,
// e.g. dev_deploy_agent -> dev-deploy-agent.md.
func FileName(name string) string {
	return strings.ReplaceAll(name, "_", "-") + DocExt
}
