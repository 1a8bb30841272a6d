// Package dispatch serves the agent lookups: the static catalog, one
// agent's role document, and the collaboration document.
//
// Every call is a read-through. Documents are read whole on each request and
// returned unmodified; nothing is cached.
package dispatch

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/moqui-example/moqui-agents/internal/agents"
	"github.com/moqui-example/moqui-agents/internal/logging"
)

// ArgAgent is the argument naming the agent for get_agent_description.
const ArgAgent = "agent"

// ReadFileFunc reads a whole file. os.ReadFile by default.
type ReadFileFunc func(name string) ([]byte, error)

// Config locates the documents served by the dispatcher.
type Config struct {
	AgentsDir         string
	CollaborationFile string
}

// Dispatcher routes named operations to the catalog or to a single file read.
type Dispatcher struct {
	catalog  *agents.Catalog
	cfg      Config
	readFile ReadFileFunc
	log      *logging.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithReadFile replaces the file reader.
func WithReadFile(fn ReadFileFunc) Option {
	return func(d *Dispatcher) { d.readFile = fn }
}

// WithLogger sets the logger. Without it the dispatcher logs nothing.
func WithLogger(log *logging.Logger) Option {
	return func(d *Dispatcher) { d.log = log }
}

// New creates a dispatcher over the given catalog and document locations.
func New(catalog *agents.Catalog, cfg Config, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		catalog:  catalog,
		cfg:      cfg,
		readFile: os.ReadFile,
		log:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Catalog returns the catalog the dispatcher serves.
func (d *Dispatcher) Catalog() *agents.Catalog { return d.catalog }

// Call runs the named operation and returns its text result.
// Failures are always *Error.
func (d *Dispatcher) Call(name string, args map[string]any) (string, error) {
	op := ParseOperation(name)
	d.log.Debug().Str("operation", name).Msg("dispatching")

	switch op {
	case OpListAgents:
		return d.ListAgents()
	case OpGetAgentDescription:
		raw, present := args[ArgAgent]
		agent, isString := raw.(string)
		if !present || raw == nil {
			return "", invalidArguments("Unknown agent: missing %q argument", ArgAgent)
		}
		if !isString {
			return "", invalidArguments("Unknown agent: %v", raw)
		}
		return d.AgentDescription(agent)
	case OpGetCollaborationFramework:
		return d.CollaborationFramework()
	default:
		d.log.Warn().Str("operation", name).Msg("unknown operation")
		return "", methodNotFound("Unknown tool: %s", name)
	}
}

// ListAgents returns the catalog as an indented JSON array of
// {name, description} in catalog order.
func (d *Dispatcher) ListAgents() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d.catalog.List()); err != nil {
		return "", internalError("Error encoding agent list", err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// AgentPath returns the role document path for a known agent.
func (d *Dispatcher) AgentPath(name string) (string, error) {
	if name == "" {
		return "", invalidArguments("Unknown agent: missing %q argument", ArgAgent)
	}
	if _, ok := d.catalog.Lookup(name); !ok {
		return "", invalidArguments("Unknown agent: %s", name)
	}
	return filepath.Join(d.cfg.AgentsDir, agents.FileName(name)), nil
}

// AgentDescription returns the raw role document of a known agent.
func (d *Dispatcher) AgentDescription(name string) (string, error) {
	path, err := d.AgentPath(name)
	if err != nil {
		d.log.Warn().Str("agent", name).Msg("rejected agent lookup")
		return "", err
	}
	content, err := d.readFile(path)
	if err != nil {
		d.log.Error().Err(err).Str("path", path).Msg("failed to read agent file")
		return "", internalError("Error reading agent file", err)
	}
	d.log.Debug().Str("path", path).Int("bytes", len(content)).Msg("read agent file")
	return string(content), nil
}

// CollaborationPath returns the collaboration document path.
func (d *Dispatcher) CollaborationPath() string { return d.cfg.CollaborationFile }

// CollaborationFramework returns the raw collaboration document.
func (d *Dispatcher) CollaborationFramework() (string, error) {
	content, err := d.readFile(d.cfg.CollaborationFile)
	if err != nil {
		d.log.Error().Err(err).Str("path", d.cfg.CollaborationFile).Msg("failed to read collaboration framework")
		return "", internalError("Error reading collaboration framework", err)
	}
	return string(content), nil
}
