package mcpserver

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/moqui-example/moqui-agents/internal/agents"
	"github.com/moqui-example/moqui-agents/internal/logging"
)

const (
	agentURIPrefix   = "moqui-agents://agent/"
	collaborationURI = "moqui-agents://collaboration"
	markdownMIME     = "text/markdown"
)

// AgentURI returns the resource URI of an agent's role document.
func AgentURI(name string) string { return agentURIPrefix + name }

// resources lists one resource per catalog agent plus the collaboration
// document. Descriptions come from the document frontmatter when present.
func (s *Server) resources(log *logging.Logger) []mcp.Resource {
	catalog := s.dispatcher.Catalog()
	out := make([]mcp.Resource, 0, catalog.Len()+1)
	for _, a := range catalog.List() {
		out = append(out, mcp.NewResource(
			AgentURI(a.Name),
			fmt.Sprintf("Moqui Agent: %s", a.Name),
			mcp.WithResourceDescription(s.agentResourceDescription(a, log)),
			mcp.WithMIMEType(markdownMIME),
		))
	}
	out = append(out, mcp.NewResource(
		collaborationURI,
		"Agent Collaboration Framework",
		mcp.WithResourceDescription("Cross-agent workflow and hand-off rules"),
		mcp.WithMIMEType(markdownMIME),
	))
	return out
}

func (s *Server) agentResourceDescription(a agents.Agent, log *logging.Logger) string {
	content, err := s.dispatcher.AgentDescription(a.Name)
	if err != nil {
		log.Debug().Err(err).Str("agent", a.Name).Msg("agent document unavailable for listing")
		return a.Description
	}
	meta, err := agents.ParseFrontmatter([]byte(content))
	if err != nil || meta.Description == "" {
		return a.Description
	}
	return meta.Description
}

func (s *Server) handleReadResource(id mcp.RequestId, raw json.RawMessage, log *logging.Logger) any {
	var params mcp.ReadResourceParams
	if err := json.Unmarshal(raw, &params); err != nil {
		log.Warn().Err(err).Msg("invalid params")
		return errorResponse(id, mcp.INVALID_PARAMS, "Invalid params", err.Error())
	}

	log = log.With("uri", params.URI)
	log.Info().Msg("reading resource")

	var (
		text string
		err  error
	)
	switch {
	case params.URI == collaborationURI:
		text, err = s.dispatcher.CollaborationFramework()
	case strings.HasPrefix(params.URI, agentURIPrefix):
		name := strings.TrimPrefix(params.URI, agentURIPrefix)
		if _, ok := s.dispatcher.Catalog().Lookup(name); !ok {
			return errorResponse(id, mcp.RESOURCE_NOT_FOUND, fmt.Sprintf("Resource not found: %s", params.URI), nil)
		}
		text, err = s.dispatcher.AgentDescription(name)
	default:
		return errorResponse(id, mcp.RESOURCE_NOT_FOUND, fmt.Sprintf("Resource not found: %s", params.URI), nil)
	}
	if err != nil {
		log.Warn().Err(err).Msg("resource read failed")
		return dispatchError(id, err)
	}

	return successResponse(id, mcp.ReadResourceResult{
		Contents: []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      params.URI,
				MIMEType: markdownMIME,
				Text:     text,
			},
		},
	})
}
