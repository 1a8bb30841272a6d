// Package mcpserver speaks newline-delimited JSON-RPC 2.0 (MCP) over a
// reader/writer pair and routes tool and resource requests to the
// dispatcher.
//
// One line is read, handled, and answered before the next is read.
package mcpserver

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/moqui-example/moqui-agents/internal/dispatch"
	"github.com/moqui-example/moqui-agents/internal/logging"
)

const (
	// ServerName is reported in the initialize result.
	ServerName = "moqui-agents"
	// ReadyMessage is written to the status writer once Serve is reading.
	ReadyMessage = "Moqui Agents MCP server running on stdio"

	maxLineSize = 1024 * 1024
)

const instructions = "Read-only lookups for the Moqui project agents. " +
	"Call list_agents for the catalog, get_agent_description for one agent's role document, " +
	"and get_collaboration_framework for the cross-agent workflow."

// Server answers MCP requests using a dispatcher.
type Server struct {
	dispatcher *dispatch.Dispatcher
	version    string
	log        *logging.Logger
	status     io.Writer
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for per-exchange logging.
func WithLogger(log *logging.Logger) Option {
	return func(s *Server) { s.log = log }
}

// WithStatusWriter sets where the one-line ready message goes. Without it
// nothing is written.
func WithStatusWriter(w io.Writer) Option {
	return func(s *Server) { s.status = w }
}

// WithVersion sets the version reported in serverInfo.
func WithVersion(v string) Option {
	return func(s *Server) { s.version = v }
}

// New creates a server over the given dispatcher.
func New(d *dispatch.Dispatcher, opts ...Option) *Server {
	s := &Server{
		dispatcher: d,
		version:    "dev",
		log:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type scanResult struct {
	line []byte
	err  error
}

// Serve reads requests from in and writes responses to out until in is
// exhausted or ctx is cancelled. A read error other than EOF is returned.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := make(chan scanResult)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			line := slices.Clone(scanner.Bytes())
			select {
			case lines <- scanResult{line: line}:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case lines <- scanResult{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	if s.status != nil {
		fmt.Fprintln(s.status, ReadyMessage)
	}
	s.log.Info().Msg("listening for requests")

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("server shutting down")
			// Closing in unblocks the reader goroutine. A reader that is not
			// an io.Closer leaves it parked in Scan until its next line.
			if c, ok := in.(io.Closer); ok {
				c.Close()
			}
			return nil
		case res, ok := <-lines:
			if !ok {
				s.log.Info().Msg("input closed, server shutting down")
				return nil
			}
			if res.err != nil {
				s.log.Error().Err(res.err).Msg("error reading input")
				return fmt.Errorf("reading requests: %w", res.err)
			}
			if len(res.line) == 0 {
				continue
			}
			if err := s.exchange(res.line, out); err != nil {
				return err
			}
		}
	}
}

// exchange handles one line and writes its response, if any.
func (s *Server) exchange(line []byte, out io.Writer) error {
	log := s.log.With("exchange", uuid.NewString())
	log.Debug().Bytes("request", line).Msg("received request")

	resp := s.HandleMessage(line, log)
	if resp == nil {
		return nil
	}

	data := encodeResponse(resp, log)
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	log.Debug().Msg("sent response")
	return nil
}

// encodeResponse marshals resp as one newline-terminated line. A response
// that cannot be marshaled is replaced by an internal error for the same id.
func encodeResponse(resp any, log *logging.Logger) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		log.Error().Err(err).Msg("error marshaling response")
		data, _ = json.Marshal(errorResponse(responseID(resp), mcp.INTERNAL_ERROR, "Internal error", err.Error()))
	}
	return append(data, '\n')
}

func responseID(resp any) mcp.RequestId {
	switch r := resp.(type) {
	case mcp.JSONRPCResponse:
		return r.ID
	case mcp.JSONRPCError:
		return r.ID
	default:
		return mcp.NewRequestId(nil)
	}
}

// HandleMessage handles one JSON-RPC message and returns the response to
// send, or nil for notifications.
func (s *Server) HandleMessage(line []byte, log *logging.Logger) any {
	var req request
	if err := json.Unmarshal(line, &req); err != nil {
		log.Warn().Err(err).Msg("parse error")
		return errorResponse(mcp.NewRequestId(nil), mcp.PARSE_ERROR, "Parse error", err.Error())
	}
	if req.ID == nil {
		log.Debug().Str("method", req.Method).Msg("received notification")
		return nil
	}
	id := *req.ID
	log = log.With("method", req.Method)
	log.Debug().Msg("handling method")

	switch req.Method {
	case "initialize":
		return s.handleInitialize(id, req.Params)
	case "ping":
		return successResponse(id, mcp.EmptyResult{})
	case "tools/list":
		return successResponse(id, mcp.ListToolsResult{Tools: s.tools()})
	case "tools/call":
		return s.handleCallTool(id, req.Params, log)
	case "resources/list":
		return successResponse(id, mcp.ListResourcesResult{Resources: s.resources(log)})
	case "resources/read":
		return s.handleReadResource(id, req.Params, log)
	default:
		log.Warn().Msg("unknown method")
		return errorResponse(id, mcp.METHOD_NOT_FOUND, fmt.Sprintf("Method not found: %s", req.Method), nil)
	}
}

func (s *Server) handleInitialize(id mcp.RequestId, raw json.RawMessage) any {
	var params mcp.InitializeParams
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return errorResponse(id, mcp.INVALID_PARAMS, "Invalid params", err.Error())
		}
	}

	result := mcp.InitializeResult{
		ProtocolVersion: negotiateVersion(params.ProtocolVersion),
		ServerInfo: mcp.Implementation{
			Name:    ServerName,
			Version: s.version,
		},
		Instructions: instructions,
	}
	result.Capabilities.Tools = &struct {
		ListChanged bool `json:"listChanged,omitempty"`
	}{}
	result.Capabilities.Resources = &struct {
		Subscribe   bool `json:"subscribe,omitempty"`
		ListChanged bool `json:"listChanged,omitempty"`
	}{}
	return successResponse(id, result)
}

// negotiateVersion echoes the client's protocol version when it is one we
// know, otherwise offers the latest.
func negotiateVersion(requested string) string {
	if slices.Contains(mcp.ValidProtocolVersions, requested) {
		return requested
	}
	return mcp.LATEST_PROTOCOL_VERSION
}
