package mcpserver

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/moqui-example/moqui-agents/internal/dispatch"
	"github.com/moqui-example/moqui-agents/internal/logging"
)

func (s *Server) tools() []mcp.Tool {
	readOnly := []mcp.ToolOption{
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	}

	tools := make([]mcp.Tool, 0, len(dispatch.Operations()))
	for _, op := range dispatch.Operations() {
		var opts []mcp.ToolOption
		switch op {
		case dispatch.OpListAgents:
			opts = append(opts, mcp.WithDescription("List every Moqui project agent with its one-line role summary."))
		case dispatch.OpGetAgentDescription:
			opts = append(opts,
				mcp.WithDescription("Get the full role document of one Moqui project agent."),
				mcp.WithString(dispatch.ArgAgent,
					mcp.Required(),
					mcp.Description("Agent identifier as returned by list_agents, e.g. dev_deploy_agent"),
					mcp.Enum(s.dispatcher.Catalog().Names()...),
				),
			)
		case dispatch.OpGetCollaborationFramework:
			opts = append(opts, mcp.WithDescription("Get the agent collaboration framework describing cross-agent workflow."))
		}
		tools = append(tools, mcp.NewTool(op.String(), append(opts, readOnly...)...))
	}
	return tools
}

func (s *Server) handleCallTool(id mcp.RequestId, raw json.RawMessage, log *logging.Logger) any {
	var params mcp.CallToolParams
	if err := json.Unmarshal(raw, &params); err != nil {
		log.Warn().Err(err).Msg("invalid params")
		return errorResponse(id, mcp.INVALID_PARAMS, "Invalid params", err.Error())
	}
	args, _ := params.Arguments.(map[string]any)

	log = log.With("tool", params.Name)
	log.Info().Msg("calling tool")

	text, err := s.dispatcher.Call(params.Name, args)
	if err != nil {
		log.Warn().Err(err).Str("kind", dispatch.KindOf(err).String()).Msg("tool call failed")
		return dispatchError(id, err)
	}
	return successResponse(id, mcp.NewToolResultText(text))
}
