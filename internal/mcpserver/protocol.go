package mcpserver

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/moqui-example/moqui-agents/internal/dispatch"
)

// request is an incoming JSON-RPC message. A nil ID marks a notification.
type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *mcp.RequestId  `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

func successResponse(id mcp.RequestId, result any) mcp.JSONRPCResponse {
	return mcp.JSONRPCResponse{
		JSONRPC: mcp.JSONRPC_VERSION,
		ID:      id,
		Result:  result,
	}
}

func errorResponse(id mcp.RequestId, code int, message string, data any) mcp.JSONRPCError {
	return mcp.NewJSONRPCError(id, code, message, data)
}

// errorCode maps a dispatch failure to its JSON-RPC error code.
func errorCode(kind dispatch.Kind) int {
	switch kind {
	case dispatch.InvalidArguments:
		return mcp.INVALID_PARAMS
	case dispatch.MethodNotFound:
		return mcp.METHOD_NOT_FOUND
	default:
		return mcp.INTERNAL_ERROR
	}
}

func dispatchError(id mcp.RequestId, err error) mcp.JSONRPCError {
	return errorResponse(id, errorCode(dispatch.KindOf(err)), err.Error(), nil)
}
