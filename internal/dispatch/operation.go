package dispatch

// Operation is one of the lookups the dispatcher knows how to serve.
type Operation int

const (
	OpUnknown Operation = iota
	OpListAgents
	OpGetAgentDescription
	OpGetCollaborationFramework
)

// Wire names of the operations.
const (
	NameListAgents                = "list_agents"
	NameGetAgentDescription       = "get_agent_description"
	NameGetCollaborationFramework = "get_collaboration_framework"
)

// Operations lists every known operation in the order tools are advertised.
func Operations() []Operation {
	return []Operation{OpListAgents, OpGetAgentDescription, OpGetCollaborationFramework}
}

// ParseOperation maps a wire name to its Operation. Unrecognized names
// return OpUnknown.
func ParseOperation(name string) Operation {
	switch name {
	case NameListAgents:
		return OpListAgents
	case NameGetAgentDescription:
		return OpGetAgentDescription
	case NameGetCollaborationFramework:
		return OpGetCollaborationFramework
	default:
		return OpUnknown
	}
}

// String returns the wire name.
func (o Operation) String() string {
	switch o {
	case OpListAgents:
		return NameListAgents
	case OpGetAgentDescription:
		return NameGetAgentDescription
	case OpGetCollaborationFramework:
		return NameGetCollaborationFramework
	default:
		return "unknown"
	}
}
