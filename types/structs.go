package types

// InvocationRecord is one audited tool call.
type InvocationRecord struct {
	ID        string         `json:"id"`
	ToolName  string         `json:"tool_name"`
	Arguments map[string]any `json:"arguments"`
	Outcome   string         `json:"outcome"` // "ok", "error" or "denied"
	Error     string         `json:"error,omitempty"`
	CreatedAt string         `json:"created_at"`
}

// ElicitationRecord is one audited confirmation request.
type ElicitationRecord struct {
	ID        string `json:"id"`
	ToolName  string `json:"tool_name"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
	CreatedAt string `json:"created_at"`
}
