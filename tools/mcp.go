package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wadew/gitlab-mcp-sub001/types"
)

// Gate is the confirmation/policy stage consulted before a tool function
// runs. The registry itself never consults it: enforcement belongs to the
// layer that composes the registry with the MCP transport, which is here.
type Gate interface {
	Check(ctx context.Context, name string, args map[string]any, ann Annotation) error
}

// ConfirmedArg is the caller-supplied approval flag checked by the gate and
// stripped before the tool function runs.
const ConfirmedArg = "confirmed"

// RespondJSON marshals a tool result into an MCP text result.
func RespondJSON(input any) (*mcp.CallToolResult, error) {
	result, err := json.Marshal(input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(result)), nil
}

// MCPTool converts a registration into the wire-level tool definition. Tools
// subject to confirmation additionally advertise the approval flag.
func MCPTool(reg ToolRegistration, needsConfirmation bool) mcp.Tool {
	schema := InputSchema(reg)
	properties := schema["properties"].(map[string]any)
	if needsConfirmation {
		properties[ConfirmedArg] = map[string]any{
			"type":        "boolean",
			"description": "Set to true once the user has approved this operation. Optional.",
		}
	}

	var required []string
	if r, ok := schema["required"].([]string); ok {
		required = r
	}

	return mcp.Tool{
		Name:        reg.Name,
		Description: reg.Description,
		Annotations: mcp.ToolAnnotation{
			Title:           reg.Name,
			ReadOnlyHint:    mcp.ToBoolPtr(reg.Annotation.ReadOnly),
			DestructiveHint: mcp.ToBoolPtr(reg.Annotation.Destructive),
		},
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: properties,
			Required:   required,
		},
	}
}

// MCPHandler builds the transport handler for one registered tool: gate
// check, invoke, audit. Tool errors surface as MCP error results; they are
// never wrapped into a data envelope here.
func MCPHandler(r *Registry, name string, gate Gate, audit types.AuditLog, logger hclog.Logger) server.ToolHandlerFunc {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if args == nil {
			args = map[string]any{}
		}

		ann, _ := r.Annotation(name)
		if gate != nil {
			if err := gate.Check(ctx, name, args, ann); err != nil {
				recordInvocation(ctx, audit, name, args, "denied", err)
				return mcp.NewToolResultError(err.Error()), nil
			}
		}
		delete(args, ConfirmedArg)

		result, err := r.Invoke(ctx, name, args)
		if err != nil {
			logger.Warn("tool invocation failed", "tool", name, "error", err)
			recordInvocation(ctx, audit, name, args, "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		recordInvocation(ctx, audit, name, args, "ok", nil)
		return RespondJSON(result)
	}
}

func recordInvocation(ctx context.Context, audit types.AuditLog, name string, args map[string]any, outcome string, callErr error) {
	if audit == nil {
		return
	}
	record := types.InvocationRecord{
		ToolName:  name,
		Arguments: args,
		Outcome:   outcome,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if callErr != nil {
		record.Error = callErr.Error()
	}
	// Auditing is best-effort: a failed write must not fail the tool call.
	_ = audit.RecordInvocation(ctx, record)
}
