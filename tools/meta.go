package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/xeipuuv/gojsonschema"

	"github.com/wadew/gitlab-mcp-sub001/types"
)

// The meta-tool layer lets a client explore and invoke the full catalog
// through three generic tools, so hosts that struggle with large tool lists
// can be given just these. execute_tool deliberately has a looser error
// contract than direct dispatch: every failure, including gate denials and
// invalid arguments, comes back as an {"error": ...} payload instead of
// propagating, so a generic "run anything" entry point cannot crash its
// caller. Do not copy that convention anywhere else.

// DiscoverTools returns the catalog browser tool.
func DiscoverTools(r *Registry) server.ServerTool {
	return server.ServerTool{
		Tool: mcp.Tool{
			Name:        "discover_tools",
			Description: "List available GitLab tools with their descriptions, optionally filtered by a keyword",
			Annotations: metaAnnotations(),
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"keyword": map[string]any{
						"type":        "string",
						"description": "Keyword to filter tool names and descriptions by. Optional.",
					},
				},
			},
		},
		Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			keyword := strings.ToLower(request.GetString("keyword", ""))

			var matches []Summary
			for _, s := range r.List() {
				if keyword == "" ||
					strings.Contains(strings.ToLower(s.Name), keyword) ||
					strings.Contains(strings.ToLower(s.Description), keyword) {
					matches = append(matches, s)
				}
			}
			return RespondJSON(map[string]any{
				"tools": matches,
				"count": len(matches),
			})
		},
	}
}

// GetToolSchema returns the schema lookup tool.
func GetToolSchema(r *Registry) server.ServerTool {
	return server.ServerTool{
		Tool: mcp.Tool{
			Name:        "get_tool_schema",
			Description: "Get the full input schema of a single GitLab tool by name",
			Annotations: metaAnnotations(),
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"tool_name": map[string]any{
						"type":        "string",
						"description": "Name of the tool to describe",
					},
				},
				Required: []string{"tool_name"},
			},
		},
		Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			name := request.GetString("tool_name", "")
			schema, err := r.Describe(name)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return RespondJSON(map[string]any{
				"tool_name":    name,
				"input_schema": schema,
			})
		},
	}
}

// ExecuteTool returns the indirect invocation tool.
func ExecuteTool(r *Registry, gate Gate, audit types.AuditLog) server.ServerTool {
	return server.ServerTool{
		Tool: mcp.Tool{
			Name:        "execute_tool",
			Description: "Execute any GitLab tool by name with a JSON arguments object",
			Annotations: mcp.ToolAnnotation{
				Title:        "execute_tool",
				ReadOnlyHint: mcp.ToBoolPtr(false),
				// The target may be destructive, so the generic entry point
				// has to be assumed destructive as well.
				DestructiveHint: mcp.ToBoolPtr(true),
			},
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"tool_name": map[string]any{
						"type":        "string",
						"description": "Name of the tool to execute",
					},
					"arguments": map[string]any{
						"type":        "object",
						"description": "Arguments object for the target tool. Optional.",
					},
				},
				Required: []string{"tool_name"},
			},
		},
		Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			name := request.GetString("tool_name", "")
			args, _ := request.GetArguments()["arguments"].(map[string]any)
			if args == nil {
				args = map[string]any{}
			}

			reg, ok := r.Get(name)
			if !ok {
				return envelope(name, "tool not registered: "+name)
			}

			if msg := validateArguments(reg, args); msg != "" {
				return envelope(name, msg)
			}

			ann, _ := r.Annotation(name)
			if gate != nil {
				if err := gate.Check(ctx, name, args, ann); err != nil {
					recordInvocation(ctx, audit, name, args, "denied", err)
					return envelope(name, err.Error())
				}
			}
			delete(args, ConfirmedArg)

			result, err := r.Invoke(ctx, name, args)
			if err != nil {
				recordInvocation(ctx, audit, name, args, "error", err)
				return envelope(name, err.Error())
			}

			recordInvocation(ctx, audit, name, args, "ok", nil)
			return RespondJSON(map[string]any{
				"tool_name": name,
				"result":    result,
			})
		},
	}
}

// MetaTools bundles the three indirection tools.
func MetaTools(r *Registry, gate Gate, audit types.AuditLog) []server.ServerTool {
	return []server.ServerTool{
		DiscoverTools(r),
		GetToolSchema(r),
		ExecuteTool(r, gate, audit),
	}
}

func metaAnnotations() mcp.ToolAnnotation {
	return mcp.ToolAnnotation{
		ReadOnlyHint:    mcp.ToBoolPtr(true),
		DestructiveHint: mcp.ToBoolPtr(false),
	}
}

// envelope is execute_tool's error shape: a successful MCP result carrying
// an error payload.
func envelope(name, message string) (*mcp.CallToolResult, error) {
	return RespondJSON(map[string]any{
		"tool_name": name,
		"error":     message,
	})
}

// validateArguments checks args against the tool's generated JSON schema and
// returns a validation message, or "" when the arguments are acceptable. The
// confirmation flag is allowed through even though it is not part of the
// tool's own schema.
func validateArguments(reg ToolRegistration, args map[string]any) string {
	schema := InputSchema(reg)
	properties := schema["properties"].(map[string]any)
	properties[ConfirmedArg] = map[string]any{"type": "boolean"}

	checked := make(map[string]any, len(args))
	for k, v := range args {
		checked[k] = v
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(checked),
	)
	if err != nil {
		return "argument validation failed: " + err.Error()
	}
	if !result.Valid() {
		var parts []string
		for _, desc := range result.Errors() {
			parts = append(parts, desc.String())
		}
		return "invalid arguments: " + strings.Join(parts, "; ")
	}
	return ""
}
