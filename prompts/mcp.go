package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterMCP advertises the whole prompt catalog on the MCP server.
func RegisterMCP(s *server.MCPServer, registry *Registry) {
	for _, d := range registry.List() {
		opts := []mcp.PromptOption{mcp.WithPromptDescription(d.Description)}
		for _, arg := range d.Arguments {
			argOpts := []mcp.ArgumentOption{mcp.ArgumentDescription(arg.Description)}
			if arg.Required {
				argOpts = append(argOpts, mcp.RequiredArgument())
			}
			opts = append(opts, mcp.WithArgument(arg.Name, argOpts...))
		}

		name := d.Name
		s.AddPrompt(mcp.NewPrompt(name, opts...), promptHandler(registry, name))
	}
}

func promptHandler(registry *Registry, name string) server.PromptHandlerFunc {
	return func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		messages, err := registry.Render(name, request.Params.Arguments)
		if err != nil {
			return nil, err
		}

		out := make([]mcp.PromptMessage, 0, len(messages))
		for _, m := range messages {
			out = append(out, mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(m.Content)))
		}

		description := ""
		if d := registry.Get(name); d != nil {
			description = d.Description
		}
		return mcp.NewGetPromptResult(description, out), nil
	}
}
