package resources

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterMCP adds the whole catalog to the MCP server. Every read goes
// through Handler.Read, so matching and dispatch stay in one place.
func RegisterMCP(s *server.MCPServer, registry *Registry, handler *Handler) {
	for _, d := range registry.StaticResources() {
		resource := mcp.NewResource(d.URI, d.Name,
			mcp.WithResourceDescription(d.Description),
			mcp.WithMIMEType(d.MIMEType),
		)
		s.AddResource(resource, readHandler(handler))
	}

	for _, t := range registry.Templates() {
		resourceTemplate := mcp.NewResourceTemplate(t.URITemplate, t.Name,
			mcp.WithTemplateDescription(t.Description),
			mcp.WithTemplateMIMEType(t.MIMEType),
		)
		s.AddResourceTemplate(resourceTemplate, templateReadHandler(handler))
	}
}

func readHandler(h *Handler) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return readContents(ctx, h, request.Params.URI)
	}
}

func templateReadHandler(h *Handler) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return readContents(ctx, h, request.Params.URI)
	}
}

func readContents(ctx context.Context, h *Handler, uri string) ([]mcp.ResourceContents, error) {
	result, err := h.Read(ctx, uri)
	if err != nil {
		return nil, err
	}

	mimeType := "application/json"
	var text string
	if s, ok := result.(string); ok {
		// Raw file and readme reads come back as text, everything else as
		// marshaled JSON.
		mimeType = "text/plain"
		text = s
	} else {
		data, err := json.Marshal(result)
		if err != nil {
			return nil, err
		}
		text = string(data)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: mimeType,
			Text:     text,
		},
	}, nil
}
