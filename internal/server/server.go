// Package server hosts the MCP server over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

type Server struct {
	httpServer *http.Server
	router     *chi.Mux
}

// New wraps the MCP server in a chi router exposing the streamable HTTP
// transport at /mcp alongside a health endpoint.
func New(addr string, mcp *mcpserver.MCPServer) *Server {
	s := &Server{router: chi.NewRouter()}

	streamable := mcpserver.NewStreamableHTTPServer(mcp)
	s.router.Handle("/mcp", streamable)
	s.router.Handle("/mcp/*", streamable)
	s.router.Get("/health", s.healthHandler)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 30 * time.Second,
	}

	return s
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}
