// Package standalone composes the full GitLab MCP server: storage,
// registries, confirmation gate, transports. Embedders construct it with
// their own GitLabClient implementation; the bundled binary does the same.
package standalone

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/wadew/gitlab-mcp-sub001/elicitation"
	"github.com/wadew/gitlab-mcp-sub001/instructions"
	"github.com/wadew/gitlab-mcp-sub001/internal/server"
	"github.com/wadew/gitlab-mcp-sub001/policy"
	"github.com/wadew/gitlab-mcp-sub001/prompts"
	"github.com/wadew/gitlab-mcp-sub001/resources"
	"github.com/wadew/gitlab-mcp-sub001/storage"
	"github.com/wadew/gitlab-mcp-sub001/tasks"
	"github.com/wadew/gitlab-mcp-sub001/tools"
	"github.com/wadew/gitlab-mcp-sub001/types"
)

const version = "1.0.0"

// Config holds configuration for the standalone server.
type Config struct {
	// Addr is the HTTP listen address, used when ServerType is "http".
	Addr string
	// ServerType selects the transport: "stdio" (default) or "http".
	ServerType string
	// DBDir is the directory holding the audit database.
	DBDir string
	// PolicyFile optionally points to a Rego policy evaluated before every
	// tool invocation.
	PolicyFile string
	// ReadOnly disables every destructive tool.
	ReadOnly bool
	// DynamicToolsOnly advertises only the discovery/schema/execute trio
	// instead of the full catalog.
	DynamicToolsOnly bool
}

// Server is the composed MCP server plus the resources it owns.
type Server struct {
	mcp    *mcpserver.MCPServer
	http   *server.Server
	audit  types.AuditLog
	tasks  *tasks.Manager
	config *Config
	logger hclog.Logger
}

// New builds the server. A nil client is allowed: the GitLab catalog and
// resources are then left unregistered and only the client-independent
// surface (task tools, meta tools, prompts) is served.
func New(config *Config, client types.GitLabClient, logger hclog.Logger) (*Server, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	audit, err := storage.NewSQLiteAudit(filepath.Join(config.DBDir, "audit.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to create audit storage: %w", err)
	}

	elicit := elicitation.NewRegistry()

	gateOpts := []policy.Option{policy.WithAudit(audit)}
	if config.PolicyFile != "" {
		source, err := os.ReadFile(config.PolicyFile)
		if err != nil {
			audit.Close()
			return nil, fmt.Errorf("failed to read policy file: %w", err)
		}
		engine, err := policy.NewEngine(context.Background(), string(source))
		if err != nil {
			audit.Close()
			return nil, fmt.Errorf("failed to prepare policy: %w", err)
		}
		gateOpts = append(gateOpts, policy.WithEngine(engine))
	}

	var gate tools.Gate = policy.NewGate(elicit, logger, gateOpts...)
	if config.ReadOnly {
		gate = readOnlyGate{next: gate}
	}

	registry := tools.NewRegistry(logger)
	if client != nil {
		if err := registry.RegisterAll(client); err != nil {
			audit.Close()
			return nil, fmt.Errorf("failed to register catalog: %w", err)
		}
	} else {
		logger.Warn("no GitLab client wired, catalog tools and resources disabled")
	}

	taskManager := tasks.NewManager(logger)
	for _, reg := range tasks.Registrations(taskManager) {
		if err := registry.Register(reg); err != nil {
			audit.Close()
			return nil, fmt.Errorf("failed to register task tools: %w", err)
		}
	}

	mcp := mcpserver.NewMCPServer(
		"gitlab-mcp",
		version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithLogging(),
		mcpserver.WithInstructions(instructions.Get()),
		mcpserver.WithPromptCapabilities(true),
		mcpserver.WithResourceCapabilities(false, true),
	)

	if !config.DynamicToolsOnly {
		for _, summary := range registry.List() {
			reg, ok := registry.Get(summary.Name)
			if !ok {
				continue
			}
			if config.ReadOnly && reg.Annotation.Destructive {
				continue
			}
			mcp.AddTool(
				tools.MCPTool(reg, elicit.RequiresConfirmation(reg.Name)),
				tools.MCPHandler(registry, reg.Name, gate, audit, logger),
			)
		}
	}
	mcp.AddTools(tools.MetaTools(registry, gate, audit)...)

	if client != nil {
		resourceRegistry := resources.NewRegistry()
		handler := resources.NewHandler(resourceRegistry, client, logger)
		resources.RegisterMCP(mcp, resourceRegistry, handler)
	}

	prompts.RegisterMCP(mcp, prompts.NewRegistry())

	s := &Server{
		mcp:    mcp,
		audit:  audit,
		tasks:  taskManager,
		config: config,
		logger: logger,
	}
	if config.ServerType == "http" {
		s.http = server.New(config.Addr, mcp)
	}

	return s, nil
}

// Tasks exposes the task manager so embedders can drive task lifecycles.
func (s *Server) Tasks() *tasks.Manager {
	return s.tasks
}

// Start serves until the context is cancelled or the transport fails.
func (s *Server) Start(ctx context.Context) error {
	errChan := make(chan error, 1)

	if s.http != nil {
		log.Printf("Starting MCP HTTP server on %s", s.config.Addr)
		go func() {
			errChan <- s.http.ListenAndServe()
		}()
	} else {
		log.Printf("Starting MCP stdio server")
		go func() {
			errChan <- mcpserver.ServeStdio(s.mcp)
		}()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errChan:
		return err
	}
}

// Stop shuts down the transport and closes the audit log.
func (s *Server) Stop(ctx context.Context) error {
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down HTTP server: %v", err)
		}
	}
	if err := s.audit.Close(); err != nil {
		log.Printf("Error closing audit storage: %v", err)
	}
	return nil
}

// readOnlyGate rejects destructive tools before the normal gate runs.
type readOnlyGate struct {
	next tools.Gate
}

func (g readOnlyGate) Check(ctx context.Context, name string, args map[string]any, ann tools.Annotation) error {
	if ann.Destructive {
		return fmt.Errorf("tool %s is disabled: server is running in read-only mode", name)
	}
	return g.next.Check(ctx, name, args, ann)
}
