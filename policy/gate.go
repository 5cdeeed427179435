package policy

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/wadew/gitlab-mcp-sub001/elicitation"
	"github.com/wadew/gitlab-mcp-sub001/tools"
	"github.com/wadew/gitlab-mcp-sub001/types"
)

// ErrConfirmationRequired is the cause of every gate denial for an
// unconfirmed call to a confirmation-gated tool.
var ErrConfirmationRequired = errors.New("confirmation required")

// Gate sits between the MCP transport and Registry.Invoke. For any tool in
// the elicitation catalog it requires the caller to carry confirmed=true,
// and it optionally evaluates a rego invocation policy on every call.
type Gate struct {
	elicit *elicitation.Registry
	engine *Engine
	audit  types.AuditLog
	logger hclog.Logger
}

// Option configures a Gate.
type Option func(*Gate)

// WithEngine attaches a rego invocation policy.
func WithEngine(engine *Engine) Option {
	return func(g *Gate) { g.engine = engine }
}

// WithAudit records every confirmation request that the gate generates.
func WithAudit(audit types.AuditLog) Option {
	return func(g *Gate) { g.audit = audit }
}

func NewGate(elicit *elicitation.Registry, logger hclog.Logger, opts ...Option) *Gate {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	g := &Gate{
		elicit: elicit,
		logger: logger.Named("gate"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Check implements tools.Gate.
func (g *Gate) Check(ctx context.Context, name string, args map[string]any, ann tools.Annotation) error {
	if err := g.checkConfirmation(ctx, name, args); err != nil {
		return err
	}
	return g.checkPolicy(ctx, name, args, ann)
}

func (g *Gate) checkConfirmation(ctx context.Context, name string, args map[string]any) error {
	request := g.elicit.CreateRequest(name, args)
	if request == nil {
		return nil
	}
	if confirmed, _ := args[tools.ConfirmedArg].(bool); confirmed {
		return nil
	}

	g.logger.Info("blocking unconfirmed call", "tool", name, "severity", request.Severity)
	if g.audit != nil {
		_ = g.audit.RecordElicitation(ctx, types.ElicitationRecord{
			ToolName:  name,
			Message:   request.Message,
			Severity:  string(request.Severity),
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return errors.Wrapf(ErrConfirmationRequired, "%s — re-run with confirmed=true after the user approves: %s", name, request.Message)
}

func (g *Gate) checkPolicy(ctx context.Context, name string, args map[string]any, ann tools.Annotation) error {
	if g.engine == nil {
		return nil
	}

	denies, err := g.engine.Evaluate(ctx, Input{
		Tool:        name,
		Arguments:   args,
		ReadOnly:    ann.ReadOnly,
		Destructive: ann.Destructive,
	})
	if err != nil {
		return err
	}
	if len(denies) > 0 {
		g.logger.Info("call denied by policy", "tool", name, "denies", denies)
		return errors.Errorf("denied by invocation policy: %s", strings.Join(denies, "; "))
	}
	return nil
}
