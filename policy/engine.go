// Package policy enforces the confirmation gate and optional rego-based
// invocation policies in front of tool dispatch.
package policy

import (
	"context"

	"github.com/open-policy-agent/opa/v1/rego"
	"github.com/pkg/errors"
)

// Engine evaluates a single rego module against tool invocations. The
// policy is compiled once at construction; evaluation is read-only and safe
// for concurrent use.
//
// The module must live under package policy and may define a deny rule:
//
//	package policy
//	deny contains msg if {
//	    input.tool == "delete_project"
//	    msg := "project deletion is disabled on this server"
//	}
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine compiles regoSource and prepares it for evaluation.
func NewEngine(ctx context.Context, regoSource string) (*Engine, error) {
	query, err := rego.New(
		rego.Query("data.policy"),
		rego.Module("policy.rego", regoSource),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare invocation policy")
	}
	return &Engine{query: query}, nil
}

// Input is the document a policy is evaluated against.
type Input struct {
	Tool        string         `json:"tool"`
	Arguments   map[string]any `json:"arguments"`
	ReadOnly    bool           `json:"read_only"`
	Destructive bool           `json:"destructive"`
}

// Evaluate returns the deny messages produced for input. An empty slice
// means the invocation is allowed.
func (e *Engine) Evaluate(ctx context.Context, input Input) ([]string, error) {
	rs, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return nil, errors.Wrap(err, "policy evaluation failed")
	}

	var denies []string
	if len(rs) > 0 && len(rs[0].Expressions) > 0 {
		if output, ok := rs[0].Expressions[0].Value.(map[string]interface{}); ok {
			denies = extractMessages(output, "deny")
		}
	}
	return denies, nil
}

func extractMessages(output map[string]interface{}, key string) []string {
	var messages []string
	if items, ok := output[key].([]interface{}); ok {
		for _, item := range items {
			if s, ok := item.(string); ok {
				messages = append(messages, s)
			}
		}
	}
	return messages
}
