// Package tools holds the tool catalog and the dispatch layer: a registry
// mapping tool name to description, parameter schema and handler function,
// with list/describe/invoke operations on top.
package tools

import (
	"context"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/wadew/gitlab-mcp-sub001/types"
)

var (
	// ErrToolNotFound is the cause of every unknown-name dispatch failure.
	ErrToolNotFound = errors.New("tool not registered")

	// ErrDuplicateTool is returned when a name is registered twice.
	// Re-registration is rejected, never silently overwritten.
	ErrDuplicateTool = errors.New("tool already registered")
)

// ToolFunc is the uniform shape of every invocable tool. Arguments arrive as
// the caller's raw JSON mapping; the result must be JSON-serializable.
type ToolFunc func(ctx context.Context, args map[string]any) (any, error)

// Param describes one input parameter of a tool.
//
// Optional is the source of truth for required/optional. Descriptions are
// still authored so that the word "optional" appears exactly on optional
// parameters: the catalog test cross-checks the flag against the text, which
// keeps the human-readable schema and the machine-readable one in agreement.
type Param struct {
	Name        string
	Type        string // JSON schema type: "string", "integer", "boolean", ...
	Description string
	Optional    bool
}

// Annotation carries the behavior hints of a tool. A tool is never both
// read-only and destructive.
type Annotation struct {
	ReadOnly    bool `json:"readOnly"`
	Destructive bool `json:"destructive"`
}

// ToolRegistration is one entry of the dispatcher's catalog. Immutable after
// registration; there is no deregistration.
type ToolRegistration struct {
	Name        string
	Description string
	Params      []Param
	Annotation  Annotation
	Category    string // presentation tag, may be empty
	Func        ToolFunc
}

// Summary is the list() projection of a registration.
type Summary struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Annotation  Annotation `json:"annotations"`
}

// Registry is the tool dispatcher. Registration happens once at startup;
// after that the catalog is fixed and Invoke may be called from any number
// of goroutines.
type Registry struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]ToolRegistration
	logger hclog.Logger
}

func NewRegistry(logger hclog.Logger) *Registry {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Registry{
		byName: make(map[string]ToolRegistration),
		logger: logger.Named("tools"),
	}
}

// Register adds one tool to the catalog.
func (r *Registry) Register(reg ToolRegistration) error {
	if reg.Name == "" {
		return errors.New("tool name must not be empty")
	}
	if reg.Func == nil {
		return errors.Errorf("tool %s has no handler", reg.Name)
	}
	if reg.Annotation.ReadOnly && reg.Annotation.Destructive {
		return errors.Errorf("tool %s is annotated both read-only and destructive", reg.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[reg.Name]; ok {
		return errors.Wrap(ErrDuplicateTool, reg.Name)
	}
	r.byName[reg.Name] = reg
	r.order = append(r.order, reg.Name)
	return nil
}

// RegisterAll performs the one-time bulk registration of every built-in
// GitLab tool against the given client.
func (r *Registry) RegisterAll(client types.GitLabClient) error {
	for _, reg := range builtinRegistrations(client) {
		if err := r.Register(reg); err != nil {
			return err
		}
	}
	r.logger.Debug("registered built-in tools", "count", r.Count())
	return nil
}

// List returns all registered tools in registration order.
func (r *Registry) List() []Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Summary, 0, len(r.order))
	for _, name := range r.order {
		reg := r.byName[name]
		out = append(out, Summary{
			Name:        reg.Name,
			Description: reg.Description,
			Annotation:  reg.Annotation,
		})
	}
	return out
}

// Get returns the registration for name, or false.
func (r *Registry) Get(name string) (ToolRegistration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.byName[name]
	return reg, ok
}

// Annotation returns the behavior hints for name.
func (r *Registry) Annotation(name string) (Annotation, bool) {
	reg, ok := r.Get(name)
	return reg.Annotation, ok
}

// Category returns the presentation tag for name. Unknown names resolve to
// an empty tag rather than an error.
func (r *Registry) Category(name string) string {
	reg, _ := r.Get(name)
	return reg.Category
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Describe returns the full JSON input schema for one tool.
func (r *Registry) Describe(name string) (map[string]any, error) {
	reg, ok := r.Get(name)
	if !ok {
		return nil, errors.Wrap(ErrToolNotFound, name)
	}
	return InputSchema(reg), nil
}

// InputSchema builds the JSON schema object for a registration's parameters.
func InputSchema(reg ToolRegistration) map[string]any {
	properties := make(map[string]any, len(reg.Params))
	var required []string
	for _, p := range reg.Params {
		properties[p.Name] = map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}
		if !p.Optional {
			required = append(required, p.Name)
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// DescriptionMarksOptional reports whether a parameter description marks the
// parameter optional under the legacy substring convention. Kept as a
// compatibility check against Param.Optional, not as the inference mechanism.
func DescriptionMarksOptional(description string) bool {
	return strings.Contains(strings.ToLower(description), "optional")
}

// Invoke looks up name and calls its function with args. Tool errors
// propagate unmodified; the dispatcher adds nothing on top of them.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (any, error) {
	reg, ok := r.Get(name)
	if !ok {
		return nil, errors.Wrap(ErrToolNotFound, name)
	}
	r.logger.Debug("invoking tool", "tool", name)
	return reg.Func(ctx, args)
}
