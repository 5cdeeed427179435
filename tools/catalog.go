package tools

import (
	"context"

	"github.com/wadew/gitlab-mcp-sub001/types"
)

// BuiltinToolCount is the size of the built-in catalog. Bump it whenever a
// definition is added or removed; the catalog test pins it.
const BuiltinToolCount = 93

// clientOp is a method expression over the capability interface, e.g.
// types.GitLabClient.ListProjects.
type clientOp = func(types.GitLabClient, context.Context, map[string]any) (any, error)

// definition is one built-in catalog entry. The catalog is data: the only
// logic per tool is the pass-through to the client method.
type definition struct {
	name        string
	description string
	category    string
	annotation  Annotation
	params      []Param
	op          clientOp
}

var (
	readOnly    = Annotation{ReadOnly: true}
	destructive = Annotation{Destructive: true}
	mutating    = Annotation{}
)

// req declares a required parameter. Its description must not contain the
// word "optional" in any casing.
func req(name, typ, description string) Param {
	return Param{Name: name, Type: typ, Description: description}
}

// opt declares an optional parameter. Its description must contain the word
// "optional" so the legacy text convention stays truthful.
func opt(name, typ, description string) Param {
	return Param{Name: name, Type: typ, Description: description, Optional: true}
}

func builtinDefinitions() []definition {
	var defs []definition
	defs = append(defs, projectDefinitions()...)
	defs = append(defs, issueDefinitions()...)
	defs = append(defs, mergeRequestDefinitions()...)
	defs = append(defs, repositoryDefinitions()...)
	defs = append(defs, pipelineDefinitions()...)
	defs = append(defs, contentDefinitions()...)
	return defs
}

// builtinRegistrations binds the catalog to a client. Every tool function is
// a stateless closure over the shared capability object.
func builtinRegistrations(client types.GitLabClient) []ToolRegistration {
	defs := builtinDefinitions()
	regs := make([]ToolRegistration, 0, len(defs))
	for _, d := range defs {
		op := d.op
		regs = append(regs, ToolRegistration{
			Name:        d.name,
			Description: d.description,
			Params:      d.params,
			Annotation:  d.annotation,
			Category:    d.category,
			Func: func(ctx context.Context, args map[string]any) (any, error) {
				return op(client, ctx, args)
			},
		})
	}
	return regs
}
