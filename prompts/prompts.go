// Package prompts holds the workflow message templates advertised over MCP.
package prompts

import (
	"strings"

	"github.com/pkg/errors"
)

// Argument describes one named prompt argument.
type Argument struct {
	Name        string
	Description string
	Required    bool
}

// Definition is one prompt catalog entry. The text template uses
// {placeholder} substitution points matching the argument names.
type Definition struct {
	Name        string
	Description string
	Arguments   []Argument

	template string
}

// Message is one rendered prompt message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Registry is the prompt catalog. Built once at construction; read-only
// afterwards.
type Registry struct {
	order  []string
	byName map[string]Definition
}

func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Definition)}
	for _, d := range builtinDefinitions() {
		r.byName[d.Name] = d
		r.order = append(r.order, d.Name)
	}
	return r
}

// List returns the catalog in declaration order.
func (r *Registry) List() []Definition {
	out := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Get returns the definition for name, or nil.
func (r *Registry) Get(name string) *Definition {
	d, ok := r.byName[name]
	if !ok {
		return nil
	}
	return &d
}

// Render validates args and produces the prompt's messages. Missing
// required arguments and unknown prompt names fail with distinct errors.
func (r *Registry) Render(name string, args map[string]string) ([]Message, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, errors.Errorf("Unknown prompt: %s", name)
	}

	for _, arg := range d.Arguments {
		if !arg.Required {
			continue
		}
		if _, present := args[arg.Name]; !present {
			return nil, errors.Errorf("prompt %s: argument %s is required", name, arg.Name)
		}
	}

	text := d.template
	for key, value := range args {
		text = strings.ReplaceAll(text, "{"+key+"}", value)
	}

	return []Message{{Role: "user", Content: text}}, nil
}

func builtinDefinitions() []Definition {
	return []Definition{
		{
			Name:        "create-mr-from-issue",
			Description: "Create a merge request that resolves an existing issue",
			Arguments: []Argument{
				{Name: "project_id", Description: "Project ID or namespace/path", Required: true},
				{Name: "issue_iid", Description: "Internal ID of the issue to resolve", Required: true},
				{Name: "target_branch", Description: "Target branch, defaults to the project default branch", Required: false},
			},
			template: strings.TrimSpace(`
Resolve issue #{issue_iid} in project {project_id}.

1. Read the issue with get_issue and understand what is being asked.
2. Create a branch named after the issue with create_branch.
3. Make the necessary file changes with create_file / update_file.
4. Open a merge request with create_merge_request targeting {target_branch},
   referencing the issue in the description so it closes on merge.
`),
		},
		{
			Name:        "review-merge-request",
			Description: "Review a merge request and leave structured feedback",
			Arguments: []Argument{
				{Name: "project_id", Description: "Project ID or namespace/path", Required: true},
				{Name: "mr_iid", Description: "Internal ID of the merge request to review", Required: true},
			},
			template: strings.TrimSpace(`
Review merge request !{mr_iid} in project {project_id}.

Fetch the merge request with get_merge_request and its diff with
get_merge_request_changes. Assess correctness, style and test coverage.
Leave your findings as a comment with create_merge_request_note, grouping
them into blocking issues and suggestions.
`),
		},
		{
			Name:        "triage-issue",
			Description: "Triage an issue: label it, assess severity, suggest next steps",
			Arguments: []Argument{
				{Name: "project_id", Description: "Project ID or namespace/path", Required: true},
				{Name: "issue_iid", Description: "Internal ID of the issue to triage", Required: true},
			},
			template: strings.TrimSpace(`
Triage issue #{issue_iid} in project {project_id}.

Read the issue and its notes, then: classify it (bug, feature, question),
judge severity, check for duplicates with list_issues, and apply suitable
labels with update_issue. Summarize your reasoning in a comment.
`),
		},
		{
			Name:        "release-notes",
			Description: "Draft release notes from the commits between two refs",
			Arguments: []Argument{
				{Name: "project_id", Description: "Project ID or namespace/path", Required: true},
				{Name: "from_ref", Description: "Previous release tag or ref", Required: true},
				{Name: "to_ref", Description: "New release tag or ref", Required: true},
			},
			template: strings.TrimSpace(`
Draft release notes for project {project_id} covering {from_ref}..{to_ref}.

Use compare_refs to list the commits in range, group them by area, and
highlight breaking changes. Produce a Markdown document suitable for
create_release.
`),
		},
		{
			Name:        "pipeline-failure-analysis",
			Description: "Analyze a failed pipeline and propose a fix",
			Arguments: []Argument{
				{Name: "project_id", Description: "Project ID or namespace/path", Required: true},
				{Name: "pipeline_id", Description: "ID of the failed pipeline", Required: true},
			},
			template: strings.TrimSpace(`
Analyze failed pipeline {pipeline_id} in project {project_id}.

List its jobs with list_pipeline_jobs, pull the logs of the failed ones with
get_job_log, and identify the root cause. Propose a concrete fix and, when
the failure looks transient, retry with retry_job.
`),
		},
	}
}
