// Package elicitation generates human-readable confirmation artifacts for
// destructive or hard-to-reverse tools. The registry only produces messages;
// it has no veto over dispatch. Enforcement is layered on top by the policy
// gate.
package elicitation

import (
	"fmt"
	"strings"
)

// Severity of a confirmation request.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Config describes the confirmation required for one tool. MessageTemplate
// uses {placeholder} substitution points filled from the call arguments.
// Condition is an informational tag; the registry does not evaluate it.
type Config struct {
	ToolName        string
	MessageTemplate string
	Severity        Severity
	Condition       string
}

// Request is a rendered confirmation artifact. It has no persistent
// identity; the caller consumes it immediately.
type Request struct {
	ToolName  string
	Message   string
	Severity  Severity
	Arguments map[string]any
}

// Registry maps tool names to confirmation configs. Built once at
// construction; read-only afterwards.
type Registry struct {
	configs map[string]Config
}

// NewRegistry builds a registry from the default catalog.
func NewRegistry() *Registry {
	return NewRegistryWith(DefaultConfigs())
}

// NewRegistryWith builds a registry from an explicit config list. Later
// entries for the same tool name replace earlier ones; one config per name.
func NewRegistryWith(configs []Config) *Registry {
	byName := make(map[string]Config, len(configs))
	for _, c := range configs {
		byName[c.ToolName] = c
	}
	return &Registry{configs: byName}
}

// RequiresConfirmation reports whether name is in the confirmation catalog.
func (r *Registry) RequiresConfirmation(name string) bool {
	_, ok := r.configs[name]
	return ok
}

// ConfigFor returns the config for name, or nil when no confirmation is
// required.
func (r *Registry) ConfigFor(name string) *Config {
	c, ok := r.configs[name]
	if !ok {
		return nil
	}
	return &c
}

// FormatMessage renders the confirmation message for name from args. It
// never fails: placeholders without a matching argument stay literal, so a
// sparse argument set degrades the message instead of crashing the
// confirmation flow.
func (r *Registry) FormatMessage(name string, args map[string]any) string {
	c, ok := r.configs[name]
	if !ok {
		return ""
	}
	return substitute(c.MessageTemplate, args)
}

// CreateRequest bundles the rendered message with severity and the raw
// arguments. Returns nil for tools outside the catalog.
func (r *Registry) CreateRequest(name string, args map[string]any) *Request {
	c, ok := r.configs[name]
	if !ok {
		return nil
	}
	return &Request{
		ToolName:  name,
		Message:   substitute(c.MessageTemplate, args),
		Severity:  c.Severity,
		Arguments: args,
	}
}

// substitute replaces {key} with the argument's value for every key present
// in args. Unknown placeholders are left untouched.
func substitute(template string, args map[string]any) string {
	out := template
	for key, value := range args {
		out = strings.ReplaceAll(out, "{"+key+"}", fmt.Sprintf("%v", value))
	}
	return out
}

// DefaultConfigs enumerates the tools that need confirmation. They are
// listed by name rather than inferred from the destructive annotation:
// severity and phrasing differ per operation and are authored deliberately.
func DefaultConfigs() []Config {
	return []Config{
		{
			ToolName:        "delete_project",
			MessageTemplate: "Permanently delete project {project_id} and all of its data?",
			Severity:        SeverityWarning,
		},
		{
			ToolName:        "delete_branch",
			MessageTemplate: "Delete branch {branch} in project {project_id}?",
			Severity:        SeverityWarning,
		},
		{
			ToolName:        "delete_merged_branches",
			MessageTemplate: "Delete all merged branches in project {project_id}?",
			Severity:        SeverityWarning,
		},
		{
			ToolName:        "delete_tag",
			MessageTemplate: "Delete tag {tag_name} in project {project_id}?",
			Severity:        SeverityWarning,
		},
		{
			ToolName:        "delete_file",
			MessageTemplate: "Delete file {file_path} on branch {branch} in project {project_id}?",
			Severity:        SeverityWarning,
		},
		{
			ToolName:        "delete_pipeline",
			MessageTemplate: "Delete pipeline {pipeline_id} and its job logs in project {project_id}?",
			Severity:        SeverityWarning,
		},
		{
			ToolName:        "delete_label",
			MessageTemplate: "Delete label {label_id} in project {project_id}?",
			Severity:        SeverityWarning,
		},
		{
			ToolName:        "delete_milestone",
			MessageTemplate: "Delete milestone {milestone_id} in project {project_id}?",
			Severity:        SeverityWarning,
		},
		{
			ToolName:        "delete_release",
			MessageTemplate: "Delete release {tag_name} in project {project_id}? The tag itself is kept.",
			Severity:        SeverityWarning,
		},
		{
			ToolName:        "delete_snippet",
			MessageTemplate: "Delete snippet {snippet_id} in project {project_id}?",
			Severity:        SeverityWarning,
		},
		{
			ToolName:        "delete_wiki_page",
			MessageTemplate: "Delete wiki page {slug} in project {project_id}?",
			Severity:        SeverityWarning,
		},
		{
			ToolName:        "merge_merge_request",
			MessageTemplate: "Merge merge request !{mr_iid} in project {project_id}?",
			Severity:        SeverityWarning,
		},
		{
			ToolName:        "close_issue",
			MessageTemplate: "Close issue #{issue_iid} in project {project_id}?",
			Severity:        SeverityInfo,
		},
		{
			ToolName:        "close_merge_request",
			MessageTemplate: "Close merge request !{mr_iid} in project {project_id} without merging?",
			Severity:        SeverityInfo,
		},
		{
			ToolName:        "cancel_pipeline",
			MessageTemplate: "Cancel running pipeline {pipeline_id} in project {project_id}?",
			Severity:        SeverityInfo,
		},
		{
			ToolName:        "cancel_job",
			MessageTemplate: "Cancel running job {job_id} in project {project_id}?",
			Severity:        SeverityInfo,
		},
	}
}
