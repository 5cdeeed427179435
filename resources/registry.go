// Package resources exposes read-only GitLab views addressable by
// gitlab:// URIs, either as static resources or as parameterized templates.
package resources

import (
	"regexp"
	"sort"
)

// Scheme is the URI scheme every resource lives under.
const Scheme = "gitlab"

// Descriptor is a static resource entry.
type Descriptor struct {
	URI         string
	Name        string
	Description string
	MIMEType    string
}

// Template is a parameterized resource entry. Pattern is the compiled
// matcher; ParamNames name its capture groups in order.
type Template struct {
	URITemplate string
	Name        string
	Description string
	MIMEType    string
	ParamNames  []string

	pattern *regexp.Regexp
	source  string
}

// Match is the result of resolving a URI.
type Match struct {
	Static   bool
	Resource *Descriptor // set when Static
	Template *Template   // set otherwise
	Params   map[string]string
}

// Registry holds the resource catalog and resolves URIs against it.
type Registry struct {
	static    []Descriptor
	templates []Template // sorted most specific first
}

// NewRegistry builds the default catalog. Template order is decided once
// here: descending match-pattern length, so that a literal-heavy pattern
// (an exact /issues/open suffix) wins over a more general parameterized one
// whenever both could structurally match; equal lengths keep declaration
// order.
func NewRegistry() *Registry {
	r := &Registry{
		static: []Descriptor{
			{
				URI:         "gitlab://projects",
				Name:        "Projects",
				Description: "Projects accessible to the authenticated user",
				MIMEType:    "application/json",
			},
			{
				URI:         "gitlab://user/current",
				Name:        "Current user",
				Description: "Profile of the authenticated user",
				MIMEType:    "application/json",
			},
			{
				URI:         "gitlab://groups",
				Name:        "Groups",
				Description: "Groups accessible to the authenticated user",
				MIMEType:    "application/json",
			},
		},
		templates: []Template{
			template(
				"gitlab://project/{project_id}",
				"Project",
				"Project details. The id segment may be a namespace/path and may contain slashes.",
				"application/json",
				`^gitlab://project/(.+)$`,
				"project_id",
			),
			template(
				"gitlab://project/{project_id}/readme",
				"Project README",
				"README of the project's default branch",
				"text/markdown",
				`^gitlab://project/(.+)/readme$`,
				"project_id",
			),
			template(
				"gitlab://project/{project_id}/issues/open",
				"Open issues",
				"Issues currently open in the project",
				"application/json",
				`^gitlab://project/(.+)/issues/open$`,
				"project_id",
			),
			template(
				"gitlab://project/{project_id}/issues/{iid}",
				"Issue",
				"A single issue by internal ID",
				"application/json",
				`^gitlab://project/(.+)/issues/([0-9]+)$`,
				"project_id", "iid",
			),
			template(
				"gitlab://project/{project_id}/mrs/open",
				"Open merge requests",
				"Merge requests currently open in the project",
				"application/json",
				`^gitlab://project/(.+)/mrs/open$`,
				"project_id",
			),
			template(
				"gitlab://project/{project_id}/mrs/{iid}",
				"Merge request",
				"A single merge request by internal ID",
				"application/json",
				`^gitlab://project/(.+)/mrs/([0-9]+)$`,
				"project_id", "iid",
			),
			template(
				"gitlab://project/{project_id}/pipelines/recent",
				"Recent pipelines",
				"Most recent pipelines of the project",
				"application/json",
				`^gitlab://project/(.+)/pipelines/recent$`,
				"project_id",
			),
			template(
				"gitlab://project/{project_id}/pipelines/{pipeline_id}",
				"Pipeline",
				"A single pipeline by ID",
				"application/json",
				`^gitlab://project/(.+)/pipelines/([0-9]+)$`,
				"project_id", "pipeline_id",
			),
			template(
				"gitlab://project/{project_id}/branches",
				"Branches",
				"Branches of the project repository",
				"application/json",
				`^gitlab://project/(.+)/branches$`,
				"project_id",
			),
			template(
				"gitlab://project/{project_id}/file/{file_path}",
				"Repository file",
				"Raw content of a repository file. The path may contain slashes.",
				"text/plain",
				`^gitlab://project/(.+)/file/(.+)$`,
				"project_id", "file_path",
			),
		},
	}

	sort.SliceStable(r.templates, func(i, j int) bool {
		return len(r.templates[i].source) > len(r.templates[j].source)
	})
	return r
}

func template(uriTemplate, name, description, mimeType, pattern string, paramNames ...string) Template {
	return Template{
		URITemplate: uriTemplate,
		Name:        name,
		Description: description,
		MIMEType:    mimeType,
		ParamNames:  paramNames,
		pattern:     regexp.MustCompile(pattern),
		source:      pattern,
	}
}

// StaticResources returns a copy of the static catalog.
func (r *Registry) StaticResources() []Descriptor {
	out := make([]Descriptor, len(r.static))
	copy(out, r.static)
	return out
}

// Templates returns a copy of the template catalog in match order.
func (r *Registry) Templates() []Template {
	out := make([]Template, len(r.templates))
	copy(out, r.templates)
	return out
}

// MatchURI resolves uri against the catalog: exact static matches first,
// then templates most specific first. Returns nil when nothing matches.
func (r *Registry) MatchURI(uri string) *Match {
	for i := range r.static {
		if r.static[i].URI == uri {
			d := r.static[i]
			return &Match{Static: true, Resource: &d, Params: map[string]string{}}
		}
	}

	for i := range r.templates {
		t := r.templates[i]
		groups := t.pattern.FindStringSubmatch(uri)
		if groups == nil {
			continue
		}
		params := make(map[string]string, len(t.ParamNames))
		for j, name := range t.ParamNames {
			params[name] = groups[j+1]
		}
		return &Match{Template: &t, Params: params}
	}
	return nil
}
