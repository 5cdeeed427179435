package tools

import "github.com/wadew/gitlab-mcp-sub001/types"

// Labels, milestones, releases, snippets and wiki pages: uniform CRUD
// surfaces, kept together.
func contentDefinitions() []definition {
	return []definition{
		// Labels
		{
			name:        "list_labels",
			description: "List labels of a project",
			category:    "label",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				opt("search", "string", "Filter labels by keyword. Optional."),
			},
			op: types.GitLabClient.ListLabels,
		},
		{
			name:        "get_label",
			description: "Get a single label",
			category:    "label",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				req("label_id", "string", "Label ID or name"),
			},
			op: types.GitLabClient.GetLabel,
		},
		{
			name:        "create_label",
			description: "Create a new label in a project",
			category:    "label",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				req("name", "string", "Label name"),
				req("color", "string", "Label color as a hex value, for example #FF0000"),
				opt("description", "string", "Label description. Optional."),
			},
			op: types.GitLabClient.CreateLabel,
		},
		{
			name:        "update_label",
			description: "Update an existing label",
			category:    "label",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				req("label_id", "string", "Label ID or name"),
				opt("new_name", "string", "New label name. Optional."),
				opt("color", "string", "New label color as a hex value. Optional."),
				opt("description", "string", "New label description. Optional."),
			},
			op: types.GitLabClient.UpdateLabel,
		},
		{
			name:        "delete_label",
			description: "Delete a label from a project",
			category:    "label",
			annotation:  destructive,
			params: []Param{
				projectIDParam(),
				req("label_id", "string", "Label ID or name"),
			},
			op: types.GitLabClient.DeleteLabel,
		},

		// Milestones
		{
			name:        "list_milestones",
			description: "List milestones of a project",
			category:    "milestone",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				opt("state", "string", "Filter by state: active or closed. Optional."),
			},
			op: types.GitLabClient.ListMilestones,
		},
		{
			name:        "get_milestone",
			description: "Get a single milestone",
			category:    "milestone",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				req("milestone_id", "integer", "Milestone ID"),
			},
			op: types.GitLabClient.GetMilestone,
		},
		{
			name:        "create_milestone",
			description: "Create a new milestone in a project",
			category:    "milestone",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				req("title", "string", "Milestone title"),
				opt("description", "string", "Milestone description. Optional."),
				opt("due_date", "string", "Due date as YYYY-MM-DD. Optional."),
				opt("start_date", "string", "Start date as YYYY-MM-DD. Optional."),
			},
			op: types.GitLabClient.CreateMilestone,
		},
		{
			name:        "update_milestone",
			description: "Update an existing milestone",
			category:    "milestone",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				req("milestone_id", "integer", "Milestone ID"),
				opt("title", "string", "New title. Optional."),
				opt("description", "string", "New description. Optional."),
				opt("state_event", "string", "State transition: close or activate. Optional."),
			},
			op: types.GitLabClient.UpdateMilestone,
		},
		{
			name:        "delete_milestone",
			description: "Delete a milestone from a project",
			category:    "milestone",
			annotation:  destructive,
			params: []Param{
				projectIDParam(),
				req("milestone_id", "integer", "Milestone ID"),
			},
			op: types.GitLabClient.DeleteMilestone,
		},

		// Releases
		{
			name:        "list_releases",
			description: "List releases of a project",
			category:    "release",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				opt("per_page", "integer", "Results per page, maximum 100. Optional."),
			},
			op: types.GitLabClient.ListReleases,
		},
		{
			name:        "get_release",
			description: "Get a single release by tag name",
			category:    "release",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				req("tag_name", "string", "Tag name of the release"),
			},
			op: types.GitLabClient.GetRelease,
		},
		{
			name:        "create_release",
			description: "Create a new release from a tag",
			category:    "release",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				req("tag_name", "string", "Tag to create the release from"),
				opt("name", "string", "Release name. Optional."),
				opt("description", "string", "Release notes in Markdown. Optional."),
				opt("ref", "string", "Ref to create the tag from when it does not exist yet. Optional."),
			},
			op: types.GitLabClient.CreateRelease,
		},
		{
			name:        "update_release",
			description: "Update an existing release",
			category:    "release",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				req("tag_name", "string", "Tag name of the release"),
				opt("name", "string", "New release name. Optional."),
				opt("description", "string", "New release notes. Optional."),
			},
			op: types.GitLabClient.UpdateRelease,
		},
		{
			name:        "delete_release",
			description: "Delete a release, keeping the underlying tag",
			category:    "release",
			annotation:  destructive,
			params: []Param{
				projectIDParam(),
				req("tag_name", "string", "Tag name of the release"),
			},
			op: types.GitLabClient.DeleteRelease,
		},

		// Snippets
		{
			name:        "list_snippets",
			description: "List snippets of a project",
			category:    "snippet",
			annotation:  readOnly,
			params:      []Param{projectIDParam()},
			op:          types.GitLabClient.ListSnippets,
		},
		{
			name:        "get_snippet",
			description: "Get a single snippet including its content",
			category:    "snippet",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				req("snippet_id", "integer", "Snippet ID"),
			},
			op: types.GitLabClient.GetSnippet,
		},
		{
			name:        "create_snippet",
			description: "Create a new snippet in a project",
			category:    "snippet",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				req("title", "string", "Snippet title"),
				req("file_name", "string", "File name of the snippet"),
				req("content", "string", "Snippet content"),
				opt("visibility", "string", "Visibility level: private, internal or public. Optional."),
			},
			op: types.GitLabClient.CreateSnippet,
		},
		{
			name:        "update_snippet",
			description: "Update an existing snippet",
			category:    "snippet",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				req("snippet_id", "integer", "Snippet ID"),
				opt("title", "string", "New title. Optional."),
				opt("file_name", "string", "New file name. Optional."),
				opt("content", "string", "New content. Optional."),
			},
			op: types.GitLabClient.UpdateSnippet,
		},
		{
			name:        "delete_snippet",
			description: "Delete a snippet from a project",
			category:    "snippet",
			annotation:  destructive,
			params: []Param{
				projectIDParam(),
				req("snippet_id", "integer", "Snippet ID"),
			},
			op: types.GitLabClient.DeleteSnippet,
		},

		// Wiki
		{
			name:        "list_wiki_pages",
			description: "List wiki pages of a project",
			category:    "wiki",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				opt("with_content", "boolean", "Include page content in the listing. Optional."),
			},
			op: types.GitLabClient.ListWikiPages,
		},
		{
			name:        "get_wiki_page",
			description: "Get a single wiki page",
			category:    "wiki",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				req("slug", "string", "URL-encoded slug of the wiki page"),
			},
			op: types.GitLabClient.GetWikiPage,
		},
		{
			name:        "create_wiki_page",
			description: "Create a new wiki page",
			category:    "wiki",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				req("title", "string", "Wiki page title"),
				req("content", "string", "Wiki page content"),
				opt("format", "string", "Content format: markdown, rdoc, asciidoc or org. Optional."),
			},
			op: types.GitLabClient.CreateWikiPage,
		},
		{
			name:        "update_wiki_page",
			description: "Update an existing wiki page",
			category:    "wiki",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				req("slug", "string", "URL-encoded slug of the wiki page"),
				opt("title", "string", "New title. Optional."),
				opt("content", "string", "New content. Optional."),
				opt("format", "string", "New content format. Optional."),
			},
			op: types.GitLabClient.UpdateWikiPage,
		},
		{
			name:        "delete_wiki_page",
			description: "Delete a wiki page",
			category:    "wiki",
			annotation:  destructive,
			params: []Param{
				projectIDParam(),
				req("slug", "string", "URL-encoded slug of the wiki page"),
			},
			op: types.GitLabClient.DeleteWikiPage,
		},
	}
}
