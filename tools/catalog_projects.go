package tools

import "github.com/wadew/gitlab-mcp-sub001/types"

// Shared parameter builders. project_id shows up in almost every tool.
func projectIDParam() Param {
	return req("project_id", "string", "Project ID or URL-encoded namespace/path")
}

func projectDefinitions() []definition {
	return []definition{
		{
			name:        "list_projects",
			description: "List projects accessible to the authenticated user",
			category:    "project",
			annotation:  readOnly,
			params: []Param{
				opt("search", "string", "Filter projects by name. Optional."),
				opt("owned", "boolean", "Limit to projects owned by the current user. Optional."),
				opt("per_page", "integer", "Results per page, maximum 100. Optional."),
				opt("page", "integer", "Page number. Optional."),
			},
			op: types.GitLabClient.ListProjects,
		},
		{
			name:        "get_project",
			description: "Get details of a single project",
			category:    "project",
			annotation:  readOnly,
			params:      []Param{projectIDParam()},
			op:          types.GitLabClient.GetProject,
		},
		{
			name:        "create_project",
			description: "Create a new project",
			category:    "project",
			annotation:  mutating,
			params: []Param{
				req("name", "string", "Name of the new project"),
				opt("namespace_id", "integer", "Namespace to create the project in. Optional."),
				opt("description", "string", "Project description. Optional."),
				opt("visibility", "string", "Visibility level: private, internal or public. Optional."),
			},
			op: types.GitLabClient.CreateProject,
		},
		{
			name:        "update_project",
			description: "Update settings of an existing project",
			category:    "project",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				opt("name", "string", "New project name. Optional."),
				opt("description", "string", "New project description. Optional."),
				opt("default_branch", "string", "New default branch. Optional."),
				opt("visibility", "string", "New visibility level. Optional."),
			},
			op: types.GitLabClient.UpdateProject,
		},
		{
			name:        "delete_project",
			description: "Delete a project permanently",
			category:    "project",
			annotation:  destructive,
			params:      []Param{projectIDParam()},
			op:          types.GitLabClient.DeleteProject,
		},
		{
			name:        "fork_project",
			description: "Fork a project into a namespace",
			category:    "project",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				opt("namespace_path", "string", "Target namespace path for the fork. Optional."),
			},
			op: types.GitLabClient.ForkProject,
		},
		{
			name:        "archive_project",
			description: "Archive a project",
			category:    "project",
			annotation:  mutating,
			params:      []Param{projectIDParam()},
			op:          types.GitLabClient.ArchiveProject,
		},
		{
			name:        "unarchive_project",
			description: "Unarchive a project",
			category:    "project",
			annotation:  mutating,
			params:      []Param{projectIDParam()},
			op:          types.GitLabClient.UnarchiveProject,
		},
		{
			name:        "search_projects",
			description: "Search projects by name or path",
			category:    "project",
			annotation:  readOnly,
			params: []Param{
				req("search", "string", "Search term to match against project names and paths"),
				opt("per_page", "integer", "Results per page, maximum 100. Optional."),
			},
			op: types.GitLabClient.SearchProjects,
		},
		{
			name:        "list_project_members",
			description: "List members of a project",
			category:    "project",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				opt("query", "string", "Filter members by name. Optional."),
			},
			op: types.GitLabClient.ListProjectMembers,
		},
		{
			name:        "list_groups",
			description: "List groups accessible to the authenticated user",
			category:    "group",
			annotation:  readOnly,
			params: []Param{
				opt("search", "string", "Filter groups by name. Optional."),
				opt("per_page", "integer", "Results per page, maximum 100. Optional."),
			},
			op: types.GitLabClient.ListGroups,
		},
		{
			name:        "get_group",
			description: "Get details of a single group",
			category:    "group",
			annotation:  readOnly,
			params: []Param{
				req("group_id", "string", "Group ID or URL-encoded path"),
			},
			op: types.GitLabClient.GetGroup,
		},
		{
			name:        "list_group_projects",
			description: "List projects belonging to a group",
			category:    "group",
			annotation:  readOnly,
			params: []Param{
				req("group_id", "string", "Group ID or URL-encoded path"),
				opt("include_subgroups", "boolean", "Include projects from subgroups. Optional."),
			},
			op: types.GitLabClient.ListGroupProjects,
		},
		{
			name:        "get_current_user",
			description: "Get the authenticated user's profile",
			category:    "user",
			annotation:  readOnly,
			params:      nil,
			op:          types.GitLabClient.GetCurrentUser,
		},
		{
			name:        "get_user",
			description: "Get a user's public profile by ID or username",
			category:    "user",
			annotation:  readOnly,
			params: []Param{
				req("user_id", "string", "User ID or username"),
			},
			op: types.GitLabClient.GetUser,
		},
		{
			name:        "list_users",
			description: "List users visible to the authenticated user",
			category:    "user",
			annotation:  readOnly,
			params: []Param{
				opt("username", "string", "Filter by exact username. Optional."),
				opt("search", "string", "Filter by name or email. Optional."),
			},
			op: types.GitLabClient.ListUsers,
		},
		{
			name:        "search",
			description: "Search globally across GitLab scopes",
			category:    "search",
			annotation:  readOnly,
			params: []Param{
				req("scope", "string", "Search scope: projects, issues, merge_requests, blobs, commits or users"),
				req("search", "string", "Search term"),
			},
			op: types.GitLabClient.Search,
		},
	}
}
