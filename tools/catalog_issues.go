package tools

import "github.com/wadew/gitlab-mcp-sub001/types"

func issueIIDParam() Param {
	return req("issue_iid", "integer", "Issue internal ID within the project")
}

func issueDefinitions() []definition {
	return []definition{
		{
			name:        "list_issues",
			description: "List issues of a project",
			category:    "issue",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				opt("state", "string", "Filter by state: opened or closed. Optional."),
				opt("labels", "string", "Comma-separated label names. Optional."),
				opt("assignee_username", "string", "Filter by assignee username. Optional."),
				opt("search", "string", "Filter by title and description. Optional."),
				opt("per_page", "integer", "Results per page, maximum 100. Optional."),
			},
			op: types.GitLabClient.ListIssues,
		},
		{
			name:        "get_issue",
			description: "Get a single issue by its internal ID",
			category:    "issue",
			annotation:  readOnly,
			params:      []Param{projectIDParam(), issueIIDParam()},
			op:          types.GitLabClient.GetIssue,
		},
		{
			name:        "create_issue",
			description: "Create a new issue in a project",
			category:    "issue",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				req("title", "string", "Issue title"),
				opt("description", "string", "Issue description in Markdown. Optional."),
				opt("labels", "string", "Comma-separated label names. Optional."),
				opt("assignee_ids", "string", "Comma-separated assignee user IDs. Optional."),
				opt("milestone_id", "integer", "Milestone to assign. Optional."),
			},
			op: types.GitLabClient.CreateIssue,
		},
		{
			name:        "update_issue",
			description: "Update an existing issue",
			category:    "issue",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				issueIIDParam(),
				opt("title", "string", "New title. Optional."),
				opt("description", "string", "New description. Optional."),
				opt("labels", "string", "Replacement comma-separated label names. Optional."),
				opt("milestone_id", "integer", "New milestone. Optional."),
			},
			op: types.GitLabClient.UpdateIssue,
		},
		{
			name:        "close_issue",
			description: "Close an issue",
			category:    "issue",
			annotation:  mutating,
			params:      []Param{projectIDParam(), issueIIDParam()},
			op:          types.GitLabClient.CloseIssue,
		},
		{
			name:        "reopen_issue",
			description: "Reopen a closed issue",
			category:    "issue",
			annotation:  mutating,
			params:      []Param{projectIDParam(), issueIIDParam()},
			op:          types.GitLabClient.ReopenIssue,
		},
		{
			name:        "list_issue_notes",
			description: "List discussion notes of an issue",
			category:    "issue",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				issueIIDParam(),
				opt("sort", "string", "Sort order: asc or desc. Optional."),
			},
			op: types.GitLabClient.ListIssueNotes,
		},
		{
			name:        "create_issue_note",
			description: "Add a comment to an issue",
			category:    "issue",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				issueIIDParam(),
				req("body", "string", "Comment body in Markdown"),
			},
			op: types.GitLabClient.CreateIssueNote,
		},
	}
}
