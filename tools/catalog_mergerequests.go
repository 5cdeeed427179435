package tools

import "github.com/wadew/gitlab-mcp-sub001/types"

func mrIIDParam() Param {
	return req("mr_iid", "integer", "Merge request internal ID within the project")
}

func mergeRequestDefinitions() []definition {
	return []definition{
		{
			name:        "list_merge_requests",
			description: "List merge requests of a project",
			category:    "merge_request",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				opt("state", "string", "Filter by state: opened, closed, locked or merged. Optional."),
				opt("target_branch", "string", "Filter by target branch. Optional."),
				opt("labels", "string", "Comma-separated label names. Optional."),
				opt("search", "string", "Filter by title and description. Optional."),
				opt("per_page", "integer", "Results per page, maximum 100. Optional."),
			},
			op: types.GitLabClient.ListMergeRequests,
		},
		{
			name:        "get_merge_request",
			description: "Get a single merge request by its internal ID",
			category:    "merge_request",
			annotation:  readOnly,
			params:      []Param{projectIDParam(), mrIIDParam()},
			op:          types.GitLabClient.GetMergeRequest,
		},
		{
			name:        "create_merge_request",
			description: "Create a new merge request",
			category:    "merge_request",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				req("source_branch", "string", "Source branch name"),
				req("target_branch", "string", "Target branch name"),
				req("title", "string", "Merge request title"),
				opt("description", "string", "Merge request description in Markdown. Optional."),
				opt("remove_source_branch", "boolean", "Delete the source branch when merged. Optional."),
				opt("draft", "boolean", "Create as draft. Optional."),
			},
			op: types.GitLabClient.CreateMergeRequest,
		},
		{
			name:        "update_merge_request",
			description: "Update an existing merge request",
			category:    "merge_request",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				mrIIDParam(),
				opt("title", "string", "New title. Optional."),
				opt("description", "string", "New description. Optional."),
				opt("target_branch", "string", "New target branch. Optional."),
				opt("labels", "string", "Replacement comma-separated label names. Optional."),
			},
			op: types.GitLabClient.UpdateMergeRequest,
		},
		{
			name:        "merge_merge_request",
			description: "Merge an open merge request",
			category:    "merge_request",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				mrIIDParam(),
				opt("merge_commit_message", "string", "Custom merge commit message. Optional."),
				opt("squash", "boolean", "Squash commits before merging. Optional."),
				opt("should_remove_source_branch", "boolean", "Delete the source branch after merging. Optional."),
			},
			op: types.GitLabClient.MergeMergeRequest,
		},
		{
			name:        "close_merge_request",
			description: "Close a merge request without merging",
			category:    "merge_request",
			annotation:  mutating,
			params:      []Param{projectIDParam(), mrIIDParam()},
			op:          types.GitLabClient.CloseMergeRequest,
		},
		{
			name:        "reopen_merge_request",
			description: "Reopen a closed merge request",
			category:    "merge_request",
			annotation:  mutating,
			params:      []Param{projectIDParam(), mrIIDParam()},
			op:          types.GitLabClient.ReopenMergeRequest,
		},
		{
			name:        "list_merge_request_notes",
			description: "List discussion notes of a merge request",
			category:    "merge_request",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				mrIIDParam(),
				opt("sort", "string", "Sort order: asc or desc. Optional."),
			},
			op: types.GitLabClient.ListMergeRequestNotes,
		},
		{
			name:        "create_merge_request_note",
			description: "Add a comment to a merge request",
			category:    "merge_request",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				mrIIDParam(),
				req("body", "string", "Comment body in Markdown"),
			},
			op: types.GitLabClient.CreateMergeRequestNote,
		},
		{
			name:        "get_merge_request_changes",
			description: "Get the file changes of a merge request",
			category:    "merge_request",
			annotation:  readOnly,
			params:      []Param{projectIDParam(), mrIIDParam()},
			op:          types.GitLabClient.GetMergeRequestChanges,
		},
		{
			name:        "approve_merge_request",
			description: "Approve a merge request",
			category:    "merge_request",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				mrIIDParam(),
				opt("sha", "string", "Head SHA the approval applies to. Optional."),
			},
			op: types.GitLabClient.ApproveMergeRequest,
		},
	}
}
