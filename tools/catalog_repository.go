package tools

import "github.com/wadew/gitlab-mcp-sub001/types"

func repositoryDefinitions() []definition {
	return []definition{
		// Branches
		{
			name:        "list_branches",
			description: "List repository branches",
			category:    "branch",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				opt("search", "string", "Filter branches by name. Optional."),
			},
			op: types.GitLabClient.ListBranches,
		},
		{
			name:        "get_branch",
			description: "Get a single repository branch",
			category:    "branch",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				req("branch", "string", "Branch name"),
			},
			op: types.GitLabClient.GetBranch,
		},
		{
			name:        "create_branch",
			description: "Create a new repository branch",
			category:    "branch",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				req("branch", "string", "Name of the new branch"),
				req("ref", "string", "Branch name or commit SHA to create the branch from"),
			},
			op: types.GitLabClient.CreateBranch,
		},
		{
			name:        "delete_branch",
			description: "Delete a repository branch",
			category:    "branch",
			annotation:  destructive,
			params: []Param{
				projectIDParam(),
				req("branch", "string", "Branch name"),
			},
			op: types.GitLabClient.DeleteBranch,
		},
		{
			name:        "delete_merged_branches",
			description: "Delete all branches already merged into the default branch",
			category:    "branch",
			annotation:  destructive,
			params:      []Param{projectIDParam()},
			op:          types.GitLabClient.DeleteMergedBranches,
		},

		// Tags
		{
			name:        "list_tags",
			description: "List repository tags",
			category:    "tag",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				opt("search", "string", "Filter tags by name. Optional."),
			},
			op: types.GitLabClient.ListTags,
		},
		{
			name:        "get_tag",
			description: "Get a single repository tag",
			category:    "tag",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				req("tag_name", "string", "Tag name"),
			},
			op: types.GitLabClient.GetTag,
		},
		{
			name:        "create_tag",
			description: "Create a new repository tag",
			category:    "tag",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				req("tag_name", "string", "Name of the new tag"),
				req("ref", "string", "Branch name or commit SHA to tag"),
				opt("message", "string", "Annotation message creating an annotated tag. Optional."),
			},
			op: types.GitLabClient.CreateTag,
		},
		{
			name:        "delete_tag",
			description: "Delete a repository tag",
			category:    "tag",
			annotation:  destructive,
			params: []Param{
				projectIDParam(),
				req("tag_name", "string", "Tag name"),
			},
			op: types.GitLabClient.DeleteTag,
		},

		// Files
		{
			name:        "get_file",
			description: "Get a repository file including its metadata and base64 content",
			category:    "file",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				req("file_path", "string", "Path of the file in the repository"),
				opt("ref", "string", "Branch, tag or commit SHA. Defaults to the default branch. Optional."),
			},
			op: types.GitLabClient.GetFile,
		},
		{
			name:        "create_file",
			description: "Create a new file in the repository",
			category:    "file",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				req("file_path", "string", "Path of the new file"),
				req("branch", "string", "Branch to commit to"),
				req("content", "string", "File content"),
				req("commit_message", "string", "Commit message"),
			},
			op: types.GitLabClient.CreateFile,
		},
		{
			name:        "update_file",
			description: "Update an existing repository file",
			category:    "file",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				req("file_path", "string", "Path of the file to update"),
				req("branch", "string", "Branch to commit to"),
				req("content", "string", "New file content"),
				req("commit_message", "string", "Commit message"),
				opt("last_commit_id", "string", "Last known commit SHA for conflict detection. Optional."),
			},
			op: types.GitLabClient.UpdateFile,
		},
		{
			name:        "delete_file",
			description: "Delete a repository file",
			category:    "file",
			annotation:  destructive,
			params: []Param{
				projectIDParam(),
				req("file_path", "string", "Path of the file to delete"),
				req("branch", "string", "Branch to commit to"),
				req("commit_message", "string", "Commit message"),
			},
			op: types.GitLabClient.DeleteFile,
		},
		{
			name:        "get_raw_file",
			description: "Get the raw content of a repository file",
			category:    "file",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				req("file_path", "string", "Path of the file in the repository"),
				opt("ref", "string", "Branch, tag or commit SHA. Defaults to the default branch. Optional."),
			},
			op: types.GitLabClient.GetRawFile,
		},

		// Commits
		{
			name:        "list_commits",
			description: "List repository commits",
			category:    "commit",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				opt("ref_name", "string", "Branch or tag to list commits from. Optional."),
				opt("path", "string", "Only commits touching this file path. Optional."),
				opt("since", "string", "Only commits after this ISO 8601 date. Optional."),
				opt("per_page", "integer", "Results per page, maximum 100. Optional."),
			},
			op: types.GitLabClient.ListCommits,
		},
		{
			name:        "get_commit",
			description: "Get a single commit",
			category:    "commit",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				req("sha", "string", "Commit SHA"),
			},
			op: types.GitLabClient.GetCommit,
		},
		{
			name:        "get_commit_diff",
			description: "Get the diff of a commit",
			category:    "commit",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				req("sha", "string", "Commit SHA"),
			},
			op: types.GitLabClient.GetCommitDiff,
		},
		{
			name:        "cherry_pick_commit",
			description: "Cherry-pick a commit onto a branch",
			category:    "commit",
			annotation:  mutating,
			params: []Param{
				projectIDParam(),
				req("sha", "string", "Commit SHA to cherry-pick"),
				req("branch", "string", "Branch to cherry-pick onto"),
			},
			op: types.GitLabClient.CherryPickCommit,
		},

		// Repository
		{
			name:        "compare_refs",
			description: "Compare two branches, tags or commits",
			category:    "repository",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				req("from", "string", "Base branch, tag or commit SHA"),
				req("to", "string", "Head branch, tag or commit SHA"),
			},
			op: types.GitLabClient.CompareRefs,
		},
		{
			name:        "get_repository_tree",
			description: "List files and directories in the repository tree",
			category:    "repository",
			annotation:  readOnly,
			params: []Param{
				projectIDParam(),
				opt("path", "string", "Subdirectory path to list. Optional."),
				opt("ref", "string", "Branch, tag or commit SHA. Optional."),
				opt("recursive", "boolean", "Traverse the tree recursively. Optional."),
			},
			op: types.GitLabClient.GetRepositoryTree,
		},
	}
}
