package types

import (
	"context"
)

// GitLabClient is the capability object backing every tool and resource.
// Implementations perform the actual GitLab REST calls; this module never
// talks HTTP itself. Each method takes the raw argument mapping supplied by
// the caller and returns plain JSON-compatible data (maps, slices, strings)
// or one of the typed errors in errors.go.
type GitLabClient interface {
	// Projects
	ListProjects(ctx context.Context, args map[string]any) (any, error)
	GetProject(ctx context.Context, args map[string]any) (any, error)
	CreateProject(ctx context.Context, args map[string]any) (any, error)
	UpdateProject(ctx context.Context, args map[string]any) (any, error)
	DeleteProject(ctx context.Context, args map[string]any) (any, error)
	ForkProject(ctx context.Context, args map[string]any) (any, error)
	ArchiveProject(ctx context.Context, args map[string]any) (any, error)
	UnarchiveProject(ctx context.Context, args map[string]any) (any, error)
	SearchProjects(ctx context.Context, args map[string]any) (any, error)
	ListProjectMembers(ctx context.Context, args map[string]any) (any, error)

	// Groups
	ListGroups(ctx context.Context, args map[string]any) (any, error)
	GetGroup(ctx context.Context, args map[string]any) (any, error)
	ListGroupProjects(ctx context.Context, args map[string]any) (any, error)

	// Users
	GetCurrentUser(ctx context.Context, args map[string]any) (any, error)
	GetUser(ctx context.Context, args map[string]any) (any, error)
	ListUsers(ctx context.Context, args map[string]any) (any, error)

	// Global search
	Search(ctx context.Context, args map[string]any) (any, error)

	// Issues
	ListIssues(ctx context.Context, args map[string]any) (any, error)
	GetIssue(ctx context.Context, args map[string]any) (any, error)
	CreateIssue(ctx context.Context, args map[string]any) (any, error)
	UpdateIssue(ctx context.Context, args map[string]any) (any, error)
	CloseIssue(ctx context.Context, args map[string]any) (any, error)
	ReopenIssue(ctx context.Context, args map[string]any) (any, error)
	ListIssueNotes(ctx context.Context, args map[string]any) (any, error)
	CreateIssueNote(ctx context.Context, args map[string]any) (any, error)

	// Merge requests
	ListMergeRequests(ctx context.Context, args map[string]any) (any, error)
	GetMergeRequest(ctx context.Context, args map[string]any) (any, error)
	CreateMergeRequest(ctx context.Context, args map[string]any) (any, error)
	UpdateMergeRequest(ctx context.Context, args map[string]any) (any, error)
	MergeMergeRequest(ctx context.Context, args map[string]any) (any, error)
	CloseMergeRequest(ctx context.Context, args map[string]any) (any, error)
	ReopenMergeRequest(ctx context.Context, args map[string]any) (any, error)
	ListMergeRequestNotes(ctx context.Context, args map[string]any) (any, error)
	CreateMergeRequestNote(ctx context.Context, args map[string]any) (any, error)
	GetMergeRequestChanges(ctx context.Context, args map[string]any) (any, error)
	ApproveMergeRequest(ctx context.Context, args map[string]any) (any, error)

	// Branches
	ListBranches(ctx context.Context, args map[string]any) (any, error)
	GetBranch(ctx context.Context, args map[string]any) (any, error)
	CreateBranch(ctx context.Context, args map[string]any) (any, error)
	DeleteBranch(ctx context.Context, args map[string]any) (any, error)
	DeleteMergedBranches(ctx context.Context, args map[string]any) (any, error)

	// Tags
	ListTags(ctx context.Context, args map[string]any) (any, error)
	GetTag(ctx context.Context, args map[string]any) (any, error)
	CreateTag(ctx context.Context, args map[string]any) (any, error)
	DeleteTag(ctx context.Context, args map[string]any) (any, error)

	// Repository files
	GetFile(ctx context.Context, args map[string]any) (any, error)
	CreateFile(ctx context.Context, args map[string]any) (any, error)
	UpdateFile(ctx context.Context, args map[string]any) (any, error)
	DeleteFile(ctx context.Context, args map[string]any) (any, error)
	GetRawFile(ctx context.Context, args map[string]any) (any, error)

	// Commits
	ListCommits(ctx context.Context, args map[string]any) (any, error)
	GetCommit(ctx context.Context, args map[string]any) (any, error)
	GetCommitDiff(ctx context.Context, args map[string]any) (any, error)
	CherryPickCommit(ctx context.Context, args map[string]any) (any, error)

	// Repository
	CompareRefs(ctx context.Context, args map[string]any) (any, error)
	GetRepositoryTree(ctx context.Context, args map[string]any) (any, error)

	// Pipelines
	ListPipelines(ctx context.Context, args map[string]any) (any, error)
	GetPipeline(ctx context.Context, args map[string]any) (any, error)
	CreatePipeline(ctx context.Context, args map[string]any) (any, error)
	RetryPipeline(ctx context.Context, args map[string]any) (any, error)
	CancelPipeline(ctx context.Context, args map[string]any) (any, error)
	DeletePipeline(ctx context.Context, args map[string]any) (any, error)
	ListPipelineJobs(ctx context.Context, args map[string]any) (any, error)

	// Jobs
	GetJob(ctx context.Context, args map[string]any) (any, error)
	GetJobLog(ctx context.Context, args map[string]any) (any, error)
	RetryJob(ctx context.Context, args map[string]any) (any, error)
	CancelJob(ctx context.Context, args map[string]any) (any, error)
	PlayJob(ctx context.Context, args map[string]any) (any, error)

	// Labels
	ListLabels(ctx context.Context, args map[string]any) (any, error)
	GetLabel(ctx context.Context, args map[string]any) (any, error)
	CreateLabel(ctx context.Context, args map[string]any) (any, error)
	UpdateLabel(ctx context.Context, args map[string]any) (any, error)
	DeleteLabel(ctx context.Context, args map[string]any) (any, error)

	// Milestones
	ListMilestones(ctx context.Context, args map[string]any) (any, error)
	GetMilestone(ctx context.Context, args map[string]any) (any, error)
	CreateMilestone(ctx context.Context, args map[string]any) (any, error)
	UpdateMilestone(ctx context.Context, args map[string]any) (any, error)
	DeleteMilestone(ctx context.Context, args map[string]any) (any, error)

	// Releases
	ListReleases(ctx context.Context, args map[string]any) (any, error)
	GetRelease(ctx context.Context, args map[string]any) (any, error)
	CreateRelease(ctx context.Context, args map[string]any) (any, error)
	UpdateRelease(ctx context.Context, args map[string]any) (any, error)
	DeleteRelease(ctx context.Context, args map[string]any) (any, error)

	// Snippets
	ListSnippets(ctx context.Context, args map[string]any) (any, error)
	GetSnippet(ctx context.Context, args map[string]any) (any, error)
	CreateSnippet(ctx context.Context, args map[string]any) (any, error)
	UpdateSnippet(ctx context.Context, args map[string]any) (any, error)
	DeleteSnippet(ctx context.Context, args map[string]any) (any, error)

	// Wiki
	ListWikiPages(ctx context.Context, args map[string]any) (any, error)
	GetWikiPage(ctx context.Context, args map[string]any) (any, error)
	CreateWikiPage(ctx context.Context, args map[string]any) (any, error)
	UpdateWikiPage(ctx context.Context, args map[string]any) (any, error)
	DeleteWikiPage(ctx context.Context, args map[string]any) (any, error)
}

// AuditLog records tool invocations and confirmation requests. A nil AuditLog
// disables auditing; callers must treat it as optional.
type AuditLog interface {
	RecordInvocation(ctx context.Context, record InvocationRecord) error
	RecordElicitation(ctx context.Context, record ElicitationRecord) error
	RecentInvocations(ctx context.Context, limit int) ([]InvocationRecord, error)
	Close() error
}
