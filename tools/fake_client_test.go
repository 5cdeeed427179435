package tools

import (
	"context"

	"github.com/wadew/gitlab-mcp-sub001/types"
)

// fakeClient stubs the capability object for dispatch tests. Only the methods
// a test actually invokes are overridden; calling anything else panics on the
// embedded nil interface, which is exactly the signal we want.
type fakeClient struct {
	types.GitLabClient

	calls    []string
	lastArgs map[string]any
	result   any
	err      error
}

func (f *fakeClient) call(method string, args map[string]any) (any, error) {
	f.calls = append(f.calls, method)
	f.lastArgs = args
	return f.result, f.err
}

func (f *fakeClient) ListProjects(ctx context.Context, args map[string]any) (any, error) {
	return f.call("ListProjects", args)
}

func (f *fakeClient) GetProject(ctx context.Context, args map[string]any) (any, error) {
	return f.call("GetProject", args)
}

func (f *fakeClient) DeleteBranch(ctx context.Context, args map[string]any) (any, error) {
	return f.call("DeleteBranch", args)
}

func (f *fakeClient) CreateIssue(ctx context.Context, args map[string]any) (any, error) {
	return f.call("CreateIssue", args)
}

func (f *fakeClient) MergeMergeRequest(ctx context.Context, args map[string]any) (any, error) {
	return f.call("MergeMergeRequest", args)
}
