package tools

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/wadew/gitlab-mcp-sub001/types"
)

// auditSpy collects records in memory.
type auditSpy struct {
	invocations  []types.InvocationRecord
	elicitations []types.ElicitationRecord
}

func (a *auditSpy) RecordInvocation(ctx context.Context, record types.InvocationRecord) error {
	a.invocations = append(a.invocations, record)
	return nil
}

func (a *auditSpy) RecordElicitation(ctx context.Context, record types.ElicitationRecord) error {
	a.elicitations = append(a.elicitations, record)
	return nil
}

func (a *auditSpy) RecentInvocations(ctx context.Context, limit int) ([]types.InvocationRecord, error) {
	return a.invocations, nil
}

func (a *auditSpy) Close() error { return nil }

// allowGate lets everything through.
type allowGate struct{}

func (allowGate) Check(ctx context.Context, name string, args map[string]any, ann Annotation) error {
	return nil
}

func TestMCPToolCarriesAnnotationsAndSchema(t *testing.T) {
	t.Parallel()

	registry := builtinRegistry(t, &fakeClient{})
	reg, ok := registry.Get("delete_branch")
	require.True(t, ok)

	tool := MCPTool(reg, false)
	require.Equal(t, "delete_branch", tool.Name)
	require.True(t, *tool.Annotations.DestructiveHint)
	require.False(t, *tool.Annotations.ReadOnlyHint)
	require.Contains(t, tool.InputSchema.Properties, "project_id")
	require.Contains(t, tool.InputSchema.Properties, "branch")
	require.NotContains(t, tool.InputSchema.Properties, ConfirmedArg)
	require.ElementsMatch(t, []string{"project_id", "branch"}, tool.InputSchema.Required)
}

func TestMCPToolAdvertisesConfirmationFlag(t *testing.T) {
	t.Parallel()

	registry := builtinRegistry(t, &fakeClient{})
	reg, ok := registry.Get("delete_branch")
	require.True(t, ok)

	tool := MCPTool(reg, true)
	require.Contains(t, tool.InputSchema.Properties, ConfirmedArg)
	// The approval flag is advertised but never required by the schema.
	require.NotContains(t, tool.InputSchema.Required, ConfirmedArg)
}

func TestMCPHandlerSuccessRecordsAudit(t *testing.T) {
	t.Parallel()

	client := &fakeClient{result: map[string]any{"name": "app"}}
	registry := builtinRegistry(t, client)
	audit := &auditSpy{}

	handler := MCPHandler(registry, "get_project", allowGate{}, audit, nil)
	result, err := handler(context.Background(), callRequest(map[string]any{"project_id": "group/app"}))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	require.Equal(t, "app", payload["name"])

	require.Len(t, audit.invocations, 1)
	require.Equal(t, "get_project", audit.invocations[0].ToolName)
	require.Equal(t, "ok", audit.invocations[0].Outcome)
}

func TestMCPHandlerGateDenial(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	registry := builtinRegistry(t, client)
	audit := &auditSpy{}

	handler := MCPHandler(registry, "delete_branch", denyGate{err: errors.New("confirmation required")}, audit, nil)
	result, err := handler(context.Background(), callRequest(map[string]any{
		"project_id": "group/app",
		"branch":     "stale",
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)

	// The client must never be reached on a denial.
	require.Empty(t, client.calls)
	require.Len(t, audit.invocations, 1)
	require.Equal(t, "denied", audit.invocations[0].Outcome)
}

func TestMCPHandlerToolErrorIsMCPError(t *testing.T) {
	t.Parallel()

	client := &fakeClient{err: errors.New("gitlab is down")}
	registry := builtinRegistry(t, client)
	audit := &auditSpy{}

	handler := MCPHandler(registry, "get_project", nil, audit, nil)
	result, err := handler(context.Background(), callRequest(map[string]any{"project_id": "group/app"}))
	require.NoError(t, err)
	require.True(t, result.IsError)

	require.Len(t, audit.invocations, 1)
	require.Equal(t, "error", audit.invocations[0].Outcome)
	require.Equal(t, "gitlab is down", audit.invocations[0].Error)
}

func TestMCPHandlerStripsConfirmationFlag(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	registry := builtinRegistry(t, client)

	handler := MCPHandler(registry, "delete_branch", allowGate{}, nil, nil)
	_, err := handler(context.Background(), callRequest(map[string]any{
		"project_id": "group/app",
		"branch":     "stale",
		ConfirmedArg: true,
	}))
	require.NoError(t, err)
	require.NotContains(t, client.lastArgs, ConfirmedArg)
}
