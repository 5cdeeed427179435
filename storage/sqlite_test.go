package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wadew/gitlab-mcp-sub001/types"
)

func newTestAudit(t *testing.T) (*SQLiteAudit, context.Context) {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "audit.db")
	audit, err := NewSQLiteAudit(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, audit.Close())
	})
	return audit, ctx
}

func TestRecordInvocationRoundTrip(t *testing.T) {
	t.Parallel()

	audit, ctx := newTestAudit(t)

	err := audit.RecordInvocation(ctx, types.InvocationRecord{
		ToolName:  "delete_branch",
		Arguments: map[string]any{"project_id": "group/app", "branch": "stale"},
		Outcome:   "ok",
	})
	require.NoError(t, err)

	records, err := audit.RecentInvocations(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	require.NotEmpty(t, record.ID)
	require.NotEmpty(t, record.CreatedAt)
	require.Equal(t, "delete_branch", record.ToolName)
	require.Equal(t, "ok", record.Outcome)
	require.Empty(t, record.Error)
	require.Equal(t, "group/app", record.Arguments["project_id"])
	require.Equal(t, "stale", record.Arguments["branch"])
}

func TestRecordInvocationKeepsError(t *testing.T) {
	t.Parallel()

	audit, ctx := newTestAudit(t)

	err := audit.RecordInvocation(ctx, types.InvocationRecord{
		ToolName: "get_project",
		Outcome:  "error",
		Error:    "project not found",
	})
	require.NoError(t, err)

	records, err := audit.RecentInvocations(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "error", records[0].Outcome)
	require.Equal(t, "project not found", records[0].Error)
}

func TestRecentInvocationsOrderAndLimit(t *testing.T) {
	t.Parallel()

	audit, ctx := newTestAudit(t)

	baseTime := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := audit.RecordInvocation(ctx, types.InvocationRecord{
			ID:        fmt.Sprintf("record-%d", i),
			ToolName:  "list_projects",
			Outcome:   "ok",
			CreatedAt: baseTime.Add(time.Duration(i) * time.Minute).Format(time.RFC3339),
		})
		require.NoError(t, err)
	}

	records, err := audit.RecentInvocations(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "record-4", records[0].ID)
	require.Equal(t, "record-3", records[1].ID)
}

func TestRecentInvocationsDefaultLimit(t *testing.T) {
	t.Parallel()

	audit, ctx := newTestAudit(t)

	records, err := audit.RecentInvocations(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestRecordElicitation(t *testing.T) {
	t.Parallel()

	audit, ctx := newTestAudit(t)

	err := audit.RecordElicitation(ctx, types.ElicitationRecord{
		ToolName: "delete_project",
		Message:  "Delete project group/app? This cannot be undone.",
		Severity: "warning",
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, audit.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM elicitation_log").Scan(&count))
	require.Equal(t, 1, count)
}
