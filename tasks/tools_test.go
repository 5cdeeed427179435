package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wadew/gitlab-mcp-sub001/tools"
)

func toolFunc(t *testing.T, m *Manager, name string) tools.ToolFunc {
	t.Helper()
	for _, reg := range Registrations(m) {
		if reg.Name == name {
			return reg.Func
		}
	}
	t.Fatalf("no registration named %s", name)
	return nil
}

func TestRegistrationsShape(t *testing.T) {
	t.Parallel()

	regs := Registrations(NewManager(nil))
	require.Len(t, regs, 4)

	for _, reg := range regs {
		require.Equal(t, "task", reg.Category)
		require.NotNil(t, reg.Func, reg.Name)
		require.False(t, reg.Annotation.Destructive, reg.Name)
	}
}

func TestListTasksTool(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	a := m.Create("bulk-close", nil)
	m.Create("bulk-label", nil)
	m.Start(a.ID)

	result, err := toolFunc(t, m, "list_tasks")(context.Background(), map[string]any{"state": "WORKING"})
	require.NoError(t, err)

	payload := result.(map[string]any)
	require.Equal(t, 1, payload["count"])
	tasks := payload["tasks"].([]*Task)
	require.Equal(t, a.ID, tasks[0].ID)
}

func TestGetTaskTool(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	task := m.Create("bulk-close", nil)

	result, err := toolFunc(t, m, "get_task")(context.Background(), map[string]any{"task_id": task.ID})
	require.NoError(t, err)
	require.Equal(t, task.ID, result.(*Task).ID)

	_, err = toolFunc(t, m, "get_task")(context.Background(), map[string]any{"task_id": "missing"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "task not found: missing")
}

func TestCancelTaskToolNeverErrors(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	live := m.Create("bulk-close", nil)

	result, err := toolFunc(t, m, "cancel_task")(context.Background(), map[string]any{"task_id": live.ID})
	require.NoError(t, err)
	require.Equal(t, true, result.(map[string]any)["cancelled"])

	// Cancelling a terminal or unknown task reports false instead of failing.
	result, err = toolFunc(t, m, "cancel_task")(context.Background(), map[string]any{"task_id": live.ID})
	require.NoError(t, err)
	require.Equal(t, false, result.(map[string]any)["cancelled"])

	result, err = toolFunc(t, m, "cancel_task")(context.Background(), map[string]any{"task_id": "missing"})
	require.NoError(t, err)
	require.Equal(t, false, result.(map[string]any)["cancelled"])
}

func TestClearCompletedTasksTool(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	done := m.Create("bulk-close", nil)
	m.Start(done.ID)
	m.Complete(done.ID, nil)
	m.Create("bulk-close", nil)

	result, err := toolFunc(t, m, "clear_completed_tasks")(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"removed": 1}, result)
}
