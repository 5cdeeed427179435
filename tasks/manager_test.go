package tasks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateStartsPending(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	task := m.Create("bulk-close", map[string]any{"project_id": "group/app"})

	require.NotEmpty(t, task.ID)
	require.Equal(t, StatePending, task.State)
	require.Equal(t, "bulk-close", task.Type)
	require.Equal(t, task.CreatedAt, task.UpdatedAt)
	require.Nil(t, task.Result)
	require.Empty(t, task.Error)
}

func TestLifecycleHappyPath(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	task := m.Create("bulk-close", nil)

	started := m.Start(task.ID)
	require.NotNil(t, started)
	require.Equal(t, StateWorking, started.State)

	result := map[string]any{"closed": 4}
	completed := m.Complete(task.ID, result)
	require.NotNil(t, completed)
	require.Equal(t, StateCompleted, completed.State)
	require.Equal(t, result, completed.Result)
	require.Empty(t, completed.Error)
	require.True(t, completed.UpdatedAt.After(completed.CreatedAt) || completed.UpdatedAt.Equal(completed.CreatedAt))
}

func TestFailSetsErrorOnly(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	task := m.Create("bulk-close", nil)
	m.Start(task.ID)

	failed := m.Fail(task.ID, "rate limited")
	require.NotNil(t, failed)
	require.Equal(t, StateFailed, failed.State)
	require.Equal(t, "rate limited", failed.Error)
	require.Nil(t, failed.Result)
}

func TestIllegalTransitionsReturnNil(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)

	testCases := []struct {
		name string
		run  func(id string) *Task
		prep func(id string)
	}{
		{
			name: "complete from pending",
			run:  func(id string) *Task { return m.Complete(id, nil) },
		},
		{
			name: "fail from pending",
			run:  func(id string) *Task { return m.Fail(id, "x") },
		},
		{
			name: "start from working",
			prep: func(id string) { m.Start(id) },
			run:  func(id string) *Task { return m.Start(id) },
		},
		{
			name: "start from cancelled",
			prep: func(id string) { m.Cancel(id) },
			run:  func(id string) *Task { return m.Start(id) },
		},
		{
			name: "complete from completed",
			prep: func(id string) { m.Start(id); m.Complete(id, nil) },
			run:  func(id string) *Task { return m.Complete(id, nil) },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			task := m.Create("bulk-close", nil)
			if tc.prep != nil {
				tc.prep(task.ID)
			}
			require.Nil(t, tc.run(task.ID))
		})
	}
}

func TestCancelFromLiveStates(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)

	pending := m.Create("bulk-close", nil)
	cancelled := m.Cancel(pending.ID)
	require.NotNil(t, cancelled)
	require.Equal(t, StateCancelled, cancelled.State)

	working := m.Create("bulk-close", nil)
	m.Start(working.ID)
	require.NotNil(t, m.Cancel(working.ID))
}

func TestCancelTerminalOrUnknownIsNil(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	task := m.Create("bulk-close", nil)
	m.Start(task.ID)
	m.Complete(task.ID, nil)

	require.Nil(t, m.Cancel(task.ID))
	require.Nil(t, m.Cancel("no-such-task"))
	// The completed task is untouched by the failed cancellation.
	require.Equal(t, StateCompleted, m.Get(task.ID).State)
}

func TestListFilters(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	a := m.Create("bulk-close", nil)
	b := m.Create("bulk-label", nil)
	m.Create("bulk-label", nil)
	m.Start(a.ID)
	m.Start(b.ID)

	require.Len(t, m.List("", ""), 3)
	require.Len(t, m.List(StateWorking, ""), 2)
	require.Len(t, m.List("", "bulk-label"), 2)
	require.Len(t, m.List(StateWorking, "bulk-label"), 1)
	require.Empty(t, m.List(StateFailed, ""))
}

func TestGetReturnsSnapshot(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	task := m.Create("bulk-close", map[string]any{"count": 1})

	snapshot := m.Get(task.ID)
	snapshot.State = StateFailed
	snapshot.Metadata["count"] = 99

	fresh := m.Get(task.ID)
	require.Equal(t, StatePending, fresh.State)
	require.Equal(t, 1, fresh.Metadata["count"])
}

func TestDelete(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	task := m.Create("bulk-close", nil)

	require.True(t, m.Delete(task.ID))
	require.Nil(t, m.Get(task.ID))
	require.False(t, m.Delete(task.ID))
}

// ClearCompleted removes COMPLETED tasks only: FAILED and CANCELLED records
// are kept for inspection.
func TestClearCompletedKeepsFailedAndCancelled(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)

	done := m.Create("bulk-close", nil)
	m.Start(done.ID)
	m.Complete(done.ID, nil)

	failed := m.Create("bulk-close", nil)
	m.Start(failed.ID)
	m.Fail(failed.ID, "boom")

	cancelled := m.Create("bulk-close", nil)
	m.Cancel(cancelled.ID)

	pending := m.Create("bulk-close", nil)

	require.Equal(t, 1, m.ClearCompleted())
	require.Nil(t, m.Get(done.ID))
	require.Equal(t, StateFailed, m.Get(failed.ID).State)
	require.Equal(t, StateCancelled, m.Get(cancelled.ID).State)
	require.Equal(t, StatePending, m.Get(pending.ID).State)

	require.Zero(t, m.ClearCompleted())
}
