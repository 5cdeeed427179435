package tasks

import (
	"context"

	"github.com/pkg/errors"

	"github.com/wadew/gitlab-mcp-sub001/tools"
)

// Registrations exposes the manager as bookkeeping tools. They live outside
// the built-in GitLab catalog because they never touch the capability
// object.
func Registrations(m *Manager) []tools.ToolRegistration {
	return []tools.ToolRegistration{
		{
			Name:        "list_tasks",
			Description: "List background bookkeeping tasks, optionally filtered by state and type",
			Category:    "task",
			Annotation:  tools.Annotation{ReadOnly: true},
			Params: []tools.Param{
				{Name: "state", Type: "string", Description: "Filter by state: PENDING, WORKING, COMPLETED, FAILED or CANCELLED. Optional.", Optional: true},
				{Name: "task_type", Type: "string", Description: "Filter by task type tag. Optional.", Optional: true},
			},
			Func: func(ctx context.Context, args map[string]any) (any, error) {
				state, _ := args["state"].(string)
				taskType, _ := args["task_type"].(string)
				list := m.List(State(state), taskType)
				return map[string]any{"tasks": list, "count": len(list)}, nil
			},
		},
		{
			Name:        "get_task",
			Description: "Get a single bookkeeping task by ID",
			Category:    "task",
			Annotation:  tools.Annotation{ReadOnly: true},
			Params: []tools.Param{
				{Name: "task_id", Type: "string", Description: "Task ID"},
			},
			Func: func(ctx context.Context, args map[string]any) (any, error) {
				id, _ := args["task_id"].(string)
				task := m.Get(id)
				if task == nil {
					return nil, errors.Errorf("task not found: %s", id)
				}
				return task, nil
			},
		},
		{
			Name:        "cancel_task",
			Description: "Cancel a pending or working bookkeeping task",
			Category:    "task",
			Annotation:  tools.Annotation{},
			Params: []tools.Param{
				{Name: "task_id", Type: "string", Description: "Task ID"},
			},
			Func: func(ctx context.Context, args map[string]any) (any, error) {
				id, _ := args["task_id"].(string)
				task := m.Cancel(id)
				if task == nil {
					// Already terminal or unknown; report instead of failing
					// so cancellation races stay unexceptional.
					return map[string]any{"task_id": id, "cancelled": false}, nil
				}
				return map[string]any{"task_id": id, "cancelled": true, "task": task}, nil
			},
		},
		{
			Name:        "clear_completed_tasks",
			Description: "Remove all completed bookkeeping tasks and report how many were removed",
			Category:    "task",
			Annotation:  tools.Annotation{},
			Params:      nil,
			Func: func(ctx context.Context, args map[string]any) (any, error) {
				return map[string]any{"removed": m.ClearCompleted()}, nil
			},
		},
	}
}
