// Package tasks is the in-memory bookkeeping registry for long-running bulk
// operations. It tracks lifecycle state only; it does not execute anything.
package tasks

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// State of a task. PENDING and WORKING are live; the rest are terminal.
type State string

const (
	StatePending   State = "PENDING"
	StateWorking   State = "WORKING"
	StateCompleted State = "COMPLETED"
	StateFailed    State = "FAILED"
	StateCancelled State = "CANCELLED"
)

// Task is one bookkeeping record. Result is set only on COMPLETED, Error
// only on FAILED; they are never both set.
type Task struct {
	ID        string         `json:"id"`
	Type      string         `json:"task_type"`
	State     State          `json:"state"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Result    map[string]any `json:"result,omitempty"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Manager owns the task map, the one piece of shared mutable state in this
// server. Every operation takes the single lock for its whole duration and
// never blocks while holding it; callers receive copies, never live records.
// Tasks are removed only explicitly, there is no garbage collection and no
// timeout-driven transition: a WORKING task stays WORKING until a caller
// moves it.
type Manager struct {
	mu     sync.Mutex
	tasks  map[string]*Task
	logger hclog.Logger
}

func NewManager(logger hclog.Logger) *Manager {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Manager{
		tasks:  make(map[string]*Task),
		logger: logger.Named("tasks"),
	}
}

// Create registers a new PENDING task. Both timestamps start equal.
func (m *Manager) Create(taskType string, metadata map[string]any) *Task {
	now := time.Now().UTC()
	task := &Task{
		ID:        uuid.NewString(),
		Type:      taskType,
		State:     StatePending,
		Metadata:  metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.tasks[task.ID] = task
	m.mu.Unlock()

	m.logger.Debug("task created", "id", task.ID, "type", taskType)
	return task.clone()
}

// Get returns a snapshot of the task, or nil.
func (m *Manager) Get(id string) *Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	if task, ok := m.tasks[id]; ok {
		return task.clone()
	}
	return nil
}

// List returns snapshots of tasks matching both filters; an empty state or
// type matches everything.
func (m *Manager) List(state State, taskType string) []*Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*Task
	for _, task := range m.tasks {
		if state != "" && task.State != state {
			continue
		}
		if taskType != "" && task.Type != taskType {
			continue
		}
		out = append(out, task.clone())
	}
	return out
}

// Start moves a PENDING task to WORKING. Returns nil for any other state.
func (m *Manager) Start(id string) *Task {
	return m.transition(id, StateWorking, nil, "", StatePending)
}

// Complete moves a WORKING task to COMPLETED and attaches its result.
func (m *Manager) Complete(id string, result map[string]any) *Task {
	return m.transition(id, StateCompleted, result, "", StateWorking)
}

// Fail moves a WORKING task to FAILED and attaches the error text.
func (m *Manager) Fail(id string, errText string) *Task {
	return m.transition(id, StateFailed, nil, errText, StateWorking)
}

// Cancel moves a PENDING or WORKING task to CANCELLED. A task already in a
// terminal state returns nil: cancellation races are a normal outcome, not
// an error.
func (m *Manager) Cancel(id string) *Task {
	return m.transition(id, StateCancelled, nil, "", StatePending, StateWorking)
}

func (m *Manager) transition(id string, to State, result map[string]any, errText string, from ...State) *Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok {
		return nil
	}

	allowed := false
	for _, s := range from {
		if task.State == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil
	}

	task.State = to
	task.Result = result
	task.Error = errText
	task.UpdatedAt = time.Now().UTC()
	return task.clone()
}

// Delete removes a single task regardless of state.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tasks[id]; !ok {
		return false
	}
	delete(m.tasks, id)
	return true
}

// ClearCompleted removes every COMPLETED task and returns the count. FAILED
// and CANCELLED tasks are kept for inspection and must be deleted
// individually.
func (m *Manager) ClearCompleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, task := range m.tasks {
		if task.State == StateCompleted {
			delete(m.tasks, id)
			removed++
		}
	}
	return removed
}

func (t *Task) clone() *Task {
	out := *t
	out.Metadata = cloneMap(t.Metadata)
	out.Result = cloneMap(t.Result)
	return &out
}

func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
