// Package app owns the client-side task state and keeps it in step with the
// remote task service.
//
// Root is the single owner of the task collection. TaskList holds the
// {loading, error, tasks} state and patches it only after the service
// confirms an operation; Form captures a draft title and reports created
// tasks back to the list.
package app

import (
	"context"
	"log/slog"
	"sync"

	"todoweb/internal/service"
)

// User-facing error messages.
const (
	MsgLoadFailed   = "Failed to load tasks. Please try again later."
	MsgToggleFailed = "Failed to update task status. Please try again."
	MsgDeleteFailed = "Failed to delete task. Please try again."
	MsgCreateFailed = "Failed to create task. Please try again."
)

// TaskList is the task collection and its load/error state.
// Remote calls are made without holding the lock; every patch keys on task ID,
// so responses that complete out of order are applied safely.
type TaskList struct {
	svc service.Service
	log *slog.Logger

	mu      sync.RWMutex
	tasks   []service.Task
	loading bool
	err     string
	gen     uint64 // bumped by Load and Unmount; stale loads are dropped
}

// NewTaskList returns a list in its initial state: loading, no tasks, no error.
func NewTaskList(svc service.Service, log *slog.Logger) *TaskList {
	return &TaskList{
		svc:     svc,
		log:     log,
		tasks:   []service.Task{},
		loading: true,
	}
}

// Load fetches the full collection. If Unmount or a newer Load runs before the
// response arrives, the response is dropped and state is left alone.
func (l *TaskList) Load(ctx context.Context) error {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.loading = true
	l.err = ""
	l.mu.Unlock()

	tasks, err := l.svc.ListTasks(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		l.log.Debug("dropping superseded task load", "generation", gen)
		return err
	}
	l.loading = false
	if err != nil {
		l.log.Error("failed to load tasks", "error", err)
		l.err = MsgLoadFailed
		return err
	}
	l.tasks = dedupe(tasks)
	return nil
}

// Unmount supersedes any in-flight Load.
func (l *TaskList) Unmount() {
	l.mu.Lock()
	l.gen++
	l.mu.Unlock()
}

// Toggle flips the completed flag of task id and returns the server's record.
// The local record is replaced only after the update succeeds; an id the list
// does not hold is left out of it.
func (l *TaskList) Toggle(ctx context.Context, id string, completed bool) (service.Task, error) {
	l.clearError()

	updated, err := l.svc.UpdateTask(ctx, id, service.CompletedPatch(!completed))
	if err != nil {
		l.log.Error("failed to toggle task", "id", id, "error", err)
		l.ReportError(MsgToggleFailed)
		return service.Task{}, err
	}

	l.mu.Lock()
	l.tasks = replaceByID(l.tasks, id, updated)
	l.mu.Unlock()
	return updated, nil
}

// Delete removes task id once the service confirms the deletion.
func (l *TaskList) Delete(ctx context.Context, id string) error {
	l.clearError()

	if err := l.svc.DeleteTask(ctx, id); err != nil {
		l.log.Error("failed to delete task", "id", id, "error", err)
		l.ReportError(MsgDeleteFailed)
		return err
	}

	l.mu.Lock()
	l.tasks = removeByID(l.tasks, id)
	l.mu.Unlock()
	return nil
}

// Append adds a newly created task. A record with the same ID is replaced.
func (l *TaskList) Append(task service.Task) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if indexOf(l.tasks, task.ID) >= 0 {
		l.tasks = replaceByID(l.tasks, task.ID, task)
		return
	}
	l.tasks = append(l.tasks, task)
}

// ReportError sets the user-visible error message.
func (l *TaskList) ReportError(msg string) {
	l.mu.Lock()
	l.err = msg
	l.mu.Unlock()
}

// Find returns the task with the given ID.
func (l *TaskList) Find(id string) (service.Task, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i := indexOf(l.tasks, id); i >= 0 {
		return l.tasks[i], true
	}
	return service.Task{}, false
}

// Snapshot returns a copy of the current state with its derived values.
func (l *TaskList) Snapshot() View {
	l.mu.RLock()
	defer l.mu.RUnlock()
	tasks := make([]service.Task, len(l.tasks))
	copy(tasks, l.tasks)
	return newView(tasks, l.loading, l.err)
}

func (l *TaskList) clearError() {
	l.mu.Lock()
	l.err = ""
	l.mu.Unlock()
}

func indexOf(tasks []service.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// replaceByID returns a new slice with the record for id swapped for task.
func replaceByID(tasks []service.Task, id string, task service.Task) []service.Task {
	out := make([]service.Task, len(tasks))
	for i, t := range tasks {
		if t.ID == id {
			out[i] = task
		} else {
			out[i] = t
		}
	}
	return out
}

// removeByID returns a new slice without the record for id, order preserved.
func removeByID(tasks []service.Task, id string) []service.Task {
	out := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// dedupe keeps the first record for each ID.
func dedupe(tasks []service.Task) []service.Task {
	seen := make(map[string]bool, len(tasks))
	out := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}
