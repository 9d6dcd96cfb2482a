package app

import (
	"context"
	"log/slog"

	"todoweb/internal/service"
)

// Root composes the creation form and the task list around one collection.
type Root struct {
	List *TaskList

	svc service.Service
	log *slog.Logger
}

// NewRoot creates the container and its list.
func NewRoot(svc service.Service, log *slog.Logger) *Root {
	return &Root{
		List: NewTaskList(svc, log),
		svc:  svc,
		log:  log,
	}
}

// NewForm returns a form that appends created tasks to the list and reports
// creation failures through the list's error.
func (r *Root) NewForm() *Form {
	return NewForm(r.svc, FormCallbacks{
		Submitted: r.List.clearError,
		Created:   r.List.Append,
		Failed:    r.List.ReportError,
	}, r.log)
}

// Mount loads the task collection.
func (r *Root) Mount(ctx context.Context) error {
	return r.List.Load(ctx)
}

// Unmount drops any load still in flight.
func (r *Root) Unmount() {
	r.List.Unmount()
}
