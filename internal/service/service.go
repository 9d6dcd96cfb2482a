// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All remote task service calls go through this interface.
// Every method fails with a *TransportError.
type Service interface {
	// ListTasks returns the full task collection in server order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task and returns the server-assigned record.
	CreateTask(ctx context.Context, title string) (Task, error)

	// UpdateTask applies a partial patch and returns the full updated record.
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (Task, error)

	// DeleteTask removes a task. Any non-error return means success.
	DeleteTask(ctx context.Context, id string) error
}
