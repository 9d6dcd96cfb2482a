// Package service defines the backend-agnostic interface for task operations.
package service

// Task represents a single task record as the remote service stores it.
type Task struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TaskPatch is a partial update. Nil fields are left out of the request body.
type TaskPatch struct {
	Completed *bool `json:"completed,omitempty"`
}

// CompletedPatch returns a patch that sets the completed flag.
func CompletedPatch(completed bool) TaskPatch {
	return TaskPatch{Completed: &completed}
}
