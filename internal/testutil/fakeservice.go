// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"todoweb/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
// It records every call and can be told to fail any operation.
type FakeService struct {
	mu    sync.RWMutex
	tasks []service.Task

	// Error injection for testing
	ListTasksErr  error
	CreateTaskErr error
	UpdateTaskErr error
	DeleteTaskErr error

	// NextID, when set, is used as the ID of the next created task.
	NextID string

	// Call recording
	ListCalls    int
	CreateTitles []string
	Updates      []Update
	DeletedIDs   []string
}

// Update records one UpdateTask call.
type Update struct {
	ID    string
	Patch service.TaskPatch
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{}
}

// AddTask adds a task to the fake collection.
func (f *FakeService) AddTask(id, title string, completed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{ID: id, Title: title, Completed: completed})
}

// Tasks returns a copy of the stored collection.
func (f *FakeService) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// CallCount returns the total number of calls received.
func (f *FakeService) CallCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.ListCalls + len(f.CreateTitles) + len(f.Updates) + len(f.DeletedIDs)
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++
	if f.ListTasksErr != nil {
		return nil, transportError(service.OpList, f.ListTasksErr)
	}
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, title string) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateTitles = append(f.CreateTitles, title)
	if f.CreateTaskErr != nil {
		return service.Task{}, transportError(service.OpCreate, f.CreateTaskErr)
	}

	id := f.NextID
	f.NextID = ""
	if id == "" {
		id = uuid.New().String()
	}
	task := service.Task{ID: id, Title: title}
	f.tasks = append(f.tasks, task)
	return task, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Updates = append(f.Updates, Update{ID: id, Patch: patch})
	if f.UpdateTaskErr != nil {
		return service.Task{}, transportError(service.OpUpdate, f.UpdateTaskErr)
	}

	for i, t := range f.tasks {
		if t.ID == id {
			if patch.Completed != nil {
				f.tasks[i].Completed = *patch.Completed
			}
			return f.tasks[i], nil
		}
	}
	return service.Task{}, &service.TransportError{Op: service.OpUpdate, Status: 404, Err: fmt.Errorf("todo %s not found", id)}
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeletedIDs = append(f.DeletedIDs, id)
	if f.DeleteTaskErr != nil {
		return transportError(service.OpDelete, f.DeleteTaskErr)
	}

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return &service.TransportError{Op: service.OpDelete, Status: 404, Err: fmt.Errorf("todo %s not found", id)}
}

func transportError(op string, err error) error {
	if service.IsTransportError(err) {
		return err
	}
	return &service.TransportError{Op: op, Err: err}
}
