package app

import (
	"fmt"

	"todoweb/internal/service"
)

// EmptyMessage is shown when the list has no tasks.
const EmptyMessage = "No tasks yet. Add your first task to get started!"

// View is a read-only snapshot of a TaskList plus values derived from it.
type View struct {
	Tasks          []service.Task `json:"todos"`
	Loading        bool           `json:"loading"`
	Error          string         `json:"error,omitempty"`
	Total          int            `json:"total"`
	CompletedCount int            `json:"completed"`
	Empty          bool           `json:"empty"`
}

func newView(tasks []service.Task, loading bool, err string) View {
	return View{
		Tasks:          tasks,
		Loading:        loading,
		Error:          err,
		Total:          len(tasks),
		CompletedCount: CompletedCount(tasks),
		Empty:          len(tasks) == 0,
	}
}

// CountLabel returns "1 task" or "N tasks".
func (v View) CountLabel() string {
	return CountLabel(v.Total)
}

// SummaryLabel returns "C of N tasks completed".
func (v View) SummaryLabel() string {
	return fmt.Sprintf("%d of %d tasks completed", v.CompletedCount, v.Total)
}

// CompletedCount counts completed tasks.
func CompletedCount(tasks []service.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// CountLabel pluralizes a task count.
func CountLabel(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}
