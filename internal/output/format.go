// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todoweb/internal/app"
	"todoweb/internal/service"
)

const (
	// ListTitle is the heading printed above the task list.
	ListTitle = "My Tasks"

	// ListSeparator is the separator line for the list section.
	ListSeparator = "------------"
)

// FormatTask formats a task row.
// Format: "{N:>4}  [x] {TITLE}\n" with "[ ]" for open tasks.
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", num, checkbox(task.Completed), normalizeTitle(task.Title))
}

// FormatHeader formats the list title, then the task count line.
func FormatHeader(w io.Writer, view app.View) {
	fmt.Fprintln(w, ListTitle)
	fmt.Fprintf(w, "%s on your list\n", view.CountLabel())
	fmt.Fprintln(w, ListSeparator)
}

// FormatFooter formats the completion summary.
func FormatFooter(w io.Writer, view app.View) {
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintln(w, view.SummaryLabel())
}

// FormatView prints a loaded, non-empty list: header, rows and footer.
// Callers handle the loading, error and empty states.
func FormatView(w io.Writer, view app.View) {
	FormatHeader(w, view)
	for i, task := range view.Tasks {
		FormatTask(w, i+1, task)
	}
	FormatFooter(w, view)
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
