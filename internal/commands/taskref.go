package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"todoweb/internal/app"
	"todoweb/internal/service"
)

// TaskRef identifies one task: by its 1-based row number in the list view,
// or directly by server ID.
type TaskRef struct {
	Num int    // 1-based row number, 0 when ID is set
	ID  string // server-assigned ID, empty when Num is set
}

var (
	// ErrTaskRefRequired indicates no task reference was provided.
	ErrTaskRefRequired = errors.New("task reference required")

	// ErrTaskNotFound indicates the reference matches no task in the list.
	ErrTaskNotFound = errors.New("task not found")
)

// ParseTaskRef parses a task reference from positional args and the --id flag.
//
// Parsing rules:
//  1. --id given and no args → ID reference
//  2. --id given with args → error: cannot use both
//  3. first arg all digits → row number reference
//  4. no args → ErrTaskRefRequired
//  5. otherwise → error: invalid task reference: <ref>
func ParseTaskRef(args []string, id string) (TaskRef, error) {
	id = strings.TrimSpace(id)
	if id != "" {
		if len(args) > 0 {
			return TaskRef{}, errors.New("cannot use both --id and a task number")
		}
		return TaskRef{ID: id}, nil
	}

	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", strings.Join(args, " "))
	}

	first := args[0]
	if !isAllDigits(first) {
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", first)
	}
	num, err := strconv.Atoi(first)
	if err != nil || num < 1 {
		return TaskRef{}, fmt.Errorf("task number out of range: %s", first)
	}
	return TaskRef{Num: num}, nil
}

// Resolve finds the referenced task in a loaded view.
func (r TaskRef) Resolve(view app.View) (service.Task, error) {
	if r.ID != "" {
		for _, t := range view.Tasks {
			if t.ID == r.ID {
				return t, nil
			}
		}
		return service.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, r.ID)
	}
	if r.Num < 1 || r.Num > len(view.Tasks) {
		return service.Task{}, fmt.Errorf("%w: %d", ErrTaskNotFound, r.Num)
	}
	return view.Tasks[r.Num-1], nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
