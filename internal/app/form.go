package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"todoweb/internal/service"
)

var (
	// ErrEmptyTitle is returned by Submit when the draft is empty or whitespace.
	ErrEmptyTitle = errors.New("title required")

	// ErrSubmitInProgress is returned by Submit while an earlier submit is pending.
	ErrSubmitInProgress = errors.New("submit already in progress")
)

// Creator creates tasks. service.Service satisfies it.
type Creator interface {
	CreateTask(ctx context.Context, title string) (service.Task, error)
}

// FormCallbacks connects a Form to its parent. Nil callbacks are skipped.
type FormCallbacks struct {
	// Submitted runs before the create request is sent.
	Submitted func()
	// Created receives the server-assigned task.
	Created func(service.Task)
	// Failed receives a user-facing message when creation fails.
	Failed func(msg string)
}

// Form is the task creation form: a draft title and a submitting flag.
type Form struct {
	creator Creator
	cb      FormCallbacks
	log     *slog.Logger

	mu         sync.Mutex
	draft      string
	submitting bool
	created    service.Task
}

// NewForm creates a form with an empty draft.
func NewForm(creator Creator, cb FormCallbacks, log *slog.Logger) *Form {
	return &Form{
		creator: creator,
		cb:      cb,
		log:     log,
	}
}

// SetDraft replaces the draft title.
func (f *Form) SetDraft(title string) {
	f.mu.Lock()
	f.draft = title
	f.mu.Unlock()
}

// Draft returns the draft title.
func (f *Form) Draft() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Submitting reports whether a submit is in flight.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// CanSubmit is false while submitting or when the draft is blank.
func (f *Form) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.submitting && !isBlank(f.draft)
}

// Submit creates a task from the draft. Blank drafts send no request.
// On success the created task goes to Created and the draft is cleared;
// on failure the draft is kept and Failed is told.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if isBlank(f.draft) {
		f.mu.Unlock()
		return ErrEmptyTitle
	}
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	f.submitting = true
	title := f.draft
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	if f.cb.Submitted != nil {
		f.cb.Submitted()
	}

	task, err := f.creator.CreateTask(ctx, title)
	if err != nil {
		f.log.Error("failed to create task", "title", title, "error", err)
		if f.cb.Failed != nil {
			f.cb.Failed(MsgCreateFailed)
		}
		return err
	}

	if f.cb.Created != nil {
		f.cb.Created(task)
	}
	f.mu.Lock()
	f.draft = ""
	f.created = task
	f.mu.Unlock()
	return nil
}

// LastCreated returns the task created by the most recent successful Submit.
func (f *Form) LastCreated() service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
