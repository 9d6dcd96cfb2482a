package app_test

import (
	"context"
	"errors"
	"testing"

	"todoweb/internal/app"
	"todoweb/internal/logger"
	"todoweb/internal/service"
	"todoweb/internal/testutil"
)

func TestForm_BlankTitlesSendNothing(t *testing.T) {
	for _, title := range []string{"", " ", "\t", "  \n  "} {
		svc := testutil.NewFakeService()
		form := app.NewForm(svc, app.FormCallbacks{}, logger.Discard())
		form.SetDraft(title)

		if form.CanSubmit() {
			t.Errorf("CanSubmit should be false for %q", title)
		}
		if err := form.Submit(context.Background()); !errors.Is(err, app.ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle for %q, got %v", title, err)
		}
		if svc.CallCount() != 0 {
			t.Errorf("expected zero calls for %q, got %d", title, svc.CallCount())
		}
	}
}

func TestForm_SubmitSuccess(t *testing.T) {
	for _, title := range []string{"Buy milk", "  padded  ", "x"} {
		svc := testutil.NewFakeService()
		var created []service.Task
		form := app.NewForm(svc, app.FormCallbacks{
			Created: func(task service.Task) { created = append(created, task) },
		}, logger.Discard())
		form.SetDraft(title)

		if !form.CanSubmit() {
			t.Errorf("CanSubmit should be true for %q", title)
		}
		if err := form.Submit(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(svc.CreateTitles) != 1 || svc.CreateTitles[0] != title {
			t.Errorf("expected exactly one create with %q, got %v", title, svc.CreateTitles)
		}
		if len(created) != 1 || created[0].Title != title {
			t.Errorf("expected callback with created task, got %v", created)
		}
		if form.Draft() != "" {
			t.Errorf("expected draft cleared, got %q", form.Draft())
		}
		if form.Submitting() {
			t.Error("submitting should be reset")
		}
	}
}

func TestForm_SubmitFailureKeepsDraft(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CreateTaskErr = errors.New("unreachable")

	var failed []string
	createdCalled := false
	form := app.NewForm(svc, app.FormCallbacks{
		Created: func(service.Task) { createdCalled = true },
		Failed:  func(msg string) { failed = append(failed, msg) },
	}, logger.Discard())
	form.SetDraft("Buy milk")

	if err := form.Submit(context.Background()); !service.IsTransportError(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if form.Draft() != "Buy milk" {
		t.Errorf("expected draft kept, got %q", form.Draft())
	}
	if form.Submitting() {
		t.Error("submitting should be reset after failure")
	}
	if createdCalled {
		t.Error("created callback must not run on failure")
	}
	if len(failed) != 1 || failed[0] != app.MsgCreateFailed {
		t.Errorf("expected failure reported, got %v", failed)
	}
}

func TestForm_SubmittedRunsBeforeRequest(t *testing.T) {
	svc := testutil.NewFakeService()
	callsAtSubmit := -1
	form := app.NewForm(svc, app.FormCallbacks{
		Submitted: func() { callsAtSubmit = svc.CallCount() },
	}, logger.Discard())
	form.SetDraft("A")

	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if callsAtSubmit != 0 {
		t.Errorf("Submitted should run before the request, saw %d calls", callsAtSubmit)
	}
}

func TestForm_RejectsConcurrentSubmit(t *testing.T) {
	blocking := &blockingCreator{started: make(chan struct{}), release: make(chan struct{})}
	form := app.NewForm(blocking, app.FormCallbacks{}, logger.Discard())
	form.SetDraft("A")

	done := make(chan error, 1)
	go func() { done <- form.Submit(context.Background()) }()
	<-blocking.started

	if !form.Submitting() {
		t.Error("expected submitting while request is in flight")
	}
	if form.CanSubmit() {
		t.Error("CanSubmit should be false while submitting")
	}
	if err := form.Submit(context.Background()); !errors.Is(err, app.ErrSubmitInProgress) {
		t.Errorf("expected ErrSubmitInProgress, got %v", err)
	}

	close(blocking.release)
	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blocking.calls != 1 {
		t.Errorf("expected one create call, got %d", blocking.calls)
	}
}

func TestRoot_CreateAppendsToList(t *testing.T) {
	svc := testutil.NewFakeService()
	root := app.NewRoot(svc, logger.Discard())
	if err := root.Mount(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc.NextID = "9"
	form := root.NewForm()
	form.SetDraft("Buy milk")
	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v := root.List.Snapshot()
	want := service.Task{ID: "9", Title: "Buy milk", Completed: false}
	if len(v.Tasks) != 1 || v.Tasks[0] != want {
		t.Fatalf("expected [%+v], got %v", want, v.Tasks)
	}
	if v.CountLabel() != "1 task" {
		t.Errorf("expected count \"1 task\", got %q", v.CountLabel())
	}
	if svc.ListCalls != 1 {
		t.Errorf("create must not trigger a reload, got %d list calls", svc.ListCalls)
	}
}

func TestRoot_CreateFailureIsVisible(t *testing.T) {
	svc := testutil.NewFakeService()
	root := app.NewRoot(svc, logger.Discard())
	_ = root.Mount(context.Background())

	svc.CreateTaskErr = errors.New("down")
	form := root.NewForm()
	form.SetDraft("Buy milk")
	_ = form.Submit(context.Background())

	if e := root.List.Snapshot().Error; e != app.MsgCreateFailed {
		t.Errorf("expected %q, got %q", app.MsgCreateFailed, e)
	}

	svc.CreateTaskErr = nil
	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e := root.List.Snapshot().Error; e != "" {
		t.Errorf("expected error cleared on retry, got %q", e)
	}
}

type blockingCreator struct {
	started chan struct{}
	release chan struct{}
	calls   int
}

func (b *blockingCreator) CreateTask(ctx context.Context, title string) (service.Task, error) {
	b.calls++
	close(b.started)
	<-b.release
	return service.Task{ID: "1", Title: title}, nil
}
