package commands

import (
	"errors"
	"testing"

	"todoweb/internal/app"
	"todoweb/internal/service"
)

func TestParseTaskRef(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		id      string
		want    TaskRef
		wantErr string
	}{
		{name: "number", args: []string{"3"}, want: TaskRef{Num: 3}},
		{name: "leading zeros", args: []string{"007"}, want: TaskRef{Num: 7}},
		{name: "id flag", id: "65f1c0", want: TaskRef{ID: "65f1c0"}},
		{name: "numeric id flag", id: "9", want: TaskRef{ID: "9"}},
		{name: "id flag trimmed", id: "  abc ", want: TaskRef{ID: "abc"}},
		{name: "missing", wantErr: "task reference required"},
		{name: "zero", args: []string{"0"}, wantErr: "task number out of range: 0"},
		{name: "letters", args: []string{"abc"}, wantErr: "invalid task reference: abc"},
		{name: "negative", args: []string{"-1"}, wantErr: "invalid task reference: -1"},
		{name: "unicode digits", args: []string{"٣"}, wantErr: "invalid task reference: ٣"},
		{name: "too many", args: []string{"1", "2"}, wantErr: "invalid task reference: 1 2"},
		{name: "both", args: []string{"1"}, id: "abc", wantErr: "cannot use both --id and a task number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTaskRef(tt.args, tt.id)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error %q, got nil", tt.wantErr)
				}
				if err.Error() != tt.wantErr {
					t.Errorf("expected error %q, got %q", tt.wantErr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestParseTaskRef_RequiredSentinel(t *testing.T) {
	if _, err := ParseTaskRef(nil, ""); !errors.Is(err, ErrTaskRefRequired) {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestTaskRef_Resolve(t *testing.T) {
	view := app.View{Tasks: []service.Task{
		{ID: "a", Title: "first"},
		{ID: "b", Title: "second"},
	}}

	tests := []struct {
		name    string
		ref     TaskRef
		wantID  string
		missing bool
	}{
		{name: "first row", ref: TaskRef{Num: 1}, wantID: "a"},
		{name: "last row", ref: TaskRef{Num: 2}, wantID: "b"},
		{name: "past end", ref: TaskRef{Num: 3}, missing: true},
		{name: "by id", ref: TaskRef{ID: "b"}, wantID: "b"},
		{name: "unknown id", ref: TaskRef{ID: "zzz"}, missing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := tt.ref.Resolve(view)
			if tt.missing {
				if !errors.Is(err, ErrTaskNotFound) {
					t.Errorf("expected ErrTaskNotFound, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if task.ID != tt.wantID {
				t.Errorf("expected %q, got %q", tt.wantID, task.ID)
			}
		})
	}
}
