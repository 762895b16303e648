package commands

import (
	"errors"
	"slices"
	"testing"

	"daycare/internal/pet"
	"daycare/internal/task"
)

func refTasks() []task.Task {
	return []task.Task{
		{PetID: "00001", ID: "10001", Description: "Feed"},
		{PetID: "00001", ID: "20002", Description: "Brush"},
		{PetID: "00001", ID: "00003", Description: "Walk"},
	}
}

func TestResolveTaskRefs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"number", []string{"2"}, []string{"20002"}},
		{"id", []string{"10001"}, []string{"10001"}},
		{"mixed", []string{"3", "20002"}, []string{"00003", "20002"}},
		{"leading zero number", []string{"02"}, []string{"20002"}},
		{"id wins over number", []string{"00003"}, []string{"00003"}},
		{"duplicates", []string{"1", "10001", "1"}, []string{"10001"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTaskRefs(tt.args, refTasks())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveTaskRefs_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"letters", []string{"a1"}, "invalid task reference: a1"},
		{"negative", []string{"-1"}, "invalid task reference: -1"},
		{"unicode digit", []string{"١"}, "invalid task reference: ١"},
		{"zero", []string{"0"}, "task number out of range: 0"},
		{"past end", []string{"4"}, "task number out of range: 4"},
		{"unknown id", []string{"99999"}, "task not found: 99999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveTaskRefs(tt.args, refTasks())
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("got %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestResolveTaskRefs_UnknownIDIsTaskNotFound(t *testing.T) {
	_, err := ResolveTaskRefs([]string{"55555"}, refTasks())
	if !errors.Is(err, pet.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestResolveTaskRefs_Empty(t *testing.T) {
	_, err := ResolveTaskRefs(nil, refTasks())
	if !errors.Is(err, ErrTaskRefRequired) {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestIsAllDigits(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"0", true},
		{"12345", true},
		{"12a", false},
		{" 1", false},
	}

	for _, tt := range tests {
		if got := isAllDigits(tt.input); got != tt.want {
			t.Errorf("isAllDigits(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
