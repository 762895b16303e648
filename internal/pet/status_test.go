package pet

import (
	"testing"

	"daycare/internal/task"
)

func checklist(done, total int) []task.Task {
	tasks := make([]task.Task, total)
	for i := range tasks {
		if i < done {
			tasks[i].Status = task.Complete
		}
	}
	return tasks
}

func TestComputeBaseStatus(t *testing.T) {
	tests := []struct {
		name        string
		done, total int
		want        int
	}{
		{"no tasks", 0, 0, 1},
		{"none complete", 0, 4, 1},
		{"all complete", 4, 4, 5},
		{"two of three", 2, 3, 4},
		{"one of three", 1, 3, 2},
		{"one of ten rounds up", 1, 10, 1},
		{"three of ten", 3, 10, 2},
		{"three of five", 3, 5, 3},
		{"one of five", 1, 5, 1},
		{"four of five", 4, 5, 4},
		{"single complete", 1, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBaseStatus(checklist(tt.done, tt.total))
			if got != tt.want {
				t.Errorf("ComputeBaseStatus(%d/%d) = %d, want %d", tt.done, tt.total, got, tt.want)
			}
		})
	}
}

func TestComputeBaseStatus_AlwaysInRange(t *testing.T) {
	for total := 1; total <= 30; total++ {
		for done := 0; done <= total; done++ {
			got := ComputeBaseStatus(checklist(done, total))
			if got < MinStatus || got > MaxStatus {
				t.Fatalf("ComputeBaseStatus(%d/%d) = %d out of range", done, total, got)
			}
		}
	}
}

func TestResolveStatus(t *testing.T) {
	tests := []struct {
		base, delta, want int
	}{
		{5, +1, 5},
		{1, -1, 1},
		{4, -1, 3},
		{3, 0, 3},
		{2, +1, 3},
	}

	for _, tt := range tests {
		if got := ResolveStatus(tt.base, tt.delta); got != tt.want {
			t.Errorf("ResolveStatus(%d, %d) = %d, want %d", tt.base, tt.delta, got, tt.want)
		}
	}
}

func TestScenario_TwoOfThreeWithBadEvent(t *testing.T) {
	base := ComputeBaseStatus(checklist(2, 3))
	if base != 4 {
		t.Fatalf("base = %d, want 4", base)
	}
	if got := ResolveStatus(base, -1); got != 3 {
		t.Errorf("final = %d, want 3", got)
	}
}

func TestMood(t *testing.T) {
	want := map[int]string{1: "exhausted", 2: "tired", 3: "fine", 4: "happy", 5: "elated"}
	for status, label := range want {
		if got := Mood(status); got != label {
			t.Errorf("Mood(%d) = %q, want %q", status, got, label)
		}
	}
}
