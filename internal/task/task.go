// Package task defines the checklist item owned by a pet.
package task

// Status values as persisted in the task store.
const (
	Incomplete = 0
	Complete   = 1
)

// Task is a single checklist item.
type Task struct {
	PetID       string
	ID          string
	Description string
	Status      int // Incomplete or Complete
}

// Done reports whether the task is complete.
func (t Task) Done() bool {
	return t.Status == Complete
}

// Toggle flips the completion status.
func (t *Task) Toggle() {
	if t.Status == Complete {
		t.Status = Incomplete
	} else {
		t.Status = Complete
	}
}

// IDs returns the IDs of tasks as a set.
func IDs(tasks []Task) map[string]struct{} {
	ids := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		ids[t.ID] = struct{}{}
	}
	return ids
}
