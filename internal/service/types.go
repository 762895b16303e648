// Package service defines the backend-agnostic interface for remote checklists.
package service

// Remote task status values.
const (
	StatusNeedsAction = "needsAction"
	StatusCompleted   = "completed"
)

// Task represents a single remote task item.
type Task struct {
	ID     string
	Title  string
	Status string // StatusNeedsAction or StatusCompleted
}

// TaskList represents a remote task list.
type TaskList struct {
	ID    string
	Title string
}
