package service

import (
	"context"
	"errors"
)

// PageSize is the number of tasks returned per ListOpenTasks page.
const PageSize = 100

var (
	// ErrListNotFound is returned by ResolveList when no list matches.
	ErrListNotFound = errors.New("list not found")

	// ErrAmbiguousList is returned by ResolveList when several lists match.
	ErrAmbiguousList = errors.New("ambiguous list name")
)

// Service is the remote side a pet checklist is mirrored to.
// Commands never import a backend SDK directly.
type Service interface {
	// ResolveList finds a list by name (case-insensitive, trimmed).
	// Returns ErrListNotFound or ErrAmbiguousList.
	ResolveList(ctx context.Context, name string) (TaskList, error)

	// CreateList creates a new task list and returns it.
	CreateList(ctx context.Context, name string) (TaskList, error)

	// ListOpenTasks returns open tasks for a list.
	// page is 1-based; page size is PageSize.
	// Returns an empty slice if page is out of range.
	ListOpenTasks(ctx context.Context, listID string, page int) ([]Task, error)

	// CreateTask creates a new task in the specified list.
	CreateTask(ctx context.Context, listID, title string) error

	// CompleteTask marks a task as completed.
	CompleteTask(ctx context.Context, listID, taskID string) error
}
