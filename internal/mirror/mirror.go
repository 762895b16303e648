// Package mirror copies a pet's checklist one way into a remote task list.
package mirror

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"daycare/internal/service"
	"daycare/internal/task"
)

// ListSuffix is appended to the pet name to form the remote list title.
const ListSuffix = " (daycare)"

// Result counts what a sync changed remotely.
type Result struct {
	List      service.TaskList
	Created   int
	Completed int
	Unchanged int
}

// ListTitle returns the remote list title for a pet name.
func ListTitle(petName string) string {
	return strings.TrimSpace(petName) + ListSuffix
}

// Sync makes the remote list for petName reflect tasks:
// incomplete local tasks missing remotely are created, and open remote
// tasks whose local counterpart is complete are completed. Tasks are
// matched by title. Remote tasks without a local counterpart are left alone.
func Sync(ctx context.Context, svc service.Service, petName string, tasks []task.Task) (Result, error) {
	title := ListTitle(petName)

	list, err := svc.ResolveList(ctx, title)
	if errors.Is(err, service.ErrListNotFound) {
		list, err = svc.CreateList(ctx, title)
	}
	if err != nil {
		return Result{}, err
	}

	open, err := openTasks(ctx, svc, list.ID)
	if err != nil {
		return Result{}, err
	}

	res := Result{List: list}
	for _, t := range tasks {
		key := normalize(t.Description)
		remote, ok := open[key]

		switch {
		case !t.Done() && !ok:
			if err := svc.CreateTask(ctx, list.ID, t.Description); err != nil {
				return res, fmt.Errorf("create %q: %w", t.Description, err)
			}
			open[key] = service.Task{Title: t.Description, Status: service.StatusNeedsAction}
			res.Created++
		case t.Done() && ok && remote.ID != "":
			if err := svc.CompleteTask(ctx, list.ID, remote.ID); err != nil {
				return res, fmt.Errorf("complete %q: %w", t.Description, err)
			}
			delete(open, key)
			res.Completed++
		default:
			res.Unchanged++
		}
	}
	return res, nil
}

// openTasks fetches every open task of listID keyed by normalized title.
// The first task wins when titles repeat.
func openTasks(ctx context.Context, svc service.Service, listID string) (map[string]service.Task, error) {
	open := make(map[string]service.Task)
	for page := 1; ; page++ {
		tasks, err := svc.ListOpenTasks(ctx, listID, page)
		if err != nil {
			return nil, err
		}
		for _, t := range tasks {
			key := normalize(t.Title)
			if _, dup := open[key]; !dup {
				open[key] = t
			}
		}
		if len(tasks) < service.PageSize {
			return open, nil
		}
	}
}

func normalize(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
