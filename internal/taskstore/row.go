package taskstore

import (
	"fmt"

	"daycare/internal/task"
)

func decodeRow(rec []string) (task.Task, error) {
	if len(rec) != columns {
		return task.Task{}, fmt.Errorf("expected %d fields, got %d", columns, len(rec))
	}

	var status int
	switch rec[3] {
	case "0":
		status = task.Incomplete
	case "1":
		status = task.Complete
	default:
		return task.Task{}, fmt.Errorf("invalid status %q", rec[3])
	}

	return task.Task{
		PetID:       rec[0],
		ID:          rec[1],
		Description: rec[2],
		Status:      status,
	}, nil
}

func encodeRow(t task.Task) []string {
	status := "0"
	if t.Done() {
		status = "1"
	}
	return []string{t.PetID, t.ID, t.Description, status}
}
