package pet

import (
	"strconv"

	"daycare/internal/task"
)

// Task IDs are five-digit decimal strings.
const (
	minTaskID = 10000
	maxTaskID = 99999
)

// NewTaskID draws a task ID uniformly from the five-digit space, retrying
// until it does not collide with any ID in existing.
func NewTaskID(rng Rand, existing []task.Task) string {
	used := task.IDs(existing)
	for {
		id := strconv.Itoa(minTaskID + rng.IntN(maxTaskID-minTaskID+1))
		if _, taken := used[id]; !taken {
			return id
		}
	}
}
