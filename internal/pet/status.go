package pet

import "daycare/internal/task"

// Status bounds.
const (
	MinStatus = 1
	MaxStatus = 5
)

var moods = map[int]string{
	1: "exhausted",
	2: "tired",
	3: "fine",
	4: "happy",
	5: "elated",
}

// ComputeBaseStatus maps the completion ratio of tasks onto five tiers,
// rounding up so that any progress raises the tier. No tasks is MinStatus.
func ComputeBaseStatus(tasks []task.Task) int {
	if len(tasks) == 0 {
		return MinStatus
	}

	done := 0
	for _, t := range tasks {
		if t.Done() {
			done++
		}
	}

	// ceil(done/total * MaxStatus) in integer arithmetic
	return clamp((done*MaxStatus + len(tasks) - 1) / len(tasks))
}

// ResolveStatus applies an event delta to a base status, clamped to
// [MinStatus, MaxStatus].
func ResolveStatus(base, delta int) int {
	return clamp(base + delta)
}

// Mood returns the display label for a status.
func Mood(status int) string {
	return moods[clamp(status)]
}

func clamp(status int) int {
	return max(MinStatus, min(status, MaxStatus))
}
