package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"daycare/internal/exitcode"
	"daycare/internal/pet"
	"daycare/internal/task"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// taskIDWidth is the length of a task ID.
const taskIDWidth = 5

// ResolveTaskRefs maps task references onto task IDs of the checklist.
//
// Resolution rules:
//  1. A five-digit reference equal to a task ID selects that task.
//  2. Any other all-digit reference is a 1-based checklist number.
//  3. Anything else is an invalid task reference.
//
// Repeated references resolve once.
func ResolveTaskRefs(args []string, tasks []task.Task) ([]string, error) {
	if len(args) == 0 {
		return nil, ErrTaskRefRequired
	}

	ids := task.IDs(tasks)
	seen := make(map[string]struct{}, len(args))
	var out []string

	for _, arg := range args {
		if !isAllDigits(arg) {
			return nil, fmt.Errorf("invalid task reference: %s", arg)
		}

		var id string
		if _, ok := ids[arg]; ok && len(arg) == taskIDWidth {
			id = arg
		} else {
			num, err := strconv.Atoi(arg)
			if err != nil || num < 1 || num > len(tasks) {
				if len(arg) == taskIDWidth {
					return nil, fmt.Errorf("%w: %s", pet.ErrTaskNotFound, arg)
				}
				return nil, fmt.Errorf("task number out of range: %s", arg)
			}
			id = tasks[num-1].ID
		}

		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

// reportRefError prints a task reference error; all of them are user errors.
func reportRefError(errOut io.Writer, err error) int {
	if errors.Is(err, ErrTaskRefRequired) {
		fmt.Fprintln(errOut, "error: task reference required")
	} else {
		fmt.Fprintf(errOut, "error: %v\n", err)
	}
	return exitcode.UserError
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
