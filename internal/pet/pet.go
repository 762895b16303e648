// Package pet implements a pet's checklist, its derived mood status and its
// once-per-cycle random event.
package pet

import (
	"errors"
	"fmt"
	"strings"

	"daycare/internal/task"
)

// ErrTaskNotFound is returned when a task ID does not belong to the pet.
var ErrTaskNotFound = errors.New("task not found")

// TaskStore is the persistence the pet writes its checklist through.
type TaskStore interface {
	Load(petID string) ([]task.Task, error)
	Append(t task.Task) error
	Save(petID string, tasks []task.Task) error
	Delete(petID string, ids []string) error
	WipePet(petID string) error
}

// Profile is the persisted pet record.
type Profile struct {
	ID       string
	Name     string
	Species  string
	AnimalID string

	// Status is the cached mood tier from the last room entry or event.
	Status int

	// EventFlag is set once the current cycle's event has been resolved.
	EventFlag bool

	// EventDelta is the resolved event's outcome, 0 while unresolved.
	EventDelta int
}

// Pet binds a profile to its checklist.
type Pet struct {
	Profile

	tasks []task.Task
	store TaskStore
	rng   Rand
}

// New returns a pet for profile backed by store. Tasks are not loaded
// until EnterRoom.
func New(profile Profile, store TaskStore, rng Rand) *Pet {
	if rng == nil {
		rng = NewRand()
	}
	return &Pet{Profile: profile, store: store, rng: rng}
}

// EnterRoom reloads the checklist and recomputes the status from the
// completion ratio and this cycle's event outcome.
func (p *Pet) EnterRoom() error {
	tasks, err := p.store.Load(p.ID)
	if err != nil {
		return err
	}
	p.tasks = tasks
	p.Status = ResolveStatus(ComputeBaseStatus(p.tasks), p.EventDelta)
	return nil
}

// Tasks returns a copy of the loaded checklist in store order.
func (p *Pet) Tasks() []task.Task {
	out := make([]task.Task, len(p.tasks))
	copy(out, p.tasks)
	return out
}

// Mood returns the label for the current status.
func (p *Pet) Mood() string {
	return Mood(p.Status)
}

// ToggleTasks inverts the completion of each task in ids, writes the
// checklist back and re-enters the room.
func (p *Pet) ToggleTasks(ids ...string) error {
	idx, err := p.indexes(ids)
	if err != nil {
		return err
	}
	for _, i := range idx {
		p.tasks[i].Toggle()
	}
	if err := p.store.Save(p.ID, p.tasks); err != nil {
		return err
	}
	return p.EnterRoom()
}

// AddTask creates an incomplete task with a fresh ID and appends it to
// the store.
func (p *Pet) AddTask(description string) (task.Task, error) {
	description = strings.TrimSpace(description)
	t := task.Task{
		PetID:       p.ID,
		ID:          NewTaskID(p.rng, p.tasks),
		Description: description,
		Status:      task.Incomplete,
	}
	if err := p.store.Append(t); err != nil {
		return task.Task{}, err
	}
	p.tasks = append(p.tasks, t)
	p.Status = ResolveStatus(ComputeBaseStatus(p.tasks), p.EventDelta)
	return t, nil
}

// RemoveTasks deletes the tasks in ids from the checklist and the store.
func (p *Pet) RemoveTasks(ids ...string) error {
	if _, err := p.indexes(ids); err != nil {
		return err
	}
	if err := p.store.Delete(p.ID, ids); err != nil {
		return err
	}

	remove := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		remove[id] = struct{}{}
	}
	kept := p.tasks[:0]
	for _, t := range p.tasks {
		if _, gone := remove[t.ID]; !gone {
			kept = append(kept, t)
		}
	}
	p.tasks = kept
	p.Status = ResolveStatus(ComputeBaseStatus(p.tasks), p.EventDelta)
	return nil
}

// TriggerEvent resolves this cycle's event through engine.
func (p *Pet) TriggerEvent(engine *EventEngine) EventResult {
	return engine.Resolve(p)
}

// Wipe removes every stored task of the pet.
func (p *Pet) Wipe() error {
	if err := p.store.WipePet(p.ID); err != nil {
		return err
	}
	p.tasks = nil
	p.Status = ResolveStatus(MinStatus, p.EventDelta)
	return nil
}

func (p *Pet) indexes(ids []string) ([]int, error) {
	pos := make(map[string]int, len(p.tasks))
	for i, t := range p.tasks {
		pos[t.ID] = i
	}

	idx := make([]int, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		i, ok := pos[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		idx = append(idx, i)
	}
	return idx, nil
}
