package pet

import (
	"errors"
	"fmt"
)

var (
	// ErrNoScripts is returned when an event engine has nothing to pick from.
	ErrNoScripts = errors.New("no scripted events")

	// ErrInvalidScript is returned for a script that cannot be resolved.
	ErrInvalidScript = errors.New("invalid scripted event")
)

// Outcome is one possible result of a scripted event.
type Outcome struct {
	Weight int    // relative likelihood, > 0
	Sign   int    // -1, 0 or +1
	Prompt string // text shown to the user
}

// Script is a scripted mini-event. One of its outcomes is drawn by weight.
type Script struct {
	Name     string
	Outcomes []Outcome
}

// EventResult describes what happened when an event was triggered.
type EventResult struct {
	// AlreadyAttended is set when the pet's event for this cycle was
	// resolved earlier; no other field is meaningful then.
	AlreadyAttended bool

	Script string
	Prompt string
	Delta  int
	Status int
}

// DefaultScripts returns the built-in event table.
func DefaultScripts() []Script {
	return []Script{
		{
			Name: "park",
			Outcomes: []Outcome{
				{Weight: 3, Sign: +1, Prompt: "%s chased squirrels at the park all afternoon."},
				{Weight: 1, Sign: 0, Prompt: "%s sniffed around the park and lay in the shade."},
				{Weight: 1, Sign: -1, Prompt: "It rained at the park and %s came home soaked."},
			},
		},
		{
			Name: "swim",
			Outcomes: []Outcome{
				{Weight: 2, Sign: +1, Prompt: "%s paddled happily around the pool."},
				{Weight: 2, Sign: -1, Prompt: "%s swallowed too much water and sulked."},
			},
		},
		{
			Name: "bake",
			Outcomes: []Outcome{
				{Weight: 2, Sign: +1, Prompt: "%s helped bake cookies and got to lick the spoon."},
				{Weight: 1, Sign: 0, Prompt: "%s watched the oven timer tick down."},
				{Weight: 2, Sign: -1, Prompt: "The cake burned and %s got flour in their eyes."},
			},
		},
	}
}

// EventEngine resolves at most one scripted event per pet per cycle.
// It reads and sets the pet's event flag but never clears it.
type EventEngine struct {
	scripts []Script
	rng     Rand
}

// NewEventEngine validates scripts and returns an engine drawing from rng.
func NewEventEngine(scripts []Script, rng Rand) (*EventEngine, error) {
	if len(scripts) == 0 {
		return nil, ErrNoScripts
	}
	for _, s := range scripts {
		if len(s.Outcomes) == 0 {
			return nil, fmt.Errorf("%w: %s has no outcomes", ErrInvalidScript, s.Name)
		}
		for _, o := range s.Outcomes {
			if o.Weight <= 0 {
				return nil, fmt.Errorf("%w: %s has non-positive weight", ErrInvalidScript, s.Name)
			}
			if o.Sign < -1 || o.Sign > 1 {
				return nil, fmt.Errorf("%w: %s has sign %d", ErrInvalidScript, s.Name, o.Sign)
			}
		}
	}
	return &EventEngine{scripts: scripts, rng: rng}, nil
}

// Resolve runs the pet's event for the current cycle. If the event flag is
// already set the pet is left unchanged and AlreadyAttended is reported.
func (e *EventEngine) Resolve(p *Pet) EventResult {
	if p.EventFlag {
		return EventResult{AlreadyAttended: true, Status: p.Status}
	}

	script := e.scripts[e.rng.IntN(len(e.scripts))]
	outcome := e.pick(script.Outcomes)

	p.Status = ResolveStatus(p.Status, outcome.Sign)
	p.EventFlag = true
	p.EventDelta = outcome.Sign

	return EventResult{
		Script: script.Name,
		Prompt: fmt.Sprintf(outcome.Prompt, p.Name),
		Delta:  outcome.Sign,
		Status: p.Status,
	}
}

func (e *EventEngine) pick(outcomes []Outcome) Outcome {
	total := 0
	for _, o := range outcomes {
		total += o.Weight
	}

	roll := e.rng.IntN(total)
	for _, o := range outcomes {
		if roll < o.Weight {
			return o
		}
		roll -= o.Weight
	}
	return outcomes[len(outcomes)-1]
}
