package pet

import (
	"errors"
	"strings"
	"testing"

	"daycare/internal/testutil"
)

func TestNewEventEngine_Validation(t *testing.T) {
	tests := []struct {
		name    string
		scripts []Script
		want    error
	}{
		{"empty", nil, ErrNoScripts},
		{"no outcomes", []Script{{Name: "nap"}}, ErrInvalidScript},
		{"zero weight", []Script{{Name: "nap", Outcomes: []Outcome{{Weight: 0, Sign: 1}}}}, ErrInvalidScript},
		{"sign too big", []Script{{Name: "nap", Outcomes: []Outcome{{Weight: 1, Sign: 2}}}}, ErrInvalidScript},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventEngine(tt.scripts, testutil.NewSeqRand())
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := NewEventEngine(DefaultScripts(), NewRand()); err != nil {
		t.Errorf("default scripts rejected: %v", err)
	}
}

func TestResolve_EachBranch(t *testing.T) {
	tests := []struct {
		name       string
		rolls      []int
		wantScript string
		wantDelta  int
	}{
		{"park favorable", []int{0, 0}, "park", +1},
		{"park neutral", []int{0, 3}, "park", 0},
		{"park unfavorable", []int{0, 4}, "park", -1},
		{"swim favorable", []int{1, 1}, "swim", +1},
		{"swim unfavorable", []int{1, 2}, "swim", -1},
		{"bake neutral", []int{2, 2}, "bake", 0},
		{"bake unfavorable", []int{2, 4}, "bake", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := NewEventEngine(DefaultScripts(), testutil.NewSeqRand(tt.rolls...))
			if err != nil {
				t.Fatal(err)
			}
			p := &Pet{Profile: Profile{ID: "00001", Name: "Mochi", Status: 3}}

			res := engine.Resolve(p)

			if res.AlreadyAttended {
				t.Fatal("unexpected AlreadyAttended")
			}
			if res.Script != tt.wantScript {
				t.Errorf("script = %q, want %q", res.Script, tt.wantScript)
			}
			if res.Delta != tt.wantDelta {
				t.Errorf("delta = %d, want %d", res.Delta, tt.wantDelta)
			}
			if p.Status != 3+tt.wantDelta || res.Status != p.Status {
				t.Errorf("status = %d (result %d), want %d", p.Status, res.Status, 3+tt.wantDelta)
			}
			if !p.EventFlag {
				t.Error("event flag not set")
			}
			if p.EventDelta != tt.wantDelta {
				t.Errorf("event delta = %d, want %d", p.EventDelta, tt.wantDelta)
			}
			if !strings.Contains(res.Prompt, "Mochi") {
				t.Errorf("prompt should name the pet: %q", res.Prompt)
			}
		})
	}
}

func TestResolve_SecondCallIsNoop(t *testing.T) {
	rng := testutil.NewSeqRand(0, 0)
	engine, err := NewEventEngine(DefaultScripts(), rng)
	if err != nil {
		t.Fatal(err)
	}
	p := &Pet{Profile: Profile{ID: "00001", Name: "Mochi", Status: 2}}

	first := engine.Resolve(p)
	if first.AlreadyAttended || p.Status != 3 {
		t.Fatalf("first resolve: %+v, status %d", first, p.Status)
	}

	second := engine.Resolve(p)
	if !second.AlreadyAttended {
		t.Error("second resolve should report AlreadyAttended")
	}
	if p.Status != 3 || !p.EventFlag || p.EventDelta != 1 {
		t.Errorf("pet changed on second resolve: %+v", p.Profile)
	}
	if rng.Calls() != 2 {
		t.Errorf("second resolve consumed randomness: %d calls", rng.Calls())
	}
}

func TestResolve_Clamped(t *testing.T) {
	engine, _ := NewEventEngine([]Script{{Name: "treat", Outcomes: []Outcome{{Weight: 1, Sign: 1, Prompt: "%s got a treat."}}}}, testutil.NewSeqRand(0, 0))
	p := &Pet{Profile: Profile{Name: "Mochi", Status: MaxStatus}}

	res := engine.Resolve(p)
	if res.Status != MaxStatus {
		t.Errorf("status = %d, want %d", res.Status, MaxStatus)
	}
}
