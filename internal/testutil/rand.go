package testutil

import "fmt"

// SeqRand replays a fixed sequence of values for IntN.
// It panics when the sequence runs out or a value is outside [0, n).
type SeqRand struct {
	Values []int
	calls  int
}

// NewSeqRand returns a SeqRand replaying values.
func NewSeqRand(values ...int) *SeqRand {
	return &SeqRand{Values: values}
}

// IntN returns the next value in the sequence.
func (r *SeqRand) IntN(n int) int {
	if r.calls >= len(r.Values) {
		panic(fmt.Sprintf("SeqRand: sequence exhausted after %d calls", r.calls))
	}
	v := r.Values[r.calls]
	r.calls++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("SeqRand: value %d out of range [0, %d)", v, n))
	}
	return v
}

// Calls returns how many values have been consumed.
func (r *SeqRand) Calls() int {
	return r.calls
}
