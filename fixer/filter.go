package fixer

import (
	"slices"
	"strings"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oriumgames/pile/schemconv/state"
)

// Filter maps every distinct state of a palette that needs repair to the
// family repairing it. A Filter belongs to a single conversion.
type Filter map[state.State]Family

// BuildFilter scans a decoded palette and returns a new Filter holding every
// non-empty state whose family has a fixer. needsAny is false when the
// palette holds no such state, in which case the repair pass can be skipped.
func BuildFilter(c Classifier, palette []state.State) (needsAny bool, f Filter) {
	f = make(Filter)
	for _, s := range palette {
		if s.IsAir() {
			continue
		}
		if _, ok := f[s]; ok {
			continue
		}
		if fam := c.Family(s); fam.Registered() {
			f[s] = fam
		}
	}
	return len(f) > 0, f
}

// Lookup returns the fixer for s.
func (f Filter) Lookup(s state.State) (Fixer, bool) {
	fam, ok := f[s]
	if !ok {
		return nil, false
	}
	return fam, true
}

// Len returns the number of distinct states in the filter.
func (f Filter) Len() int {
	return len(f)
}

// States returns the states in the filter sorted by their string form.
func (f Filter) States() []state.State {
	states := make([]state.State, 0, len(f))
	for s := range f {
		states = append(states, s)
	}
	slices.SortFunc(states, func(a, b state.State) int {
		return strings.Compare(a.String(), b.String())
	})
	return states
}

// Histogram counts the distinct states of the filter per family.
func (f Filter) Histogram() map[Family]int {
	h := make(map[Family]int)
	for _, fam := range f {
		h[fam]++
	}
	return h
}

// ApplyFixer repairs s at pos if the filter holds it. ok is false, and the
// result holds s unchanged, when s needs no repair.
func ApplyFixer(f Filter, r Reader, pos cube.Pos, s state.State) (res Result, ok bool) {
	fixer, ok := f.Lookup(s)
	if !ok {
		return Result{State: s}, false
	}
	return fixer.Fix(r, pos, s), true
}
