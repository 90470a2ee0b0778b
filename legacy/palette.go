package legacy

import "github.com/oriumgames/pile/schemconv/state"

// Decoder expands legacy block palettes into named states.
type Decoder struct {
	table    *Table
	reporter Reporter
}

// NewDecoder returns a Decoder reading from t and reporting unknown names to
// r. A nil t uses Default() and a nil r discards reports.
func NewDecoder(t *Table, r Reporter) *Decoder {
	if t == nil {
		t = Default()
	}
	if r == nil {
		r = Discard
	}
	return &Decoder{table: t, reporter: r}
}

// DecodePalette expands a palette of legacy names into len(names)*16 states,
// the state of palette entry i with metadata m being at index i<<4|m. Slots
// without a table entry are left as state.Air.
//
// The returned bools report, per palette entry, whether at least one
// metadata value resolved. Unknown names are reported and decoding continues
// with the next entry.
func (d *Decoder) DecodePalette(names []string) ([]state.State, []bool) {
	states := make([]state.State, len(names)*16)
	for i := range states {
		states[i] = state.Air
	}
	ok := make([]bool, len(names))

	for i, name := range names {
		shifted, found := d.table.ShiftedID(name)
		if !found {
			d.reporter.Report(SeverityError, UnknownNameError{Name: name}.Error())
			continue
		}
		base := shifted.Base()
		for meta := range IDMeta(16) {
			if s, found := d.table.State(base | meta); found {
				states[i<<4|int(meta)] = s
				ok[i] = true
			}
		}
	}
	return states, ok
}

// VanillaPalette returns the identity palette for schematics that store plain
// numeric ids: index m holds the state of IDMeta(m). n is capped at the size
// of the legacy id space.
func (d *Decoder) VanillaPalette(n int) []state.State {
	n = min(max(n, 0), (MaxID+1)*16)
	states := make([]state.State, n)
	for i := range states {
		if s, ok := d.table.State(IDMeta(i)); ok {
			states[i] = s
		} else {
			states[i] = state.Air
		}
	}
	return states
}
