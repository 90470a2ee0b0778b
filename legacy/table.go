// Package legacy implements the numeric block format used by schematics
// written before the 1.13 flattening, and its translation into named states.
package legacy

import (
	"fmt"
	"maps"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/oriumgames/pile/schemconv/state"
	"gopkg.in/yaml.v3"
)

// IDMeta is a legacy block encoded as (id<<4)|meta.
type IDMeta uint16

// MaxID is the highest numeric block id the legacy encoding can hold.
const MaxID = 4095

// Pack encodes a numeric id and metadata value.
func Pack(id uint16, meta uint8) IDMeta {
	return IDMeta(id&MaxID)<<4 | IDMeta(meta&0xF)
}

// ID returns the numeric block id.
func (m IDMeta) ID() uint16 { return uint16(m >> 4) }

// Meta returns the metadata nibble.
func (m IDMeta) Meta() uint8 { return uint8(m & 0xF) }

// Base returns the id with the metadata masked off.
func (m IDMeta) Base() IDMeta { return m & 0xFFF0 }

// String returns the "id:meta" form.
func (m IDMeta) String() string {
	return strconv.Itoa(int(m.ID())) + ":" + strconv.Itoa(int(m.Meta()))
}

// ParseIDMeta parses the "id:meta" form. A missing meta defaults to 0.
func ParseIDMeta(s string) (IDMeta, error) {
	idStr, metaStr, hasMeta := strings.Cut(s, ":")
	id, err := strconv.ParseUint(idStr, 10, 16)
	if err != nil || id > MaxID {
		return 0, fmt.Errorf("invalid block id %q", s)
	}
	var meta uint64
	if hasMeta {
		meta, err = strconv.ParseUint(metaStr, 10, 8)
		if err != nil || meta > 15 {
			return 0, fmt.Errorf("invalid metadata %q", s)
		}
	}
	return Pack(uint16(id), uint8(meta)), nil
}

// Table maps legacy block names to shifted numeric ids and numeric ids to
// named states. A Table is never modified after construction and is safe for
// concurrent use.
type Table struct {
	names  map[string]IDMeta
	ids    map[uint16]string
	states map[IDMeta]state.State
}

// Default returns the built-in 1.12 table. It is built on first use.
var Default = sync.OnceValue(func() *Table {
	t := &Table{
		names:  make(map[string]IDMeta, len(legacyNames)),
		ids:    make(map[uint16]string, len(legacyNames)),
		states: make(map[IDMeta]state.State, len(legacyStates)),
	}
	for name, id := range legacyNames {
		t.names[name] = Pack(id, 0)
		t.ids[id] = name
	}
	for k, v := range legacyStates {
		m, err := ParseIDMeta(k)
		if err != nil {
			panic(err)
		}
		t.states[m] = state.MustParse(v)
	}
	return t
})

// ShiftedID looks up the shifted id (id<<4) of a legacy block name. Names are
// matched case-insensitively and a missing "minecraft:" namespace is added.
func (t *Table) ShiftedID(name string) (IDMeta, bool) {
	m, ok := t.names[normalizeName(name)]
	return m, ok
}

// State looks up the named state of a legacy id and metadata pair.
func (t *Table) State(m IDMeta) (state.State, bool) {
	s, ok := t.states[m]
	return s, ok
}

// Name returns the legacy name registered for a numeric id.
func (t *Table) Name(id uint16) (string, bool) {
	n, ok := t.ids[id]
	return n, ok
}

// Len returns the number of id and metadata pairs in the table.
func (t *Table) Len() int {
	return len(t.states)
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if !strings.Contains(name, ":") {
		name = "minecraft:" + name
	}
	return name
}

// Overrides holds entries layered on top of a Table, typically to map blocks
// added by mods onto vanilla states.
type Overrides struct {
	Names  map[string]uint16 `yaml:"names"`
	States map[string]string `yaml:"states"`
}

// LoadOverrides reads overrides from a YAML file.
func LoadOverrides(path string) (Overrides, error) {
	var o Overrides
	b, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("overrides %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &o); err != nil {
		return o, fmt.Errorf("overrides %s: %w", path, err)
	}
	return o, nil
}

// WithOverrides returns a new Table containing t's entries with o applied on
// top. t itself is left unchanged.
func (t *Table) WithOverrides(o Overrides) (*Table, error) {
	n := &Table{
		names:  make(map[string]IDMeta, len(t.names)+len(o.Names)),
		ids:    make(map[uint16]string, len(t.ids)+len(o.Names)),
		states: make(map[IDMeta]state.State, len(t.states)+len(o.States)),
	}
	maps.Copy(n.names, t.names)
	maps.Copy(n.ids, t.ids)
	maps.Copy(n.states, t.states)

	for name, id := range o.Names {
		if id > MaxID {
			return nil, fmt.Errorf("name %q: id %d out of range", name, id)
		}
		name = normalizeName(name)
		n.names[name] = Pack(id, 0)
		n.ids[id] = name
	}
	for k, v := range o.States {
		m, err := ParseIDMeta(k)
		if err != nil {
			return nil, fmt.Errorf("state %q: %w", k, err)
		}
		s, err := state.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("state %q: %w", k, err)
		}
		n.states[m] = s
	}
	return n, nil
}
