// Package state implements block states in the named (post-flattening) format.
package state

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// State is an immutable block state: a block name plus a set of properties.
//
// Properties are kept in a canonical, sorted "key=value,key=value" form so
// that two states with the same name and properties compare equal with ==
// and can be used directly as map keys.
type State struct {
	name  string
	props string
}

// Air is the default empty state.
var Air = State{name: "minecraft:air"}

// New creates a state from a block name and its properties.
func New(name string, props map[string]string) State {
	if len(props) == 0 {
		return State{name: name}
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf strings.Builder
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(props[k])
	}
	return State{name: name, props: buf.String()}
}

// Parse parses a state string such as "minecraft:oak_stairs[facing=east,half=bottom]".
func Parse(s string) (State, error) {
	name, props, ok := strings.Cut(s, "[")
	if name == "" {
		return State{}, fmt.Errorf("empty block name in %q", s)
	}
	if !ok {
		return State{name: name}, nil
	}
	if !strings.HasSuffix(props, "]") {
		return State{}, fmt.Errorf("unterminated property list in %q", s)
	}
	props = strings.TrimSuffix(props, "]")

	m := make(map[string]string)
	if props != "" {
		for part := range strings.SplitSeq(props, ",") {
			key, value, ok := strings.Cut(part, "=")
			if !ok || key == "" {
				return State{}, fmt.Errorf("malformed property %q in %q", part, s)
			}
			m[key] = value
		}
	}
	return New(name, m), nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// static tables.
func MustParse(s string) State {
	st, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return st
}

// Name returns the namespaced block name.
func (s State) Name() string {
	if s.name == "" {
		return Air.name
	}
	return s.name
}

// IsAir reports whether the state is an empty block.
func (s State) IsAir() bool {
	switch s.name {
	case "", "minecraft:air", "minecraft:cave_air", "minecraft:void_air":
		return true
	}
	return false
}

// Prop returns the value of a property.
func (s State) Prop(key string) (string, bool) {
	rest := s.props
	for rest != "" {
		var part string
		part, rest, _ = strings.Cut(rest, ",")
		k, v, _ := strings.Cut(part, "=")
		if k == key {
			return v, true
		}
	}
	return "", false
}

// Bool returns a boolean property, false if absent.
func (s State) Bool(key string) bool {
	v, _ := s.Prop(key)
	return v == "true"
}

// Int returns an integer property, 0 if absent or not numeric.
func (s State) Int(key string) int {
	v, _ := s.Prop(key)
	n, _ := strconv.Atoi(v)
	return n
}

// HasProp reports whether the state carries the property at all.
func (s State) HasProp(key string) bool {
	_, ok := s.Prop(key)
	return ok
}

// Properties returns a copy of the state's properties.
func (s State) Properties() map[string]string {
	m := make(map[string]string)
	rest := s.props
	for rest != "" {
		var part string
		part, rest, _ = strings.Cut(rest, ",")
		k, v, _ := strings.Cut(part, "=")
		m[k] = v
	}
	return m
}

// With returns a copy of the state with the property set.
func (s State) With(key, value string) State {
	if v, ok := s.Prop(key); ok && v == value {
		return s
	}
	m := s.Properties()
	m[key] = value
	return New(s.name, m)
}

// WithBool returns a copy of the state with a boolean property set.
func (s State) WithBool(key string, value bool) State {
	return s.With(key, strconv.FormatBool(value))
}

// WithInt returns a copy of the state with an integer property set.
func (s State) WithInt(key string, value int) State {
	return s.With(key, strconv.Itoa(value))
}

// WithName returns a state of another block carrying the same properties.
func (s State) WithName(name string) State {
	return State{name: name, props: s.props}
}

// NBTProperties returns the properties typed the way NBT palettes store them:
// "true"/"false" become bool, numbers become int32, everything else stays a string.
func (s State) NBTProperties() map[string]any {
	if s.props == "" {
		return nil
	}
	m := make(map[string]any)
	for k, v := range s.Properties() {
		switch v {
		case "true":
			m[k] = true
		case "false":
			m[k] = false
		default:
			if n, err := strconv.Atoi(v); err == nil {
				m[k] = int32(n)
			} else {
				m[k] = v
			}
		}
	}
	return m
}

// String returns the state in "name[key=value,...]" form.
func (s State) String() string {
	if s.props == "" {
		return s.Name()
	}
	return s.Name() + "[" + s.props + "]"
}
