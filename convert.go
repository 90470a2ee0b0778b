// Package schemconv converts legacy numeric-id schematics to named block
// states and repairs the states that depend on their neighbours or on legacy
// tile entity data.
package schemconv

import (
	"fmt"
	"maps"

	"github.com/oriumgames/pile/schemconv/fixer"
	"github.com/oriumgames/pile/schemconv/format"
	"github.com/oriumgames/pile/schemconv/legacy"
	"github.com/oriumgames/pile/schemconv/state"
)

// Converter converts legacy schematics. A Converter only holds read-only
// tables and may be used from multiple goroutines.
type Converter struct {
	table      *legacy.Table
	classifier fixer.Classifier
	reporter   legacy.Reporter
	repair     bool
	decoder    *legacy.Decoder
}

// Option configures a Converter.
type Option func(*Converter)

// WithTable sets the legacy id table. The default is legacy.Default().
func WithTable(t *legacy.Table) Option {
	return func(c *Converter) { c.table = t }
}

// WithClassifier sets the classifier assigning block families.
func WithClassifier(cl fixer.Classifier) Option {
	return func(c *Converter) { c.classifier = cl }
}

// WithReporter sets the reporter receiving conversion problems.
func WithReporter(r legacy.Reporter) Option {
	return func(c *Converter) { c.reporter = r }
}

// WithoutRepair disables the repair pass.
func WithoutRepair() Option {
	return func(c *Converter) { c.repair = false }
}

// NewConverter creates a Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		table:      legacy.Default(),
		classifier: fixer.DefaultClassifier(),
		reporter:   legacy.Discard,
		repair:     true,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.decoder = legacy.NewDecoder(c.table, c.reporter)
	return c
}

// Table returns the legacy id table of the converter.
func (c *Converter) Table() *legacy.Table {
	return c.table
}

// DecodePalette expands a palette of legacy block names into named states.
// See legacy.Decoder.DecodePalette.
func (c *Converter) DecodePalette(names []string) ([]state.State, []bool) {
	return c.decoder.DecodePalette(names)
}

// VanillaPalette returns the identity palette of the first n legacy ids.
func (c *Converter) VanillaPalette(n int) []state.State {
	return c.decoder.VanillaPalette(n)
}

// BuildFilter returns the states of palette that need repair.
func (c *Converter) BuildFilter(palette []state.State) (bool, fixer.Filter) {
	return fixer.BuildFilter(c.classifier, palette)
}

// Palette returns the decoded palette of l, indexed by id<<4|meta.
func (c *Converter) Palette(l *format.Legacy) []state.State {
	if names := l.PaletteNames(); names != nil {
		palette, _ := c.DecodePalette(names)
		return palette
	}
	return c.VanillaPalette((legacy.MaxID + 1) * 16)
}

// Convert converts a legacy schematic to named block states.
func (c *Converter) Convert(l *format.Legacy) (*Schematic, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	palette := c.Palette(l)

	s := NewSchematic(l.Width, l.Height, l.Length)
	s.SetOffset(l.Offset[0], l.Offset[1], l.Offset[2])
	for y := range l.Height {
		for z := range l.Length {
			for x := range l.Width {
				i := l.Index(x, y, z)
				m := int(legacy.Pack(l.Blocks[i], l.Data[i]))
				if m < len(palette) {
					s.SetBlock(x, y, z, palette[m])
				}
			}
		}
	}

	for _, be := range l.BlockEntities {
		if !s.inBounds(be.X, be.Y, be.Z) {
			c.reporter.Report(legacy.SeverityWarning, fmt.Sprintf("Dropping tile entity %s outside the schematic at %d %d %d", be.ID, be.X, be.Y, be.Z))
			continue
		}
		s.SetBlockEntity(be.X, be.Y, be.Z, upgradeBlockEntity(be))
	}
	for _, e := range l.Entities {
		s.entities = append(s.entities, e.Clone())
	}
	if l.Metadata != nil {
		s.metadata = maps.Clone(l.Metadata)
	}

	if needsAny, filter := c.BuildFilter(palette); needsAny && c.repair {
		s.stats = Repair(s, filter)
	}
	return s, nil
}

// upgradeBlockEntity returns the tile entity tag stored in the converted
// schematic. Tile entity data is carried over as is.
func upgradeBlockEntity(be *format.BlockEntity) map[string]any {
	tag := format.DeepCopy(be.Data).(map[string]any)
	if tag == nil {
		tag = make(map[string]any, 1)
	}
	tag["id"] = be.ID
	return tag
}
