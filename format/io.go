package format

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/oriumgames/pile/schemconv/format/internal/litematica"
	"github.com/oriumgames/pile/schemconv/format/internal/mcedit"
	"github.com/oriumgames/pile/schemconv/format/internal/sponge"
)

// LegacyReader is a function that reads a legacy schematic from an io.Reader.
type LegacyReader func(io.Reader) (*Legacy, error)

// LegacyWriter is a function that writes a legacy schematic to an io.Writer.
type LegacyWriter func(io.Writer, *Legacy) error

// FormatWriter is a function that writes a schematic to an io.Writer.
type FormatWriter func(io.Writer, Schematic) error

var legacyReaders = map[string]LegacyReader{
	"mcedit": mcedit.Read,
}

var legacyWriters = map[string]LegacyWriter{
	"mcedit": mcedit.Write,
}

var formatWriters = map[string]FormatWriter{
	"sponge_v3":  sponge.WriteV3,
	"litematica": litematica.Write,
}

// ReadLegacy reads data from r, detects the legacy format, and returns the
// parsed schematic.
func ReadLegacy(r io.Reader) (*Legacy, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}

	formatID, err := Detect(data)
	if err != nil {
		return nil, fmt.Errorf("detect format: %w", err)
	}
	return ReadLegacyFormat(bytes.NewReader(data), formatID)
}

// ReadLegacyFormat parses data from r using a specific legacy format identifier.
func ReadLegacyFormat(r io.Reader, formatID string) (*Legacy, error) {
	reader, ok := legacyReaders[formatID]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q", formatID)
	}

	l, err := reader(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", formatID, err)
	}
	return l, nil
}

// WriteLegacy writes a legacy schematic using the specified format identifier.
func WriteLegacy(w io.Writer, formatID string, l *Legacy) error {
	writer, ok := legacyWriters[formatID]
	if !ok {
		return fmt.Errorf("unsupported format %q", formatID)
	}
	if err := writer(w, l); err != nil {
		return fmt.Errorf("write %s: %w", formatID, err)
	}
	return nil
}

// Write writes the schematic using the specified format identifier.
func Write(w io.Writer, formatID string, schem Schematic) error {
	writer, ok := formatWriters[formatID]
	if !ok {
		return fmt.Errorf("unsupported format %q", formatID)
	}
	if err := writer(w, schem); err != nil {
		return fmt.Errorf("write %s: %w", formatID, err)
	}
	return nil
}

// Formats returns a sorted list of the output format identifiers.
func Formats() []string {
	ids := make([]string, 0, len(formatWriters))
	for id := range formatWriters {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
