package schemconv

import (
	"io"
	"os"

	"github.com/oriumgames/pile/schemconv/format"
)

// Read reads a legacy schematic with auto-format detection.
func Read(r io.Reader) (*format.Legacy, error) {
	return format.ReadLegacy(r)
}

// ReadFile reads a legacy schematic from a file path.
func ReadFile(path string) (*format.Legacy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// ConvertFile reads and converts the legacy schematic at path.
func (c *Converter) ConvertFile(path string) (*Schematic, error) {
	l, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.Convert(l)
}

// Write writes the schematic in the specified format.
func Write(w io.Writer, formatID string, s *Schematic) error {
	return format.Write(w, formatID, s)
}

// WriteFile writes the schematic to a file in the specified format.
func WriteFile(path, formatID string, s *Schematic) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, formatID, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Formats returns the output format identifiers.
func Formats() []string {
	return format.Formats()
}
