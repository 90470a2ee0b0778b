package format

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/klauspost/compress/gzip"
	"github.com/oriumgames/nbt"
)

var (
	// ErrUnknownFormat is returned when data is not a recognised schematic.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrNotLegacy is returned for schematics that already store named block
	// states and need no conversion.
	ErrNotLegacy = errors.New("schematic already uses named block states")
)

// Detect attempts to detect the format of a legacy schematic from file data.
func Detect(data []byte) (string, error) {
	if len(data) < 2 || data[0] != 0x1F || data[1] != 0x8B {
		return "", ErrUnknownFormat
	}

	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("gzip decompress: %w", err)
	}
	defer gz.Close()

	var root map[string]any
	if err := nbt.NewDecoderWithEncoding(gz, nbt.BigEndian).Decode(&root); err != nil {
		return "", fmt.Errorf("decode nbt: %w", err)
	}

	// Litematica has "Version" and "Regions" at root
	if _, ok := root["Regions"]; ok {
		return "", fmt.Errorf("litematica: %w", ErrNotLegacy)
	}

	// Sponge has "Version" at root, or under "Schematic" for v3
	if _, ok := root["Version"]; ok {
		return "", fmt.Errorf("sponge: %w", ErrNotLegacy)
	}
	if _, ok := root["Schematic"].(map[string]any); ok {
		return "", fmt.Errorf("sponge: %w", ErrNotLegacy)
	}

	// MCEdit has "Blocks" and "Data" at root
	if _, hasBlocks := root["Blocks"]; hasBlocks {
		if _, hasData := root["Data"]; hasData {
			return "mcedit", nil
		}
	}

	return "", ErrUnknownFormat
}
