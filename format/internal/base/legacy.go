package base

import "fmt"

// Legacy is a schematic storing blocks as numeric ids and metadata, as read
// from its container. Blocks and Data are indexed by Index.
type Legacy struct {
	Width, Height, Length int

	// Blocks holds the 12-bit block id of every voxel.
	Blocks []uint16
	// Data holds the 4-bit metadata of every voxel.
	Data []byte

	// Palette maps the numeric ids used by Blocks to legacy block names. It
	// is nil when the schematic uses the vanilla numeric ids.
	Palette map[uint16]string

	Materials     string
	Offset        [3]int
	BlockEntities []*BlockEntity
	Entities      []*Entity
	Metadata      map[string]any
}

// Index returns the position of voxel (x, y, z) in Blocks and Data.
func (l *Legacy) Index(x, y, z int) int {
	return (y*l.Length+z)*l.Width + x
}

// Volume returns the number of voxels.
func (l *Legacy) Volume() int {
	return l.Width * l.Height * l.Length
}

// Validate checks that the dimensions match the block arrays.
func (l *Legacy) Validate() error {
	if l.Width <= 0 || l.Height <= 0 || l.Length <= 0 {
		return fmt.Errorf("invalid dimensions: %dx%dx%d", l.Width, l.Height, l.Length)
	}
	if len(l.Blocks) != l.Volume() || len(l.Data) != l.Volume() {
		return fmt.Errorf("block data mismatch: expected %d entries, got %d blocks and %d data", l.Volume(), len(l.Blocks), len(l.Data))
	}
	return nil
}

// PaletteNames returns the palette as a dense slice indexed by numeric id.
// Ids missing from the palette are named minecraft:air.
func (l *Legacy) PaletteNames() []string {
	if l.Palette == nil {
		return nil
	}
	n := 0
	for id := range l.Palette {
		n = max(n, int(id)+1)
	}
	names := make([]string, n)
	for i := range names {
		names[i] = "minecraft:air"
	}
	for id, name := range l.Palette {
		names[id] = name
	}
	return names
}
