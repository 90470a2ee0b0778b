package base

import "github.com/oriumgames/pile/schemconv/state"

// Palette manages a mapping between block states and palette indices.
type Palette struct {
	blocks []state.State
	index  map[state.State]int
}

// NewPalette creates a new empty palette.
func NewPalette() *Palette {
	return &Palette{
		blocks: make([]state.State, 0),
		index:  make(map[state.State]int),
	}
}

// NewPaletteWithAir creates a new palette with air at index 0.
func NewPaletteWithAir() *Palette {
	p := NewPalette()
	p.Add(state.Air)
	return p
}

// Add adds a block state to the palette and returns its index.
// If the block state already exists, returns the existing index.
func (p *Palette) Add(s state.State) int {
	if s.IsAir() {
		s = state.Air
	}
	if idx, ok := p.index[s]; ok {
		return idx
	}
	idx := len(p.blocks)
	p.blocks = append(p.blocks, s)
	p.index[s] = idx
	return idx
}

// Size returns the number of entries in the palette.
func (p *Palette) Size() int {
	return len(p.blocks)
}

// Blocks returns all block states in the palette.
func (p *Palette) Blocks() []state.State {
	return p.blocks
}
