package schemconv

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oriumgames/pile/schemconv/format"
	"github.com/oriumgames/pile/schemconv/state"
)

// DataVersion is the data version of the converted block states (1.13.2).
const DataVersion = 1631

// Schematic is a converted volume of named block states. It implements
// format.Schematic and can be written by any of the named-state writers.
type Schematic struct {
	width, height, length int
	offset                [3]int

	blocks        []state.State
	blockEntities map[cube.Pos]map[string]any
	entities      []*format.Entity
	metadata      map[string]any

	stats RepairStats
}

// NewSchematic creates a schematic of the given dimensions filled with air.
func NewSchematic(width, height, length int) *Schematic {
	s := &Schematic{
		width:         width,
		height:        height,
		length:        length,
		blocks:        make([]state.State, width*height*length),
		blockEntities: make(map[cube.Pos]map[string]any),
		metadata:      make(map[string]any),
	}
	for i := range s.blocks {
		s.blocks[i] = state.Air
	}
	return s
}

func (s *Schematic) index(x, y, z int) int {
	return x + z*s.width + y*s.width*s.length
}

func (s *Schematic) inBounds(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < s.width && y < s.height && z < s.length
}

// Dimensions implements format.Schematic.
func (s *Schematic) Dimensions() (width, height, length int) {
	return s.width, s.height, s.length
}

// Offset implements format.Schematic.
func (s *Schematic) Offset() (x, y, z int) {
	return s.offset[0], s.offset[1], s.offset[2]
}

// SetOffset sets the origin offset.
func (s *Schematic) SetOffset(x, y, z int) {
	s.offset = [3]int{x, y, z}
}

// Block implements format.Schematic.
func (s *Schematic) Block(x, y, z int) state.State {
	if !s.inBounds(x, y, z) {
		return state.Air
	}
	return s.blocks[s.index(x, y, z)]
}

// SetBlock sets the state at (x, y, z). Positions outside the volume are
// ignored.
func (s *Schematic) SetBlock(x, y, z int, st state.State) {
	if s.inBounds(x, y, z) {
		s.blocks[s.index(x, y, z)] = st
	}
}

// BlockEntity implements format.Schematic.
func (s *Schematic) BlockEntity(x, y, z int) *format.BlockEntity {
	tag, ok := s.blockEntities[cube.Pos{x, y, z}]
	if !ok {
		return nil
	}
	be := &format.BlockEntity{X: x, Y: y, Z: z, Data: make(map[string]any, len(tag))}
	for k, v := range tag {
		if k == "id" {
			be.ID, _ = v.(string)
			continue
		}
		be.Data[k] = v
	}
	return be
}

// SetBlockEntity stores the tile entity tag at (x, y, z). The tag holds the
// entity id under "id". A nil tag removes the tile entity.
func (s *Schematic) SetBlockEntity(x, y, z int, tag map[string]any) {
	pos := cube.Pos{x, y, z}
	if tag == nil {
		delete(s.blockEntities, pos)
		return
	}
	s.blockEntities[pos] = tag
}

// BlockEntityCount returns the number of tile entities.
func (s *Schematic) BlockEntityCount() int {
	return len(s.blockEntities)
}

// Entities implements format.Schematic.
func (s *Schematic) Entities() []*format.Entity {
	return s.entities
}

// Metadata implements format.Schematic.
func (s *Schematic) Metadata() map[string]any {
	return s.metadata
}

// DataVersion implements format.Schematic.
func (s *Schematic) DataVersion() int {
	return DataVersion
}

// RepairStats returns the counts of the repair pass that produced s.
func (s *Schematic) RepairStats() RepairStats {
	return s.stats
}

// Histogram counts the blocks of the volume by state.
func (s *Schematic) Histogram() map[state.State]int {
	h := make(map[state.State]int)
	for _, b := range s.blocks {
		h[b]++
	}
	return h
}
