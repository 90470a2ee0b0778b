package schemconv

import (
	"slices"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oriumgames/pile/schemconv/fixer"
	"github.com/oriumgames/pile/schemconv/state"
)

// RepairStats holds the counts of a repair pass.
type RepairStats struct {
	// Visited is the number of blocks found in the filter.
	Visited int
	// Repaired is the number of blocks whose state changed.
	Repaired int
	// BlockEntityChanges is the number of tile entities replaced or removed.
	BlockEntityChanges int
}

// snapshot is a read-only view of a schematic as it was before a repair pass.
type snapshot struct {
	s             *Schematic
	blocks        []state.State
	blockEntities map[cube.Pos]map[string]any
}

// Block implements fixer.Reader.
func (v snapshot) Block(pos cube.Pos) state.State {
	if !v.s.inBounds(pos[0], pos[1], pos[2]) {
		return state.Air
	}
	return v.blocks[v.s.index(pos[0], pos[1], pos[2])]
}

// BlockEntity implements fixer.Reader.
func (v snapshot) BlockEntity(pos cube.Pos) (map[string]any, bool) {
	tag, ok := v.blockEntities[pos]
	return tag, ok
}

type blockEntityChange struct {
	pos cube.Pos
	tag map[string]any
}

// Repair runs every block of s found in f through its fixer. Fixers only
// observe the states and tile entities s held before the pass, so the order
// of the walk does not affect the result. States not in f are left untouched.
func Repair(s *Schematic, f fixer.Filter) RepairStats {
	var stats RepairStats
	if f.Len() == 0 {
		return stats
	}

	view := snapshot{s: s, blocks: s.blocks, blockEntities: s.blockEntities}
	out := slices.Clone(s.blocks)
	var changes []blockEntityChange

	for y := range s.height {
		for z := range s.length {
			for x := range s.width {
				i := s.index(x, y, z)
				pos := cube.Pos{x, y, z}
				res, ok := fixer.ApplyFixer(f, view, pos, view.blocks[i])
				if !ok {
					continue
				}
				stats.Visited++
				if res.State != view.blocks[i] {
					out[i] = res.State
					stats.Repaired++
				}
				if res.BlockEntityChanged {
					changes = append(changes, blockEntityChange{pos: pos, tag: res.BlockEntity})
				}
			}
		}
	}

	s.blocks = out
	for _, c := range changes {
		s.SetBlockEntity(c.pos[0], c.pos[1], c.pos[2], c.tag)
		stats.BlockEntityChanges++
	}
	return stats
}
