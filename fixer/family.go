// Package fixer repairs block states whose correct value depends on their
// neighbours or on tile entity data the numeric format stored separately.
//
// Every repairable block belongs to a Family. A Filter built from a decoded
// palette maps each distinct state needing repair to its Family, and a volume
// walker then calls Family.Fix for every block whose state is in the Filter.
package fixer

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oriumgames/pile/schemconv/state"
)

// Family classifies blocks by the repair they need.
type Family uint8

const (
	// None is the family of blocks that never need repair.
	None Family = iota
	ChorusPlant
	Fence
	FenceGate
	Wall
	Pane
	Vine
	Door
	Fire
	Snowy
	NoteBlock
	Skull
	WallSkull
	Banner
	WallBanner
	Bed
	FlowerPot
	RedstoneWire
	Repeater
	Stairs
	Stem
	TallFlower
	TallPlant
	Tripwire

	familyCount
)

var familyNames = [familyCount]string{
	None:         "none",
	ChorusPlant:  "chorus_plant",
	Fence:        "fence",
	FenceGate:    "fence_gate",
	Wall:         "wall",
	Pane:         "pane",
	Vine:         "vine",
	Door:         "door",
	Fire:         "fire",
	Snowy:        "snowy",
	NoteBlock:    "note_block",
	Skull:        "skull",
	WallSkull:    "wall_skull",
	Banner:       "banner",
	WallBanner:   "wall_banner",
	Bed:          "bed",
	FlowerPot:    "flower_pot",
	RedstoneWire: "redstone_wire",
	Repeater:     "repeater",
	Stairs:       "stairs",
	Stem:         "stem",
	TallFlower:   "tall_flower",
	TallPlant:    "tall_plant",
	Tripwire:     "tripwire",
}

// String returns the snake case name of the family.
func (f Family) String() string {
	if f >= familyCount {
		return "unknown"
	}
	return familyNames[f]
}

// Families returns every family that has a fixer, in declaration order.
func Families() []Family {
	fams := make([]Family, 0, familyCount-1)
	for f := None + 1; f < familyCount; f++ {
		fams = append(fams, f)
	}
	return fams
}

// Registered reports whether the family has a fixer.
func (f Family) Registered() bool {
	return f < familyCount && fixers[f] != nil
}

// Reader gives fixers read access to the volume being repaired. Reads always
// observe the volume as it was before the repair pass started.
type Reader interface {
	// Block returns the state at pos, or state.Air outside the volume.
	Block(pos cube.Pos) state.State
	// BlockEntity returns the legacy tile entity at pos. The returned map must
	// not be modified.
	BlockEntity(pos cube.Pos) (map[string]any, bool)
}

// Result is the outcome of a fix.
type Result struct {
	State state.State
	// BlockEntity replaces the tile entity at the position when
	// BlockEntityChanged is set. A nil map removes it.
	BlockEntity        map[string]any
	BlockEntityChanged bool
}

// Fixer computes the repaired state of a single block.
type Fixer interface {
	Fix(r Reader, pos cube.Pos, s state.State) Result
}

type fixFunc func(r Reader, pos cube.Pos, s state.State) Result

// fixers is the registry of repairs, indexed by family.
var fixers = [familyCount]fixFunc{
	ChorusPlant:  fixChorusPlant,
	Fence:        fixFence,
	FenceGate:    fixFenceGate,
	Wall:         fixWall,
	Pane:         fixPane,
	Vine:         fixVine,
	Door:         fixDoor,
	Fire:         fixFire,
	Snowy:        fixSnowy,
	NoteBlock:    fixNoteBlock,
	Skull:        fixSkull,
	WallSkull:    fixWallSkull,
	Banner:       fixBanner,
	WallBanner:   fixBanner,
	Bed:          fixBed,
	FlowerPot:    fixFlowerPot,
	RedstoneWire: fixRedstoneWire,
	Repeater:     fixRepeater,
	Stairs:       fixStairs,
	Stem:         fixStem,
	TallFlower:   fixDoublePlant,
	TallPlant:    fixDoublePlant,
	Tripwire:     fixTripwire,
}

// Fix implements Fixer. Families without a fixer return s unchanged.
func (f Family) Fix(r Reader, pos cube.Pos, s state.State) Result {
	if !f.Registered() {
		return Result{State: s}
	}
	return fixers[f](r, pos, s)
}

func unchanged(s state.State) Result {
	return Result{State: s}
}
