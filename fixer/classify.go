package fixer

import (
	"maps"

	"github.com/oriumgames/pile/schemconv/state"
)

// Classifier maps a state to the family that repairs it.
type Classifier interface {
	Family(s state.State) Family
}

// NameClassifier classifies states by block name alone.
type NameClassifier map[string]Family

// Family implements Classifier.
func (c NameClassifier) Family(s state.State) Family {
	return c[s.Name()]
}

// With returns a copy of c with name mapped to f.
func (c NameClassifier) With(name string, f Family) NameClassifier {
	n := make(NameClassifier, len(c)+1)
	maps.Copy(n, c)
	n[name] = f
	return n
}

var defaultClassifier = func() NameClassifier {
	c := make(NameClassifier)
	add := func(f Family, names ...string) {
		for _, n := range names {
			c["minecraft:"+n] = f
		}
	}
	add(ChorusPlant, "chorus_plant")
	add(Wall, "cobblestone_wall", "mossy_cobblestone_wall")
	add(Pane, "glass_pane", "iron_bars")
	add(Vine, "vine")
	add(Door, "iron_door")
	add(Fire, "fire")
	add(Snowy, "grass_block", "mycelium", "podzol")
	add(NoteBlock, "note_block")
	add(FlowerPot, "flower_pot")
	add(RedstoneWire, "redstone_wire")
	add(Repeater, "repeater")
	add(Fence, "nether_brick_fence")
	add(Stem, "pumpkin_stem", "melon_stem")
	add(TallFlower, "sunflower", "lilac", "rose_bush", "peony")
	add(TallPlant, "tall_grass", "large_fern")
	add(Tripwire, "tripwire")

	for _, w := range woods {
		add(Fence, w+"_fence")
		add(FenceGate, w+"_fence_gate")
		add(Door, w+"_door")
	}
	for _, s := range stairs {
		add(Stairs, s+"_stairs")
	}
	for i := range 16 {
		colour, _ := state.Colour(i)
		add(Pane, colour+"_stained_glass_pane")
		add(Banner, colour+"_banner")
		add(WallBanner, colour+"_wall_banner")
		add(Bed, colour+"_bed")
	}
	for _, k := range skullKinds {
		add(Skull, k.floor)
		add(WallSkull, k.wall)
	}
	return c
}()

// DefaultClassifier returns the classifier for vanilla 1.13.2 blocks. The
// returned map is shared and must not be modified; use With to extend it.
func DefaultClassifier() NameClassifier {
	return defaultClassifier
}
