package fixer

import (
	"maps"
	"strings"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oriumgames/pile/schemconv/state"
)

// intTag reads an integer NBT tag of any width.
func intTag(m map[string]any, key string) (int, bool) {
	switch v := m[key].(type) {
	case uint8:
		return int(int8(v)), true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

// without returns a shallow copy of m lacking keys.
func without(m map[string]any, keys ...string) map[string]any {
	c := maps.Clone(m)
	for _, k := range keys {
		delete(c, k)
	}
	return c
}

func removeBlockEntity(s state.State) Result {
	return Result{State: s, BlockEntityChanged: true}
}

// fixBanner moves the banner base colour from the tile entity into the block
// name. Legacy banners stored dye damage values, which run opposite to
// colour ids, for both the base and the pattern colours.
func fixBanner(r Reader, pos cube.Pos, s state.State) Result {
	be, ok := r.BlockEntity(pos)
	if !ok {
		return unchanged(s)
	}
	base, ok := intTag(be, "Base")
	if !ok {
		return unchanged(s)
	}
	colour, ok := state.Colour(15 - base)
	if !ok {
		return unchanged(s)
	}

	suffix := "_banner"
	if strings.HasSuffix(s.Name(), "_wall_banner") {
		suffix = "_wall_banner"
	}

	data := without(be, "Base")
	if patterns, ok := be["Patterns"].([]any); ok {
		fixed := make([]any, len(patterns))
		for i, p := range patterns {
			fixed[i] = p
			pm, ok := p.(map[string]any)
			if !ok {
				continue
			}
			if c, ok := intTag(pm, "Color"); ok {
				pm = maps.Clone(pm)
				pm["Color"] = int32(15 - c)
				fixed[i] = pm
			}
		}
		data["Patterns"] = fixed
	}
	return Result{
		State:              s.WithName("minecraft:" + colour + suffix),
		BlockEntity:        data,
		BlockEntityChanged: true,
	}
}

// fixBed takes the bed colour from its tile entity.
func fixBed(r Reader, pos cube.Pos, s state.State) Result {
	be, ok := r.BlockEntity(pos)
	if !ok {
		return unchanged(s)
	}
	c, ok := intTag(be, "color")
	if !ok {
		return unchanged(s)
	}
	colour, ok := state.Colour(c)
	if !ok {
		return unchanged(s)
	}
	return Result{
		State:              s.WithName("minecraft:" + colour + "_bed"),
		BlockEntity:        without(be, "color"),
		BlockEntityChanged: true,
	}
}

// fixSkull takes the skull type and rotation from its tile entity.
func fixSkull(r Reader, pos cube.Pos, s state.State) Result {
	be, ok := r.BlockEntity(pos)
	if !ok {
		return unchanged(s)
	}
	kind, ok := skullKindOf(be)
	if !ok {
		return unchanged(s)
	}
	s = s.WithName("minecraft:" + kind.floor)
	if rot, ok := intTag(be, "Rot"); ok {
		s = s.WithInt("rotation", rot&15)
	}
	return Result{State: s, BlockEntity: without(be, "SkullType", "Rot"), BlockEntityChanged: true}
}

// fixWallSkull takes the skull type from its tile entity. The facing is
// already part of the numeric id.
func fixWallSkull(r Reader, pos cube.Pos, s state.State) Result {
	be, ok := r.BlockEntity(pos)
	if !ok {
		return unchanged(s)
	}
	kind, ok := skullKindOf(be)
	if !ok {
		return unchanged(s)
	}
	return Result{
		State:              s.WithName("minecraft:" + kind.wall),
		BlockEntity:        without(be, "SkullType", "Rot"),
		BlockEntityChanged: true,
	}
}

func skullKindOf(be map[string]any) (skullKind, bool) {
	t, ok := intTag(be, "SkullType")
	if !ok || t < 0 || t >= len(skullKinds) {
		return skullKind{}, false
	}
	return skullKinds[t], true
}

// fixNoteBlock takes the note and powered flag from the tile entity and the
// instrument from the block below. Note blocks have no tile entity after the
// flattening, so it is removed.
func fixNoteBlock(r Reader, pos cube.Pos, s state.State) Result {
	s = s.With("instrument", instrument(r.Block(pos.Side(cube.FaceDown))))
	be, ok := r.BlockEntity(pos)
	if !ok {
		return Result{State: s}
	}
	if note, ok := intTag(be, "note"); ok {
		s = s.WithInt("note", min(max(note, 0), 24))
	}
	if powered, ok := intTag(be, "powered"); ok {
		s = s.WithBool("powered", powered != 0)
	}
	return removeBlockEntity(s)
}

// pottedPlants maps the legacy item name of a potted plant to its potted
// block, indexed by the item's data value.
var pottedPlants = map[string][]string{
	"sapling":        {"oak_sapling", "spruce_sapling", "birch_sapling", "jungle_sapling", "acacia_sapling", "dark_oak_sapling"},
	"red_flower":     {"poppy", "blue_orchid", "allium", "azure_bluet", "red_tulip", "orange_tulip", "white_tulip", "pink_tulip", "oxeye_daisy"},
	"yellow_flower":  {"dandelion"},
	"red_mushroom":   {"red_mushroom"},
	"brown_mushroom": {"brown_mushroom"},
	"cactus":         {"cactus"},
	"deadbush":       {"dead_bush"},
	"tallgrass":      {"dead_bush", "", "fern"},
}

// pottedItemIDs maps the numeric item ids written by early versions.
var pottedItemIDs = map[int]string{
	6: "sapling", 31: "tallgrass", 32: "deadbush", 37: "yellow_flower",
	38: "red_flower", 39: "brown_mushroom", 40: "red_mushroom", 81: "cactus",
}

// fixFlowerPot turns a pot and the plant in its tile entity into a single
// potted block. Flower pots have no tile entity after the flattening.
func fixFlowerPot(r Reader, pos cube.Pos, s state.State) Result {
	be, ok := r.BlockEntity(pos)
	if !ok {
		return unchanged(s)
	}
	var item string
	switch v := be["Item"].(type) {
	case string:
		item = strings.TrimPrefix(strings.ToLower(v), "minecraft:")
	default:
		if id, ok := intTag(be, "Item"); ok {
			item = pottedItemIDs[id]
		}
	}
	data, _ := intTag(be, "Data")

	plants := pottedPlants[item]
	if data < 0 || data >= len(plants) || plants[data] == "" {
		return removeBlockEntity(state.New("minecraft:flower_pot", nil))
	}
	return removeBlockEntity(state.New("minecraft:potted_"+plants[data], nil))
}
