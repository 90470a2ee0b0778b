package fixer

import (
	"strings"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oriumgames/pile/schemconv/state"
)

var woods = []string{"oak", "spruce", "birch", "jungle", "acacia", "dark_oak"}

var stairs = []string{
	"oak", "spruce", "birch", "jungle", "acacia", "dark_oak",
	"cobblestone", "brick", "stone_brick", "nether_brick", "sandstone",
	"red_sandstone", "quartz", "purpur",
}

type skullKind struct{ floor, wall string }

// skullKinds is indexed by the legacy SkullType tag.
var skullKinds = []skullKind{
	{"skeleton_skull", "skeleton_wall_skull"},
	{"wither_skeleton_skull", "wither_skeleton_wall_skull"},
	{"zombie_head", "zombie_wall_head"},
	{"player_head", "player_wall_head"},
	{"creeper_head", "creeper_wall_head"},
	{"dragon_head", "dragon_wall_head"},
}

// horizontal lists the horizontal directions in the order vanilla iterates them.
var horizontal = [...]cube.Direction{cube.North, cube.East, cube.South, cube.West}

var directionNames = map[cube.Direction]string{
	cube.North: "north",
	cube.East:  "east",
	cube.South: "south",
	cube.West:  "west",
}

var faceNames = map[cube.Face]string{
	cube.FaceDown:  "down",
	cube.FaceUp:    "up",
	cube.FaceNorth: "north",
	cube.FaceSouth: "south",
	cube.FaceWest:  "west",
	cube.FaceEast:  "east",
}

func directionName(d cube.Direction) string {
	return directionNames[d]
}

// facing returns the horizontal "facing" property of s.
func facing(s state.State) (cube.Direction, bool) {
	v, _ := s.Prop("facing")
	for d, name := range directionNames {
		if name == v {
			return d, true
		}
	}
	return 0, false
}

// sameAxis reports whether a and b lie on the same horizontal axis.
func sameAxis(a, b cube.Direction) bool {
	return a == b || a == b.Opposite()
}

func shortName(s state.State) string {
	return strings.TrimPrefix(s.Name(), "minecraft:")
}

// nonSolidSuffixes name the blocks that never fill their whole cube.
var nonSolidSuffixes = []string{
	"_stairs", "_fence", "_fence_gate", "_wall", "_pane", "_door", "_trapdoor",
	"_sign", "_banner", "_button", "_pressure_plate", "_carpet", "_torch",
	"_rail", "_sapling", "_tulip", "_bed", "_skull", "_head", "_stem",
	"_mushroom", "_shulker_box", "_coral", "_coral_fan",
}

var nonSolid = set(
	"air", "cave_air", "void_air", "water", "lava", "rail", "torch", "ladder",
	"vine", "lever", "redstone_wire", "repeater", "comparator", "snow",
	"cactus", "cake", "chest", "trapped_chest", "ender_chest",
	"enchanting_table", "end_portal_frame", "end_rod", "fire", "flower_pot",
	"hopper", "brewing_stand", "cauldron", "anvil", "chipped_anvil",
	"damaged_anvil", "cobweb", "tripwire", "tripwire_hook", "lily_pad",
	"farmland", "grass_path", "daylight_detector", "sugar_cane", "dead_bush",
	"grass", "fern", "dandelion", "poppy", "blue_orchid", "allium",
	"azure_bluet", "oxeye_daisy", "sunflower", "lilac", "tall_grass",
	"large_fern", "rose_bush", "peony", "nether_portal", "end_portal",
	"end_gateway", "cocoa", "chorus_plant", "chorus_flower", "dragon_egg",
	"wheat", "carrots", "potatoes", "beetroots", "nether_wart", "barrier",
	"structure_void", "iron_bars", "piston_head", "moving_piston", "bell",
	"kelp", "seagrass", "tall_seagrass", "conduit", "sea_pickle", "turtle_egg",
)

// solid reports whether s fills its whole block with solid faces.
func solid(s state.State) bool {
	n := shortName(s)
	if nonSolid[n] || strings.HasPrefix(n, "potted_") {
		return false
	}
	if strings.HasSuffix(n, "_slab") {
		v, _ := s.Prop("type")
		return v == "double"
	}
	if strings.HasSuffix(n, "_piston") || n == "piston" {
		return !s.Bool("extended")
	}
	for _, suffix := range nonSolidSuffixes {
		if strings.HasSuffix(n, suffix) {
			return false
		}
	}
	return true
}

// noAttach are solid blocks fences, panes and walls still refuse to attach to.
var noAttach = set(
	"barrier", "pumpkin", "carved_pumpkin", "jack_o_lantern", "melon",
)

// attachable reports whether fences, panes and walls connect to s.
func attachable(s state.State) bool {
	n := shortName(s)
	if noAttach[n] || strings.HasSuffix(n, "_leaves") {
		return false
	}
	return solid(s)
}

var woodenNames = set(
	"bookshelf", "note_block", "jukebox", "crafting_table", "chest",
	"trapped_chest",
)

// wooden reports whether s is made of wood.
func wooden(s state.State) bool {
	n := shortName(s)
	if woodenNames[n] {
		return true
	}
	for _, suffix := range []string{"_planks", "_log", "_wood"} {
		if strings.HasSuffix(n, suffix) {
			return true
		}
	}
	for _, w := range woods {
		if !strings.HasPrefix(n, w+"_") {
			continue
		}
		switch n[len(w)+1:] {
		case "fence", "fence_gate", "stairs", "slab", "door", "trapdoor", "pressure_plate":
			return true
		}
	}
	return false
}

var flammableNames = set(
	"tnt", "vine", "hay_block", "coal_block", "dead_bush", "grass", "fern",
	"dandelion", "poppy", "blue_orchid", "allium", "azure_bluet",
	"oxeye_daisy", "sunflower", "lilac", "tall_grass", "large_fern",
	"rose_bush", "peony", "dried_kelp_block",
)

// flammable reports whether fire can spread onto s.
func flammable(s state.State) bool {
	n := shortName(s)
	if flammableNames[n] {
		return true
	}
	for _, suffix := range []string{"_leaves", "_wool", "_carpet", "_tulip"} {
		if strings.HasSuffix(n, suffix) {
			return true
		}
	}
	return wooden(s) && !strings.HasSuffix(n, "_door") && !strings.HasSuffix(n, "_pressure_plate")
}

// powerSources are blocks that emit redstone power towards any side.
var powerSources = set(
	"redstone_torch", "redstone_wall_torch", "lever", "redstone_block",
	"daylight_detector", "tripwire_hook", "trapped_chest", "detector_rail",
	"comparator", "stone_pressure_plate", "light_weighted_pressure_plate",
	"heavy_weighted_pressure_plate",
)

func powerSource(s state.State) bool {
	n := shortName(s)
	return powerSources[n] || strings.HasSuffix(n, "_button") || strings.HasSuffix(n, "_pressure_plate")
}

var (
	snareBlocks = set("sand", "red_sand", "gravel")
	hatBlocks   = set("glass", "glass_pane", "glowstone", "sea_lantern", "beacon")
	rockBlocks  = set(
		"stone", "granite", "polished_granite", "diorite", "polished_diorite",
		"andesite", "polished_andesite", "cobblestone", "mossy_cobblestone",
		"bedrock", "obsidian", "netherrack", "end_stone", "bricks",
		"nether_bricks", "red_nether_bricks", "terracotta", "sandstone",
		"chiseled_sandstone", "cut_sandstone", "smooth_sandstone",
		"red_sandstone", "chiseled_red_sandstone", "cut_red_sandstone",
		"smooth_red_sandstone", "smooth_stone", "prismarine",
		"prismarine_bricks", "dark_prismarine", "purpur_block",
		"purpur_pillar", "quartz_block", "chiseled_quartz_block",
		"quartz_pillar", "smooth_quartz", "magma_block", "furnace",
		"dispenser", "dropper", "observer", "spawner", "coal_block",
		"end_stone_bricks",
	)
)

// instrument returns the note block instrument selected by the block below.
func instrument(below state.State) string {
	n := shortName(below)
	switch {
	case n == "clay":
		return "flute"
	case n == "gold_block":
		return "bell"
	case strings.HasSuffix(n, "_wool"):
		return "guitar"
	case n == "packed_ice":
		return "chime"
	case n == "bone_block":
		return "xylophone"
	case rockBlocks[n], strings.HasSuffix(n, "_ore"), strings.HasSuffix(n, "_terracotta"),
		strings.HasSuffix(n, "_concrete"), strings.HasSuffix(n, "_stone_bricks"), n == "stone_bricks":
		return "basedrum"
	case snareBlocks[n], strings.HasSuffix(n, "_concrete_powder"):
		return "snare"
	case hatBlocks[n], strings.HasSuffix(n, "_stained_glass"), strings.HasSuffix(n, "_stained_glass_pane"):
		return "hat"
	case wooden(below):
		return "bass"
	}
	return "harp"
}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}
