package fixer

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oriumgames/pile/schemconv/state"
	"github.com/stretchr/testify/require"
)

type testWorld struct {
	blocks   map[cube.Pos]state.State
	entities map[cube.Pos]map[string]any
}

func newWorld() *testWorld {
	return &testWorld{blocks: map[cube.Pos]state.State{}, entities: map[cube.Pos]map[string]any{}}
}

func (w *testWorld) set(pos cube.Pos, s string) *testWorld {
	w.blocks[pos] = state.MustParse(s)
	return w
}

func (w *testWorld) Block(pos cube.Pos) state.State {
	if s, ok := w.blocks[pos]; ok {
		return s
	}
	return state.Air
}

func (w *testWorld) BlockEntity(pos cube.Pos) (map[string]any, bool) {
	be, ok := w.entities[pos]
	return be, ok
}

// fix classifies the state at pos with the default classifier and repairs it.
func fix(t *testing.T, w *testWorld, pos cube.Pos) Result {
	t.Helper()
	s := w.Block(pos)
	fam := DefaultClassifier().Family(s)
	require.True(t, fam.Registered(), "%v has no family", s)
	return fam.Fix(w, pos, s)
}

var origin = cube.Pos{0, 0, 0}

const oakFence = "minecraft:oak_fence[east=false,north=false,south=false,waterlogged=false,west=false]"

func TestFenceConnections(t *testing.T) {
	w := newWorld().set(origin, oakFence)
	res := fix(t, w, origin)
	require.Equal(t, state.MustParse(oakFence), res.State)

	w.set(origin.Side(cube.FaceNorth), oakFence)
	res = fix(t, w, origin)
	require.True(t, res.State.Bool("north"))
	require.False(t, res.State.Bool("east"))
	require.False(t, res.State.Bool("south"))
	require.False(t, res.State.Bool("west"))
	require.False(t, res.BlockEntityChanged)
}

func TestFenceNeighbours(t *testing.T) {
	tests := []struct {
		neighbour string
		connected bool
	}{
		{"minecraft:stone", true},
		{"minecraft:nether_brick_fence[east=false,north=false,south=false,waterlogged=false,west=false]", false},
		{"minecraft:spruce_fence[east=false,north=false,south=false,waterlogged=false,west=false]", true},
		{"minecraft:oak_fence_gate[facing=north,in_wall=false,open=false,powered=false]", true},
		{"minecraft:oak_fence_gate[facing=east,in_wall=false,open=false,powered=false]", false},
		{"minecraft:oak_leaves[distance=7,persistent=true]", false},
		{"minecraft:carved_pumpkin[facing=south]", false},
		{"minecraft:stone_slab[type=bottom,waterlogged=false]", false},
		{"minecraft:stone_slab[type=double,waterlogged=false]", true},
		{"minecraft:torch", false},
	}
	for i, test := range tests {
		w := newWorld().set(origin, oakFence).set(origin.Side(cube.FaceEast), test.neighbour)
		res := fix(t, w, origin)
		require.Equal(t, test.connected, res.State.Bool("east"), "case %d: %s", i, test.neighbour)
	}
}

func TestPaneAndWall(t *testing.T) {
	pane := "minecraft:glass_pane[east=false,north=false,south=false,waterlogged=false,west=false]"
	wall := "minecraft:cobblestone_wall[east=false,north=false,south=false,up=true,waterlogged=false,west=false]"

	w := newWorld().
		set(origin, pane).
		set(origin.Side(cube.FaceWest), "minecraft:iron_bars[east=false,north=false,south=false,waterlogged=false,west=false]").
		set(origin.Side(cube.FaceSouth), wall)
	res := fix(t, w, origin)
	require.True(t, res.State.Bool("west"))
	require.True(t, res.State.Bool("south"))
	require.False(t, res.State.Bool("north"))

	// A straight wall run drops its post.
	w = newWorld().
		set(origin, wall).
		set(origin.Side(cube.FaceNorth), wall).
		set(origin.Side(cube.FaceSouth), wall)
	res = fix(t, w, origin)
	require.True(t, res.State.Bool("north"))
	require.True(t, res.State.Bool("south"))
	require.False(t, res.State.Bool("up"))

	// Anything on top brings it back.
	w.set(origin.Side(cube.FaceUp), "minecraft:torch")
	res = fix(t, w, origin)
	require.True(t, res.State.Bool("up"))

	// So does a corner.
	w = newWorld().
		set(origin, wall).
		set(origin.Side(cube.FaceNorth), wall).
		set(origin.Side(cube.FaceEast), "minecraft:stone")
	res = fix(t, w, origin)
	require.True(t, res.State.Bool("up"))
	require.True(t, res.State.Bool("east"))
}

func TestFenceGateInWall(t *testing.T) {
	gate := "minecraft:oak_fence_gate[facing=north,in_wall=false,open=false,powered=false]"
	wall := "minecraft:cobblestone_wall[east=false,north=false,south=false,up=true,waterlogged=false,west=false]"

	w := newWorld().set(origin, gate).set(origin.Side(cube.FaceNorth), wall)
	require.False(t, fix(t, w, origin).State.Bool("in_wall"))

	w.set(origin.Side(cube.FaceWest), wall)
	require.True(t, fix(t, w, origin).State.Bool("in_wall"))
}

func TestStairsShape(t *testing.T) {
	north := "minecraft:oak_stairs[facing=north,half=bottom,shape=straight,waterlogged=false]"
	tests := []struct {
		name      string
		neighbour cube.Face
		state     string
		shape     string
	}{
		{"alone", cube.FaceUp, "minecraft:air", "straight"},
		{"outer right", cube.FaceNorth, "minecraft:oak_stairs[facing=east,half=bottom,shape=straight,waterlogged=false]", "outer_right"},
		{"outer left", cube.FaceNorth, "minecraft:oak_stairs[facing=west,half=bottom,shape=straight,waterlogged=false]", "outer_left"},
		{"inner left", cube.FaceSouth, "minecraft:oak_stairs[facing=west,half=bottom,shape=straight,waterlogged=false]", "inner_left"},
		{"inner right", cube.FaceSouth, "minecraft:stone_brick_stairs[facing=east,half=bottom,shape=straight,waterlogged=false]", "inner_right"},
		{"other half", cube.FaceNorth, "minecraft:oak_stairs[facing=east,half=top,shape=straight,waterlogged=false]", "straight"},
		{"same axis", cube.FaceNorth, "minecraft:oak_stairs[facing=south,half=bottom,shape=straight,waterlogged=false]", "straight"},
	}
	for _, test := range tests {
		w := newWorld().set(origin, north).set(origin.Side(test.neighbour), test.state)
		shape, _ := fix(t, w, origin).State.Prop("shape")
		require.Equal(t, test.shape, shape, test.name)
	}

	// A continuing run on the side keeps the stair straight.
	w := newWorld().
		set(origin, north).
		set(origin.Side(cube.FaceNorth), "minecraft:oak_stairs[facing=east,half=bottom,shape=straight,waterlogged=false]").
		set(origin.Side(cube.FaceWest), north)
	shape, _ := fix(t, w, origin).State.Prop("shape")
	require.Equal(t, "straight", shape)
}

func TestDoorHalves(t *testing.T) {
	lower := "minecraft:oak_door[facing=north,half=lower,hinge=left,open=true,powered=false]"
	upper := "minecraft:oak_door[facing=east,half=upper,hinge=right,open=false,powered=true]"
	up := origin.Side(cube.FaceUp)
	w := newWorld().set(origin, lower).set(up, upper)

	require.Equal(t,
		state.MustParse("minecraft:oak_door[facing=north,half=lower,hinge=right,open=true,powered=true]"),
		fix(t, w, origin).State)
	require.Equal(t,
		state.MustParse("minecraft:oak_door[facing=north,half=upper,hinge=right,open=true,powered=true]"),
		fix(t, w, up).State)

	// A lone half is left as decoded.
	w = newWorld().set(origin, lower)
	require.Equal(t, state.MustParse(lower), fix(t, w, origin).State)
}

func TestSnowy(t *testing.T) {
	grass := "minecraft:grass_block[snowy=false]"
	w := newWorld().set(origin, grass)
	require.False(t, fix(t, w, origin).State.Bool("snowy"))

	w.set(origin.Side(cube.FaceUp), "minecraft:snow[layers=1]")
	require.True(t, fix(t, w, origin).State.Bool("snowy"))
}

func TestStem(t *testing.T) {
	w := newWorld().
		set(origin, "minecraft:pumpkin_stem[age=7]").
		set(origin.Side(cube.FaceWest), "minecraft:carved_pumpkin[facing=south]")
	require.Equal(t, state.MustParse("minecraft:attached_pumpkin_stem[facing=west]"), fix(t, w, origin).State)

	w.set(origin, "minecraft:pumpkin_stem[age=6]")
	require.Equal(t, state.MustParse("minecraft:pumpkin_stem[age=6]"), fix(t, w, origin).State)

	w = newWorld().set(origin, "minecraft:melon_stem[age=7]").set(origin.Side(cube.FaceWest), "minecraft:carved_pumpkin[facing=south]")
	require.Equal(t, state.MustParse("minecraft:melon_stem[age=7]"), fix(t, w, origin).State)
}

func TestDoublePlant(t *testing.T) {
	up := origin.Side(cube.FaceUp)
	w := newWorld().set(origin, "minecraft:rose_bush[half=lower]").set(up, "minecraft:sunflower[half=upper]")
	require.Equal(t, state.MustParse("minecraft:rose_bush[half=upper]"), fix(t, w, up).State)
	require.Equal(t, state.MustParse("minecraft:rose_bush[half=lower]"), fix(t, w, origin).State)

	w.set(origin, "minecraft:large_fern[half=lower]")
	require.Equal(t, state.MustParse("minecraft:large_fern[half=upper]"), fix(t, w, up).State)

	w.set(origin, "minecraft:dirt")
	require.Equal(t, state.MustParse("minecraft:sunflower[half=upper]"), fix(t, w, up).State)
}

func TestFire(t *testing.T) {
	fire := "minecraft:fire[age=0,east=false,north=false,south=false,up=false,west=false]"
	w := newWorld().set(origin, fire).set(origin.Side(cube.FaceEast), "minecraft:oak_planks")
	res := fix(t, w, origin)
	require.True(t, res.State.Bool("east"))
	require.False(t, res.State.Bool("west"))
	require.False(t, res.State.Bool("up"))

	w.set(origin.Side(cube.FaceDown), "minecraft:netherrack")
	require.Equal(t, state.MustParse(fire), fix(t, w, origin).State)
}

func TestRedstoneWire(t *testing.T) {
	wire := "minecraft:redstone_wire[east=none,north=none,power=0,south=none,west=none]"
	w := newWorld().
		set(origin, wire).
		set(origin.Side(cube.FaceEast), wire).
		set(origin.Side(cube.FaceNorth), "minecraft:stone").
		set(origin.Side(cube.FaceNorth).Side(cube.FaceUp), wire).
		set(origin.Side(cube.FaceWest), "minecraft:repeater[delay=1,facing=west,locked=false,powered=false]").
		set(origin.Side(cube.FaceSouth), "minecraft:repeater[delay=1,facing=east,locked=false,powered=false]")
	res := fix(t, w, origin)

	for dir, want := range map[string]string{"east": "side", "north": "up", "west": "side", "south": "none"} {
		got, _ := res.State.Prop(dir)
		require.Equal(t, want, got, dir)
	}

	// A solid block above cuts the climb off.
	w.set(origin.Side(cube.FaceUp), "minecraft:stone")
	got, _ := fix(t, w, origin).State.Prop("north")
	require.Equal(t, "none", got)

	// Wire one step down is reached over a non-solid neighbour.
	w = newWorld().set(origin, wire).set(origin.Side(cube.FaceEast).Side(cube.FaceDown), wire)
	got, _ = fix(t, w, origin).State.Prop("east")
	require.Equal(t, "side", got)
}

func TestRepeaterLocked(t *testing.T) {
	rep := "minecraft:repeater[delay=1,facing=north,locked=false,powered=false]"
	w := newWorld().set(origin, rep).
		set(origin.Side(cube.FaceEast), "minecraft:repeater[delay=1,facing=east,locked=false,powered=true]")
	res := fix(t, w, origin)
	require.True(t, res.State.Bool("locked"))
	require.False(t, res.State.Bool("powered"))

	// Pointing away from the repeater does not lock it.
	w.set(origin.Side(cube.FaceEast), "minecraft:repeater[delay=1,facing=west,locked=false,powered=true]")
	require.False(t, fix(t, w, origin).State.Bool("locked"))

	// Neither does an unpowered one.
	w.set(origin.Side(cube.FaceEast), "minecraft:comparator[facing=east,mode=compare,powered=false]")
	require.False(t, fix(t, w, origin).State.Bool("locked"))

	w.set(origin, "minecraft:repeater[delay=1,facing=north,locked=false,powered=true]").
		set(origin.Side(cube.FaceEast), "minecraft:comparator[facing=east,mode=compare,powered=true]")
	res = fix(t, w, origin)
	require.True(t, res.State.Bool("locked"))
	require.True(t, res.State.Bool("powered"))
}

func TestTripwire(t *testing.T) {
	wire := "minecraft:tripwire[attached=true,disarmed=false,east=false,north=false,powered=false,south=false,west=false]"
	w := newWorld().
		set(origin, wire).
		set(origin.Side(cube.FaceWest), wire).
		set(origin.Side(cube.FaceEast), "minecraft:tripwire_hook[attached=true,facing=west,powered=false]").
		set(origin.Side(cube.FaceNorth), "minecraft:tripwire_hook[attached=true,facing=east,powered=false]")
	res := fix(t, w, origin)
	require.True(t, res.State.Bool("west"))
	require.True(t, res.State.Bool("east"))
	require.False(t, res.State.Bool("north"))
	require.True(t, res.State.Bool("attached"))
}

func TestChorusPlantAndVine(t *testing.T) {
	plant := "minecraft:chorus_plant[down=false,east=false,north=false,south=false,up=false,west=false]"
	w := newWorld().
		set(origin, plant).
		set(origin.Side(cube.FaceDown), "minecraft:end_stone").
		set(origin.Side(cube.FaceUp), "minecraft:chorus_flower[age=5]").
		set(origin.Side(cube.FaceSouth), plant)
	require.Equal(t,
		state.MustParse("minecraft:chorus_plant[down=true,east=false,north=false,south=true,up=true,west=false]"),
		fix(t, w, origin).State)

	w = newWorld().
		set(origin, "minecraft:vine[east=false,north=true,south=false,up=false,west=false]").
		set(origin.Side(cube.FaceUp), "minecraft:stone")
	require.True(t, fix(t, w, origin).State.Bool("up"))
}

func TestBanner(t *testing.T) {
	patterns := []any{map[string]any{"Pattern": "bs", "Color": int32(0)}}
	w := newWorld().set(origin, "minecraft:white_banner[rotation=4]")
	w.entities[origin] = map[string]any{"id": "minecraft:banner", "Base": int32(11), "Patterns": patterns}

	res := fix(t, w, origin)
	require.Equal(t, state.MustParse("minecraft:yellow_banner[rotation=4]"), res.State)
	colour := res.State.Name()[len("minecraft:") : len(res.State.Name())-len("_banner")]
	require.Equal(t, 4, state.ColourIndex(colour))

	require.True(t, res.BlockEntityChanged)
	require.NotContains(t, res.BlockEntity, "Base")
	require.Equal(t, []any{map[string]any{"Pattern": "bs", "Color": int32(15)}}, res.BlockEntity["Patterns"])

	// The tile entity the fixer read from is untouched.
	require.Equal(t, int32(11), w.entities[origin]["Base"])
	require.Equal(t, int32(0), patterns[0].(map[string]any)["Color"])

	// Neighbours make no difference.
	w.set(origin.Side(cube.FaceNorth), "minecraft:stone").set(origin.Side(cube.FaceUp), oakFence)
	require.Equal(t, res, fix(t, w, origin))
}

func TestWallBannerAndMissingData(t *testing.T) {
	w := newWorld().set(origin, "minecraft:white_wall_banner[facing=south]")
	require.Equal(t, Result{State: state.MustParse("minecraft:white_wall_banner[facing=south]")}, fix(t, w, origin))

	w.entities[origin] = map[string]any{"Base": int32(0)}
	require.Equal(t, state.MustParse("minecraft:black_wall_banner[facing=south]"), fix(t, w, origin).State)
}

func TestBed(t *testing.T) {
	w := newWorld().set(origin, "minecraft:red_bed[facing=north,occupied=false,part=head]")
	w.entities[origin] = map[string]any{"id": "minecraft:bed", "color": int32(11)}
	res := fix(t, w, origin)
	require.Equal(t, state.MustParse("minecraft:blue_bed[facing=north,occupied=false,part=head]"), res.State)
	require.Equal(t, map[string]any{"id": "minecraft:bed"}, res.BlockEntity)
}

func TestSkulls(t *testing.T) {
	w := newWorld().set(origin, "minecraft:skeleton_skull[rotation=0]")
	w.entities[origin] = map[string]any{"id": "minecraft:skull", "SkullType": uint8(4), "Rot": uint8(6)}
	res := fix(t, w, origin)
	require.Equal(t, state.MustParse("minecraft:creeper_head[rotation=6]"), res.State)
	require.Equal(t, map[string]any{"id": "minecraft:skull"}, res.BlockEntity)

	w.set(origin, "minecraft:skeleton_wall_skull[facing=east]")
	w.entities[origin] = map[string]any{"SkullType": uint8(3), "Owner": map[string]any{"Name": "Notch"}}
	res = fix(t, w, origin)
	require.Equal(t, state.MustParse("minecraft:player_wall_head[facing=east]"), res.State)
	require.Contains(t, res.BlockEntity, "Owner")

	w.entities[origin] = map[string]any{"SkullType": uint8(9)}
	require.Equal(t, state.MustParse("minecraft:skeleton_wall_skull[facing=east]"), fix(t, w, origin).State)
}

func TestNoteBlock(t *testing.T) {
	nb := "minecraft:note_block[instrument=harp,note=0,powered=false]"
	w := newWorld().set(origin, nb).set(origin.Side(cube.FaceDown), "minecraft:oak_planks")
	w.entities[origin] = map[string]any{"id": "minecraft:noteblock", "note": uint8(30), "powered": uint8(1)}
	res := fix(t, w, origin)
	require.Equal(t, state.MustParse("minecraft:note_block[instrument=bass,note=24,powered=true]"), res.State)
	require.True(t, res.BlockEntityChanged)
	require.Nil(t, res.BlockEntity)

	tests := map[string]string{
		"minecraft:stone":          "basedrum",
		"minecraft:sand":           "snare",
		"minecraft:glass":          "hat",
		"minecraft:clay":           "flute",
		"minecraft:gold_block":     "bell",
		"minecraft:lime_wool":      "guitar",
		"minecraft:packed_ice":     "chime",
		"minecraft:bone_block":     "xylophone",
		"minecraft:dirt":           "harp",
		"minecraft:iron_ore":       "basedrum",
		"minecraft:red_terracotta": "basedrum",
	}
	for below, want := range tests {
		w := newWorld().set(origin, nb).set(origin.Side(cube.FaceDown), below)
		res := fix(t, w, origin)
		got, _ := res.State.Prop("instrument")
		require.Equal(t, want, got, below)
		require.False(t, res.BlockEntityChanged)
	}
}

func TestFlowerPot(t *testing.T) {
	tests := []struct {
		item any
		data any
		want string
	}{
		{"minecraft:red_flower", int32(4), "minecraft:potted_red_tulip"},
		{"minecraft:sapling", int32(5), "minecraft:potted_dark_oak_sapling"},
		{"minecraft:cactus", int32(0), "minecraft:potted_cactus"},
		{"minecraft:tallgrass", int32(2), "minecraft:potted_fern"},
		{int32(38), int32(1), "minecraft:potted_blue_orchid"},
		{"minecraft:air", int32(0), "minecraft:flower_pot"},
		{"minecraft:red_flower", int32(12), "minecraft:flower_pot"},
	}
	for _, test := range tests {
		w := newWorld().set(origin, "minecraft:flower_pot")
		w.entities[origin] = map[string]any{"id": "minecraft:flower_pot", "Item": test.item, "Data": test.data}
		res := fix(t, w, origin)
		require.Equal(t, state.MustParse(test.want), res.State, "%v:%v", test.item, test.data)
		require.True(t, res.BlockEntityChanged)
		require.Nil(t, res.BlockEntity)
	}
}

func TestBuildFilter(t *testing.T) {
	plain := []state.State{
		state.Air,
		state.MustParse("minecraft:stone"),
		state.MustParse("minecraft:oak_planks"),
		{},
	}
	needsAny, f := BuildFilter(DefaultClassifier(), plain)
	require.False(t, needsAny)
	require.Zero(t, f.Len())

	stairs := state.MustParse("minecraft:oak_stairs[facing=east,half=bottom,shape=straight,waterlogged=false]")
	palette := append(plain, stairs, stairs, state.MustParse(oakFence))
	needsAny, f = BuildFilter(DefaultClassifier(), palette)
	require.True(t, needsAny)
	require.Equal(t, 2, f.Len())
	require.Equal(t, Stairs, f[stairs])

	fx, ok := f.Lookup(stairs)
	require.True(t, ok)
	require.Equal(t, Stairs, fx)

	_, ok = f.Lookup(state.MustParse("minecraft:stone"))
	require.False(t, ok)

	require.Equal(t, []state.State{state.MustParse(oakFence), stairs}, f.States())
	require.Equal(t, map[Family]int{Stairs: 1, Fence: 1}, f.Histogram())

	// Each build returns a new, identical filter.
	_, again := BuildFilter(DefaultClassifier(), palette)
	require.Equal(t, f, again)
	again[state.MustParse("minecraft:stone")] = Fence
	require.Equal(t, 2, f.Len())
}

func TestBuildFilterCustomClassifier(t *testing.T) {
	c := DefaultClassifier().With("mymod:marble_stairs", Stairs)
	s := state.MustParse("mymod:marble_stairs[facing=east,half=bottom,shape=straight,waterlogged=false]")
	needsAny, f := BuildFilter(c, []state.State{s})
	require.True(t, needsAny)
	require.Equal(t, Stairs, f[s])

	_, ok := DefaultClassifier()["mymod:marble_stairs"]
	require.False(t, ok)
}

func TestApplyFixer(t *testing.T) {
	fence := state.MustParse(oakFence)
	_, f := BuildFilter(DefaultClassifier(), []state.State{fence})
	w := newWorld().set(origin, oakFence).set(origin.Side(cube.FaceSouth), oakFence)

	res, ok := ApplyFixer(f, w, origin, fence)
	require.True(t, ok)
	require.True(t, res.State.Bool("south"))

	stone := state.MustParse("minecraft:stone")
	res, ok = ApplyFixer(f, w, origin, stone)
	require.False(t, ok)
	require.Equal(t, Result{State: stone}, res)
}

func TestClassifierCoversFamilies(t *testing.T) {
	seen := make(map[Family]bool)
	for _, fam := range DefaultClassifier() {
		seen[fam] = true
	}
	for _, fam := range Families() {
		require.True(t, fam.Registered(), fam.String())
		require.True(t, seen[fam], fam.String())
	}
	require.False(t, None.Registered())
	require.Equal(t, "unknown", Family(200).String())
	require.Equal(t, Result{State: state.Air}, None.Fix(newWorld(), origin, state.Air))
}

func TestFixersArePure(t *testing.T) {
	w := newWorld().
		set(origin, oakFence).
		set(origin.Side(cube.FaceNorth), "minecraft:oak_stairs[facing=east,half=bottom,shape=straight,waterlogged=false]").
		set(origin.Side(cube.FaceEast), "minecraft:white_banner[rotation=0]").
		set(origin.Side(cube.FaceSouth), "minecraft:redstone_wire[east=none,north=none,power=0,south=none,west=none]").
		set(origin.Side(cube.FaceWest), "minecraft:flower_pot").
		set(origin.Side(cube.FaceUp), "minecraft:grass_block[snowy=false]")
	w.entities[origin.Side(cube.FaceEast)] = map[string]any{"Base": int32(3)}
	w.entities[origin.Side(cube.FaceWest)] = map[string]any{"Item": "minecraft:cactus", "Data": int32(0)}

	for pos := range w.blocks {
		first := fix(t, w, pos)
		second := fix(t, w, pos)
		require.Equal(t, first, second, "%v", pos)
	}
	require.Equal(t, map[string]any{"Base": int32(3)}, w.entities[origin.Side(cube.FaceEast)])
	require.Equal(t, map[string]any{"Item": "minecraft:cactus", "Data": int32(0)}, w.entities[origin.Side(cube.FaceWest)])
}
