package legacy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oriumgames/pile/schemconv/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type report struct {
	sev Severity
	msg string
}

func collect(reports *[]report) Reporter {
	return ReporterFunc(func(sev Severity, msg string) {
		*reports = append(*reports, report{sev, msg})
	})
}

func TestIDMeta(t *testing.T) {
	m := Pack(53, 6)
	require.Equal(t, IDMeta(53<<4|6), m)
	require.Equal(t, uint16(53), m.ID())
	require.Equal(t, uint8(6), m.Meta())
	require.Equal(t, IDMeta(53<<4), m.Base())
	require.Equal(t, "53:6", m.String())

	p, err := ParseIDMeta("53:6")
	require.NoError(t, err)
	require.Equal(t, m, p)

	p, err = ParseIDMeta("4095")
	require.NoError(t, err)
	require.Equal(t, Pack(4095, 0), p)

	for _, bad := range []string{"", "x:1", "4096:0", "1:16", "1:-1"} {
		_, err := ParseIDMeta(bad)
		require.Error(t, err, bad)
	}
}

func TestTableConsistency(t *testing.T) {
	table := Default()
	for name, id := range legacyNames {
		shifted, ok := table.ShiftedID(name)
		require.True(t, ok, name)
		require.Equal(t, Pack(id, 0), shifted, name)

		back, ok := table.Name(id)
		require.True(t, ok)
		require.Equal(t, name, back)
	}
	// Every id with states has a name.
	for m := range table.states {
		_, ok := table.Name(m.ID())
		require.True(t, ok, "no name for %v", m)
	}
}

func TestShiftedIDNormalisation(t *testing.T) {
	table := Default()
	for _, name := range []string{"minecraft:stone", "stone", "Minecraft:Stone", " STONE "} {
		m, ok := table.ShiftedID(name)
		require.True(t, ok, name)
		require.Equal(t, Pack(1, 0), m, name)
	}
	_, ok := table.ShiftedID("minecraft:old_wool")
	require.False(t, ok)
}

func TestDecodeStone(t *testing.T) {
	states, ok := NewDecoder(nil, nil).DecodePalette([]string{"minecraft:stone"})
	require.Len(t, states, 16)
	require.Equal(t, []bool{true}, ok)

	expected := []string{
		"minecraft:stone",
		"minecraft:granite",
		"minecraft:polished_granite",
		"minecraft:diorite",
		"minecraft:polished_diorite",
		"minecraft:andesite",
		"minecraft:polished_andesite",
	}
	for meta, name := range expected {
		require.Equal(t, state.MustParse(name), states[meta], "meta %d", meta)
	}
	for meta := len(expected); meta < 16; meta++ {
		require.Equal(t, state.Air, states[meta], "meta %d", meta)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	table := Default()
	names := make([]string, 0, len(legacyNames))
	for name := range legacyNames {
		names = append(names, name)
	}
	states, ok := NewDecoder(table, nil).DecodePalette(names)
	require.Len(t, states, len(names)*16)

	for i, name := range names {
		require.True(t, ok[i], name)
		shifted, _ := table.ShiftedID(name)
		for meta := range IDMeta(16) {
			want, found := table.State(shifted | meta)
			if !found {
				want = state.Air
			}
			require.Equal(t, want, states[i<<4|int(meta)], "%s meta %d", name, meta)
		}
	}
}

func TestDecodeUnknownIsolated(t *testing.T) {
	var reports []report
	names := []string{"minecraft:stone", "minecraft:old_wool", "minecraft:oak_stairs"}
	states, ok := NewDecoder(nil, collect(&reports)).DecodePalette(names)

	require.Len(t, states, 48)
	require.Equal(t, []bool{true, false, true}, ok)
	for meta := range 16 {
		require.Equal(t, state.Air, states[16+meta])
	}
	require.Equal(t, state.MustParse("minecraft:granite"), states[1])
	require.Equal(t, "minecraft:oak_stairs", states[32].Name())

	require.Equal(t, []report{{SeverityError, "Failed to convert block with old name 'minecraft:old_wool'"}}, reports)
}

func TestDecodeEmpty(t *testing.T) {
	states, ok := NewDecoder(nil, nil).DecodePalette(nil)
	require.Empty(t, states)
	require.Empty(t, ok)
}

func TestVanillaPalette(t *testing.T) {
	d := NewDecoder(nil, nil)
	states := d.VanillaPalette(256 * 16)
	require.Len(t, states, 4096)
	require.Equal(t, state.Air, states[0])
	require.Equal(t, state.MustParse("minecraft:granite"), states[Pack(1, 1)])
	require.Equal(t, "minecraft:white_wool", states[Pack(35, 0)].Name())
	require.Equal(t, "minecraft:black_wool", states[Pack(35, 15)].Name())
	require.Equal(t, state.Air, states[Pack(1, 15)])

	require.Len(t, d.VanillaPalette(1<<20), (MaxID+1)*16)
	require.Empty(t, d.VanillaPalette(-1))
}

func TestMetadataMappings(t *testing.T) {
	table := Default()
	tests := []struct {
		id   uint16
		meta uint8
		want string
	}{
		{53, 0, "minecraft:oak_stairs[facing=east,half=bottom,shape=straight,waterlogged=false]"},
		{53, 7, "minecraft:oak_stairs[facing=north,half=top,shape=straight,waterlogged=false]"},
		{64, 9, "minecraft:oak_door[facing=east,half=upper,hinge=right,open=false,powered=false]"},
		{17, 12, "minecraft:oak_wood[axis=y]"},
		{18, 5, "minecraft:spruce_leaves[distance=7,persistent=true]"},
		{31, 1, "minecraft:grass"},
		{50, 5, "minecraft:torch"},
		{50, 4, "minecraft:wall_torch[facing=north]"},
		{93, 5, "minecraft:repeater[delay=2,facing=west,locked=false,powered=false]"},
		{175, 10, "minecraft:sunflower[half=upper]"},
		{176, 4, "minecraft:white_banner[rotation=4]"},
		{251, 4, "minecraft:yellow_concrete"},
	}
	for _, test := range tests {
		got, ok := table.State(Pack(test.id, test.meta))
		require.True(t, ok, "%d:%d", test.id, test.meta)
		require.Equal(t, state.MustParse(test.want), got, "%d:%d", test.id, test.meta)
	}

	_, ok := table.State(Pack(1, 7))
	assert.False(t, ok)
}

func TestOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
names:
  mymod:marble: 600
states:
  "600:0": minecraft:smooth_quartz
  "1:7": minecraft:stone
`), 0o644))

	o, err := LoadOverrides(path)
	require.NoError(t, err)

	base := Default()
	table, err := base.WithOverrides(o)
	require.NoError(t, err)

	m, ok := table.ShiftedID("MyMod:Marble")
	require.True(t, ok)
	require.Equal(t, Pack(600, 0), m)

	s, ok := table.State(Pack(600, 0))
	require.True(t, ok)
	require.Equal(t, "minecraft:smooth_quartz", s.Name())

	s, ok = table.State(Pack(1, 7))
	require.True(t, ok)
	require.Equal(t, state.MustParse("minecraft:stone"), s)

	// The default table is untouched.
	_, ok = base.ShiftedID("mymod:marble")
	require.False(t, ok)
	_, ok = base.State(Pack(1, 7))
	require.False(t, ok)
}

func TestOverridesErrors(t *testing.T) {
	_, err := LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Default().WithOverrides(Overrides{States: map[string]string{"nope": "minecraft:stone"}})
	require.Error(t, err)

	_, err = Default().WithOverrides(Overrides{States: map[string]string{"1:0": "[broken"}})
	require.Error(t, err)

	_, err = Default().WithOverrides(Overrides{Names: map[string]uint16{"x": 5000}})
	require.Error(t, err)
}
