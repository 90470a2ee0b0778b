package schemconv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oriumgames/pile/schemconv/fixer"
	"github.com/oriumgames/pile/schemconv/format"
	"github.com/oriumgames/pile/schemconv/legacy"
	"github.com/oriumgames/pile/schemconv/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func legacyOf(w, h, l int, blocks []uint16, data []byte) *format.Legacy {
	return &format.Legacy{Width: w, Height: h, Length: l, Blocks: blocks, Data: data}
}

func TestConvertStone(t *testing.T) {
	l := legacyOf(4, 1, 1, []uint16{1, 1, 1, 0}, []byte{0, 1, 5, 0})
	s, err := NewConverter().Convert(l)
	require.NoError(t, err)

	assert.Equal(t, "minecraft:stone", s.Block(0, 0, 0).String())
	assert.Equal(t, "minecraft:granite", s.Block(1, 0, 0).String())
	assert.Equal(t, "minecraft:andesite", s.Block(2, 0, 0).String())
	assert.True(t, s.Block(3, 0, 0).IsAir())
	assert.True(t, s.Block(9, 0, 0).IsAir())
	assert.Equal(t, RepairStats{}, s.RepairStats())
	assert.Equal(t, DataVersion, s.DataVersion())
}

func TestConvertFenceConnections(t *testing.T) {
	// Stone north of a fence, nothing else around it.
	l := legacyOf(1, 1, 2, []uint16{1, 85}, []byte{0, 0})
	s, err := NewConverter().Convert(l)
	require.NoError(t, err)

	want := state.MustParse("minecraft:oak_fence[east=false,north=true,south=false,waterlogged=false,west=false]")
	require.Equal(t, want, s.Block(0, 0, 1))
	require.Equal(t, RepairStats{Visited: 1, Repaired: 1}, s.RepairStats())

	s, err = NewConverter(WithoutRepair()).Convert(l)
	require.NoError(t, err)
	require.False(t, s.Block(0, 0, 1).Bool("north"))
}

func TestConvertBanner(t *testing.T) {
	l := legacyOf(2, 1, 1, []uint16{176, 1}, []byte{0, 0})
	l.BlockEntities = []*format.BlockEntity{
		{ID: "minecraft:banner", Data: map[string]any{"Base": int32(11)}},
	}
	s, err := NewConverter().Convert(l)
	require.NoError(t, err)

	require.Equal(t, "minecraft:yellow_banner[rotation=0]", s.Block(0, 0, 0).String())
	be := s.BlockEntity(0, 0, 0)
	require.NotNil(t, be)
	require.Equal(t, "minecraft:banner", be.ID)
	require.NotContains(t, be.Data, "Base")
	require.Equal(t, 1, s.RepairStats().BlockEntityChanges)

	// The source schematic is left untouched.
	require.Equal(t, int32(11), l.BlockEntities[0].Data["Base"])
}

func TestConvertDoorUsesSnapshot(t *testing.T) {
	// Lower half facing south, upper half hinged right.
	l := legacyOf(1, 2, 1, []uint16{64, 64}, []byte{1, 9})
	s, err := NewConverter().Convert(l)
	require.NoError(t, err)

	lower, upper := s.Block(0, 0, 0), s.Block(0, 1, 0)
	for _, half := range []state.State{lower, upper} {
		f, _ := half.Prop("facing")
		h, _ := half.Prop("hinge")
		assert.Equal(t, "south", f)
		assert.Equal(t, "right", h)
	}
	assert.Equal(t, 2, s.RepairStats().Repaired)
}

func TestConvertSchematicaPalette(t *testing.T) {
	var reports []string
	r := legacy.ReporterFunc(func(sev legacy.Severity, msg string) {
		require.Equal(t, legacy.SeverityError, sev)
		reports = append(reports, msg)
	})

	l := legacyOf(3, 1, 1, []uint16{0, 1, 2}, []byte{0, 2, 0})
	l.Palette = map[uint16]string{0: "minecraft:air", 1: "minecraft:stone", 2: "mymod:gizmo"}

	c := NewConverter(WithReporter(r))
	s, err := c.Convert(l)
	require.NoError(t, err)

	require.Equal(t, "minecraft:polished_granite", s.Block(1, 0, 0).String())
	require.True(t, s.Block(2, 0, 0).IsAir())
	require.Equal(t, []string{"Failed to convert block with old name 'mymod:gizmo'"}, reports)
	require.Len(t, c.Palette(l), 3*16)
}

func TestConvertNoFamilies(t *testing.T) {
	c := NewConverter()
	palette := c.VanillaPalette(16 * 16)
	stoneOnly := []state.State{palette[1<<4], palette[1<<4|1]}
	needsAny, f := c.BuildFilter(stoneOnly)
	require.False(t, needsAny)
	require.Zero(t, f.Len())

	needsAny, f = c.BuildFilter(c.VanillaPalette((legacy.MaxID + 1) * 16))
	require.True(t, needsAny)
	require.Equal(t, fixer.Stairs, f[state.MustParse("minecraft:oak_stairs[facing=east,half=bottom,shape=straight,waterlogged=false]")])
}

func TestConvertInvalid(t *testing.T) {
	_, err := NewConverter().Convert(legacyOf(2, 1, 1, []uint16{1}, []byte{0}))
	require.Error(t, err)
}

func TestConvertDropsOutOfBoundsTileEntities(t *testing.T) {
	var warnings int
	r := legacy.ReporterFunc(func(sev legacy.Severity, _ string) {
		if sev == legacy.SeverityWarning {
			warnings++
		}
	})
	l := legacyOf(1, 1, 1, []uint16{54}, []byte{2})
	l.BlockEntities = []*format.BlockEntity{
		{ID: "minecraft:chest", Data: map[string]any{}},
		{ID: "minecraft:chest", X: 4},
	}
	s, err := NewConverter(WithReporter(r)).Convert(l)
	require.NoError(t, err)
	require.Equal(t, 1, s.BlockEntityCount())
	require.Equal(t, 1, warnings)
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "house.schematic")

	f, err := os.Create(in)
	require.NoError(t, err)
	require.NoError(t, format.WriteLegacy(f, "mcedit", legacyOf(1, 1, 2, []uint16{1, 85}, []byte{0, 0})))
	require.NoError(t, f.Close())

	s, err := NewConverter().ConvertFile(in)
	require.NoError(t, err)
	require.True(t, s.Block(0, 0, 1).Bool("north"))

	for _, id := range Formats() {
		out := filepath.Join(dir, "house."+id)
		require.NoError(t, WriteFile(out, id, s))
		info, err := os.Stat(out)
		require.NoError(t, err)
		require.NotZero(t, info.Size())
	}
	require.Error(t, WriteFile(filepath.Join(dir, "x"), "axiom", s))
}
