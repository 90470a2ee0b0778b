package sponge

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/klauspost/compress/gzip"
	"github.com/oriumgames/nbt"
	"github.com/oriumgames/pile/schemconv/format/internal/base"
	"github.com/oriumgames/pile/schemconv/state"
	"github.com/stretchr/testify/require"
)

type testSchematic struct {
	w, h, l  int
	blocks   map[[3]int]state.State
	entities []*base.Entity
	be       map[[3]int]*base.BlockEntity
}

func (s *testSchematic) Dimensions() (int, int, int) { return s.w, s.h, s.l }
func (s *testSchematic) Offset() (int, int, int)     { return 1, 2, 3 }
func (s *testSchematic) Block(x, y, z int) state.State {
	if b, ok := s.blocks[[3]int{x, y, z}]; ok {
		return b
	}
	return state.Air
}
func (s *testSchematic) BlockEntity(x, y, z int) *base.BlockEntity { return s.be[[3]int{x, y, z}] }
func (s *testSchematic) Entities() []*base.Entity                  { return s.entities }
func (s *testSchematic) Metadata() map[string]any                  { return map[string]any{"Name": "test"} }
func (s *testSchematic) DataVersion() int                          { return 1631 }

func TestWriteV3(t *testing.T) {
	stairs := state.MustParse("minecraft:oak_stairs[facing=east,half=bottom,shape=straight,waterlogged=false]")
	s := &testSchematic{
		w: 2, h: 2, l: 1,
		blocks: map[[3]int]state.State{
			{0, 0, 0}: state.MustParse("minecraft:stone"),
			{1, 1, 0}: stairs,
		},
		be: map[[3]int]*base.BlockEntity{
			{0, 0, 0}: {ID: "minecraft:chest", Data: map[string]any{"Lock": "key"}},
		},
		entities: []*base.Entity{{ID: "minecraft:pig", Pos: mgl64.Vec3{1, 2, 3}}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteV3(&buf, s))

	gz, err := gzip.NewReader(&buf)
	require.NoError(t, err)
	var root struct {
		Schematic v3NBT `nbt:"Schematic"`
	}
	require.NoError(t, nbt.NewDecoderWithEncoding(gz, nbt.BigEndian).Decode(&root))
	data := root.Schematic

	require.Equal(t, int32(3), data.Version)
	require.Equal(t, int32(1631), data.DataVersion)
	require.Equal(t, "test", data.Metadata.Name)
	require.Equal(t, []int32{1, 2, 3}, data.Offset)
	require.Equal(t, map[string]int32{
		"minecraft:air":   0,
		"minecraft:stone": 1,
		stairs.String():   2,
	}, data.Blocks.Palette)

	indices, err := base.DecodeVarIntArray(data.Blocks.Data, 4)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 0, 2}, indices)

	require.Len(t, data.Blocks.BlockEntities, 1)
	require.Equal(t, "minecraft:chest", data.Blocks.BlockEntities[0]["Id"])
	require.Len(t, data.Entities, 1)
	require.Equal(t, "minecraft:pig", data.Entities[0]["Id"])
}
