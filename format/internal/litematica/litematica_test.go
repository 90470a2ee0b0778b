package litematica

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/oriumgames/nbt"
	"github.com/oriumgames/pile/schemconv/format/internal/base"
	"github.com/oriumgames/pile/schemconv/state"
	"github.com/stretchr/testify/require"
)

type testSchematic struct {
	w, h, l int
	blocks  []state.State
}

func (s *testSchematic) Dimensions() (int, int, int) { return s.w, s.h, s.l }
func (s *testSchematic) Offset() (int, int, int)     { return 0, 0, 0 }
func (s *testSchematic) Block(x, y, z int) state.State {
	return s.blocks[x+z*s.w+y*s.w*s.l]
}
func (s *testSchematic) BlockEntity(x, y, z int) *base.BlockEntity {
	if x == 0 && y == 0 && z == 0 {
		return &base.BlockEntity{ID: "minecraft:furnace", Data: map[string]any{"BurnTime": int16(5)}}
	}
	return nil
}
func (s *testSchematic) Entities() []*base.Entity { return nil }
func (s *testSchematic) Metadata() map[string]any {
	return map[string]any{"Author": "someone", "TimeCreated": int64(42)}
}
func (s *testSchematic) DataVersion() int { return 1631 }

func TestWrite(t *testing.T) {
	fence := state.MustParse("minecraft:oak_fence[east=true,north=false,south=false,waterlogged=false,west=true]")
	s := &testSchematic{w: 5, h: 1, l: 1, blocks: []state.State{
		state.MustParse("minecraft:furnace[facing=north,lit=false]"),
		state.Air,
		fence,
		fence,
		state.MustParse("minecraft:stone"),
	}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, s))

	gz, err := gzip.NewReader(&buf)
	require.NoError(t, err)
	var data litematicaNBT
	require.NoError(t, nbt.NewDecoderWithEncoding(gz, nbt.BigEndian).Decode(&data))

	require.Equal(t, int32(6), data.Version)
	require.Equal(t, int32(1631), data.MinecraftDataVersion)
	require.Equal(t, "someone", data.Metadata.Author)
	require.Equal(t, int64(42), data.Metadata.TimeCreated)
	require.Equal(t, int32(4), data.Metadata.TotalBlocks)
	require.Equal(t, int32(5), data.Metadata.TotalVolume)

	region, ok := data.Regions[RegionName]
	require.True(t, ok)
	require.Equal(t, vec3i{X: 5, Y: 1, Z: 1}, region.Size)
	require.Len(t, region.BlockStatePalette, 4)
	require.Equal(t, "minecraft:air", region.BlockStatePalette[0].Name)
	require.Equal(t, "minecraft:oak_fence", region.BlockStatePalette[2].Name)
	require.Equal(t, "true", region.BlockStatePalette[2].Properties["east"])

	values := base.UnpackLongArrayTight(region.BlockStates, 2, 5)
	require.Equal(t, []int{1, 0, 2, 2, 3}, values)

	require.Len(t, region.TileEntities, 1)
	require.Equal(t, "minecraft:furnace", region.TileEntities[0]["id"])
	require.Equal(t, int32(0), region.TileEntities[0]["x"])
}
