package mcedit

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/klauspost/compress/gzip"
	"github.com/oriumgames/nbt"
	"github.com/oriumgames/pile/schemconv/format/internal/base"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, v any) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	require.NoError(t, nbt.NewEncoderWithEncoding(gz, nbt.BigEndian).Encode(v))
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	l := &base.Legacy{
		Width: 3, Height: 1, Length: 1,
		Blocks:  []uint16{1, 0x1AB, 300},
		Data:    []byte{2, 15, 7},
		Palette: map[uint16]string{1: "minecraft:stone", 0x1AB: "mymod:thing", 300: "mymod:other"},
		Offset:  [3]int{-1, 2, 3},
		BlockEntities: []*base.BlockEntity{
			{ID: "minecraft:chest", X: 2, Data: map[string]any{"Lock": "key"}},
		},
		Entities: []*base.Entity{
			{ID: "minecraft:pig", Pos: mgl64.Vec3{0.5, 1, 0.5}, Rotation: mgl32.Vec2{90, 0}, Data: map[string]any{"Health": float32(10)}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, l))

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, 3, got.Width)
	require.Equal(t, l.Blocks, got.Blocks)
	require.Equal(t, l.Data, got.Data)
	require.Equal(t, l.Palette, got.Palette)
	require.Equal(t, l.Offset, got.Offset)
	require.Equal(t, "Alpha", got.Materials)

	require.Len(t, got.BlockEntities, 1)
	be := got.BlockEntities[0]
	require.Equal(t, "minecraft:chest", be.ID)
	require.Equal(t, [3]int{2, 0, 0}, [3]int{be.X, be.Y, be.Z})
	require.Equal(t, "key", be.Data["Lock"])
	require.NotContains(t, be.Data, "id")

	require.Len(t, got.Entities, 1)
	ent := got.Entities[0]
	require.Equal(t, "minecraft:pig", ent.ID)
	require.Equal(t, l.Entities[0].Pos, ent.Pos)
	require.Equal(t, l.Entities[0].Rotation, ent.Rotation)
	require.Equal(t, float32(10), ent.Data["Health"])
}

func TestReadWithoutAddBlocks(t *testing.T) {
	data := encode(t, mceditNBT{
		Width: 2, Height: 1, Length: 1,
		Materials: "Alpha",
		Blocks:    []byte{35, 1},
		Data:      []byte{0xF4, 0},
	})
	l, err := Read(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, []uint16{35, 1}, l.Blocks)
	require.Equal(t, []byte{4, 0}, l.Data)
	require.Nil(t, l.Palette)
}

func TestReadBlockIDs(t *testing.T) {
	data := encode(t, mceditNBT{
		Width: 1, Height: 1, Length: 1,
		Materials: "Alpha",
		Blocks:    []byte{5},
		Data:      []byte{0},
		BlockIDs:  map[string]any{"5": "minecraft:planks"},
	})
	l, err := Read(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, map[uint16]string{5: "minecraft:planks"}, l.Palette)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("not gzip")))
	require.Error(t, err)

	data := encode(t, mceditNBT{Width: 2, Height: 1, Length: 1, Blocks: []byte{1}, Data: []byte{0}})
	_, err = Read(bytes.NewReader(data))
	require.ErrorContains(t, err, "block data mismatch")

	data = encode(t, mceditNBT{Width: 0, Height: 1, Length: 1})
	_, err = Read(bytes.NewReader(data))
	require.ErrorContains(t, err, "invalid dimensions")

	data = encode(t, mceditNBT{
		Width: 1, Height: 1, Length: 1, Blocks: []byte{1}, Data: []byte{0},
		BlockIDs: map[string]any{"abc": "minecraft:stone"},
	})
	_, err = Read(bytes.NewReader(data))
	require.ErrorContains(t, err, "invalid BlockIDs entry")

	require.Error(t, Write(&bytes.Buffer{}, &base.Legacy{Width: 1, Height: 1, Length: 1}))
}
