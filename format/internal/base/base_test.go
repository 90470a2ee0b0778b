package base

import (
	"testing"

	"github.com/oriumgames/pile/schemconv/state"
	"github.com/stretchr/testify/require"
)

func TestPackLongArrayTight(t *testing.T) {
	for _, bitsPerEntry := range []int{2, 5, 7, 12} {
		values := make([]int, 100)
		for i := range values {
			values[i] = (i * 7) % (1 << bitsPerEntry)
		}
		packed := PackLongArrayTight(values, bitsPerEntry)
		require.Len(t, packed, (len(values)*bitsPerEntry+63)/64)
		require.Equal(t, values, UnpackLongArrayTight(packed, bitsPerEntry, len(values)))
	}
	require.Nil(t, PackLongArrayTight([]int{1}, 0))
}

func TestVarIntArray(t *testing.T) {
	values := []int{0, 1, 127, 128, 300, 16384, 2097151}
	data := EncodeVarIntArray(values)
	decoded, err := DecodeVarIntArray(data, len(values))
	require.NoError(t, err)
	require.Equal(t, values, decoded)

	_, err = DecodeVarIntArray(data[:len(data)-1], len(values))
	require.Error(t, err)
}

func TestPalette(t *testing.T) {
	p := NewPaletteWithAir()
	stone := state.MustParse("minecraft:stone")
	require.Equal(t, 1, p.Add(stone))
	require.Equal(t, 1, p.Add(stone))
	require.Equal(t, 0, p.Add(state.MustParse("minecraft:cave_air")))
	require.Equal(t, 2, p.Add(state.MustParse("minecraft:oak_log[axis=y]")))
	require.Equal(t, 3, p.Size())
	require.Equal(t, state.Air, p.Blocks()[0])
}

func TestLegacy(t *testing.T) {
	l := &Legacy{Width: 3, Height: 2, Length: 4}
	require.Equal(t, 24, l.Volume())
	require.Equal(t, 0, l.Index(0, 0, 0))
	require.Equal(t, 1, l.Index(1, 0, 0))
	require.Equal(t, 3, l.Index(0, 0, 1))
	require.Equal(t, 12, l.Index(0, 1, 0))
	require.Error(t, l.Validate())

	l.Blocks = make([]uint16, 24)
	l.Data = make([]byte, 24)
	require.NoError(t, l.Validate())
	require.Nil(t, l.PaletteNames())

	l.Palette = map[uint16]string{0: "minecraft:air", 3: "minecraft:dirt"}
	require.Equal(t, []string{"minecraft:air", "minecraft:air", "minecraft:air", "minecraft:dirt"}, l.PaletteNames())

	require.Error(t, (&Legacy{Width: 0, Height: 1, Length: 1}).Validate())
}

func TestDeepCopy(t *testing.T) {
	orig := map[string]any{
		"Items": []any{map[string]any{"id": "minecraft:stone"}},
		"Bytes": []byte{1, 2},
	}
	c := DeepCopy(orig).(map[string]any)
	c["Items"].([]any)[0].(map[string]any)["id"] = "minecraft:dirt"
	c["Bytes"].([]byte)[0] = 9
	require.Equal(t, "minecraft:stone", orig["Items"].([]any)[0].(map[string]any)["id"])
	require.Equal(t, byte(1), orig["Bytes"].([]byte)[0])

	be := &BlockEntity{ID: "minecraft:chest", X: 1, Data: map[string]any{"Lock": ""}}
	require.Equal(t, be, be.Clone())
	require.Nil(t, (*BlockEntity)(nil).Clone())
}
