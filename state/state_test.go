package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCanonical(t *testing.T) {
	a := MustParse("minecraft:oak_stairs[half=bottom,facing=east,shape=straight]")
	b := New("minecraft:oak_stairs", map[string]string{
		"facing": "east",
		"shape":  "straight",
		"half":   "bottom",
	})
	require.Equal(t, a, b)
	require.True(t, a == b)
	require.Equal(t, "minecraft:oak_stairs[facing=east,half=bottom,shape=straight]", a.String())

	m := map[State]int{a: 1}
	require.Equal(t, 1, m[b])
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "[a=b]", "minecraft:stone[a=b", "minecraft:stone[ab]"} {
		_, err := Parse(in)
		require.Error(t, err, "Parse(%q)", in)
	}
}

func TestWith(t *testing.T) {
	s := MustParse("minecraft:oak_fence[east=false,north=false,south=false,waterlogged=false,west=false]")
	n := s.WithBool("north", true)
	require.NotEqual(t, s, n)
	require.True(t, n.Bool("north"))
	require.False(t, s.Bool("north"), "original must not change")

	require.Equal(t, s, s.WithBool("north", false))
	require.Equal(t, "minecraft:spruce_fence", s.WithName("minecraft:spruce_fence").Name())

	r := MustParse("minecraft:repeater[delay=3,facing=north,locked=false,powered=false]")
	require.Equal(t, 3, r.Int("delay"))
	require.Equal(t, 4, r.WithInt("delay", 4).Int("delay"))
}

func TestIsAir(t *testing.T) {
	require.True(t, State{}.IsAir())
	require.True(t, Air.IsAir())
	require.True(t, MustParse("minecraft:cave_air").IsAir())
	require.False(t, MustParse("minecraft:stone").IsAir())
	require.Equal(t, "minecraft:air", State{}.Name())
}

func TestNBTProperties(t *testing.T) {
	s := MustParse("minecraft:note_block[instrument=harp,note=12,powered=true]")
	require.Equal(t, map[string]any{
		"instrument": "harp",
		"note":       int32(12),
		"powered":    true,
	}, s.NBTProperties())
	require.Nil(t, MustParse("minecraft:stone").NBTProperties())
}

func TestColour(t *testing.T) {
	c, ok := Colour(4)
	require.True(t, ok)
	require.Equal(t, "yellow", c)
	require.Equal(t, 14, ColourIndex("red"))
	require.Equal(t, -1, ColourIndex("mauve"))
	_, ok = Colour(16)
	require.False(t, ok)
}
