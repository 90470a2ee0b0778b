package schemconv

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/stretchr/testify/require"
)

func TestStructureAir(t *testing.T) {
	s := NewSchematic(2, 3, 4)
	s.SetOffset(5, 6, 7)
	st := &Structure{schematic: s}

	require.Equal(t, [3]int{2, 3, 4}, st.Dimensions())
	x, y, z := st.Offset()
	require.Equal(t, [3]int{5, 6, 7}, [3]int{x, y, z})
	require.Same(t, s, st.Schematic())

	b, liquid := st.At(1, 1, 1, nil)
	require.Equal(t, block.Air{}, b)
	require.Nil(t, liquid)
}
