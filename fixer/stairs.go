package fixer

import (
	"strings"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oriumgames/pile/schemconv/state"
)

func isStairs(s state.State) bool {
	return strings.HasSuffix(s.Name(), "_stairs")
}

func sameHalf(a, b state.State) bool {
	ha, _ := a.Prop("half")
	hb, _ := b.Prop("half")
	return ha == hb
}

// fixStairs computes the corner shape of a stair from the stairs behind and
// in front of it.
func fixStairs(r Reader, pos cube.Pos, s state.State) Result {
	f, ok := facing(s)
	if !ok {
		return unchanged(s)
	}
	return Result{State: s.With("shape", stairsShape(r, pos, s, f))}
}

func stairsShape(r Reader, pos cube.Pos, s state.State, f cube.Direction) string {
	// differs reports whether the block next to pos towards d does not
	// continue the same stair run.
	differs := func(d cube.Direction) bool {
		n := r.Block(pos.Side(d.Face()))
		nf, _ := facing(n)
		return !isStairs(n) || nf != f || !sameHalf(s, n)
	}

	if back := r.Block(pos.Side(f.Face())); isStairs(back) && sameHalf(s, back) {
		if bf, ok := facing(back); ok && !sameAxis(bf, f) && differs(bf.Opposite()) {
			if bf == f.RotateLeft() {
				return "outer_left"
			}
			return "outer_right"
		}
	}
	if front := r.Block(pos.Side(f.Opposite().Face())); isStairs(front) && sameHalf(s, front) {
		if ff, ok := facing(front); ok && !sameAxis(ff, f) && differs(ff) {
			if ff == f.RotateLeft() {
				return "inner_left"
			}
			return "inner_right"
		}
	}
	return "straight"
}
