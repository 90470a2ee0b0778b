package fixer

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oriumgames/pile/schemconv/state"
)

// connectsToWire reports whether redstone wire on the side facing d of n
// links to n.
func connectsToWire(n state.State, d cube.Direction) bool {
	switch n.Name() {
	case "minecraft:redstone_wire":
		return true
	case "minecraft:repeater":
		f, ok := facing(n)
		return ok && sameAxis(f, d)
	case "minecraft:observer":
		v, _ := n.Prop("facing")
		return v == directionName(d)
	}
	return powerSource(n)
}

// fixRedstoneWire computes the none/side/up shape of every side of a wire.
// Wire climbs onto a neighbouring solid block when the block above the wire
// does not cut it off and wire rests on top of that neighbour.
func fixRedstoneWire(r Reader, pos cube.Pos, s state.State) Result {
	coveredAbove := solid(r.Block(pos.Side(cube.FaceUp)))
	for _, d := range horizontal {
		side := pos.Side(d.Face())
		n := r.Block(side)

		shape := "none"
		switch {
		case !coveredAbove && solid(n) && r.Block(side.Side(cube.FaceUp)).Name() == "minecraft:redstone_wire":
			shape = "up"
		case connectsToWire(n, d):
			shape = "side"
		case !solid(n) && r.Block(side.Side(cube.FaceDown)).Name() == "minecraft:redstone_wire":
			shape = "side"
		}
		s = s.With(directionName(d), shape)
	}
	return Result{State: s}
}

// fixRepeater locks a repeater when a powered repeater or comparator on
// either side points into it. The powered flag comes from the numeric id and
// is kept.
func fixRepeater(r Reader, pos cube.Pos, s state.State) Result {
	f, ok := facing(s)
	if !ok {
		return unchanged(s)
	}
	locked := false
	for _, d := range []cube.Direction{f.RotateLeft(), f.RotateRight()} {
		n := r.Block(pos.Side(d.Face()))
		if n.Name() != "minecraft:repeater" && n.Name() != "minecraft:comparator" {
			continue
		}
		if nf, ok := facing(n); ok && nf == d && n.Bool("powered") {
			locked = true
		}
	}
	return Result{State: s.WithBool("locked", locked)}
}
