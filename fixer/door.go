package fixer

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oriumgames/pile/schemconv/state"
)

// fixDoor merges the two halves of a door. The numeric format stored facing
// and open on the lower half only, and hinge and powered on the upper half.
func fixDoor(r Reader, pos cube.Pos, s state.State) Result {
	half, _ := s.Prop("half")
	if half == "upper" {
		lower := r.Block(pos.Side(cube.FaceDown))
		if lower.Name() != s.Name() {
			return unchanged(s)
		}
		if h, _ := lower.Prop("half"); h != "lower" {
			return unchanged(s)
		}
		f, _ := lower.Prop("facing")
		return Result{State: s.With("facing", f).WithBool("open", lower.Bool("open"))}
	}

	upper := r.Block(pos.Side(cube.FaceUp))
	if upper.Name() != s.Name() {
		return unchanged(s)
	}
	if h, _ := upper.Prop("half"); h != "upper" {
		return unchanged(s)
	}
	hinge, _ := upper.Prop("hinge")
	return Result{State: s.With("hinge", hinge).WithBool("powered", upper.Bool("powered"))}
}
