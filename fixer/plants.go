package fixer

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oriumgames/pile/schemconv/state"
)

func fixSnowy(r Reader, pos cube.Pos, s state.State) Result {
	above := r.Block(pos.Side(cube.FaceUp)).Name()
	return Result{State: s.WithBool("snowy", above == "minecraft:snow" || above == "minecraft:snow_block")}
}

// fixStem turns a fully grown stem next to its fruit into an attached stem
// facing that fruit.
func fixStem(r Reader, pos cube.Pos, s state.State) Result {
	if s.Int("age") != 7 {
		return unchanged(s)
	}
	attached, fruits := "minecraft:attached_melon_stem", []string{"minecraft:melon"}
	if s.Name() == "minecraft:pumpkin_stem" {
		attached, fruits = "minecraft:attached_pumpkin_stem", []string{"minecraft:pumpkin", "minecraft:carved_pumpkin"}
	}
	for _, d := range horizontal {
		n := r.Block(pos.Side(d.Face())).Name()
		for _, fruit := range fruits {
			if n == fruit {
				return Result{State: state.New(attached, map[string]string{"facing": directionName(d)})}
			}
		}
	}
	return unchanged(s)
}

var doublePlants = set("sunflower", "lilac", "tall_grass", "large_fern", "rose_bush", "peony")

// fixDoublePlant gives the upper half of a double plant the type of its
// lower half. The numeric format did not store the type on upper halves.
func fixDoublePlant(r Reader, pos cube.Pos, s state.State) Result {
	if half, _ := s.Prop("half"); half != "upper" {
		return unchanged(s)
	}
	below := r.Block(pos.Side(cube.FaceDown))
	if !doublePlants[shortName(below)] {
		return unchanged(s)
	}
	if half, _ := below.Prop("half"); half != "lower" {
		return unchanged(s)
	}
	return Result{State: below.With("half", "upper")}
}

// fixFire computes which faces a fire burns on. Fire resting on a solid or
// flammable block burns on the ground only.
func fixFire(r Reader, pos cube.Pos, s state.State) Result {
	below := r.Block(pos.Side(cube.FaceDown))
	grounded := solid(below) || flammable(below)
	for _, d := range horizontal {
		s = s.WithBool(directionName(d), !grounded && flammable(r.Block(pos.Side(d.Face()))))
	}
	return Result{State: s.WithBool("up", !grounded && flammable(r.Block(pos.Side(cube.FaceUp))))}
}
