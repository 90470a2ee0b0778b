package fixer

import (
	"strings"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oriumgames/pile/schemconv/state"
)

func isFence(s state.State) bool     { return strings.HasSuffix(s.Name(), "_fence") }
func isFenceGate(s state.State) bool { return strings.HasSuffix(s.Name(), "_fence_gate") }
func isWall(s state.State) bool      { return strings.HasSuffix(s.Name(), "_wall") }

func isPane(s state.State) bool {
	return strings.HasSuffix(s.Name(), "_pane") || s.Name() == "minecraft:iron_bars"
}

// gateAcross reports whether the fence gate g, seen from direction d, spans
// across d so that a fence or wall can run into its side.
func gateAcross(g state.State, d cube.Direction) bool {
	f, ok := facing(g)
	return ok && !sameAxis(f, d)
}

// connectSides sets the four horizontal connection properties of s using
// connects to decide each side.
func connectSides(r Reader, pos cube.Pos, s state.State, connects func(n state.State, d cube.Direction) bool) state.State {
	for _, d := range horizontal {
		n := r.Block(pos.Side(d.Face()))
		s = s.WithBool(directionName(d), connects(n, d))
	}
	return s
}

func fixFence(r Reader, pos cube.Pos, s state.State) Result {
	nether := s.Name() == "minecraft:nether_brick_fence"
	return Result{State: connectSides(r, pos, s, func(n state.State, d cube.Direction) bool {
		switch {
		case isFence(n):
			// Wooden fences never join nether brick ones.
			return (n.Name() == "minecraft:nether_brick_fence") == nether
		case isFenceGate(n):
			return gateAcross(n, d)
		}
		return attachable(n)
	})}
}

func fixPane(r Reader, pos cube.Pos, s state.State) Result {
	return Result{State: connectSides(r, pos, s, func(n state.State, _ cube.Direction) bool {
		return isPane(n) || isWall(n) || attachable(n)
	})}
}

func fixWall(r Reader, pos cube.Pos, s state.State) Result {
	s = connectSides(r, pos, s, func(n state.State, d cube.Direction) bool {
		if isFenceGate(n) {
			return gateAcross(n, d)
		}
		return isWall(n) || attachable(n)
	})
	north, east, south, west := s.Bool("north"), s.Bool("east"), s.Bool("south"), s.Bool("west")
	straight := (north && south && !east && !west) || (!north && !south && east && west)
	return Result{State: s.WithBool("up", !straight || !r.Block(pos.Side(cube.FaceUp)).IsAir())}
}

func fixFenceGate(r Reader, pos cube.Pos, s state.State) Result {
	f, ok := facing(s)
	if !ok {
		return unchanged(s)
	}
	inWall := isWall(r.Block(pos.Side(f.RotateLeft().Face()))) || isWall(r.Block(pos.Side(f.RotateRight().Face())))
	return Result{State: s.WithBool("in_wall", inWall)}
}

func fixVine(r Reader, pos cube.Pos, s state.State) Result {
	return Result{State: s.WithBool("up", attachable(r.Block(pos.Side(cube.FaceUp))))}
}

func fixChorusPlant(r Reader, pos cube.Pos, s state.State) Result {
	for face, prop := range faceNames {
		n := r.Block(pos.Side(face))
		connected := n.Name() == "minecraft:chorus_plant" || n.Name() == "minecraft:chorus_flower"
		if face == cube.FaceDown && n.Name() == "minecraft:end_stone" {
			connected = true
		}
		s = s.WithBool(prop, connected)
	}
	return Result{State: s}
}

func fixTripwire(r Reader, pos cube.Pos, s state.State) Result {
	return Result{State: connectSides(r, pos, s, func(n state.State, d cube.Direction) bool {
		switch n.Name() {
		case "minecraft:tripwire":
			return true
		case "minecraft:tripwire_hook":
			f, ok := facing(n)
			return ok && f == d.Opposite()
		}
		return false
	})}
}
