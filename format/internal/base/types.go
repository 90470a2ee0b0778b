package base

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oriumgames/pile/schemconv/state"
)

// BlockEntity represents a block entity (tile entity).
type BlockEntity struct {
	ID      string         // e.g., "minecraft:chest"
	X, Y, Z int            // Position relative to schematic origin
	Data    map[string]any // NBT data (excluding position and id)
}

// Clone creates a deep copy of the BlockEntity.
func (be *BlockEntity) Clone() *BlockEntity {
	if be == nil {
		return nil
	}
	return &BlockEntity{
		ID:   be.ID,
		X:    be.X,
		Y:    be.Y,
		Z:    be.Z,
		Data: DeepCopy(be.Data).(map[string]any),
	}
}

// Entity represents a movable entity.
type Entity struct {
	ID       string         // e.g., "minecraft:armor_stand"
	Pos      mgl64.Vec3     // Position relative to schematic origin
	Rotation mgl32.Vec2     // Rotation (yaw, pitch) in degrees
	Motion   mgl64.Vec3     // Velocity
	Data     map[string]any // NBT data (excluding id, Pos, Rotation and Motion)
}

// Clone creates a deep copy of the Entity.
func (e *Entity) Clone() *Entity {
	if e == nil {
		return nil
	}
	return &Entity{
		ID:       e.ID,
		Pos:      e.Pos,
		Rotation: e.Rotation,
		Motion:   e.Motion,
		Data:     DeepCopy(e.Data).(map[string]any),
	}
}

// DeepCopy performs a deep copy of a decoded NBT value.
func DeepCopy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		if val == nil {
			return map[string]any(nil)
		}
		c := make(map[string]any, len(val))
		for k, v := range val {
			c[k] = DeepCopy(v)
		}
		return c
	case []any:
		c := make([]any, len(val))
		for i, v := range val {
			c[i] = DeepCopy(v)
		}
		return c
	case []byte:
		b := make([]byte, len(val))
		copy(b, val)
		return b
	case []int32:
		b := make([]int32, len(val))
		copy(b, val)
		return b
	case []int64:
		b := make([]int64, len(val))
		copy(b, val)
		return b
	default:
		return v
	}
}

// Schematic is a converted volume of named block states that can be
// written to any of the named-state formats.
type Schematic interface {
	// Dimensions returns the dimensions of the schematic in blocks (width, height, length).
	Dimensions() (width, height, length int)

	// Offset returns the origin offset of the schematic.
	Offset() (x, y, z int)

	// Block returns the block state at the given position.
	// Returns state.Air if the position is out of bounds.
	Block(x, y, z int) state.State

	// BlockEntity returns the block entity at the given position.
	// Returns nil if no block entity exists at that position.
	BlockEntity(x, y, z int) *BlockEntity

	// Entities returns all entities in the schematic.
	Entities() []*Entity

	// Metadata returns format-specific metadata.
	Metadata() map[string]any

	// DataVersion returns the Minecraft data version of the block states.
	DataVersion() int
}
