package format

import "github.com/oriumgames/pile/schemconv/format/internal/base"

// Legacy is a schematic storing numeric block ids and metadata.
type Legacy = base.Legacy

// BlockEntity represents a block entity (tile entity).
type BlockEntity = base.BlockEntity

// Entity represents a movable entity.
type Entity = base.Entity

// Schematic is a volume of named block states that can be written by any of
// the registered writers.
type Schematic = base.Schematic

// DeepCopy performs a deep copy of a decoded NBT value.
func DeepCopy(v any) any {
	return base.DeepCopy(v)
}
