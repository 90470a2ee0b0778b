package schemconv

import (
	"maps"
	_ "unsafe"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oriumgames/crocon"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// javaVersion is the Java Edition version of the converted block states.
const javaVersion = "1.13.2"

// Structure wraps a converted Schematic and implements world.Structure.
// It can be placed in a Dragonfly world using world.BuildStructure.
type Structure struct {
	schematic *Schematic
	converter *crocon.Converter
}

// NewStructure creates a new Structure from a converted Schematic.
func NewStructure(s *Schematic) (*Structure, error) {
	c, err := crocon.NewConverter()
	if err != nil {
		return nil, err
	}
	return &Structure{schematic: s, converter: c}, nil
}

// Structure returns s as a world.Structure placing Bedrock blocks.
func (s *Schematic) Structure() (*Structure, error) {
	return NewStructure(s)
}

// Dimensions implements world.Structure.
func (s *Structure) Dimensions() [3]int {
	w, h, l := s.schematic.Dimensions()
	return [3]int{w, h, l}
}

func (s *Structure) request() crocon.ConversionRequest {
	return crocon.ConversionRequest{
		FromVersion: javaVersion,
		ToVersion:   protocol.CurrentVersion,
		FromEdition: crocon.JavaEdition,
		ToEdition:   crocon.BedrockEdition,
	}
}

// At implements world.Structure.
// Java states are converted to Bedrock blocks with crocon. Blocks that fail to
// convert are placed as air.
func (s *Structure) At(x, y, z int, _ func(x, y, z int) world.Block) (world.Block, world.Liquid) {
	st := s.schematic.Block(x, y, z)
	if st.IsAir() {
		return block.Air{}, nil
	}

	b, err := s.converter.ConvertBlock(crocon.BlockRequest{
		ConversionRequest: s.request(),
		Block: crocon.Block{
			ID:     st.Name(),
			States: st.NBTProperties(),
		},
	})
	if err != nil {
		return block.Air{}, nil
	}

	// Filter invalid properties
	validProps := blockProperties[b.ID]
	for k := range b.States {
		if _, ok := validProps[k]; !ok {
			delete(b.States, k)
		}
	}

	ret, ok := world.BlockByName(b.ID, b.States)
	if !ok {
		return block.Air{}, nil
	}

	if nbter, ok := ret.(world.NBTer); ok {
		tag := map[string]any{}
		if ent := s.schematic.BlockEntity(x, y, z); ent != nil {
			from := crocon.BlockEntity(maps.Clone(ent.Data))
			from["id"] = ent.ID

			be, err := s.converter.ConvertBlockEntity(crocon.BlockEntityRequest{
				ConversionRequest: s.request(),
				BlockEntity:       from,
			})
			if err != nil {
				return block.Air{}, nil
			}
			m, ok := any(be).(*map[string]any)
			if !ok || m == nil {
				return block.Air{}, nil
			}
			if tag, ok = (*m)["tag"].(map[string]any); !ok {
				return block.Air{}, nil
			}
		}
		ret = nbter.DecodeNBT(tag).(world.Block)
	}

	var liquid world.Liquid
	if st.Bool("waterlogged") {
		liquid = block.Water{}
	}
	return ret, liquid
}

// Schematic returns the underlying Schematic.
func (s *Structure) Schematic() *Schematic {
	return s.schematic
}

// Offset returns the structure's offset.
func (s *Structure) Offset() (x, y, z int) {
	return s.schematic.Offset()
}

// blockProperties is linked from dragonfly to validate block properties.
//
//go:linkname blockProperties github.com/df-mc/dragonfly/server/world.blockProperties
var blockProperties map[string]map[string]any
