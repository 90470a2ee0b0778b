package sponge

import (
	"fmt"
	"io"
	"maps"

	"github.com/klauspost/compress/gzip"
	"github.com/oriumgames/nbt"
	"github.com/oriumgames/pile/schemconv/format/internal/base"
)

// v3NBT is the NBT structure for Sponge Schematic Version 3
type v3NBT struct {
	Version     int32 `nbt:"Version"`
	DataVersion int32 `nbt:"DataVersion"`

	Metadata struct {
		Name        string `nbt:"Name,omitempty"`
		Author      string `nbt:"Author,omitempty"`
		Date        int64  `nbt:"Date,omitempty"`
		Description string `nbt:"Description,omitempty"`
	} `nbt:"Metadata"`

	Width  int16 `nbt:"Width"`
	Height int16 `nbt:"Height"`
	Length int16 `nbt:"Length"`

	Offset []int32 `nbt:"Offset,array,omitempty"`

	Blocks struct {
		Palette       map[string]int32 `nbt:"Palette"`
		Data          []byte           `nbt:"Data,array"`
		BlockEntities []map[string]any `nbt:"BlockEntities,omitempty"`
	} `nbt:"Blocks"`

	Entities []map[string]any `nbt:"Entities,omitempty"`
}

// WriteV3 writes a schematic as Sponge Schematic v3.
func WriteV3(w io.Writer, s base.Schematic) error {
	width, height, length := s.Dimensions()
	offsetX, offsetY, offsetZ := s.Offset()

	// Build palette
	palette := base.NewPaletteWithAir()
	blockIndices := make([]int, width*height*length)

	for y := range height {
		for z := range length {
			for x := range width {
				idx := x + z*width + y*width*length
				blockIndices[idx] = palette.Add(s.Block(x, y, z))
			}
		}
	}

	// Build NBT structure
	data := v3NBT{
		Version:     3,
		DataVersion: int32(s.DataVersion()),
		Width:       int16(width),
		Height:      int16(height),
		Length:      int16(length),
		Offset:      []int32{int32(offsetX), int32(offsetY), int32(offsetZ)},
	}

	// Metadata
	meta := s.Metadata()
	if name, ok := meta["Name"].(string); ok {
		data.Metadata.Name = name
	}
	if author, ok := meta["Author"].(string); ok {
		data.Metadata.Author = author
	}
	if date, ok := meta["Date"].(int64); ok {
		data.Metadata.Date = date
	}
	if desc, ok := meta["Description"].(string); ok {
		data.Metadata.Description = desc
	}

	// Encode palette
	data.Blocks.Palette = make(map[string]int32, palette.Size())
	for i, block := range palette.Blocks() {
		data.Blocks.Palette[block.String()] = int32(i)
	}

	// Encode block data
	data.Blocks.Data = base.EncodeVarIntArray(blockIndices)

	// Encode block entities
	for y := range height {
		for z := range length {
			for x := range width {
				be := s.BlockEntity(x, y, z)
				if be == nil {
					continue
				}

				beData := map[string]any{
					"Pos": []int32{int32(x), int32(y), int32(z)},
					"Id":  be.ID,
				}
				if len(be.Data) > 0 {
					beData["Data"] = maps.Clone(be.Data)
				}
				data.Blocks.BlockEntities = append(data.Blocks.BlockEntities, beData)
			}
		}
	}

	// Encode entities
	for _, ent := range s.Entities() {
		entData := map[string]any{
			"Pos": []float64{ent.Pos.X(), ent.Pos.Y(), ent.Pos.Z()},
			"Id":  ent.ID,
		}
		extra := maps.Clone(ent.Data)
		if extra == nil {
			extra = make(map[string]any)
		}
		extra["Rotation"] = []float32{ent.Rotation.X(), ent.Rotation.Y()}
		extra["Motion"] = []float64{ent.Motion.X(), ent.Motion.Y(), ent.Motion.Z()}
		entData["Data"] = extra
		data.Entities = append(data.Entities, entData)
	}

	// Wrap in root tag
	root := struct {
		Schematic v3NBT `nbt:"Schematic"`
	}{Schematic: data}

	gz := gzip.NewWriter(w)
	if err := nbt.NewEncoderWithEncoding(gz, nbt.BigEndian).Encode(root); err != nil {
		gz.Close()
		return fmt.Errorf("encode nbt: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("close gzip: %w", err)
	}
	return nil
}
