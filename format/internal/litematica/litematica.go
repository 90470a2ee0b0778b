package litematica

import (
	"fmt"
	"io"
	"maps"
	"math/bits"

	"github.com/klauspost/compress/gzip"
	"github.com/oriumgames/nbt"
	"github.com/oriumgames/pile/schemconv/format/internal/base"
	"github.com/oriumgames/pile/schemconv/state"
)

// RegionName is the name of the single region written.
const RegionName = "Region"

type vec3i struct {
	X int32 `nbt:"x"`
	Y int32 `nbt:"y"`
	Z int32 `nbt:"z"`
}

// litematicaNBT represents the main NBT structure
type litematicaNBT struct {
	Version              int32 `nbt:"Version"`
	SubVersion           int32 `nbt:"SubVersion,omitempty"`
	MinecraftDataVersion int32 `nbt:"MinecraftDataVersion"`

	Metadata struct {
		Name          string `nbt:"Name"`
		Author        string `nbt:"Author"`
		Description   string `nbt:"Description"`
		TimeCreated   int64  `nbt:"TimeCreated"`
		TimeModified  int64  `nbt:"TimeModified"`
		RegionCount   int32  `nbt:"RegionCount"`
		TotalBlocks   int32  `nbt:"TotalBlocks"`
		TotalVolume   int32  `nbt:"TotalVolume"`
		EnclosingSize vec3i  `nbt:"EnclosingSize"`
	} `nbt:"Metadata"`

	Regions map[string]regionNBT `nbt:"Regions"`
}

type paletteEntry struct {
	Name       string         `nbt:"Name"`
	Properties map[string]any `nbt:"Properties,omitempty"`
}

// stringProperties returns the properties of a state as string tags.
func stringProperties(s state.State) map[string]any {
	props := s.Properties()
	if len(props) == 0 {
		return nil
	}
	m := make(map[string]any, len(props))
	for k, v := range props {
		m[k] = v
	}
	return m
}

type regionNBT struct {
	Position          vec3i            `nbt:"Position"`
	Size              vec3i            `nbt:"Size"`
	BlockStatePalette []paletteEntry   `nbt:"BlockStatePalette"`
	BlockStates       []int64          `nbt:"BlockStates,array"`
	TileEntities      []map[string]any `nbt:"TileEntities"`
	Entities          []map[string]any `nbt:"Entities"`
	PendingBlockTicks []map[string]any `nbt:"PendingBlockTicks"`
	PendingFluidTicks []map[string]any `nbt:"PendingFluidTicks"`
}

// Write writes a schematic as Litematica (single region).
func Write(w io.Writer, schem base.Schematic) error {
	width, height, length := schem.Dimensions()
	offsetX, offsetY, offsetZ := schem.Offset()

	// Build palette
	palette := base.NewPaletteWithAir()
	blockIndices := make([]int, width*height*length)
	totalBlocks := 0

	for y := range height {
		for z := range length {
			for x := range width {
				idx := x + z*width + y*width*length
				blockIndices[idx] = palette.Add(schem.Block(x, y, z))
				if blockIndices[idx] != 0 {
					totalBlocks++
				}
			}
		}
	}

	// Pack blocks using tight packing
	bitsPerEntry := max(bits.Len(uint(palette.Size()-1)), 2)

	region := regionNBT{
		Position:          vec3i{X: int32(offsetX), Y: int32(offsetY), Z: int32(offsetZ)},
		Size:              vec3i{X: int32(width), Y: int32(height), Z: int32(length)},
		BlockStates:       base.PackLongArrayTight(blockIndices, bitsPerEntry),
		BlockStatePalette: make([]paletteEntry, palette.Size()),
		TileEntities:      []map[string]any{},
		Entities:          []map[string]any{},
		PendingBlockTicks: []map[string]any{},
		PendingFluidTicks: []map[string]any{},
	}
	for i, block := range palette.Blocks() {
		region.BlockStatePalette[i] = paletteEntry{Name: block.Name(), Properties: stringProperties(block)}
	}

	// Encode tile entities
	for y := range height {
		for z := range length {
			for x := range width {
				be := schem.BlockEntity(x, y, z)
				if be == nil {
					continue
				}

				teData := make(map[string]any, len(be.Data)+4)
				maps.Copy(teData, be.Data)
				teData["x"] = int32(x)
				teData["y"] = int32(y)
				teData["z"] = int32(z)
				teData["id"] = be.ID
				region.TileEntities = append(region.TileEntities, teData)
			}
		}
	}

	// Encode entities
	for _, ent := range schem.Entities() {
		entData := make(map[string]any, len(ent.Data)+4)
		maps.Copy(entData, ent.Data)
		entData["Pos"] = []float64{ent.Pos.X(), ent.Pos.Y(), ent.Pos.Z()}
		entData["Rotation"] = []float32{ent.Rotation.X(), ent.Rotation.Y()}
		entData["Motion"] = []float64{ent.Motion.X(), ent.Motion.Y(), ent.Motion.Z()}
		entData["id"] = ent.ID
		region.Entities = append(region.Entities, entData)
	}

	// Build main structure
	meta := schem.Metadata()
	data := litematicaNBT{
		Version:              6,
		MinecraftDataVersion: int32(schem.DataVersion()),
		Regions:              map[string]regionNBT{RegionName: region},
	}

	if name, ok := meta["Name"].(string); ok {
		data.Metadata.Name = name
	}
	if author, ok := meta["Author"].(string); ok {
		data.Metadata.Author = author
	}
	if desc, ok := meta["Description"].(string); ok {
		data.Metadata.Description = desc
	}
	if timeCreated, ok := meta["TimeCreated"].(int64); ok {
		data.Metadata.TimeCreated = timeCreated
	}
	if timeModified, ok := meta["TimeModified"].(int64); ok {
		data.Metadata.TimeModified = timeModified
	}

	data.Metadata.RegionCount = 1
	data.Metadata.TotalBlocks = int32(totalBlocks)
	data.Metadata.TotalVolume = int32(width * height * length)
	data.Metadata.EnclosingSize = vec3i{X: int32(width), Y: int32(height), Z: int32(length)}

	gz := gzip.NewWriter(w)
	if err := nbt.NewEncoderWithEncoding(gz, nbt.BigEndian).Encode(data); err != nil {
		gz.Close()
		return fmt.Errorf("encode nbt: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("close gzip: %w", err)
	}
	return nil
}
