package mcedit

import (
	"fmt"
	"io"
	"maps"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/klauspost/compress/gzip"
	"github.com/oriumgames/nbt"
	"github.com/oriumgames/pile/schemconv/format/internal/base"
)

type mceditNBT struct {
	Width        int16            `nbt:"Width"`
	Height       int16            `nbt:"Height"`
	Length       int16            `nbt:"Length"`
	Materials    string           `nbt:"Materials"`
	Blocks       []byte           `nbt:"Blocks,array"`
	Data         []byte           `nbt:"Data,array"`
	AddBlocks    []byte           `nbt:"AddBlocks,array,omitempty"`
	Add          []byte           `nbt:"Add,array,omitempty"`
	Entities     []map[string]any `nbt:"Entities"`
	TileEntities []map[string]any `nbt:"TileEntities"`
	WEOffsetX    int32            `nbt:"WEOffsetX"`
	WEOffsetY    int32            `nbt:"WEOffsetY"`
	WEOffsetZ    int32            `nbt:"WEOffsetZ"`

	// SchematicaMapping maps block names to the ids used in Blocks
	// (Schematica). BlockIDs maps ids to names (MCEdit-Unified).
	SchematicaMapping map[string]any `nbt:"SchematicaMapping,omitempty"`
	BlockIDs          map[string]any `nbt:"BlockIDs,omitempty"`

	Extra map[string]any `nbt:"*"`
}

// Read reads an MCEdit/Schematica legacy schematic.
func Read(r io.Reader) (*base.Legacy, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("gzip decompress: %w", err)
	}
	defer gz.Close()

	var data mceditNBT
	if err := nbt.NewDecoderWithEncoding(gz, nbt.BigEndian).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode nbt: %w", err)
	}

	l := &base.Legacy{
		Width:     int(data.Width),
		Height:    int(data.Height),
		Length:    int(data.Length),
		Materials: data.Materials,
		Offset:    [3]int{int(data.WEOffsetX), int(data.WEOffsetY), int(data.WEOffsetZ)},
		Metadata:  data.Extra,
	}
	count := l.Volume()
	if l.Width <= 0 || l.Height <= 0 || l.Length <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%dx%d", l.Width, l.Height, l.Length)
	}
	if len(data.Blocks) != count || len(data.Data) != count {
		return nil, fmt.Errorf("block data mismatch: expected %d bytes, got %d blocks and %d data", count, len(data.Blocks), len(data.Data))
	}

	l.Blocks = make([]uint16, count)
	l.Data = make([]byte, count)
	for i := range count {
		id := uint16(data.Blocks[i])
		switch {
		case len(data.AddBlocks) > i>>1:
			// Two voxels per byte, the even one in the high nibble.
			add := data.AddBlocks[i>>1]
			if i&1 == 0 {
				add >>= 4
			}
			id |= uint16(add&0xF) << 8
		case len(data.Add) > i:
			id |= uint16(data.Add[i]&0xF) << 8
		}
		l.Blocks[i] = id
		l.Data[i] = data.Data[i] & 0xF
	}

	if l.Palette, err = readPalette(data); err != nil {
		return nil, err
	}

	for _, te := range data.TileEntities {
		be := &base.BlockEntity{Data: make(map[string]any)}
		be.X, _ = intTag(te["x"])
		be.Y, _ = intTag(te["y"])
		be.Z, _ = intTag(te["z"])
		if id, ok := te["id"].(string); ok {
			be.ID = id
		}
		for k, v := range te {
			switch k {
			case "x", "y", "z", "id":
				continue
			default:
				be.Data[k] = v
			}
		}
		l.BlockEntities = append(l.BlockEntities, be)
	}

	for _, e := range data.Entities {
		ent := &base.Entity{Data: make(map[string]any)}
		if id, ok := e["id"].(string); ok {
			ent.ID = id
		}
		ent.Pos = vec3(e["Pos"])
		ent.Motion = vec3(e["Motion"])
		ent.Rotation = vec2(e["Rotation"])
		for k, v := range e {
			if k == "id" || k == "Pos" || k == "Rotation" || k == "Motion" {
				continue
			}
			ent.Data[k] = v
		}
		l.Entities = append(l.Entities, ent)
	}

	return l, nil
}

func readPalette(data mceditNBT) (map[uint16]string, error) {
	switch {
	case len(data.SchematicaMapping) > 0:
		palette := make(map[uint16]string, len(data.SchematicaMapping))
		for name, v := range data.SchematicaMapping {
			id, ok := intTag(v)
			if !ok || id < 0 || id > 4095 {
				return nil, fmt.Errorf("invalid SchematicaMapping entry %q", name)
			}
			palette[uint16(id)] = name
		}
		return palette, nil
	case len(data.BlockIDs) > 0:
		palette := make(map[uint16]string, len(data.BlockIDs))
		for k, v := range data.BlockIDs {
			id, err := strconv.ParseUint(k, 10, 16)
			name, ok := v.(string)
			if err != nil || id > 4095 || !ok {
				return nil, fmt.Errorf("invalid BlockIDs entry %q", k)
			}
			palette[uint16(id)] = name
		}
		return palette, nil
	}
	return nil, nil
}

// Write writes a legacy schematic in MCEdit format. A palette is written as
// a SchematicaMapping.
func Write(w io.Writer, l *base.Legacy) error {
	if err := l.Validate(); err != nil {
		return err
	}
	count := l.Volume()
	nbtData := mceditNBT{
		Width:     int16(l.Width),
		Height:    int16(l.Height),
		Length:    int16(l.Length),
		Materials: l.Materials,
		Blocks:    make([]byte, count),
		Data:      make([]byte, count),
		WEOffsetX: int32(l.Offset[0]),
		WEOffsetY: int32(l.Offset[1]),
		WEOffsetZ: int32(l.Offset[2]),
	}
	if nbtData.Materials == "" {
		nbtData.Materials = "Alpha"
	}

	var addBlocks []byte
	for i, id := range l.Blocks {
		nbtData.Blocks[i] = byte(id)
		nbtData.Data[i] = l.Data[i] & 0xF
		if id > 0xFF {
			if addBlocks == nil {
				addBlocks = make([]byte, (count+1)>>1)
			}
			high := byte(id>>8) & 0xF
			if i&1 == 0 {
				high <<= 4
			}
			addBlocks[i>>1] |= high
		}
	}
	nbtData.AddBlocks = addBlocks

	if len(l.Palette) > 0 {
		nbtData.SchematicaMapping = make(map[string]any, len(l.Palette))
		for id, name := range l.Palette {
			nbtData.SchematicaMapping[name] = int16(id)
		}
	}

	// Block Entities
	for _, be := range l.BlockEntities {
		tag := make(map[string]any, len(be.Data)+4)
		maps.Copy(tag, be.Data)
		tag["x"] = int32(be.X)
		tag["y"] = int32(be.Y)
		tag["z"] = int32(be.Z)
		tag["id"] = be.ID
		nbtData.TileEntities = append(nbtData.TileEntities, tag)
	}

	// Entities
	for _, ent := range l.Entities {
		tag := make(map[string]any, len(ent.Data)+4)
		maps.Copy(tag, ent.Data)
		tag["id"] = ent.ID
		tag["Pos"] = []float64{ent.Pos.X(), ent.Pos.Y(), ent.Pos.Z()}
		tag["Rotation"] = []float32{ent.Rotation.X(), ent.Rotation.Y()}
		tag["Motion"] = []float64{ent.Motion.X(), ent.Motion.Y(), ent.Motion.Z()}
		nbtData.Entities = append(nbtData.Entities, tag)
	}

	gz := gzip.NewWriter(w)
	if err := nbt.NewEncoderWithEncoding(gz, nbt.BigEndian).Encode(nbtData); err != nil {
		gz.Close()
		return fmt.Errorf("encode nbt: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("close gzip: %w", err)
	}
	return nil
}

func intTag(v any) (int, bool) {
	switch v := v.(type) {
	case uint8:
		return int(v), true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	}
	return 0, false
}

func vec3(v any) mgl64.Vec3 {
	var out mgl64.Vec3
	switch l := v.(type) {
	case []any:
		for i := 0; i < len(l) && i < 3; i++ {
			out[i], _ = l[i].(float64)
		}
	case []float64:
		copy(out[:], l)
	}
	return out
}

func vec2(v any) mgl32.Vec2 {
	var out mgl32.Vec2
	switch l := v.(type) {
	case []any:
		for i := 0; i < len(l) && i < 2; i++ {
			out[i], _ = l[i].(float32)
		}
	case []float32:
		copy(out[:], l)
	}
	return out
}
