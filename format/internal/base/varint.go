package base

import (
	"encoding/binary"
	"fmt"
)

// maxVarIntLen is the longest encoding of a 32-bit value.
const maxVarIntLen = 5

// DecodeVarInt reads a single VarInt from data and returns the value and the
// number of bytes read.
func DecodeVarInt(data []byte) (int, int, error) {
	v, n := binary.Uvarint(data)
	switch {
	case n == 0:
		return 0, 0, fmt.Errorf("varint extends beyond data")
	case n < 0 || n > maxVarIntLen:
		return 0, 0, fmt.Errorf("varint too long")
	}
	return int(v), n, nil
}

// DecodeVarIntArray decodes count VarInts from data.
func DecodeVarIntArray(data []byte, count int) ([]int, error) {
	values := make([]int, count)
	for i := range values {
		v, n, err := DecodeVarInt(data)
		if err != nil {
			return nil, fmt.Errorf("decode varint %d: %w", i, err)
		}
		values[i] = v
		data = data[n:]
	}
	return values, nil
}

// EncodeVarIntArray encodes values as consecutive VarInts, the block data
// layout of Sponge schematics.
func EncodeVarIntArray(values []int) []byte {
	buf := make([]byte, 0, len(values))
	for _, v := range values {
		buf = binary.AppendUvarint(buf, uint64(v))
	}
	return buf
}
