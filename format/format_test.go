package format

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/oriumgames/nbt"
	"github.com/stretchr/testify/require"
)

func gzipNBT(t *testing.T, v any) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	require.NoError(t, nbt.NewEncoderWithEncoding(gz, nbt.BigEndian).Encode(v))
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestLegacyRoundTrip(t *testing.T) {
	l := &Legacy{
		Width: 2, Height: 1, Length: 1,
		Blocks: []uint16{53, 2},
		Data:   []byte{1, 0},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteLegacy(&buf, "mcedit", l))

	id, err := Detect(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, "mcedit", id)

	got, err := ReadLegacy(&buf)
	require.NoError(t, err)
	require.Equal(t, l.Blocks, got.Blocks)
	require.Equal(t, l.Data, got.Data)
}

func TestDetect(t *testing.T) {
	_, err := Detect([]byte{1})
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Detect(gzipNBT(t, map[string]any{"Version": int32(2), "Palette": map[string]any{}}))
	require.ErrorIs(t, err, ErrNotLegacy)

	_, err = Detect(gzipNBT(t, map[string]any{"Schematic": map[string]any{"Version": int32(3)}}))
	require.ErrorIs(t, err, ErrNotLegacy)

	_, err = Detect(gzipNBT(t, map[string]any{"Version": int32(6), "Regions": map[string]any{}}))
	require.ErrorIs(t, err, ErrNotLegacy)

	_, err = Detect(gzipNBT(t, map[string]any{"size": []int32{1, 1, 1}}))
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = ReadLegacy(bytes.NewReader([]byte("plain text")))
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestUnsupportedFormats(t *testing.T) {
	_, err := ReadLegacyFormat(bytes.NewReader(nil), "axiom")
	require.ErrorContains(t, err, "unsupported format")
	require.ErrorContains(t, Write(&bytes.Buffer{}, "mcedit", nil), "unsupported format")
	require.ErrorContains(t, WriteLegacy(&bytes.Buffer{}, "sponge_v3", &Legacy{}), "unsupported format")
}

func TestFormats(t *testing.T) {
	require.Equal(t, []string{"litematica", "sponge_v3"}, Formats())
}
