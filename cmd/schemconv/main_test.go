package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/oriumgames/pile/schemconv"
	"github.com/oriumgames/pile/schemconv/format"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func writeLegacy(t *testing.T, path string, l *format.Legacy) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, format.WriteLegacy(f, "mcedit", l))
	require.NoError(t, f.Close())
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schemconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: litematica\nout_dir: out\njobs: 3\nno_repair: true\n"), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "litematica", c.Format)
	require.Equal(t, "out", c.OutDir)
	require.Equal(t, 3, c.Jobs)
	require.True(t, c.NoRepair)
	require.NoError(t, c.Validate())
	require.Equal(t, ".litematic", c.Extension())
	require.Equal(t, filepath.Join("out", "house.litematic"), outputPath(c, filepath.Join("in", "house.schematic")))

	c.Format = "axiom"
	require.Error(t, c.Validate())
	c = DefaultConfig()
	c.Jobs = 0
	require.Error(t, c.Validate())

	require.NoError(t, os.WriteFile(path, []byte("jobs: [1"), 0o644))
	_, err = LoadConfig(path)
	require.Error(t, err)
	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "gate.schematic")
	writeLegacy(t, in, &format.Legacy{
		Width: 1, Height: 1, Length: 2,
		Blocks:  []uint16{1, 2},
		Data:    []byte{0, 0},
		Palette: map[uint16]string{1: "minecraft:stone", 2: "mymod:gizmo"},
	})

	logger, hook := test.NewNullLogger()
	c := DefaultConfig()
	require.NoError(t, convertFile(c, in, logrus.NewEntry(logger)))
	require.FileExists(t, filepath.Join(dir, "gate.schem"))

	var errs []string
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel {
			errs = append(errs, e.Message)
		}
	}
	require.Equal(t, []string{"Failed to convert block with old name 'mymod:gizmo'"}, errs)
	require.Equal(t, "converted", hook.LastEntry().Message)

	require.Error(t, convertFile(c, filepath.Join(dir, "missing.schematic"), logrus.NewEntry(logger)))
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "yard.schematic")
	// Stone, oak fence, an id without a 1.12 block.
	writeLegacy(t, in, &format.Legacy{
		Width: 3, Height: 1, Length: 1,
		Blocks: []uint16{1, 85, 300},
		Data:   []byte{0, 0, 0},
	})

	conv := schemconv.NewConverter()
	var buf bytes.Buffer
	require.NoError(t, inspect(&buf, conv, in, true))
	out := buf.String()
	require.Contains(t, out, "3x1x1")
	require.Contains(t, out, "palette: vanilla ids")
	require.Contains(t, out, "unmapped 300:0 (1 blocks)")
	require.Contains(t, out, "fence")
	require.Contains(t, out, "minecraft:oak_fence[")
}
