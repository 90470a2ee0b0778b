// Command schemconv converts legacy MCEdit and Schematica schematics to
// named block state formats.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/oriumgames/pile/schemconv"
	"github.com/oriumgames/pile/schemconv/fixer"
	"github.com/oriumgames/pile/schemconv/legacy"
	"github.com/oriumgames/pile/schemconv/state"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "schemconv",
		Usage: "convert legacy numeric-id schematics to named block states",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config `FILE`"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log debug output"},
		},
		Commands: []*cli.Command{
			{
				Name:      "convert",
				Usage:     "convert schematics",
				ArgsUsage: "FILE...",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "output `FORMAT` (see formats)"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output `DIR`, defaults to the input directory"},
					&cli.IntFlag{Name: "jobs", Aliases: []string{"j"}, Usage: "number of files converted at once"},
					&cli.BoolFlag{Name: "no-repair", Usage: "skip the neighbour repair pass"},
					&cli.StringFlag{Name: "overrides", Usage: "YAML legacy id overrides `FILE`"},
				},
				Action: convertAction,
			},
			{
				Name:      "inspect",
				Usage:     "print the palette and the blocks needing repair",
				ArgsUsage: "FILE...",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "overrides", Usage: "YAML legacy id overrides `FILE`"},
				},
				Action: inspectAction,
			},
			{
				Name:  "formats",
				Usage: "list output formats",
				Action: func(ctx *cli.Context) error {
					for _, id := range schemconv.Formats() {
						fmt.Fprintln(ctx.App.Writer, id)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

// loadConfig reads the config file, if any, and applies the flags set on the
// command line.
func loadConfig(ctx *cli.Context) (Config, error) {
	c := DefaultConfig()
	if path := ctx.String("config"); path != "" {
		var err error
		if c, err = LoadConfig(path); err != nil {
			return c, errors.Wrap(err, "load config")
		}
	}
	if ctx.IsSet("format") {
		c.Format = ctx.String("format")
	}
	if ctx.IsSet("out") {
		c.OutDir = ctx.String("out")
	}
	if ctx.IsSet("jobs") {
		c.Jobs = ctx.Int("jobs")
	}
	if ctx.IsSet("no-repair") {
		c.NoRepair = ctx.Bool("no-repair")
	}
	if ctx.IsSet("overrides") {
		c.Overrides = ctx.String("overrides")
	}
	if ctx.IsSet("verbose") {
		c.Verbose = ctx.Bool("verbose")
	}
	if c.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return c, c.Validate()
}

func loadTable(c Config) (*legacy.Table, error) {
	if c.Overrides == "" {
		return legacy.Default(), nil
	}
	o, err := legacy.LoadOverrides(c.Overrides)
	if err != nil {
		return nil, err
	}
	return legacy.Default().WithOverrides(o)
}

func newConverter(c Config, log *logrus.Entry) (*schemconv.Converter, error) {
	t, err := loadTable(c)
	if err != nil {
		return nil, errors.Wrap(err, "load overrides")
	}
	opts := []schemconv.Option{
		schemconv.WithTable(t),
		schemconv.WithReporter(logReporter{log: log}),
	}
	if c.NoRepair {
		opts = append(opts, schemconv.WithoutRepair())
	}
	return schemconv.NewConverter(opts...), nil
}

func outputPath(c Config, in string) string {
	dir := c.OutDir
	if dir == "" {
		dir = filepath.Dir(in)
	}
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	return filepath.Join(dir, base+c.Extension())
}

func convertAction(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return cli.Exit("no input files", 2)
	}
	c, err := loadConfig(ctx)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if c.OutDir != "" {
		if err := os.MkdirAll(c.OutDir, 0o755); err != nil {
			return cli.Exit(errors.Wrap(err, "create output directory").Error(), 1)
		}
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed []string
		sem    = make(chan struct{}, c.Jobs)
	)
	for _, in := range ctx.Args().Slice() {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer func() {
				<-sem
				wg.Done()
			}()
			log := logrus.WithField("file", in)
			if err := convertFile(c, in, log); err != nil {
				log.WithError(err).Error("conversion failed")
				mu.Lock()
				failed = append(failed, in)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(failed) > 0 {
		slices.Sort(failed)
		return cli.Exit(fmt.Sprintf("%d file(s) failed: %s", len(failed), strings.Join(failed, ", ")), 1)
	}
	return nil
}

func convertFile(c Config, in string, log *logrus.Entry) error {
	conv, err := newConverter(c, log)
	if err != nil {
		return err
	}
	s, err := conv.ConvertFile(in)
	if err != nil {
		return errors.Wrapf(err, "convert %s", in)
	}
	out := outputPath(c, in)
	if err := schemconv.WriteFile(out, c.Format, s); err != nil {
		return errors.Wrapf(err, "write %s", out)
	}

	stats := s.RepairStats()
	w, h, l := s.Dimensions()
	log.WithFields(logrus.Fields{
		"out":        out,
		"size":       fmt.Sprintf("%dx%dx%d", w, h, l),
		"repaired":   stats.Repaired,
		"visited":    stats.Visited,
		"tile_edits": stats.BlockEntityChanges,
	}).Info("converted")
	return nil
}

func inspectAction(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return cli.Exit("no input files", 2)
	}
	c, err := loadConfig(ctx)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	for _, in := range ctx.Args().Slice() {
		log := logrus.WithField("file", in)
		conv, err := newConverter(c, log)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		if err := inspect(ctx.App.Writer, conv, in, c.Verbose); err != nil {
			return cli.Exit(errors.Wrapf(err, "inspect %s", in).Error(), 1)
		}
	}
	return nil
}

func inspect(w io.Writer, conv *schemconv.Converter, in string, verbose bool) error {
	l, err := schemconv.ReadFile(in)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %dx%dx%d, %d tile entities, %d entities\n", in, l.Width, l.Height, l.Length, len(l.BlockEntities), len(l.Entities))

	var palette []state.State
	if names := l.PaletteNames(); names != nil {
		var ok []bool
		palette, ok = conv.DecodePalette(names)
		resolved := 0
		for _, r := range ok {
			if r {
				resolved++
			}
		}
		fmt.Fprintf(w, "  palette: %d names, %d resolved\n", len(names), resolved)
	} else {
		palette = conv.VanillaPalette((legacy.MaxID + 1) * 16)
		fmt.Fprintln(w, "  palette: vanilla ids")
	}

	used := make(map[legacy.IDMeta]int)
	for i := range l.Blocks {
		used[legacy.Pack(l.Blocks[i], l.Data[i])]++
	}
	var unmapped []legacy.IDMeta
	for m := range used {
		if int(m) >= len(palette) || (palette[m].IsAir() && m.ID() != 0) {
			unmapped = append(unmapped, m)
		}
	}
	slices.Sort(unmapped)
	for _, m := range unmapped {
		fmt.Fprintf(w, "  unmapped %s (%d blocks)\n", m, used[m])
	}

	present := make([]state.State, 0, len(used))
	for m := range used {
		if int(m) < len(palette) {
			present = append(present, palette[m])
		}
	}
	needsAny, f := conv.BuildFilter(present)
	if !needsAny {
		fmt.Fprintln(w, "  no blocks need repair")
		return nil
	}
	hist := f.Histogram()
	for _, fam := range fixer.Families() {
		if n := hist[fam]; n > 0 {
			fmt.Fprintf(w, "  %-14s %d states\n", fam, n)
		}
	}
	if verbose {
		for _, s := range f.States() {
			fmt.Fprintf(w, "    %s\n", s)
		}
	}
	return nil
}
