// Package main is the segment command: it partitions an image into regions
// and writes a colour-coded rendering of the result.
package main

import (
	"fmt"
	"image"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/TrevorS/graphseg"
	"github.com/TrevorS/graphseg/internal/config"
	"github.com/TrevorS/graphseg/internal/imageio"
	"github.com/TrevorS/graphseg/internal/logging"
	"github.com/TrevorS/graphseg/internal/render"
)

const (
	// Flags.
	flagConfig   = "config"
	flagWorkers  = "workers"
	flagSeed     = "seed"
	flagPalette  = "palette"
	flagMetric   = "metric"
	flagMaxDim   = "max-dim"
	flagLabels   = "labels"
	flagLogLevel = "log-level"
	flagJSONLog  = "json-log"

	usageText = "segment [options] sigma k min input output"
)

func main() {
	logging.Configure()
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "segment",
		Usage:     "graph-based image segmentation",
		UsageText: usageText,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagConfig,
				Usage: "JSON settings file; flags override its values",
			},
			&cli.IntFlag{
				Name:  flagWorkers,
				Usage: "goroutines for smoothing and graph construction (default: number of CPUs)",
			},
			&cli.Int64Flag{
				Name:  flagSeed,
				Usage: "seed for the random and hue palettes (default: 1)",
			},
			&cli.StringFlag{
				Name:  flagPalette,
				Usage: "region colouring: random, hue or mean",
			},
			&cli.StringFlag{
				Name:  flagMetric,
				Usage: "pixel dissimilarity: euclidean, manhattan or chebyshev",
			},
			&cli.IntFlag{
				Name:  flagMaxDim,
				Usage: "downscale the input so neither side exceeds this many pixels",
			},
			&cli.StringFlag{
				Name:  flagLabels,
				Usage: "also write the per-pixel region labels as CSV to this file",
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Usage: "debug, info, warn or error",
			},
			&cli.BoolFlag{
				Name:  flagJSONLog,
				Usage: "log JSON events instead of console lines",
			},
		},
		Action: run,
	}
}

// params holds the positional arguments.
type params struct {
	sigma   float64
	k       float64
	minSize int
	input   string
	output  string
}

func parseParams(args cli.Args) (params, error) {
	if args.Len() != 5 {
		return params{}, errors.Errorf("usage: %s", usageText)
	}

	var p params
	var err error
	if p.sigma, err = strconv.ParseFloat(args.Get(0), 64); err != nil {
		return params{}, errors.Wrapf(err, "invalid sigma %q", args.Get(0))
	}
	if p.k, err = strconv.ParseFloat(args.Get(1), 64); err != nil {
		return params{}, errors.Wrapf(err, "invalid k %q", args.Get(1))
	}
	if p.minSize, err = strconv.Atoi(args.Get(2)); err != nil {
		return params{}, errors.Wrapf(err, "invalid min %q", args.Get(2))
	}
	p.input = args.Get(3)
	p.output = args.Get(4)
	return p, nil
}

func loadConfig(c *cli.Context) (config.Config, error) {
	var cfg config.Config
	if path := c.String(flagConfig); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}
	cfg.Resolve(config.Flags{
		Workers:  c.Int(flagWorkers),
		Seed:     c.Int64(flagSeed),
		Palette:  c.String(flagPalette),
		Metric:   c.String(flagMetric),
		MaxDim:   c.Int(flagMaxDim),
		Labels:   c.String(flagLabels),
		LogLevel: c.String(flagLogLevel),
		JSONLog:  c.Bool(flagJSONLog),
	})
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config, w io.Writer) (zerolog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}
	if cfg.JSONLog {
		return logging.NewJSON(w, level, "segment"), nil
	}
	return logging.New(w, level, "segment"), nil
}

func run(c *cli.Context) error {
	p, err := parseParams(c.Args())
	if err != nil {
		return err
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, c.App.ErrWriter)
	if err != nil {
		return err
	}
	metric, err := cfg.ColorMetric()
	if err != nil {
		return err
	}
	out := c.App.Writer

	fmt.Fprintln(out, "loading input image.")
	src, format, err := imageio.Load(p.input)
	if err != nil {
		return err
	}
	orig := src.Bounds().Size()
	src = imageio.Fit(src, cfg.MaxDim)
	logger.Debug().
		Str("format", format).
		Int("width", src.Bounds().Dx()).
		Int("height", src.Bounds().Dy()).
		Bool("resized", src.Bounds().Size() != orig).
		Msg("loaded input")

	segCfg := graphseg.DefaultConfig()
	segCfg.Sigma = p.sigma
	segCfg.K = p.k
	segCfg.MinSize = p.minSize
	segCfg.Metric = metric
	segCfg.Workers = cfg.Workers
	segCfg.Logger = &logger

	fmt.Fprintln(out, "processing")
	res, err := graphseg.SegmentImage(src, segCfg)
	if err != nil {
		return errors.Wrap(err, "segment")
	}
	fmt.Fprintf(out, "got %d components\n", res.NumComponents)

	palette, err := newPalette(cfg, src, res)
	if err != nil {
		return err
	}
	if err := imageio.Save(p.output, render.Colorize(res, palette)); err != nil {
		return err
	}
	if cfg.Labels != "" {
		if err := saveLabels(cfg.Labels, res); err != nil {
			return err
		}
	}
	logger.Info().
		Str("output", p.output).
		Int("components", res.NumComponents).
		Int("post_merges", res.PostMerges).
		Msg("wrote segmentation")
	return nil
}

func newPalette(cfg config.Config, src image.Image, res *graphseg.Result) (render.Palette, error) {
	switch cfg.Palette {
	case config.PaletteHue:
		return render.HuePalette(rand.New(rand.NewSource(cfg.Seed))), nil
	case config.PaletteMean:
		img, err := graphseg.FromImage(src)
		if err != nil {
			return nil, err
		}
		stats, err := graphseg.ComputeRegionStats(img, res.Labels)
		if err != nil {
			return nil, errors.Wrap(err, "region statistics")
		}
		return render.MeanPalette(stats), nil
	}
	return render.RandomPalette(rand.New(rand.NewSource(cfg.Seed))), nil
}

func saveLabels(path string, res *graphseg.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	return imageio.WriteLabels(f, res.DenseLabels(), res.Width)
}
