package graphseg

import (
	"fmt"
	"image"
	"math"
	"runtime"

	"github.com/rs/zerolog"
)

// Config controls segmentation behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// K is the scale parameter of the merge threshold k/size. Larger values
	// produce fewer, larger regions. Must be > 0 and finite. Default: 500.
	K float64

	// MinSize is the smallest region the post-processing pass tries to
	// enforce by absorbing smaller regions into a neighbour. The pass is a
	// single sweep, so it is best-effort. 0 or 1 disables it.
	// Must be >= 0. Default: 20.
	MinSize int

	// Sigma is the standard deviation of the Gaussian used by SegmentImage
	// to smooth the input before building the graph. Segment and
	// SegmentEdges expect already-smoothed input and ignore it.
	// 0 disables smoothing. Must be >= 0. Default: 0.5.
	Sigma float64

	// Metric measures the dissimilarity between neighbouring pixels.
	// Default: EuclideanMetric.
	Metric ColorMetric

	// Workers controls the number of goroutines for the parallelizable
	// stages (smoothing, edge weights, label extraction). The merge passes
	// are always sequential. 0 means use runtime.NumCPU(). Default: 0 (auto).
	Workers int

	// RecordMerges fills Result.Merges with every join in the order it
	// happened. Default: false.
	RecordMerges bool

	// Logger receives debug output for each phase and a warning when
	// regions stay below MinSize. nil disables logging.
	Logger *zerolog.Logger
}

// Result contains the output of a segmentation.
type Result struct {
	Width  int
	Height int

	// Labels assigns each pixel (index y*Width+x) the pixel index of its
	// component's root. Two pixels share a region iff their labels match.
	Labels []int

	// NumComponents is the number of distinct regions.
	NumComponents int

	// Sizes maps each label to the number of pixels carrying it.
	Sizes map[int]int

	// NumEdges is the number of graph edges considered.
	NumEdges int

	// PostMerges is the number of joins made by the small-region pass.
	PostMerges int

	// Merges lists every join when Config.RecordMerges is set: first the
	// weight-driven joins in order, then the forced small-region joins.
	Merges []Merge
}

// DenseLabels returns Labels remapped onto 0..NumComponents-1 in order of
// first appearance (row-major).
func (r *Result) DenseLabels() []int {
	dense, _ := Relabel(r.Labels)
	return dense
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		K:       500,
		MinSize: 20,
		Sigma:   0.5,
		Metric:  EuclideanMetric{},
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if err := validateK(cfg.K); err != nil {
		return err
	}
	if cfg.MinSize < 0 {
		return fmt.Errorf("graphseg: MinSize must be >= 0, got %d", cfg.MinSize)
	}
	if math.IsNaN(cfg.Sigma) || math.IsInf(cfg.Sigma, 0) || cfg.Sigma < 0 {
		return fmt.Errorf("graphseg: Sigma must be a finite number >= 0, got %v", cfg.Sigma)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("graphseg: Workers must be >= 0, got %d", cfg.Workers)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		nop := zerolog.Nop()
		cfg.Logger = &nop
	}
}

// Segment partitions an already-smoothed image into regions. Config.Sigma is
// ignored. Returns an error if the image or the config is invalid.
func Segment(img *Image, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if err := img.validate(); err != nil {
		return nil, err
	}

	edges := BuildEdgesParallel(img, cfg.Metric, cfg.Workers)
	cfg.Logger.Debug().
		Int("width", img.Width).
		Int("height", img.Height).
		Int("edges", len(edges)).
		Msg("built pixel graph")

	for i, e := range edges {
		if math.IsNaN(e.W) || e.W < 0 {
			return nil, fmt.Errorf("graphseg: metric returned invalid weight %v for edge %d (%d-%d)", e.W, i, e.A, e.B)
		}
	}

	res := segmentEdges(img.Len(), edges, cfg)
	res.Width, res.Height = img.Width, img.Height
	return res, nil
}

// SegmentImage converts src to a float image, smooths it with Config.Sigma
// and segments it.
func SegmentImage(src image.Image, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	img, err := FromImage(src)
	if err != nil {
		return nil, err
	}
	if cfg.Sigma > 0 {
		img = Smooth(img, cfg.Sigma, cfg.Workers)
		cfg.Logger.Debug().Float64("sigma", cfg.Sigma).Msg("smoothed input")
	}
	return Segment(img, cfg)
}

// SegmentEdges segments a precomputed graph of n vertices. edges is sorted
// in place. Result.Width and Result.Height are left at zero. Config.Sigma,
// Config.Metric and Config.Workers are ignored.
func SegmentEdges(n int, edges []Edge, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("graphseg: vertex count must be >= 1, got %d", n)
	}
	if err := validateEdges(n, edges); err != nil {
		return nil, err
	}
	return segmentEdges(n, edges, cfg), nil
}

// segmentEdges runs sort → merge loop → small-region pass → label
// extraction on validated input.
func segmentEdges(n int, edges []Edge, cfg Config) *Result {
	log := cfg.Logger

	SortEdges(edges)
	forest, merges := segmentSorted(n, edges, cfg.K, cfg.RecordMerges)
	log.Debug().
		Float64("k", cfg.K).
		Int("components", forest.NumSets()).
		Msg("merged components")

	postMerges, forced := mergeSmall(forest, edges, cfg.MinSize, cfg.RecordMerges)
	merges = append(merges, forced...)
	if postMerges > 0 {
		log.Debug().
			Int("min_size", cfg.MinSize).
			Int("joins", postMerges).
			Int("components", forest.NumSets()).
			Msg("absorbed small regions")
	}
	if cfg.MinSize > 1 && forest.NumSets() > 1 {
		if small := Undersized(forest, cfg.MinSize); len(small) > 0 {
			log.Warn().
				Int("min_size", cfg.MinSize).
				Int("regions", len(small)).
				Msg("regions remain below minimum size after a single pass")
		}
	}

	labels, numComponents := ExtractLabelsParallel(forest, cfg.Workers)

	return &Result{
		Labels:        labels,
		NumComponents: numComponents,
		Sizes:         componentSizes(labels),
		NumEdges:      len(edges),
		PostMerges:    postMerges,
		Merges:        merges,
	}
}
