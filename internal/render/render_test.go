package render

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/TrevorS/graphseg"
)

func twoRegionResult() *graphseg.Result {
	// 3x2, left column is one region, the rest another.
	return &graphseg.Result{
		Width:         3,
		Height:        2,
		Labels:        []int{0, 4, 4, 0, 4, 4},
		NumComponents: 2,
	}
}

func TestColorize_RegionsShareColours(t *testing.T) {
	res := twoRegionResult()
	img := Colorize(res, RandomPalette(rand.New(rand.NewSource(1))))

	if size := img.Bounds().Size(); size.X != 3 || size.Y != 2 {
		t.Fatalf("size = %v, want 3x2", size)
	}
	left := img.NRGBAAt(0, 0)
	right := img.NRGBAAt(1, 0)
	if img.NRGBAAt(0, 1) != left {
		t.Error("left column pixels differ")
	}
	for _, p := range [][2]int{{2, 0}, {1, 1}, {2, 1}} {
		if img.NRGBAAt(p[0], p[1]) != right {
			t.Errorf("pixel %v differs from its region", p)
		}
	}
	if left.A != 255 || right.A != 255 {
		t.Error("colours must be opaque")
	}
}

func TestRandomPalette_SameSeedSameImage(t *testing.T) {
	res := twoRegionResult()
	a := Colorize(res, RandomPalette(rand.New(rand.NewSource(7))))
	b := Colorize(res, RandomPalette(rand.New(rand.NewSource(7))))
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("Pix[%d] differs between runs with the same seed", i)
		}
	}
}

func TestPalette_StableColourPerLabel(t *testing.T) {
	for name, p := range map[string]Palette{
		"random": RandomPalette(rand.New(rand.NewSource(3))),
		"hue":    HuePalette(rand.New(rand.NewSource(3))),
	} {
		first := p.Color(11)
		p.Color(12)
		if again := p.Color(11); again != first {
			t.Errorf("%s: label 11 changed colour from %v to %v", name, first, again)
		}
	}
}

func TestHuePalette_DistinctNeighbours(t *testing.T) {
	p := HuePalette(rand.New(rand.NewSource(5)))
	seen := make(map[color.NRGBA]bool)
	for label := 0; label < 20; label++ {
		c := p.Color(label)
		if c.A != 255 {
			t.Errorf("label %d: alpha %d, want 255", label, c.A)
		}
		if seen[c] {
			t.Errorf("label %d reuses colour %v", label, c)
		}
		seen[c] = true
	}
}

func TestMeanPalette(t *testing.T) {
	stats := []graphseg.RegionStats{
		{Label: 0, Size: 2, Mean: []float64{10.4, 20.6, 300}},
		{Label: 4, Size: 4, Mean: []float64{-3}},
	}
	p := MeanPalette(stats)

	if got, want := p.Color(0), (color.NRGBA{R: 10, G: 21, B: 255, A: 255}); got != want {
		t.Errorf("Color(0) = %v, want %v", got, want)
	}
	if got, want := p.Color(4), (color.NRGBA{A: 255}); got != want {
		t.Errorf("Color(4) = %v, want %v", got, want)
	}
	if got := p.Color(9); got != (color.NRGBA{}) {
		t.Errorf("Color(9) = %v, want transparent", got)
	}
}

func TestColorize_FromSegmentation(t *testing.T) {
	img, err := graphseg.NewImageFromPlanes(4, 1, []float64{0, 0, 200, 200})
	if err != nil {
		t.Fatal(err)
	}
	cfg := graphseg.DefaultConfig()
	cfg.K = 10
	cfg.MinSize = 0
	res, err := graphseg.Segment(img, cfg)
	if err != nil {
		t.Fatal(err)
	}
	stats, err := graphseg.ComputeRegionStats(img, res.Labels)
	if err != nil {
		t.Fatal(err)
	}

	out := Colorize(res, MeanPalette(stats))
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{A: 255}) {
		t.Errorf("left = %v, want black", got)
	}
	if got := out.NRGBAAt(3, 0); got != (color.NRGBA{R: 200, G: 200, B: 200, A: 255}) {
		t.Errorf("right = %v, want grey 200", got)
	}
}

func TestColorize_GraphResultWithoutDimensions(t *testing.T) {
	edges := []graphseg.Edge{{A: 0, B: 1, W: 1}, {A: 1, B: 2, W: 50}}
	cfg := graphseg.DefaultConfig()
	cfg.MinSize = 0
	res, err := graphseg.SegmentEdges(3, edges, cfg)
	if err != nil {
		t.Fatal(err)
	}

	out := Colorize(res, RandomPalette(rand.New(rand.NewSource(1))))
	if !out.Bounds().Empty() {
		t.Errorf("bounds = %v, want empty", out.Bounds())
	}
}
