package graphseg

import (
	"fmt"
	"image"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// RegionStats summarizes one component of a segmentation.
type RegionStats struct {
	// Label is the component id as it appears in the label slice.
	Label int
	// Size is the number of pixels in the component.
	Size int
	// Bounds is the smallest rectangle containing every pixel of the
	// component, in pixel coordinates.
	Bounds image.Rectangle
	// Mean and StdDev hold the per-channel sample mean and standard
	// deviation of the component's pixels. StdDev is 0 for single pixels.
	Mean   []float64
	StdDev []float64
}

// ComputeRegionStats groups the pixels of img by labels and returns one
// RegionStats per distinct label, sorted by label. labels must hold one
// entry per pixel of img.
func ComputeRegionStats(img *Image, labels []int) ([]RegionStats, error) {
	if err := img.validate(); err != nil {
		return nil, err
	}
	if len(labels) != img.Len() {
		return nil, fmt.Errorf("graphseg: got %d labels for %d pixels", len(labels), img.Len())
	}

	members := make(map[int][]int)
	for i, l := range labels {
		members[l] = append(members[l], i)
	}

	ids := make([]int, 0, len(members))
	for l := range members {
		ids = append(ids, l)
	}
	sort.Ints(ids)

	out := make([]RegionStats, 0, len(ids))
	values := make([]float64, 0, len(labels))
	for _, l := range ids {
		pixels := members[l]
		rs := RegionStats{
			Label:  l,
			Size:   len(pixels),
			Mean:   make([]float64, img.Channels),
			StdDev: make([]float64, img.Channels),
		}

		first := pixels[0]
		rs.Bounds = image.Rect(first%img.Width, first/img.Width, first%img.Width+1, first/img.Width+1)
		for _, p := range pixels[1:] {
			x, y := p%img.Width, p/img.Width
			rs.Bounds = rs.Bounds.Union(image.Rect(x, y, x+1, y+1))
		}

		for c := 0; c < img.Channels; c++ {
			values = values[:0]
			for _, p := range pixels {
				values = append(values, img.Pix[p*img.Channels+c])
			}
			if len(values) == 1 {
				rs.Mean[c] = values[0]
				continue
			}
			rs.Mean[c], rs.StdDev[c] = stat.MeanStdDev(values, nil)
		}

		out = append(out, rs)
	}
	return out, nil
}
