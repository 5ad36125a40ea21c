// Package graphseg implements efficient graph-based image segmentation
// (Felzenszwalb and Huttenlocher).
//
// The image is treated as an 8-connected grid graph whose edge weights are
// the colour distances between neighbouring pixels. Edges are visited in
// ascending weight order and two regions are merged when the connecting edge
// is no heavier than the internal difference of either region plus a
// tolerance K/size. Small regions therefore merge readily while large,
// uniform regions keep growing only across weak boundaries. A final pass
// absorbs regions smaller than MinSize into a neighbour.
//
// Basic usage:
//
//	cfg := graphseg.DefaultConfig()
//	cfg.K = 300
//	cfg.MinSize = 50
//	result, err := graphseg.SegmentImage(img, cfg)
//	// result.Labels[y*result.Width+x] is the region id of pixel (x, y)
//	// result.NumComponents is the number of regions
//
// For channels that were already smoothed elsewhere:
//
//	planes, err := graphseg.NewImageFromPlanes(w, h, r, g, b)
//	result, err := graphseg.Segment(planes, cfg)
//
// The stages are also exported individually (BuildEdges, SegmentGraph,
// MergeSmallRegions, ExtractLabels) for callers that need to inspect or
// replace one of them.
package graphseg
