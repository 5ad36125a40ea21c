package graphseg

// Edge is an undirected weighted edge between two pixel indices.
type Edge struct {
	A, B int
	W    float64
}

// BuildEdges constructs the 8-connected grid graph of img. Edges are emitted
// in pixel order and, for each pixel, in neighborOffsets order. The weight of
// each edge is metric.Distance between the two pixels' channel values; a nil
// metric means EuclideanMetric.
func BuildEdges(img *Image, metric ColorMetric) []Edge {
	if metric == nil {
		metric = EuclideanMetric{}
	}
	edges := make([]Edge, 0, numEdges(img.Width, img.Height))
	return appendRowEdges(edges, img, metric, 0, img.Height)
}

// appendRowEdges appends the edges that originate in rows [startRow, endRow).
func appendRowEdges(edges []Edge, img *Image, metric ColorMetric, startRow, endRow int) []Edge {
	w, h := img.Width, img.Height
	var nbrs [len(neighborOffsets)]int
	for y := startRow; y < endRow; y++ {
		for x := 0; x < w; x++ {
			a := y*w + x
			pa := img.Pixel(a)
			for _, b := range forwardNeighbors(nbrs[:0], x, y, w, h) {
				edges = append(edges, Edge{A: a, B: b, W: metric.Distance(pa, img.Pixel(b))})
			}
		}
	}
	return edges
}
