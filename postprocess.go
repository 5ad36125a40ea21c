package graphseg

// MergeSmallRegions makes a single pass over edges, in the given order, and
// joins the two endpoints' components whenever they differ and either one
// holds fewer than minSize pixels. Edge weights are ignored. Returns the
// number of joins performed.
//
// The pass is not repeated until a fixpoint: a component can still be below
// minSize afterwards if every edge that could have absorbed it was visited
// before it became eligible. Use Undersized to find such components.
// minSize <= 1 is a no-op since no component can be smaller than one pixel.
func MergeSmallRegions(f *Forest, edges []Edge, minSize int) int {
	joins, _ := mergeSmall(f, edges, minSize, false)
	return joins
}

func mergeSmall(f *Forest, edges []Edge, minSize int, record bool) (int, []Merge) {
	if minSize <= 1 {
		return 0, nil
	}

	joins := 0
	var merges []Merge
	for _, e := range edges {
		a := f.Find(e.A)
		b := f.Find(e.B)
		if a == b {
			continue
		}
		if f.nodes[a].size >= minSize && f.nodes[b].size >= minSize {
			continue
		}

		root := f.Join(a, b)
		joins++
		if record {
			merges = append(merges, Merge{A: a, B: b, Weight: e.W, Size: f.nodes[root].size, Forced: true})
		}
	}
	return joins, merges
}

// Undersized returns, in ascending order, the roots of all components with
// fewer than minSize pixels.
func Undersized(f *Forest, minSize int) []int {
	var roots []int
	for i := range f.nodes {
		if f.nodes[i].parent == i && f.nodes[i].size < minSize {
			roots = append(roots, i)
		}
	}
	return roots
}
