package graphseg

import (
	"fmt"
	"math"
	"sort"
)

// Merge records one join of two components. A and B are the roots of the
// two components just before the join, Weight is the weight of the edge
// that caused it and Size is the size of the merged component. Forced is
// set for joins made by MergeSmallRegions, which ignore the weight
// predicate.
type Merge struct {
	A, B   int
	Weight float64
	Size   int
	Forced bool
}

// Threshold returns the size-scaled tolerance k/size that is added to a
// component's internal difference. Smaller components tolerate larger
// differences, so larger k favours larger components.
func Threshold(size int, k float64) float64 {
	return k / float64(size)
}

// SortEdges sorts edges in place by ascending weight. The sort is stable, so
// equal-weight edges keep their construction order and repeated runs over
// the same input merge in the same order.
func SortEdges(edges []Edge) {
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].W < edges[j].W
	})
}

// SegmentGraph partitions a graph of n vertices with the adaptive-threshold
// greedy merge. It sorts edges in place (see SortEdges) and returns the
// resulting forest; the sorted edges remain usable for MergeSmallRegions.
// Returns an error if n < 1, k is not a positive finite number, or an edge
// is malformed.
func SegmentGraph(n int, edges []Edge, k float64) (*Forest, error) {
	if n < 1 {
		return nil, fmt.Errorf("graphseg: vertex count must be >= 1, got %d", n)
	}
	if err := validateK(k); err != nil {
		return nil, err
	}
	if err := validateEdges(n, edges); err != nil {
		return nil, err
	}
	SortEdges(edges)
	f, _ := segmentSorted(n, edges, k, false)
	return f, nil
}

// segmentSorted runs the merge loop over edges that are already sorted by
// weight. Two components merge only when the edge weight does not exceed
// the threshold of either side; the merged root's threshold becomes
// w + k/size. When record is set, every join is returned in order.
func segmentSorted(n int, edges []Edge, k float64, record bool) (*Forest, []Merge) {
	f := NewForest(n, Threshold(1, k))

	var merges []Merge
	for _, e := range edges {
		a := f.Find(e.A)
		b := f.Find(e.B)
		if a == b {
			continue
		}
		if e.W > f.nodes[a].threshold || e.W > f.nodes[b].threshold {
			continue
		}

		root := f.Join(a, b)
		size := f.nodes[root].size
		f.nodes[root].threshold = e.W + Threshold(size, k)

		if record {
			merges = append(merges, Merge{A: a, B: b, Weight: e.W, Size: size})
		}
	}

	return f, merges
}

func validateK(k float64) error {
	if math.IsNaN(k) || math.IsInf(k, 0) || k <= 0 {
		return fmt.Errorf("graphseg: K must be a positive finite number, got %v", k)
	}
	return nil
}

// validateEdges checks that every edge joins two distinct in-range vertices
// with a non-negative weight.
func validateEdges(n int, edges []Edge) error {
	for i, e := range edges {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			return fmt.Errorf("graphseg: edge %d (%d-%d) out of range for %d vertices", i, e.A, e.B, n)
		}
		if e.A == e.B {
			return fmt.Errorf("graphseg: edge %d is a self-loop on vertex %d", i, e.A)
		}
		if math.IsNaN(e.W) || e.W < 0 {
			return fmt.Errorf("graphseg: edge %d (%d-%d) has invalid weight %v", i, e.A, e.B, e.W)
		}
	}
	return nil
}
