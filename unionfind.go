package graphseg

// node is one slot of the forest arena. size and threshold are only
// meaningful while the node is a root.
type node struct {
	parent    int
	rank      int
	size      int
	threshold float64
}

// Forest implements a disjoint-set data structure over pixel indices with
// path compression and union by rank. Each root additionally carries the
// merge threshold of its component; the forest stores it but never
// computes it.
type Forest struct {
	nodes []node
	// sets is the number of elements that are still their own root.
	sets int
}

// NewForest creates a Forest of n singleton components, each starting with
// the given threshold. n <= 0 yields an empty forest.
func NewForest(n int, threshold float64) *Forest {
	if n < 0 {
		n = 0
	}
	nodes := make([]node, n)
	for i := range nodes {
		nodes[i] = node{parent: i, size: 1, threshold: threshold}
	}
	return &Forest{nodes: nodes, sets: n}
}

// Len returns the number of elements in the forest.
func (f *Forest) Len() int { return len(f.nodes) }

// NumSets returns the number of disjoint components.
func (f *Forest) NumSets() int { return f.sets }

// Find returns the root of the set containing x, with path compression.
func (f *Forest) Find(x int) int {
	root := f.root(x)
	// Point every node on the path directly at the root.
	for f.nodes[x].parent != root {
		x, f.nodes[x].parent = f.nodes[x].parent, root
	}
	return root
}

// root walks to the root of x without modifying the forest. It is safe to
// call from several goroutines as long as nobody mutates the forest.
func (f *Forest) root(x int) int {
	for f.nodes[x].parent != x {
		x = f.nodes[x].parent
	}
	return x
}

// Join merges the sets containing a and b and returns the surviving root.
// The root of lower rank is attached under the other; on equal rank a's
// root goes under b's and b's rank grows by one. If a and b already share
// a root, nothing changes. Join leaves thresholds alone: the caller sets
// the survivor's threshold.
func (f *Forest) Join(a, b int) int {
	x := f.Find(a)
	y := f.Find(b)
	if x == y {
		return x
	}

	if f.nodes[x].rank > f.nodes[y].rank {
		x, y = y, x
	}
	// x now has rank <= y.
	f.nodes[x].parent = y
	f.nodes[y].size += f.nodes[x].size
	if f.nodes[x].rank == f.nodes[y].rank {
		f.nodes[y].rank++
	}
	f.sets--
	return y
}

// Size returns the number of elements in the set containing x.
func (f *Forest) Size(x int) int {
	return f.nodes[f.Find(x)].size
}

// Threshold returns the merge threshold of the component containing x.
func (f *Forest) Threshold(x int) float64 {
	return f.nodes[f.Find(x)].threshold
}

// SetThreshold stores t as the merge threshold of the component containing x.
func (f *Forest) SetThreshold(x int, t float64) {
	f.nodes[f.Find(x)].threshold = t
}
