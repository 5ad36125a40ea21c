package graphseg

// ExtractLabels returns, for every element of f, the root of its component,
// together with the number of distinct components. Labels are pixel indices
// of the roots, so they are stable ids but not contiguous; see Relabel.
func ExtractLabels(f *Forest) ([]int, int) {
	labels := make([]int, f.Len())
	for i := range labels {
		labels[i] = f.Find(i)
	}
	return labels, f.NumSets()
}

// Relabel maps arbitrary component ids onto 0..c-1 in order of first
// appearance and returns the new labels and c. The input is not modified.
func Relabel(labels []int) ([]int, int) {
	ids := make(map[int]int)
	dense := make([]int, len(labels))
	for i, l := range labels {
		id, ok := ids[l]
		if !ok {
			id = len(ids)
			ids[l] = id
		}
		dense[i] = id
	}
	return dense, len(ids)
}

// componentSizes counts the elements carrying each label.
func componentSizes(labels []int) map[int]int {
	sizes := make(map[int]int)
	for _, l := range labels {
		sizes[l]++
	}
	return sizes
}
