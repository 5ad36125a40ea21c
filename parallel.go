package graphseg

import "sync"

// forEachRange splits [0, n) into at most numWorkers contiguous ranges and
// calls fn for each on its own goroutine, returning once all have finished.
// Ranges never overlap, so fn may write to disjoint parts of shared slices
// without synchronization.
func forEachRange(n, numWorkers int, fn func(start, end int)) {
	if numWorkers <= 1 || n <= 1 {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	perWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * perWorker
		end := start + perWorker
		if end > n {
			end = n
		}
		if start >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}

	wg.Wait()
}

// rowEdgeCount returns the number of edges originating in row y.
func rowEdgeCount(y, width, height int) int {
	count := width - 1 // right
	if y < height-1 {
		count += width + width - 1 // down, down-right
	}
	if y > 0 {
		count += width - 1 // up-right
	}
	return count
}

// BuildEdgesParallel computes the same edge list as BuildEdges using
// multiple goroutines, each handling a contiguous range of rows.
// numWorkers controls the degree of parallelism; if <= 1, it falls back to
// BuildEdges.
//
// The result is bitwise identical to BuildEdges, including edge order.
func BuildEdgesParallel(img *Image, metric ColorMetric, numWorkers int) []Edge {
	if numWorkers <= 1 || img.Height <= 1 {
		return BuildEdges(img, metric)
	}
	if metric == nil {
		metric = EuclideanMetric{}
	}

	// rowStart[y] is the index of the first edge emitted for row y.
	rowStart := make([]int, img.Height+1)
	for y := 0; y < img.Height; y++ {
		rowStart[y+1] = rowStart[y] + rowEdgeCount(y, img.Width, img.Height)
	}
	result := make([]Edge, rowStart[img.Height])

	forEachRange(img.Height, numWorkers, func(start, end int) {
		// A zero-length window capped at this range's end: appends land in
		// place inside result.
		window := result[rowStart[start]:rowStart[start]:rowStart[end]]
		appendRowEdges(window, img, metric, start, end)
	})

	return result
}

// ExtractLabelsParallel is ExtractLabels spread across numWorkers
// goroutines. Workers only read the forest, so the forest is left
// uncompressed. Falls back to ExtractLabels if numWorkers <= 1.
func ExtractLabelsParallel(f *Forest, numWorkers int) ([]int, int) {
	if numWorkers <= 1 {
		return ExtractLabels(f)
	}

	labels := make([]int, f.Len())
	forEachRange(f.Len(), numWorkers, func(start, end int) {
		for i := start; i < end; i++ {
			labels[i] = f.root(i)
		}
	})
	return labels, f.NumSets()
}
