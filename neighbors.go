package graphseg

// offset is a forward neighbour displacement on the pixel grid.
type offset struct{ dx, dy int }

// neighborOffsets are the four forward directions used to build the graph:
// right, down, down-right and up-right. Visiting only these from every pixel
// yields each unordered 8-connected pair exactly once.
var neighborOffsets = [4]offset{
	{dx: 1, dy: 0},
	{dx: 0, dy: 1},
	{dx: 1, dy: 1},
	{dx: 1, dy: -1},
}

// inBounds reports whether the neighbour of (x, y) at o lies inside a
// width×height grid. Forward offsets only ever need x < width-1,
// y < height-1 or y > 0.
func inBounds(x, y, width, height int, o offset) bool {
	if o.dx > 0 && x >= width-1 {
		return false
	}
	if o.dy > 0 && y >= height-1 {
		return false
	}
	if o.dy < 0 && y <= 0 {
		return false
	}
	return true
}

// forwardNeighbors appends to dst the pixel indices of the in-bounds forward
// neighbours of (x, y), in neighborOffsets order, and returns the result.
func forwardNeighbors(dst []int, x, y, width, height int) []int {
	for _, o := range neighborOffsets {
		if inBounds(x, y, width, height, o) {
			dst = append(dst, (y+o.dy)*width+x+o.dx)
		}
	}
	return dst
}

// numEdges returns the exact number of edges BuildEdges emits for a
// width×height grid.
func numEdges(width, height int) int {
	if width < 1 || height < 1 {
		return 0
	}
	horizontal := (width - 1) * height
	vertical := width * (height - 1)
	diagonal := 2 * (width - 1) * (height - 1)
	return horizontal + vertical + diagonal
}
