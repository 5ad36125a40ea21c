package graphseg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInBounds(t *testing.T) {
	right, down, downRight, upRight := neighborOffsets[0], neighborOffsets[1], neighborOffsets[2], neighborOffsets[3]
	tests := []struct {
		name string
		x, y int
		o    offset
		want bool
	}{
		{"right interior", 0, 0, right, true},
		{"right last column", 2, 1, right, false},
		{"down interior", 1, 0, down, true},
		{"down last row", 1, 2, down, false},
		{"down-right interior", 1, 1, downRight, true},
		{"down-right last column", 2, 0, downRight, false},
		{"down-right last row", 0, 2, downRight, false},
		{"up-right interior", 0, 1, upRight, true},
		{"up-right first row", 0, 0, upRight, false},
		{"up-right last column", 2, 2, upRight, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inBounds(tt.x, tt.y, 3, 3, tt.o); got != tt.want {
				t.Errorf("inBounds(%d, %d, 3, 3, %v) = %v, want %v", tt.x, tt.y, tt.o, got, tt.want)
			}
		})
	}
}

func TestForwardNeighbors_3x3(t *testing.T) {
	// 0 1 2
	// 3 4 5
	// 6 7 8
	tests := []struct {
		x, y int
		want []int
	}{
		{0, 0, []int{1, 3, 4}},
		{1, 1, []int{5, 7, 8, 2}},
		{2, 0, []int{5}},
		{0, 2, []int{7, 4}},
		{2, 2, nil},
		{2, 1, []int{8}},
	}
	for _, tt := range tests {
		got := forwardNeighbors(nil, tt.x, tt.y, 3, 3)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("forwardNeighbors(%d, %d) mismatch (-want +got):\n%s", tt.x, tt.y, diff)
		}
	}
}

func TestForwardNeighbors_SinglePixel(t *testing.T) {
	if got := forwardNeighbors(nil, 0, 0, 1, 1); len(got) != 0 {
		t.Errorf("expected no neighbours for a 1x1 grid, got %v", got)
	}
}

func TestNumEdges(t *testing.T) {
	tests := []struct {
		w, h, want int
	}{
		{1, 1, 0},
		{2, 1, 1},
		{1, 2, 1},
		{2, 2, 6},
		{3, 3, 20},
		{0, 5, 0},
	}
	for _, tt := range tests {
		if got := numEdges(tt.w, tt.h); got != tt.want {
			t.Errorf("numEdges(%d, %d) = %d, want %d", tt.w, tt.h, got, tt.want)
		}
	}
}
