package graphseg

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeSmallRegions_AbsorbsSmallNeighbours(t *testing.T) {
	// k=1 on chain 0 -1- 1 -100- 2 -1- 3 leaves {0,1} and {2,3}.
	edges := []Edge{{A: 0, B: 1, W: 1}, {A: 1, B: 2, W: 100}, {A: 2, B: 3, W: 1}}
	f, err := SegmentGraph(4, edges, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.NumSets() != 2 {
		t.Fatalf("expected 2 components before post-processing, got %d", f.NumSets())
	}

	joins := MergeSmallRegions(f, edges, 3)
	if joins != 1 {
		t.Errorf("joins = %d, want 1", joins)
	}
	if f.NumSets() != 1 {
		t.Errorf("NumSets() = %d, want 1", f.NumSets())
	}
	if f.Size(0) != 4 {
		t.Errorf("Size(0) = %d, want 4", f.Size(0))
	}
}

func TestMergeSmallRegions_LeavesLargeRegionsAlone(t *testing.T) {
	edges := []Edge{{A: 0, B: 1, W: 1}, {A: 1, B: 2, W: 100}, {A: 2, B: 3, W: 1}}
	f, _ := SegmentGraph(4, edges, 1)

	if joins := MergeSmallRegions(f, edges, 2); joins != 0 {
		t.Errorf("joins = %d, want 0 when every region already has min size", joins)
	}
	if f.NumSets() != 2 {
		t.Errorf("NumSets() = %d, want 2", f.NumSets())
	}
}

func TestMergeSmallRegions_NoopBelowTwo(t *testing.T) {
	for _, minSize := range []int{-1, 0, 1} {
		f := NewForest(3, 1)
		edges := []Edge{{A: 0, B: 1, W: 1e9}, {A: 1, B: 2, W: 1e9}}
		if joins := MergeSmallRegions(f, edges, minSize); joins != 0 {
			t.Errorf("minSize=%d: joins = %d, want 0", minSize, joins)
		}
		if f.NumSets() != 3 {
			t.Errorf("minSize=%d: NumSets() = %d, want 3", minSize, f.NumSets())
		}
	}
}

func TestMergeSmallRegions_IgnoresWeights(t *testing.T) {
	f := NewForest(2, 0)
	edges := []Edge{{A: 0, B: 1, W: 1e12}}
	if joins := MergeSmallRegions(f, edges, 2); joins != 1 {
		t.Errorf("joins = %d, want 1", joins)
	}
}

func TestMergeSmallRegions_SinglePassFollowsEdgeOrder(t *testing.T) {
	// Singletons 0..3, minSize 2, edge order (0,1), (1,2), (2,3):
	//   (0,1): both size 1 → join, {0,1}
	//   (1,2): 2 has size 1 → join, {0,1,2}
	//   (2,3): 3 has size 1 → join
	f := NewForest(4, 0)
	edges := []Edge{{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}}
	if joins := MergeSmallRegions(f, edges, 2); joins != 3 {
		t.Errorf("joins = %d, want 3", joins)
	}

	// Reversed order reaches the same single region.
	f = NewForest(4, 0)
	edges = []Edge{{A: 2, B: 3}, {A: 1, B: 2}, {A: 0, B: 1}}
	joins := MergeSmallRegions(f, edges, 2)
	//   (2,3): join → {2,3}
	//   (1,2): 1 has size 1 → join → {1,2,3}
	//   (0,1): 0 has size 1 → join
	if joins != 3 || f.NumSets() != 1 {
		t.Errorf("joins = %d, NumSets() = %d, want 3, 1", joins, f.NumSets())
	}
}

func TestMergeSmallRegions_DisconnectedComponentStaysSmall(t *testing.T) {
	// Vertex 4 has no edges, and {2,3} only touch each other: nothing can
	// absorb them, so they stay below the floor.
	f := NewForest(5, 0)
	edges := []Edge{{A: 0, B: 1}, {A: 2, B: 3}}
	MergeSmallRegions(f, edges, 3)

	got := Undersized(f, 3)
	want := []int{f.Find(0), f.Find(2), 4}
	sort.Ints(want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Undersized mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeSmallRegions_RecordsForcedJoins(t *testing.T) {
	f := NewForest(3, 0)
	edges := []Edge{{A: 0, B: 1, W: 7}, {A: 1, B: 2, W: 9}}
	joins, merges := mergeSmall(f, edges, 3, true)
	if joins != 2 || len(merges) != 2 {
		t.Fatalf("joins = %d, merges = %d, want 2, 2", joins, len(merges))
	}
	for i, m := range merges {
		if !m.Forced {
			t.Errorf("merge %d should be marked forced", i)
		}
	}
	if merges[1].Size != 3 || merges[1].Weight != 9 {
		t.Errorf("last merge = %+v, want size 3 weight 9", merges[1])
	}
}

func TestUndersized(t *testing.T) {
	f := NewForest(5, 0)
	f.Join(0, 1)
	f.Join(1, 2)
	if got := Undersized(f, 2); len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Errorf("Undersized(f, 2) = %v, want [3 4]", got)
	}
	if got := Undersized(f, 1); len(got) != 0 {
		t.Errorf("Undersized(f, 1) = %v, want none", got)
	}
}
