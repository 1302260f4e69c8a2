package matchers

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fitz35/hyperast-go/decomp"
	"github.com/fitz35/hyperast-go/mapping"
	"github.com/fitz35/hyperast-go/testfixture"
)

// sortedPairs gives a deterministic view over a MonoMappingStore's
// iteration order, so mapping-set comparisons with cmp.Diff are stable.
func sortedPairs(ms *mapping.MonoMappingStore) []mapping.Pair {
	pairs := ms.Iter()
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Src != pairs[j].Src {
			return pairs[i].Src < pairs[j].Src
		}
		return pairs[i].Dst < pairs[j].Dst
	})
	return pairs
}

func buildDTS(t *testing.T, p testfixture.Pair) (*decomp.CompletePostOrder, *decomp.BreadthFirst) {
	t.Helper()
	ss, err := decomp.BuildCompletePostOrder(p.Store, p.SrcRoot)
	if err != nil {
		t.Fatalf("BuildCompletePostOrder: %v", err)
	}
	sd, err := decomp.BuildBreadthFirst(p.Store, p.DstRoot)
	if err != nil {
		t.Fatalf("BuildBreadthFirst: %v", err)
	}
	return ss, sd
}

func mustChild(t *testing.T, tree decomp.DTS, root decomp.IdD, path ...int) decomp.IdD {
	t.Helper()
	id, ok := tree.Child(root, path)
	if !ok {
		t.Fatalf("no child at path %v from root %d", path, root)
	}
	return id
}

// MIN_HEIGHT=0 on example_gumtree yields exactly 4 mappings.
func TestMatchSubtreesMinHeightZero(t *testing.T) {
	p := testfixture.ExampleGumtree()
	ss, sd := buildDTS(t, p)

	ms := MatchSubtrees(ss, sd, SubtreeMatcherConfig{MinHeight: 0})

	if got := ms.Len(); got != 4 {
		t.Fatalf("mapping count = %d, want 4", got)
	}

	srcB := mustChild(t, ss, ss.Root(), 1)
	dstB := mustChild(t, sd, sd.Root(), 0)
	if !ms.Has(srcB, dstB) {
		t.Errorf("src[1] not mapped to dst[0]")
	}
	if !ms.Has(mustChild(t, ss, ss.Root(), 1, 0), mustChild(t, sd, sd.Root(), 0, 0)) {
		t.Errorf("src[1,0] not mapped to dst[0,0]")
	}
	if !ms.Has(mustChild(t, ss, ss.Root(), 1, 1), mustChild(t, sd, sd.Root(), 0, 1)) {
		t.Errorf("src[1,1] not mapped to dst[0,1]")
	}
	if !ms.Has(mustChild(t, ss, ss.Root(), 2), mustChild(t, sd, sd.Root(), 2)) {
		t.Errorf("src[2] not mapped to dst[2]")
	}

	want := []mapping.Pair{
		{Src: uint32(mustChild(t, ss, ss.Root(), 1)), Dst: uint32(mustChild(t, sd, sd.Root(), 0))},
		{Src: uint32(mustChild(t, ss, ss.Root(), 1, 0)), Dst: uint32(mustChild(t, sd, sd.Root(), 0, 0))},
		{Src: uint32(mustChild(t, ss, ss.Root(), 1, 1)), Dst: uint32(mustChild(t, sd, sd.Root(), 0, 1))},
		{Src: uint32(mustChild(t, ss, ss.Root(), 2)), Dst: uint32(mustChild(t, sd, sd.Root(), 2))},
	}
	sort.Slice(want, func(i, j int) bool {
		if want[i].Src != want[j].Src {
			return want[i].Src < want[j].Src
		}
		return want[i].Dst < want[j].Dst
	})
	if diff := cmp.Diff(want, sortedPairs(ms)); diff != "" {
		t.Errorf("mapping set mismatch (-want +got):\n%s", diff)
	}
}

// MIN_HEIGHT=1 on the same input drops the leaf-only pair.
func TestMatchSubtreesMinHeightOne(t *testing.T) {
	p := testfixture.ExampleGumtree()
	ss, sd := buildDTS(t, p)

	ms := MatchSubtrees(ss, sd, SubtreeMatcherConfig{MinHeight: 1})

	if got := ms.Len(); got != 3 {
		t.Fatalf("mapping count = %d, want 3", got)
	}
	if ms.Has(mustChild(t, ss, ss.Root(), 2), mustChild(t, sd, sd.Root(), 2)) {
		t.Errorf("leaf-only pair src[2]<->dst[2] should have been dropped")
	}
}
