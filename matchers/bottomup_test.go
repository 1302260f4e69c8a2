package matchers

import (
	"testing"

	"github.com/fitz35/hyperast-go/decomp"
	"github.com/fitz35/hyperast-go/mapping"
	"github.com/fitz35/hyperast-go/testfixture"
)

// seedBottomUp links the four statement leaves both sides of example_bottom_up
// share at path [0,2,0..3] (method_decl -> block -> s1..s4).
func seedBottomUp(t *testing.T, ss *decomp.CompletePostOrder, sd *decomp.BreadthFirst) *mapping.MonoMappingStore {
	t.Helper()
	ms := mapping.NewMonoMappingStore()
	ms.Topit(ss.Len(), sd.Len())
	for i := 0; i < 4; i++ {
		s := mustChild(t, ss, ss.Root(), 0, 2, i)
		d := mustChild(t, sd, sd.Root(), 0, 2, i)
		if err := ms.Link(s, d); err != nil {
			t.Fatalf("seed link %d: %v", i, err)
		}
	}
	return ms
}

func TestMatchBottomUpSizeZeroSimOne(t *testing.T) {
	p := testfixture.ExampleBottomUp()
	ss, sd := buildDTS(t, p)
	ms := seedBottomUp(t, ss, sd)

	MatchBottomUp(ss, sd, ms, BottomUpMatcherConfig{SizeThreshold: 0, SimThresholdNum: 1, SimThresholdDen: 1})

	if got := ms.Len(); got != 5 {
		t.Fatalf("mapping count = %d, want 5", got)
	}
	if !ms.Has(ss.Root(), sd.Root()) {
		t.Errorf("root not mapped to root")
	}
}

func TestMatchBottomUpSizeZeroSimHalf(t *testing.T) {
	p := testfixture.ExampleBottomUp()
	ss, sd := buildDTS(t, p)
	ms := seedBottomUp(t, ss, sd)

	MatchBottomUp(ss, sd, ms, BottomUpMatcherConfig{SizeThreshold: 0, SimThresholdNum: 1, SimThresholdDen: 2})

	if got := ms.Len(); got != 7 {
		t.Fatalf("mapping count = %d, want 7", got)
	}
	if !ms.Has(mustChild(t, ss, ss.Root(), 0), mustChild(t, sd, sd.Root(), 0)) {
		t.Errorf("method_decl [0] not mapped to [0]")
	}
	if !ms.Has(mustChild(t, ss, ss.Root(), 0, 2), mustChild(t, sd, sd.Root(), 0, 2)) {
		t.Errorf("block [0,2] not mapped to [0,2]")
	}
}

func TestMatchBottomUpSizeTenSimHalf(t *testing.T) {
	p := testfixture.ExampleBottomUp()
	ss, sd := buildDTS(t, p)
	ms := seedBottomUp(t, ss, sd)

	MatchBottomUp(ss, sd, ms, BottomUpMatcherConfig{SizeThreshold: 10, SimThresholdNum: 1, SimThresholdDen: 2})

	if got := ms.Len(); got != 9 {
		t.Fatalf("mapping count = %d, want 9", got)
	}
}
