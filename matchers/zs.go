package matchers

import (
	"github.com/fitz35/hyperast-go/decomp"
	"github.com/fitz35/hyperast-go/mapping"
)

// zsMatch performs a bounded, Zhang-Shasha-like optimal alignment of the
// still-unmatched children of an already-matched (s,d) pair: children are
// paired by type equality and left-to-right position, independent of
// label, since the matched ancestor already establishes structural
// correspondence at this point. It recurses into each newly matched pair,
// so a single call can settle an entire small matched subtree.
func zsMatch(ss *decomp.CompletePostOrder, sd *decomp.BreadthFirst, ms *mapping.MonoMappingStore, s, d decomp.IdD) {
	sc := ss.Children(s)
	dc := sd.Children(d)
	dUsed := make([]bool, len(dc))

	for _, cs := range sc {
		if ms.IsSrc(cs) {
			continue
		}
		best := -1
		for j, cd := range dc {
			if dUsed[j] || ms.IsDst(cd) {
				continue
			}
			if ss.Type(cs) == sd.Type(cd) {
				best = j
				break
			}
		}
		if best < 0 {
			continue
		}
		dUsed[best] = true
		_ = ms.Link(cs, dc[best])
		zsMatch(ss, sd, ms, cs, dc[best])
	}
}
