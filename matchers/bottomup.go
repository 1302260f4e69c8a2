package matchers

import (
	"github.com/fitz35/hyperast-go/decomp"
	"github.com/fitz35/hyperast-go/mapping"
	"github.com/fitz35/hyperast-go/similarity"
)

// BottomUpMatcherConfig holds the greedy bottom-up matcher's tunables.
type BottomUpMatcherConfig struct {
	// SizeThreshold gates the intra-subtree optimal alignment pass: it only
	// runs for pairs with at most this many proper descendants.
	SizeThreshold int
	// A candidate is accepted when dice*SimThresholdDen >= SimThresholdNum.
	SimThresholdNum int
	SimThresholdDen int
}

// MatchBottomUp implements GumTree's greedy bottom-up matcher, mutating
// ms in place. It walks src in post-order; for every node with at least one
// matched descendant it finds the same-type dst candidate with the
// highest descendant-set dice score and accepts it above threshold. The
// root pair is always linked unconditionally when reached, terminating
// the walk immediately after — the two roots correspond by construction,
// regardless of how dissimilar their immediate content is.
func MatchBottomUp(ss *decomp.CompletePostOrder, sd *decomp.BreadthFirst, ms *mapping.MonoMappingStore, cfg BottomUpMatcherConfig) {
	for _, s := range ss.IterPostOrder() {
		if s == ss.Root() {
			dstRoot := sd.Root()
			if !ms.IsSrc(s) && !ms.IsDst(dstRoot) {
				_ = ms.Link(s, dstRoot)
				maybeOptimalMatch(ss, sd, ms, s, dstRoot, cfg)
			}
			break
		}
		if ms.IsSrc(s) {
			continue
		}
		if !hasMatchedDescendant(ss, ms, s, true) {
			continue
		}
		best, bestDice, found := bestCandidate(ss, sd, ms, s)
		if !found {
			continue
		}
		if bestDice*float64(cfg.SimThresholdDen) >= float64(cfg.SimThresholdNum) {
			_ = ms.Link(s, best)
			maybeOptimalMatch(ss, sd, ms, s, best, cfg)
		}
	}
}

func hasMatchedDescendant(t decomp.DTS, ms *mapping.MonoMappingStore, id decomp.IdD, src bool) bool {
	for _, c := range t.Children(id) {
		if src {
			if ms.IsSrc(c) || hasMatchedDescendant(t, ms, c, true) {
				return true
			}
		} else if ms.IsDst(c) || hasMatchedDescendant(t, ms, c, false) {
			return true
		}
	}
	return false
}

// bestCandidate scans every unmatched same-type dst node with at least one
// matched descendant and returns the one with the highest descendant dice.
func bestCandidate(ss *decomp.CompletePostOrder, sd *decomp.BreadthFirst, ms *mapping.MonoMappingStore, s decomp.IdD) (decomp.IdD, float64, bool) {
	srcDesc := ss.DescendantsOf(s)
	typ := ss.Type(s)

	var best decomp.IdD
	bestDice := -1.0
	found := false
	for _, d := range sd.IterBF() {
		if ms.IsDst(d) || sd.Type(d) != typ {
			continue
		}
		if !hasMatchedDescendant(sd, ms, d, false) {
			continue
		}
		dstDesc := decomp.Descendants(sd, d)
		common := similarity.CommonDescendants(srcDesc, dstDesc, ms)
		dice := similarity.Dice(common, len(srcDesc), len(dstDesc))
		if dice > bestDice {
			bestDice, best, found = dice, d, true
		}
	}
	return best, bestDice, found
}

// maybeOptimalMatch runs the bounded Zhang-Shasha intra-subtree alignment
// pass when the matched pair is small enough for it to be worthwhile.
func maybeOptimalMatch(ss *decomp.CompletePostOrder, sd *decomp.BreadthFirst, ms *mapping.MonoMappingStore, s, d decomp.IdD, cfg BottomUpMatcherConfig) {
	if len(ss.DescendantsOf(s)) > cfg.SizeThreshold {
		return
	}
	zsMatch(ss, sd, ms, s, d)
}
