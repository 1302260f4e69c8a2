package matchers

import (
	"sort"

	"github.com/fitz35/hyperast-go/decomp"
	"github.com/fitz35/hyperast-go/mapping"
	"github.com/fitz35/hyperast-go/similarity"
)

// SubtreeMatcherConfig holds the single tunable of the greedy top-down
// subtree matcher.
type SubtreeMatcherConfig struct {
	// MinHeight excludes isomorphic pairs shorter than this from
	// consideration; 0 admits leaves.
	MinHeight int
}

// MatchSubtrees implements GumTree's greedy top-down subtree matcher: it
// pairs identical (same type, label, and structure) subtrees, processing
// candidate groups from tallest to shortest so a matched ancestor is
// always available to disambiguate its descendants.
func MatchSubtrees(ss *decomp.CompletePostOrder, sd *decomp.BreadthFirst, cfg SubtreeMatcherConfig) *mapping.MonoMappingStore {
	ms := mapping.NewMonoMappingStore()
	ms.Topit(ss.Len(), sd.Len())

	srcIds := ss.IterPostOrder()
	dstIds := sd.IterBF()
	srcHash := subtreeHashes(ss, srcIds)
	dstHash := subtreeHashes(sd, dstIds)
	dstHeight := heights(sd, dstIds)

	srcByHash := make(map[uint64][]decomp.IdD)
	for _, id := range srcIds {
		srcByHash[srcHash[id]] = append(srcByHash[srcHash[id]], id)
	}
	dstByHash := make(map[uint64][]decomp.IdD)
	for _, id := range dstIds {
		dstByHash[dstHash[id]] = append(dstByHash[dstHash[id]], id)
	}

	type group struct {
		hash   uint64
		height int
	}
	var groups []group
	for h, dGroup := range dstByHash {
		if _, ok := srcByHash[h]; !ok {
			continue
		}
		height := dstHeight[dGroup[0]]
		if height < cfg.MinHeight {
			continue
		}
		groups = append(groups, group{hash: h, height: height})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].height != groups[j].height {
			return groups[i].height > groups[j].height
		}
		return groups[i].hash < groups[j].hash
	})

	for _, g := range groups {
		matchGroup(ss, sd, ms, srcByHash[g.hash], dstByHash[g.hash])
	}

	return ms
}

// matchGroup greedily pairs off the still-unmatched members of one
// identical-hash bucket, preferring the pair with the most already-matched
// ancestors in common, then the pair whose parents are most dice-similar.
func matchGroup(ss *decomp.CompletePostOrder, sd *decomp.BreadthFirst, ms *mapping.MonoMappingStore, srcCandidates, dstCandidates []decomp.IdD) {
	srcAvail := make([]decomp.IdD, 0, len(srcCandidates))
	for _, s := range srcCandidates {
		if !ms.IsSrc(s) {
			srcAvail = append(srcAvail, s)
		}
	}
	dstAvail := make([]decomp.IdD, 0, len(dstCandidates))
	for _, d := range dstCandidates {
		if !ms.IsDst(d) {
			dstAvail = append(dstAvail, d)
		}
	}

	for len(srcAvail) > 0 && len(dstAvail) > 0 {
		bestI, bestJ := -1, -1
		bestAnc, bestDice := -1, -1.0
		for j, d := range dstAvail {
			for i, s := range srcAvail {
				anc := matchedAncestorPairs(ss, sd, ms, s, d)
				dice := parentDice(ss, sd, ms, s, d)
				if anc > bestAnc || (anc == bestAnc && dice > bestDice) {
					bestAnc, bestDice = anc, dice
					bestI, bestJ = i, j
				}
			}
		}
		s, d := srcAvail[bestI], dstAvail[bestJ]
		mapSubtree(ss, sd, ms, s, d)
		srcAvail = append(srcAvail[:bestI], srcAvail[bestI+1:]...)
		dstAvail = append(dstAvail[:bestJ], dstAvail[bestJ+1:]...)
	}
}

// mapSubtree links s to d and recurses pairwise over their children, which
// an identical structural hash guarantees align one-to-one by position.
func mapSubtree(ss *decomp.CompletePostOrder, sd *decomp.BreadthFirst, ms *mapping.MonoMappingStore, s, d decomp.IdD) {
	if ms.IsSrc(s) || ms.IsDst(d) {
		return
	}
	_ = ms.Link(s, d)
	sc, dc := ss.Children(s), sd.Children(d)
	for i := 0; i < len(sc) && i < len(dc); i++ {
		mapSubtree(ss, sd, ms, sc[i], dc[i])
	}
}

func matchedAncestorPairs(ss *decomp.CompletePostOrder, sd *decomp.BreadthFirst, ms *mapping.MonoMappingStore, s, d decomp.IdD) int {
	count := 0
	curS, curD := s, d
	for {
		ps, okS := ss.Parent(curS)
		pd, okD := sd.Parent(curD)
		if !okS || !okD || !ms.Has(ps, pd) {
			return count
		}
		count++
		curS, curD = ps, pd
	}
}

func parentDice(ss *decomp.CompletePostOrder, sd *decomp.BreadthFirst, ms *mapping.MonoMappingStore, s, d decomp.IdD) float64 {
	ps, okS := ss.Parent(s)
	pd, okD := sd.Parent(d)
	if !okS || !okD {
		return 0
	}
	srcDesc := ss.DescendantsOf(ps)
	dstDesc := decomp.Descendants(sd, pd)
	common := similarity.CommonDescendants(srcDesc, dstDesc, ms)
	return similarity.Dice(common, len(srcDesc), len(dstDesc))
}
