// Package diff implements the Chawathe et al. tree-edit-script generator:
// given a post-order source DTS, a breadth-first destination DTS, and a
// seed mono mapping, it derives an ordered ActionsVec of Insert, Delete,
// Move, Update, and MoveUpdate operations.
package diff

import (
	"github.com/fitz35/hyperast-go/actions"
	"github.com/fitz35/hyperast-go/decomp"
	"github.com/fitz35/hyperast-go/mapping"
)

// SourceDTS is the capability set the generator needs from the source
// side: a post-order DTS that also knows each node's position among its
// parent's children.
type SourceDTS interface {
	decomp.DTS
	PositionInParent(id decomp.IdD) int
	IterPostOrder() []decomp.IdD
}

// DestDTS is the capability set the generator needs from the destination
// side: a BFS DTS whose 0..Len() iteration order is already BFS order.
type DestDTS interface {
	decomp.DTS
}

// Inserted records the position a synthesized source-side IdD (>= the
// source arena's original length) was attached at. Its parent/origin are
// carried directly in the Insert action emitted at creation time rather
// than duplicated here; Pos is the one fact later findPos/alignChildren
// calls against this same id still need.
type Inserted struct {
	Pos int
}

// Generator holds the mutable state threaded through both phases of the
// script-generation algorithm.
type Generator struct {
	ss SourceDTS
	sd DestDTS

	cpy *mapping.MonoMappingStore

	ssLen    int
	inserted []Inserted

	acts actions.ActionsVec

	srcInOrder *InOrderNodes
	dstInOrder *InOrderNodes
}

// Generate runs both phases of the script generator and returns the
// resulting action list. ms is never mutated; the generator works on an
// internal clone.
func Generate(ss SourceDTS, sd DestDTS, ms *mapping.MonoMappingStore) (actions.ActionsVec, error) {
	g := &Generator{
		ss:         ss,
		sd:         sd,
		cpy:        ms.Clone(),
		ssLen:      ss.Len(),
		srcInOrder: NewInOrderNodes(),
		dstInOrder: NewInOrderNodes(),
	}

	if err := g.phaseA(); err != nil {
		return nil, err
	}
	g.phaseB()

	return g.acts, nil
}

func (g *Generator) isSynthetic(id decomp.IdD) bool { return int(id) >= g.ssLen }

func (g *Generator) synthRecord(id decomp.IdD) *Inserted { return &g.inserted[int(id)-g.ssLen] }

// positionInParent dispatches to SS for real ids and to the recorded
// insertion position for synthesized ones.
func (g *Generator) positionInParent(id decomp.IdD) int {
	if g.isSynthetic(id) {
		return g.synthRecord(id).Pos
	}
	return g.ss.PositionInParent(id)
}

// childrenOf dispatches to SS for real ids. A synthetic id never has
// structural children at the moment align_children runs against it: it
// was only just created this same destination-BFS visit, and any
// grandchildren it eventually gains arrive via later BFS iterations that
// happen strictly after its own align_children call has returned.
func (g *Generator) childrenOf(id decomp.IdD) []decomp.IdD {
	if g.isSynthetic(id) {
		return nil
	}
	return g.ss.Children(id)
}

// makeInsertedNode allocates a fresh synthetic source IdD standing for
// destination node x, links it to x in cpy_mappings, and records the
// position it was attached at for later findPos/alignChildren lookups.
func (g *Generator) makeInsertedNode(x decomp.IdD, pos int) decomp.IdD {
	id := decomp.IdD(g.ssLen + len(g.inserted))
	g.inserted = append(g.inserted, Inserted{Pos: pos})
	g.cpy.GrowSrc(1)
	_ = g.cpy.Link(id, x)
	return id
}

func labelsEqual(av uint32, aok bool, bv uint32, bok bool) bool {
	if aok != bok {
		return false
	}
	return !aok || av == bv
}

// phaseA implements Chawathe et al.'s Phase A: one pass over the
// destination in BFS order, deciding insert/update/move/move-update/no-op
// per node and then aligning its children.
func (g *Generator) phaseA() error {
	for _, x := range g.iterDstBFS() {
		y, yHasParent := g.sd.Parent(x)
		var z decomp.IdD
		var zHasParent bool
		if yHasParent {
			if zv, ok := g.cpy.GetSrc(y); ok {
				z, zHasParent = zv, true
			}
		}

		var w decomp.IdD
		if !g.cpy.IsDst(x) {
			k := 0
			if yHasParent {
				k = g.findPos(x, y)
			}
			w = g.makeInsertedNode(x, k)
			g.acts = append(g.acts, actions.NewInsert(g.sd.Original(x), z, zHasParent, k))
		} else {
			wv, ok := g.cpy.GetSrc(x)
			if !ok {
				return &InvariantViolationError{Phase: "A", Detail: "cpy_mappings.is_dst(x) true but get_src(x) missing"}
			}
			w = wv
			v, vHasParent := g.ss.Parent(w)
			wLabel, wOk := g.ss.Label(w)
			xLabel, xOk := g.sd.Label(x)
			sameLabel := labelsEqual(wLabel, wOk, xLabel, xOk)
			// The root has no parent on either side, so it can never be
			// "moved" — sameParent is vacuously true there, leaving only
			// the label comparison able to fire (a plain Update).
			isRoot := x == g.sd.Root()
			sameParent := isRoot || (zHasParent == vHasParent && (!zHasParent || z == v))

			switch {
			case !sameLabel && !sameParent:
				k := g.findPos(x, y)
				g.acts = append(g.acts, actions.NewMoveUpdate(x, z, zHasParent, k, wLabel, xLabel))
			case !sameLabel:
				g.acts = append(g.acts, actions.NewUpdate(w, x, wLabel, xLabel))
			case !sameParent:
				k := g.findPos(x, y)
				g.acts = append(g.acts, actions.NewMove(x, z, zHasParent, k))
			}
		}

		g.srcInOrder.Push(w)
		g.dstInOrder.Push(x)
		g.alignChildren(w, x)
	}
	return nil
}

// iterDstBFS returns every destination IdD in BFS order, which for a
// DestDTS is simply its ascending index order by construction.
func (g *Generator) iterDstBFS() []decomp.IdD {
	out := make([]decomp.IdD, g.sd.Len())
	for i := range out {
		out[i] = decomp.IdD(i)
	}
	return out
}

// findPos implements Chawathe et al.'s find_pos(x, parent).
func (g *Generator) findPos(x, parent decomp.IdD) int {
	siblings := g.sd.Children(parent)
	if len(siblings) > 0 && siblings[0] == x {
		return 0
	}
	xIdx := -1
	for i, s := range siblings {
		if s == x {
			xIdx = i
			break
		}
	}
	if xIdx <= 0 {
		return 0
	}
	for i := xIdx - 1; i >= 0; i-- {
		v := siblings[i]
		if g.dstInOrder.Contains(v) {
			srcV, ok := g.cpy.GetSrc(v)
			if !ok {
				return 0
			}
			return g.positionInParent(srcV) + 1
		}
	}
	return 0
}

// alignChildren implements Chawathe et al.'s align_children(w, x).
func (g *Generator) alignChildren(w, x decomp.IdD) {
	wChildren := g.childrenOf(w)
	xChildren := g.sd.Children(x)

	g.srcInOrder.RemoveAll(wChildren)
	g.dstInOrder.RemoveAll(xChildren)

	xSet := make(map[decomp.IdD]struct{}, len(xChildren))
	for _, c := range xChildren {
		xSet[c] = struct{}{}
	}
	wSet := make(map[decomp.IdD]struct{}, len(wChildren))
	for _, c := range wChildren {
		wSet[c] = struct{}{}
	}

	var s1, s2 []decomp.IdD
	for _, c := range wChildren {
		if d, ok := g.cpy.GetDst(c); ok {
			if _, in := xSet[d]; in {
				s1 = append(s1, c)
			}
		}
	}
	for _, c := range xChildren {
		if s, ok := g.cpy.GetSrc(c); ok {
			if _, in := wSet[s]; in {
				s2 = append(s2, c)
			}
		}
	}

	matched := lcsPairs(s1, s2, g.cpy)
	inLCS := make(map[decomp.IdD]struct{}, len(matched))
	for _, p := range matched {
		g.srcInOrder.Push(p[0])
		g.dstInOrder.Push(p[1])
		inLCS[p[0]] = struct{}{}
	}

	for _, a := range s1 {
		if _, ok := inLCS[a]; ok {
			continue
		}
		b, _ := g.cpy.GetDst(a) // every s1 member was built from a successful GetDst lookup
		k := g.findPos(b, x)
		g.acts = append(g.acts, actions.NewMove(a, w, true, k))
		g.srcInOrder.Push(a)
		g.dstInOrder.Push(b)
	}
}

// lcsPairs computes the longest common subsequence of s1 against s2 under
// the predicate ms.Has(a,b), preserving order.
func lcsPairs(s1, s2 []decomp.IdD, ms *mapping.MonoMappingStore) [][2]decomp.IdD {
	n, m := len(s1), len(s2)
	if n == 0 || m == 0 {
		return nil
	}
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if ms.Has(s1[i], s2[j]) {
				dp[i][j] = dp[i+1][j+1] + 1
			} else if dp[i+1][j] >= dp[i][j+1] {
				dp[i][j] = dp[i+1][j]
			} else {
				dp[i][j] = dp[i][j+1]
			}
		}
	}
	var out [][2]decomp.IdD
	i, j := 0, 0
	for i < n && j < m {
		if ms.Has(s1[i], s2[j]) {
			out = append(out, [2]decomp.IdD{s1[i], s2[j]})
			i++
			j++
		} else if dp[i+1][j] >= dp[i][j+1] {
			i++
		} else {
			j++
		}
	}
	return out
}

// phaseB implements Chawathe et al.'s Phase B: a post-order pass over the
// source arena's original nodes followed by its synthesized inserts —
// resolved by iterating both in that order, since an insert can only be
// "kept" by having already been linked in Phase A, and any left unlinked
// (impossible in practice, since makeInsertedNode links on creation)
// would otherwise never be considered for deletion.
func (g *Generator) phaseB() {
	for _, w := range g.ss.IterPostOrder() {
		if !g.cpy.IsSrc(w) {
			g.acts = append(g.acts, actions.NewDelete(w))
		}
	}
	for i := range g.inserted {
		id := decomp.IdD(g.ssLen + i)
		if !g.cpy.IsSrc(id) {
			g.acts = append(g.acts, actions.NewDelete(id))
		}
	}
}
