package decomp

import "github.com/fitz35/hyperast-go/nodestore"

// CompletePostOrder materializes the source-side decompressed tree: IdD
// ordering equals a post-order visit of the subtree rooted at the
// constructor's root, so the last index is always the root.
type CompletePostOrder struct {
	store    nodestore.Store
	idToNode []nodestore.NodeId
	parent   []IdD
	hasPar   []bool
	children [][]IdD
	// llds[id] is the leftmost-leaf-descendant of id: itself for a leaf,
	// otherwise the lld of its first child.
	llds []IdD
	// kr holds the keyroots in ascending IdD order: nodes with no parent,
	// or whose lld differs from their parent's lld.
	kr []IdD
}

// BuildCompletePostOrder walks store from root and assigns ids in
// post-order. Construction is O(N) in the size of the subtree.
func BuildCompletePostOrder(store nodestore.Store, root nodestore.NodeId) (*CompletePostOrder, error) {
	t := &CompletePostOrder{store: store}
	if _, err := t.visit(root); err != nil {
		return nil, err
	}
	t.computeKeyRoots()
	return t, nil
}

// visit assigns ids post-order, recording parent/children/lld as it
// unwinds: a node's post-order number is only known once all of its
// children have been numbered.
func (t *CompletePostOrder) visit(id nodestore.NodeId) (IdD, error) {
	ref, err := t.store.Resolve(id)
	if err != nil {
		return 0, err
	}
	kids, _ := ref.Children()

	childIds := make([]IdD, 0, len(kids))
	for _, k := range kids {
		cid, err := t.visit(k)
		if err != nil {
			return 0, err
		}
		childIds = append(childIds, cid)
	}

	self := IdD(len(t.idToNode))
	t.idToNode = append(t.idToNode, id)
	t.children = append(t.children, childIds)
	t.parent = append(t.parent, 0)
	t.hasPar = append(t.hasPar, false)

	var lld IdD
	if len(childIds) == 0 {
		lld = self
	} else {
		lld = t.llds[childIds[0]]
	}
	t.llds = append(t.llds, lld)

	for _, c := range childIds {
		t.parent[c] = self
		t.hasPar[c] = true
	}

	return self, nil
}

func (t *CompletePostOrder) computeKeyRoots() {
	seenLLD := make(map[IdD]IdD) // lld -> highest (rightmost-processed) id sharing it
	for id := IdD(0); id < IdD(t.Len()); id++ {
		seenLLD[t.llds[id]] = id
	}
	for lld, id := range seenLLD {
		_ = lld
		t.kr = append(t.kr, id)
	}
	// ascending order, deterministic output
	for i := 1; i < len(t.kr); i++ {
		for j := i; j > 0 && t.kr[j-1] > t.kr[j]; j-- {
			t.kr[j-1], t.kr[j] = t.kr[j], t.kr[j-1]
		}
	}
}

func (t *CompletePostOrder) Len() int                         { return len(t.idToNode) }
func (t *CompletePostOrder) Root() IdD                        { return IdD(len(t.idToNode) - 1) }
func (t *CompletePostOrder) Original(id IdD) nodestore.NodeId { return t.idToNode[id] }
func (t *CompletePostOrder) Parent(id IdD) (IdD, bool)        { return t.parent[id], t.hasPar[id] }
func (t *CompletePostOrder) Children(id IdD) []IdD            { return t.children[id] }
func (t *CompletePostOrder) LLD(id IdD) IdD                   { return t.llds[id] }
func (t *CompletePostOrder) KeyRoots() []IdD                  { return t.kr }

// DescendantsOf returns the contiguous post-order range of id's proper
// descendants, ascending.
func (t *CompletePostOrder) DescendantsOf(id IdD) []IdD {
	lo := t.llds[id]
	if lo >= id {
		return nil
	}
	out := make([]IdD, 0, id-lo)
	for i := lo; i < id; i++ {
		out = append(out, i)
	}
	return out
}

// PositionInParent returns the 0-based index of id among its parent's
// children, or 0 if id is the root.
func (t *CompletePostOrder) PositionInParent(id IdD) int {
	p, ok := t.parent[id], t.hasPar[id]
	if !ok {
		return 0
	}
	for i, c := range t.children[p] {
		if c == id {
			return i
		}
	}
	return 0
}

// IterPostOrder returns every id in post-order, i.e. simply 0..Len().
func (t *CompletePostOrder) IterPostOrder() []IdD {
	out := make([]IdD, t.Len())
	for i := range out {
		out[i] = IdD(i)
	}
	return out
}

func (t *CompletePostOrder) Type(id IdD) nodestore.Type {
	ref, err := t.store.Resolve(t.idToNode[id])
	if err != nil {
		return nodestore.TypeUnknown
	}
	return ref.Type()
}

func (t *CompletePostOrder) Label(id IdD) (uint32, bool) {
	ref, err := t.store.Resolve(t.idToNode[id])
	if err != nil {
		return 0, false
	}
	return ref.Label()
}

// Child navigates a path of child indices starting at root.
func (t *CompletePostOrder) Child(root IdD, path []int) (IdD, bool) {
	cur := root
	for _, idx := range path {
		kids := t.children[cur]
		if idx < 0 || idx >= len(kids) {
			return 0, false
		}
		cur = kids[idx]
	}
	return cur, true
}
