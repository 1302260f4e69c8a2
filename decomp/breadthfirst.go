package decomp

import "github.com/fitz35/hyperast-go/nodestore"

// BreadthFirst materializes the destination-side decompressed tree: IdD
// ordering equals a BFS visit from the constructor's root, so id 0 is
// always the root and iteration in increasing IdD order is BFS order.
type BreadthFirst struct {
	store    nodestore.Store
	idToNode []nodestore.NodeId
	parent   []IdD
	hasPar   []bool
	children [][]IdD
}

// BuildBreadthFirst walks store from root, assigning ids in BFS order.
// Construction is O(N).
func BuildBreadthFirst(store nodestore.Store, root nodestore.NodeId) (*BreadthFirst, error) {
	t := &BreadthFirst{store: store}

	t.idToNode = append(t.idToNode, root)
	t.parent = append(t.parent, 0)
	t.hasPar = append(t.hasPar, false)
	t.children = append(t.children, nil)

	queue := []IdD{0}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		ref, err := store.Resolve(t.idToNode[cur])
		if err != nil {
			return nil, err
		}
		kids, _ := ref.Children()

		childIds := make([]IdD, 0, len(kids))
		for _, k := range kids {
			cid := IdD(len(t.idToNode))
			t.idToNode = append(t.idToNode, k)
			t.parent = append(t.parent, cur)
			t.hasPar = append(t.hasPar, true)
			t.children = append(t.children, nil)
			childIds = append(childIds, cid)
			queue = append(queue, cid)
		}
		t.children[cur] = childIds
	}

	return t, nil
}

func (t *BreadthFirst) Len() int                         { return len(t.idToNode) }
func (t *BreadthFirst) Root() IdD                        { return 0 }
func (t *BreadthFirst) Original(id IdD) nodestore.NodeId { return t.idToNode[id] }
func (t *BreadthFirst) Parent(id IdD) (IdD, bool)        { return t.parent[id], t.hasPar[id] }
func (t *BreadthFirst) Children(id IdD) []IdD            { return t.children[id] }

// IterBF returns every id in BFS order, i.e. simply 0..Len().
func (t *BreadthFirst) IterBF() []IdD {
	out := make([]IdD, t.Len())
	for i := range out {
		out[i] = IdD(i)
	}
	return out
}

func (t *BreadthFirst) Type(id IdD) nodestore.Type {
	ref, err := t.store.Resolve(t.idToNode[id])
	if err != nil {
		return nodestore.TypeUnknown
	}
	return ref.Type()
}

func (t *BreadthFirst) Label(id IdD) (uint32, bool) {
	ref, err := t.store.Resolve(t.idToNode[id])
	if err != nil {
		return 0, false
	}
	return ref.Label()
}

// Child navigates a path of child indices starting at root.
func (t *BreadthFirst) Child(root IdD, path []int) (IdD, bool) {
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

// PositionInParent returns the 0-based index of id among its parent's
// children, or 0 if id is the root. The generator only ever needs this on
// the source side (CompletePostOrder), but BreadthFirst carries the same
// method for symmetry.
func (t *BreadthFirst) PositionInParent(id IdD) int {
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
