package diff

import "github.com/fitz35/hyperast-go/decomp"

// InOrderNodes is a set-with-insertion-semantics of IdD used by Phase A's
// child alignment to track which nodes have already been placed in
// destination order.
type InOrderNodes struct {
	set map[decomp.IdD]struct{}
}

func NewInOrderNodes() *InOrderNodes {
	return &InOrderNodes{set: make(map[decomp.IdD]struct{})}
}

func (n *InOrderNodes) Push(id decomp.IdD) { n.set[id] = struct{}{} }

func (n *InOrderNodes) Contains(id decomp.IdD) bool {
	_, ok := n.set[id]
	return ok
}

func (n *InOrderNodes) RemoveAll(ids []decomp.IdD) {
	for _, id := range ids {
		delete(n.set, id)
	}
}
