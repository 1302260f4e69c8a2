package nodestore

import (
	"encoding/binary"
	"hash/fnv"
	"sync"

	"github.com/google/uuid"
)

// node is the concrete NodeRef the in-memory store resolves to.
type node struct {
	typ      Type
	label    uint32
	hasLabel bool
	children []NodeId
	size     int
	height   int
}

func (n *node) Type() Type                 { return n.typ }
func (n *node) Label() (uint32, bool)      { return n.label, n.hasLabel }
func (n *node) Children() ([]NodeId, bool) { return n.children, len(n.children) > 0 }
func (n *node) Size() int                  { return n.size }
func (n *node) Height() int                { return n.height }
func (n *node) SizeNoSpaces() int          { return n.size }

// MemStore is a hash-consed, in-memory Store. It is the reference
// implementation the decompressed tree stores, matchers, and generator are
// exercised against in this repository; a tree-sitter-backed store would
// satisfy the same Store interface without either side changing.
//
// Reads take the shared lock; InsertIfAbsent takes the exclusive lock for
// the duration of build(), a single-writer/many-reader policy.
type MemStore struct {
	mu         sync.RWMutex
	nodes      map[NodeId]*node
	byDigest   map[[8]byte]NodeId
	labels     []string
	labelIndex map[string]uint32
}

// NewMemStore returns an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		nodes:      make(map[NodeId]*node),
		byDigest:   make(map[[8]byte]NodeId),
		labelIndex: make(map[string]uint32),
	}
}

func (s *MemStore) Resolve(id NodeId) (NodeRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return n, nil
}

func (s *MemStore) InsertIfAbsent(digest [8]byte, build func() NodeRef) (NodeId, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.byDigest[digest]; ok {
		return id, false
	}
	built := build()
	n, ok := built.(*node)
	if !ok {
		// Accept any NodeRef implementation by copying its fields; keeps
		// InsertIfAbsent usable from outside this package.
		children, _ := built.Children()
		label, hasLabel := built.Label()
		n = &node{
			typ:      built.Type(),
			label:    label,
			hasLabel: hasLabel,
			children: children,
			size:     built.Size(),
			height:   built.Height(),
		}
	}
	id := uuid.New()
	s.nodes[id] = n
	s.byDigest[digest] = id
	return id, true
}

func (s *MemStore) InternLabel(text string) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.labelIndex[text]; ok {
		return id
	}
	id := uint32(len(s.labels))
	s.labels = append(s.labels, text)
	s.labelIndex[text] = id
	return id
}

func (s *MemStore) LabelText(id uint32) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if int(id) >= len(s.labels) {
		return ""
	}
	return s.labels[id]
}

// Len reports how many distinct nodes the store currently holds.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// Build constructs a node from its type, optional label, and already-built
// children, hash-conses it, and returns its NodeId. It is the convenience
// fixture/demo builders use instead of hand-rolling digests; production
// ingestion (tree-sitter CST walking) is out of scope for this module and
// would call InsertIfAbsent directly with its own digest scheme.
func (s *MemStore) Build(typ Type, label string, hasLabel bool, children []NodeId) NodeId {
	var labelID uint32
	if hasLabel {
		labelID = s.InternLabel(label)
	}

	hasher := fnv.New64a()
	var hdr [6]byte
	hdr[0] = byte(typ)
	if hasLabel {
		hdr[1] = 1
		binary.LittleEndian.PutUint32(hdr[2:6], labelID)
	}
	_, _ = hasher.Write(hdr[:])

	size := 1
	height := 0
	for _, c := range children {
		s.mu.RLock()
		cn := s.nodes[c]
		s.mu.RUnlock()
		size += cn.size
		if cn.height+1 > height {
			height = cn.height + 1
		}
		var idBytes [16]byte
		copy(idBytes[:], c[:])
		_, _ = hasher.Write(idBytes[:])
	}

	var digest [8]byte
	binary.LittleEndian.PutUint64(digest[:], hasher.Sum64())

	id, _ := s.InsertIfAbsent(digest, func() NodeRef {
		return &node{
			typ:      typ,
			label:    labelID,
			hasLabel: hasLabel,
			children: children,
			size:     size,
			height:   height,
		}
	})
	return id
}
