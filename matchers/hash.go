// Package matchers implements the GumTree greedy subtree and bottom-up
// matchers that seed the script generator's mono mapping.
package matchers

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/fitz35/hyperast-go/decomp"
)

// subtreeHashes returns, for every id in ids, a content hash over its
// type, label, and the (already-hashed) structure of its children — two
// ids hash equal iff their subtrees are isomorphic down to labels. ids is
// memoized so each id is hashed exactly once regardless of call order.
func subtreeHashes(t decomp.DTS, ids []decomp.IdD) map[decomp.IdD]uint64 {
	hashes := make(map[decomp.IdD]uint64, len(ids))
	var compute func(id decomp.IdD) uint64
	compute = func(id decomp.IdD) uint64 {
		if h, ok := hashes[id]; ok {
			return h
		}
		hasher := fnv.New64a()
		var hdr [6]byte
		hdr[0] = byte(t.Type(id))
		if label, ok := t.Label(id); ok {
			hdr[1] = 1
			binary.LittleEndian.PutUint32(hdr[2:6], label)
		}
		_, _ = hasher.Write(hdr[:])
		for _, c := range t.Children(id) {
			ch := compute(c)
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], ch)
			_, _ = hasher.Write(b[:])
		}
		h := hasher.Sum64()
		hashes[id] = h
		return h
	}
	for _, id := range ids {
		compute(id)
	}
	return hashes
}

// heights computes each id's height (0 for a leaf), memoized the same way.
func heights(t decomp.DTS, ids []decomp.IdD) map[decomp.IdD]int {
	h := make(map[decomp.IdD]int, len(ids))
	var compute func(id decomp.IdD) int
	compute = func(id decomp.IdD) int {
		if v, ok := h[id]; ok {
			return v
		}
		max := -1
		for _, c := range t.Children(id) {
			if ch := compute(c); ch > max {
				max = ch
			}
		}
		v := max + 1
		h[id] = v
		return v
	}
	for _, id := range ids {
		compute(id)
	}
	return h
}
