// Package decomp implements the decompressed tree stores (DTS): flat,
// indexed views of a subtree reachable from a nodestore.NodeId. IdD values
// are dense, zero-based, and unique within a single store.
package decomp

import (
	"sort"

	"github.com/fitz35/hyperast-go/nodestore"
)

// IdD is a decompressed id: a dense index into a single DTS.
type IdD = uint32

// DTS is the capability set both CompletePostOrder and BreadthFirst
// satisfy; the script generator is polymorphic over it.
type DTS interface {
	Len() int
	Root() IdD
	Original(id IdD) nodestore.NodeId
	Parent(id IdD) (IdD, bool)
	Children(id IdD) []IdD
	Type(id IdD) nodestore.Type
	Label(id IdD) (uint32, bool)
	// Child navigates a path of child indices starting at root.
	Child(root IdD, path []int) (IdD, bool)
}

// Descendants collects the proper descendants of id (excluding id itself)
// in ascending IdD order, by walking Children recursively. Both DTS
// variants can serve this from first principles; CompletePostOrder also
// exposes the faster contiguous-range form via DescendantsOf.
func Descendants(t DTS, id IdD) []IdD {
	var out []IdD
	var walk func(IdD)
	walk = func(cur IdD) {
		for _, c := range t.Children(cur) {
			out = append(out, c)
			walk(c)
		}
	}
	walk(id)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
