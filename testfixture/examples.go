package testfixture

import "github.com/fitz35/hyperast-go/nodestore"

func leaf(typ string, label string) Node {
	return Node{Type: typ, Label: label, HasLabel: true}
}

func node(typ string, label string, hasLabel bool, children ...Node) Node {
	return Node{Type: typ, Label: label, HasLabel: hasLabel, Children: children}
}

// Pair holds a fixture's store and both roots. buildPair builds both trees
// into that one shared store, so hash-consing lets identical subtrees be
// detected across src and dst.
type Pair struct {
	Store            *nodestore.MemStore
	SrcRoot, DstRoot nodestore.NodeId
}

func buildPair(src, dst Node) Pair {
	store := nodestore.NewMemStore()
	return Pair{
		Store:   store,
		SrcRoot: Build(store, src),
		DstRoot: Build(store, dst),
	}
}

// ExampleGumtree ports gumtree/src/tests/examples.rs::example_gumtree: the
// canonical GumTree worked example used to pin the greedy top-down
// subtree matcher's MIN_HEIGHT behavior. All nodes share one generic
// type except dst's "h", which carries a distinct type to mirror the
// original's type tag 1.
func ExampleGumtree() Pair {
	src := node("expression", "a", true,
		node("expression", "e", true, leaf("expression", "f")),
		node("expression", "b", true, leaf("expression", "c"), leaf("expression", "d")),
		leaf("expression", "g"),
	)
	dst := node("expression", "z", true,
		node("expression", "b", true, leaf("expression", "c"), leaf("expression", "d")),
		node("statement", "h", true,
			node("expression", "e", true, leaf("expression", "y")),
		),
		leaf("expression", "g"),
	)
	return buildPair(src, dst)
}

// ExampleBottomUp ports example_bottom_up: a 2-level Java-method-shaped
// tree used to pin the greedy bottom-up matcher's SIZE_THRESHOLD/
// SIM_THRESHOLD behavior. Types: td (class), md (method), vis
// (modifier), name (identifier), block, s (statement).
func ExampleBottomUp() Pair {
	src := node("class_decl", "", false,
		node("method_decl", "", false,
			leaf("expression", "public"), // vis
			leaf("leaf", "foo"),          // name
			node("block", "", false,
				leaf("statement", "s1"),
				leaf("statement", "s2"),
				leaf("statement", "s3"),
				leaf("statement", "s4"),
			),
		),
	)
	dst := node("class_decl", "", false,
		node("method_decl", "", false,
			leaf("expression", "private"), // vis
			leaf("leaf", "bar"),           // name
			node("block", "", false,
				leaf("statement", "s1"),
				leaf("statement", "s2"),
				leaf("statement", "s3"),
				leaf("statement", "s4"),
				leaf("statement", "s5"),
			),
		),
	)
	return buildPair(src, dst)
}

// ExampleAction ports example_action: a worked example exercising the
// Chawathe-style script generator's Delete, Insert, Move, and Update
// actions together.
func ExampleAction() Pair {
	src := node("expression", "a", true,
		node("expression", "e", true, leaf("expression", "f")),
		node("expression", "b", true, leaf("expression", "c"), leaf("expression", "d")),
		node("expression", "g", true, leaf("expression", "h")),
		leaf("expression", "i"),
		node("expression", "j", true, leaf("expression", "k")),
	)
	dst := node("expression", "Z", true,
		node("expression", "b", true, leaf("expression", "c"), leaf("expression", "d")),
		node("expression", "h", true,
			node("expression", "e", true, leaf("expression", "y")),
		),
		node("expression", "x", true, leaf("expression", "w")),
		node("expression", "j", true,
			node("expression", "u", true,
				node("expression", "v", true, leaf("expression", "k")),
			),
		),
	)
	return buildPair(src, dst)
}

// ExampleZSPaper ports example_zs_paper, the Zhang-Shasha paper's
// original worked example, used to exercise the generator's bottom-up
// optimal-match path end to end.
func ExampleZSPaper() Pair {
	src := node("expression", "f", true,
		node("expression", "d", true,
			leaf("expression", "q"),
			node("expression", "c", true, leaf("expression", "b")),
		),
		leaf("expression", "e"),
	)
	dst := node("expression", "f", true,
		node("expression", "c", true,
			node("expression", "d", true,
				leaf("expression", "a"),
				leaf("statement", "b"),
			),
		),
		leaf("expression", "e"),
	)
	return buildPair(src, dst)
}
