// Package nodestore defines the opaque, hash-consed storage of AST nodes
// that the decompressed tree stores, matchers, and script generator are
// built on top of. The store is the only component in this module that is
// ever written to; every other package treats it as read-only.
package nodestore

import (
	"github.com/google/uuid"
)

// NodeId identifies a node inside a Store. It is opaque, comparable, and
// hashable, and is only ever produced by a Store.
type NodeId = uuid.UUID

// Type is the closed set of node kinds a Store can resolve a node to.
// It stands in for the categorical mapping a real tree-sitter-backed store
// would apply to raw grammar node kinds; that ingestion step lives outside
// this module, so nodes here simply carry their Type directly.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeFile
	TypeDirectory
	TypeClassDecl
	TypeMethodDecl
	TypeBlock
	TypeStatement
	TypeExpression
	TypeLeaf
)

func (t Type) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeDirectory:
		return "directory"
	case TypeClassDecl:
		return "class_decl"
	case TypeMethodDecl:
		return "method_decl"
	case TypeBlock:
		return "block"
	case TypeStatement:
		return "statement"
	case TypeExpression:
		return "expression"
	case TypeLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// Shared collapses Type into the coarse categories the capability
// predicates (IsDirectory, IsFile, IsTypeDeclaration) operate on.
type Shared uint8

const (
	SharedOther Shared = iota
	SharedDirectory
	SharedFile
	SharedTypeDeclaration
)

// Shared implements the original HyperAST's Type::as_shared() mapping.
func (t Type) Shared() Shared {
	switch t {
	case TypeDirectory:
		return SharedDirectory
	case TypeFile:
		return SharedFile
	case TypeClassDecl:
		return SharedTypeDeclaration
	default:
		return SharedOther
	}
}

// NodeRef is the read-only view a Store resolves a NodeId to.
type NodeRef interface {
	Type() Type
	// Label returns the interned label id and whether the node carries one.
	Label() (uint32, bool)
	// Children returns the ordered child NodeIds, or ok=false for a leaf.
	Children() ([]NodeId, bool)
	// Size is the number of nodes in the subtree rooted here, including itself.
	Size() int
	// Height is the longest root-to-leaf path length within the subtree.
	Height() int
	// SizeNoSpaces is Size with whitespace/trivia leaves excluded; this
	// reference store never models trivia, so it always equals Size.
	SizeNoSpaces() int
}

// Store resolves NodeIds to NodeRefs and hash-conses newly built nodes.
// It must be internally serialized for writes and freely shared for reads.
type Store interface {
	Resolve(id NodeId) (NodeRef, error)
	// InsertIfAbsent returns the existing NodeId for digest if one was
	// already hash-consed, otherwise calls build, stores the result under
	// digest, and returns its fresh NodeId. The second return is true when
	// build was invoked (a genuine insert).
	InsertIfAbsent(digest [8]byte, build func() NodeRef) (NodeId, bool)
	// InternLabel returns a stable label id for text, assigning a new one
	// the first time text is seen.
	InternLabel(text string) uint32
	// LabelText recovers the text a label id was interned from.
	LabelText(id uint32) string
}

// IsDirectory, IsFile, IsTypeDeclaration are the capability predicates
// exposed to consumers, implemented via Type.Shared().
func IsDirectory(n NodeRef) bool       { return n.Type().Shared() == SharedDirectory }
func IsFile(n NodeRef) bool            { return n.Type().Shared() == SharedFile }
func IsTypeDeclaration(n NodeRef) bool { return n.Type().Shared() == SharedTypeDeclaration }
