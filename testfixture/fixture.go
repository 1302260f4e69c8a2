// Package testfixture loads small AST trees — from YAML files or built
// directly in Go — into a nodestore.MemStore, for tests, demos, and the
// CLI's `diff`/`match` subcommands.
package testfixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fitz35/hyperast-go/nodestore"
)

// Node is the YAML-decodable shape of one fixture tree node.
type Node struct {
	Type     string `yaml:"type"`
	Label    string `yaml:"label,omitempty"`
	HasLabel bool   `yaml:"-"`
	Children []Node `yaml:"children,omitempty"`
}

// UnmarshalYAML tracks whether "label" was present at all, since an
// omitted label and an empty-string label are different fixture nodes.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	type alias Node
	var a alias
	if err := value.Decode(&a); err != nil {
		return err
	}
	*n = Node(a)
	for i := 0; i < len(value.Content); i += 2 {
		if value.Content[i].Value == "label" {
			n.HasLabel = true
		}
	}
	return nil
}

var typeNames = map[string]nodestore.Type{
	"file":        nodestore.TypeFile,
	"directory":   nodestore.TypeDirectory,
	"class_decl":  nodestore.TypeClassDecl,
	"method_decl": nodestore.TypeMethodDecl,
	"block":       nodestore.TypeBlock,
	"statement":   nodestore.TypeStatement,
	"expression":  nodestore.TypeExpression,
	"leaf":        nodestore.TypeLeaf,
}

// ParseType resolves a fixture's type name, defaulting to TypeUnknown
// rather than erroring so typo'd fixtures still load for inspection.
func ParseType(name string) nodestore.Type {
	if t, ok := typeNames[name]; ok {
		return t
	}
	return nodestore.TypeUnknown
}

// Build recursively hash-conses n (and its children) into store, bottom-up,
// and returns the root's NodeId.
func Build(store *nodestore.MemStore, n Node) nodestore.NodeId {
	children := make([]nodestore.NodeId, len(n.Children))
	for i, c := range n.Children {
		children[i] = Build(store, c)
	}
	return store.Build(ParseType(n.Type), n.Label, n.HasLabel, children)
}

// LoadFile parses a YAML fixture file and builds it into a fresh MemStore.
func LoadFile(path string) (*nodestore.MemStore, nodestore.NodeId, error) {
	n, err := parseFile(path)
	if err != nil {
		return nil, nodestore.NodeId{}, err
	}
	store := nodestore.NewMemStore()
	root := Build(store, n)
	return store, root, nil
}

// LoadPair parses two YAML fixture files and builds both into one shared
// MemStore, so hash-consing can detect subtrees identical across the two —
// the same arrangement buildPair gives the in-Go example fixtures.
func LoadPair(srcPath, dstPath string) (*nodestore.MemStore, nodestore.NodeId, nodestore.NodeId, error) {
	srcNode, err := parseFile(srcPath)
	if err != nil {
		return nil, nodestore.NodeId{}, nodestore.NodeId{}, err
	}
	dstNode, err := parseFile(dstPath)
	if err != nil {
		return nil, nodestore.NodeId{}, nodestore.NodeId{}, err
	}
	store := nodestore.NewMemStore()
	srcRoot := Build(store, srcNode)
	dstRoot := Build(store, dstNode)
	return store, srcRoot, dstRoot, nil
}

func parseFile(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Node{}, fmt.Errorf("testfixture: read %s: %w", path, err)
	}
	var n Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return Node{}, fmt.Errorf("testfixture: parse %s: %w", path, err)
	}
	return n, nil
}
