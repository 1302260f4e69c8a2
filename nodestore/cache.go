package nodestore

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// snapshotNode is the on-disk shape of one MemStore node.
type snapshotNode struct {
	ID       uuid.UUID   `yaml:"id"`
	Type     Type        `yaml:"type"`
	Label    string      `yaml:"label,omitempty"`
	HasLabel bool        `yaml:"has_label"`
	Children []uuid.UUID `yaml:"children,omitempty"`
	Size     int         `yaml:"size"`
	Height   int         `yaml:"height"`
}

type snapshot struct {
	Nodes []snapshotNode `yaml:"nodes"`
}

// SaveCache writes a YAML snapshot of every node the store currently holds
// to path, guarded by a sibling ".lock" file so two hyperdiff processes
// writing to the same cache never interleave. It blocks up to 5s for the
// lock before giving up, mirroring nanostore's JSON-store file locking.
func (s *MemStore) SaveCache(path string) error {
	lock := flock.New(path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	locked, err := lock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return fmt.Errorf("nodestore: acquiring cache lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("nodestore: cache %q is locked by another process", path)
	}
	defer func() { _ = lock.Unlock() }()

	s.mu.RLock()
	snap := snapshot{Nodes: make([]snapshotNode, 0, len(s.nodes))}
	for id, n := range s.nodes {
		label := ""
		if n.hasLabel {
			label = s.labels[n.label]
		}
		snap.Nodes = append(snap.Nodes, snapshotNode{
			ID:       id,
			Type:     n.typ,
			Label:    label,
			HasLabel: n.hasLabel,
			Children: n.children,
			Size:     n.size,
			Height:   n.height,
		})
	}
	s.mu.RUnlock()

	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("nodestore: marshaling cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("nodestore: writing cache %q: %w", path, err)
	}
	return nil
}

// LoadCache rebuilds a MemStore from a snapshot written by SaveCache.
// Reads take no lock. SaveCache writes the file in place rather than by
// rename, so a read that overlaps a write can see a partial file.
func LoadCache(path string) (*MemStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("nodestore: reading cache %q: %w", path, err)
	}
	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("nodestore: parsing cache %q: %w", path, err)
	}

	s := NewMemStore()
	for _, sn := range snap.Nodes {
		var labelID uint32
		if sn.HasLabel {
			labelID = s.InternLabel(sn.Label)
		}
		s.nodes[sn.ID] = &node{
			typ:      sn.Type,
			label:    labelID,
			hasLabel: sn.HasLabel,
			children: sn.Children,
			size:     sn.Size,
			height:   sn.Height,
		}
	}
	return s, nil
}
