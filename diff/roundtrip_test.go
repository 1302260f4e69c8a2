package diff_test

import (
	"testing"

	"github.com/fitz35/hyperast-go/config"
	"github.com/fitz35/hyperast-go/decomp"
	"github.com/fitz35/hyperast-go/diff"
	"github.com/fitz35/hyperast-go/mapping"
	"github.com/fitz35/hyperast-go/nodestore"
	"github.com/fitz35/hyperast-go/testfixture"
)

// example_zs_paper run through the full pipeline. Hand-traced expected
// result: the bottom-up matcher's
// intra-subtree pass links the root, the shared leaf "e", and — by type
// alone, since zsMatch ignores labels — src/d to dst/c and src/d/q to
// dst/c/d, leaving src/d/c and its child src/d/c/b orphaned on the source
// side and dst/c/d/a, dst/c/d/b stranded on the destination side. That
// yields exactly two renames, two inserts, two deletes, and no moves.
func TestGenerateExampleZSPaper(t *testing.T) {
	p := testfixture.ExampleZSPaper()
	cfg := config.MatcherConfig{MinHeight: 0, SizeThreshold: 1000, SimThresholdNum: 1, SimThresholdDen: 2}

	_, _, _, acts, err := diff.Run(p.Store, p.SrcRoot, p.DstRoot, cfg)
	if err != nil {
		t.Fatalf("diff.Run: %v", err)
	}

	var inserts, deletes, updates, moves, moveUpdates int
	for _, a := range acts {
		switch {
		case a.Insert != nil:
			inserts++
		case a.Delete != nil:
			deletes++
		case a.Update != nil:
			updates++
		case a.Move != nil:
			moves++
		case a.MoveUpdate != nil:
			moveUpdates++
		}
	}

	if inserts != 2 {
		t.Errorf("inserts = %d, want 2", inserts)
	}
	if deletes != 2 {
		t.Errorf("deletes = %d, want 2", deletes)
	}
	if updates != 2 {
		t.Errorf("updates = %d, want 2", updates)
	}
	if moves != 0 {
		t.Errorf("moves = %d, want 0", moves)
	}
	if moveUpdates != 0 {
		t.Errorf("moveUpdates = %d, want 0", moveUpdates)
	}

	renamed := map[string]bool{}
	for _, a := range acts {
		if a.Update != nil {
			renamed[p.Store.LabelText(a.Update.Old)+"->"+p.Store.LabelText(a.Update.New)] = true
		}
	}
	if !renamed["d->c"] || !renamed["q->d"] {
		t.Errorf("expected renames d->c and q->d, got %v", renamed)
	}
}

// Idempotence property: regenerating from (dst, dst, identity-mapping)
// yields an empty action list, since every node already corresponds to
// itself with matching label and parent.
func TestGenerateIdempotent(t *testing.T) {
	p := testfixture.ExampleZSPaper()

	ss, err := decomp.BuildCompletePostOrder(p.Store, p.DstRoot)
	if err != nil {
		t.Fatalf("BuildCompletePostOrder: %v", err)
	}
	sd, err := decomp.BuildBreadthFirst(p.Store, p.DstRoot)
	if err != nil {
		t.Fatalf("BuildBreadthFirst: %v", err)
	}

	ms := identityMapping(ss, sd)

	acts, err := diff.Generate(ss, sd, ms)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(acts) != 0 {
		t.Errorf("expected an empty action list regenerating dst against itself, got %v", acts)
	}
}

// identityMapping links every ss/sd id pair that decompresses the same
// underlying NodeId — well-defined since ss and sd here decompress the
// very same tree, just in different traversal orders.
func identityMapping(ss *decomp.CompletePostOrder, sd *decomp.BreadthFirst) *mapping.MonoMappingStore {
	byOriginal := make(map[nodestore.NodeId]decomp.IdD, ss.Len())
	for _, s := range ss.IterPostOrder() {
		byOriginal[ss.Original(s)] = s
	}

	ms := mapping.NewMonoMappingStore()
	ms.Topit(ss.Len(), sd.Len())
	for _, d := range sd.IterBF() {
		s := byOriginal[sd.Original(d)]
		_ = ms.Link(s, d)
	}
	return ms
}
