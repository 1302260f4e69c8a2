package diff_test

import (
	"testing"

	"github.com/fitz35/hyperast-go/actions"
	"github.com/fitz35/hyperast-go/config"
	"github.com/fitz35/hyperast-go/decomp"
	"github.com/fitz35/hyperast-go/diff"
	"github.com/fitz35/hyperast-go/nodestore"
	"github.com/fitz35/hyperast-go/testfixture"
)

// Running the full pipeline over example_action produces a Delete for
// the orphaned leaf "i", an Insert for the brand new node "x", at least
// one Move, and an Update renaming the root from "a" to "Z".
func TestGenerateExampleAction(t *testing.T) {
	p := testfixture.ExampleAction()
	cfg := config.MatcherConfig{MinHeight: 0, SizeThreshold: 1000, SimThresholdNum: 1, SimThresholdDen: 2}

	ss, sd, _, acts, err := diff.Run(p.Store, p.SrcRoot, p.DstRoot, cfg)
	if err != nil {
		t.Fatalf("diff.Run: %v", err)
	}

	iID, ok := ss.Child(ss.Root(), []int{3})
	if !ok {
		t.Fatal("could not navigate to src/i")
	}
	if !hasDelete(acts, iID) {
		t.Errorf("expected a Delete for src/i (id %d)", iID)
	}

	xID, ok := sd.Child(sd.Root(), []int{2})
	if !ok {
		t.Fatal("could not navigate to dst/x")
	}
	if !hasInsertOf(acts, sd.Original(xID)) {
		t.Errorf("expected an Insert for dst/x")
	}

	if !hasAnyMove(acts) {
		t.Errorf("expected at least one Move action")
	}

	u := findRootUpdate(acts, ss.Root(), sd.Root())
	if u == nil {
		t.Fatalf("expected an Update on the root")
	}
	oldText := p.Store.LabelText(u.Old)
	newText := p.Store.LabelText(u.New)
	if oldText != "a" || newText != "Z" {
		t.Errorf("root Update old/new = %q/%q, want a/Z", oldText, newText)
	}
}

func hasDelete(acts actions.ActionsVec, id decomp.IdD) bool {
	for _, a := range acts {
		if a.Delete != nil && a.Delete.Tree == id {
			return true
		}
	}
	return false
}

func hasInsertOf(acts actions.ActionsVec, nodeID nodestore.NodeId) bool {
	for _, a := range acts {
		if a.Insert != nil && a.Insert.Sub == nodeID {
			return true
		}
	}
	return false
}

func hasAnyMove(acts actions.ActionsVec) bool {
	for _, a := range acts {
		if a.Move != nil {
			return true
		}
	}
	return false
}

func findRootUpdate(acts actions.ActionsVec, srcRoot, dstRoot decomp.IdD) *actions.Update {
	for _, a := range acts {
		if a.Update != nil && a.Update.Src == srcRoot && a.Update.Dst == dstRoot {
			return a.Update
		}
	}
	return nil
}
