// Package actions defines the tagged union the script generator emits and
// the ordered list it's accumulated into.
package actions

import (
	"fmt"

	"github.com/fitz35/hyperast-go/decomp"
	"github.com/fitz35/hyperast-go/nodestore"
)

// ChildIdx is a 0-based position among a parent's children.
type ChildIdx = int

// Delete removes the subtree rooted at Tree (a source IdD, possibly a
// synthesized insert id) from the copied source tree.
type Delete struct {
	Tree decomp.IdD
}

// Insert grafts Sub (an NS node reachable from the destination tree) as
// child Idx of Parent; HasParent is false (and Parent is 0) for the root
// insert.
type Insert struct {
	Sub       nodestore.NodeId
	Parent    decomp.IdD
	HasParent bool
	Idx       ChildIdx
}

// Update changes a mapped node's label in place, without moving it.
type Update struct {
	Src, Dst decomp.IdD
	Old, New uint32
}

// Move relocates Sub to be child Idx of Parent. Sub is whichever side's
// IdD the emitting step already has in hand: Phase A's decision rule
// passes the destination IdD, align_children's LCS step passes the
// source IdD of an already-mapped child — both are valid identifiers of
// "the node being moved" from the generator's point of view.
type Move struct {
	Sub       decomp.IdD
	Parent    decomp.IdD
	HasParent bool
	Idx       ChildIdx
}

// MoveUpdate relocates and relabels in one action.
type MoveUpdate struct {
	Sub       decomp.IdD
	Parent    decomp.IdD
	HasParent bool
	Idx       ChildIdx
	Old, New  uint32
}

// Action is the closed set of edit operations; exactly one of the Delete/
// Insert/Update/Move/MoveUpdate fields below is non-nil on any value
// produced by the generator.
type Action struct {
	Delete     *Delete
	Insert     *Insert
	Update     *Update
	Move       *Move
	MoveUpdate *MoveUpdate
}

func (a Action) String() string {
	switch {
	case a.Delete != nil:
		return fmt.Sprintf("Delete{tree:%d}", a.Delete.Tree)
	case a.Insert != nil:
		if a.Insert.HasParent {
			return fmt.Sprintf("Insert{sub:%s, parent:%d, idx:%d}", a.Insert.Sub, a.Insert.Parent, a.Insert.Idx)
		}
		return fmt.Sprintf("Insert{sub:%s, parent:none, idx:%d}", a.Insert.Sub, a.Insert.Idx)
	case a.Update != nil:
		return fmt.Sprintf("Update{src:%d, dst:%d, old:%d, new:%d}", a.Update.Src, a.Update.Dst, a.Update.Old, a.Update.New)
	case a.Move != nil:
		if a.Move.HasParent {
			return fmt.Sprintf("Move{sub:%d, parent:%d, idx:%d}", a.Move.Sub, a.Move.Parent, a.Move.Idx)
		}
		return fmt.Sprintf("Move{sub:%d, parent:none, idx:%d}", a.Move.Sub, a.Move.Idx)
	case a.MoveUpdate != nil:
		return fmt.Sprintf("MoveUpdate{sub:%d, parent:%d, idx:%d, old:%d, new:%d}", a.MoveUpdate.Sub, a.MoveUpdate.Parent, a.MoveUpdate.Idx, a.MoveUpdate.Old, a.MoveUpdate.New)
	default:
		return "Action{}"
	}
}

func NewDelete(tree decomp.IdD) Action { return Action{Delete: &Delete{Tree: tree}} }

func NewInsert(sub nodestore.NodeId, parent decomp.IdD, hasParent bool, idx ChildIdx) Action {
	return Action{Insert: &Insert{Sub: sub, Parent: parent, HasParent: hasParent, Idx: idx}}
}

func NewUpdate(src, dst decomp.IdD, old, new_ uint32) Action {
	return Action{Update: &Update{Src: src, Dst: dst, Old: old, New: new_}}
}

func NewMove(sub, parent decomp.IdD, hasParent bool, idx ChildIdx) Action {
	return Action{Move: &Move{Sub: sub, Parent: parent, HasParent: hasParent, Idx: idx}}
}

func NewMoveUpdate(sub, parent decomp.IdD, hasParent bool, idx ChildIdx, old, new_ uint32) Action {
	return Action{MoveUpdate: &MoveUpdate{Sub: sub, Parent: parent, HasParent: hasParent, Idx: idx, Old: old, New: new_}}
}

// ActionsVec is the append-only ordered output of the script generator.
type ActionsVec []Action
