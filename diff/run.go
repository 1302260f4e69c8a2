package diff

import (
	"github.com/fitz35/hyperast-go/actions"
	"github.com/fitz35/hyperast-go/config"
	"github.com/fitz35/hyperast-go/decomp"
	"github.com/fitz35/hyperast-go/mapping"
	"github.com/fitz35/hyperast-go/matchers"
	"github.com/fitz35/hyperast-go/nodestore"
)

// Run wires the full pipeline: decompress both trees, run the subtree
// matcher then the bottom-up matcher over the same mapping, and generate
// the edit script from the result. It is what the CLI and the round-trip
// tests call instead of driving each component by hand.
func Run(store nodestore.Store, srcRoot, dstRoot nodestore.NodeId, cfg config.MatcherConfig) (*decomp.CompletePostOrder, *decomp.BreadthFirst, *mapping.MonoMappingStore, actions.ActionsVec, error) {
	ss, err := decomp.BuildCompletePostOrder(store, srcRoot)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	sd, err := decomp.BuildBreadthFirst(store, dstRoot)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	ms := matchers.MatchSubtrees(ss, sd, matchers.SubtreeMatcherConfig{MinHeight: cfg.MinHeight})
	matchers.MatchBottomUp(ss, sd, ms, matchers.BottomUpMatcherConfig{
		SizeThreshold:   cfg.SizeThreshold,
		SimThresholdNum: cfg.SimThresholdNum,
		SimThresholdDen: cfg.SimThresholdDen,
	})

	acts, err := Generate(ss, sd, ms)
	if err != nil {
		return ss, sd, ms, nil, err
	}
	return ss, sd, ms, acts, nil
}
