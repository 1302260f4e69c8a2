package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitz35/hyperast-go/decomp"
	"github.com/fitz35/hyperast-go/matchers"
	"github.com/fitz35/hyperast-go/testfixture"
)

var matchConfigFile string

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Run a single matcher in isolation and print its mappings",
}

var matchSubtreeCmd = &cobra.Command{
	Use:   "subtree <src.yaml> <dst.yaml>",
	Short: "Run only the greedy top-down subtree matcher",
	Args:  cobra.ExactArgs(2),
	RunE:  runMatchSubtree,
}

var matchBottomUpCmd = &cobra.Command{
	Use:   "bottomup <src.yaml> <dst.yaml>",
	Short: "Run the subtree matcher followed by the bottom-up matcher",
	Args:  cobra.ExactArgs(2),
	RunE:  runMatchBottomUp,
}

func init() {
	for _, c := range []*cobra.Command{matchSubtreeCmd, matchBottomUpCmd} {
		c.Flags().StringVar(&matchConfigFile, "config", "", "path to a hyperdiff.yaml config file")
		c.Flags().Int("min-height", 0, "minimum subtree height to consider (overrides config)")
		c.Flags().Int("size-threshold", 0, "bottom-up optimal-match size cutoff (overrides config)")
		c.Flags().Int("sim-threshold-num", 0, "bottom-up similarity threshold numerator (overrides config)")
		c.Flags().Int("sim-threshold-den", 0, "bottom-up similarity threshold denominator (overrides config)")
	}
	matchCmd.AddCommand(matchSubtreeCmd)
	matchCmd.AddCommand(matchBottomUpCmd)
}

func decompose(srcPath, dstPath string) (*decomp.CompletePostOrder, *decomp.BreadthFirst, error) {
	store, srcRoot, dstRoot, err := testfixture.LoadPair(srcPath, dstPath)
	if err != nil {
		return nil, nil, newLoadError(srcPath+","+dstPath, err)
	}
	ss, err := decomp.BuildCompletePostOrder(store, srcRoot)
	if err != nil {
		return nil, nil, newPipelineError(err)
	}
	sd, err := decomp.BuildBreadthFirst(store, dstRoot)
	if err != nil {
		return nil, nil, newPipelineError(err)
	}
	return ss, sd, nil
}

func printMappings(ss *decomp.CompletePostOrder, sd *decomp.BreadthFirst, label string, count int) {
	fmt.Printf("%s: %d mapped pairs (src len=%d, dst len=%d)\n", label, count, ss.Len(), sd.Len())
}

func runMatchSubtree(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(cmd, matchConfigFile)
	if err != nil {
		return newConfigError(err)
	}
	ss, sd, err := decompose(args[0], args[1])
	if err != nil {
		return err
	}
	ms := matchers.MatchSubtrees(ss, sd, matchers.SubtreeMatcherConfig{MinHeight: cfg.MinHeight})
	printMappings(ss, sd, "subtree matcher", ms.Len())
	for _, p := range ms.Iter() {
		fmt.Printf("  src[%d] <-> dst[%d]\n", p.Src, p.Dst)
	}
	return nil
}

func runMatchBottomUp(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(cmd, matchConfigFile)
	if err != nil {
		return newConfigError(err)
	}
	ss, sd, err := decompose(args[0], args[1])
	if err != nil {
		return err
	}
	ms := matchers.MatchSubtrees(ss, sd, matchers.SubtreeMatcherConfig{MinHeight: cfg.MinHeight})
	matchers.MatchBottomUp(ss, sd, ms, matchers.BottomUpMatcherConfig{
		SizeThreshold:   cfg.SizeThreshold,
		SimThresholdNum: cfg.SimThresholdNum,
		SimThresholdDen: cfg.SimThresholdDen,
	})
	printMappings(ss, sd, "subtree + bottom-up matcher", ms.Len())
	for _, p := range ms.Iter() {
		fmt.Printf("  src[%d] <-> dst[%d]\n", p.Src, p.Dst)
	}
	return nil
}
