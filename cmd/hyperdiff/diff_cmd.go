package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitz35/hyperast-go/diff"
	"github.com/fitz35/hyperast-go/testfixture"
)

var diffConfigFile string
var diffSaveCache string

var diffCmd = &cobra.Command{
	Use:   "diff <src.yaml> <dst.yaml>",
	Short: "Compute the tree-edit-script between two fixture trees",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffConfigFile, "config", "", "path to a hyperdiff.yaml config file")
	diffCmd.Flags().StringVar(&diffSaveCache, "save-cache", "", "write the merged node store to this path for reuse across runs")
}

func runDiff(cmd *cobra.Command, args []string) error {
	srcPath, dstPath := args[0], args[1]

	cfg, _, err := resolveConfig(cmd, diffConfigFile)
	if err != nil {
		return newConfigError(err)
	}

	store, srcRoot, dstRoot, err := testfixture.LoadPair(srcPath, dstPath)
	if err != nil {
		return newLoadError(srcPath+","+dstPath, err)
	}

	logger.Info("running diff pipeline", "src", srcPath, "dst", dstPath)

	_, _, ms, acts, err := diff.Run(store, srcRoot, dstRoot, cfg)
	if err != nil {
		return newPipelineError(err)
	}

	logger.Info("pipeline complete", "mappings", ms.Len(), "actions", len(acts))
	for _, a := range acts {
		fmt.Println(a.String())
	}

	if diffSaveCache != "" {
		if err := store.SaveCache(diffSaveCache); err != nil {
			return &CLIError{Kind: "cache", Message: "failed to write node store cache " + diffSaveCache, Cause: err}
		}
		logger.Info("wrote node store cache", "path", diffSaveCache)
	}
	return nil
}
