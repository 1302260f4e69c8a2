package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitz35/hyperast-go/nodestore"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect node store cache files written by diff --save-cache",
}

var cacheInspectCmd = &cobra.Command{
	Use:   "inspect <path>",
	Short: "Load a cache file and report how many nodes it holds",
	Args:  cobra.ExactArgs(1),
	RunE:  runCacheInspect,
}

func init() {
	cacheCmd.AddCommand(cacheInspectCmd)
}

func runCacheInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	store, err := nodestore.LoadCache(path)
	if err != nil {
		return &CLIError{Kind: "load", Message: "failed to load cache " + path, Cause: err}
	}
	fmt.Printf("cache %q: %d nodes\n", path, store.Len())
	return nil
}
