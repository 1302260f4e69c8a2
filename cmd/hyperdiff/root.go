package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
	logger    *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hyperdiff",
	Short: "Tree-edit-script generation over content-addressed AST trees",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = initLogging(logLevel, logFormat)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn, or error (default info; env HYPERDIFF_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "text or json")

	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(cacheCmd)
}
