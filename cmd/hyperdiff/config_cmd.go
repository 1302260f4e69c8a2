package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fitz35/hyperast-go/config"
)

var showConfigFile string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect matcher configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved matcher configuration and its source",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configShowCmd.Flags().StringVar(&showConfigFile, "config", "", "path to a hyperdiff.yaml config file")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, v, err := config.Load(showConfigFile)
	if err != nil {
		return newConfigError(err)
	}
	if used := v.ConfigFileUsed(); used != "" {
		fmt.Println("config file:", used)
	} else {
		fmt.Println("config file: (none found, using defaults + environment)")
	}
	fmt.Printf("min-height:        %d\n", cfg.MinHeight)
	fmt.Printf("size-threshold:    %d\n", cfg.SizeThreshold)
	fmt.Printf("sim-threshold-num: %d\n", cfg.SimThresholdNum)
	fmt.Printf("sim-threshold-den: %d\n", cfg.SimThresholdDen)
	return nil
}

// resolveConfig loads defaults/file/env via config.Load and then applies any
// --min-height/--size-threshold/--sim-threshold-num/--sim-threshold-den
// flags the calling command defined and the user actually set.
func resolveConfig(cmd *cobra.Command, configFile string) (config.MatcherConfig, *viper.Viper, error) {
	cfg, v, err := config.Load(configFile)
	if err != nil {
		return config.MatcherConfig{}, nil, err
	}

	flags := cmd.Flags()
	if f := flags.Lookup("min-height"); f != nil && f.Changed {
		cfg.MinHeight, _ = flags.GetInt("min-height")
	}
	if f := flags.Lookup("size-threshold"); f != nil && f.Changed {
		cfg.SizeThreshold, _ = flags.GetInt("size-threshold")
	}
	if f := flags.Lookup("sim-threshold-num"); f != nil && f.Changed {
		cfg.SimThresholdNum, _ = flags.GetInt("sim-threshold-num")
	}
	if f := flags.Lookup("sim-threshold-den"); f != nil && f.Changed {
		cfg.SimThresholdDen, _ = flags.GetInt("sim-threshold-den")
	}

	return cfg, v, nil
}
