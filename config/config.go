// Package config layers the matcher thresholds through viper: defaults,
// an optional YAML file, and HYPERDIFF_* environment variables, following
// nanostore's cobra CLI viper setup (config file discovery + env prefix +
// dash/underscore key replacement).
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// MatcherConfig holds every tunable the subtree and bottom-up matchers
// need, resolved from defaults, a YAML file, and the environment.
type MatcherConfig struct {
	MinHeight       int `mapstructure:"min-height"`
	SizeThreshold   int `mapstructure:"size-threshold"`
	SimThresholdNum int `mapstructure:"sim-threshold-num"`
	SimThresholdDen int `mapstructure:"sim-threshold-den"`
}

// Default mirrors the original GumTree defaults this module was ported
// from: MIN_HEIGHT=1, SIZE_THRESHOLD=1000, SIM_THRESHOLD=1/2.
func Default() MatcherConfig {
	return MatcherConfig{
		MinHeight:       1,
		SizeThreshold:   1000,
		SimThresholdNum: 1,
		SimThresholdDen: 2,
	}
}

// Load builds a viper instance layering Default() under an optional YAML
// config file and HYPERDIFF_* environment variables, and decodes it into
// a MatcherConfig. configFile may be empty, in which case the file named by
// HYPERDIFF_CONFIG is used when that variable is set, and otherwise the
// default search paths (./hyperdiff.yaml, $HOME/.hyperdiff, /etc/hyperdiff)
// are consulted; a missing file at any of those search paths is not an
// error.
func Load(configFile string) (MatcherConfig, *viper.Viper, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("min-height", d.MinHeight)
	v.SetDefault("size-threshold", d.SizeThreshold)
	v.SetDefault("sim-threshold-num", d.SimThresholdNum)
	v.SetDefault("sim-threshold-den", d.SimThresholdDen)

	if envFile := os.Getenv("HYPERDIFF_CONFIG"); configFile == "" && envFile != "" {
		configFile = envFile
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("hyperdiff")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.hyperdiff")
		v.AddConfigPath("/etc/hyperdiff")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("HYPERDIFF")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return MatcherConfig{}, nil, err
		}
	}

	var cfg MatcherConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return MatcherConfig{}, nil, err
	}
	return cfg, v, nil
}
