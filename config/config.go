// Package config holds the run configuration of the ghsmst tool and the
// topology file formats it reads and writes.
//
// Run settings are layered by viper: defaults, then an optional config file,
// then GHSMST_* environment variables, then command line flags.
package config

import (
	"github.com/spf13/viper"
)

// EnvPrefix is the environment prefix; run.max_rounds becomes GHSMST_RUN_MAX_ROUNDS.
const EnvPrefix = "GHSMST"

// Config is the complete tool configuration.
type Config struct {
	Run    RunConfig    `mapstructure:"run"`
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// RunConfig controls the round scheduler.
type RunConfig struct {
	// MaxRounds aborts a run that has not terminated after this many rounds.
	MaxRounds uint64 `mapstructure:"max_rounds"`
	// Workers > 1 steps nodes in parallel.
	Workers int `mapstructure:"workers"`
	// Shuffle interleaves inbound envelopes of different senders.
	Shuffle bool  `mapstructure:"shuffle"`
	Seed    int64 `mapstructure:"seed"`
	// Verify compares the tree with Kruskal after the run.
	Verify bool `mapstructure:"verify"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig controls what run prints.
type OutputConfig struct {
	// Format is one of edges, dot, json.
	Format  string `mapstructure:"format"`
	Weights bool   `mapstructure:"weights"`
	// Links adds the non-tree links of the network to DOT output.
	Links bool `mapstructure:"links"`
	// Metrics, when set, receives a Prometheus text dump ("-" for stdout).
	Metrics string `mapstructure:"metrics"`
	// MetricsAddr, when set, serves /metrics there until interrupted.
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Run: RunConfig{
			MaxRounds: 1 << 20,
			Workers:   1,
			Verify:    true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Format: "edges",
		},
	}
}

// SetDefaults registers Default on v.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("run.max_rounds", d.Run.MaxRounds)
	v.SetDefault("run.workers", d.Run.Workers)
	v.SetDefault("run.shuffle", d.Run.Shuffle)
	v.SetDefault("run.seed", d.Run.Seed)
	v.SetDefault("run.verify", d.Run.Verify)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.weights", d.Output.Weights)
	v.SetDefault("output.links", d.Output.Links)
	v.SetDefault("output.metrics", d.Output.Metrics)
	v.SetDefault("output.metrics_addr", d.Output.MetricsAddr)
}

// Load unmarshals v and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}
