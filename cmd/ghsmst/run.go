package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/ghs/config"
	"github.com/katalvlaran/ghs/core"
	"github.com/katalvlaran/ghs/render"
	"github.com/katalvlaran/ghs/sim"
	"github.com/katalvlaran/ghs/telemetry"
)

// runFlagKeys maps viper keys to the flags shared by run and verify.
var runFlagKeys = map[string]string{
	"run.max_rounds": "max-rounds",
	"run.workers":    "workers",
	"run.shuffle":    "shuffle",
	"run.seed":       "seed",
}

func registerRunFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Uint64("max-rounds", config.Default().Run.MaxRounds, "abort after this many rounds")
	fs.Int("workers", 1, "step nodes on this many goroutines")
	fs.Bool("shuffle", false, "interleave deliveries from different senders")
	fs.Int64("seed", 0, "shuffle seed")
}

func newRunCmd(v *viper.Viper) *cobra.Command {
	var gen genFlags

	cmd := &cobra.Command{
		Use:   "run [topology-file]",
		Short: "Run the protocol and print the spanning tree",
		Long: `Run the protocol over a TOML or YAML topology file, or over a network
generated with --topology, and print the resulting tree.`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			keys := map[string]string{
				"run.verify":          "verify",
				"output.format":       "format",
				"output.weights":      "show-weights",
				"output.links":        "show-links",
				"output.metrics":      "metrics",
				"output.metrics_addr": "metrics-addr",
			}
			for k, f := range runFlagKeys {
				keys[k] = f
			}
			return bindFlags(v, cmd.Flags(), keys)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			g, name, err := sourceGraph(args, &gen)
			if err != nil {
				return err
			}

			var metrics *telemetry.Metrics
			if cfg.Output.Metrics != "" || cfg.Output.MetricsAddr != "" {
				metrics = telemetry.New()
			}
			res, err := sim.Run(cmd.Context(), g, simOptions(cfg, log, metrics)...)
			if err != nil {
				return err
			}
			if cfg.Run.Verify {
				if err := sim.Verify(g, res); err != nil {
					return err
				}
			}

			if err := writeResult(cmd.OutOrStdout(), name, g, res, cfg.Output); err != nil {
				return err
			}
			if cfg.Output.Metrics != "" {
				if err := dumpMetrics(cmd.OutOrStdout(), cfg.Output.Metrics, metrics); err != nil {
					return err
				}
			}
			if cfg.Output.MetricsAddr == "" {
				return nil
			}

			ln, err := net.Listen("tcp", cfg.Output.MetricsAddr)
			if err != nil {
				return err
			}
			log.Info().Str("addr", ln.Addr().String()).Msg("serving metrics until interrupted")
			return serveMetrics(cmd.Context(), ln, metrics)
		},
	}

	registerRunFlags(cmd)
	fs := cmd.Flags()
	fs.Bool("verify", true, "check the tree against Kruskal")
	fs.StringP("format", "f", "edges", "output: edges, dot, json")
	fs.Bool("show-weights", false, "label DOT edges with weights")
	fs.Bool("show-links", false, "draw the non-tree links dotted in DOT output")
	fs.String("metrics", "", "write Prometheus metrics to this file (- for stdout)")
	fs.String("metrics-addr", "", "after the run, serve /metrics on this address until interrupted")
	gen.register(fs)

	return cmd
}

func simOptions(cfg *config.Config, log zerolog.Logger, m *telemetry.Metrics) []sim.Option {
	opts := []sim.Option{
		sim.WithMaxRounds(cfg.Run.MaxRounds),
		sim.WithParallel(cfg.Run.Workers),
		sim.WithLogger(log),
	}
	if cfg.Run.Shuffle {
		opts = append(opts, sim.WithShuffle(cfg.Run.Seed))
	}
	if m != nil {
		opts = append(opts, sim.WithMetrics(m))
	}

	return opts
}

// summary is the json output of run.
type summary struct {
	RunID    string         `json:"run_id"`
	Name     string         `json:"name"`
	Root     core.NodeID    `json:"root"`
	Rounds   uint64         `json:"rounds"`
	Phases   uint32         `json:"phases"`
	Height   int            `json:"height"`
	Weight   float64        `json:"weight"`
	Tree     []core.Edge    `json:"tree"`
	Messages map[string]int `json:"messages"`
	Deferred int            `json:"deferred"`
	Merges   int            `json:"merges"`
}

func writeResult(w io.Writer, name string, g *core.Graph, res *sim.Result, out config.OutputConfig) error {
	switch out.Format {
	case "dot":
		opts := []render.Option{render.WithName(name), render.WithRoot(res.Root)}
		if out.Weights {
			opts = append(opts, render.WithWeights())
		}
		if out.Links {
			opts = append(opts, render.WithGraph(g))
		}
		return render.DOT(w, res.Tree, opts...)

	case "json":
		s := summary{
			RunID:    res.RunID.String(),
			Name:     name,
			Root:     res.Root,
			Rounds:   res.Rounds,
			Phases:   res.Phases,
			Height:   res.Height,
			Weight:   res.TotalWeight,
			Tree:     res.Tree,
			Messages: make(map[string]int, len(res.Messages)),
			Deferred: res.Deferred,
			Merges:   res.Merges,
		}
		if s.Tree == nil {
			s.Tree = []core.Edge{}
		}
		for f, c := range res.Messages {
			s.Messages[f.String()] = c
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	for _, e := range res.Tree {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "# %s: %d nodes, weight %g, root %d, %d rounds, %d phases, %d messages\n",
		name, g.Order(), res.TotalWeight, res.Root, res.Rounds, res.Phases, res.MessageTotal())

	return err
}
