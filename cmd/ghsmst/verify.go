package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/ghs/core"
	"github.com/katalvlaran/ghs/sim"
)

func newVerifyCmd(v *viper.Viper) *cobra.Command {
	var (
		gen    genFlags
		trials int
	)

	cmd := &cobra.Command{
		Use:   "verify [topology-file]",
		Short: "Run repeatedly with shuffled delivery and check every tree",
		Long: `Run the protocol several times with different delivery interleavings
(seeds --seed, --seed+1, ...) and check that every run yields the Kruskal
tree and that all runs agree.`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(v, cmd.Flags(), runFlagKeys)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if trials < 1 {
				return fmt.Errorf("--trials must be positive, got %d", trials)
			}
			cfg, log, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			g, name, err := sourceGraph(args, &gen)
			if err != nil {
				return err
			}

			var first []core.Edge
			for i := 0; i < trials; i++ {
				run := *cfg
				run.Run.Shuffle = i > 0 || cfg.Run.Shuffle
				run.Run.Seed = cfg.Run.Seed + int64(i)

				res, err := sim.Run(cmd.Context(), g, simOptions(&run, log, nil)...)
				if err != nil {
					return fmt.Errorf("trial %d: %w", i, err)
				}
				if err := sim.Verify(g, res); err != nil {
					return fmt.Errorf("trial %d: %w", i, err)
				}
				if i == 0 {
					first = res.Tree
				} else if !slices.Equal(first, res.Tree) {
					return fmt.Errorf("trial %d: tree differs from trial 0: %w", i, sim.ErrMismatch)
				}
				log.Debug().Int("trial", i).Uint64("rounds", res.Rounds).Msg("trial ok")
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s, %d trials, %d tree edges\n", name, trials, len(first))
			return err
		},
	}

	registerRunFlags(cmd)
	cmd.Flags().IntVar(&trials, "trials", 5, "number of runs")
	gen.register(cmd.Flags())

	return cmd
}
