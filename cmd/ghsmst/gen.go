package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ghs/config"
)

func newGenCmd() *cobra.Command {
	var (
		gen  genFlags
		out  string
		name string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a topology file",
		Long: `Generate a network with distinct weights and write it as TOML (default)
or YAML, chosen by the --out extension.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if gen.topology == "" {
				return errNoTopology
			}
			g, err := gen.build()
			if err != nil {
				return err
			}
			if name == "" {
				name = gen.topology
			}
			top := config.TopologyOf(name, g)

			if out == "" {
				return top.Encode(cmd.OutOrStdout(), config.FormatTOML)
			}
			format, err := config.FormatOf(out)
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := top.Encode(f, format); err != nil {
				f.Close()
				return err
			}

			return f.Close()
		},
	}

	gen.register(cmd.Flags())
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (.toml, .yaml); stdout when empty")
	cmd.Flags().StringVar(&name, "name", "", "topology name (default: the generator)")

	return cmd
}
