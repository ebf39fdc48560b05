package main

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/ghs/builder"
	"github.com/katalvlaran/ghs/config"
	"github.com/katalvlaran/ghs/core"
)

var errNoTopology = errors.New("give a topology file or --topology")

// genFlags describe a generated network.
type genFlags struct {
	topology   string
	nodes      int
	prob       float64
	weightSeed int64
	weights    string
	distinct   bool
	ids        string
	idBase     uint64
	idStep     uint64
}

func (f *genFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.topology, "topology", "t", "", "generate: path, cycle, star, wheel, complete, grid, sparse, random")
	fs.IntVarP(&f.nodes, "nodes", "n", 8, "node count (side length for grid)")
	fs.Float64VarP(&f.prob, "prob", "p", 0.2, "extra-link probability for sparse and random")
	fs.Int64Var(&f.weightSeed, "graph-seed", 1, "seed for generated links and weights")
	fs.StringVar(&f.weights, "weights", "uniform", "weights: uniform, constant, sequential, normal, exponential")
	fs.BoolVar(&f.distinct, "distinct", true, "force pairwise distinct weights")
	fs.StringVar(&f.ids, "ids", "default", "node ids: default, offset, stride, permuted")
	fs.Uint64Var(&f.idBase, "id-base", 1, "first id for offset and stride")
	fs.Uint64Var(&f.idStep, "id-step", 10, "id gap for stride")
}

// size is the node count of the generated network.
func (f *genFlags) size() int {
	if f.topology == "grid" {
		return f.nodes * f.nodes
	}
	return f.nodes
}

func (f *genFlags) idOption() (builder.BuilderOption, error) {
	switch f.ids {
	case "default":
		return builder.WithDefaultIDs(), nil
	case "offset":
		if f.idBase == 0 {
			return nil, errors.New("--id-base must be positive")
		}
		return builder.WithOffsetIDs(core.NodeID(f.idBase)), nil
	case "stride":
		if f.idBase == 0 || f.idStep == 0 {
			return nil, errors.New("--id-base and --id-step must be positive")
		}
		return builder.WithStrideIDs(core.NodeID(f.idBase), core.NodeID(f.idStep)), nil
	case "permuted":
		if f.size() < 1 {
			return nil, fmt.Errorf("permuted ids need at least one node, got %d", f.size())
		}
		return builder.WithPermutedIDs(f.size(), f.weightSeed), nil
	}

	return nil, fmt.Errorf("unknown id scheme %q", f.ids)
}

func (f *genFlags) build() (*core.Graph, error) {
	con, err := builder.ByName(f.topology, f.nodes, f.prob)
	if err != nil {
		return nil, err
	}

	ids, err := f.idOption()
	if err != nil {
		return nil, err
	}

	opts := []builder.BuilderOption{builder.WithSeed(f.weightSeed), ids}
	switch f.weights {
	case "uniform":
		opts = append(opts, builder.WithUniformWeight(1, 100))
	case "constant":
		opts = append(opts, builder.WithConstantWeight(1))
	case "sequential":
		opts = append(opts, builder.WithSequentialWeights())
	case "normal":
		opts = append(opts, builder.WithNormalWeight(50, 15))
	case "exponential":
		opts = append(opts, builder.WithExponentialWeight(0.1))
	default:
		return nil, fmt.Errorf("unknown weight scheme %q", f.weights)
	}
	if f.distinct {
		opts = append(opts, builder.WithDistinctWeights())
	}

	return builder.Build(con, opts...)
}

// sourceGraph returns the graph named by a file argument or by the
// generator flags, and a label for it.
func sourceGraph(args []string, gen *genFlags) (*core.Graph, string, error) {
	switch {
	case len(args) > 0:
		g, top, err := config.LoadTopology(args[0])
		if err != nil {
			return nil, "", err
		}
		name := top.Name
		if name == "" {
			name = args[0]
		}
		return g, name, nil
	case gen.topology != "":
		g, err := gen.build()
		if err != nil {
			return nil, "", err
		}
		return g, fmt.Sprintf("%s-%d", gen.topology, gen.nodes), nil
	}

	return nil, "", errNoTopology
}
