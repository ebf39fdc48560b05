package sim_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ghs/builder"
	"github.com/katalvlaran/ghs/core"
	"github.com/katalvlaran/ghs/prim_kruskal"
	"github.com/katalvlaran/ghs/sim"
)

// FamiliesSuite runs the protocol over every builder family with ids that
// carry no positional information, and checks the tree against both
// centralized algorithms.
type FamiliesSuite struct {
	suite.Suite
}

func (s *FamiliesSuite) build(n int, con builder.Constructor, seed int64, extra ...builder.BuilderOption) *core.Graph {
	opts := append([]builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithPermutedIDs(n, seed),
	}, extra...)
	g, err := builder.Build(con, opts...)
	s.Require().NoError(err)
	s.Require().Equal(n, g.Order())

	return g
}

func (s *FamiliesSuite) check(g *core.Graph) {
	res, err := sim.Run(context.Background(), g)
	s.Require().NoError(err)
	s.Require().NoError(sim.Verify(g, res))

	prim, w, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
	s.Require().NoError(err)
	s.Require().Len(res.Tree, len(prim))
	for i := range prim {
		s.True(core.Identical(prim[i], res.Tree[i]), "edge %d: prim %v, ghs %v", i, prim[i], res.Tree[i])
	}
	s.InDelta(w, res.TotalWeight, 1e-9)
}

func (s *FamiliesSuite) TestPath() {
	for seed := int64(1); seed <= 3; seed++ {
		s.check(s.build(12, builder.Path(12), seed))
	}
}

func (s *FamiliesSuite) TestCycle() {
	for seed := int64(1); seed <= 3; seed++ {
		s.check(s.build(11, builder.Cycle(11), seed))
	}
}

func (s *FamiliesSuite) TestStarAndWheel() {
	s.check(s.build(9, builder.Star(9), 4))
	s.check(s.build(9, builder.Wheel(9), 4))
	s.check(s.build(9, builder.Wheel(9), 5, builder.WithConstantWeight(1)))
}

func (s *FamiliesSuite) TestGrid() {
	s.check(s.build(20, builder.Grid(4, 5), 6))
	s.check(s.build(20, builder.Grid(4, 5), 7, builder.WithSequentialWeights()))
}

func (s *FamiliesSuite) TestComplete() {
	for _, n := range []int{2, 5, 10} {
		s.Run(fmt.Sprintf("K%d", n), func() {
			s.check(s.build(n, builder.Complete(n), int64(n)))
		})
	}
}

func (s *FamiliesSuite) TestRandomConnected() {
	for seed := int64(10); seed < 15; seed++ {
		s.check(s.build(15, builder.RandomConnected(15, 0.25), seed, builder.WithDistinctWeights()))
	}
}

func TestFamiliesSuite(t *testing.T) {
	suite.Run(t, new(FamiliesSuite))
}
