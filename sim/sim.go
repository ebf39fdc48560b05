package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/ghs/bfs"
	"github.com/katalvlaran/ghs/core"
	"github.com/katalvlaran/ghs/message"
	"github.com/katalvlaran/ghs/node"
)

// Sentinel errors returned by Run and Verify.
var (
	ErrGraphNil     = errors.New("sim: graph is nil")
	ErrEmptyGraph   = errors.New("sim: graph has no nodes")
	ErrDisconnected = errors.New("sim: graph is disconnected")
	ErrMaxRounds    = errors.New("sim: round limit reached")
	ErrStalled      = errors.New("sim: no traffic left and no termination")
	ErrTermination  = errors.New("sim: inconsistent termination")
	ErrMismatch     = errors.New("sim: tree differs from the reference MST")
)

// Result summarises a completed run.
type Result struct {
	RunID uuid.UUID

	// Tree holds one normalized edge per father-son link, sorted by EdgeOrder.
	Tree        []core.Edge
	TotalWeight float64

	// Rounds is the number of rounds executed, the terminating one included.
	Rounds uint64
	// Phases is the highest phase any node reached.
	Phases uint32
	// Root raised the termination signal.
	Root core.NodeID
	// Height is the longest root-to-leaf path of the tree, in links.
	Height int

	Messages map[message.Flag]int
	Deferred int
	Merges   int

	// Nodes are the final node states in ascending id order.
	Nodes []node.Snapshot
}

// MessageTotal sums Messages over all flags.
func (r *Result) MessageTotal() int {
	total := 0
	for _, c := range r.Messages {
		total += c
	}

	return total
}

type stepOutcome struct {
	res node.StepResult
	err error
}

type runner struct {
	g     *core.Graph
	opts  Options
	log   zerolog.Logger
	ids   []core.NodeID
	nodes []*node.Node
	inbox map[core.NodeID][]message.Envelope
	rng   *rand.Rand
	res   *Result

	terminatedBy []core.NodeID
}

// Run executes the protocol on g until the termination signal.
func Run(ctx context.Context, g *core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Order() == 0 {
		return nil, ErrEmptyGraph
	}
	ok, err := bfs.Connected(g, bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("sim: connectivity: %w", err)
	}
	if !ok {
		return nil, ErrDisconnected
	}

	r, err := newRunner(g, o)
	if err != nil {
		return nil, err
	}

	r.log.Info().
		Int("nodes", g.Order()).
		Int("edges", g.Size()).
		Int("workers", o.Workers).
		Bool("shuffle", o.Shuffle).
		Msg("run started")

	res, err := r.run(ctx)
	r.finish(res, err)

	return res, err
}

func newRunner(g *core.Graph, o Options) (*runner, error) {
	id := uuid.New()
	r := &runner{
		g:     g,
		opts:  o,
		log:   o.Logger.With().Str("run", id.String()).Logger(),
		ids:   g.Nodes(),
		inbox: make(map[core.NodeID][]message.Envelope),
		rng:   rand.New(rand.NewSource(o.Seed)),
		res: &Result{
			RunID:    id,
			Messages: make(map[message.Flag]int, len(message.Flags)),
		},
	}
	for _, nid := range r.ids {
		n, err := node.New(nid, g)
		if err != nil {
			return nil, fmt.Errorf("sim: %w", err)
		}
		r.nodes = append(r.nodes, n)
	}

	return r, nil
}

func (r *runner) run(ctx context.Context) (*Result, error) {
	for round := uint64(0); ; round++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("sim: round %d: %w", round, err)
		}
		if round >= r.opts.MaxRounds {
			return nil, fmt.Errorf("sim: %d rounds: %w", round, ErrMaxRounds)
		}

		outs, err := r.step(round)
		if err != nil {
			return nil, fmt.Errorf("sim: round %d: %w", round, err)
		}
		r.res.Rounds = round + 1
		if m := r.opts.Metrics; m != nil {
			m.RoundsTotal.Inc()
		}

		next := r.route(outs)
		switch {
		case len(r.terminatedBy) > 1:
			return nil, fmt.Errorf("sim: round %d: raised by %v: %w", round, r.terminatedBy, ErrTermination)
		case len(r.terminatedBy) == 1:
			return r.collect()
		case len(next) == 0:
			return nil, fmt.Errorf("sim: round %d: %w", round, ErrStalled)
		}
		r.inbox = next
	}
}

// step runs every node once. The worker pool returns only after all nodes
// are done, which is the barrier between rounds.
func (r *runner) step(round uint64) ([]stepOutcome, error) {
	outs := make([]stepOutcome, len(r.nodes))
	do := func(i int) {
		res, err := r.nodes[i].Step(round, r.inbox[r.ids[i]])
		outs[i] = stepOutcome{res: res, err: err}
	}

	if r.opts.Workers < 2 {
		for i := range r.nodes {
			do(i)
		}
	} else {
		idx := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < r.opts.Workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range idx {
					do(i)
				}
			}()
		}
		for i := range r.nodes {
			idx <- i
		}
		close(idx)
		wg.Wait()
	}

	for i := range outs {
		if outs[i].err != nil {
			return nil, outs[i].err
		}
	}

	return outs, nil
}

// route records events and builds the next round's inboxes.
func (r *runner) route(outs []stepOutcome) map[core.NodeID][]message.Envelope {
	next := make(map[core.NodeID][]message.Envelope)
	for _, o := range outs {
		for _, m := range o.res.Messages {
			next[m.To] = append(next[m.To], m)
			r.res.Messages[m.Flag()]++
			if r.opts.Metrics != nil {
				r.opts.Metrics.ObserveMessage(m.Flag())
			}
		}
		for _, ev := range o.res.Events {
			r.record(ev)
		}
	}
	if r.opts.Shuffle {
		// Map order is random; walk ids for a reproducible rng sequence.
		for _, id := range r.ids {
			if in := next[id]; len(in) > 1 {
				next[id] = interleave(r.rng, in)
			}
		}
	}

	return next
}

func (r *runner) record(ev node.Event) {
	if r.opts.OnEvent != nil {
		r.opts.OnEvent(ev)
	}
	if ev.Phase > r.res.Phases {
		r.res.Phases = ev.Phase
	}
	m := r.opts.Metrics

	switch ev.Kind {
	case node.EventTreeEdge:
		e := ev.Edge.Normalized()
		r.res.Tree = append(r.res.Tree, e)
		r.res.TotalWeight += e.Weight
	case node.EventMergeWon, node.EventAbsorbed:
		r.res.Merges++
		if m != nil {
			kind := "won"
			if ev.Kind == node.EventAbsorbed {
				kind = "absorbed"
			}
			m.MergesTotal.WithLabelValues(kind).Inc()
		}
		r.log.Debug().
			Uint64("round", ev.Round).
			Stringer("node", ev.Node).
			Stringer("peer", ev.Peer).
			Uint32("phase", ev.Phase).
			Str("kind", ev.Kind.String()).
			Msg("merge")
	case node.EventDeferred:
		r.res.Deferred++
		if m != nil {
			m.DeferredTotal.Inc()
		}
	case node.EventPhaseStarted:
		r.log.Debug().
			Uint64("round", ev.Round).
			Stringer("root", ev.Node).
			Uint32("phase", ev.Phase).
			Msg("phase started")
	case node.EventTerminated:
		r.terminatedBy = append(r.terminatedBy, ev.Node)
		r.res.Root = ev.Node
	}
}

// collect checks the final configuration and completes the result.
func (r *runner) collect() (*Result, error) {
	roots := 0
	for _, n := range r.nodes {
		s := n.Snapshot()
		r.res.Nodes = append(r.res.Nodes, s)
		if s.Phase > r.res.Phases {
			r.res.Phases = s.Phase
		}
		if s.Father.IsRoot() {
			roots++
			if s.ID != r.res.Root {
				return nil, fmt.Errorf("sim: node %d is a root, %d terminated: %w", s.ID, r.res.Root, ErrTermination)
			}
		}
	}
	if roots != 1 {
		return nil, fmt.Errorf("sim: %d roots: %w", roots, ErrTermination)
	}
	if want := len(r.nodes) - 1; len(r.res.Tree) != want {
		return nil, fmt.Errorf("sim: %d tree edges, want %d: %w", len(r.res.Tree), want, ErrTermination)
	}
	sort.Slice(r.res.Tree, func(i, j int) bool { return core.Less(r.res.Tree[i], r.res.Tree[j]) })

	walk, err := bfs.BFS(r.g, r.res.Root, bfs.WithLinks(r.res.Tree))
	if err != nil {
		return nil, fmt.Errorf("sim: tree walk: %w", err)
	}
	if !walk.Spans(r.g) {
		return nil, fmt.Errorf("sim: tree reaches %d of %d nodes: %w", len(walk.Order), r.g.Order(), ErrTermination)
	}
	r.res.Height = walk.Height()

	return r.res, nil
}

func (r *runner) finish(res *Result, err error) {
	m := r.opts.Metrics
	if err != nil {
		r.log.Error().Err(err).Uint64("rounds", r.res.Rounds).Msg("run failed")
		if m != nil {
			m.RunsTotal.WithLabelValues("error").Inc()
		}
		return
	}

	r.log.Info().
		Stringer("root", res.Root).
		Uint64("rounds", res.Rounds).
		Uint32("phases", res.Phases).
		Int("height", res.Height).
		Int("messages", res.MessageTotal()).
		Float64("weight", res.TotalWeight).
		Msg("run finished")
	if m != nil {
		m.RunsTotal.WithLabelValues("ok").Inc()
		m.Nodes.Set(float64(len(res.Nodes)))
		m.Phase.Set(float64(res.Phases))
		m.TreeWeight.Set(res.TotalWeight)
	}
}

// interleave merges the per-sender queues of in in random order; envelopes
// of one sender keep their relative order.
func interleave(rng *rand.Rand, in []message.Envelope) []message.Envelope {
	queues := make(map[core.NodeID][]message.Envelope)
	var senders []core.NodeID
	for _, m := range in {
		if _, seen := queues[m.From]; !seen {
			senders = append(senders, m.From)
		}
		queues[m.From] = append(queues[m.From], m)
	}

	out := make([]message.Envelope, 0, len(in))
	for len(senders) > 0 {
		k := rng.Intn(len(senders))
		s := senders[k]
		out = append(out, queues[s][0])
		queues[s] = queues[s][1:]
		if len(queues[s]) == 0 {
			senders = append(senders[:k], senders[k+1:]...)
		}
	}

	return out
}
