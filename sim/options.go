package sim

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/ghs/node"
	"github.com/katalvlaran/ghs/telemetry"
)

// DefaultMaxRounds bounds a run when no limit is given.
const DefaultMaxRounds = 1 << 20

// Options configures Run. Use the With* helpers.
type Options struct {
	// MaxRounds stops the run with ErrMaxRounds once reached.
	MaxRounds uint64

	// Workers > 1 steps nodes concurrently within a round.
	Workers int

	// Shuffle interleaves the inbox of every node with a seeded source.
	Shuffle bool
	Seed    int64

	Logger  zerolog.Logger
	Metrics *telemetry.Metrics // nil disables metrics

	// OnEvent, if set, sees every event in round order.
	OnEvent func(node.Event)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a sequential, unshuffled, silent configuration.
func DefaultOptions() Options {
	return Options{
		MaxRounds: DefaultMaxRounds,
		Workers:   1,
		Logger:    zerolog.Nop(),
	}
}

// WithMaxRounds sets the round limit. Panics if n is zero.
func WithMaxRounds(n uint64) Option {
	if n == 0 {
		panic("sim: WithMaxRounds(0)")
	}

	return func(o *Options) { o.MaxRounds = n }
}

// WithParallel steps nodes on up to workers goroutines. Values below 2
// keep sequential stepping.
func WithParallel(workers int) Option {
	return func(o *Options) { o.Workers = workers }
}

// WithShuffle interleaves delivery order from different senders using seed.
func WithShuffle(seed int64) Option {
	return func(o *Options) {
		o.Shuffle = true
		o.Seed = seed
	}
}

// WithLogger routes run and phase logs to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics records run statistics into m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithEventHook registers fn for every event. Panics on nil.
func WithEventHook(fn func(node.Event)) Option {
	if fn == nil {
		panic("sim: WithEventHook(nil)")
	}

	return func(o *Options) { o.OnEvent = fn }
}
