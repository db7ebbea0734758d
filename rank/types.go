// Package rank options, defaults, and sentinel errors shared by both engines.
package rank

import "errors"

// Defaults applied by DefaultOptions.
const (
	// DefaultAlpha is the conventional PageRank damping factor.
	DefaultAlpha = 0.85

	// DefaultIterations is the Power Iteration step count when none is given.
	DefaultIterations = 100

	// DefaultWalksPerNode is the Random Walk trajectory count per start node.
	DefaultWalksPerNode = 100
)

// SumTolerance bounds the acceptable drift of a score vector's sum from 1.
// Normalize rescales only when the drift exceeds this tolerance.
const SumTolerance = 1e-6

// progressIterationStride is how many Power Iteration steps pass between
// progress reports.
const progressIterationStride = 10

// Sentinel errors for engine invocation.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to an engine.
	ErrNilGraph = errors.New("rank: graph is nil")

	// ErrResultLength indicates the caller-allocated result slice does not
	// have exactly one slot per node.
	ErrResultLength = errors.New("rank: result length must equal node count")

	// ErrBadAlpha indicates alpha outside the open interval (0,1).
	ErrBadAlpha = errors.New("rank: alpha must lie in (0,1)")

	// ErrNegativeIterations indicates a negative Power Iteration step count.
	ErrNegativeIterations = errors.New("rank: iterations must be non-negative")

	// ErrNegativeWalks indicates a negative walks-per-node count.
	ErrNegativeWalks = errors.New("rank: walks per node must be non-negative")
)

// ProgressFunc receives coarse completion percentages in [0,100] so a host
// can update a UI. It is fire-and-forget: engines ignore anything it does.
type ProgressFunc func(percent int)

// Options configures both estimation engines. Fields irrelevant to an engine
// are ignored by it (Iterations by RandomWalk, WalksPerNode and Seed by
// PowerIteration).
type Options struct {
	// Alpha is the damping factor: the probability of following an outgoing
	// edge rather than teleporting. In RandomWalk it doubles as the walk
	// continuation probability, which makes walk lengths geometric.
	Alpha float64

	// Iterations is the exact number of synchronous update steps
	// PowerIteration performs. Zero leaves the initial uniform vector as is.
	Iterations int

	// WalksPerNode is the number of independent trajectories RandomWalk
	// starts from every node. Zero triggers the uniform-distribution fallback.
	WalksPerNode int

	// Seed deterministically seeds RandomWalk's instance-local generator:
	// same seed, graph, and options reproduce the output exactly.
	Seed uint64

	// OnProgress is invoked at coarse checkpoints with a percentage.
	// Defaults to a no-op.
	OnProgress ProgressFunc
}

// Option is a functional option for configuring an engine invocation.
type Option func(*Options)

// DefaultOptions returns the engine defaults:
// Alpha 0.85, 100 iterations, 100 walks per node, seed 1, no-op progress hook.
func DefaultOptions() Options {
	return Options{
		Alpha:        DefaultAlpha,
		Iterations:   DefaultIterations,
		WalksPerNode: DefaultWalksPerNode,
		Seed:         1,
		OnProgress:   func(int) {},
	}
}

// WithAlpha sets the damping factor. Values outside (0,1) surface as
// ErrBadAlpha when the engine runs.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithIterations sets the exact Power Iteration step count.
func WithIterations(iterations int) Option {
	return func(o *Options) { o.Iterations = iterations }
}

// WithWalksPerNode sets the Random Walk trajectory count per start node.
func WithWalksPerNode(walks int) Option {
	return func(o *Options) { o.WalksPerNode = walks }
}

// WithSeed seeds the Random Walk generator for reproducible estimates.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithProgress registers a host progress hook; nil is ignored.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}

// buildOptions folds opts over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
