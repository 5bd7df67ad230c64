package incremental

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Sentinel errors for incremental maintenance.
var (
	// ErrInvalidGraph indicates a nil graph.
	ErrInvalidGraph = errors.New("incremental: graph is nil")

	// ErrPartitionedGraph indicates a new vertex with no incident edges: no
	// spanning tree of the grown graph exists.
	ErrPartitionedGraph = errors.New("incremental: new vertex has no incident edges")

	// ErrVertexID indicates that the new vertex id is not the next free id.
	ErrVertexID = errors.New("incremental: new vertex id must equal the vertex count")

	// ErrNotSpanning indicates that the given tree does not connect the
	// endpoints of the inserted edge, so it was not a spanning tree of g.
	ErrNotSpanning = errors.New("incremental: tree does not span the edge endpoints")
)

// Outcome of offering one edge to a spanning tree.
const (
	OutcomeExchanged = "exchanged" // lighter than the path maximum: swapped in
	OutcomeTie       = "tie"       // equal to the path maximum: incumbent kept
	OutcomeRedundant = "redundant" // heavier than the path maximum, or a self-loop
	OutcomeAttached  = "attached"  // lightest edge of a new vertex
)

// Options configures the updater.
type Options struct {
	// Logger receives one debug record per decision.
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithLogger routes decisions to l. A nil l keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolve(opts []Option) Options {
	o := Options{Logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
