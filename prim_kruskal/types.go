// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and the two Prim variants via MSTOptions.
package prim_kruskal

import (
	"github.com/katalvlaran/spanning/graph"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrInvalidGraph indicates that a nil graph was passed to a builder.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. No partial forest is returned.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates that MSTOptions.Method names no builder.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// ErrWeightRange indicates that the integer weight span is too wide for the
// bucket-based builders (KruskalCounting, PrimBucket).
var ErrWeightRange = errors.New("prim_kruskal: weight range exceeds bucket limit")

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodPrimDense selects the O(n²) array-scan Prim.
const MethodPrimDense = "prim_dense"

// MethodPrimSparse selects the O(m log n) heap-based Prim with lazy deletion.
const MethodPrimSparse = "prim_sparse"

// DefaultMaxBuckets bounds the bucket array of KruskalCounting and PrimBucket.
const DefaultMaxBuckets = 1 << 20

// MSTOptions configures which MST algorithm Compute runs and how builders report.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method     string      — one of MethodKruskal, MethodPrimDense, MethodPrimSparse.
//	MaxBuckets int         — largest weight span accepted by the bucket builders.
//	Logger     *zap.Logger — debug sink; never nil after resolution.
//
// Prim always grows from vertex 0.
type MSTOptions struct {
	// Method to use when dispatching through Compute.
	Method string

	// MaxBuckets caps maxWeight-minWeight+1 for the integer builders.
	MaxBuckets int

	// Logger receives one debug record per build.
	Logger *zap.Logger
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithMaxBuckets returns an Option that sets the bucket limit of the integer builders.
// Non-positive values keep the default.
func WithMaxBuckets(k int) Option {
	return func(opts *MSTOptions) {
		if k > 0 {
			opts.MaxBuckets = k
		}
	}
}

// WithLogger returns an Option that routes build diagnostics to l. A nil l
// keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(opts *MSTOptions) {
		if l != nil {
			opts.Logger = l
		}
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method     = MethodKruskal
//	– MaxBuckets = DefaultMaxBuckets
//	– Logger     = zap.NewNop().
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:     MethodKruskal,
		MaxBuckets: DefaultMaxBuckets,
		Logger:     zap.NewNop(),
	}
}

func resolve(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on the Method option.
//
//	– MethodKruskal:    Kruskal(g).
//	– MethodPrimDense:  PrimDense(g).
//	– MethodPrimSparse: PrimSparse(g).
//	– Otherwise:        ErrUnknownMethod.
//
// Returns the MST as edge indices into g (empty when g has at most one vertex).
func Compute[W graph.Weight](g *graph.Graph[W], opts ...Option) ([]int, error) {
	o := resolve(opts)
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g, opts...)
	case MethodPrimDense:
		return PrimDense(g, opts...)
	case MethodPrimSparse:
		return PrimSparse(g, opts...)
	default:
		return nil, errors.Wrapf(ErrUnknownMethod, "%q", o.Method)
	}
}

// built logs a finished build and hands the tree back.
func built(o MSTOptions, method string, n, m int, mst []int) ([]int, error) {
	o.Logger.Debug("mst built",
		zap.String("method", method),
		zap.Int("vertices", n),
		zap.Int("edges", m),
		zap.Int("treeEdges", len(mst)))

	return mst, nil
}

// disconnected logs and wraps ErrDisconnected with the progress reached.
func disconnected(o MSTOptions, method string, n, got int) error {
	o.Logger.Debug("mst build failed: graph is disconnected",
		zap.String("method", method),
		zap.Int("vertices", n),
		zap.Int("treeEdges", got))

	return errors.Wrapf(ErrDisconnected, "%s: spanned with %d of %d edges", method, got, n-1)
}
