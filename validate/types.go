package validate

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	// ErrRejected indicates that a builder produced a tree the validator refused.
	ErrRejected = errors.New("validate: builder output rejected")

	// ErrWeightMismatch indicates that builders disagree on the MST total weight.
	ErrWeightMismatch = errors.New("validate: builders disagree on total weight")
)

// Reason names the check that rejected a candidate.
type Reason int

const (
	// ReasonNone means the candidate passed every check.
	ReasonNone Reason = iota
	// ReasonBounds: a candidate index or an edge endpoint is out of range.
	ReasonBounds
	// ReasonDuplicate: a candidate index is repeated.
	ReasonDuplicate
	// ReasonSize: the candidate does not hold exactly n-1 edges.
	ReasonSize
	// ReasonCycle: the candidate edges contain a cycle.
	ReasonCycle
	// ReasonDisconnected: the candidate edges leave more than one component.
	ReasonDisconnected
	// ReasonNotMinimal: some non-candidate edge is strictly lighter than the
	// heaviest edge on the tree path it would close.
	ReasonNotMinimal
)

var reasonNames = [...]string{
	ReasonNone:         "none",
	ReasonBounds:       "index out of range",
	ReasonDuplicate:    "duplicate index",
	ReasonSize:         "wrong edge count",
	ReasonCycle:        "cycle",
	ReasonDisconnected: "not spanning",
	ReasonNotMinimal:   "not minimal",
}

func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return "unknown"
	}

	return reasonNames[r]
}

// Report is the detailed outcome of Inspect.
//
// Edge is the offending index: the candidate entry for bounds, duplicate and
// cycle failures, the non-candidate edge for ReasonNotMinimal, and -1 otherwise.
type Report struct {
	Valid  bool
	Reason Reason
	Edge   int
}

// Options configures validation.
type Options struct {
	// Logger receives a debug record for every rejection.
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithLogger routes rejection diagnostics to l. A nil l keeps the no-op logger.
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
