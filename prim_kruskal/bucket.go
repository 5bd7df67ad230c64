package prim_kruskal

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/spanning/graph"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// MethodKruskalCounting and MethodPrimBucket name the integer-weight builders
// in logs. They are not accepted by Compute, which is generic over every weight kind.
const (
	MethodKruskalCounting = "kruskal_counting"
	MethodPrimBucket      = "prim_bucket"
)

// weightSpan returns the smallest weight and the number of distinct buckets
// needed to cover [min, max]. The difference is taken in uint64, which is exact
// for every integer kind up to 64 bits.
func weightSpan[W constraints.Integer](g *graph.Graph[W], limit int, method string) (lo W, span int, err error) {
	if g.Size() == 0 {
		return 0, 0, nil
	}
	lo, hi := g.Edge(0).Weight, g.Edge(0).Weight
	for i := 1; i < g.Size(); i++ {
		w := g.Edge(i).Weight
		if w < lo {
			lo = w
		}
		if w > hi {
			hi = w
		}
	}
	diff := uint64(hi) - uint64(lo)
	if diff >= uint64(limit) {
		return 0, 0, errors.Wrapf(ErrWeightRange, "%s: span %d+1, limit %d", method, diff, limit)
	}

	return lo, int(diff) + 1, nil
}

func bucketOf[W constraints.Integer](w, lo W) int {
	return int(uint64(w) - uint64(lo))
}

// KruskalCounting is Kruskal's algorithm with the comparison sort replaced by a
// counting sort over the integer weight range [min, max].
//
// The counting sort is stable, so edges of equal weight keep index order and
// the result is identical to Kruskal's.
//
// Error Conditions:
//   - ErrInvalidGraph : if g is nil.
//   - ErrWeightRange  : if max-min+1 exceeds MaxBuckets.
//   - ErrDisconnected : as Kruskal.
//
// Complexity: O(m + W + α(n)·m) with W = max-min+1.
func KruskalCounting[W constraints.Integer](g *graph.Graph[W], opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}
	o := resolve(opts)
	if g.Order() <= 1 {
		return built(o, MethodKruskalCounting, g.Order(), g.Size(), []int{})
	}
	lo, span, err := weightSpan(g, o.MaxBuckets, MethodKruskalCounting)
	if err != nil {
		return nil, err
	}

	// count[k+1] accumulates bucket sizes; the prefix sum turns it into offsets.
	count := make([]int, span+1)
	for i := 0; i < g.Size(); i++ {
		count[bucketOf(g.Edge(i).Weight, lo)+1]++
	}
	for k := 1; k <= span; k++ {
		count[k] += count[k-1]
	}
	order := make([]int, g.Size())
	for i := 0; i < g.Size(); i++ {
		k := bucketOf(g.Edge(i).Weight, lo)
		order[count[k]] = i
		count[k]++
	}

	return sweep(g, order, o, MethodKruskalCounting)
}

// PrimBucket is Prim's algorithm with the heap replaced by an array of buckets
// indexed by weight-min. A vertex whose key drops is appended to its new bucket;
// the old entry goes stale and is skipped on pop. Because Prim keys are not
// monotone, the scan cursor moves back whenever a lighter bucket is filled.
//
// Error Conditions:
//   - ErrInvalidGraph : if g is nil.
//   - ErrWeightRange  : if max-min+1 exceeds MaxBuckets.
//   - ErrDisconnected : if every bucket drains before all vertices are settled.
//
// Complexity: O(m + n·W) worst case, O(m + W) when keys rarely undercut the cursor.
func PrimBucket[W constraints.Integer](g *graph.Graph[W], opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}
	o := resolve(opts)
	n := g.Order()
	if n <= 1 {
		return built(o, MethodPrimBucket, n, g.Size(), []int{})
	}
	lo, span, err := weightSpan(g, o.MaxBuckets, MethodPrimBucket)
	if err != nil {
		return nil, err
	}

	adj := g.Adjacency()
	buckets := make([][]int, span)
	key := make([]int, n) // bucket index of the current key
	conn := make([]int, n)
	reached := bitset.New(uint(n))
	settled := bitset.New(uint(n))
	mst := make([]int, 0, n-1)
	cursor := 0

	settle := func(u int) {
		settled.Set(uint(u))
		for _, a := range adj[u] {
			if settled.Test(uint(a.To)) {
				continue
			}
			k := bucketOf(a.Weight, lo)
			if reached.Test(uint(a.To)) && k >= key[a.To] {
				continue
			}
			reached.Set(uint(a.To))
			key[a.To] = k
			conn[a.To] = a.Index
			buckets[k] = append(buckets[k], a.To)
			if k < cursor {
				cursor = k
			}
		}
	}

	settle(0)
	for len(mst) < n-1 {
		for cursor < span && len(buckets[cursor]) == 0 {
			cursor++
		}
		if cursor == span {
			return nil, disconnected(o, MethodPrimBucket, n, len(mst))
		}
		b := buckets[cursor]
		v := b[len(b)-1]
		buckets[cursor] = b[:len(b)-1]
		if settled.Test(uint(v)) || key[v] != cursor {
			continue
		}
		mst = append(mst, conn[v])
		settle(v)
	}

	return built(o, MethodPrimBucket, n, g.Size(), mst)
}
