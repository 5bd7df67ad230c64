package dsu

import "github.com/pkg/errors"

// DisjointSet is a union-find forest with path compression and union by rank.
//
// parent[i] == i marks a root; rank[i] bounds the height of the tree rooted
// at i and is only meaningful for roots.
type DisjointSet struct {
	parent     []int
	rank       []int
	components int
}

// New returns a DisjointSet holding n singleton sets {0}, {1}, ..., {n-1}.
// A negative n is treated as zero.
// Complexity: O(n) time and memory.
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent:     make([]int, n),
		rank:       make([]int, n),
		components: n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the size of the universe n.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Components returns the current number of disjoint sets.
func (d *DisjointSet) Components() int { return d.components }

// Find returns the representative of the set containing x.
//
// The walk is iterative: a first pass climbs to the root, a second pass
// re-points every visited node directly at it.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Find(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}

	return d.find(x), nil
}

// Union merges the sets containing x and y. It returns true iff they were
// in different sets before the call.
//
// The root of lower rank is attached under the root of higher rank; on equal
// ranks root(y) goes under root(x) and root(x) gains one rank.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Union(x, y int) (bool, error) {
	if err := d.check(x); err != nil {
		return false, err
	}
	if err := d.check(y); err != nil {
		return false, err
	}

	rx, ry := d.find(x), d.find(y)
	if rx == ry {
		return false, nil
	}

	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.components--

	return true, nil
}

// Connected reports whether x and y belong to the same set.
func (d *DisjointSet) Connected(x, y int) (bool, error) {
	if err := d.check(x); err != nil {
		return false, err
	}
	if err := d.check(y); err != nil {
		return false, err
	}

	return d.find(x) == d.find(y), nil
}

func (d *DisjointSet) find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Compress.
	for x != root {
		x, d.parent[x] = d.parent[x], root
	}

	return root
}

func (d *DisjointSet) check(x int) error {
	if x < 0 || x >= len(d.parent) {
		return errors.Wrapf(ErrInvalidIndex, "element %d, universe size %d", x, len(d.parent))
	}

	return nil
}
