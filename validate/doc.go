// Package validate certifies that a set of edge indices is a minimum spanning
// tree, without trusting whichever builder produced it.
//
// Validate(n, edges, candidate) runs five checks and stops at the first failure:
//
//  1. bounds     — every candidate index lies in [0, len(edges)) and every edge
//     endpoint in [0, n);
//  2. duplicates — no index appears twice;
//  3. size       — exactly n-1 indices (none when n ≤ 1);
//  4. tree       — replaying unions over the candidate never closes a cycle and
//     leaves one component;
//  5. optimality — cycle property: for each edge outside the candidate, the
//     heaviest edge on the tree path between its endpoints must not be strictly
//     heavier than it.
//
// Malformed candidates are answers, not errors: Validate returns false and
// Inspect says which check failed and at which edge. The optimality sweep costs
// O(n) per non-tree edge, O(n·m) in total; it is a correctness oracle for tests
// and certification, not a hot path.
//
// CrossCheck runs all three generic builders concurrently on one graph,
// validates each result and confirms that they agree on total weight.
package validate
