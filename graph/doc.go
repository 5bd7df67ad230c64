// Package graph defines the immutable, index-addressed weighted graph consumed
// by every spanning-tree builder, the validator and the incremental updater.
//
// A Graph is the pair (n, edges): vertices are the integers [0, n) and each
// edge is a triple (U, V, Weight) whose identity is its position in the edge
// sequence. Two parallel edges with identical endpoints and weight are still
// different edges, and every algorithm in this module reports spanning trees
// as slices of those positions.
//
// Immutability
//
//	New copies its input. WithEdge and WithVertex return a fresh *Graph and leave
//	the receiver untouched, so a previously computed (Graph, MST) pair stays a
//	valid reference after the graph "grows".
//
// Tree projection
//
//	Tree is the adjacency view of an edge-index subset (normally a spanning
//	tree). Path and MaxOnPath walk the unique path between two vertices with an
//	explicit stack, so path length is never bounded by goroutine stack depth.
//	Both the validator's cycle-property check and the updater's edge exchange are
//	built on MaxOnPath.
//
// Weights
//
//	Weight admits every integer and floating-point kind. Weights may be zero or
//	negative; only their order matters.
package graph
