// Package fixture builds minimal, in-memory KD-tree and Ball-tree
// implementations of treeview.TreeView for use in tests and benchmarks.
//
// The real spatial trees are an external collaborator the core module
// deliberately does not implement; this package is a
// small reference builder — recursive median-split partitioning over a
// fixed heap-indexed node array (node n's children are 2n+1 and 2n+2, per
// treeview's documented id scheme) — good enough to exercise the dual-tree
// traversal's pruning logic end to end without pulling in a production
// spatial index.
package fixture
