// Package treeview defines the narrow interface the Borůvka engine consumes
// from an external spatial tree (KD-tree or Ball-tree), plus the node-to-node
// lower-bound oracles the dual-tree traversal prunes with.
//
// The tree implementation itself — how nodes are built, split, and stored —
// is deliberately out of scope: this package only names what the traversal
// needs to read off an already-built tree (per-node bounds, the point-index
// permutation, and a bulk kNN query entry point), and provides the two
// lower-bound formulas spec'd for KD-tree and Ball-tree node pairs.
package treeview
