// Package unionfind implements a path-compressed, rank-balanced disjoint-set
// structure over dense integer point ids in [0, N).
//
// It backs the Borůvka driver's component tracking: every point starts as
// its own singleton component, and Union merges two components whenever the
// dual-tree traversal discovers a connecting edge. Find uses path halving
// (every other step re-parents a node to its grandparent) so it stays
// iterative and allocation-free — no recursion, no temporary slices.
//
// Complexity: Find and Union are O(α(N)) amortized; Components is O(N).
package unionfind
