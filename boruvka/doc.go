// Package boruvka implements the dual-tree Borůvka minimum spanning tree
// engine: repeated pruned dual-tree traversals over a treeview.TreeView,
// each finding a best mutual-reachability edge per component, drained into
// a union-find until a single component remains.
//
// Construct a Driver with NewDriver and call SpanningTree once; a Driver is
// single-use (its arrays are mutated in place across sweeps and are not
// safe to reuse for a second run). The traversal itself is single-threaded
// and lock-free within a sweep — the only concurrency in the whole engine
// lives in coredist's chunked kNN pass, which has already completed by the
// time NewDriver returns.
package boruvka
