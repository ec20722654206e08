// Package distance provides the mutual-reachability engine's distance
// metrics: a closed set of Euclidean, Manhattan, Chebyshev, and Minkowski(p)
// oracles, each exposing both a "true" distance and a cheaper-to-compute
// "reduced" distance (rdist) that is a monotone transform of it.
//
// rdist exists so the dual-tree traversal can defer expensive operations —
// square roots, p-th roots — until an edge is actually about to be emitted.
// For Euclidean, rdist is squared distance; for Manhattan and Chebyshev,
// rdist is dist itself (no cheaper transform exists, so DistToRDist and
// RDistToDist are both the identity); for Minkowski(p), rdist is the
// unrooted sum of |delta|^p.
//
// Implementations are small structs (EuclideanOracle{}, ManhattanOracle{},
// ChebyshevOracle{}, MinkowskiOracle{Exp}) selected once via New. The
// Borůvka driver holds the result as an Oracle interface value, so each
// distance call in the traversal's inner loop is an interface method call.
package distance
