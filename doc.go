// Package mrmst is the facade over a dual-tree Borůvka minimum spanning
// tree engine for HDBSCAN-style clustering under mutual-reachability
// distance. It glues together unionfind, distance, treeview, coredist and
// boruvka behind a single SpanningTree call: build a distance.Oracle for
// your metric, adapt your spatial index as a treeview.TreeView, and call
// SpanningTree.
//
// The package itself holds no state and does no I/O; every operation is a
// single, synchronous, CPU-bound call. See boruvka.Driver for the engine
// this facade wraps, and treeview.TreeView for the adapter contract your
// spatial index must satisfy.
package mrmst

import (
	"context"

	"github.com/katalvlaran/mrmst/boruvka"
	"github.com/katalvlaran/mrmst/distance"
	"github.com/katalvlaran/mrmst/treeview"
)

// Edge is one spanning-tree edge, in the caller's original point-id space,
// weighted by true-distance mutual reachability.
type Edge = boruvka.Edge

// Option customizes a SpanningTree run. See boruvka.Option for the full
// set of With* constructors (WithMinSamples, WithAlpha,
// WithApproxMinSpanTree, WithLeafSize, WithNJobs, WithOnWarning).
type Option = boruvka.Option

// SpanningTree computes the minimum spanning tree of tv under mutual-
// reachability distance for the given metric, returning N-1 edges in
// insertion order. ctx is checked once between sweeps, never mid-sweep.
func SpanningTree(ctx context.Context, tv treeview.TreeView, metric distance.Kind, p float64, opts ...Option) ([]Edge, error) {
	oracle, err := distance.New(metric, p)
	if err != nil {
		return nil, err
	}

	d, err := boruvka.NewDriver(tv, oracle, opts...)
	if err != nil {
		return nil, err
	}

	return d.SpanningTree(ctx)
}
