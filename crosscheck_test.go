package mrmst_test

import (
	"context"
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/mrmst/boruvka"
	"github.com/katalvlaran/mrmst/distance"
	"github.com/katalvlaran/mrmst/internal/fixture"
	"github.com/katalvlaran/mrmst/unionfind"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mrmst"
)

// bruteEdge is one candidate edge of the complete mutual-reachability
// graph built by bruteForceMSTWeight: exactly the (source, sink, weight)
// triple Kruskal's algorithm needs, nothing more.
type bruteEdge struct {
	u, v   int
	weight float64
}

// bruteForceCoreDistances computes, for each point, its distance to its
// m-th nearest neighbor (self at rank 0) by a plain O(N^2) sort — no tree,
// no kNN shortcut, independent of anything coredist does.
func bruteForceCoreDistances(raw []float64, numFeatures, m int, euc distance.Oracle) []float64 {
	n := len(raw) / numFeatures
	out := make([]float64, n)
	for p := 0; p < n; p++ {
		pp := raw[p*numFeatures : (p+1)*numFeatures]
		ds := make([]float64, n)
		for q := 0; q < n; q++ {
			ds[q] = euc.Dist(pp, raw[q*numFeatures:(q+1)*numFeatures])
		}
		sort.Float64s(ds)
		out[p] = ds[m]
	}

	return out
}

// bruteForceMSTWeight builds the complete mutual-reachability graph over n
// points and sums the weight of its minimum spanning tree via a direct
// Kruskal pass: sort every edge ascending by weight, then walk the list
// adding an edge whenever its endpoints sit in different components of
// this package's own unionfind.UnionFind. This instance count never
// exceeds a handful of points (see seeds below), so the O(N^2) edge list
// and O(E log E) sort are cheap enough that nothing fancier is warranted —
// a full general-purpose graph type would be solving a problem this test
// doesn't have.
func bruteForceMSTWeight(t *testing.T, raw []float64, numFeatures, m int, euc distance.Oracle) float64 {
	t.Helper()
	n := len(raw) / numFeatures
	coreDist := bruteForceCoreDistances(raw, numFeatures, m, euc)

	edges := make([]bruteEdge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		pi := raw[i*numFeatures : (i+1)*numFeatures]
		for j := i + 1; j < n; j++ {
			pj := raw[j*numFeatures : (j+1)*numFeatures]
			d := euc.Dist(pi, pj)
			mr := math.Max(d, math.Max(coreDist[i], coreDist[j]))
			edges = append(edges, bruteEdge{u: i, v: j, weight: mr})
		}
	}
	sort.Slice(edges, func(a, b int) bool { return edges[a].weight < edges[b].weight })

	uf, err := unionfind.New(n)
	require.NoError(t, err)

	var total float64
	var found int
	for _, e := range edges {
		if uf.Find(e.u) == uf.Find(e.v) {
			continue
		}
		uf.Union(e.u, e.v)
		total += e.weight
		found++
		if found == n-1 {
			break
		}
	}
	require.Equal(t, n-1, found, "brute-force graph must be connected")

	return total
}

// TestRandomInstancesAgainstKruskal cross-checks the dual-tree engine's
// total MST weight against a brute-force O(N^2) mutual-reachability graph
// solved independently by Kruskal's algorithm over the same edge list.
func TestRandomInstancesAgainstKruskal(t *testing.T) {
	euc, err := distance.New(distance.Euclidean, 0)
	require.NoError(t, err)

	seeds := [][]float64{
		{0, 0, 3, 0, 0, 4, 3, 4, 1.5, 2},
		{0, 0, 1, 1, 2, 2, 3, 3, 0, 3, 3, 0},
		{0, 0, 10, 0, 5, 8, 1, 9, 9, 1, 4, 4},
	}

	for i, raw := range seeds {
		raw := raw
		t.Run(fmt.Sprintf("instance-%d", i), func(t *testing.T) {
			n := len(raw) / 2
			m := 2
			tr := fixture.NewKD(raw, 2, 2, euc)

			edges, err := mrmst.SpanningTree(context.Background(), tr, distance.Euclidean, 0,
				boruvka.WithMinSamples(m))
			require.NoError(t, err)
			require.Len(t, edges, n-1)

			var got float64
			for _, e := range edges {
				got += e.Weight
			}

			want := bruteForceMSTWeight(t, raw, 2, m, euc)

			require.InDelta(t, want, got, 1e-9*float64(n))
		})
	}
}
