package treeview

import "math"

// KDBound returns a lower bound on the distance between any point of node
// a and any point of node b, using per-axis (lo, hi) node bounds. It is
// valid only for KD-tree-backed TreeViews.
//
// For each axis j, let d1 = lo[a,j] - hi[b,j] and d2 = lo[b,j] - hi[a,j];
// the axis's contribution is 0.5*((d1+|d1|)+(d2+|d2|)), i.e. max(d1,0) +
// max(d2,0) — the gap between the two boxes on that axis, zero if they
// overlap on it.
//
// p == +Inf (Chebyshev) takes the maximum contribution across axes and
// returns it directly (Chebyshev's rdist is dist, so no further
// conversion applies). Any finite p sums the contributions' p-th powers
// and returns that sum as rdist; the caller converts to true distance
// only when an edge is actually emitted.
func KDBound(tv TreeView, a, b int, p float64) float64 {
	loA, hiA := tv.KDBounds(a)
	loB, hiB := tv.KDBounds(b)

	if math.IsInf(p, 1) {
		var maxGap float64
		for j := range loA {
			c := axisGap(loA[j], hiA[j], loB[j], hiB[j])
			if c > maxGap {
				maxGap = c
			}
		}

		return maxGap
	}

	var sum float64
	for j := range loA {
		c := axisGap(loA[j], hiA[j], loB[j], hiB[j])
		sum += math.Pow(c, p)
	}

	return sum
}

// axisGap computes max(d1,0)+max(d2,0) for one axis given the two nodes'
// (lo, hi) on that axis.
func axisGap(loA, hiA, loB, hiB float64) float64 {
	d1 := loA - hiB
	d2 := loB - hiA

	return gapOf(d1) + gapOf(d2)
}

func gapOf(d float64) float64 {
	if d > 0 {
		return d
	}

	return 0
}

// BallBound returns max(0, centroidDist - radius_a - radius_b), a lower
// bound in true-distance units on the distance between any point of node a
// and any point of node b on a Ball-tree. centroidDist is the precomputed
// centroid-to-centroid distance between a and b (see CentroidTable).
func BallBound(tv TreeView, a, b int, centroidDist float64) float64 {
	ra := tv.NodeBounds(a).Radius
	rb := tv.NodeBounds(b).Radius
	d := centroidDist - ra - rb
	if d < 0 {
		return 0
	}

	return d
}
