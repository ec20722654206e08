package treeview

import "github.com/katalvlaran/mrmst/distance"

// CentroidTable holds precomputed pairwise centroid distances for a
// Ball-tree's M nodes, used as the fast inter-node lower bound input
// (BallBound) during traversal instead of recomputing a centroid distance
// on every node-pair visit.
type CentroidTable struct {
	m    int
	dist []float64 // flattened M*M, row-major
}

// BuildCentroidTable computes all pairwise centroid distances for a
// Ball-tree-backed TreeView using oracle. It returns ErrNotBallTree if tv
// is KD-tree-backed.
func BuildCentroidTable(tv TreeView, oracle distance.Oracle) (*CentroidTable, error) {
	if tv.Kind() != Ball {
		return nil, ErrNotBallTree
	}

	m := tv.M()
	ct := &CentroidTable{m: m, dist: make([]float64, m*m)}
	centroids := make([][]float64, m)
	for i := 0; i < m; i++ {
		centroids[i] = tv.Centroid(i)
	}

	for i := 0; i < m; i++ {
		ct.set(i, i, 0)
		for j := i + 1; j < m; j++ {
			d := oracle.Dist(centroids[i], centroids[j])
			ct.set(i, j, d)
			ct.set(j, i, d)
		}
	}

	return ct, nil
}

// Get returns the precomputed centroid distance between nodes i and j.
func (ct *CentroidTable) Get(i, j int) float64 {
	return ct.dist[i*ct.m+j]
}

func (ct *CentroidTable) set(i, j int, d float64) {
	ct.dist[i*ct.m+j] = d
}
