package fixture

import "sort"

// Query implements treeview.TreeView with a brute-force linear scan: good
// enough for the small instances exercised by tests and benchmarks, and it
// guarantees the stable-sort-on-tie behavior coredist's parallel path
// relies on.
func (t *Tree) Query(points []int, m int) (dist [][]float64, idx [][]int, err error) {
	dist = make([][]float64, len(points))
	idx = make([][]int, len(points))

	for row, p := range points {
		type cand struct {
			id int
			d  float64
		}
		cands := make([]cand, t.n)
		self := t.raw[p*t.numFeatures : (p+1)*t.numFeatures]
		for q := 0; q < t.n; q++ {
			cands[q] = cand{id: q, d: t.oracle.Dist(self, t.raw[q*t.numFeatures:(q+1)*t.numFeatures])}
		}
		sort.SliceStable(cands, func(i, j int) bool { return cands[i].d < cands[j].d })

		k := m
		if k > len(cands) {
			k = len(cands)
		}
		rowDist := make([]float64, k)
		rowIdx := make([]int, k)
		for i := 0; i < k; i++ {
			rowDist[i] = cands[i].d
			rowIdx[i] = cands[i].id
		}
		dist[row] = rowDist
		idx[row] = rowIdx
	}

	return dist, idx, nil
}
