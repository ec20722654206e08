package coredist

import (
	"math"
	"sync"

	"github.com/katalvlaran/mrmst/treeview"
)

// Initialize runs the bulk kNN pass against tv and returns per-point core
// distances plus the candidate edges they imply.
//
// Steps:
//  1. Query every point's m+1 nearest neighbors (rank 0 = self), splitting
//     into parallel chunks when N > 16384 and cfg.NJobs > 1.
//  2. Read off core_distance[n] = dist[n][m] (rank m, per point), in true-
//     distance units. KD-tree callers convert this to rdist afterward with
//     ConvertToRDist; that conversion lives outside Initialize so this
//     package never needs to know the metric, only the tree. When m == N
//     the tree holds only N neighbors (ranks 0..N-1), so the last rank
//     returned is used instead.
//  3. Seed initial candidate edges: for each n, scan ranks 1..m of its own
//     neighbor list in order and take the first neighbor whose own core
//     distance is <= core_distance[n]. It does not keep scanning for a
//     tighter match further down the list even though one could exist
//     when core distances tie — the first qualifying neighbor wins.
func Initialize(tv treeview.TreeView, cfg Config) (*Seed, error) {
	if cfg.MinSamples < 1 {
		return nil, ErrBadMinSamples
	}
	n := tv.N()
	if cfg.MinSamples > n {
		return nil, ErrMinSamplesTooLarge
	}

	k := cfg.MinSamples + 1 // ranks 0..m, inclusive of self
	dist, idx, err := query(tv, n, k, cfg.NJobs)
	if err != nil {
		return nil, err
	}

	coreDistance := make([]float64, n)
	for p := 0; p < n; p++ {
		rank := cfg.MinSamples
		if rank >= len(dist[p]) {
			rank = len(dist[p]) - 1
		}
		coreDistance[p] = dist[p][rank]
	}

	seed := &Seed{
		CoreDistance:      coreDistance,
		CandidatePoint:    make([]int, n),
		CandidateNeighbor: make([]int, n),
		CandidateDistance: make([]float64, n),
	}
	for p := range seed.CandidatePoint {
		seed.CandidatePoint[p] = -1
		seed.CandidateNeighbor[p] = -1
		seed.CandidateDistance[p] = math.Inf(1)
	}

	for p := 0; p < n; p++ {
		for rank := 1; rank < k && rank < len(idx[p]); rank++ {
			nb := idx[p][rank]
			if coreDistance[nb] <= coreDistance[p] {
				seed.CandidatePoint[p] = p
				seed.CandidateNeighbor[p] = nb
				seed.CandidateDistance[p] = coreDistance[p]
				break
			}
		}
	}

	return seed, nil
}

// ConvertToRDist converts every entry of coreDistance in place from true
// distance to rdist, via toRDist. Call this after Initialize for KD-tree
// runs, which store core distances (and therefore candidate distances) as
// rdist throughout the traversal.
func ConvertToRDist(coreDistance []float64, toRDist func(float64) float64) {
	for i, d := range coreDistance {
		coreDistance[i] = toRDist(d)
	}
}

// query runs the kNN pass, sequentially for small N or nJobs<=1, otherwise
// splitting points into nJobs equal contiguous chunks queried concurrently.
// Chunks write into disjoint slices of the shared dist/idx matrices and the
// function joins before returning, so results are assembled in input order
// regardless of how many workers ran.
func query(tv treeview.TreeView, n, k, nJobs int) (dist [][]float64, idx [][]int, err error) {
	points := make([]int, n)
	for i := range points {
		points[i] = i
	}

	if n <= parallelThreshold || nJobs <= 1 {
		return tv.Query(points, k)
	}

	dist = make([][]float64, n)
	idx = make([][]int, n)

	chunkSize := (n + nJobs - 1) / nJobs
	var wg sync.WaitGroup
	errs := make([]error, nJobs)
	chunks := 0
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		chunkIdx := chunks
		chunks++
		wg.Add(1)
		go func(start, end, chunkIdx int) {
			defer wg.Done()
			cd, ci, cerr := tv.Query(points[start:end], k)
			if cerr != nil {
				errs[chunkIdx] = cerr

				return
			}
			copy(dist[start:end], cd)
			copy(idx[start:end], ci)
		}(start, end, chunkIdx)
	}
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return nil, nil, e
		}
	}

	return dist, idx, nil
}
