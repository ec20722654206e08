package coredist

// parallelThreshold is the point count above which a configured worker
// count > 1 actually triggers chunked parallel querying; below it, the
// sequential path is simpler and the chunking overhead isn't worth it.
const parallelThreshold = 16384

// Config controls how Initialize queries the tree.
type Config struct {
	// MinSamples is m: core distance is measured to the m-th nearest
	// neighbor (self counted as rank 0).
	MinSamples int
	// NJobs is the worker count for the chunked kNN pass. Values <= 1
	// force the sequential path regardless of N.
	NJobs int
}

// Seed holds the output of Initialize: per-point core distances and the
// "easy" candidate edges derived directly from them, dense over [0, N) and
// ready to hand to the Borůvka driver's candidate arrays before the first
// sweep.
type Seed struct {
	// CoreDistance[n] is point n's core distance, in true-distance units
	// as returned by the tree's kNN query. KD-tree callers convert this
	// in place to rdist with ConvertToRDist before handing it to the
	// driver; Ball-tree callers use it as-is.
	CoreDistance []float64
	// CandidatePoint[n], CandidateNeighbor[n], CandidateDistance[n] form
	// the seeded candidate triple for component n (meaningful only while
	// n remains its own component root). CandidateDistance[n] is +Inf
	// where no seed candidate was found.
	CandidatePoint    []int
	CandidateNeighbor []int
	CandidateDistance []float64
}
