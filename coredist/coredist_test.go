package coredist_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mrmst/coredist"
	"github.com/katalvlaran/mrmst/distance"
	"github.com/katalvlaran/mrmst/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collinear5 places five points at x = 0..4 on a line.
func collinear5() []float64 {
	return []float64{0, 0, 1, 0, 2, 0, 3, 0, 4, 0}
}

// TestInitializeRejectsBadMinSamples covers the two precondition errors.
func TestInitializeRejectsBadMinSamples(t *testing.T) {
	euc, _ := distance.New(distance.Euclidean, 0)
	tr := fixture.NewKD(collinear5(), 2, 2, euc)

	_, err := coredist.Initialize(tr, coredist.Config{MinSamples: 0})
	assert.ErrorIs(t, err, coredist.ErrBadMinSamples)

	_, err = coredist.Initialize(tr, coredist.Config{MinSamples: 100})
	assert.ErrorIs(t, err, coredist.ErrMinSamplesTooLarge)
}

// TestCoreDistanceOnCollinearPoints checks that, with m=2, every
// interior/edge point's distance to its 2nd nearest neighbor is exactly 1.
func TestCoreDistanceOnCollinearPoints(t *testing.T) {
	euc, _ := distance.New(distance.Euclidean, 0)
	tr := fixture.NewKD(collinear5(), 2, 2, euc)

	seed, err := coredist.Initialize(tr, coredist.Config{MinSamples: 2, NJobs: 1})
	require.NoError(t, err)

	for p, d := range seed.CoreDistance {
		assert.InDeltaf(t, 1.0, d, 1e-9, "point %d core distance", p)
	}
}

// TestSeedCandidateFirstMatch checks that a candidate is only seeded when
// some neighbor's own core distance does not exceed the point's, and that
// the FIRST such neighbor (in ascending-distance order) wins — even if a
// later neighbor also qualifies. It is not "improved" to find the closest
// qualifying neighbor.
func TestSeedCandidateFirstMatch(t *testing.T) {
	euc, _ := distance.New(distance.Euclidean, 0)
	tr := fixture.NewKD(collinear5(), 2, 5, euc)

	seed, err := coredist.Initialize(tr, coredist.Config{MinSamples: 2, NJobs: 1})
	require.NoError(t, err)

	for p := 0; p < 5; p++ {
		if seed.CandidateDistance[p] != math.Inf(1) {
			assert.Equal(t, p, seed.CandidatePoint[p])
			assert.NotEqual(t, -1, seed.CandidateNeighbor[p])
		}
	}

	// Point 2 (x=2) has neighbors 1 and 3 at ranks 1 and 2, both with
	// core distance 1 <= its own; rank 1 (point 1) wins.
	assert.Equal(t, 1, seed.CandidateNeighbor[2])
}

// TestConvertToRDistSquaresEuclideanCoreDistances verifies the KD-tree
// rdist conversion path.
func TestConvertToRDistSquaresEuclideanCoreDistances(t *testing.T) {
	euc, _ := distance.New(distance.Euclidean, 0)
	tr := fixture.NewKD(collinear5(), 2, 2, euc)

	seed, err := coredist.Initialize(tr, coredist.Config{MinSamples: 2, NJobs: 1})
	require.NoError(t, err)

	original := append([]float64(nil), seed.CoreDistance...)
	coredist.ConvertToRDist(seed.CoreDistance, euc.DistToRDist)
	for i, d := range seed.CoreDistance {
		assert.InDelta(t, original[i]*original[i], d, 1e-9)
	}
}

// TestParallelMatchesSequential checks that chunked parallel querying
// must produce the same core distances as the sequential path. N is kept
// just above coredist's parallel-chunking threshold so NJobs=4 actually
// takes the chunked path rather than silently falling back to sequential.
func TestParallelMatchesSequential(t *testing.T) {
	euc, _ := distance.New(distance.Euclidean, 0)
	n := 16400
	raw := make([]float64, n*2)
	for i := 0; i < n; i++ {
		raw[2*i] = float64(i % 97)
		raw[2*i+1] = float64((i * 7) % 89)
	}
	tr := fixture.NewKD(raw, 2, 64, euc)

	seq, err := coredist.Initialize(tr, coredist.Config{MinSamples: 5, NJobs: 1})
	require.NoError(t, err)

	par, err := coredist.Initialize(tr, coredist.Config{MinSamples: 5, NJobs: 4})
	require.NoError(t, err)

	assert.Equal(t, seq.CoreDistance, par.CoreDistance)
	assert.Equal(t, seq.CandidateNeighbor, par.CandidateNeighbor)
}
