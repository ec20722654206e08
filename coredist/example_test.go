package coredist_test

import (
	"fmt"

	"github.com/katalvlaran/mrmst/coredist"
	"github.com/katalvlaran/mrmst/distance"
	"github.com/katalvlaran/mrmst/internal/fixture"
)

// ExampleInitialize computes core distances for five collinear points with
// min_samples=2: each point's 2nd-nearest neighbor is exactly 1 unit away.
func ExampleInitialize() {
	euc, _ := distance.New(distance.Euclidean, 0)
	raw := []float64{0, 0, 1, 0, 2, 0, 3, 0, 4, 0}
	tr := fixture.NewKD(raw, 2, 2, euc)

	seed, _ := coredist.Initialize(tr, coredist.Config{MinSamples: 2, NJobs: 1})
	fmt.Println(seed.CoreDistance[2])
	// Output:
	// 1
}
