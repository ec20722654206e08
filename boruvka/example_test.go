package boruvka_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mrmst/boruvka"
	"github.com/katalvlaran/mrmst/distance"
	"github.com/katalvlaran/mrmst/internal/fixture"
)

// ExampleDriver_SpanningTree computes the MST of four corners of a unit
// square: three unit-length edges, total weight 3.
func ExampleDriver_SpanningTree() {
	euc, _ := distance.New(distance.Euclidean, 0)
	raw := []float64{0, 0, 1, 0, 0, 1, 1, 1}
	tr := fixture.NewKD(raw, 2, 2, euc)

	d, _ := boruvka.NewDriver(tr, euc, boruvka.WithMinSamples(1))
	edges, _ := d.SpanningTree(context.Background())

	var total float64
	for _, e := range edges {
		total += e.Weight
	}
	fmt.Println(len(edges), total)
	// Output:
	// 3 3
}
