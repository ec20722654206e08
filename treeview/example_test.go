package treeview_test

import (
	"fmt"

	"github.com/katalvlaran/mrmst/distance"
	"github.com/katalvlaran/mrmst/internal/fixture"
	"github.com/katalvlaran/mrmst/treeview"
)

// ExampleKDBound shows that two disjoint KD-tree leaf boxes have a
// strictly positive lower bound, while a node compared to itself does not.
func ExampleKDBound() {
	euc, _ := distance.New(distance.Euclidean, 0)
	raw := []float64{0, 0, 1, 0, 5, 5, 5, 6}
	tr := fixture.NewKD(raw, 2, 2, euc)

	self := treeview.KDBound(tr, 0, 0, euc.P())
	fmt.Println(self == 0)
	fmt.Println(treeview.KDBound(tr, 1, 2, euc.P()) > 0)
	// Output:
	// true
	// true
}
