package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/mrmst/unionfind"
)

// ExampleUnionFind demonstrates merging components and reading back the
// surviving roots.
func ExampleUnionFind() {
	uf, _ := unionfind.New(4)
	uf.Union(0, 1)
	uf.Union(1, 2)

	fmt.Println(uf.Find(0) == uf.Find(2))
	fmt.Println(uf.Count())
	// Output:
	// true
	// 2
}
