package fixture

import (
	"math"
	"sort"

	"github.com/katalvlaran/mrmst/distance"
	"github.com/katalvlaran/mrmst/treeview"
)

// Tree is an in-memory treeview.TreeView backed by a flat, heap-indexed
// node array. Build it with NewKD or NewBall.
type Tree struct {
	kind        treeview.Kind
	n           int
	numFeatures int
	raw         []float64 // row-major, n*numFeatures, in original point-id order
	idx         []int     // permutation: idx[i] is the original point id at tree position i
	nodes       []nodeData
	oracle      distance.Oracle
	leafSize    int
}

type nodeData struct {
	idxStart, idxEnd int
	isLeaf           bool
	radius           float64
	lo, hi           []float64 // KD only
	centroid         []float64 // Ball only
}

// point returns the coordinate slice for the point currently at tree
// position pos (i.e. for original point id idx[pos]).
func (t *Tree) point(pos int) []float64 {
	id := t.idx[pos]

	return t.raw[id*t.numFeatures : (id+1)*t.numFeatures]
}

// N implements treeview.TreeView.
func (t *Tree) N() int { return t.n }

// M implements treeview.TreeView.
func (t *Tree) M() int { return len(t.nodes) }

// NumFeatures implements treeview.TreeView.
func (t *Tree) NumFeatures() int { return t.numFeatures }

// RawData implements treeview.TreeView.
func (t *Tree) RawData() []float64 { return t.raw }

// IdxArray implements treeview.TreeView.
func (t *Tree) IdxArray() []int { return t.idx }

// Kind implements treeview.TreeView.
func (t *Tree) Kind() treeview.Kind { return t.kind }

// NodeBounds implements treeview.TreeView.
func (t *Tree) NodeBounds(n int) treeview.NodeBounds {
	nd := t.nodes[n]

	return treeview.NodeBounds{
		IdxStart: nd.idxStart,
		IdxEnd:   nd.idxEnd,
		IsLeaf:   nd.isLeaf,
		Radius:   nd.radius,
	}
}

// KDBounds implements treeview.TreeView. Valid only for KD trees.
func (t *Tree) KDBounds(n int) (lo, hi []float64) {
	return t.nodes[n].lo, t.nodes[n].hi
}

// Centroid implements treeview.TreeView. Valid only for Ball trees.
func (t *Tree) Centroid(n int) []float64 {
	return t.nodes[n].centroid
}

// levelsFor mirrors the classic BinaryTree sizing rule: enough levels that
// the deepest leaves hold at most leafSize points.
func levelsFor(n, leafSize int) int {
	if n <= leafSize {
		return 1
	}
	levels := 1
	for (leafSize << uint(levels-1)) < n {
		levels++
	}

	return levels
}

// build recurses top-down, splitting on the axis of maximum spread and
// partitioning idx in place by an O(k log k) sort + median cut. It fills in
// per-node bounds bottom-up as each call returns.
func (t *Tree) build(node, idxStart, idxEnd, level, maxLevel int) {
	// Slots skipped because an ancestor became a leaf early are padded as
	// empty leaves (with a zero centroid), so no padding slot claims
	// children that do not exist.
	for len(t.nodes) <= node {
		t.nodes = append(t.nodes, nodeData{isLeaf: true, centroid: make([]float64, t.numFeatures)})
	}

	isLeaf := level == maxLevel-1 || idxEnd-idxStart <= t.leafSize
	if !isLeaf {
		axis := t.maxSpreadAxis(idxStart, idxEnd)
		sort.Slice(t.idx[idxStart:idxEnd], func(i, j int) bool {
			return t.raw[t.idx[idxStart+i]*t.numFeatures+axis] < t.raw[t.idx[idxStart+j]*t.numFeatures+axis]
		})
		mid := (idxStart + idxEnd) / 2
		t.build(2*node+1, idxStart, mid, level+1, maxLevel)
		t.build(2*node+2, mid, idxEnd, level+1, maxLevel)
	}

	t.nodes[node] = t.computeNodeData(idxStart, idxEnd, isLeaf)
}

func (t *Tree) maxSpreadAxis(idxStart, idxEnd int) int {
	bestAxis := 0
	bestSpread := -1.0
	for j := 0; j < t.numFeatures; j++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for p := idxStart; p < idxEnd; p++ {
			v := t.raw[t.idx[p]*t.numFeatures+j]
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		if spread := hi - lo; spread > bestSpread {
			bestSpread = spread
			bestAxis = j
		}
	}

	return bestAxis
}

func (t *Tree) computeNodeData(idxStart, idxEnd int, isLeaf bool) nodeData {
	nd := nodeData{idxStart: idxStart, idxEnd: idxEnd, isLeaf: isLeaf}

	switch t.kind {
	case treeview.KD:
		lo := make([]float64, t.numFeatures)
		hi := make([]float64, t.numFeatures)
		for j := range lo {
			lo[j], hi[j] = math.Inf(1), math.Inf(-1)
		}
		for p := idxStart; p < idxEnd; p++ {
			pt := t.point(p)
			for j, v := range pt {
				if v < lo[j] {
					lo[j] = v
				}
				if v > hi[j] {
					hi[j] = v
				}
			}
		}
		nd.lo, nd.hi = lo, hi
		// KD node radius: the max center-to-point distance from the box's
		// centroid. The engine reads it to pick which node to split and to
		// tighten leaf bounds.
		nd.radius = t.radiusAround(boxCentroid(lo, hi), idxStart, idxEnd)
	case treeview.Ball:
		centroid := make([]float64, t.numFeatures)
		for p := idxStart; p < idxEnd; p++ {
			pt := t.point(p)
			for j, v := range pt {
				centroid[j] += v
			}
		}
		count := float64(idxEnd - idxStart)
		for j := range centroid {
			centroid[j] /= count
		}
		nd.centroid = centroid
		nd.radius = t.radiusAround(centroid, idxStart, idxEnd)
	}

	return nd
}

func boxCentroid(lo, hi []float64) []float64 {
	c := make([]float64, len(lo))
	for j := range lo {
		c[j] = (lo[j] + hi[j]) / 2
	}

	return c
}

func (t *Tree) radiusAround(center []float64, idxStart, idxEnd int) float64 {
	var maxD float64
	for p := idxStart; p < idxEnd; p++ {
		d := t.oracle.Dist(center, t.point(p))
		if d > maxD {
			maxD = d
		}
	}

	return maxD
}

// NewKD builds a KD-tree-backed Tree over raw (row-major, n*numFeatures).
func NewKD(raw []float64, numFeatures, leafSize int, oracle distance.Oracle) *Tree {
	return newTree(treeview.KD, raw, numFeatures, leafSize, oracle)
}

// NewBall builds a Ball-tree-backed Tree over raw (row-major, n*numFeatures).
func NewBall(raw []float64, numFeatures, leafSize int, oracle distance.Oracle) *Tree {
	return newTree(treeview.Ball, raw, numFeatures, leafSize, oracle)
}

func newTree(kind treeview.Kind, raw []float64, numFeatures, leafSize int, oracle distance.Oracle) *Tree {
	n := len(raw) / numFeatures
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	t := &Tree{
		kind:        kind,
		n:           n,
		numFeatures: numFeatures,
		raw:         raw,
		idx:         idx,
		oracle:      oracle,
		leafSize:    leafSize,
	}
	if n == 0 {
		return t
	}
	maxLevel := levelsFor(n, leafSize)
	t.build(0, 0, n, 0, maxLevel)

	return t
}
