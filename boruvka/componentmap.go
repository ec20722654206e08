package boruvka

import (
	"math"

	"github.com/katalvlaran/mrmst/treeview"
)

// recomputeComponents refreshes pointComponent (one entry per point) and
// nodeComponent (one entry per tree node) from the union-find's current
// state. A leaf's component id is the common root of every point it
// contains, or a unique negative sentinel if its points span more than one
// component ("mixed"); an inner node's id is its children's shared id if
// they agree (both real, non-negative, and equal), or a fresh sentinel
// otherwise. Nodes are visited in descending id order so every child is
// resolved before its parent is computed (child indices 2n+1, 2n+2 are
// always greater than n).
func (d *Driver) recomputeComponents() {
	for p := 0; p < d.tv.N(); p++ {
		d.pointComponent[p] = d.uf.Find(p)
	}

	idx := d.tv.IdxArray()
	for n := d.tv.M() - 1; n >= 0; n-- {
		nb := d.tv.NodeBounds(n)
		if nb.IsLeaf {
			d.nodeComponent[n] = d.leafComponent(idx, nb)

			continue
		}

		left, right := 2*n+1, 2*n+2
		if d.nodeComponent[left] >= 0 && d.nodeComponent[left] == d.nodeComponent[right] {
			d.nodeComponent[n] = d.nodeComponent[left]
		} else {
			d.nodeComponent[n] = d.nextSentinel()
		}
	}
}

func (d *Driver) leafComponent(idx []int, nb treeview.NodeBounds) int64 {
	if nb.IdxStart >= nb.IdxEnd {
		return d.nextSentinel()
	}

	first := d.pointComponent[idx[nb.IdxStart]]
	for i := nb.IdxStart + 1; i < nb.IdxEnd; i++ {
		if d.pointComponent[idx[i]] != first {
			return d.nextSentinel()
		}
	}

	return int64(first)
}

func (d *Driver) nextSentinel() int64 {
	d.sentinelCounter--

	return d.sentinelCounter
}

// resetCandidates clears every currently-root component's candidate triple
// back to "no candidate yet" ahead of the next sweep. The very first sweep
// skips this: its candidates come pre-seeded from coredist.Initialize.
func (d *Driver) resetCandidates() {
	for _, c := range d.uf.Components() {
		d.candPoint[c] = -1
		d.candNeighbor[c] = -1
		d.candDistance[c] = math.Inf(1)
	}
}
