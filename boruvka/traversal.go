package boruvka

import (
	"math"

	"github.com/katalvlaran/mrmst/treeview"
)

// traverse is the pruned recursive dual-tree descent over node pair
// (qNode, rNode), shared verbatim by KD- and Ball-tree runs. The node lower
// bound and the pairwise distance differ behind the two closures chosen
// once in NewDriver (d.lowerBound, d.pairDist). The bound update after a
// leaf pair is not behind a closure: tightenBound and propagateBound check
// d.kind on every call to pick the radius units and the parent-bound rule.
func (d *Driver) traverse(qNode, rNode int) {
	if d.degenerate != nil {
		return
	}

	nodeDist := d.lowerBound(qNode, rNode)
	if nodeDist >= d.bounds[qNode] {
		return
	}
	qc, rc := d.nodeComponent[qNode], d.nodeComponent[rNode]
	if qc >= 0 && qc == rc {
		return
	}

	qb, rb := d.tv.NodeBounds(qNode), d.tv.NodeBounds(rNode)

	switch {
	case qb.IsLeaf && rb.IsLeaf:
		d.traverseLeaves(qNode, rNode, qb, rb)
	case qb.IsLeaf || (!rb.IsLeaf && d.radius(qNode) <= d.radius(rNode)):
		d.descendReference(qNode, rNode)
	default:
		d.descendQuery(qNode, rNode)
	}
}

func (d *Driver) radius(n int) float64 {
	return d.tv.NodeBounds(n).Radius
}

// descendReference is Case B: q cannot be split further, or q's radius
// does not exceed r's and r can still be split, so split r instead.
func (d *Driver) descendReference(qNode, rNode int) {
	rl, rr := 2*rNode+1, 2*rNode+2
	if d.lowerBound(qNode, rl) <= d.lowerBound(qNode, rr) {
		d.traverse(qNode, rl)
		d.traverse(qNode, rr)
	} else {
		d.traverse(qNode, rr)
		d.traverse(qNode, rl)
	}
}

// descendQuery is Case C: r cannot usefully be split further relative to
// q, so split q instead.
func (d *Driver) descendQuery(qNode, rNode int) {
	ql, qr := 2*qNode+1, 2*qNode+2
	if d.lowerBound(ql, rNode) <= d.lowerBound(qr, rNode) {
		d.traverse(ql, rNode)
		d.traverse(qr, rNode)
	} else {
		d.traverse(qr, rNode)
		d.traverse(ql, rNode)
	}
}

// traverseLeaves is Case A: both nodes are leaves, so every point pair is
// compared directly against the running per-component best candidate.
func (d *Driver) traverseLeaves(qNode, rNode int, qb, rb treeview.NodeBounds) {
	idx := d.tv.IdxArray()
	for i := qb.IdxStart; i < qb.IdxEnd; i++ {
		p := idx[i]
		cp := d.pointComponent[p]
		if d.coreDistance[p] > d.candDistance[cp] {
			continue
		}
		for j := rb.IdxStart; j < rb.IdxEnd; j++ {
			q := idx[j]
			cq := d.pointComponent[q]
			if cp == cq {
				continue
			}
			if d.coreDistance[q] > d.candDistance[cp] {
				continue
			}

			raw := d.pairDist(p, q)
			if math.IsNaN(raw) {
				d.degenerate = &NumericDegeneracyError{A: p, B: q}

				return
			}

			mr := raw
			if d.cfg.Alpha != 1 {
				mr /= d.cfg.Alpha
			}
			if d.coreDistance[p] > mr {
				mr = d.coreDistance[p]
			}
			if d.coreDistance[q] > mr {
				mr = d.coreDistance[q]
			}

			if mr < d.candDistance[cp] {
				d.candDistance[cp] = mr
				d.candPoint[cp] = p
				d.candNeighbor[cp] = q
			}
		}
	}

	d.tightenBound(qNode, qb, idx)
}

// tightenBound runs after every point of q_node has been compared against
// r_node: it derives a new upper bound for q_node from the candidate
// distances its own points' components now hold, and propagates it upward
// if it improves on the existing bound.
func (d *Driver) tightenBound(qNode int, qb treeview.NodeBounds, idx []int) {
	newUpper, newLower := math.Inf(-1), math.Inf(1)
	for i := qb.IdxStart; i < qb.IdxEnd; i++ {
		v := d.candDistance[d.pointComponent[idx[i]]]
		if v > newUpper {
			newUpper = v
		}
		if v < newLower {
			newLower = v
		}
	}

	var r float64
	if d.kind == treeview.KD {
		r = d.oracle.DistToRDist(qb.Radius)
	} else {
		r = qb.Radius
	}

	newBound := math.Min(newUpper, newLower+2*r)
	if newBound < d.bounds[qNode] {
		d.bounds[qNode] = newBound
		d.propagateBound(qNode)
	}
}
