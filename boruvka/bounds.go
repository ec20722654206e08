package boruvka

import (
	"math"

	"github.com/katalvlaran/mrmst/treeview"
)

// newBoundsState allocates a per-node upper-bound array, one entry per tree
// node, all initialized to +Inf: a node's bound starts at +Inf and only
// ever decreases.
func newBoundsState(m int) []float64 {
	bounds := make([]float64, m)
	for i := range bounds {
		bounds[i] = math.Inf(1)
	}

	return bounds
}

// resetBounds applies the reset policy between sweeps: bounds
// always reset to +Inf, unless ApproxMinSpanTree is enabled and this sweep
// made no progress (mergedAny == false), in which case the current bounds
// are left untouched so the next sweep isn't forced to re-derive them from
// scratch.
func (d *Driver) resetBounds(mergedAny bool) {
	if d.cfg.ApproxMinSpanTree && !mergedAny {
		if d.cfg.OnWarning != nil {
			d.cfg.OnWarning("boruvka: sweep made no progress in approximate mode, bounds not reset")
		}

		return
	}
	for i := range d.bounds {
		d.bounds[i] = math.Inf(1)
	}
}

// propagateBound walks from a leaf whose bound just improved up through its
// ancestors, recomputing each parent's bound from its two children and
// stopping as soon as a parent's bound does not improve: propagation only
// ever tightens a bound, and stops once it would not.
func (d *Driver) propagateBound(n int) {
	for n != 0 {
		parent := (n - 1) / 2
		left, right := 2*parent+1, 2*parent+2

		var candidate float64
		if d.kind == treeview.KD {
			candidate = math.Max(d.bounds[left], d.bounds[right])
		} else {
			candidate = ballParentBound(
				d.tv.NodeBounds(parent).Radius,
				d.bounds[left], d.tv.NodeBounds(left).Radius,
				d.bounds[right], d.tv.NodeBounds(right).Radius,
			)
		}

		if candidate >= d.bounds[parent] {
			return
		}
		d.bounds[parent] = candidate
		n = parent
	}
}

// ballParentBound computes a Ball-tree parent's bound from its children's
// bounds and radii.
//
// The textbook formula is
//
//	parent.bound = min(max(left.bound, right.bound),
//	                    min(left.bound+2*(r_parent-r_left),
//	                        right.bound+2*(r_parent-r_right)))
//
// but r_parent-r_child is not guaranteed non-negative for every tree this
// engine might be handed (radii need not be monotone non-increasing with
// depth). The tighter min(...) term is only used when both of its
// summands (left.bound+2*(r_parent-r_left) and right.bound+2*(r_parent-
// r_right)) come out positive; otherwise the bound falls back to
// max(left.bound, right.bound) alone.
func ballParentBound(rParent, leftBound, rLeft, rightBound, rRight float64) float64 {
	a := math.Max(leftBound, rightBound)
	lt := leftBound + 2*(rParent-rLeft)
	rt := rightBound + 2*(rParent-rRight)
	if lt > 0 && rt > 0 {
		return math.Min(a, math.Min(lt, rt))
	}

	return a
}
