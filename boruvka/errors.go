package boruvka

import (
	"errors"
	"fmt"
)

// Precondition failures. These are returned by NewDriver before any sweep
// runs; a caller can retry with a corrected Config or TreeView.
var (
	ErrEmptyTree     = errors.New("boruvka: tree has zero points")
	ErrBadMinSamples = errors.New("boruvka: min_samples must be >= 1")
	ErrBadAlpha      = errors.New("boruvka: alpha must be > 0")
	ErrBadLeafSize   = errors.New("boruvka: leaf_size must be > 0")
	ErrBadNJobs      = errors.New("boruvka: n_jobs must be >= 1")
)

// ErrUnreachable is a post-condition failure: a full sweep in exact mode
// (ApproxMinSpanTree == false) failed to merge any component. A correctly
// implemented dual-tree traversal over a connected point set never reaches
// this; seeing it means the TreeView's distances are inconsistent with its
// node bounds (a bound that undershoots the true inter-node distance can
// cause a real nearest edge to be pruned away).
var ErrUnreachable = errors.New("boruvka: sweep made no progress in exact mode")

// NumericDegeneracyError reports that a pairwise distance computation
// between points A and B produced NaN (e.g. a metric given non-finite
// coordinates). The sweep that hit it aborts immediately without draining
// candidates found so far.
type NumericDegeneracyError struct {
	A, B int
}

func (e *NumericDegeneracyError) Error() string {
	return fmt.Sprintf("boruvka: distance(%d, %d) is NaN", e.A, e.B)
}
