package treeview

import "errors"

// ErrNotBallTree indicates a Ball-tree-only operation (centroid table
// construction) was invoked against a KD-tree-backed TreeView. BallBound
// does not check the tree kind and returns no error.
var ErrNotBallTree = errors.New("treeview: operation requires a Ball-tree TreeView")

// ErrNotKDTree indicates a KD-tree-only operation was invoked against a
// Ball-tree-backed TreeView.
var ErrNotKDTree = errors.New("treeview: operation requires a KD-tree TreeView")

// ErrMalformedTree indicates a TreeView reports internally inconsistent
// shapes: a negative N or M, a NumFeatures <= 0, an idx_array whose length
// does not equal N, or per-axis bound slices whose length does not equal
// NumFeatures.
var ErrMalformedTree = errors.New("treeview: malformed tree shape")
