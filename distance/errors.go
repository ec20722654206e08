package distance

import "errors"

// ErrUnknownMetric indicates a Kind value outside the closed set this
// package supports (Euclidean, Manhattan, Chebyshev, Minkowski).
var ErrUnknownMetric = errors.New("distance: unknown metric kind")

// ErrBadExponent indicates a Minkowski exponent that is not finite and
// strictly positive (p <= 0, p == +Inf, or NaN). The p = +Inf metric is
// available as Kind Chebyshev.
var ErrBadExponent = errors.New("distance: minkowski exponent must be > 0 and finite")

// ErrDimMismatch indicates two coordinate slices passed to an oracle have
// different lengths.
var ErrDimMismatch = errors.New("distance: coordinate dimension mismatch")
