package coredist

import "errors"

// ErrMinSamplesTooLarge indicates min_samples exceeds the number of points
// in the tree: there is no m-th nearest neighbor to report.
var ErrMinSamplesTooLarge = errors.New("coredist: min_samples exceeds tree size")

// ErrBadMinSamples indicates a non-positive min_samples.
var ErrBadMinSamples = errors.New("coredist: min_samples must be >= 1")
