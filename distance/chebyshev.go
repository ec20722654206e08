package distance

import "math"

// ChebyshevOracle implements the L-infinity (max absolute coordinate delta)
// metric. No cheaper reduced form exists, so RDist equals Dist.
type ChebyshevOracle struct{}

// Dist returns the maximum absolute coordinate delta between a and b.
func (ChebyshevOracle) Dist(a, b []float64) float64 {
	var maxD float64
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > maxD {
			maxD = d
		}
	}

	return maxD
}

// RDist equals Dist: Chebyshev has no cheaper reduced form.
func (c ChebyshevOracle) RDist(a, b []float64) float64 {
	return c.Dist(a, b)
}

// DistToRDist is the identity for Chebyshev.
func (ChebyshevOracle) DistToRDist(d float64) float64 {
	return d
}

// RDistToDist is the identity for Chebyshev.
func (ChebyshevOracle) RDistToDist(r float64) float64 {
	return r
}

// P returns +Inf, denoting the Chebyshev (L-infinity) exponent.
func (ChebyshevOracle) P() float64 {
	return math.Inf(1)
}
