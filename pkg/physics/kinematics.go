package physics

import "math"

const invPi = 1.0 / math.Pi

// LambdaTilde is the Källén triangle function
// λ(a, b, c) = (a - b - c)^2 - 4bc, clamped at zero from below.
func LambdaTilde(a, b, c float64) float64 {
	l := (a-b-c)*(a-b-c) - 4.0*b*c
	if l < 0 {
		return 0
	}
	return l
}

// SFromPlab returns the Mandelstam s for a projectile with lab momentum
// plab hitting a target at rest, with masses ma and mb.
func SFromPlab(plab, ma, mb float64) float64 {
	ea := math.Sqrt(ma*ma + plab*plab)
	return ma*ma + mb*mb + 2.0*mb*ea
}

// PCMFromS returns the center-of-mass momentum of a two-body system
// with invariant mass squared s and masses ma, mb.
func PCMFromS(s, ma, mb float64) float64 {
	sqrts := math.Sqrt(s)
	if sqrts < ma+mb {
		return 0
	}
	return math.Sqrt(LambdaTilde(s, ma*ma, mb*mb)) / (2.0 * sqrts)
}

// RelativeVelocity returns the Lorentz-invariant relative velocity of
// two on-shell four-momenta, sqrt(λ(s, m1², m2²)) / (2 E1 E2).
func RelativeVelocity(p1, p2 FourVector) float64 {
	m1sqr := p1.Sqr()
	m2sqr := p2.Sqr()
	s := p1.Add(p2).Sqr()
	return math.Sqrt(LambdaTilde(s, m1sqr, m2sqr)) / (2.0 * p1.T * p2.T)
}
