package physics

// Units: lengths and times in fm, energies and masses in GeV,
// cross sections in mb.
const (
	// ReallySmall is the numeric threshold below which quantities are
	// treated as zero (degenerate denominators, cell volumes, masses).
	ReallySmall = 1.0e-6

	// Fm2Mb converts a cross section from mb to fm^2 (1 mb = 0.1 fm^2).
	Fm2Mb = 0.1

	// MaxCrossSection is the upper bound, in mb, on any total cross
	// section the parametrizations can return. It caps the geometric
	// interaction range used by the cheap-reject fast path.
	MaxCrossSection = 200.0
)

// MaxTransverseDistanceSqr returns the squared transverse distance, in
// fm^2, beyond which no cross section can lead to an interaction. The
// bound shrinks with the testparticle count because cross sections are
// divided by it.
func MaxTransverseDistanceSqr(testparticles int) float64 {
	return MaxCrossSection * Fm2Mb / float64(testparticles) * invPi
}
