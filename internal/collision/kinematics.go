package collision

import (
	"github.com/hadronsim/transport-core/internal/particle"
	"github.com/hadronsim/transport-core/pkg/physics"
)

// momentumForVelocity returns the four-momentum used for a particle's
// straight-line propagation. With frozen Fermi motion the beam
// four-momentum substitutes for the actual momentum of an initial
// nucleus nucleon that has not interacted yet.
func momentumForVelocity(p *particle.Particle, beamMomentum []physics.FourVector) physics.FourVector {
	if p.ID < len(beamMomentum) && !p.HasInteracted() {
		return beamMomentum[p.ID]
	}
	return p.Momentum
}

// collisionTime returns the time until the closest approach of the two
// particles, in the computational frame. A negative return value means
// the particles are moving apart (or the geometry is degenerate) and
// no collision is possible.
func collisionTime(crit Criterion, a, b *particle.Particle, beamMomentum []physics.FourVector) float64 {
	if crit == CriterionCovariant {
		return covariantCollisionTime(a, b)
	}
	// Closest approach in the computational frame:
	// t = -dr·dv / dv^2 with dv the relative velocity.
	dr := a.Position.Spatial().Sub(b.Position.Spatial())
	va := momentumForVelocity(a, beamMomentum).Velocity()
	vb := momentumForVelocity(b, beamMomentum).Velocity()
	dv := va.Sub(vb)
	dv2 := dv.Sqr()
	if dv2 < physics.ReallySmall {
		return -1.0
	}
	return -dr.Dot(dv) / dv2
}

// covariantCollisionTime is the average of the two computational-frame
// times at which each particle reaches the covariant closest approach
// of the pair.
func covariantCollisionTime(a, b *particle.Particle) float64 {
	dx := a.Position.Sub(b.Position)
	pa := a.Momentum
	pb := b.Momentum
	paSqr := pa.Sqr()
	pbSqr := pb.Sqr()
	paDotX := pa.Dot(dx)
	pbDotX := pb.Dot(dx)
	paDotPb := pa.Dot(pb)
	denominator := paDotPb*paDotPb - paSqr*pbSqr
	if denominator < physics.ReallySmall {
		return -1.0
	}
	timeA := (pbSqr*paDotX - paDotPb*pbDotX) * pa.T / denominator
	timeB := -(paSqr*pbDotX - paDotPb*paDotX) * pb.T / denominator
	return (timeA + timeB) / 2.0
}

// transverseDistanceSqr returns the squared transverse separation of
// the pair at closest approach, evaluated in the center-of-momentum
// frame of the pair.
func transverseDistanceSqr(a, b *particle.Particle) float64 {
	beta := a.Momentum.Add(b.Momentum).Velocity()
	posA := a.Position.Boosted(beta)
	posB := b.Position.Boosted(beta)
	momA := a.Momentum.Boosted(beta)
	momB := b.Momentum.Boosted(beta)

	dr := posA.Spatial().Sub(posB.Spatial())
	dp := momA.Spatial().Sub(momB.Spatial())
	dr2 := dr.Sqr()
	dp2 := dp.Sqr()
	// Vanishing relative momentum means the separation never shrinks.
	if dp2 < physics.ReallySmall {
		return dr2
	}
	dot := dr.Dot(dp)
	return dr2 - dot*dot/dp2
}

// covTransverseDistanceSqr is the Lorentz-invariant squared impact
// parameter of the pair, clamped at zero from below.
func covTransverseDistanceSqr(a, b *particle.Particle) float64 {
	dx := a.Position.Sub(b.Position)
	pa := a.Momentum
	pb := b.Momentum
	paSqr := pa.Sqr()
	pbSqr := pb.Sqr()
	paDotX := pa.Dot(dx)
	pbDotX := pb.Dot(dx)
	paDotPb := pa.Dot(pb)
	denominator := paDotPb*paDotPb - paSqr*pbSqr
	if denominator < physics.ReallySmall {
		return -dx.Sqr()
	}
	bSqr := -dx.Sqr() -
		(paSqr*pbDotX*pbDotX+pbSqr*paDotX*paDotX-2.0*paDotPb*paDotX*pbDotX)/denominator
	if bSqr < 0 {
		return 0
	}
	return bSqr
}
