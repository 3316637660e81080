// Package density computes smeared particle densities and currents,
// used for run diagnostics and for calibrating stochastic rates.
package density

import (
	"math"

	"github.com/hadronsim/transport-core/internal/particle"
	"github.com/hadronsim/transport-core/pkg/catalog"
	"github.com/hadronsim/transport-core/pkg/logger"
	"github.com/hadronsim/transport-core/pkg/physics"
)

// Type selects which conserved quantity is counted.
type Type int

const (
	TypeNone Type = iota
	TypeHadron
	TypeBaryon
	TypeCharge
)

func (t Type) String() string {
	switch t {
	case TypeHadron:
		return "hadron density"
	case TypeBaryon:
		return "baryon density"
	case TypeCharge:
		return "charge density"
	default:
		return "none"
	}
}

// Factor returns the weight a particle type contributes to a density
// of the given kind.
func Factor(ptype *catalog.ParticleType, dens Type) float64 {
	switch dens {
	case TypeHadron:
		return 1.0
	case TypeBaryon:
		return float64(ptype.BaryonNumber)
	case TypeCharge:
		return float64(ptype.Charge)
	default:
		return 0.0
	}
}

// Parameters hold the Gaussian smearing configuration.
type Parameters struct {
	twoSigSqrInv float64
	rCutSqr      float64
	normFactor   float64
}

// NewParameters builds smearing parameters for a Gaussian of width
// sigma (fm), cut off at rCut (fm), normalized for the testparticle
// count.
func NewParameters(sigma, rCut float64, testparticles int) Parameters {
	norm := 1.0 / (math.Pow(2.0*math.Pi*sigma*sigma, 1.5) * float64(testparticles))
	return Parameters{
		twoSigSqrInv: 1.0 / (2.0 * sigma * sigma),
		rCutSqr:      rCut * rCut,
		normFactor:   norm,
	}
}

// SmearingFactor returns the unnormalized Lorentz-contracted Gaussian
// weight of a particle at displacement r from the point of interest.
// mInv is the inverse invariant mass of the particle's four-momentum.
func (par Parameters) SmearingFactor(r physics.ThreeVector, mom physics.FourVector, mInv float64) float64 {
	rSqr := r.Sqr()
	if rSqr > par.rCutSqr {
		return 0.0
	}
	u := mom.Scale(mInv)
	uR := r.Dot(u.Spatial())
	rRestSqr := rSqr + uR*uR
	// Lorentz-contracted distance beyond the cut.
	if rRestSqr > par.rCutSqr {
		return 0.0
	}
	return math.Exp(-rRestSqr*par.twoSigSqrInv) * u.T
}

// EckartCurrent sums the smeared four-current of the given density
// type at point r. Positive and negative contributions are split so
// the Eckart rest-frame density stays defined for net-zero systems.
// Particles with near-zero invariant mass cannot be smeared (their
// four-velocity is not normalizable) and are skipped with a warning.
func EckartCurrent(r physics.ThreeVector, plist []*particle.Particle, par Parameters, dens Type) (rho float64, jmu physics.FourVector) {
	var jmuPos, jmuNeg physics.FourVector
	for _, p := range plist {
		factor := Factor(p.Type, dens)
		if math.Abs(factor) < physics.ReallySmall {
			continue
		}
		mom := p.Momentum
		m := mom.Abs()
		if m < physics.ReallySmall {
			logger.Warn("smearing undefined for near-zero invariant mass, skipping particle",
				"id", p.ID, "type", p.Type.Name)
			continue
		}
		sf := par.SmearingFactor(p.Position.Spatial().Sub(r), mom, 1.0/m)
		contribution := mom.Scale(factor / mom.T * sf)
		if factor > 0 {
			jmuPos = jmuPos.Add(contribution)
		} else {
			jmuNeg = jmuNeg.Add(contribution)
		}
	}
	rho = (jmuPos.Abs() - jmuNeg.Abs()) * par.normFactor
	jmu = jmuPos.Add(jmuNeg).Scale(par.normFactor)
	return rho, jmu
}
