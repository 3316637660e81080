package collision

import (
	"fmt"

	"github.com/hadronsim/transport-core/internal/particle"
	"github.com/hadronsim/transport-core/pkg/catalog"
	"github.com/hadronsim/transport-core/pkg/physics"
	"github.com/hadronsim/transport-core/pkg/utils"
)

// CheckTriple determines whether a three-body aggregation occurs for
// the group within this timestep. Multi-body search is explicitly
// stochastic: there is no geometric or covariant variant for groups
// larger than two. A (nil, nil) return means no interaction; a non-nil
// error is fatal for the run.
func (e *Evaluator) CheckTriple(group []*particle.Particle, dt, cellVol float64, rng *utils.RandSource) (*MultiParticle, error) {
	// No grid or search in cell.
	if cellVol < physics.ReallySmall {
		return nil, nil
	}

	if e.params.Testparticles != 1 {
		return nil, fmt.Errorf("%w (testparticles = %d)",
			ErrTestparticlesUnsupported, e.params.Testparticles)
	}

	// Occurrence time is uniform within the timestep.
	timeUntil := dt * rng.Float64()

	types := make([]*catalog.ParticleType, len(group))
	total := physics.FourVector{}
	for i, p := range group {
		types[i] = p.Type
		total = total.Add(p.Momentum)
	}

	agg, ok := e.xsec.Aggregation(types)
	if !ok {
		// No fitting final state for this group.
		return nil, nil
	}
	// Forming the resonance at its pole needs the group's invariant
	// mass to reach it.
	if total.Abs() < agg.Output.Mass {
		return nil, nil
	}

	prob := e.multiProbability(agg, group, dt, cellVol)

	e.log.Debug("stochastic multi-body criterion",
		"prob", prob, "output", agg.Output.Name, "dt", dt,
		"cell_vol", cellVol)

	if prob > 1 {
		return nil, fmt.Errorf("%w (p_nm = %g)", ErrProbabilityAboveOne, prob)
	}
	if rng.Float64() > prob {
		return nil, nil
	}

	return &MultiParticle{
		Particles:   group,
		TimeUntil:   timeUntil,
		Output:      agg.Output,
		Probability: prob,
	}, nil
}

// multiProbability is the stochastic rate of the 3-to-1 aggregation:
// the catalog rate constant and degeneracy over the squared cell
// volume, with each particle's density diluted by its Lorentz factor.
func (e *Evaluator) multiProbability(agg catalog.Aggregation, group []*particle.Particle, dt, cellVol float64) float64 {
	dilution := 1.0
	for _, p := range group {
		dilution *= p.EffectiveMass() / p.Momentum.T
	}
	return agg.Rate * agg.Degeneracy * dilution * dt / (cellVol * cellVol)
}
