package collision

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/hadronsim/transport-core/internal/particle"
	"github.com/hadronsim/transport-core/internal/xsection"
	"github.com/hadronsim/transport-core/pkg/logger"
	"github.com/hadronsim/transport-core/pkg/physics"
	"github.com/hadronsim/transport-core/pkg/utils"
)

// Params carry the evaluator configuration that is fixed for a run.
type Params struct {
	Criterion     Criterion
	Testparticles int
	Isotropic     bool
	FormationTime float64
}

// Evaluator decides whether candidate pairs and triples interact
// within a timestep. It is immutable after construction and safe for
// concurrent use; all randomness comes through the RandSource passed
// per call.
type Evaluator struct {
	params Params
	xsec   *xsection.Evaluator
	log    *slog.Logger

	// Collider-mode exclusion inputs; empty outside collider setups.
	nucleonHasInteracted []bool
	nTot                 int
	nProj                int
}

// NewEvaluator creates an evaluator over the given cross-section
// module.
func NewEvaluator(xsec *xsection.Evaluator, params Params) *Evaluator {
	if params.Testparticles < 1 {
		params.Testparticles = 1
	}
	return &Evaluator{
		params: params,
		xsec:   xsec,
		log:    logger.Default,
	}
}

// WithLogger sets the evaluator's logger.
func (e *Evaluator) WithLogger(l *slog.Logger) *Evaluator {
	e.log = l
	return e
}

// WithColliderExclusion supplies the nucleus-membership and
// interaction-history bookkeeping for the never-interacted beam
// nucleon exclusion. The first nProj of the first nTot particle ids
// form the projectile, the rest of the first nTot the target.
func (e *Evaluator) WithColliderExclusion(nucleonHasInteracted []bool, nTot, nProj int) *Evaluator {
	e.nucleonHasInteracted = nucleonHasInteracted
	e.nTot = nTot
	e.nProj = nProj
	return e
}

// Criterion returns the active collision criterion.
func (e *Evaluator) Criterion() Criterion {
	return e.params.Criterion
}

// CheckPair determines whether the two particles interact within this
// timestep and constructs the candidate interaction. A (nil, nil)
// return means no interaction; a non-nil error is fatal for the run.
// cellVol is only consulted under the stochastic criterion.
func (e *Evaluator) CheckPair(a, b *particle.Particle, dt float64, beamMomentum []physics.FourVector, cellVol float64, rng *utils.RandSource) (*Pairwise, error) {
	// Two nucleons within the same cold nucleus that both have no
	// interaction history cannot scatter off each other.
	if e.sameNucleusUntouched(a, b) {
		return nil, nil
	}

	// No grid or search in cell means no collision for the stochastic
	// criterion.
	if e.params.Criterion == CriterionStochastic && cellVol < physics.ReallySmall {
		return nil, nil
	}

	if a.EffectiveMass() < physics.ReallySmall || b.EffectiveMass() < physics.ReallySmall {
		e.log.Warn("skipping pair with near-zero invariant mass",
			"id_a", a.ID, "id_b", b.ID)
		return nil, nil
	}

	timeUntil := collisionTime(e.params.Criterion, a, b, beamMomentum)
	if timeUntil < 0 || timeUntil >= dt {
		return nil, nil
	}

	act := &Pairwise{
		A:             a,
		B:             b,
		TimeUntil:     timeUntil,
		Isotropic:     e.params.Isotropic,
		FormationTime: e.params.FormationTime,
	}

	// Distance is only needed for the geometric family, and lets us
	// skip the cross-section evaluation entirely when the pair is out
	// of range for any cross section.
	var distanceSqr float64
	switch e.params.Criterion {
	case CriterionGeometric:
		distanceSqr = transverseDistanceSqr(a, b)
	case CriterionCovariant:
		distanceSqr = covTransverseDistanceSqr(a, b)
	}
	if e.params.Criterion != CriterionStochastic &&
		distanceSqr >= physics.MaxTransverseDistanceSqr(e.params.Testparticles) {
		return nil, nil
	}

	sqrts := a.Momentum.Add(b.Momentum).Abs()
	act.Channels = e.xsec.Channels(a.Type, b.Type, sqrts)

	xs := xsection.TotalCrossSection(act.Channels) * physics.Fm2Mb /
		float64(e.params.Testparticles)
	xs *= a.XsecScalingFactor(timeUntil)
	xs *= b.XsecScalingFactor(timeUntil)
	act.CrossSection = xs

	switch e.params.Criterion {
	case CriterionStochastic:
		vRel := physics.RelativeVelocity(a.Momentum, b.Momentum)
		prob := xs * vRel * dt / cellVol
		act.Probability = prob

		e.log.Debug("stochastic collision criterion",
			"prob", prob, "xs", xs, "v_rel", vRel, "dt", dt,
			"cell_vol", cellVol, "testparticles", e.params.Testparticles)

		if prob > 1 {
			return nil, fmt.Errorf("%w (p = %g)", ErrProbabilityAboveOne, prob)
		}
		if rng.Float64() > prob {
			return nil, nil
		}

	case CriterionGeometric, CriterionCovariant:
		// The pair just scattered off each other in the same elementary
		// process; do not re-collide it.
		if a.ProcessID > 0 && a.ProcessID == b.ProcessID {
			e.log.Debug("skipping collided particles",
				"time", a.Position.T, "process", a.ProcessID,
				"id_a", a.ID, "id_b", b.ID)
			return nil, nil
		}
		criterion := xs / math.Pi
		if distanceSqr >= criterion {
			return nil, nil
		}
		act.Probability = 1.0
		e.log.Debug("geometric collision criterion",
			"distance_sqr", distanceSqr, "id_a", a.ID, "id_b", b.ID)
	}

	return act, nil
}

func (e *Evaluator) sameNucleusUntouched(a, b *particle.Particle) bool {
	if len(e.nucleonHasInteracted) == 0 {
		return false
	}
	if a.ID >= e.nTot || b.ID >= e.nTot {
		return false
	}
	sameNucleus := (a.ID < e.nProj && b.ID < e.nProj) ||
		(a.ID >= e.nProj && b.ID >= e.nProj)
	if !sameNucleus {
		return false
	}
	return !(e.nucleonHasInteracted[a.ID] || e.nucleonHasInteracted[b.ID])
}
