// Package particle defines the per-particle state read by the
// interaction-discovery core. Particles are owned by the simulation
// state; discovery only reads them.
package particle

import (
	"github.com/hadronsim/transport-core/pkg/catalog"
	"github.com/hadronsim/transport-core/pkg/physics"
)

// Particle is one simulated particle. IDs are unique ordinals,
// strictly increasing by creation order.
type Particle struct {
	ID       int
	Type     *catalog.ParticleType
	Position physics.FourVector // (t, x, y, z) in fm
	Momentum physics.FourVector // (E, px, py, pz) in GeV

	// ProcessID is the id of the last elementary process this particle
	// took part in; 0 means it has never interacted.
	ProcessID int

	// FormationTime is the absolute time at which the particle is
	// fully formed; before that its cross sections are scaled by
	// FormationScale. A zero FormationTime means formed from the start.
	FormationTime  float64
	FormationScale float64
}

// HasInteracted reports whether the particle has any interaction
// history.
func (p *Particle) HasInteracted() bool {
	return p.ProcessID > 0
}

// EffectiveMass returns the invariant mass of the particle's
// four-momentum.
func (p *Particle) EffectiveMass() float64 {
	return p.Momentum.Abs()
}

// Velocity returns p⃗/E.
func (p *Particle) Velocity() physics.ThreeVector {
	return p.Momentum.Velocity()
}

// XsecScalingFactor returns the cross-section scaling factor of the
// particle a time dt from now. Unformed particles (string fragments
// inside their formation time) interact with suppressed cross section.
func (p *Particle) XsecScalingFactor(dt float64) float64 {
	if p.Position.T+dt >= p.FormationTime {
		return 1.0
	}
	return p.FormationScale
}
