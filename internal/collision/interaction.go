package collision

import (
	"github.com/hadronsim/transport-core/internal/particle"
	"github.com/hadronsim/transport-core/internal/xsection"
	"github.com/hadronsim/transport-core/pkg/catalog"
)

// Interaction is a candidate interaction found during discovery. It is
// a closed variant over Pairwise and MultiParticle; consumers dispatch
// with a type switch. Every interaction carries a scheduled
// time-to-occurrence within [0, dt) relative to the current timestep.
type Interaction interface {
	// Time returns the scheduled time-to-occurrence.
	Time() float64
	// Incoming returns the initial particles.
	Incoming() []*particle.Particle

	isInteraction()
}

// Pairwise is a two-body candidate interaction.
type Pairwise struct {
	A, B      *particle.Particle
	TimeUntil float64

	// CrossSection is the total cross section in fm^2, already scaled
	// by the testparticle correction and formation-time suppression.
	CrossSection float64
	// Probability is the acceptance probability: the stochastic p for
	// the stochastic criterion, 1 for the geometric family.
	Probability float64
	// Channels are the weighted outgoing channels, in mb.
	Channels []xsection.Channel

	// Isotropic and FormationTime are forwarded to the execution stage.
	Isotropic     bool
	FormationTime float64
}

func (p *Pairwise) Time() float64 { return p.TimeUntil }

func (p *Pairwise) Incoming() []*particle.Particle {
	return []*particle.Particle{p.A, p.B}
}

func (p *Pairwise) isInteraction() {}

// MultiParticle is a multi-body (currently 3-to-1) candidate
// interaction.
type MultiParticle struct {
	Particles []*particle.Particle
	TimeUntil float64

	// Output is the resonance the group aggregates into.
	Output *catalog.ParticleType
	// Probability is the stochastic multi-body acceptance probability.
	Probability float64
}

func (m *MultiParticle) Time() float64 { return m.TimeUntil }

func (m *MultiParticle) Incoming() []*particle.Particle {
	return m.Particles
}

func (m *MultiParticle) isInteraction() {}
