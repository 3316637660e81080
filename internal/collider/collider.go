// Package collider sets up collider-mode initial conditions and the
// bookkeeping the discovery stage consumes: beam four-momenta for the
// frozen-beam collision-time substitution and projectile/target
// membership for the never-interacted exclusion.
package collider

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/hadronsim/transport-core/internal/particle"
	"github.com/hadronsim/transport-core/pkg/catalog"
	"github.com/hadronsim/transport-core/pkg/config"
	"github.com/hadronsim/transport-core/pkg/physics"
	"github.com/hadronsim/transport-core/pkg/utils"
)

// Modus holds the collider setup for one run.
type Modus struct {
	projectile *catalog.ParticleType
	target     *catalog.ParticleType
	sqrts      float64
	maxImpact  float64
	frozen     bool
}

// New resolves the collider configuration against the catalog.
func New(cfg *config.Collider, cat *catalog.Catalog) (*Modus, error) {
	proj, ok := cat.Lookup(cfg.Projectile)
	if !ok {
		return nil, fmt.Errorf("unknown projectile type: %s", cfg.Projectile)
	}
	targ, ok := cat.Lookup(cfg.Target)
	if !ok {
		return nil, fmt.Errorf("unknown target type: %s", cfg.Target)
	}
	if cfg.Sqrts < proj.Mass+targ.Mass {
		return nil, fmt.Errorf("collider sqrts %g GeV below threshold %g GeV",
			cfg.Sqrts, proj.Mass+targ.Mass)
	}
	return &Modus{
		projectile: proj,
		target:     targ,
		sqrts:      cfg.Sqrts,
		maxImpact:  cfg.MaxImpact,
		frozen:     cfg.FrozenFermi,
	}, nil
}

// LogStartup reports the collider parameters at run start.
func (m *Modus) LogStartup(log *slog.Logger) {
	log.Info("collider setup",
		"projectile", m.projectile.Name,
		"target", m.target.Name,
		"sqrts_gev", m.sqrts)
}

// NProj returns the number of projectile particles.
func (m *Modus) NProj() int { return 1 }

// NTot returns the number of initial beam particles.
func (m *Modus) NTot() int { return 2 }

// InitialConditions creates the projectile and target particles in the
// center-of-momentum frame, with an impact parameter sampled uniformly
// in [0, max_impact). It returns the particles and, when frozen Fermi
// motion is enabled, the beam four-momenta indexed by particle id.
func (m *Modus) InitialConditions(rng *utils.RandSource) ([]*particle.Particle, []physics.FourVector) {
	mp := m.projectile.Mass
	mt := m.target.Mass

	// Projectile energy in the CMS; the momentum magnitude is shared.
	eProj := (m.sqrts*m.sqrts + mp*mp - mt*mt) / (2.0 * m.sqrts)
	pCM := math.Sqrt(eProj*eProj - mp*mp)

	impact := rng.Uniform(0, m.maxImpact)

	proj := &particle.Particle{
		ID:       0,
		Type:     m.projectile,
		Position: physics.NewFourVector(0, impact, 0, -1.0),
		Momentum: physics.MomentumFromMass(mp, 0, 0, pCM),
	}
	targ := &particle.Particle{
		ID:       1,
		Type:     m.target,
		Position: physics.NewFourVector(0, 0, 0, 1.0),
		Momentum: physics.MomentumFromMass(mt, 0, 0, -pCM),
	}

	var beam []physics.FourVector
	if m.frozen {
		beam = []physics.FourVector{proj.Momentum, targ.Momentum}
	}
	return []*particle.Particle{proj, targ}, beam
}
