package collision

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadronsim/transport-core/internal/particle"
	"github.com/hadronsim/transport-core/internal/xsection"
	"github.com/hadronsim/transport-core/pkg/catalog"
	"github.com/hadronsim/transport-core/pkg/config"
	"github.com/hadronsim/transport-core/pkg/physics"
	"github.com/hadronsim/transport-core/pkg/utils"
)

func omegaCatalog(t *testing.T, rate float64) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Parse([]byte(fmt.Sprintf(`
particles:
  - name: pi
    mass: 0.138
    stable: true
  - name: N
    mass: 0.938
    baryon_number: 1
    stable: true
  - name: omega
    mass: 0.783
    decays:
      - ratio: 1.0
        products: [pi, pi, pi]
aggregations:
  - inputs: [pi, pi, pi]
    output: omega
    rate: %g
    degeneracy: 3
`, rate)))
	require.NoError(t, err)
	return cat
}

func tripleEvaluator(t *testing.T, cat *catalog.Catalog, testparticles int) *Evaluator {
	t.Helper()
	xs := xsection.NewEvaluator(cat, config.CollisionTerm{ElasticCrossSection: 30.0})
	return NewEvaluator(xs, Params{
		Criterion:     CriterionStochastic,
		Testparticles: testparticles,
	})
}

// energeticPions returns three pions whose invariant mass clears the
// omega pole.
func energeticPions(t *testing.T, cat *catalog.Catalog) []*particle.Particle {
	t.Helper()
	pi, ok := cat.Lookup("pi")
	require.True(t, ok)
	return []*particle.Particle{
		{ID: 1, Type: pi, Momentum: physics.MomentumFromMass(0.138, 0.4, 0, 0)},
		{ID: 2, Type: pi, Momentum: physics.MomentumFromMass(0.138, 0, 0.4, 0)},
		{ID: 3, Type: pi, Momentum: physics.MomentumFromMass(0.138, 0, 0, 0.4)},
	}
}

func TestCheckTripleAcceptance(t *testing.T) {
	cat := omegaCatalog(t, 8.0)
	e := tripleEvaluator(t, cat, 1)
	group := energeticPions(t, cat)
	rng := utils.NewRandSource(42)

	const (
		dt      = 1.0
		cellVol = 1.0
		trials  = 500
	)
	dilution := 1.0
	for _, p := range group {
		dilution *= p.EffectiveMass() / p.Momentum.T
	}
	want := 8.0 * 3.0 * dilution * dt / (cellVol * cellVol)
	require.Greater(t, want, 0.5)
	require.Less(t, want, 1.0)

	accepted := 0
	for i := 0; i < trials; i++ {
		act, err := e.CheckTriple(group, dt, cellVol, rng)
		require.NoError(t, err)
		if act == nil {
			continue
		}
		accepted++
		assert.Equal(t, "omega", act.Output.Name)
		assert.InDelta(t, want, act.Probability, 1e-12)
		assert.GreaterOrEqual(t, act.TimeUntil, 0.0)
		assert.Less(t, act.TimeUntil, dt)
	}
	assert.InDelta(t, want, float64(accepted)/trials, 0.07)
}

func TestCheckTripleBelowPoleMass(t *testing.T) {
	cat := omegaCatalog(t, 8.0)
	e := tripleEvaluator(t, cat, 1)
	pi, _ := cat.Lookup("pi")

	// Three pions at rest sit well below the omega mass.
	group := []*particle.Particle{
		{ID: 1, Type: pi, Momentum: physics.MomentumFromMass(0.138, 0, 0, 0)},
		{ID: 2, Type: pi, Momentum: physics.MomentumFromMass(0.138, 0, 0, 0)},
		{ID: 3, Type: pi, Momentum: physics.MomentumFromMass(0.138, 0, 0, 0)},
	}
	act, err := e.CheckTriple(group, 1.0, 1.0, utils.NewRandSource(1))
	require.NoError(t, err)
	assert.Nil(t, act)
}

func TestCheckTripleNoAggregation(t *testing.T) {
	cat := omegaCatalog(t, 8.0)
	e := tripleEvaluator(t, cat, 1)
	group := energeticPions(t, cat)
	n, _ := cat.Lookup("N")
	group[2].Type = n

	act, err := e.CheckTriple(group, 1.0, 1.0, utils.NewRandSource(1))
	require.NoError(t, err)
	assert.Nil(t, act)
}

func TestCheckTripleTestparticlesFatal(t *testing.T) {
	cat := omegaCatalog(t, 8.0)
	e := tripleEvaluator(t, cat, 5)
	group := energeticPions(t, cat)

	_, err := e.CheckTriple(group, 1.0, 1.0, utils.NewRandSource(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTestparticlesUnsupported))
}

func TestCheckTripleProbabilityAboveOne(t *testing.T) {
	cat := omegaCatalog(t, 1000.0)
	e := tripleEvaluator(t, cat, 1)
	group := energeticPions(t, cat)

	_, err := e.CheckTriple(group, 1.0, 1.0, utils.NewRandSource(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProbabilityAboveOne))
}

func TestCheckTripleNeedsVolume(t *testing.T) {
	cat := omegaCatalog(t, 8.0)
	e := tripleEvaluator(t, cat, 1)
	group := energeticPions(t, cat)

	act, err := e.CheckTriple(group, 1.0, 0, utils.NewRandSource(1))
	require.NoError(t, err)
	assert.Nil(t, act)
}
