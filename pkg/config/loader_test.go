package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfigYAML([]byte(`
timestep: 0.1
catalog: particles.yaml
`))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1, cfg.Testparticles)
	assert.Equal(t, "geometric", cfg.CollisionTerm.Criterion)
	assert.Equal(t, -1.0, cfg.CollisionTerm.ElasticCrossSection)
	assert.Equal(t, 1.98, cfg.CollisionTerm.ElasticNNCutoffSqrts)
	assert.Equal(t, 1.0, cfg.CollisionTerm.StringParameters.FormationTime)
}

func TestParseConfigFull(t *testing.T) {
	cfg, err := ParseConfigYAML([]byte(`
log_level: debug
catalog: particles.yaml
timestep: 0.05
testparticles: 5
collision_term:
  criterion: covariant
  elastic_cross_section: 30.0
  isotropic: true
  two_to_one: true
  strings: true
collider:
  projectile: N
  target: N
  sqrts: 4.3
`))
	require.NoError(t, err)
	assert.Equal(t, "covariant", cfg.CollisionTerm.Criterion)
	assert.Equal(t, 30.0, cfg.CollisionTerm.ElasticCrossSection)
	assert.True(t, cfg.CollisionTerm.Isotropic)
	require.NotNil(t, cfg.Collider)
	assert.Equal(t, 5.0, cfg.Collider.MaxImpact) // defaulted
}

func TestParseConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"missing timestep", "catalog: p.yaml", "timestep must be positive"},
		{"bad criterion", "timestep: 0.1\ncollision_term:\n  criterion: magic", "invalid collision_term.criterion"},
		{"bad log level", "timestep: 0.1\nlog_level: loud", "invalid log_level"},
		{"stochastic needs volume", "timestep: 0.1\ncollision_term:\n  criterion: stochastic", "requires a positive cell_volume"},
		{"collider needs sqrts", "timestep: 0.1\ncollider:\n  projectile: N\n  target: N", "collider.sqrts must be positive"},
		{"collider needs both beams", "timestep: 0.1\ncollider:\n  projectile: N\n  sqrts: 3.0", "requires both projectile and target"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseConfigYAML([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestStochasticConfigAccepted(t *testing.T) {
	cfg, err := ParseConfigYAML([]byte(`
timestep: 0.1
cell_volume: 125.0
collision_term:
  criterion: stochastic
`))
	require.NoError(t, err)
	assert.Equal(t, 125.0, cfg.CellVolume)
}
