package config

// Config is the main run configuration.
type Config struct {
	LogLevel      string        `yaml:"log_level"`
	Catalog       string        `yaml:"catalog"`  // path to the particle catalog YAML
	Timestep      float64       `yaml:"timestep"` // fm/c
	Testparticles int           `yaml:"testparticles"`
	// CellVolume is the search-cell volume in fm^3, required by the
	// stochastic criterion.
	CellVolume    float64       `yaml:"cell_volume,omitempty"`
	Seed          int64         `yaml:"seed,omitempty"`
	CollisionTerm CollisionTerm `yaml:"collision_term"`
	Collider      *Collider     `yaml:"collider,omitempty"`
}

// CollisionTerm configures the interaction-discovery stage.
type CollisionTerm struct {
	// Criterion selects the acceptance rule: geometric, stochastic or
	// covariant.
	Criterion string `yaml:"criterion"`
	// ElasticCrossSection overrides the parametrized elastic cross
	// sections with a constant value in mb when non-negative.
	ElasticCrossSection float64 `yaml:"elastic_cross_section"`
	// Isotropic makes all collisions isotropic.
	Isotropic bool `yaml:"isotropic"`
	// ElasticNNCutoffSqrts suppresses elastic nucleon-nucleon
	// collisions below this sqrt(s), in GeV.
	ElasticNNCutoffSqrts float64 `yaml:"elastic_nn_cutoff_sqrts"`
	// TwoToOne enables resonance-formation channels.
	TwoToOne bool `yaml:"two_to_one"`
	// Strings enables string-excitation channels.
	Strings bool `yaml:"strings"`
	// StringParameters tune string excitation and formation times.
	StringParameters StringParameters `yaml:"string_parameters"`
}

// StringParameters are the knobs of the string-excitation model that
// the discovery stage consumes. Fragmentation-only parameters live
// with the (external) execution stage.
type StringParameters struct {
	Tension       float64 `yaml:"string_tension"`  // GeV/fm
	FormationTime float64 `yaml:"formation_time"`  // fm/c
	SigmaPerp     float64 `yaml:"sigma_perp"`      // GeV
	Threshold     float64 `yaml:"threshold"`       // sqrt(s) onset in GeV
}

// Collider configures collider-mode initial conditions.
type Collider struct {
	Projectile  string  `yaml:"projectile"`
	Target      string  `yaml:"target"`
	Sqrts       float64 `yaml:"sqrts"`                // GeV
	MaxImpact   float64 `yaml:"max_impact,omitempty"` // fm
	FrozenFermi bool    `yaml:"frozen_fermi,omitempty"`
}
