package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads, defaults and validates a configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfigYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfigYAML parses YAML bytes into a validated Config.
func ParseConfigYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	applyDefaults(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Testparticles == 0 {
		cfg.Testparticles = 1
	}
	ct := &cfg.CollisionTerm
	if ct.Criterion == "" {
		ct.Criterion = "geometric"
	}
	if ct.ElasticCrossSection == 0 {
		ct.ElasticCrossSection = -1.0 // parametrized
	}
	if ct.ElasticNNCutoffSqrts == 0 {
		ct.ElasticNNCutoffSqrts = 1.98
	}
	sp := &ct.StringParameters
	if sp.Tension == 0 {
		sp.Tension = 1.0
	}
	if sp.FormationTime == 0 {
		sp.FormationTime = 1.0
	}
	if sp.SigmaPerp == 0 {
		sp.SigmaPerp = 0.42
	}
	if sp.Threshold == 0 {
		sp.Threshold = 3.5
	}
	if cfg.Collider != nil && cfg.Collider.MaxImpact == 0 {
		cfg.Collider.MaxImpact = 5.0
	}
}

func validateConfig(cfg *Config) error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}
	if cfg.Timestep <= 0 {
		return fmt.Errorf("timestep must be positive, got %g", cfg.Timestep)
	}
	if cfg.Testparticles < 1 {
		return fmt.Errorf("testparticles must be at least 1, got %d", cfg.Testparticles)
	}

	switch cfg.CollisionTerm.Criterion {
	case "stochastic":
		if cfg.CellVolume <= 0 {
			return fmt.Errorf("stochastic criterion requires a positive cell_volume, got %g", cfg.CellVolume)
		}
	case "geometric", "covariant":
	default:
		return fmt.Errorf("invalid collision_term.criterion: %s (must be geometric, stochastic, or covariant)", cfg.CollisionTerm.Criterion)
	}
	if cfg.CollisionTerm.ElasticNNCutoffSqrts < 0 {
		return fmt.Errorf("collision_term.elastic_nn_cutoff_sqrts cannot be negative")
	}
	sp := cfg.CollisionTerm.StringParameters
	if sp.Tension <= 0 || sp.FormationTime <= 0 || sp.SigmaPerp <= 0 {
		return fmt.Errorf("string_parameters must be positive")
	}

	if cfg.Collider != nil {
		if cfg.Collider.Projectile == "" || cfg.Collider.Target == "" {
			return fmt.Errorf("collider requires both projectile and target")
		}
		if cfg.Collider.Sqrts <= 0 {
			return fmt.Errorf("collider.sqrts must be positive, got %g", cfg.Collider.Sqrts)
		}
		if cfg.Collider.MaxImpact < 0 {
			return fmt.Errorf("collider.max_impact cannot be negative")
		}
	}
	return nil
}
