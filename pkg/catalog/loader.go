package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// particleSpec is the YAML shape of one particle-type entry.
type particleSpec struct {
	Name         string       `yaml:"name"`
	Mass         float64      `yaml:"mass"`
	BaryonNumber int          `yaml:"baryon_number"`
	Charge       int          `yaml:"charge"`
	Stable       bool         `yaml:"stable"`
	Decays       []branchSpec `yaml:"decays,omitempty"`
}

type branchSpec struct {
	Ratio    float64  `yaml:"ratio"`
	Products []string `yaml:"products"`
}

type aggregationSpec struct {
	Inputs     []string `yaml:"inputs"`
	Output     string   `yaml:"output"`
	Rate       float64  `yaml:"rate"`
	Degeneracy float64  `yaml:"degeneracy"`
}

type fileSpec struct {
	Particles    []particleSpec    `yaml:"particles"`
	Aggregations []aggregationSpec `yaml:"aggregations,omitempty"`
}

// Load reads a particle catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from YAML bytes. Decay products and
// aggregation members are resolved by name in a second pass, so entry
// order in the file does not matter.
func Parse(data []byte) (*Catalog, error) {
	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("invalid catalog YAML: %w", err)
	}
	if len(spec.Particles) == 0 {
		return nil, fmt.Errorf("catalog defines no particles")
	}

	types := make([]*ParticleType, 0, len(spec.Particles))
	byName := make(map[string]*ParticleType, len(spec.Particles))
	for _, p := range spec.Particles {
		t := &ParticleType{
			Name:         p.Name,
			Mass:         p.Mass,
			BaryonNumber: p.BaryonNumber,
			Charge:       p.Charge,
			Stable:       p.Stable,
		}
		types = append(types, t)
		byName[p.Name] = t
	}
	for i, p := range spec.Particles {
		for _, b := range p.Decays {
			branch := DecayBranch{Ratio: b.Ratio}
			for _, name := range b.Products {
				prod, ok := byName[name]
				if !ok {
					return nil, fmt.Errorf("particle type %s: unknown decay product %s", p.Name, name)
				}
				branch.Products = append(branch.Products, prod)
			}
			types[i].Decays = append(types[i].Decays, branch)
		}
	}

	aggregations := make([]Aggregation, 0, len(spec.Aggregations))
	for _, a := range spec.Aggregations {
		agg := Aggregation{Rate: a.Rate, Degeneracy: a.Degeneracy}
		if agg.Degeneracy <= 0 {
			agg.Degeneracy = 1
		}
		if a.Rate <= 0 {
			return nil, fmt.Errorf("aggregation to %s: rate must be positive", a.Output)
		}
		for _, name := range a.Inputs {
			in, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("aggregation to %s: unknown input %s", a.Output, name)
			}
			agg.Inputs = append(agg.Inputs, in)
		}
		out, ok := byName[a.Output]
		if !ok {
			return nil, fmt.Errorf("aggregation output %s not in catalog", a.Output)
		}
		agg.Output = out
		aggregations = append(aggregations, agg)
	}

	return New(types, aggregations)
}
