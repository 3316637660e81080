// Package catalog holds the read-only particle-type and decay-table
// data consumed by the interaction-discovery core. A Catalog is built
// once at startup and never mutated afterwards.
package catalog

import "fmt"

// DecayBranch is one decay channel of an unstable particle type.
type DecayBranch struct {
	// Ratio is the branching ratio of this channel in [0, 1].
	Ratio float64
	// Products are the decay products, resolved against the catalog.
	Products []*ParticleType
}

// ProductMass returns the summed pole masses of the branch products.
func (b *DecayBranch) ProductMass() float64 {
	m := 0.0
	for _, p := range b.Products {
		m += p.Mass
	}
	return m
}

// ParticleType is an immutable particle species descriptor.
type ParticleType struct {
	Name         string
	Mass         float64 // pole mass in GeV
	BaryonNumber int
	Charge       int
	Stable       bool
	Decays       []DecayBranch
}

// Aggregation describes a multi-particle (3-to-1) process: a fixed
// input multiset that can fuse into a single resonance.
type Aggregation struct {
	Inputs     []*ParticleType
	Output     *ParticleType
	Rate       float64 // effective rate constant in fm^8/c
	Degeneracy float64 // spin/isospin degeneracy factor
}

// Catalog is the full particle-type table.
type Catalog struct {
	byName       map[string]*ParticleType
	ordered      []*ParticleType
	aggregations []Aggregation
}

// New builds a catalog from resolved particle types and aggregations.
// Types must have unique names; decay products must be catalog members.
func New(types []*ParticleType, aggregations []Aggregation) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]*ParticleType, len(types))}
	for _, t := range types {
		if t.Name == "" {
			return nil, fmt.Errorf("particle type with empty name")
		}
		if t.Mass <= 0 {
			return nil, fmt.Errorf("particle type %s: mass must be positive", t.Name)
		}
		if _, dup := c.byName[t.Name]; dup {
			return nil, fmt.Errorf("duplicate particle type: %s", t.Name)
		}
		if t.Stable && len(t.Decays) > 0 {
			return nil, fmt.Errorf("particle type %s: stable type cannot have decay branches", t.Name)
		}
		if !t.Stable && len(t.Decays) == 0 {
			return nil, fmt.Errorf("particle type %s: unstable type needs at least one decay branch", t.Name)
		}
		c.byName[t.Name] = t
		c.ordered = append(c.ordered, t)
	}
	for _, t := range types {
		sum := 0.0
		for _, b := range t.Decays {
			if b.Ratio <= 0 || b.Ratio > 1 {
				return nil, fmt.Errorf("particle type %s: branching ratio %g out of (0, 1]", t.Name, b.Ratio)
			}
			sum += b.Ratio
		}
		if !t.Stable && (sum < 1-1e-9 || sum > 1+1e-9) {
			return nil, fmt.Errorf("particle type %s: branching ratios sum to %g, want 1", t.Name, sum)
		}
	}
	c.aggregations = aggregations
	return c, nil
}

// Lookup returns the type with the given name.
func (c *Catalog) Lookup(name string) (*ParticleType, bool) {
	t, ok := c.byName[name]
	return t, ok
}

// Types returns all types in catalog order. The returned slice must
// not be modified.
func (c *Catalog) Types() []*ParticleType {
	return c.ordered
}

// FindAggregation returns the aggregation whose input multiset matches
// the given group of types, if any.
func (c *Catalog) FindAggregation(group []*ParticleType) (Aggregation, bool) {
	for _, agg := range c.aggregations {
		if sameMultiset(agg.Inputs, group) {
			return agg, true
		}
	}
	return Aggregation{}, false
}

func sameMultiset(a, b []*ParticleType) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[*ParticleType]int, len(a))
	for _, t := range a {
		counts[t]++
	}
	for _, t := range b {
		counts[t]--
		if counts[t] < 0 {
			return false
		}
	}
	return true
}
