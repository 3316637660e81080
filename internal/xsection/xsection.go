// Package xsection enumerates the elementary two-body processes and
// their partial cross sections. The parametrizations are smooth
// stand-ins with the right shapes (constant-override elastic,
// resonance peaks, string onset); discovery treats them as a black box
// keyed by particle types and energy.
package xsection

import (
	"fmt"

	"github.com/hadronsim/transport-core/pkg/catalog"
	"github.com/hadronsim/transport-core/pkg/config"
)

// Process classifies an elementary channel.
type Process int

const (
	ProcessNone Process = iota
	ProcessElastic
	ProcessTwoToOne // resonance formation
	ProcessStringSoft
	ProcessStringHard
)

// String returns the short suffix used in reaction listings.
func (p Process) String() string {
	switch p {
	case ProcessElastic:
		return "el"
	case ProcessTwoToOne:
		return "res"
	case ProcessStringSoft:
		return "str-soft"
	case ProcessStringHard:
		return "str-hard"
	default:
		return "none"
	}
}

// Channel is one weighted outgoing channel of a two-body collision.
type Channel struct {
	Process Process
	Weight  float64 // partial cross section in mb
	// Final holds the outgoing particle types. Empty for string
	// channels, whose final state is only fixed by fragmentation.
	Final []*catalog.ParticleType
}

// Describe renders a channel as a reaction string for listings.
func (c Channel) Describe(a, b *catalog.ParticleType) string {
	if c.Process == ProcessStringSoft || c.Process == ProcessStringHard {
		return a.Name + b.Name + " → strings"
	}
	out := ""
	for _, f := range c.Final {
		out += f.Name
	}
	return fmt.Sprintf("%s%s → %s (%s)", a.Name, b.Name, out, c.Process)
}

// Evaluator computes the channel list for a particle-type pair at a
// given center-of-mass energy. It is immutable after construction and
// safe for concurrent use.
type Evaluator struct {
	catalog         *catalog.Catalog
	elasticParam    float64 // constant elastic override in mb, <0 means parametrized
	lowNNCut        float64 // sqrt(s) cutoff for elastic NN collisions
	twoToOne        bool
	strings         bool
	stringThreshold float64
}

// NewEvaluator builds an evaluator from the collision-term config.
func NewEvaluator(cat *catalog.Catalog, ct config.CollisionTerm) *Evaluator {
	return &Evaluator{
		catalog:         cat,
		elasticParam:    ct.ElasticCrossSection,
		lowNNCut:        ct.ElasticNNCutoffSqrts,
		twoToOne:        ct.TwoToOne,
		strings:         ct.Strings,
		stringThreshold: ct.StringParameters.Threshold,
	}
}

// ConstantElastic reports whether a constant elastic override is
// configured; the override then bounds the total cross section.
func (e *Evaluator) ConstantElastic() bool {
	return e.elasticParam >= 0
}

// Channels enumerates every open elementary channel for the pair (a, b)
// at center-of-mass energy sqrts. Channels with non-positive weight are
// omitted.
func (e *Evaluator) Channels(a, b *catalog.ParticleType, sqrts float64) []Channel {
	var channels []Channel

	if w := e.elastic(a, b, sqrts); w > 0 {
		channels = append(channels, Channel{
			Process: ProcessElastic,
			Weight:  w,
			Final:   []*catalog.ParticleType{a, b},
		})
	}

	if e.twoToOne {
		for _, res := range e.catalog.Types() {
			if res.Stable {
				continue
			}
			for _, branch := range res.Decays {
				if !matchesPair(branch.Products, a, b) {
					continue
				}
				if w := resonanceFormation(res, branch, sqrts); w > 0 {
					channels = append(channels, Channel{
						Process: ProcessTwoToOne,
						Weight:  w,
						Final:   []*catalog.ParticleType{res},
					})
				}
			}
		}
	}

	if e.strings && sqrts > e.stringThreshold {
		w := stringExcitation(sqrts, e.stringThreshold)
		// Soft/hard split grows with energy.
		hardFrac := 1.0 - e.stringThreshold/sqrts
		channels = append(channels,
			Channel{Process: ProcessStringSoft, Weight: w * (1.0 - hardFrac)},
			Channel{Process: ProcessStringHard, Weight: w * hardFrac},
		)
	}

	return channels
}

// TotalCrossSection sums the channel weights, in mb.
func TotalCrossSection(channels []Channel) float64 {
	total := 0.0
	for _, c := range channels {
		total += c.Weight
	}
	return total
}

// Aggregation looks up the multi-particle process, if any, whose input
// multiset matches the given group of types.
func (e *Evaluator) Aggregation(group []*catalog.ParticleType) (catalog.Aggregation, bool) {
	return e.catalog.FindAggregation(group)
}

// elastic returns the elastic cross section in mb, or 0 if the channel
// is closed.
func (e *Evaluator) elastic(a, b *catalog.ParticleType, sqrts float64) float64 {
	if sqrts < a.Mass+b.Mass {
		return 0
	}
	// Elastic NN collisions below the cutoff cannot happen.
	if a.BaryonNumber != 0 && b.BaryonNumber != 0 && sqrts < e.lowNNCut {
		return 0
	}
	if e.elasticParam >= 0 {
		return e.elasticParam
	}
	// Falling parametrization in the excess energy above threshold.
	q := sqrts - a.Mass - b.Mass
	return 40.0 / (1.0 + q*q)
}

// resonanceFormation returns the 2-to-1 formation cross section for a
// resonance reached through the given branch, in mb. A fixed-width
// Breit-Wigner peak at the pole mass, scaled by the branching ratio of
// the entrance channel.
func resonanceFormation(res *catalog.ParticleType, branch catalog.DecayBranch, sqrts float64) float64 {
	if sqrts < branch.ProductMass() {
		return 0
	}
	const peak = 60.0  // mb
	const width = 0.15 // GeV
	x := (sqrts - res.Mass) / width
	return peak * branch.Ratio / (1.0 + x*x)
}

// stringExcitation returns the summed string cross section above the
// configured onset, in mb.
func stringExcitation(sqrts, threshold float64) float64 {
	return 25.0 * (1.0 - threshold/sqrts)
}

func matchesPair(products []*catalog.ParticleType, a, b *catalog.ParticleType) bool {
	if len(products) != 2 {
		return false
	}
	return (products[0] == a && products[1] == b) ||
		(products[0] == b && products[1] == a)
}
