// Package search enumerates candidate particle pairs and triples per
// spatial region and routes them to the interaction evaluators.
package search

import (
	"github.com/hadronsim/transport-core/internal/collision"
	"github.com/hadronsim/transport-core/internal/particle"
	"github.com/hadronsim/transport-core/pkg/physics"
	"github.com/hadronsim/transport-core/pkg/utils"
)

// Finder assembles the set of candidate interactions for a timestep.
// Conflicts between interactions sharing a particle are left to the
// execution stage.
type Finder struct {
	eval  *collision.Evaluator
	stats *Stats
}

// NewFinder creates a finder over the given evaluator.
func NewFinder(eval *collision.Evaluator) *Finder {
	return &Finder{eval: eval, stats: &Stats{}}
}

// Stats returns the finder's discovery counters.
func (f *Finder) Stats() *Stats {
	return f.stats
}

// FindInCell checks every unordered pair within one cell and, under
// the stochastic criterion only, every ordered triple.
func (f *Finder) FindInCell(searchList []*particle.Particle, dt, cellVol float64, beamMomentum []physics.FourVector, rng *utils.RandSource) ([]collision.Interaction, error) {
	var actions []collision.Interaction
	stochastic := f.eval.Criterion() == collision.CriterionStochastic

	for _, p1 := range searchList {
		for _, p2 := range searchList {
			if p1.ID < p2.ID {
				f.stats.addPair()
				act, err := f.eval.CheckPair(p1, p2, dt, beamMomentum, cellVol, rng)
				if err != nil {
					return nil, err
				}
				if act != nil {
					f.stats.addAccepted()
					actions = append(actions, act)
				}
			}
			if stochastic {
				for _, p3 := range searchList {
					if p1.ID < p2.ID && p2.ID < p3.ID {
						f.stats.addTriple()
						act, err := f.eval.CheckTriple(
							[]*particle.Particle{p1, p2, p3}, dt, cellVol, rng)
						if err != nil {
							return nil, err
						}
						if act != nil {
							f.stats.addAccepted()
							actions = append(actions, act)
						}
					}
				}
			}
		}
	}
	return actions, nil
}

// FindWithNeighbors checks every pair between a cell and a disjoint
// neighbor list. The stochastic criterion only searches within cells.
func (f *Finder) FindWithNeighbors(searchList, neighborsList []*particle.Particle, dt float64, beamMomentum []physics.FourVector, rng *utils.RandSource) ([]collision.Interaction, error) {
	if f.eval.Criterion() == collision.CriterionStochastic {
		return nil, nil
	}
	var actions []collision.Interaction
	for _, p1 := range searchList {
		for _, p2 := range neighborsList {
			act, err := f.checkOrdered(p1, p2, dt, beamMomentum, rng)
			if err != nil {
				return nil, err
			}
			if act != nil {
				actions = append(actions, act)
			}
		}
	}
	return actions, nil
}

// FindWithSurrounding checks a cell's particles against particles
// outside the spatial decomposition, skipping any particle present in
// both lists. The stochastic criterion only searches within cells.
func (f *Finder) FindWithSurrounding(searchList, surroundingList []*particle.Particle, dt float64, beamMomentum []physics.FourVector, rng *utils.RandSource) ([]collision.Interaction, error) {
	if f.eval.Criterion() == collision.CriterionStochastic {
		return nil, nil
	}
	inSearch := make(map[int]bool, len(searchList))
	for _, p := range searchList {
		inSearch[p.ID] = true
	}
	var actions []collision.Interaction
	for _, p2 := range surroundingList {
		if inSearch[p2.ID] {
			continue
		}
		for _, p1 := range searchList {
			act, err := f.checkOrdered(p1, p2, dt, beamMomentum, rng)
			if err != nil {
				return nil, err
			}
			if act != nil {
				actions = append(actions, act)
			}
		}
	}
	return actions, nil
}

// checkOrdered evaluates one unordered pair in ascending-id order, so
// each pair is seen by the evaluator in a single canonical form.
func (f *Finder) checkOrdered(p1, p2 *particle.Particle, dt float64, beamMomentum []physics.FourVector, rng *utils.RandSource) (collision.Interaction, error) {
	if p2.ID < p1.ID {
		p1, p2 = p2, p1
	}
	f.stats.addPair()
	act, err := f.eval.CheckPair(p1, p2, dt, beamMomentum, 0, rng)
	if err != nil {
		return nil, err
	}
	if act == nil {
		return nil, nil
	}
	f.stats.addAccepted()
	return act, nil
}
