package decaytree

import (
	"strings"

	"github.com/hadronsim/transport-core/pkg/catalog"
)

// ExpandDecays recursively cascades every unstable type in the node's
// state through its decay channels. sqrts is the energy budget: the
// center-of-mass energy available to the node's state.
//
// Branches whose summed product masses exceed the energy left after
// reserving the rest masses of all other state particles are
// kinematically closed and pruned. If an unstable particle has no open
// branch at all, the pole-mass approximation failed for this path:
// the node's weight is zeroed and expansion of the subtree stops.
func (t *Tree) ExpandDecays(idx int, sqrts float64) {
	// If more than one unstable particle coexists in the state, the
	// tree grows redundant paths for every decay ordering. Dividing
	// each branch weight by the count of unstable particles,
	// recursively, normalizes by the factorial counting those
	// reorderings. This is an approximation, not an exact enumeration.
	nUnstable := 0
	sqrtsMinusMasses := sqrts
	for _, ptype := range t.nodes[idx].state {
		if !ptype.Stable {
			nUnstable++
		}
		sqrtsMinusMasses -= ptype.Mass
	}
	norm := 1.0
	if nUnstable != 0 {
		norm = 1.0 / float64(nUnstable)
	}

	state := append([]*catalog.ParticleType(nil), t.nodes[idx].state...)
	for _, ptype := range state {
		if ptype.Stable {
			continue
		}
		sqrtsDecay := sqrtsMinusMasses + ptype.Mass
		canDecay := false
		for bi := range ptype.Decays {
			branch := &ptype.Decays[bi]
			// Skip kinematically impossible decays. In principle the
			// resonance mass should be integrated over; as an
			// approximation it is taken at its pole.
			if branch.ProductMass() > sqrtsDecay {
				continue
			}
			canDecay = true

			child := t.AddAction(idx, decayName(ptype, branch),
				norm*branch.Ratio,
				[]*catalog.ParticleType{ptype}, branch.Products)
			t.ExpandDecays(child, sqrtsDecay)
		}
		if !canDecay {
			// A resonance that cannot decay at its pole mass zeroes the
			// whole path through this node.
			t.nodes[idx].weight = 0
			return
		}
	}
}

func decayName(res *catalog.ParticleType, branch *catalog.DecayBranch) string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(res.Name)
	b.WriteString("->")
	for _, p := range branch.Products {
		b.WriteString(p.Name)
	}
	b.WriteString("]")
	return b.String()
}
