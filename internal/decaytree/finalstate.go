package decaytree

import "sort"

// FinalStateCrossSection is one flattened exclusive final state.
type FinalStateCrossSection struct {
	// Name is the normalized (sorted) final-state multiset name.
	Name string
	// CrossSection is the exclusive cross section in mb.
	CrossSection float64
	// Mass is the total rest mass of the final-state particles in GeV.
	Mass float64
}

// FinalStateCrossSections walks the tree depth first, multiplying the
// weights along each path, and returns one record per leaf. The root's
// weight (the total cross section) is not part of the product; the
// root's direct children carry the partial cross sections.
func (t *Tree) FinalStateCrossSections() []FinalStateCrossSection {
	type frame struct {
		idx    int
		weight float64
	}
	var result []FinalStateCrossSection
	stack := []frame{{0, 1.0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[f.idx]
		weight := f.weight
		if f.idx != 0 {
			weight *= n.weight
		}
		if len(n.children) == 0 {
			result = append(result, FinalStateCrossSection{
				Name:         stateName(n.state),
				CrossSection: weight,
				Mass:         stateMass(n.state),
			})
			continue
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{n.children[i], weight})
		}
	}
	return result
}

// Deduplicate sums cross sections sharing an identical final-state
// name and discards zero-weight entries. Zero weights only appear when
// a resonance in the final state cannot decay under the pole-mass
// approximation.
func Deduplicate(xs []FinalStateCrossSection) []FinalStateCrossSection {
	sort.Slice(xs, func(i, j int) bool { return xs[i].Name < xs[j].Name })
	out := xs[:0]
	for _, x := range xs {
		if len(out) > 0 && out[len(out)-1].Name == x.Name {
			out[len(out)-1].CrossSection += x.CrossSection
			continue
		}
		out = append(out, x)
	}
	filtered := out[:0]
	for _, x := range out {
		if x.CrossSection != 0 {
			filtered = append(filtered, x)
		}
	}
	return filtered
}
