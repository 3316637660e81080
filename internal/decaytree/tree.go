// Package decaytree builds the tree of cascading resonance decays
// rooted at a two-body scattering outcome and flattens it into
// exclusive final-state cross sections. It serves the diagnostic
// cross-section report only, not the transport search.
package decaytree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hadronsim/transport-core/pkg/catalog"
)

// Tree is an arena of decay nodes. Node 0 is the root: its weight is
// the two-body total cross section; every other node's weight is a
// branching ratio (or a partial cross section for the root's direct
// children). Children are addressed by index, so traversal never
// recurses over owned sub-objects.
type Tree struct {
	nodes []node
}

type node struct {
	name   string
	weight float64

	initial []*catalog.ParticleType
	final   []*catalog.ParticleType
	// state is the global particle-type multiset after this action,
	// sorted by name to normalize output.
	state []*catalog.ParticleType

	children []int
}

// New creates a tree whose root carries the two incoming types as its
// state and the total cross section as its weight.
func New(name string, weight float64, state []*catalog.ParticleType) *Tree {
	root := node{
		name:    name,
		weight:  weight,
		initial: append([]*catalog.ParticleType(nil), state...),
		final:   append([]*catalog.ParticleType(nil), state...),
		state:   sortedByName(state),
	}
	return &Tree{nodes: []node{root}}
}

// AddAction appends a child to the given node. The child's state is
// the parent's state with the initial types replaced by the final
// types. Returns the child's index.
func (t *Tree) AddAction(parent int, name string, weight float64, initial, final []*catalog.ParticleType) int {
	state := append([]*catalog.ParticleType(nil), t.nodes[parent].state...)
	for _, p := range initial {
		for i, s := range state {
			if s == p {
				state = append(state[:i], state[i+1:]...)
				break
			}
		}
	}
	state = append(state, final...)
	state = sortedByName(state)

	child := len(t.nodes)
	t.nodes = append(t.nodes, node{
		name:    name,
		weight:  weight,
		initial: initial,
		final:   final,
		state:   state,
	})
	t.nodes[parent].children = append(t.nodes[parent].children, child)
	return child
}

// Print renders the tree for debugging, one node per line indented by
// depth.
func (t *Tree) Print(w *strings.Builder) {
	type frame struct{ idx, depth int }
	stack := []frame{{0, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[f.idx]
		fmt.Fprintf(w, "%s%s %g\n", strings.Repeat(" ", f.depth), n.name, n.weight)
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{n.children[i], f.depth + 1})
		}
	}
}

func sortedByName(state []*catalog.ParticleType) []*catalog.ParticleType {
	sorted := append([]*catalog.ParticleType(nil), state...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

func stateMass(state []*catalog.ParticleType) float64 {
	m := 0.0
	for _, p := range state {
		m += p.Mass
	}
	return m
}

func stateName(state []*catalog.ParticleType) string {
	var b strings.Builder
	for _, p := range state {
		b.WriteString(p.Name)
	}
	return b.String()
}
