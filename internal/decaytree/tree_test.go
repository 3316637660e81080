package decaytree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadronsim/transport-core/pkg/catalog"
)

func decayCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Parse([]byte(`
particles:
  - name: pi
    mass: 0.138
    stable: true
  - name: rho
    mass: 0.776
    decays:
      - ratio: 1.0
        products: [pi, pi]
  - name: R
    mass: 1.2
    decays:
      - ratio: 0.7
        products: [pi, pi]
      - ratio: 0.3
        products: [rho, pi]
  - name: heavy
    mass: 1.5
    decays:
      - ratio: 1.0
        products: [rho, rho]
`))
	require.NoError(t, err)
	return cat
}

func lookup(t *testing.T, cat *catalog.Catalog, name string) *catalog.ParticleType {
	t.Helper()
	p, ok := cat.Lookup(name)
	require.True(t, ok)
	return p
}

func findFinal(xs []FinalStateCrossSection, name string) (FinalStateCrossSection, bool) {
	for _, x := range xs {
		if x.Name == name {
			return x, true
		}
	}
	return FinalStateCrossSection{}, false
}

func TestExpandDecaysCascade(t *testing.T) {
	cat := decayCatalog(t)
	pi := lookup(t, cat, "pi")
	res := lookup(t, cat, "R")

	tree := New("pipi", 100.0, []*catalog.ParticleType{pi, pi})
	tree.AddAction(0, "elastic", 60.0,
		[]*catalog.ParticleType{pi, pi}, []*catalog.ParticleType{pi, pi})
	formed := tree.AddAction(0, "R", 40.0,
		[]*catalog.ParticleType{pi, pi}, []*catalog.ParticleType{res})
	tree.ExpandDecays(formed, 2.0)

	final := Deduplicate(tree.FinalStateCrossSections())

	// 60 elastic plus 40*0.7 through R -> pipi.
	twoPi, ok := findFinal(final, "pipi")
	require.True(t, ok)
	assert.InDelta(t, 88.0, twoPi.CrossSection, 1e-12)
	assert.InDelta(t, 2*0.138, twoPi.Mass, 1e-12)

	// 40*0.3 through R -> rho pi -> pi pi pi.
	threePi, ok := findFinal(final, "pipipi")
	require.True(t, ok)
	assert.InDelta(t, 12.0, threePi.CrossSection, 1e-12)
	assert.InDelta(t, 3*0.138, threePi.Mass, 1e-12)

	// Exclusive channels partition the total.
	sum := 0.0
	for _, x := range final {
		sum += x.CrossSection
	}
	assert.InDelta(t, 100.0, sum, 1e-12)
}

func TestExpandDecaysBranchingSplit(t *testing.T) {
	cat := decayCatalog(t)
	pi := lookup(t, cat, "pi")
	res := lookup(t, cat, "R")

	// A single resonance outcome with two open branches splits its
	// cross section by the branching ratios.
	tree := New("pipi", 40.0, []*catalog.ParticleType{pi, pi})
	formed := tree.AddAction(0, "R", 40.0,
		[]*catalog.ParticleType{pi, pi}, []*catalog.ParticleType{res})
	tree.ExpandDecays(formed, 2.0)

	final := Deduplicate(tree.FinalStateCrossSections())
	require.Len(t, final, 2)
	twoPi, ok := findFinal(final, "pipi")
	require.True(t, ok)
	assert.InDelta(t, 0.7*40.0, twoPi.CrossSection, 1e-12)
	threePi, ok := findFinal(final, "pipipi")
	require.True(t, ok)
	assert.InDelta(t, 0.3*40.0, threePi.CrossSection, 1e-12)
}

func TestExpandDecaysPrunesClosedBranches(t *testing.T) {
	cat := decayCatalog(t)
	pi := lookup(t, cat, "pi")
	res := lookup(t, cat, "R")

	tree := New("pipi", 40.0, []*catalog.ParticleType{pi, pi})
	formed := tree.AddAction(0, "R", 40.0,
		[]*catalog.ParticleType{pi, pi}, []*catalog.ParticleType{res})
	// Only the pipi branch fits below the rho pi threshold of 0.914.
	tree.ExpandDecays(formed, 0.5)

	final := Deduplicate(tree.FinalStateCrossSections())
	require.Len(t, final, 1)
	assert.Equal(t, "pipi", final[0].Name)
	assert.InDelta(t, 28.0, final[0].CrossSection, 1e-12)
}

func TestExpandDecaysZeroesUndecayablePath(t *testing.T) {
	cat := decayCatalog(t)
	pi := lookup(t, cat, "pi")
	hv := lookup(t, cat, "heavy")

	tree := New("pipi", 100.0, []*catalog.ParticleType{pi, pi})
	tree.AddAction(0, "elastic", 60.0,
		[]*catalog.ParticleType{pi, pi}, []*catalog.ParticleType{pi, pi})
	formed := tree.AddAction(0, "heavy", 40.0,
		[]*catalog.ParticleType{pi, pi}, []*catalog.ParticleType{hv})
	// At 1.0 GeV the heavy resonance cannot reach its rho rho products.
	tree.ExpandDecays(formed, 1.0)

	final := Deduplicate(tree.FinalStateCrossSections())
	require.Len(t, final, 1)
	assert.Equal(t, "pipi", final[0].Name)
	assert.InDelta(t, 60.0, final[0].CrossSection, 1e-12)
}

func TestExpandDecaysOrderingNormalization(t *testing.T) {
	cat := decayCatalog(t)
	pi := lookup(t, cat, "pi")
	rho := lookup(t, cat, "rho")

	tree := New("pipi", 10.0, []*catalog.ParticleType{pi, pi})
	formed := tree.AddAction(0, "rhorho", 10.0,
		[]*catalog.ParticleType{pi, pi}, []*catalog.ParticleType{rho, rho})
	tree.ExpandDecays(formed, 3.0)

	// Two decay orderings of the rho pair collapse back onto the full
	// partial cross section after the 1/n correction.
	final := Deduplicate(tree.FinalStateCrossSections())
	require.Len(t, final, 1)
	assert.Equal(t, "pipipipi", final[0].Name)
	assert.InDelta(t, 10.0, final[0].CrossSection, 1e-12)
}

func TestAddActionStateBookkeeping(t *testing.T) {
	cat := decayCatalog(t)
	pi := lookup(t, cat, "pi")
	rho := lookup(t, cat, "rho")

	tree := New("pipi", 1.0, []*catalog.ParticleType{pi, pi})
	idx := tree.AddAction(0, "x", 1.0,
		[]*catalog.ParticleType{pi, pi}, []*catalog.ParticleType{rho})
	assert.Equal(t, "rho", stateName(tree.nodes[idx].state))

	idx = tree.AddAction(idx, "y", 1.0,
		[]*catalog.ParticleType{rho}, []*catalog.ParticleType{pi, pi})
	assert.Equal(t, "pipi", stateName(tree.nodes[idx].state))
	assert.InDelta(t, 2*0.138, stateMass(tree.nodes[idx].state), 1e-12)
}

func TestDeduplicate(t *testing.T) {
	xs := []FinalStateCrossSection{
		{Name: "pipi", CrossSection: 3.0, Mass: 0.276},
		{Name: "pipipi", CrossSection: 0.0, Mass: 0.414},
		{Name: "pipi", CrossSection: 2.0, Mass: 0.276},
	}
	out := Deduplicate(xs)
	require.Len(t, out, 1)
	assert.Equal(t, "pipi", out[0].Name)
	assert.InDelta(t, 5.0, out[0].CrossSection, 1e-12)
}

func TestPrint(t *testing.T) {
	cat := decayCatalog(t)
	pi := lookup(t, cat, "pi")
	res := lookup(t, cat, "R")

	tree := New("pipi", 40.0, []*catalog.ParticleType{pi, pi})
	formed := tree.AddAction(0, "R", 40.0,
		[]*catalog.ParticleType{pi, pi}, []*catalog.ParticleType{res})
	tree.ExpandDecays(formed, 2.0)

	var b strings.Builder
	tree.Print(&b)
	out := b.String()
	assert.Contains(t, out, "pipi 40")
	assert.Contains(t, out, "[R->pipi] 0.7")
	assert.Contains(t, out, "[rho->pipi] 1")
}
