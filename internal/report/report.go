// Package report renders the diagnostic cross-section tables consumed
// by plotting collaborators.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hadronsim/transport-core/internal/decaytree"
	"github.com/hadronsim/transport-core/internal/xsection"
	"github.com/hadronsim/transport-core/pkg/catalog"
	"github.com/hadronsim/transport-core/pkg/physics"
)

// momentumScan is the default lab-momentum grid, in GeV.
const (
	defaultPoints = 200
	momentumStep  = 0.02
)

// CrossSections writes the table of partial cross sections for the
// pair (a, b) versus center-of-mass energy. With finalState set, each
// two-body outcome is expanded through its decay tree and the columns
// are exclusive stable final states; otherwise the columns are the
// elementary channels themselves. Columns are ordered by ascending
// total final-state rest mass (the total first), rows by ascending
// energy.
func CrossSections(w io.Writer, eval *xsection.Evaluator, a, b *catalog.ParticleType, finalState bool, plab []float64) error {
	momenta := scanMomenta(a, b, plab)

	columns := map[string][]float64{}
	masses := map[string]float64{}
	put := func(name string, mass float64, row int, xs float64) {
		if _, ok := columns[name]; !ok {
			columns[name] = make([]float64, len(momenta))
			masses[name] = mass
		}
		columns[name][row] += xs
	}

	sqrtsRows := make([]float64, len(momenta))
	for row, momentum := range momenta {
		pa := physics.MomentumFromMass(a.Mass, 0, 0, momentum)
		pb := physics.MomentumFromMass(b.Mass, 0, 0, -momentum)
		sqrts := pa.Add(pb).Abs()
		sqrtsRows[row] = sqrts

		channels := eval.Channels(a, b, sqrts)
		total := xsection.TotalCrossSection(channels)
		// The total is the first column: forced by a negative mass.
		put("total", -1.0, row, total)

		if !finalState {
			for _, ch := range channels {
				mass := 0.0
				for _, f := range ch.Final {
					mass += f.Mass
				}
				put(ch.Describe(a, b), mass, row, ch.Weight)
			}
			continue
		}

		tree := decaytree.New(a.Name+b.Name, total,
			[]*catalog.ParticleType{a, b})
		for _, ch := range channels {
			// String channels have no enumerable final state before
			// fragmentation and cannot be cascaded.
			if ch.Weight <= 0 || len(ch.Final) == 0 {
				continue
			}
			child := tree.AddAction(0, ch.Describe(a, b), ch.Weight,
				[]*catalog.ParticleType{a, b}, ch.Final)
			tree.ExpandDecays(child, sqrts)
		}
		finals := decaytree.Deduplicate(tree.FinalStateCrossSections())
		for _, fs := range finals {
			put(fs.Name, fs.Mass, row, fs.CrossSection)
		}
	}

	names := columnOrder(columns, masses)

	fmt.Fprintf(w, "# Dumping partial %s%s cross-sections in mb, energies in GeV\n",
		a.Name, b.Name)
	fmt.Fprint(w, "   sqrt_s")
	for _, name := range names {
		fmt.Fprint(w, fillLeft(name, 16))
	}
	fmt.Fprintln(w)

	for row, sqrts := range sqrtsRows {
		fmt.Fprintf(w, "%9.6f", sqrts)
		for _, name := range names {
			fmt.Fprintf(w, "%16.6f", columns[name][row])
		}
		fmt.Fprintln(w)
	}
	return nil
}

// Reactions lists, for every unordered pair of catalog types, the
// distinct reaction strings with non-zero cross section anywhere on a
// coarse momentum scan.
func Reactions(w io.Writer, eval *xsection.Evaluator, cat *catalog.Catalog) {
	types := cat.Types()
	nPairs := len(types) * (len(types) + 1) / 2
	fmt.Fprintf(w, "%d particle types.\n", len(types))
	fmt.Fprintf(w, "They can make %d pairs.\n", nPairs)

	scan := []float64{0.1, 0.3, 0.5, 1.0, 2.0, 3.0, 5.0, 10.0}
	for i, a := range types {
		for _, b := range types[i:] {
			seen := map[string]bool{}
			var reactions []string
			for _, momentum := range scan {
				pa := physics.MomentumFromMass(a.Mass, 0, 0, momentum)
				pb := physics.MomentumFromMass(b.Mass, 0, 0, -momentum)
				sqrts := pa.Add(pb).Abs()
				for _, ch := range eval.Channels(a, b, sqrts) {
					if ch.Weight <= 0 {
						continue
					}
					r := ch.Describe(a, b)
					if !seen[r] {
						seen[r] = true
						reactions = append(reactions, r)
					}
				}
			}
			if len(reactions) == 0 {
				continue
			}
			sort.Strings(reactions)
			fmt.Fprintln(w, strings.Join(reactions, ", "))
		}
	}
}

func scanMomenta(a, b *catalog.ParticleType, plab []float64) []float64 {
	if len(plab) == 0 {
		momenta := make([]float64, defaultPoints)
		for i := range momenta {
			momenta[i] = momentumStep * float64(i+1)
		}
		return momenta
	}
	sorted := append([]float64(nil), plab...)
	sort.Float64s(sorted)
	deduped := sorted[:0]
	for i, p := range sorted {
		if i > 0 && p == sorted[i-1] {
			continue
		}
		deduped = append(deduped, p)
	}
	// plab values are lab momenta; convert to CM momenta.
	momenta := make([]float64, len(deduped))
	for i, p := range deduped {
		s := physics.SFromPlab(p, a.Mass, b.Mass)
		momenta[i] = physics.PCMFromS(s, a.Mass, b.Mass)
	}
	return momenta
}

func columnOrder(columns map[string][]float64, masses map[string]float64) []string {
	var names []string
	for name, series := range columns {
		sum := 0.0
		for _, v := range series {
			sum += v
		}
		// Columns that vanish everywhere carry no information.
		if sum == 0 {
			continue
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if masses[names[i]] != masses[names[j]] {
			return masses[names[i]] < masses[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// fillLeft right-aligns s in a field of width runes, matching the
// header alignment of the numeric columns.
func fillLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}
