// Package collision implements the collision-criterion policies and
// the pairwise and multi-particle interaction evaluators.
package collision

import "fmt"

// Criterion selects the interaction-acceptance rule. It is fixed for
// the lifetime of a run.
type Criterion int

const (
	// CriterionGeometric accepts a pair when its squared transverse
	// separation at closest approach is below cross_section/pi.
	CriterionGeometric Criterion = iota
	// CriterionStochastic accepts with probability
	// cross_section * v_rel * dt / cell_volume.
	CriterionStochastic
	// CriterionCovariant is the geometric test with the transverse
	// distance evaluated covariantly instead of in the lab frame.
	CriterionCovariant
)

// ParseCriterion maps a config string to a Criterion.
func ParseCriterion(s string) (Criterion, error) {
	switch s {
	case "geometric":
		return CriterionGeometric, nil
	case "stochastic":
		return CriterionStochastic, nil
	case "covariant":
		return CriterionCovariant, nil
	default:
		return 0, fmt.Errorf("unknown collision criterion: %q", s)
	}
}

func (c Criterion) String() string {
	switch c {
	case CriterionGeometric:
		return "geometric"
	case CriterionStochastic:
		return "stochastic"
	case CriterionCovariant:
		return "covariant"
	default:
		return fmt.Sprintf("criterion(%d)", int(c))
	}
}
