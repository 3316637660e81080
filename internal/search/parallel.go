package search

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hadronsim/transport-core/internal/collision"
	"github.com/hadronsim/transport-core/internal/particle"
	"github.com/hadronsim/transport-core/pkg/physics"
	"github.com/hadronsim/transport-core/pkg/utils"
)

// Cell is one region of the spatial decomposition handed to discovery.
// Particle lists are read-only for the duration of the search.
type Cell struct {
	Particles []*particle.Particle
	Neighbors []*particle.Particle
	Volume    float64
}

// FindAll runs in-cell and neighbor discovery over all cells in
// parallel. Each cell gets an independent random stream forked from
// rng, so draws within a cell are sequential and reproducible given
// the seed; the order of draws across cells is not deterministic and
// does not need to be. The first fatal error cancels the remaining
// cells.
func (f *Finder) FindAll(cells []Cell, dt float64, beamMomentum []physics.FourVector, rng *utils.RandSource) ([]collision.Interaction, error) {
	// Fork the per-cell streams up front, in cell order, so the
	// derived seeds do not depend on goroutine scheduling.
	streams := make([]*utils.RandSource, len(cells))
	for i := range cells {
		streams[i] = rng.Fork(int64(i))
	}

	var (
		mu      sync.Mutex
		actions []collision.Interaction
	)
	var g errgroup.Group
	for i, cell := range cells {
		i, cell := i, cell
		g.Go(func() error {
			found, err := f.FindInCell(cell.Particles, dt, cell.Volume, beamMomentum, streams[i])
			if err != nil {
				return err
			}
			if len(cell.Neighbors) > 0 {
				near, err := f.FindWithNeighbors(cell.Particles, cell.Neighbors, dt, beamMomentum, streams[i])
				if err != nil {
					return err
				}
				found = append(found, near...)
			}
			mu.Lock()
			actions = append(actions, found...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return actions, nil
}
