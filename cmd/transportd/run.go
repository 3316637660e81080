package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hadronsim/transport-core/internal/collider"
	"github.com/hadronsim/transport-core/internal/collision"
	"github.com/hadronsim/transport-core/internal/density"
	"github.com/hadronsim/transport-core/internal/particle"
	"github.com/hadronsim/transport-core/internal/search"
	"github.com/hadronsim/transport-core/internal/xsection"
	"github.com/hadronsim/transport-core/pkg/logger"
	"github.com/hadronsim/transport-core/pkg/physics"
	"github.com/hadronsim/transport-core/pkg/utils"
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run interaction discovery over free-streaming timesteps",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cat, err := opts.loadSetup()
			if err != nil {
				return err
			}
			crit, err := collision.ParseCriterion(cfg.CollisionTerm.Criterion)
			if err != nil {
				return err
			}
			if cfg.Collider == nil {
				return fmt.Errorf("run requires a collider block in the configuration")
			}

			rng := utils.NewRandSource(cfg.Seed)
			modus, err := collider.New(cfg.Collider, cat)
			if err != nil {
				return err
			}
			modus.LogStartup(logger.Default)
			parts, beam := modus.InitialConditions(rng)

			eval := collision.NewEvaluator(
				xsection.NewEvaluator(cat, cfg.CollisionTerm),
				collision.Params{
					Criterion:     crit,
					Testparticles: cfg.Testparticles,
					Isotropic:     cfg.CollisionTerm.Isotropic,
					FormationTime: cfg.CollisionTerm.StringParameters.FormationTime,
				}).
				WithLogger(logger.Default).
				WithColliderExclusion(make([]bool, modus.NTot()), modus.NTot(), modus.NProj())

			finder := search.NewFinder(eval)
			densPar := density.NewParameters(1.0, 4.0, cfg.Testparticles)

			for step := 0; step < steps; step++ {
				cells := []search.Cell{{Particles: parts, Volume: cfg.CellVolume}}
				actions, err := finder.FindAll(cells, cfg.Timestep, beam, rng)
				if err != nil {
					// Fatal discovery errors abort the run.
					return fmt.Errorf("discovery failed at step %d: %w", step, err)
				}

				rho, _ := density.EckartCurrent(physics.ThreeVector{}, parts,
					densPar, density.TypeHadron)
				logger.Info("timestep searched",
					"step", step,
					"candidates", len(actions),
					"pairs_checked", finder.Stats().PairsChecked(),
					"triples_checked", finder.Stats().TriplesChecked(),
					"central_hadron_density", rho)
				finder.Stats().Reset()

				// Candidate application is the execution stage's job;
				// here particles free-stream to the next step.
				freeStream(parts, cfg.Timestep)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 10, "number of timesteps to search")
	return cmd
}

func freeStream(parts []*particle.Particle, dt float64) {
	for _, p := range parts {
		v := p.Velocity()
		p.Position = p.Position.Add(physics.NewFourVector(dt, v.X*dt, v.Y*dt, v.Z*dt))
	}
}
