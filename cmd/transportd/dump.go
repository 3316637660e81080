package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hadronsim/transport-core/internal/report"
	"github.com/hadronsim/transport-core/internal/xsection"
)

func newDumpCrossSectionsCommand(opts *rootOptions) *cobra.Command {
	var (
		finalState bool
		plab       []float64
	)

	cmd := &cobra.Command{
		Use:   "dump-cross-sections <projectile> <target>",
		Short: "Print partial (or exclusive final-state) cross sections versus energy",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cat, err := opts.loadSetup()
			if err != nil {
				return err
			}
			a, ok := cat.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown particle type: %s", args[0])
			}
			b, ok := cat.Lookup(args[1])
			if !ok {
				return fmt.Errorf("unknown particle type: %s", args[1])
			}
			eval := xsection.NewEvaluator(cat, cfg.CollisionTerm)
			return report.CrossSections(os.Stdout, eval, a, b, finalState, plab)
		},
	}

	cmd.Flags().BoolVar(&finalState, "final-state", false, "expand outcomes into exclusive stable final states")
	cmd.Flags().Float64SliceVar(&plab, "plab", nil, "explicit lab momenta in GeV instead of the default scan")
	return cmd
}

func newDumpReactionsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dump-reactions",
		Short: "List all possible reactions between catalog particle types",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cat, err := opts.loadSetup()
			if err != nil {
				return err
			}
			eval := xsection.NewEvaluator(cat, cfg.CollisionTerm)
			report.Reactions(os.Stdout, eval, cat)
			return nil
		},
	}
}
