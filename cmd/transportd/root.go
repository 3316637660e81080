package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hadronsim/transport-core/pkg/catalog"
	"github.com/hadronsim/transport-core/pkg/config"
	"github.com/hadronsim/transport-core/pkg/logger"
)

// rootOptions holds global flags shared by all subcommands.
type rootOptions struct {
	configPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "transportd",
		Short:         "Hadron transport interaction-discovery engine",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "config.yaml", "path to the run configuration")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newDumpCrossSectionsCommand(opts))
	cmd.AddCommand(newDumpReactionsCommand(opts))

	return cmd
}

// loadSetup loads the configuration and catalog and installs the
// configured log level on the default logger.
func (o *rootOptions) loadSetup() (*config.Config, *catalog.Catalog, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	logger.Default = logger.New(cfg.LogLevel, os.Stdout)
	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, nil, err
	}
	return cfg, cat, nil
}
