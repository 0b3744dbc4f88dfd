// Package cli implements the pharmyrus command line: a server mode and a
// one-shot search mode sharing the same configuration and pipeline.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/turtacn/pharmyrus/internal/config"
)

// configPath is the --config flag value, shared by all subcommands.
var configPath string

// NewRootCommand builds the pharmyrus command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "pharmyrus",
		Short:         "Brazilian pharmaceutical patent discovery",
		Long:          "Pharmyrus discovers Brazilian patent filings for a pharmaceutical molecule\nby chaining synonym enrichment, international filing discovery, family\nresolution and a direct national registry search.",
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default: environment only)")

	root.AddCommand(newServeCommand())
	root.AddCommand(newSearchCommand())
	return root
}

// loadConfig loads from --config when given, otherwise from the environment.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.LoadFromEnv()
}
