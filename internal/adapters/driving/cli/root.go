// Package cli implements the cobra command tree for fourcorner.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/cantolabs/fourcorner-cli/internal/core/ports/driven"
	"github.com/cantolabs/fourcorner-cli/internal/core/ports/driving"
	"github.com/cantolabs/fourcorner-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by main before Execute.
var (
	ingestService driving.IngestService
	lookupService driving.LookupService
	configStore   driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "fourcorner",
	Short: "Look up CJK characters by four-corner code",
	Long: `fourcorner indexes a character dataset by its four-corner
classification code and answers prefix queries interactively.

The dataset is fetched from the configured URL on first use; when the
fetch fails you can point the tool at a local copy with --file.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetServices injects the core services the commands run against.
func SetServices(ingest driving.IngestService, lookup driving.LookupService) {
	ingestService = ingest
	lookupService = lookup
}

// SetConfigStore injects the config store the config command manages.
func SetConfigStore(store driven.ConfigStore) {
	configStore = store
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
