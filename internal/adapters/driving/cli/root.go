// Package cli implements the giraffe command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giraffe-kg/giraffe-cli/internal/adapters/driven/automat"
	"github.com/giraffe-kg/giraffe-cli/internal/adapters/driven/config/file"
	"github.com/giraffe-kg/giraffe-cli/internal/adapters/driven/nameres"
	"github.com/giraffe-kg/giraffe-cli/internal/adapters/driven/togows"
	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
	"github.com/giraffe-kg/giraffe-cli/internal/core/ports/driving"
	"github.com/giraffe-kg/giraffe-cli/internal/core/services"
	"github.com/giraffe-kg/giraffe-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "0.1.0"

// Services used by the commands. Populated by bootstrap on first run;
// tests inject mocks directly.
var (
	resolverService driving.ResolverService
	variantService  driving.VariantService
	batchService    driving.BatchService

	// configuredPadding is the default flanking margin from settings.
	configuredPadding = domain.DefaultPadding
)

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "giraffe",
	Short: "Resolve diseases to ontology identifiers, variants and sequence",
	Long: `Giraffe walks public biomedical services to answer one question:
given a disease name, which sequence variants are linked to it, and
what does the reference genome look like around them?

It resolves names against the SRI name-resolution service, queries the
Automat knowledge graph for linked sequence variants, and fetches
padded reference sequence from TogoWS.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return bootstrap()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose progress output on stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.giraffe)")
}

// bootstrap wires the services from settings. Already-populated
// services are left alone, which lets tests inject mocks.
func bootstrap() error {
	if resolverService != nil && variantService != nil && batchService != nil {
		return nil
	}

	settings, err := file.Load(configDir)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	resolver := services.NewResolverService(
		nameres.NewClient(nameres.Config{
			BaseURL: settings.Resolver.URL,
			Timeout: settings.Timeout(),
		}),
		settings.Resolver.Namespace,
	)
	variants := services.NewVariantService(
		automat.NewClient(automat.Config{
			BaseURL: settings.Graph.URL,
			Timeout: settings.Timeout(),
		}),
		togows.NewClient(togows.Config{
			BaseURL: settings.Sequence.URL,
			Timeout: settings.Timeout(),
		}),
		resolver,
	)

	resolverService = resolver
	variantService = variants
	batchService = services.NewBatchService(resolver)
	configuredPadding = settings.Sequence.Padding

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
