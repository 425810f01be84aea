// Package cli implements the cobra command-line interface, the driving
// adapter through which operators query the assistant.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/opsdesk/finassist-cli/internal/adapters/driven/config/file"
	corpusfile "github.com/opsdesk/finassist-cli/internal/adapters/driven/corpus/file"
	templatesfile "github.com/opsdesk/finassist-cli/internal/adapters/driven/templates/file"
	"github.com/opsdesk/finassist-cli/internal/core/ports/driving"
	"github.com/opsdesk/finassist-cli/internal/core/services"
	"github.com/opsdesk/finassist-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// assistantService is wired by initServices, or injected directly by
// tests.
var assistantService driving.AssistantService

var (
	flagVerbose   bool
	flagIndex     string
	flagTemplates string
	flagConfigDir string
)

var rootCmd = &cobra.Command{
	Use:   "finassist",
	Short: "Operational assistant for Finacle banking manuals",
	Long: `Finassist answers "how do I do X" questions against a pre-built
index of banking operations manuals. Each answer suggests a menu
command, step-by-step instructions, and the exact manual pages to
verify against.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagIndex, "index", "data/finacle_index.json", "path to the pre-built corpus index")
	rootCmd.PersistentFlags().StringVar(&flagTemplates, "templates", "data/sops.yaml", "path to the curated template library")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.finassist)")
}

// initServices wires the file adapters into the assistant service.
// Called lazily so commands like version never touch the filesystem.
func initServices() error {
	configStore, err := configfile.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	corpusStore, err := corpusfile.NewCorpusStore(flagIndex)
	if err != nil {
		return fmt.Errorf("load corpus index: %w", err)
	}

	templateStore, err := templatesfile.NewTemplateStore(flagTemplates)
	if err != nil {
		return fmt.Errorf("load template library: %w", err)
	}

	assistantService = services.NewAssistantService(corpusStore, templateStore, configStore)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
