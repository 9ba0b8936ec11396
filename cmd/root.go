// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/naka-gawa/github-badges/internal/config"
	"github.com/naka-gawa/github-badges/internal/gateway"
	"github.com/naka-gawa/github-badges/internal/usecase"
)

var (
	verbose bool
	cfg     *config.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "github-badges",
	Short: "Renders GitHub profile data as SVG badges.",
	Long: `github-badges fetches a GitHub user's profile, repositories, languages
and contribution calendar and renders them as SVG badges: a stats card,
a language chart, a contribution heatmap and an animated snake.

Set GITHUB_TOKEN (in the environment or a .env file) to raise the API rate limits.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env file is fine; the environment may already be set.
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if cfg.GitHubToken == "" {
			logger.Warn("GITHUB_TOKEN is not set, using unauthenticated GitHub API (rate limited)")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose/debug logging")
}

// newAggregator wires the gateway and the use case from the loaded configuration.
func newAggregator() (*usecase.Aggregator, error) {
	githubGateway, err := gateway.NewGitHubGateway(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	return usecase.NewAggregator(githubGateway, logger,
		usecase.WithLanguageConcurrency(cfg.LanguageConcurrency)), nil
}
