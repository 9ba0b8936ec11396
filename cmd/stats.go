package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/naka-gawa/github-badges/internal/domain"
	"github.com/naka-gawa/github-badges/internal/usecase"
)

// summary is everything the badges are built from, for one user.
type summary struct {
	Profile       domain.UserProfile    `json:"profile"`
	TotalStars    int                   `json:"total_stars"`
	TotalForks    int                   `json:"total_forks"`
	Languages     []domain.LanguageStat `json:"languages"`
	Contributions contributionSummary   `json:"contributions"`
}

type contributionSummary struct {
	Total    int   `json:"total"`
	Years    []int `json:"years,omitempty"`
	Weeks    int   `json:"weeks"`
	MaxDaily int   `json:"max_daily"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregates GitHub user stats and outputs as JSON",
	Long:  `Aggregates the profile, star and fork totals, ranked languages and contribution calendar for a GitHub user, and outputs the result in JSON format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")

		aggregator, err := newAggregator()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
		defer cancel()

		var userStats *domain.UserStats
		var langs []domain.LanguageStat
		var cal *domain.ContributionCalendar

		eg, egCtx := errgroup.WithContext(ctx)
		eg.Go(func() error {
			var err error
			userStats, err = aggregator.UserStats(egCtx, user)
			return err
		})
		eg.Go(func() error {
			var err error
			langs, err = aggregator.TopLanguages(egCtx, user)
			return err
		})
		eg.Go(func() error {
			var err error
			cal, err = aggregator.Contributions(egCtx, user, "")
			return err
		})
		if err := eg.Wait(); err != nil {
			return fmt.Errorf("failed to aggregate stats: %w", err)
		}

		result := summary{
			Profile:    userStats.Profile,
			TotalStars: userStats.Stars,
			TotalForks: userStats.Forks,
			Languages:  langs,
			Contributions: contributionSummary{
				Total:    cal.Total,
				Years:    cal.Years,
				Weeks:    len(cal.Weeks),
				MaxDaily: usecase.MaxDailyContribution(cal.Weeks),
			},
		}

		// Marshal the results into a pretty-printed JSON string.
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results to JSON: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringP("user", "u", "", "Target GitHub user name (required)")
	statsCmd.MarkFlagRequired("user")
}
