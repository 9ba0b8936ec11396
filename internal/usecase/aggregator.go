// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/naka-gawa/github-badges/internal/domain"
	"github.com/naka-gawa/github-badges/internal/gateway"
)

const defaultLanguageConcurrency = 8

// Aggregator is the use case for aggregating GitHub stats.
// It orchestrates the fetching and combining of data.
type Aggregator struct {
	fetcher             gateway.Fetcher
	logger              *zap.Logger
	languageConcurrency int
}

// Option customizes an Aggregator.
type Option func(*Aggregator)

// WithLanguageConcurrency bounds the number of in-flight language fetches.
func WithLanguageConcurrency(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.languageConcurrency = n
		}
	}
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger *zap.Logger, opts ...Option) *Aggregator {
	a := &Aggregator{
		fetcher:             fetcher,
		logger:              logger,
		languageConcurrency: defaultLanguageConcurrency,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// UserStats fetches the profile and the repositories concurrently and totals stars and forks.
func (a *Aggregator) UserStats(ctx context.Context, username string) (*domain.UserStats, error) {
	var profile *domain.UserProfile
	var repos []domain.Repository

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		profile, err = a.fetcher.FetchUser(egCtx, username)
		return err
	})

	eg.Go(func() error {
		var err error
		repos, err = a.fetcher.FetchRepositories(egCtx, username)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("no profile for %s", username)
	}

	stars, forks := TotalStarsAndForks(repos)
	a.logger.Debug("Usecase: user stats aggregated",
		zap.String("username", username),
		zap.Int("repositories", len(repos)),
		zap.Int("stars", stars),
		zap.Int("forks", forks))

	return &domain.UserStats{
		Profile: *profile,
		Stars:   stars,
		Forks:   forks,
	}, nil
}

// TopLanguages ranks the user's languages by bytes across their repositories.
// A repository whose breakdown cannot be fetched contributes nothing.
func (a *Aggregator) TopLanguages(ctx context.Context, username string) ([]domain.LanguageStat, error) {
	repos, err := a.fetcher.FetchRepositories(ctx, username)
	if err != nil {
		return nil, err
	}

	results := a.fetchLanguages(ctx, repos)
	for _, r := range results {
		if r.Err != nil {
			a.logger.Debug("Usecase: skipping repository languages",
				zap.String("repository", r.Repository),
				zap.Error(r.Err))
		}
	}

	ranked := RankLanguages(results)
	a.logger.Debug("Usecase: languages ranked",
		zap.String("username", username),
		zap.Int("languages", len(ranked)))
	return ranked, nil
}

// fetchLanguages fetches every repository's breakdown with bounded concurrency.
// Results are stored by repository index, so the fold order does not depend on
// completion order.
func (a *Aggregator) fetchLanguages(ctx context.Context, repos []domain.Repository) []domain.LanguageResult {
	results := make([]domain.LanguageResult, len(repos))

	var eg errgroup.Group
	eg.SetLimit(a.languageConcurrency)
	for i, repo := range repos {
		eg.Go(func() error {
			langs, err := a.fetcher.FetchLanguages(ctx, repo.LanguagesURL)
			results[i] = domain.LanguageResult{Repository: repo.Name, Languages: langs, Err: err}
			return nil
		})
	}
	// Per-item failures live in the results; the group itself never fails.
	_ = eg.Wait()

	return results
}

// Contributions fetches the user's contribution calendar. The year is accepted
// for compatibility but the query always covers the default range.
func (a *Aggregator) Contributions(ctx context.Context, username, year string) (*domain.ContributionCalendar, error) {
	if year != "" {
		a.logger.Debug("Usecase: year filter is not applied", zap.String("year", year))
	}
	cal, err := a.fetcher.FetchContributionCalendar(ctx, username)
	if err != nil {
		return nil, err
	}
	if cal == nil {
		return nil, fmt.Errorf("no contribution calendar for %s", username)
	}
	return cal, nil
}
