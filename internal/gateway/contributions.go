package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/shurcooL/githubv4"
	"go.uber.org/zap"

	"github.com/naka-gawa/github-badges/internal/domain"
)

// contributionCalendarQuery requests the default (last year) calendar range.
type contributionCalendarQuery struct {
	User struct {
		ContributionsCollection struct {
			ContributionYears    []int
			ContributionCalendar struct {
				TotalContributions int
				Weeks              []struct {
					ContributionDays []struct {
						Date              string
						ContributionCount int
					}
				}
			}
		}
	} `graphql:"user(login: $login)"`
}

// FetchContributionCalendar fetches the user's contribution calendar with a single GraphQL query.
func (g *GitHubGateway) FetchContributionCalendar(ctx context.Context, username string) (*domain.ContributionCalendar, error) {
	g.logger.Debug("Fetching contribution calendar", zap.String("username", username))
	variables := map[string]interface{}{"login": githubv4.String(username)}

	var q contributionCalendarQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return nil, fmt.Errorf("failed to execute GraphQL query for contributions: %w", err)
		}
		return nil, &UpstreamError{Op: "query contributions", Payload: err.Error(), Err: err}
	}

	cal := q.User.ContributionsCollection.ContributionCalendar
	weeks := make([]domain.ContributionWeek, 0, len(cal.Weeks))
	for _, w := range cal.Weeks {
		week := make(domain.ContributionWeek, 0, len(w.ContributionDays))
		for _, d := range w.ContributionDays {
			week = append(week, domain.ContributionDay{Date: d.Date, Count: d.ContributionCount})
		}
		weeks = append(weeks, week)
	}

	g.logger.Debug("Completed fetching contribution calendar",
		zap.String("username", username),
		zap.Int("weeks", len(weeks)),
		zap.Int("total", cal.TotalContributions))
	return &domain.ContributionCalendar{
		Total: cal.TotalContributions,
		Years: q.User.ContributionsCollection.ContributionYears,
		Weeks: weeks,
	}, nil
}
