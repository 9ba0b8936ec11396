// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/naka-gawa/github-badges/internal/config"
	"github.com/naka-gawa/github-badges/internal/domain"
)

// reposPerPage is the API page-size ceiling. Only the first page is fetched.
const reposPerPage = 100

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchUser(ctx context.Context, username string) (*domain.UserProfile, error)
	FetchRepositories(ctx context.Context, username string) ([]domain.Repository, error)
	FetchLanguages(ctx context.Context, languagesURL string) (domain.LanguageBreakdown, error)
	FetchContributionCalendar(ctx context.Context, username string) (*domain.ContributionCalendar, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *zap.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// The token in cfg is optional; without it requests go out unauthenticated.
func NewGitHubGateway(cfg *config.Config, logger *zap.Logger) (*GitHubGateway, error) {
	httpClient := &http.Client{}
	if cfg.GitHubToken != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHubToken})
		httpClient.Transport = &oauth2.Transport{
			Base:   http.DefaultTransport,
			Source: ts,
		}
	}

	restClient := github.NewClient(httpClient)
	if cfg.APIBaseURL != "" {
		baseURL, err := url.Parse(cfg.APIBaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse GitHub API URL: %w", err)
		}
		if !strings.HasSuffix(baseURL.Path, "/") {
			baseURL.Path += "/"
		}
		restClient.BaseURL = baseURL
	}

	graphqlClient := githubv4.NewClient(httpClient)
	if cfg.GraphQLURL != "" {
		graphqlClient = githubv4.NewEnterpriseClient(cfg.GraphQLURL, httpClient)
	}

	return &GitHubGateway{
		restClient:    restClient,
		graphqlClient: graphqlClient,
		logger:        logger,
	}, nil
}

// FetchUser fetches the public profile of username.
func (g *GitHubGateway) FetchUser(ctx context.Context, username string) (*domain.UserProfile, error) {
	g.logger.Debug("Fetching user profile", zap.String("username", username))
	user, resp, err := g.restClient.Users.Get(ctx, username)
	if err != nil {
		return nil, restError("get user", resp, err)
	}
	return &domain.UserProfile{
		Login:       user.GetLogin(),
		Followers:   user.GetFollowers(),
		PublicRepos: user.GetPublicRepos(),
		Company:     user.GetCompany(),
	}, nil
}

// FetchRepositories fetches the first page of the user's repositories,
// most recently updated first. Users with more repositories are undercounted.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, username string) ([]domain.Repository, error) {
	g.logger.Debug("Fetching repositories", zap.String("username", username))
	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: reposPerPage},
	}
	repos, resp, err := g.restClient.Repositories.ListByUser(ctx, username, opts)
	if err != nil {
		return nil, restError("list repositories", resp, err)
	}

	result := make([]domain.Repository, 0, len(repos))
	for _, repo := range repos {
		result = append(result, domain.Repository{
			Name:         repo.GetName(),
			Stars:        repo.GetStargazersCount(),
			Forks:        repo.GetForksCount(),
			LanguagesURL: repo.GetLanguagesURL(),
		})
	}
	g.logger.Debug("Completed fetching repositories", zap.String("username", username), zap.Int("count", len(result)))
	return result, nil
}

// FetchLanguages fetches a repository's language breakdown from its languages_url.
func (g *GitHubGateway) FetchLanguages(ctx context.Context, languagesURL string) (domain.LanguageBreakdown, error) {
	if languagesURL == "" {
		return nil, errors.New("repository has no languages URL")
	}
	req, err := g.restClient.NewRequest(http.MethodGet, languagesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build languages request: %w", err)
	}
	var breakdown domain.LanguageBreakdown
	resp, err := g.restClient.Do(ctx, req, &breakdown)
	if err != nil {
		return nil, restError("get languages", resp, err)
	}
	return breakdown, nil
}

// restError converts a go-github failure into an UpstreamError when GitHub
// answered, and a wrapped transport error otherwise.
func restError(op string, resp *github.Response, err error) error {
	if resp == nil || resp.Response == nil || resp.StatusCode < http.StatusMultipleChoices {
		return fmt.Errorf("failed to %s with REST API: %w", op, err)
	}
	payload := err.Error()
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Message != "" {
		payload = errResp.Message
	}
	return &UpstreamError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Payload:    payload,
		Err:        err,
	}
}
