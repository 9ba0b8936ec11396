package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/naka-gawa/github-badges/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mockFetcher is a mock implementation of the gateway.Fetcher interface.
// It allows us to simulate the behavior of the GitHub gateway without making real API calls.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchUser(ctx context.Context, username string) (*domain.UserProfile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *mockFetcher) FetchRepositories(ctx context.Context, username string) ([]domain.Repository, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repository), args.Error(1)
}

func (m *mockFetcher) FetchLanguages(ctx context.Context, languagesURL string) (domain.LanguageBreakdown, error) {
	args := m.Called(ctx, languagesURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.LanguageBreakdown), args.Error(1)
}

func (m *mockFetcher) FetchContributionCalendar(ctx context.Context, username string) (*domain.ContributionCalendar, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContributionCalendar), args.Error(1)
}

func TestAggregator_UserStats(t *testing.T) {
	testCases := []struct {
		name           string
		mockProfile    *domain.UserProfile
		mockRepos      []domain.Repository
		mockProfileErr error
		mockReposErr   error
		expectedResult *domain.UserStats
		expectError    bool
	}{
		{
			name:        "happy path - totals over all repositories",
			mockProfile: &domain.UserProfile{Login: "octocat", Followers: 3, PublicRepos: 2, Company: "GitHub"},
			mockRepos: []domain.Repository{
				{Name: "a", Stars: 10, Forks: 1},
				{Name: "b", Stars: 5, Forks: 0},
			},
			expectedResult: &domain.UserStats{
				Profile: domain.UserProfile{Login: "octocat", Followers: 3, PublicRepos: 2, Company: "GitHub"},
				Stars:   15,
				Forks:   1,
			},
		},
		{
			name:        "empty case - user without repositories",
			mockProfile: &domain.UserProfile{Login: "newbie"},
			mockRepos:   []domain.Repository{},
			expectedResult: &domain.UserStats{
				Profile: domain.UserProfile{Login: "newbie"},
			},
		},
		{
			name:           "error case - profile fetch fails",
			mockProfileErr: errors.New("github api error"),
			mockRepos:      []domain.Repository{},
			expectError:    true,
		},
		{
			name:         "error case - repository fetch fails",
			mockProfile:  &domain.UserProfile{Login: "octocat"},
			mockReposErr: errors.New("github api error"),
			expectError:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := new(mockFetcher)
			fetcher.On("FetchUser", mock.Anything, "octocat").Return(tc.mockProfile, tc.mockProfileErr).Maybe()
			fetcher.On("FetchRepositories", mock.Anything, "octocat").Return(tc.mockRepos, tc.mockReposErr).Maybe()

			aggregator := NewAggregator(fetcher, zap.NewNop())
			result, err := aggregator.UserStats(context.Background(), "octocat")

			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedResult, result)
		})
	}
}

func TestAggregator_TopLanguages(t *testing.T) {
	repos := []domain.Repository{
		{Name: "web", LanguagesURL: "https://api.test/repos/octocat/web/languages"},
		{Name: "broken", LanguagesURL: "https://api.test/repos/octocat/broken/languages"},
		{Name: "cli", LanguagesURL: "https://api.test/repos/octocat/cli/languages"},
	}

	fetcher := new(mockFetcher)
	fetcher.On("FetchRepositories", mock.Anything, "octocat").Return(repos, nil)
	fetcher.On("FetchLanguages", mock.Anything, repos[0].LanguagesURL).
		Return(domain.LanguageBreakdown{{Name: "TypeScript", Bytes: 500}, {Name: "CSS", Bytes: 100}}, nil)
	fetcher.On("FetchLanguages", mock.Anything, repos[1].LanguagesURL).
		Return(nil, errors.New("languages unavailable"))
	fetcher.On("FetchLanguages", mock.Anything, repos[2].LanguagesURL).
		Return(domain.LanguageBreakdown{{Name: "Go", Bytes: 700}, {Name: "CSS", Bytes: 50}}, nil)

	for _, limit := range []int{1, 8} {
		aggregator := NewAggregator(fetcher, zap.NewNop(), WithLanguageConcurrency(limit))
		ranked, err := aggregator.TopLanguages(context.Background(), "octocat")

		require.NoError(t, err, "a failing repository must not abort the aggregate")
		assert.Equal(t, []domain.LanguageStat{
			{Name: "Go", Bytes: 700},
			{Name: "TypeScript", Bytes: 500},
			{Name: "CSS", Bytes: 150},
		}, ranked)
	}
	fetcher.AssertExpectations(t)
}

func TestAggregator_TopLanguages_RepositoryError(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("FetchRepositories", mock.Anything, "octocat").Return(nil, errors.New("github api error"))

	aggregator := NewAggregator(fetcher, zap.NewNop())
	ranked, err := aggregator.TopLanguages(context.Background(), "octocat")

	assert.Error(t, err)
	assert.Nil(t, ranked)
	fetcher.AssertNotCalled(t, "FetchLanguages", mock.Anything, mock.Anything)
}

func TestAggregator_TopLanguages_NoRepositories(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("FetchRepositories", mock.Anything, "octocat").Return([]domain.Repository{}, nil)

	aggregator := NewAggregator(fetcher, zap.NewNop())
	ranked, err := aggregator.TopLanguages(context.Background(), "octocat")

	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestAggregator_Contributions(t *testing.T) {
	cal := &domain.ContributionCalendar{
		Total: 1,
		Weeks: []domain.ContributionWeek{{{Date: "2024-01-07", Count: 1}}},
	}

	fetcher := new(mockFetcher)
	fetcher.On("FetchContributionCalendar", mock.Anything, "octocat").Return(cal, nil)

	aggregator := NewAggregator(fetcher, zap.NewNop())

	// The year does not change the query.
	for _, year := range []string{"", "2019"} {
		got, err := aggregator.Contributions(context.Background(), "octocat", year)
		require.NoError(t, err)
		assert.Equal(t, cal, got)
	}
	fetcher.AssertNumberOfCalls(t, "FetchContributionCalendar", 2)
}

func TestAggregator_Contributions_Error(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("FetchContributionCalendar", mock.Anything, "ghost").Return(nil, errors.New("could not resolve user"))

	aggregator := NewAggregator(fetcher, zap.NewNop())
	cal, err := aggregator.Contributions(context.Background(), "ghost", "")

	assert.Error(t, err)
	assert.Nil(t, cal)
}
