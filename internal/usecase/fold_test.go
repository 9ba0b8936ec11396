package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naka-gawa/github-badges/internal/domain"
)

func TestTotalStarsAndForks(t *testing.T) {
	testCases := []struct {
		name          string
		repos         []domain.Repository
		expectedStars int
		expectedForks int
	}{
		{name: "no repositories", repos: nil},
		{
			name: "zero counters are summed as zero",
			repos: []domain.Repository{
				{Name: "a", Stars: 3, Forks: 1},
				{Name: "b"},
				{Name: "c", Stars: 7, Forks: 4},
			},
			expectedStars: 10,
			expectedForks: 5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stars, forks := TotalStarsAndForks(tc.repos)
			assert.Equal(t, tc.expectedStars, stars)
			assert.Equal(t, tc.expectedForks, forks)
		})
	}
}

func TestRankLanguages(t *testing.T) {
	testCases := []struct {
		name     string
		results  []domain.LanguageResult
		expected []domain.LanguageStat
	}{
		{
			name:     "no results",
			results:  nil,
			expected: []domain.LanguageStat{},
		},
		{
			name: "sums across repositories and sorts descending",
			results: []domain.LanguageResult{
				{Repository: "a", Languages: domain.LanguageBreakdown{{Name: "Go", Bytes: 100}, {Name: "Shell", Bytes: 10}}},
				{Repository: "b", Languages: domain.LanguageBreakdown{{Name: "Python", Bytes: 80}, {Name: "Go", Bytes: 5}}},
			},
			expected: []domain.LanguageStat{
				{Name: "Go", Bytes: 105},
				{Name: "Python", Bytes: 80},
				{Name: "Shell", Bytes: 10},
			},
		},
		{
			name: "ties keep first-seen order",
			results: []domain.LanguageResult{
				{Repository: "a", Languages: domain.LanguageBreakdown{{Name: "Rust", Bytes: 50}, {Name: "C", Bytes: 50}}},
				{Repository: "b", Languages: domain.LanguageBreakdown{{Name: "Assembly", Bytes: 50}, {Name: "Go", Bytes: 90}}},
			},
			expected: []domain.LanguageStat{
				{Name: "Go", Bytes: 90},
				{Name: "Rust", Bytes: 50},
				{Name: "C", Bytes: 50},
				{Name: "Assembly", Bytes: 50},
			},
		},
		{
			name: "failed results contribute nothing",
			results: []domain.LanguageResult{
				{Repository: "a", Err: errors.New("boom"), Languages: domain.LanguageBreakdown{{Name: "Go", Bytes: 1000}}},
				{Repository: "b", Languages: domain.LanguageBreakdown{{Name: "Ruby", Bytes: 1}}},
			},
			expected: []domain.LanguageStat{{Name: "Ruby", Bytes: 1}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ranked := RankLanguages(tc.results)
			assert.Equal(t, tc.expected, ranked)
			for i := 1; i < len(ranked); i++ {
				assert.GreaterOrEqual(t, ranked[i-1].Bytes, ranked[i].Bytes)
			}
		})
	}
}

func TestMaxDailyContribution(t *testing.T) {
	testCases := []struct {
		name     string
		weeks    []domain.ContributionWeek
		expected int
	}{
		{name: "empty calendar", weeks: nil, expected: 1},
		{
			name:     "all zero counts are floored at one",
			weeks:    []domain.ContributionWeek{{{Count: 0}, {Count: 0}, {Count: 0}, {Count: 0}, {Count: 0}, {Count: 0}, {Count: 0}}},
			expected: 1,
		},
		{
			name: "maximum across weeks",
			weeks: []domain.ContributionWeek{
				{{Count: 2}, {Count: 9}},
				{{Count: 4}},
			},
			expected: 9,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MaxDailyContribution(tc.weeks))
		})
	}
}
