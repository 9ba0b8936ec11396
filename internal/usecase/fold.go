package usecase

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/github-badges/internal/domain"
)

// TotalStarsAndForks sums stars and forks over repos.
func TotalStarsAndForks(repos []domain.Repository) (stars, forks int) {
	for _, r := range repos {
		stars += r.Stars
		forks += r.Forks
	}
	return stars, forks
}

// RankLanguages sums bytes per language over the successful results and sorts
// them by bytes, descending. Ties keep first-seen order. Failed results are skipped.
func RankLanguages(results []domain.LanguageResult) []domain.LanguageStat {
	index := make(map[string]int)
	ranked := make([]domain.LanguageStat, 0)

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		for _, lang := range r.Languages {
			if i, ok := index[lang.Name]; ok {
				ranked[i].Bytes += lang.Bytes
				continue
			}
			index[lang.Name] = len(ranked)
			ranked = append(ranked, domain.LanguageStat{Name: lang.Name, Bytes: lang.Bytes})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Bytes > ranked[j].Bytes
	})
	return ranked
}

// MaxDailyContribution returns the largest day count in weeks, never less than 1.
func MaxDailyContribution(weeks []domain.ContributionWeek) int {
	var counts stats.Float64Data
	for _, week := range weeks {
		for _, day := range week {
			counts = append(counts, float64(day.Count))
		}
	}

	// Max only fails on empty input.
	m, err := counts.Max()
	if err != nil || m < 1 {
		return 1
	}
	return int(m)
}
