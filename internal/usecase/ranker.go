// Package usecase contains the business logic of the application.
package usecase

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/aknsh/devtools/internal/domain"
)

// Rank returns the top count repositories ordered by star count descending.
// The sort is stable, so repositories with equal star counts keep the order
// the API returned them in. The input slice is never mutated.
func Rank(repos []domain.Repository, count int) []domain.Repository {
	ranked := make([]domain.Repository, len(repos))
	copy(ranked, repos)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Stars > ranked[j].Stars
	})
	if count < len(ranked) {
		ranked = ranked[:count]
	}
	return ranked
}

// StarSummary holds aggregate star statistics for a ranked result set.
type StarSummary struct {
	Mean   float64
	Median float64
}

// SummarizeStars computes mean and median star counts. An empty result set
// yields a zero summary.
func SummarizeStars(repos []domain.Repository) StarSummary {
	if len(repos) == 0 {
		return StarSummary{}
	}
	counts := make(stats.Float64Data, len(repos))
	for i, repo := range repos {
		counts[i] = float64(repo.Stars)
	}
	// Mean and Median only fail on empty input, which is guarded above.
	mean, _ := stats.Mean(counts)
	median, _ := stats.Median(counts)
	return StarSummary{Mean: mean, Median: median}
}
