package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aknsh/devtools/internal/domain"
)

func TestRank(t *testing.T) {
	testCases := []struct {
		name     string
		input    []domain.Repository
		count    int
		expected []domain.Repository
	}{
		{
			name: "sorts by stars descending and truncates to count",
			input: []domain.Repository{
				{Name: "low", Stars: 1},
				{Name: "high", Stars: 100},
				{Name: "mid", Stars: 50},
			},
			count: 2,
			expected: []domain.Repository{
				{Name: "high", Stars: 100},
				{Name: "mid", Stars: 50},
			},
		},
		{
			name: "ties keep their original order",
			input: []domain.Repository{
				{Name: "first", Stars: 10},
				{Name: "second", Stars: 10},
				{Name: "third", Stars: 10},
			},
			count: 3,
			expected: []domain.Repository{
				{Name: "first", Stars: 10},
				{Name: "second", Stars: 10},
				{Name: "third", Stars: 10},
			},
		},
		{
			name:     "count larger than input returns everything",
			input:    []domain.Repository{{Name: "only", Stars: 3}},
			count:    10,
			expected: []domain.Repository{{Name: "only", Stars: 3}},
		},
		{
			name:     "empty input yields empty result",
			input:    []domain.Repository{},
			count:    5,
			expected: []domain.Repository{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ranked := Rank(tc.input, tc.count)

			assert.Equal(t, tc.expected, ranked)
			for i := 0; i+1 < len(ranked); i++ {
				assert.GreaterOrEqual(t, ranked[i].Stars, ranked[i+1].Stars)
			}
		})
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	input := []domain.Repository{
		{Name: "low", Stars: 1},
		{Name: "high", Stars: 100},
	}

	Rank(input, 2)

	assert.Equal(t, "low", input[0].Name)
	assert.Equal(t, "high", input[1].Name)
}

func TestSummarizeStars(t *testing.T) {
	testCases := []struct {
		name     string
		input    []domain.Repository
		expected StarSummary
	}{
		{
			name: "odd number of repositories",
			input: []domain.Repository{
				{Stars: 10}, {Stars: 20}, {Stars: 60},
			},
			expected: StarSummary{Mean: 30, Median: 20},
		},
		{
			name: "even number of repositories",
			input: []domain.Repository{
				{Stars: 10}, {Stars: 30},
			},
			expected: StarSummary{Mean: 20, Median: 20},
		},
		{
			name:     "empty input yields zero summary",
			input:    nil,
			expected: StarSummary{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SummarizeStars(tc.input))
		})
	}
}
