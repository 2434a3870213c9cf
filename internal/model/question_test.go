package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyRankOrdering(t *testing.T) {
	assert.Less(t, DifficultyRank(DifficultyEasy), DifficultyRank(DifficultyMedium))
	assert.Less(t, DifficultyRank(DifficultyMedium), DifficultyRank(DifficultyHard))
	// Unknown values sort last
	assert.Greater(t, DifficultyRank(Difficulty("BOGUS")), DifficultyRank(DifficultyHard))
}

func TestIsPreference(t *testing.T) {
	tests := []struct {
		name     string
		question Question
		want     bool
	}{
		{
			name: "all options correct",
			question: Question{
				Options:        []string{"a", "b", "c"},
				CorrectIndices: []int{0, 1, 2},
			},
			want: true,
		},
		{
			name: "single correct option",
			question: Question{
				Options:        []string{"a", "b", "c"},
				CorrectIndices: []int{1},
			},
			want: false,
		},
		{
			name: "duplicate indices do not span the options",
			question: Question{
				Options:        []string{"a", "b", "c"},
				CorrectIndices: []int{0, 0, 1},
			},
			want: false,
		},
		{
			name: "out of range index",
			question: Question{
				Options:        []string{"a", "b"},
				CorrectIndices: []int{0, 5},
			},
			want: false,
		},
		{
			name:     "no options",
			question: Question{},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.question.IsPreference())
		})
	}
}

func TestRuleResolution(t *testing.T) {
	tests := []struct {
		name     string
		question Question
		want     RuleKind
	}{
		{
			name:     "personal info by id convention",
			question: Question{ID: "personal-location", Type: QuestionTypeFreeText},
			want:     RuleSkip,
		},
		{
			name:     "leadership scenario outranks points shape",
			question: Question{Category: CategoryLeadershipScenario, Points: 10},
			want:     RuleLeadership,
		},
		{
			name: "preference outranks category map",
			question: Question{
				Options:        []string{"a", "b"},
				CorrectIndices: []int{0, 1},
				CategoryPoints: map[string][]int{"analytical": {1, 2}},
			},
			want: RulePreference,
		},
		{
			name:     "category weighted",
			question: Question{CategoryPoints: map[string][]int{"analytical": {1, 2}}},
			want:     RuleCategoryWeighted,
		},
		{
			name:     "scalar is the default",
			question: Question{Options: []string{"a", "b"}, CorrectIndices: []int{0}, Points: 10},
			want:     RuleScalar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.question.Rule())
		})
	}
}

func TestResponseCoercion(t *testing.T) {
	t.Run("plain index", func(t *testing.T) {
		r := Response{Answer: json.RawMessage(`2`)}
		idx, ok := r.OptionIndex()
		require.True(t, ok)
		assert.Equal(t, 2, idx)
	})

	t.Run("single element array", func(t *testing.T) {
		r := Response{Answer: json.RawMessage(`[1]`)}
		idx, ok := r.OptionIndex()
		require.True(t, ok)
		assert.Equal(t, 1, idx)
	})

	t.Run("stringified number", func(t *testing.T) {
		r := Response{Answer: json.RawMessage(`"3"`)}
		idx, ok := r.OptionIndex()
		require.True(t, ok)
		assert.Equal(t, 3, idx)
	})

	t.Run("multi choice indices", func(t *testing.T) {
		r := Response{Answer: json.RawMessage(`[0,2]`)}
		idxs, ok := r.OptionIndices()
		require.True(t, ok)
		assert.Equal(t, []int{0, 2}, idxs)
	})

	t.Run("free text", func(t *testing.T) {
		r := Response{Answer: json.RawMessage(`"5 years"`)}
		text, ok := r.Text()
		require.True(t, ok)
		assert.Equal(t, "5 years", text)
	})

	t.Run("garbage is not an index", func(t *testing.T) {
		r := Response{Answer: json.RawMessage(`"not a number"`)}
		_, ok := r.OptionIndex()
		assert.False(t, ok)
	})

	t.Run("empty answer", func(t *testing.T) {
		r := Response{}
		_, ok := r.OptionIndex()
		assert.False(t, ok)
		_, ok = r.Text()
		assert.False(t, ok)
	})
}
