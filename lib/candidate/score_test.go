package candidatehandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"recruitment-backend/models"
)

func Test_decideTransition(t *testing.T) {
	t.Run("equal statuses produce nothing", func(t *testing.T) {
		decision := decideTransition(models.HiringStatusApplied, models.HiringStatusApplied)
		require.False(t, decision.Record)
		require.Nil(t, decision.PreviousStatus)
	})
	t.Run("different statuses record the previous one", func(t *testing.T) {
		decision := decideTransition(models.HiringStatusApplied, models.HiringStatusScreening)
		require.True(t, decision.Record)
		require.NotNil(t, decision.PreviousStatus)
		require.Equal(t, models.HiringStatusApplied, *decision.PreviousStatus)
	})
}

func Test_overallScore(t *testing.T) {
	scoreOf := func(v float64) *float64 { return &v }

	t.Run("mean of present components", func(t *testing.T) {
		result := overallScore(scoreOf(4.0), nil, scoreOf(3.0))
		require.NotNil(t, result)
		require.InDelta(t, 3.5, *result, 0.0001)
	})
	t.Run("single component", func(t *testing.T) {
		result := overallScore(nil, scoreOf(5.0), nil)
		require.NotNil(t, result)
		require.InDelta(t, 5.0, *result, 0.0001)
	})
	t.Run("all components missing", func(t *testing.T) {
		require.Nil(t, overallScore(nil, nil, nil))
	})
}

func Test_computeSkillMatch(t *testing.T) {
	t.Run("no required skills", func(t *testing.T) {
		require.Nil(t, computeSkillMatch(nil, []string{"go", "sql"}))
		require.Nil(t, computeSkillMatch([]string{}, []string{"go"}))
	})
	t.Run("partial match", func(t *testing.T) {
		match := computeSkillMatch([]string{"go", "kubernetes"}, []string{"go", "sql"})
		require.NotNil(t, match)
		require.Equal(t, 1, match.Matched)
		require.Equal(t, 2, match.Total)
		require.Equal(t, 50, match.Percentage)
	})
	t.Run("match is case-insensitive and trims spaces", func(t *testing.T) {
		match := computeSkillMatch([]string{"Go", " SQL "}, []string{"gO", "sql"})
		require.NotNil(t, match)
		require.Equal(t, 2, match.Matched)
		require.Equal(t, 100, match.Percentage)
	})
	t.Run("no overlap", func(t *testing.T) {
		match := computeSkillMatch([]string{"figma", "sketch"}, []string{"go"})
		require.NotNil(t, match)
		require.Equal(t, 0, match.Matched)
		require.Equal(t, 0, match.Percentage)
	})
}
