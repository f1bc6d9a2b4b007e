package interviewhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	dbmodels "recruitment-backend/models/db"
)

func Test_validateCompletion(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("valid span", func(t *testing.T) {
		require.NoError(t, validateCompletion(&start, &end))
	})
	t.Run("missing times", func(t *testing.T) {
		require.Error(t, validateCompletion(nil, nil))
		require.Error(t, validateCompletion(&start, nil))
		require.Error(t, validateCompletion(nil, &end))
	})
	t.Run("end before start", func(t *testing.T) {
		require.Error(t, validateCompletion(&end, &start))
	})
	t.Run("zero length span", func(t *testing.T) {
		require.Error(t, validateCompletion(&start, &start))
	})
}

func Test_participantsOverallScore(t *testing.T) {
	scoreOf := func(v float64) *float64 { return &v }

	t.Run("mean of scored participants only", func(t *testing.T) {
		participants := []dbmodels.InterviewParticipant{
			{IndividualScore: scoreOf(4.0)},
			{IndividualScore: nil},
			{IndividualScore: scoreOf(5.0)},
		}
		result := participantsOverallScore(participants)
		require.NotNil(t, result)
		require.InDelta(t, 4.5, *result, 0.0001)
	})
	t.Run("nobody scored", func(t *testing.T) {
		participants := []dbmodels.InterviewParticipant{
			{IndividualScore: nil},
		}
		require.Nil(t, participantsOverallScore(participants))
	})
	t.Run("no participants", func(t *testing.T) {
		require.Nil(t, participantsOverallScore(nil))
	})
}

func Test_consolidateCriteria(t *testing.T) {
	t.Run("weighted mean per criteria name", func(t *testing.T) {
		evaluations := []dbmodels.InterviewCriteriaEvaluation{
			{CriteriaName: "communication", Score: 4, Weight: 1},
			{CriteriaName: "communication", Score: 2, Weight: 0.5},
			{CriteriaName: "design", Score: 5, Weight: 1},
		}
		result := consolidateCriteria(evaluations)
		require.Len(t, result, 2)

		require.Equal(t, "communication", result[0].CriteriaName)
		require.InDelta(t, (4*1+2*0.5)/1.5, result[0].WeightedScore, 0.0001)
		require.InDelta(t, 1.5, result[0].TotalWeight, 0.0001)
		require.Equal(t, 2, result[0].Evaluations)

		require.Equal(t, "design", result[1].CriteriaName)
		require.InDelta(t, 5.0, result[1].WeightedScore, 0.0001)
	})
	t.Run("zero total weight criteria are dropped", func(t *testing.T) {
		evaluations := []dbmodels.InterviewCriteriaEvaluation{
			{CriteriaName: "unused", Score: 3, Weight: 0},
			{CriteriaName: "design", Score: 4, Weight: 1},
		}
		result := consolidateCriteria(evaluations)
		require.Len(t, result, 1)
		require.Equal(t, "design", result[0].CriteriaName)
	})
	t.Run("no evaluations", func(t *testing.T) {
		require.Empty(t, consolidateCriteria(nil))
	})
}
