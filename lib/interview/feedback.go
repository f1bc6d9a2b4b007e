package interviewhandler

import (
	"sort"
	"time"

	"recruitment-backend/models"
	interviewapimodels "recruitment-backend/models/api/interview"
	dbmodels "recruitment-backend/models/db"
)

// validateCompletion guards the transition to the completed status. Both
// actual times must be present and form a positive span.
func validateCompletion(start, end *time.Time) error {
	if start == nil || end == nil {
		return models.NewInvalidStateError("completed interview requires actual start and end time")
	}
	if !start.Before(*end) {
		return models.NewInvalidStateError("actual start time must precede actual end time")
	}
	return nil
}

// participantsOverallScore is the mean of the participants' individual
// scores, nil when nobody has scored yet.
func participantsOverallScore(participants []dbmodels.InterviewParticipant) *float64 {
	sum := 0.0
	count := 0
	for _, participant := range participants {
		if participant.IndividualScore != nil {
			sum += *participant.IndividualScore
			count++
		}
	}
	if count == 0 {
		return nil
	}
	mean := sum / float64(count)
	return &mean
}

// consolidateCriteria folds per-participant evaluations into one weighted
// score per criteria name: sum(score*weight)/sum(weight). Criteria whose
// total weight is zero are dropped, a weighted mean is undefined for them.
func consolidateCriteria(evaluations []dbmodels.InterviewCriteriaEvaluation) []interviewapimodels.CriteriaSummaryItem {
	type acc struct {
		weightedSum float64
		totalWeight float64
		count       int
	}
	byName := make(map[string]*acc)
	for _, evaluation := range evaluations {
		item, exist := byName[evaluation.CriteriaName]
		if !exist {
			item = &acc{}
			byName[evaluation.CriteriaName] = item
		}
		item.weightedSum += evaluation.Score * evaluation.Weight
		item.totalWeight += evaluation.Weight
		item.count++
	}
	result := make([]interviewapimodels.CriteriaSummaryItem, 0, len(byName))
	for name, item := range byName {
		if item.totalWeight == 0 {
			continue
		}
		result = append(result, interviewapimodels.CriteriaSummaryItem{
			CriteriaName:  name,
			WeightedScore: item.weightedSum / item.totalWeight,
			TotalWeight:   item.totalWeight,
			Evaluations:   item.count,
		})
	}
	sort.Slice(result, func(a, b int) bool {
		return result[a].CriteriaName < result[b].CriteriaName
	})
	return result
}
