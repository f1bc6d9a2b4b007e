package candidatehandler

import (
	"math"
	"strings"

	"recruitment-backend/models"
)

// transitionDecision is the outcome of comparing the persisted status with
// the requested one. When Record is false nothing is written at all.
type transitionDecision struct {
	Record         bool
	PreviousStatus *models.HiringStatus
}

// decideTransition compares the current persisted value with the requested
// one. Equal values produce no update and no history record.
func decideTransition(current, next models.HiringStatus) transitionDecision {
	if current == next {
		return transitionDecision{}
	}
	previous := current
	return transitionDecision{
		Record:         true,
		PreviousStatus: &previous,
	}
}

// overallScore is the mean of the non-nil component scores,
// nil when all components are nil.
func overallScore(hrScore, portfolioScore, designScore *float64) *float64 {
	sum := 0.0
	count := 0
	for _, score := range []*float64{hrScore, portfolioScore, designScore} {
		if score != nil {
			sum += *score
			count++
		}
	}
	if count == 0 {
		return nil
	}
	mean := sum / float64(count)
	return &mean
}

type skillMatch struct {
	Matched    int
	Total      int
	Percentage int
}

// computeSkillMatch intersects required and candidate skills
// case-insensitively. Returns nil when required is empty, the caller
// leaves the stored values untouched in that case.
func computeSkillMatch(required, candidate []string) *skillMatch {
	if len(required) == 0 {
		return nil
	}
	candidateSet := make(map[string]struct{}, len(candidate))
	for _, skill := range candidate {
		candidateSet[strings.ToLower(strings.TrimSpace(skill))] = struct{}{}
	}
	matched := 0
	for _, skill := range required {
		if _, ok := candidateSet[strings.ToLower(strings.TrimSpace(skill))]; ok {
			matched++
		}
	}
	total := len(required)
	return &skillMatch{
		Matched:    matched,
		Total:      total,
		Percentage: int(math.Round(float64(matched) / float64(total) * 100)),
	}
}
