package scheduler

import (
	"fmt"
	"math"

	"github.com/alexanderramin/studyplan/internal/contract"
)

type ScoredTopic struct {
	Analysis TopicAnalysis
	Score    float64
	Reasons  []contract.RecommendationReason
}

// ScoreTopic computes the priority score of one topic, higher meaning
// more urgent. The score is a weighted sum of urgency tier, week
// proximity, incompletion, and an off-track penalty.
func ScoreTopic(a TopicAnalysis, currentWeek int) ScoredTopic {
	result := ScoredTopic{Analysis: a}

	factors := []func(TopicAnalysis, int) (float64, *contract.RecommendationReason){
		scoreUrgency,
		scoreWeekProximity,
		scoreIncompletion,
		scoreOffTrack,
	}
	for _, f := range factors {
		delta, reason := f(a, currentWeek)
		result.Score += delta
		if reason != nil {
			result.Reasons = append(result.Reasons, *reason)
		}
	}
	return result
}

// ScoreAll scores every analysis against the same current week.
func ScoreAll(analyses []TopicAnalysis, currentWeek int) []ScoredTopic {
	out := make([]ScoredTopic, 0, len(analyses))
	for _, a := range analyses {
		out = append(out, ScoreTopic(a, currentWeek))
	}
	return out
}

func scoreUrgency(a TopicAnalysis, _ int) (float64, *contract.RecommendationReason) {
	delta := a.UrgencyLevel.Weight()
	return delta, &contract.RecommendationReason{
		Code:        contract.ReasonUrgency,
		Message:     fmt.Sprintf("Urgency tier %s", a.UrgencyLevel),
		WeightDelta: &delta,
	}
}

func scoreWeekProximity(a TopicAnalysis, currentWeek int) (float64, *contract.RecommendationReason) {
	distance := math.Abs(float64(a.WeekNumber - currentWeek))
	delta := math.Max(0, 25-distance*5)
	if delta == 0 {
		return 0, nil
	}
	return delta, &contract.RecommendationReason{
		Code:        contract.ReasonWeekProximity,
		Message:     fmt.Sprintf("Week %d is near the current week %d", a.WeekNumber, currentWeek),
		WeightDelta: &delta,
	}
}

func scoreIncompletion(a TopicAnalysis, _ int) (float64, *contract.RecommendationReason) {
	delta := (100 - a.CompletionPercentage) * 0.5
	if delta == 0 {
		return 0, nil
	}
	return delta, &contract.RecommendationReason{
		Code:        contract.ReasonIncomplete,
		Message:     fmt.Sprintf("%.0f%% of subtopics remain", 100-a.CompletionPercentage),
		WeightDelta: &delta,
	}
}

func scoreOffTrack(a TopicAnalysis, _ int) (float64, *contract.RecommendationReason) {
	if a.IsOnTrack {
		return 0, nil
	}
	delta := 30.0
	return delta, &contract.RecommendationReason{
		Code:        contract.ReasonOffTrack,
		Message:     "Behind the expected pace for its week",
		WeightDelta: &delta,
	}
}
