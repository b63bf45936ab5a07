package enrich

import (
	"github.com/alexanderramin/studyplan/internal/curriculum"
	"github.com/alexanderramin/studyplan/internal/scheduler"
)

// BuildPayload assembles the enrichment request from the engine's
// analysis. The analyses slice holds only incomplete topics, in
// curriculum order.
func BuildPayload(
	curr *curriculum.Curriculum,
	analyses []scheduler.TopicAnalysis,
	constraintCount int,
	labDayCount int,
) SchedulePayload {
	p := SchedulePayload{
		CompletedTopics: curr.TopicCount() - len(analyses),
		RemainingTopics: make([]RemainingTopic, 0, len(analyses)),
		Constraints:     constraintCount,
		LabDays:         labDayCount,
		TopicAnalysis:   make([]TopicAnalysisSummary, 0, len(analyses)),
	}

	for _, a := range analyses {
		p.RemainingTopics = append(p.RemainingTopics, RemainingTopic{
			ID:             a.TopicID,
			WeekNumber:     a.WeekNumber,
			EstimatedHours: a.EstimatedHours,
			SubtopicCount:  a.TotalSubtopics,
		})
		p.TopicAnalysis = append(p.TopicAnalysis, TopicAnalysisSummary{
			TopicID:              a.TopicID,
			WeekNumber:           a.WeekNumber,
			CompletionPercentage: a.CompletionPercentage,
			UrgencyLevel:         string(a.UrgencyLevel),
		})
	}

	return p
}
