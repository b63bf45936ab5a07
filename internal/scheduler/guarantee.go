package scheduler

import (
	"fmt"

	"github.com/alexanderramin/studyplan/internal/calendar"
	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// coverageThreshold is the fraction of required hours that must be
// allocated for the schedule to count as covering all topics.
const coverageThreshold = 0.95

// highConstraintCount is the number of exam/holiday constraint days
// beyond which the schedule is flagged at risk.
const highConstraintCount = 20

// BuildGuarantee assesses the feasibility of a generated schedule. The
// result is advisory: an uncovered schedule is reported, never rejected.
func BuildGuarantee(
	scheduled []contract.ScheduledTopic,
	stats calendar.StudyStats,
	analyses []TopicAnalysis,
	constraints []domain.DayConstraint,
) contract.CompletionGuarantee {
	needed, allocated := 0, 0
	last := ""
	for _, st := range scheduled {
		needed += st.RequiredHours
		allocated += st.AllocatedHours
		if st.EndDate > last {
			last = st.EndDate
		}
	}

	g := contract.CompletionGuarantee{
		AllTopicsCovered:       float64(allocated) >= float64(needed)*coverageThreshold,
		ExpectedCompletionDate: last,
	}

	if needed > stats.TotalAvailableHours {
		g.RiskFactors = append(g.RiskFactors,
			"Total study hours needed exceed available time")
		g.MitigationStrategies = append(g.MitigationStrategies,
			"Increase daily study hours or extend the timeline")
	}

	critical := 0
	for _, a := range analyses {
		if a.UrgencyLevel == domain.UrgencyCritical {
			critical++
		}
	}
	if critical > 0 {
		g.RiskFactors = append(g.RiskFactors,
			fmt.Sprintf("%d critical topic(s) behind schedule", critical))
		g.MitigationStrategies = append(g.MitigationStrategies,
			"Prioritize critical topics in daily study plans")
	}

	blocked := 0
	for _, c := range constraints {
		if c.Type == domain.DayExam || c.Type == domain.DayHoliday {
			blocked++
		}
	}
	if blocked > highConstraintCount {
		g.RiskFactors = append(g.RiskFactors,
			"High number of constraint days may impact the schedule")
		g.MitigationStrategies = append(g.MitigationStrategies,
			"Optimize the remaining study days for maximum efficiency")
	}

	if g.AllTopicsCovered {
		g.MitigationStrategies = append(g.MitigationStrategies,
			"Current schedule ensures all topics will be covered",
			"Maintain consistent daily progress to stay on track")
	} else {
		g.MitigationStrategies = append(g.MitigationStrategies,
			"Consider extending the study timeline or increasing daily hours",
			"Focus on high-priority topics first")
	}
	return g
}
