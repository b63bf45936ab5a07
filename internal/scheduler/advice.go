package scheduler

import (
	"fmt"
	"math"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// The advice helpers turn schedule numbers into the short human
// recommendation and adjustment strings attached to every generated
// schedule.

func ProgressRecommendation(completed, total int) string {
	if total == 0 {
		return "No topics in the curriculum"
	}
	pct := int(math.Round(float64(completed) / float64(total) * 100))
	switch {
	case pct >= 80:
		return fmt.Sprintf("Excellent progress: %d%% of topics completed", pct)
	case pct >= 60:
		return fmt.Sprintf("Good progress: %d%% completed, keep it up", pct)
	case pct >= 40:
		return fmt.Sprintf("Steady progress: %d%% done, maintain momentum", pct)
	case pct >= 20:
		return fmt.Sprintf("Building momentum: %d%% completed, stay focused", pct)
	default:
		return fmt.Sprintf("Starting out: %d%% completed, solid beginning", pct)
	}
}

func TimeRecommendation(neededHours, availableHours int) string {
	if availableHours <= 0 {
		return fmt.Sprintf("No study hours available for the %dh of remaining work", neededHours)
	}
	ratio := float64(neededHours) / float64(availableHours)
	switch {
	case ratio <= 0.8:
		return fmt.Sprintf("Time allocation looks good: %dh needed vs %dh available", neededHours, availableHours)
	case ratio <= 1.0:
		return fmt.Sprintf("Tight schedule: %dh needed vs %dh available, stay focused", neededHours, availableHours)
	default:
		return fmt.Sprintf("Time challenge: %dh needed vs %dh available, optimization required", neededHours, availableHours)
	}
}

func CoverageRecommendation(analyses []TopicAnalysis) string {
	if len(analyses) == 0 {
		return "No topic analysis available"
	}
	onTrack := 0
	for _, a := range analyses {
		if a.IsOnTrack {
			onTrack++
		}
	}
	pct := int(math.Round(float64(onTrack) / float64(len(analyses)) * 100))
	switch {
	case pct >= 90:
		return fmt.Sprintf("Excellent coverage: %d%% of topics on track", pct)
	case pct >= 70:
		return fmt.Sprintf("Good coverage: %d%% on track, focus on lagging topics", pct)
	case pct >= 50:
		return fmt.Sprintf("Moderate coverage: %d%% on track, acceleration needed", pct)
	default:
		return fmt.Sprintf("Coverage needs attention: %d%% on track, prioritize urgent topics", pct)
	}
}

func ConstraintAdjustment(constraintCount int) string {
	switch {
	case constraintCount == 0:
		return "No constraints, maximum scheduling flexibility"
	case constraintCount <= 5:
		return fmt.Sprintf("%d constraint(s), minimal impact on the schedule", constraintCount)
	case constraintCount <= 15:
		return fmt.Sprintf("%d constraint(s), moderate schedule adjustments needed", constraintCount)
	default:
		return fmt.Sprintf("%d constraint(s), significant schedule optimization required", constraintCount)
	}
}

func LabDayAdjustment(labDayCount int) string {
	switch {
	case labDayCount == 0:
		return "No lab days, full study time available on college days"
	case labDayCount <= 2:
		return fmt.Sprintf("%d lab day(s) per week, schedule adjusted for limited time", labDayCount)
	default:
		return fmt.Sprintf("%d lab day(s) per week, significant time optimization needed", labDayCount)
	}
}

func UrgencyAdjustment(analyses []TopicAnalysis) string {
	critical, high := 0, 0
	for _, a := range analyses {
		switch a.UrgencyLevel {
		case domain.UrgencyCritical:
			critical++
		case domain.UrgencyHigh:
			high++
		}
	}
	switch {
	case critical == 0 && high == 0:
		return "No urgent topics, maintaining steady progress"
	case critical == 0:
		return fmt.Sprintf("%d high-priority topic(s) need focus", high)
	default:
		return fmt.Sprintf("%d critical and %d high-priority topic(s) need immediate attention", critical, high)
	}
}
