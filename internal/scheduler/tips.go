package scheduler

import (
	"fmt"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// CollectTips assembles the contextual study tips for a day: week-phase
// guidance, day-type guidance, and progress warnings. All strings are
// deterministic.
func CollectTips(day domain.DayInfo, scored []ScoredTopic, currentWeek, totalWeeks int) []string {
	var tips []string
	tips = append(tips, weekPhaseTip(currentWeek))
	tips = append(tips, dayTypeTips(day)...)
	tips = append(tips, progressTips(scored, currentWeek, totalWeeks)...)
	return tips
}

func weekPhaseTip(week int) string {
	switch {
	case week <= 4:
		return "Focus on understanding programming fundamentals thoroughly"
	case week <= 8:
		return "Practice implementing data structures from scratch"
	case week <= 12:
		return "Master object-oriented programming concepts"
	case week <= 16:
		return "Implement and practice data structure operations"
	case week <= 20:
		return "Solve algorithmic problems to build problem-solving skills"
	case week <= 24:
		return "Understand system concepts and their applications"
	case week <= 27:
		return "Practice aptitude questions with time constraints"
	default:
		return "Focus on mock tests and interview preparation"
	}
}

func dayTypeTips(day domain.DayInfo) []string {
	switch day.Type {
	case domain.DayWeekend, domain.DayHoliday:
		return []string{
			"Take advantage of extended time for complex topics",
			"Include practical coding exercises",
			"Review the previous week's concepts",
		}
	case domain.DayCollege:
		if day.IsLabDay {
			return []string{
				"Focus on quick revision and light topics",
				"Use short breaks for concept review",
			}
		}
		return []string{
			"Morning: study new concepts while the mind is fresh",
			"Evening: practice problems and revision",
		}
	case domain.DayExam:
		return []string{
			"Light study only, avoid stressful topics",
			"Quick revision of familiar concepts",
		}
	default:
		return []string{"Maintain a consistent study schedule"}
	}
}

func progressTips(scored []ScoredTopic, currentWeek, totalWeeks int) []string {
	var tips []string

	urgent, critical, high, onTrack := 0, 0, 0, 0
	for _, st := range scored {
		switch st.Analysis.UrgencyLevel {
		case domain.UrgencyCritical:
			critical++
			urgent++
		case domain.UrgencyHigh:
			high++
			urgent++
		}
		if st.Analysis.IsOnTrack {
			onTrack++
		}
	}
	if urgent > 0 {
		tips = append(tips, fmt.Sprintf("%d topic(s) need urgent attention", urgent))
	}
	if critical > 0 {
		tips = append(tips, fmt.Sprintf("%d critical topic(s) need immediate attention", critical))
	}
	if high > 0 {
		tips = append(tips, fmt.Sprintf("%d high-priority topic(s) require focus", high))
	}

	if len(scored) > 0 {
		pct := float64(onTrack) / float64(len(scored)) * 100
		switch {
		case pct >= 80:
			tips = append(tips, "Great progress, most topics are on track")
		case pct >= 60:
			tips = append(tips, "Good progress, focus on catching up with lagging topics")
		default:
			tips = append(tips, "Acceleration needed, prioritize incomplete topics")
		}
	}

	weeksRemaining := totalWeeks - currentWeek
	if weeksRemaining <= 5 {
		tips = append(tips, "Final stretch: focus on revision and mock tests")
	} else if weeksRemaining <= 10 {
		tips = append(tips, "Time to intensify, prioritize weak areas")
	}
	return tips
}
