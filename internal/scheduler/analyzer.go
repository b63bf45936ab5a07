package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/studyplan/internal/curriculum"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/progress"
)

// TopicAnalysis is the derived schedule-risk view of one topic. It is
// recomputed from the current date and progress on every request and
// never persisted.
type TopicAnalysis struct {
	TopicID                 string
	Title                   string
	WeekNumber              int
	OrderIndex              int
	EstimatedHours          int
	TotalSubtopics          int
	CompletedSubtopics      int
	CompletionPercentage    float64
	IsOnTrack               bool
	UrgencyLevel            domain.UrgencyLevel
	DaysRemaining           int
	EstimatedCompletionDate time.Time
}

const weekDuration = 7 * 24 * time.Hour

// CurrentWeek returns the 1-based curriculum week the given instant
// falls in. The start date itself is week 0 boundary: day one of the
// plan is week 1 once any time has elapsed.
func CurrentWeek(start, now time.Time) int {
	return int(math.Ceil(float64(now.Sub(start)) / float64(weekDuration)))
}

// TotalWeeks returns the number of weeks spanned by the config range.
func TotalWeeks(cfg domain.ScheduleConfig) int {
	return int(math.Ceil(float64(cfg.EndDate.Sub(cfg.StartDate)) / float64(weekDuration)))
}

// Analyze classifies every curriculum topic by urgency and on-track
// status as of now.
func Analyze(curr *curriculum.Curriculum, cfg domain.ScheduleConfig, tr *progress.Tracker, now time.Time) []TopicAnalysis {
	currentWeek := CurrentWeek(cfg.StartDate, now)

	out := make([]TopicAnalysis, 0, curr.TopicCount())
	for i, id := range curr.TopicIDs() {
		topic, _ := curr.Topic(id)
		week, _ := curr.TopicWeek(id)
		pct := tr.CompletionPercentage(id)

		a := TopicAnalysis{
			TopicID:              id,
			Title:                topic.Title,
			WeekNumber:           week,
			OrderIndex:           i,
			EstimatedHours:       topic.EstimatedHours,
			TotalSubtopics:       len(topic.Subtopics),
			CompletedSubtopics:   len(topic.Subtopics) - len(tr.IncompleteSubtopics(id)),
			CompletionPercentage: pct,
		}

		// Topics not yet due are trivially on track: the expected
		// progress threshold is zero until their week arrives.
		expected := 0.0
		if week <= currentWeek {
			expected = 100
		}
		a.IsOnTrack = pct >= expected*0.8

		a.UrgencyLevel = classifyUrgency(week, currentWeek, pct)

		topicEnd := cfg.StartDate.Add(time.Duration(week) * weekDuration)
		a.EstimatedCompletionDate = domain.DateOnly(topicEnd)
		days := int(math.Ceil(float64(topicEnd.Sub(now)) / float64(24*time.Hour)))
		if days < 0 {
			days = 0
		}
		a.DaysRemaining = days

		out = append(out, a)
	}
	return out
}

func classifyUrgency(week, currentWeek int, pct float64) domain.UrgencyLevel {
	switch {
	case week <= currentWeek:
		switch {
		case pct < 50:
			return domain.UrgencyCritical
		case pct < 80:
			return domain.UrgencyHigh
		case pct < 100:
			return domain.UrgencyMedium
		}
		return domain.UrgencyLow
	case week == currentWeek+1:
		if pct < 20 {
			return domain.UrgencyMedium
		}
		return domain.UrgencyLow
	default:
		return domain.UrgencyLow
	}
}

// Remaining filters the analyses down to topics below 100% completion.
func Remaining(analyses []TopicAnalysis) []TopicAnalysis {
	var out []TopicAnalysis
	for _, a := range analyses {
		if a.CompletionPercentage < 100 {
			out = append(out, a)
		}
	}
	return out
}
