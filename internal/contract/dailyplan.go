package contract

import "time"

type DailyPlanRequest struct {
	Date *time.Time // nil means today
}

// SubtopicPlan is one study unit of the daily plan.
type SubtopicPlan struct {
	Index            int
	Title            string
	EstimatedMinutes int
	Priority         string // high, medium, low
	Reason           string
}

// TimeSlot is one chronological block of the day, either a study block
// or a break.
type TimeSlot struct {
	Start    string // HH:MM
	End      string // HH:MM
	Activity string
}

// TopicSuggestion groups the subtopics of one topic selected for the day.
type TopicSuggestion struct {
	TopicID    string
	TopicTitle string
	Urgency    string
	Subtopics  []SubtopicPlan
	TimeSlots  []TimeSlot
}

// DailyStudySuggestion is the full plan for one day. A day with no
// available hours or no incomplete topics yields an empty Suggestions
// list, never an error.
type DailyStudySuggestion struct {
	Date                string
	DayType             string
	IsLabDay            bool
	TotalAvailableHours int
	Suggestions         []TopicSuggestion
	Tips                []string
}
