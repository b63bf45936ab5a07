package contract

import "time"

type ScheduleRequest struct {
	From   *time.Time // nil means today
	Enrich bool       // ask the LLM for refined ordering when available
}

// ScheduledTopic is one topic's allocation across the remaining days.
type ScheduledTopic struct {
	TopicID              string
	TopicTitle           string
	WeekNumber           int
	StartDate            string
	EndDate              string
	RequiredHours        int
	AllocatedHours       int
	DaysAllocated        []string
	UrgencyLevel         string
	CompletionPercentage float64
}

// CompletionGuarantee is the advisory feasibility assessment of a
// generated schedule.
type CompletionGuarantee struct {
	AllTopicsCovered       bool
	ExpectedCompletionDate string
	RiskFactors            []string
	MitigationStrategies   []string
}

type ScheduleResponse struct {
	GeneratedAt         time.Time
	ScheduledTopics     []ScheduledTopic
	Recommendations     []string
	Adjustments         []string
	CompletionGuarantee CompletionGuarantee
	Enriched            bool
}
