// Package enrich sends the engine's schedule analysis to a language
// model for refined ordering and commentary. Model output is advisory:
// it is validated and repaired against the engine's own numbers, and
// when the model is disabled or fails the deterministic advice is used
// unchanged.
package enrich

// RemainingTopic is one not-yet-completed curriculum topic in the
// enrichment request payload.
type RemainingTopic struct {
	ID             string `json:"id"`
	WeekNumber     int    `json:"weekNumber"`
	EstimatedHours int    `json:"estimatedHours"`
	SubtopicCount  int    `json:"subtopicCount"`
}

// TopicAnalysisSummary is the per-topic urgency snapshot sent to the model.
type TopicAnalysisSummary struct {
	TopicID              string  `json:"topicId"`
	WeekNumber           int     `json:"weekNumber"`
	CompletionPercentage float64 `json:"completionPercentage"`
	UrgencyLevel         string  `json:"urgencyLevel"`
}

// SchedulePayload is the structured request sent to the model.
type SchedulePayload struct {
	CompletedTopics int                    `json:"completedTopics"`
	RemainingTopics []RemainingTopic       `json:"remainingTopics"`
	Constraints     int                    `json:"constraints"`
	LabDays         int                    `json:"labDays"`
	TopicAnalysis   []TopicAnalysisSummary `json:"topicAnalysis"`
}

// PriorityGroups buckets topic IDs by urgency.
type PriorityGroups struct {
	Critical []string `json:"critical"`
	High     []string `json:"high"`
	Medium   []string `json:"medium"`
	Low      []string `json:"low"`
}

// CompletionStrategy summarizes how the remaining work fits the timeline.
type CompletionStrategy struct {
	TotalWeeksNeeded    int      `json:"totalWeeksNeeded"`
	AverageHoursPerWeek float64  `json:"averageHoursPerWeek"`
	RiskMitigation      []string `json:"riskMitigation"`
	SuccessFactors      []string `json:"successFactors"`
}

// ScheduleAdvice is the enrichment result, either model-produced and
// repaired or fully engine-computed. Every field is always populated.
type ScheduleAdvice struct {
	TopicOrder         []string            `json:"topicOrder"`
	PriorityGroups     PriorityGroups      `json:"priorityGroups"`
	Recommendations    []string            `json:"recommendations"`
	Adjustments        []string            `json:"adjustments"`
	CompletionStrategy *CompletionStrategy `json:"completionStrategy"`
}

// Defaults carries the engine-computed strings used to fill whatever
// the model leaves out.
type Defaults struct {
	Recommendations []string
	Adjustments     []string
}
