package contract

import "time"

type StatusRequest struct {
	Now *time.Time // nil means the current time
}

type TopicStatus struct {
	TopicID              string
	Title                string
	WeekNumber           int
	CompletionPercentage float64
	UrgencyLevel         string
	IsOnTrack            bool
	CompletedSubtopics   int
	TotalSubtopics       int
}

type WeekStatus struct {
	WeekNumber           int
	Focus                string
	CompletionPercentage float64
	CompletedTopics      int
	TotalTopics          int
	BehindSchedule       bool
	Topics               []TopicStatus
}

type StatusResponse struct {
	GeneratedAt         time.Time
	CurrentWeek         int
	TotalWeeks          int
	DaysRemaining       int
	OverallPercentage   float64
	CompletedTopics     int
	TotalTopics         int
	TotalHoursStudied   float64
	TotalAvailableHours int
	Weeks               []WeekStatus
}
