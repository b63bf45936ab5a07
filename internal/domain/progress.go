package domain

import "time"

// SubtopicProgress records completion of one subtopic, keyed by its
// index within the topic's ordered subtopic list.
type SubtopicProgress struct {
	SubtopicIndex int
	Completed     bool
	CompletedAt   *time.Time
}

// TopicProgress aggregates the subtopic records of one topic. The
// Completed flag is derived from the subtopic records by the progress
// tracker whenever they change.
type TopicProgress struct {
	TopicID           string
	Completed         bool
	CompletedAt       *time.Time
	SubtopicsProgress []SubtopicProgress
}

// CompletedCount returns how many subtopic records are marked complete.
func (tp *TopicProgress) CompletedCount() int {
	n := 0
	for _, sp := range tp.SubtopicsProgress {
		if sp.Completed {
			n++
		}
	}
	return n
}

// UserProgress is the single mutable progress record of the plan.
// It is owned by the progress tracker; the scheduling engine only reads it.
type UserProgress struct {
	CompletedTopics   map[string]bool
	TopicsProgress    map[string]*TopicProgress
	TotalHoursStudied float64
	LastUpdated       time.Time
}

// NewUserProgress returns an empty progress record.
func NewUserProgress() *UserProgress {
	return &UserProgress{
		CompletedTopics: make(map[string]bool),
		TopicsProgress:  make(map[string]*TopicProgress),
	}
}

// StudySession is one logged sitting against a topic.
type StudySession struct {
	ID              string
	Date            time.Time
	TopicID         string
	SubtopicIndices []int
	PlannedHours    float64
	ActualHours     float64
	Completed       bool
	Notes           string
	CreatedAt       time.Time
}
