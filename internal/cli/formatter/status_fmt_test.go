package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/studyplan/internal/contract"
)

func statusFixture() *contract.StatusResponse {
	return &contract.StatusResponse{
		GeneratedAt:         time.Now(),
		CurrentWeek:         3,
		TotalWeeks:          30,
		DaysRemaining:       190,
		OverallPercentage:   6.7,
		CompletedTopics:     2,
		TotalTopics:         30,
		TotalHoursStudied:   41.5,
		TotalAvailableHours: 980,
		Weeks: []contract.WeekStatus{
			{
				WeekNumber:           1,
				Focus:                "Programming Basics",
				CompletionPercentage: 100,
				CompletedTopics:      1,
				TotalTopics:          1,
			},
			{
				WeekNumber:     2,
				Focus:          "C++ Fundamentals",
				BehindSchedule: true,
				TotalTopics:    1,
				Topics: []contract.TopicStatus{
					{
						TopicID:        "cpp-basics",
						Title:          "C++ Programming Basics",
						WeekNumber:     2,
						UrgencyLevel:   "critical",
						TotalSubtopics: 7,
					},
				},
			},
			{
				WeekNumber:  3,
				Focus:       "Control Flow",
				TotalTopics: 1,
			},
		},
	}
}

func TestFormatStatus(t *testing.T) {
	out := FormatStatus(statusFixture(), false)

	assert.Contains(t, out, "WEEK 3 OF 30")
	assert.Contains(t, out, "2/30")
	assert.Contains(t, out, "41.5h")
	assert.Contains(t, out, "190 days")
	assert.Contains(t, out, "Programming Basics")
	assert.Contains(t, out, "behind")
	assert.Contains(t, out, "current")
	assert.NotContains(t, out, "C++ Programming Basics")
}

func TestFormatStatus_Verbose(t *testing.T) {
	out := FormatStatus(statusFixture(), true)

	assert.Contains(t, out, "C++ Programming Basics")
	assert.Contains(t, out, "0/7 subtopics")
	assert.Contains(t, out, "CRITICAL")
}
