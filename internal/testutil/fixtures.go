package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// Date parses a YYYY-MM-DD literal, panicking on bad test input.
func Date(s string) time.Time {
	t, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTestConfig returns a short schedule configuration for tests.
func NewTestConfig(start, end string) *domain.ScheduleConfig {
	now := time.Now().UTC()
	return &domain.ScheduleConfig{
		ID:             "default",
		StartDate:      Date(start),
		EndDate:        Date(end),
		DefaultLabDays: []time.Weekday{time.Tuesday, time.Thursday},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// NewTestConstraint returns a day constraint on the given date.
func NewTestConstraint(date string, dayType domain.DayType, desc string) *domain.DayConstraint {
	return &domain.DayConstraint{
		Date:        Date(date),
		Type:        dayType,
		Description: desc,
		CreatedAt:   time.Now().UTC(),
	}
}

// NewTestSession returns a logged study session with a fresh ID.
func NewTestSession(date, topicID string, hours float64) *domain.StudySession {
	return &domain.StudySession{
		ID:              uuid.NewString(),
		Date:            Date(date),
		TopicID:         topicID,
		SubtopicIndices: []int{0, 1},
		PlannedHours:    hours,
		ActualHours:     hours,
		Completed:       true,
		CreatedAt:       time.Now().UTC(),
	}
}
