package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// DateOnly truncates t to midnight UTC so dates compare by calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOnly(t), nil
}

// DateKey renders t as its ISO calendar date.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// DayConstraint overrides the default classification of a single date.
// At most one constraint exists per date.
type DayConstraint struct {
	Date        time.Time
	Type        DayType
	Description string
	CreatedAt   time.Time
}

// ScheduleConfig describes the plan's date range and recurring lab days.
type ScheduleConfig struct {
	ID             string
	StartDate      time.Time
	EndDate        time.Time
	DefaultLabDays []time.Weekday
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate rejects configs whose start date falls after the end date.
func (c *ScheduleConfig) Validate() error {
	if c.StartDate.After(c.EndDate) {
		return fmt.Errorf("schedule config %s..%s: %w",
			DateKey(c.StartDate), DateKey(c.EndDate), ErrInvalidDateRange)
	}
	return nil
}

// IsLabWeekday reports whether d is one of the recurring lab weekdays.
func (c *ScheduleConfig) IsLabWeekday(d time.Weekday) bool {
	for _, lab := range c.DefaultLabDays {
		if lab == d {
			return true
		}
	}
	return false
}

// DefaultScheduleConfig is the seed plan: the July 2025 placement-prep
// window with Tuesday and Thursday lab sessions.
func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		StartDate:      time.Date(2025, time.July, 6, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC),
		DefaultLabDays: []time.Weekday{time.Tuesday, time.Thursday},
	}
}
