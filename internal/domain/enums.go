package domain

import (
	"fmt"
	"strings"
	"time"
)

type DayType string

const (
	DayCollege   DayType = "college"
	DayLab       DayType = "lab"
	DayHoliday   DayType = "holiday"
	DayExam      DayType = "exam"
	DayWeekend   DayType = "weekend"
	DayAvailable DayType = "available"
)

// ValidDayTypes is the canonical set of accepted day type strings.
var ValidDayTypes = map[string]bool{
	"college": true, "lab": true, "holiday": true,
	"exam": true, "weekend": true, "available": true,
}

// ParseDayType returns the DayType for s (case-insensitive).
func ParseDayType(s string) (DayType, error) {
	k := strings.ToLower(strings.TrimSpace(s))
	if !ValidDayTypes[k] {
		return "", fmt.Errorf("unknown day type %q (expected one of college, lab, holiday, exam, weekend, available)", s)
	}
	return DayType(k), nil
}

type UrgencyLevel string

const (
	UrgencyCritical UrgencyLevel = "critical"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyLow      UrgencyLevel = "low"
)

// Weight returns the scoring weight of the urgency tier.
func (u UrgencyLevel) Weight() float64 {
	switch u {
	case UrgencyCritical:
		return 100
	case UrgencyHigh:
		return 75
	case UrgencyMedium:
		return 50
	default:
		return 25
	}
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday converts a lowercase weekday name into a time.Weekday.
func ParseWeekday(s string) (time.Weekday, error) {
	d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", s)
	}
	return d, nil
}

// WeekdayName returns the lowercase name used in configuration records.
func WeekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}
