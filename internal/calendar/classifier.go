// Package calendar classifies calendar days and computes available
// study hours from the schedule config and day constraints.
//
// A day can be lab-flavored in two ways. An explicit constraint or a
// default lab weekday makes the whole day type lab (2 hours, no
// college attendance). A day constrained to college that falls on a
// default lab weekday stays type college but carries IsLabDay, which
// alone reduces its hours from 5 to 2.
package calendar

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// Classifier resolves day types for one schedule config. Constraint
// precedence is absolute: an explicit constraint wins over weekend and
// lab-weekday rules.
type Classifier struct {
	cfg         domain.ScheduleConfig
	constraints map[string]domain.DayConstraint
}

func NewClassifier(cfg domain.ScheduleConfig, constraints []domain.DayConstraint) *Classifier {
	byDate := make(map[string]domain.DayConstraint, len(constraints))
	for _, dc := range constraints {
		byDate[domain.DateKey(dc.Date)] = dc
	}
	return &Classifier{cfg: cfg, constraints: byDate}
}

// Classify determines the day type for date.
func (c *Classifier) Classify(date time.Time) domain.DayType {
	if dc, ok := c.constraints[domain.DateKey(date)]; ok {
		return dc.Type
	}
	wd := date.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return domain.DayWeekend
	}
	if c.cfg.IsLabWeekday(wd) {
		return domain.DayLab
	}
	return domain.DayCollege
}

// DayInfo computes the full derived record for date.
func (c *Classifier) DayInfo(date time.Time) domain.DayInfo {
	date = domain.DateOnly(date)
	info := domain.DayInfo{
		Date:      date,
		DayOfWeek: date.Weekday(),
		Type:      c.Classify(date),
	}
	if dc, ok := c.constraints[domain.DateKey(date)]; ok {
		held := dc
		info.Constraint = &held
	}
	if c.cfg.IsLabWeekday(info.DayOfWeek) &&
		(info.Type == domain.DayLab || info.Type == domain.DayCollege) {
		info.IsLabDay = true
	}
	info.AvailableHours = AvailableHours(info.Type, info.IsLabDay)
	return info
}

// Range returns one DayInfo per calendar day in [start, end], both ends
// inclusive, in chronological order.
func (c *Classifier) Range(start, end time.Time) []domain.DayInfo {
	start, end = domain.DateOnly(start), domain.DateOnly(end)
	var days []domain.DayInfo
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, c.DayInfo(d))
	}
	return days
}

// Remaining returns the DayInfos from the given date through the end of
// the configured range. The result is empty when from is past the end.
func (c *Classifier) Remaining(from time.Time) []domain.DayInfo {
	from = domain.DateOnly(from)
	if from.Before(c.cfg.StartDate) {
		from = c.cfg.StartDate
	}
	if from.After(c.cfg.EndDate) {
		return nil
	}
	return c.Range(from, c.cfg.EndDate)
}

// AvailableHours returns the study hours available for a day type.
// The isLabDay flag only matters for college days.
func AvailableHours(t domain.DayType, isLabDay bool) int {
	switch t {
	case domain.DayHoliday, domain.DayWeekend, domain.DayAvailable:
		return 8
	case domain.DayCollege:
		if isLabDay {
			return 2
		}
		return 5
	case domain.DayLab:
		return 2
	case domain.DayExam:
		return 0
	default:
		return 0
	}
}
