package calendar

import "github.com/alexanderramin/studyplan/internal/domain"

// StudyStats aggregates a day range into headline availability numbers.
type StudyStats struct {
	TotalDays           int
	TotalAvailableHours int
	StudyDays           int
	CollegeDays         int
	LabDays             int
	WeekendDays         int
	HolidayDays         int
	ExamDays            int
	AvgHoursPerStudyDay float64
}

// Stats summarizes the given day sequence. A study day is any day with
// at least one available hour.
func Stats(days []domain.DayInfo) StudyStats {
	var s StudyStats
	for _, d := range days {
		s.TotalDays++
		s.TotalAvailableHours += d.AvailableHours
		if d.AvailableHours > 0 {
			s.StudyDays++
		}
		switch d.Type {
		case domain.DayCollege:
			s.CollegeDays++
			if d.IsLabDay {
				s.LabDays++
			}
		case domain.DayLab:
			s.LabDays++
		case domain.DayWeekend:
			s.WeekendDays++
		case domain.DayHoliday:
			s.HolidayDays++
		case domain.DayExam:
			s.ExamDays++
		}
	}
	if s.StudyDays > 0 {
		s.AvgHoursPerStudyDay = float64(s.TotalAvailableHours) / float64(s.StudyDays)
	}
	return s
}
