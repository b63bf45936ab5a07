package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// FormatDailyPlan renders the study plan for one day.
func FormatDailyPlan(plan *contract.DailyStudySuggestion, now time.Time) string {
	var b strings.Builder

	date, err := domain.ParseDate(plan.Date)
	title := plan.Date
	if err == nil {
		title = fmt.Sprintf("%s (%s)", HumanDate(date, now), plan.Date)
	}
	b.WriteString(Header("Study plan " + title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s available\n\n",
		DayTypeBadge(plan.DayType, plan.IsLabDay),
		Bold(fmt.Sprintf("%dh", plan.TotalAvailableHours))))

	if len(plan.Suggestions) == 0 {
		b.WriteString(Dim("No study blocks scheduled for this day.\n"))
	}

	for _, sg := range plan.Suggestions {
		b.WriteString(fmt.Sprintf("%s  %s\n", Bold(sg.TopicTitle), UrgencyIndicator(sg.Urgency)))

		rows := make([][]string, 0, len(sg.Subtopics))
		for _, sp := range sg.Subtopics {
			rows = append(rows, []string{
				fmt.Sprintf("%d", sp.Index+1),
				sp.Title,
				FormatMinutes(sp.EstimatedMinutes),
				UrgencyColor(sp.Priority).Render(sp.Priority),
				Dim(sp.Reason),
			})
		}
		b.WriteString(RenderTable([]string{"#", "Subtopic", "Time", "Priority", "Why"}, rows))

		if len(sg.TimeSlots) > 0 {
			for _, slot := range sg.TimeSlots {
				b.WriteString(fmt.Sprintf("  %s  %s\n",
					Dim(slot.Start+"-"+slot.End), slot.Activity))
			}
		}
		b.WriteString("\n")
	}

	if len(plan.Tips) > 0 {
		b.WriteString(Header("Tips"))
		b.WriteString("\n")
		b.WriteString(BulletList(plan.Tips))
	}

	return b.String()
}
