package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/contract"
)

// FormatSchedule renders the full multi-week schedule.
func FormatSchedule(resp *contract.ScheduleResponse) string {
	var b strings.Builder

	title := "Study schedule"
	if resp.Enriched {
		title += " (AI refined)"
	}
	b.WriteString(Header(title))
	b.WriteString("\n")

	rows := make([][]string, 0, len(resp.ScheduledTopics))
	for _, st := range resp.ScheduledTopics {
		rows = append(rows, []string{
			fmt.Sprintf("W%d", st.WeekNumber),
			st.TopicTitle,
			UrgencyIndicator(st.UrgencyLevel),
			st.StartDate,
			st.EndDate,
			fmt.Sprintf("%d/%dh", st.AllocatedHours, st.RequiredHours),
			RenderProgress(st.CompletionPercentage, 10),
		})
	}
	b.WriteString(RenderTable(
		[]string{"Week", "Topic", "Urgency", "Start", "End", "Hours", "Done"}, rows))
	b.WriteString("\n")

	b.WriteString(formatGuarantee(resp.CompletionGuarantee))

	if len(resp.Recommendations) > 0 {
		b.WriteString(Header("Recommendations"))
		b.WriteString("\n")
		b.WriteString(BulletList(resp.Recommendations))
		b.WriteString("\n")
	}
	if len(resp.Adjustments) > 0 {
		b.WriteString(Header("Adjustments"))
		b.WriteString("\n")
		b.WriteString(BulletList(resp.Adjustments))
	}

	return b.String()
}

func formatGuarantee(g contract.CompletionGuarantee) string {
	var b strings.Builder

	covered := StyleRed.Render("✖ Not all topics fit the remaining time")
	if g.AllTopicsCovered {
		covered = StyleGreen.Render("✔ All topics covered")
	}
	b.WriteString(covered)
	if g.ExpectedCompletionDate != "" {
		b.WriteString(Dim("  expected completion " + g.ExpectedCompletionDate))
	}
	b.WriteString("\n")

	if len(g.RiskFactors) > 0 {
		b.WriteString(Header("Risks"))
		b.WriteString("\n")
		for i, r := range g.RiskFactors {
			b.WriteString(StyleYellow.Render("  ! "))
			b.WriteString(r)
			b.WriteString("\n")
			if i < len(g.MitigationStrategies) {
				b.WriteString(Dim("    → " + g.MitigationStrategies[i]))
				b.WriteString("\n")
			}
		}
	}
	b.WriteString("\n")
	return b.String()
}
