package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/contract"
)

// FormatStatus renders the progress overview.
func FormatStatus(resp *contract.StatusResponse, verbose bool) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Week %d of %d", resp.CurrentWeek, resp.TotalWeeks)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Overall  %s\n", RenderProgress(resp.OverallPercentage, 24)))
	b.WriteString(fmt.Sprintf("%s topics done, %s studied, %s left in %d days\n\n",
		Bold(fmt.Sprintf("%d/%d", resp.CompletedTopics, resp.TotalTopics)),
		Bold(FormatHours(resp.TotalHoursStudied)),
		Bold(fmt.Sprintf("%dh", resp.TotalAvailableHours)),
		resp.DaysRemaining))

	rows := make([][]string, 0, len(resp.Weeks))
	for _, w := range resp.Weeks {
		marker := ""
		if w.BehindSchedule {
			marker = StyleRed.Render("behind")
		} else if w.WeekNumber == resp.CurrentWeek {
			marker = StyleBlue.Render("current")
		}
		rows = append(rows, []string{
			fmt.Sprintf("W%d", w.WeekNumber),
			w.Focus,
			RenderProgress(w.CompletionPercentage, 12),
			fmt.Sprintf("%d/%d", w.CompletedTopics, w.TotalTopics),
			marker,
		})
	}
	b.WriteString(RenderTable([]string{"Week", "Focus", "Progress", "Topics", ""}, rows))

	if verbose {
		b.WriteString("\n")
		for _, w := range resp.Weeks {
			for _, ts := range w.Topics {
				if ts.CompletionPercentage >= 100 {
					continue
				}
				b.WriteString(fmt.Sprintf("%s %s %s  %d/%d subtopics\n",
					UrgencyIndicator(ts.UrgencyLevel),
					Bold(ts.Title),
					RenderProgress(ts.CompletionPercentage, 10),
					ts.CompletedSubtopics, ts.TotalSubtopics))
			}
		}
	}

	return b.String()
}
