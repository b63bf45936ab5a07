package scheduler

import (
	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// lookAheadReserve is how many trailing days must remain before an
// urgent topic may skip a short day in favor of a longer one.
const lookAheadReserve = 30

// AllocateTopics walks the day sequence once, left to right, giving
// each topic in canonical priority order the hours it requires. The day
// cursor is shared and monotonic: hours a higher-priority topic draws
// from a day are gone, but a day's leftover capacity stays available to
// the next topic. Critical and high urgency topics skip short days
// (under 3 hours) while enough days remain further out; days skipped
// that way are not revisited.
func AllocateTopics(days []domain.DayInfo, ordered []ScoredTopic) []contract.ScheduledTopic {
	remaining := make([]int, len(days))
	for i, d := range days {
		remaining[i] = d.AvailableHours
	}

	scheduled := make([]contract.ScheduledTopic, 0, len(ordered))
	cursor := 0

	for _, st := range ordered {
		a := st.Analysis
		need := a.EstimatedHours
		urgent := a.UrgencyLevel == domain.UrgencyCritical || a.UrgencyLevel == domain.UrgencyHigh

		out := contract.ScheduledTopic{
			TopicID:              a.TopicID,
			TopicTitle:           a.Title,
			WeekNumber:           a.WeekNumber,
			RequiredHours:        a.EstimatedHours,
			UrgencyLevel:         string(a.UrgencyLevel),
			CompletionPercentage: a.CompletionPercentage,
		}

		for need > 0 && cursor < len(days) {
			day := days[cursor]
			if urgent && day.AvailableHours < 3 && cursor < len(days)-lookAheadReserve {
				cursor++
				continue
			}
			if remaining[cursor] <= 0 {
				cursor++
				continue
			}

			take := need
			if take > remaining[cursor] {
				take = remaining[cursor]
			}
			need -= take
			remaining[cursor] -= take

			key := domain.DateKey(day.Date)
			if out.StartDate == "" {
				out.StartDate = key
			}
			out.EndDate = key
			out.DaysAllocated = append(out.DaysAllocated, key)

			if remaining[cursor] == 0 {
				cursor++
			}
		}

		out.AllocatedHours = a.EstimatedHours - need
		scheduled = append(scheduled, out)
	}
	return scheduled
}
