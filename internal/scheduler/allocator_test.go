package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/studyplan/internal/domain"
)

func mkDays(t *testing.T, start string, hours []int) []domain.DayInfo {
	t.Helper()
	d, err := domain.ParseDate(start)
	require.NoError(t, err)
	days := make([]domain.DayInfo, len(hours))
	for i, h := range hours {
		days[i] = domain.DayInfo{
			Date:           d.AddDate(0, 0, i),
			DayOfWeek:      d.AddDate(0, 0, i).Weekday(),
			Type:           domain.DayAvailable,
			AvailableHours: h,
		}
	}
	return days
}

func mkScored(id string, week, hours int, urgency domain.UrgencyLevel) ScoredTopic {
	return ScoredTopic{
		Analysis: TopicAnalysis{
			TopicID:        id,
			Title:          id,
			WeekNumber:     week,
			EstimatedHours: hours,
			UrgencyLevel:   urgency,
		},
	}
}

func TestAllocateTopicsSequential(t *testing.T) {
	days := mkDays(t, "2025-07-06", []int{8, 8, 8})
	ordered := []ScoredTopic{
		mkScored("t1", 1, 10, domain.UrgencyLow),
		mkScored("t2", 2, 6, domain.UrgencyLow),
	}

	scheduled := AllocateTopics(days, ordered)
	require.Len(t, scheduled, 2)

	t1 := scheduled[0]
	assert.Equal(t, 10, t1.AllocatedHours)
	assert.Equal(t, "2025-07-06", t1.StartDate)
	assert.Equal(t, "2025-07-07", t1.EndDate)
	assert.Equal(t, []string{"2025-07-06", "2025-07-07"}, t1.DaysAllocated)

	// t2 reuses the six hours left on July 7 after t1 took two.
	t2 := scheduled[1]
	assert.Equal(t, 6, t2.AllocatedHours)
	assert.Equal(t, "2025-07-07", t2.StartDate)
	assert.Equal(t, "2025-07-07", t2.EndDate)
}

func TestAllocateTopicsSkipsZeroHourDays(t *testing.T) {
	days := mkDays(t, "2025-07-06", []int{4, 0, 4})
	scheduled := AllocateTopics(days, []ScoredTopic{
		mkScored("t1", 1, 8, domain.UrgencyLow),
	})

	require.Len(t, scheduled, 1)
	assert.Equal(t, 8, scheduled[0].AllocatedHours)
	assert.Equal(t, []string{"2025-07-06", "2025-07-08"}, scheduled[0].DaysAllocated)
}

func TestAllocateTopicsPartialWhenDaysRunOut(t *testing.T) {
	days := mkDays(t, "2025-07-06", []int{3, 3})
	scheduled := AllocateTopics(days, []ScoredTopic{
		mkScored("t1", 1, 10, domain.UrgencyLow),
		mkScored("t2", 2, 5, domain.UrgencyLow),
	})

	require.Len(t, scheduled, 2)
	assert.Equal(t, 6, scheduled[0].AllocatedHours)
	assert.Equal(t, 10, scheduled[0].RequiredHours)
	assert.Zero(t, scheduled[1].AllocatedHours)
	assert.Empty(t, scheduled[1].DaysAllocated)
}

func TestAllocateTopicsUrgentSkipsShortDaysEarly(t *testing.T) {
	// 40 days: the first two are short. A critical topic skips them
	// while the look-ahead reserve holds.
	hours := make([]int, 40)
	hours[0], hours[1] = 2, 2
	for i := 2; i < 40; i++ {
		hours[i] = 8
	}
	days := mkDays(t, "2025-07-06", hours)

	scheduled := AllocateTopics(days, []ScoredTopic{
		mkScored("urgent", 1, 8, domain.UrgencyCritical),
	})

	require.Len(t, scheduled, 1)
	assert.Equal(t, "2025-07-08", scheduled[0].StartDate)
	assert.Equal(t, 8, scheduled[0].AllocatedHours)
}

func TestAllocateTopicsUrgentKeepsShortDaysNearEnd(t *testing.T) {
	// Too few days remain for the look-ahead: short days are used.
	days := mkDays(t, "2025-07-06", []int{2, 2, 8})
	scheduled := AllocateTopics(days, []ScoredTopic{
		mkScored("urgent", 1, 6, domain.UrgencyCritical),
	})

	require.Len(t, scheduled, 1)
	assert.Equal(t, "2025-07-06", scheduled[0].StartDate)
	assert.Equal(t, 6, scheduled[0].AllocatedHours)
	assert.Len(t, scheduled[0].DaysAllocated, 3)
}

func TestAllocateTopicsConservation(t *testing.T) {
	days := mkDays(t, "2025-07-06", []int{5, 2, 5, 2, 5, 8, 8})
	total := 0
	for _, d := range days {
		total += d.AvailableHours
	}

	ordered := []ScoredTopic{
		mkScored("t1", 1, 20, domain.UrgencyLow),
		mkScored("t2", 2, 15, domain.UrgencyLow),
		mkScored("t3", 3, 10, domain.UrgencyLow),
	}
	scheduled := AllocateTopics(days, ordered)

	allocated := 0
	for _, st := range scheduled {
		allocated += st.AllocatedHours
	}
	assert.LessOrEqual(t, allocated, total)
	assert.Equal(t, total, allocated, "demand above capacity drains every hour")
}

func TestAllocateTopicsEmptyInputs(t *testing.T) {
	assert.Empty(t, AllocateTopics(nil, []ScoredTopic{mkScored("t", 1, 4, domain.UrgencyLow)})[0].DaysAllocated)
	assert.Empty(t, AllocateTopics(mkDays(t, "2025-07-06", []int{8}), nil))
}
