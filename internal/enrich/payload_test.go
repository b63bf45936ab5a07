package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/studyplan/internal/curriculum"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/scheduler"
)

func TestBuildPayload(t *testing.T) {
	curr, err := curriculum.Load()
	require.NoError(t, err)

	analyses := []scheduler.TopicAnalysis{
		{
			TopicID:              "programming-fundamentals",
			WeekNumber:           1,
			EstimatedHours:       20,
			TotalSubtopics:       6,
			CompletionPercentage: 50,
			UrgencyLevel:         domain.UrgencyCritical,
		},
		{
			TopicID:              "cpp-basics",
			WeekNumber:           2,
			EstimatedHours:       25,
			TotalSubtopics:       7,
			CompletionPercentage: 0,
			UrgencyLevel:         domain.UrgencyHigh,
		},
	}

	p := BuildPayload(curr, analyses, 3, 2)

	assert.Equal(t, curr.TopicCount()-2, p.CompletedTopics)
	assert.Equal(t, 3, p.Constraints)
	assert.Equal(t, 2, p.LabDays)

	require.Len(t, p.RemainingTopics, 2)
	assert.Equal(t, "programming-fundamentals", p.RemainingTopics[0].ID)
	assert.Equal(t, 20, p.RemainingTopics[0].EstimatedHours)
	assert.Equal(t, 6, p.RemainingTopics[0].SubtopicCount)

	require.Len(t, p.TopicAnalysis, 2)
	assert.Equal(t, "critical", p.TopicAnalysis[0].UrgencyLevel)
	assert.Equal(t, 50.0, p.TopicAnalysis[0].CompletionPercentage)
}
