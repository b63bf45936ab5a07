// Package progress owns the plan's UserProgress record. All mutation
// goes through the Tracker; the scheduling engine only reads the
// derived queries.
package progress

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/studyplan/internal/curriculum"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// Tracker wraps one UserProgress instance with curriculum-aware
// accessors. Progress entries whose topic id is not in the curriculum
// are ignored by every derived query.
type Tracker struct {
	curr *curriculum.Curriculum
	up   *domain.UserProgress
	now  func() time.Time
}

func NewTracker(curr *curriculum.Curriculum, up *domain.UserProgress) *Tracker {
	if up == nil {
		up = domain.NewUserProgress()
	}
	if up.CompletedTopics == nil {
		up.CompletedTopics = make(map[string]bool)
	}
	if up.TopicsProgress == nil {
		up.TopicsProgress = make(map[string]*domain.TopicProgress)
	}
	return &Tracker{curr: curr, up: up, now: time.Now}
}

// Progress exposes the underlying record for persistence. Callers must
// treat it as read-only.
func (t *Tracker) Progress() *domain.UserProgress { return t.up }

// SetTopicComplete toggles membership of the manual completed-topics
// set. It never touches subtopic records.
func (t *Tracker) SetTopicComplete(topicID string, completed bool) error {
	if _, ok := t.curr.Topic(topicID); !ok {
		return fmt.Errorf("topic %q: %w", topicID, domain.ErrUnknownTopic)
	}
	if completed {
		t.up.CompletedTopics[topicID] = true
	} else {
		delete(t.up.CompletedTopics, topicID)
	}
	t.touch()
	return nil
}

// SetSubtopicComplete upserts the subtopic record keyed by index,
// creating the TopicProgress entry on first use. Completing the last
// remaining subtopic marks the topic record complete; un-completing
// any subtopic clears that mark.
func (t *Tracker) SetSubtopicComplete(topicID string, index int, completed bool) error {
	topic, ok := t.curr.Topic(topicID)
	if !ok {
		return fmt.Errorf("topic %q: %w", topicID, domain.ErrUnknownTopic)
	}
	if index < 0 || index >= len(topic.Subtopics) {
		return fmt.Errorf("topic %q index %d of %d: %w",
			topicID, index, len(topic.Subtopics), domain.ErrSubtopicOutOfRange)
	}

	tp := t.up.TopicsProgress[topicID]
	if tp == nil {
		tp = &domain.TopicProgress{TopicID: topicID}
		t.up.TopicsProgress[topicID] = tp
	}

	now := t.now()
	found := false
	for i := range tp.SubtopicsProgress {
		if tp.SubtopicsProgress[i].SubtopicIndex != index {
			continue
		}
		found = true
		tp.SubtopicsProgress[i].Completed = completed
		if completed {
			tp.SubtopicsProgress[i].CompletedAt = &now
		} else {
			tp.SubtopicsProgress[i].CompletedAt = nil
		}
		break
	}
	if !found {
		sp := domain.SubtopicProgress{SubtopicIndex: index, Completed: completed}
		if completed {
			sp.CompletedAt = &now
		}
		tp.SubtopicsProgress = append(tp.SubtopicsProgress, sp)
		sort.Slice(tp.SubtopicsProgress, func(a, b int) bool {
			return tp.SubtopicsProgress[a].SubtopicIndex < tp.SubtopicsProgress[b].SubtopicIndex
		})
	}

	if tp.CompletedCount() == len(topic.Subtopics) {
		if !tp.Completed {
			tp.Completed = true
			tp.CompletedAt = &now
		}
	} else if tp.Completed {
		tp.Completed = false
		tp.CompletedAt = nil
	}

	t.touch()
	return nil
}

// AddStudyHours accumulates logged study time.
func (t *Tracker) AddStudyHours(hours float64) {
	if hours <= 0 {
		return
	}
	t.up.TotalHoursStudied += hours
	t.touch()
}

// CompletionPercentage returns the topic's derived completion in
// [0, 100]. A topic manually marked complete that has no subtopic
// records reports 100.
func (t *Tracker) CompletionPercentage(topicID string) float64 {
	topic, ok := t.curr.Topic(topicID)
	if !ok || len(topic.Subtopics) == 0 {
		return 0
	}
	tp := t.up.TopicsProgress[topicID]
	if tp == nil || len(tp.SubtopicsProgress) == 0 {
		if t.up.CompletedTopics[topicID] {
			return 100
		}
		return 0
	}
	return float64(tp.CompletedCount()) / float64(len(topic.Subtopics)) * 100
}

// IsTopicFullyComplete reports whether the topic sits at 100%.
func (t *Tracker) IsTopicFullyComplete(topicID string) bool {
	return t.CompletionPercentage(topicID) >= 100
}

// IncompleteSubtopics returns the indices of subtopics not yet
// completed, in curriculum order.
func (t *Tracker) IncompleteSubtopics(topicID string) []int {
	topic, ok := t.curr.Topic(topicID)
	if !ok {
		return nil
	}
	if t.IsTopicFullyComplete(topicID) {
		return nil
	}
	done := make(map[int]bool)
	if tp := t.up.TopicsProgress[topicID]; tp != nil {
		for _, sp := range tp.SubtopicsProgress {
			if sp.Completed {
				done[sp.SubtopicIndex] = true
			}
		}
	}
	var out []int
	for i := range topic.Subtopics {
		if !done[i] {
			out = append(out, i)
		}
	}
	return out
}

// OverallPercentage averages completion across every curriculum topic.
func (t *Tracker) OverallPercentage() float64 {
	ids := t.curr.TopicIDs()
	if len(ids) == 0 {
		return 0
	}
	sum := 0.0
	for _, id := range ids {
		sum += t.CompletionPercentage(id)
	}
	return sum / float64(len(ids))
}

// CompletedTopicCount counts topics at 100%.
func (t *Tracker) CompletedTopicCount() int {
	n := 0
	for _, id := range t.curr.TopicIDs() {
		if t.IsTopicFullyComplete(id) {
			n++
		}
	}
	return n
}

// WeekCompletion averages completion across the topics of one week.
type WeekCompletion struct {
	WeekNumber      int
	Percentage      float64
	CompletedTopics int
	TotalTopics     int
	InProgress      int
}

// WeekRollup computes the per-week completion summary.
func (t *Tracker) WeekRollup(weekNumber int) (WeekCompletion, bool) {
	week, ok := t.curr.Week(weekNumber)
	if !ok {
		return WeekCompletion{}, false
	}
	wc := WeekCompletion{WeekNumber: weekNumber, TotalTopics: len(week.Topics)}
	sum := 0.0
	for _, topic := range week.Topics {
		pct := t.CompletionPercentage(topic.ID)
		sum += pct
		switch {
		case pct >= 100:
			wc.CompletedTopics++
		case pct > 0:
			wc.InProgress++
		}
	}
	if len(week.Topics) > 0 {
		wc.Percentage = sum / float64(len(week.Topics))
	}
	return wc, true
}

func (t *Tracker) touch() {
	t.up.LastUpdated = t.now()
}
