package scheduler

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/curriculum"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/progress"
)

// slotWindow is a study window within a day, in minutes from midnight.
type slotWindow struct {
	start, end int
}

func slotWindows(day domain.DayInfo) []slotWindow {
	switch day.Type {
	case domain.DayWeekend, domain.DayHoliday, domain.DayAvailable:
		return []slotWindow{
			{9 * 60, 12 * 60},
			{14 * 60, 17 * 60},
			{19 * 60, 21 * 60},
		}
	case domain.DayCollege:
		if day.IsLabDay {
			return []slotWindow{{17*60 + 30, 19*60 + 30}}
		}
		return []slotWindow{
			{7 * 60, 9*60 + 30},
			{17 * 60, 20 * 60},
		}
	case domain.DayLab:
		return []slotWindow{{17*60 + 30, 19*60 + 30}}
	case domain.DayExam:
		return []slotWindow{{18 * 60, 19 * 60}}
	default:
		return []slotWindow{{9 * 60, 12 * 60}}
	}
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func breakMinutes(precedingBlock int) int {
	if precedingBlock > 60 {
		return 15
	}
	return 10
}

// dayLayout walks the day's windows chronologically, placing study
// blocks and the breaks between them.
type dayLayout struct {
	windows      []slotWindow
	winIdx       int
	cursor       int
	lastBlockMin int
}

func newDayLayout(day domain.DayInfo) *dayLayout {
	w := slotWindows(day)
	l := &dayLayout{windows: w}
	if len(w) > 0 {
		l.cursor = w[0].start
	}
	return l
}

// place tries to fit a study block of dur minutes. A break precedes the
// block when it continues the current window; moving to a later window
// absorbs the break into the window gap. Reported cost counts the study
// minutes plus any emitted break. ok is false when no window can hold
// the block.
func (l *dayLayout) place(dur int, activity string) (slots []contract.TimeSlot, cost int, ok bool) {
	if l.winIdx >= len(l.windows) {
		return nil, 0, false
	}

	cur := l.windows[l.winIdx]
	start := l.cursor
	br := 0
	if l.lastBlockMin > 0 {
		br = breakMinutes(l.lastBlockMin)
		start += br
	}

	if start+dur <= cur.end {
		if br > 0 {
			slots = append(slots, contract.TimeSlot{
				Start:    clock(l.cursor),
				End:      clock(l.cursor + br),
				Activity: "Break",
			})
		}
		slots = append(slots, contract.TimeSlot{
			Start:    clock(start),
			End:      clock(start + dur),
			Activity: activity,
		})
		l.cursor = start + dur
		l.lastBlockMin = dur
		return slots, dur + br, true
	}

	for i := l.winIdx + 1; i < len(l.windows); i++ {
		w := l.windows[i]
		if w.start+dur > w.end {
			continue
		}
		l.winIdx = i
		l.cursor = w.start + dur
		l.lastBlockMin = dur
		return []contract.TimeSlot{{
			Start:    clock(w.start),
			End:      clock(w.start + dur),
			Activity: activity,
		}}, dur, true
	}
	return nil, 0, false
}

func maxSubtopicsPerDay(availableHours int) int {
	switch {
	case availableHours >= 8:
		return 6
	case availableHours >= 6:
		return 4
	case availableHours >= 4:
		return 3
	case availableHours >= 2:
		return 2
	default:
		return 1
	}
}

// subtopicMinuteCap returns the per-block ceiling for a topic, keyed by
// its id: hands-on programming topics get longer blocks than aptitude
// drills.
func subtopicMinuteCap(topicID string) int {
	switch {
	case strings.Contains(topicID, "programming"), strings.Contains(topicID, "cpp"):
		return 120
	case strings.Contains(topicID, "algorithm"), strings.Contains(topicID, "data-structures"):
		return 90
	case strings.Contains(topicID, "aptitude"), strings.Contains(topicID, "reasoning"):
		return 60
	default:
		return 90
	}
}

func subtopicPriority(index int, topicID string, urgency domain.UrgencyLevel) string {
	if urgency == domain.UrgencyCritical || urgency == domain.UrgencyHigh {
		return "high"
	}
	if index == 0 {
		return "high"
	}
	if index <= 2 {
		return "medium"
	}
	if strings.Contains(topicID, "programming") || strings.Contains(topicID, "algorithm") {
		if index <= 3 {
			return "high"
		}
		return "medium"
	}
	return "low"
}

// GenerateDailyPlan builds the ordered study plan for one day. Scored
// topics must already be in canonical order. The result is read-only
// over progress and always well-formed: a day with no hours or nothing
// incomplete yields an empty suggestion list.
func GenerateDailyPlan(
	day domain.DayInfo,
	ordered []ScoredTopic,
	curr *curriculum.Curriculum,
	tr *progress.Tracker,
	currentWeek int,
) contract.DailyStudySuggestion {
	result := contract.DailyStudySuggestion{
		Date:                domain.DateKey(day.Date),
		DayType:             string(day.Type),
		IsLabDay:            day.IsLabDay,
		TotalAvailableHours: day.AvailableHours,
	}
	result.Tips = CollectTips(day, ordered, currentWeek, len(curr.Weeks()))

	hours := day.AvailableHours
	if hours <= 0 || len(ordered) == 0 {
		return result
	}

	maxTopics := hours / 2
	if maxTopics < 1 {
		maxTopics = 1
	}
	if maxTopics > len(ordered) {
		maxTopics = len(ordered)
	}

	budget := hours * 60
	layout := newDayLayout(day)

	for _, st := range ordered[:maxTopics] {
		if budget <= 0 {
			break
		}
		topicID := st.Analysis.TopicID
		topic, ok := curr.Topic(topicID)
		if !ok {
			continue
		}
		incomplete := tr.IncompleteSubtopics(topicID)
		if len(incomplete) == 0 {
			continue
		}

		maxSub := maxSubtopicsPerDay(hours)
		if st.Analysis.UrgencyLevel == domain.UrgencyCritical {
			maxSub += 2
		}
		if maxSub > len(incomplete) {
			maxSub = len(incomplete)
		}
		selected := incomplete[:maxSub]

		perBlock := hours * 60 / len(selected)
		if mcap := subtopicMinuteCap(topicID); perBlock > mcap {
			perBlock = mcap
		}

		suggestion := contract.TopicSuggestion{
			TopicID:    topicID,
			TopicTitle: topic.Title,
			Urgency:    string(st.Analysis.UrgencyLevel),
		}
		exhausted := false
		for i, idx := range selected {
			title := topic.Subtopics[idx]
			slots, cost, placed := layout.place(perBlock, "Study: "+title)
			if !placed || cost > budget {
				exhausted = true
				break
			}
			budget -= cost
			suggestion.TimeSlots = append(suggestion.TimeSlots, slots...)
			suggestion.Subtopics = append(suggestion.Subtopics, contract.SubtopicPlan{
				Index:            idx,
				Title:            title,
				EstimatedMinutes: perBlock,
				Priority:         subtopicPriority(i, topicID, st.Analysis.UrgencyLevel),
				Reason:           subtopicReason(st.Analysis, i, currentWeek, len(curr.Weeks())),
			})
		}
		if len(suggestion.Subtopics) > 0 {
			result.Suggestions = append(result.Suggestions, suggestion)
		}
		if exhausted {
			break
		}
	}
	return result
}

func subtopicReason(a TopicAnalysis, i, currentWeek, totalWeeks int) string {
	var phrases []string
	switch a.UrgencyLevel {
	case domain.UrgencyCritical:
		phrases = []string{
			"Critical topic, significantly behind schedule",
			"Urgent completion required to stay on track",
			"Essential groundwork for the coming weeks",
		}
	case domain.UrgencyHigh:
		phrases = []string{
			"High priority, needed for timely completion",
			"Important for keeping study momentum",
			"Key concept for upcoming topics",
		}
	case domain.UrgencyMedium:
		phrases = []string{
			"Scheduled for this week's focus",
			"Builds the foundation for advanced concepts",
			"Progressing through the planned curriculum",
		}
	default:
		phrases = []string{
			"Completing the topic systematically",
			"Reinforces fundamental concepts",
			"Maintains consistent progress",
		}
	}
	reason := phrases[i%len(phrases)]
	if currentWeek >= 1 && currentWeek <= totalWeeks {
		reason = fmt.Sprintf("%s (week %d/%d)", reason, currentWeek, totalWeeks)
	}
	return reason
}
