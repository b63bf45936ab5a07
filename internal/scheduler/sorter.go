package scheduler

import "sort"

// CanonicalSort orders scored topics by the deterministic canonical rules:
// 1. Score: higher first
// 2. Week number: lower first
// 3. Curriculum declaration order
// 4. Topic ID: lexical ascending
func CanonicalSort(topics []ScoredTopic) {
	sort.SliceStable(topics, func(i, j int) bool {
		a, b := topics[i], topics[j]

		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Analysis.WeekNumber != b.Analysis.WeekNumber {
			return a.Analysis.WeekNumber < b.Analysis.WeekNumber
		}
		if a.Analysis.OrderIndex != b.Analysis.OrderIndex {
			return a.Analysis.OrderIndex < b.Analysis.OrderIndex
		}
		return a.Analysis.TopicID < b.Analysis.TopicID
	})
}
