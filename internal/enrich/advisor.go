package enrich

import (
	"context"
	"encoding/json"
	"math"

	"github.com/alexanderramin/studyplan/internal/llm"
)

// Advisor produces schedule advice, preferring the model when one is
// configured and reachable.
type Advisor interface {
	// EnrichSchedule returns advice for the given analysis payload. The
	// boolean reports whether the model contributed; on any failure the
	// deterministic advice is returned with false. A single model call
	// is made per invocation.
	EnrichSchedule(ctx context.Context, payload SchedulePayload, defaults Defaults) (ScheduleAdvice, bool)
}

type advisor struct {
	client llm.Client
}

// NewAdvisor creates an Advisor backed by an LLM client. A nil client
// yields deterministic advice only.
func NewAdvisor(client llm.Client) Advisor {
	return &advisor{client: client}
}

func (a *advisor) EnrichSchedule(ctx context.Context, payload SchedulePayload, defaults Defaults) (ScheduleAdvice, bool) {
	fallback := DeterministicAdvice(payload, defaults)
	if a.client == nil {
		return fallback, false
	}

	payloadJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fallback, false
	}

	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSchedule,
		SystemPrompt: scheduleSystemPrompt,
		UserPrompt:   "Here is the schedule analysis:\n\n" + string(payloadJSON),
	})
	if err != nil {
		return fallback, false
	}

	advice, err := llm.ExtractJSON[ScheduleAdvice](resp.Text, nil)
	if err != nil {
		return fallback, false
	}

	Repair(&advice, payload, defaults)
	return advice, true
}

// DeterministicAdvice builds the engine-only advice: remaining topics
// in curriculum order, urgency buckets from the analysis, and the
// default strategy numbers.
func DeterministicAdvice(payload SchedulePayload, defaults Defaults) ScheduleAdvice {
	order := make([]string, 0, len(payload.RemainingTopics))
	for _, rt := range payload.RemainingTopics {
		order = append(order, rt.ID)
	}

	advice := ScheduleAdvice{
		TopicOrder:         order,
		Recommendations:    defaults.Recommendations,
		Adjustments:        defaults.Adjustments,
		CompletionStrategy: defaultStrategy(payload),
	}
	for _, ta := range payload.TopicAnalysis {
		advice.PriorityGroups.add(ta.UrgencyLevel, ta.TopicID)
	}
	return advice
}

// Repair enforces the response contract in place: unknown topic IDs are
// dropped, topics the model omitted are appended in curriculum order,
// urgency buckets are back-filled from the engine analysis, and empty
// advisory fields fall back to the engine defaults.
func Repair(advice *ScheduleAdvice, payload SchedulePayload, defaults Defaults) {
	known := make(map[string]bool, len(payload.RemainingTopics))
	for _, rt := range payload.RemainingTopics {
		known[rt.ID] = true
	}

	seen := make(map[string]bool, len(advice.TopicOrder))
	order := advice.TopicOrder[:0]
	for _, id := range advice.TopicOrder {
		if known[id] && !seen[id] {
			order = append(order, id)
			seen[id] = true
		}
	}
	for _, rt := range payload.RemainingTopics {
		if !seen[rt.ID] {
			order = append(order, rt.ID)
		}
	}
	advice.TopicOrder = order

	advice.PriorityGroups.Critical = filterKnown(advice.PriorityGroups.Critical, known)
	advice.PriorityGroups.High = filterKnown(advice.PriorityGroups.High, known)
	advice.PriorityGroups.Medium = filterKnown(advice.PriorityGroups.Medium, known)
	advice.PriorityGroups.Low = filterKnown(advice.PriorityGroups.Low, known)

	grouped := make(map[string]bool)
	for _, g := range [][]string{
		advice.PriorityGroups.Critical, advice.PriorityGroups.High,
		advice.PriorityGroups.Medium, advice.PriorityGroups.Low,
	} {
		for _, id := range g {
			grouped[id] = true
		}
	}
	for _, ta := range payload.TopicAnalysis {
		if !grouped[ta.TopicID] {
			advice.PriorityGroups.add(ta.UrgencyLevel, ta.TopicID)
		}
	}

	if len(advice.Recommendations) == 0 {
		advice.Recommendations = defaults.Recommendations
	}
	if len(advice.Adjustments) == 0 {
		advice.Adjustments = defaults.Adjustments
	}
	if advice.CompletionStrategy == nil {
		advice.CompletionStrategy = defaultStrategy(payload)
	}
}

func (g *PriorityGroups) add(urgency, id string) {
	switch urgency {
	case "critical":
		g.Critical = append(g.Critical, id)
	case "high":
		g.High = append(g.High, id)
	case "medium":
		g.Medium = append(g.Medium, id)
	default:
		g.Low = append(g.Low, id)
	}
}

func filterKnown(ids []string, known map[string]bool) []string {
	out := ids[:0]
	for _, id := range ids {
		if known[id] {
			out = append(out, id)
		}
	}
	return out
}

func defaultStrategy(payload SchedulePayload) *CompletionStrategy {
	weeks := len(payload.RemainingTopics)
	totalHours := 0
	for _, rt := range payload.RemainingTopics {
		totalHours += rt.EstimatedHours
	}

	avg := 0.0
	if weeks > 0 {
		avg = math.Round(float64(totalHours)/float64(weeks)*10) / 10
	}

	return &CompletionStrategy{
		TotalWeeksNeeded:    weeks,
		AverageHoursPerWeek: avg,
		RiskMitigation: []string{
			"Keep critical topics at the front of every study day",
			"Reserve weekend hours for topics that slip during the week",
		},
		SuccessFactors: []string{
			"Consistent daily study blocks",
			"Completing practice problems alongside theory",
		},
	}
}
