package curriculum

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed roadmap.yaml
var roadmapYAML []byte

type document struct {
	Weeks []Week `yaml:"weeks"`
}

// Curriculum is the immutable roadmap. Topic lookup tables are built
// once at load time; callers must not mutate the returned slices.
type Curriculum struct {
	weeks      []Week
	topicsByID map[string]Topic
	weekByID   map[string]int
	order      []string
}

// Load parses and validates the built-in roadmap.
func Load() (*Curriculum, error) {
	return parse(roadmapYAML)
}

// LoadFile parses a roadmap override from a YAML file with the same
// schema as the built-in one.
func LoadFile(path string) (*Curriculum, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roadmap %s: %w", path, err)
	}
	c, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("roadmap %s: %w", path, err)
	}
	return c, nil
}

func parse(raw []byte) (*Curriculum, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing roadmap: %w", err)
	}
	if len(doc.Weeks) == 0 {
		return nil, fmt.Errorf("roadmap has no weeks")
	}

	c := &Curriculum{
		weeks:      doc.Weeks,
		topicsByID: make(map[string]Topic),
		weekByID:   make(map[string]int),
	}
	for _, w := range doc.Weeks {
		if w.WeekNumber < 1 {
			return nil, fmt.Errorf("week number %d must be positive", w.WeekNumber)
		}
		for _, t := range w.Topics {
			if t.ID == "" {
				return nil, fmt.Errorf("week %d: topic %q has no id", w.WeekNumber, t.Title)
			}
			if _, dup := c.topicsByID[t.ID]; dup {
				return nil, fmt.Errorf("duplicate topic id %q", t.ID)
			}
			c.topicsByID[t.ID] = t
			c.weekByID[t.ID] = w.WeekNumber
			c.order = append(c.order, t.ID)
		}
	}
	return c, nil
}

// Weeks returns all weeks in declaration order.
func (c *Curriculum) Weeks() []Week { return c.weeks }

// Week returns the week with the given number.
func (c *Curriculum) Week(n int) (Week, bool) {
	for _, w := range c.weeks {
		if w.WeekNumber == n {
			return w, true
		}
	}
	return Week{}, false
}

// Topic returns a topic by id.
func (c *Curriculum) Topic(id string) (Topic, bool) {
	t, ok := c.topicsByID[id]
	return t, ok
}

// TopicWeek returns the week number a topic belongs to.
func (c *Curriculum) TopicWeek(id string) (int, bool) {
	w, ok := c.weekByID[id]
	return w, ok
}

// TopicIDs returns every topic id in curriculum declaration order
// (week number, then position within the week).
func (c *Curriculum) TopicIDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// TopicCount returns the number of topics across all weeks.
func (c *Curriculum) TopicCount() int { return len(c.order) }

// TotalHours sums the estimated hours of every topic.
func (c *Curriculum) TotalHours() int {
	sum := 0
	for _, t := range c.topicsByID {
		sum += t.EstimatedHours
	}
	return sum
}

// TotalProblems sums the practice problem counts of every topic.
func (c *Curriculum) TotalProblems() int {
	sum := 0
	for _, t := range c.topicsByID {
		sum += t.PracticeProblems
	}
	return sum
}

// TotalSubtopics sums the subtopic counts of every topic.
func (c *Curriculum) TotalSubtopics() int {
	sum := 0
	for _, t := range c.topicsByID {
		sum += len(t.Subtopics)
	}
	return sum
}
