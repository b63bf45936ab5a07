package curriculum

// TimeAllocation is the suggested percentage split of a week's effort.
type TimeAllocation struct {
	TheoryPct   int `yaml:"theory"`
	CodingPct   int `yaml:"coding"`
	RevisionPct int `yaml:"revision"`
}

// Topic is one curriculum unit. Subtopic order is significant: the
// index is the progress key and is never reordered.
type Topic struct {
	ID               string   `yaml:"id"`
	Title            string   `yaml:"title"`
	Description      string   `yaml:"description"`
	Subtopics        []string `yaml:"subtopics"`
	EstimatedHours   int      `yaml:"estimated_hours"`
	PracticeProblems int      `yaml:"practice_problems"`
}

// Week groups the topics assigned to one curriculum week (1..30).
type Week struct {
	WeekNumber     int            `yaml:"week"`
	Focus          string         `yaml:"focus"`
	TimeAllocation TimeAllocation `yaml:"time_allocation"`
	Topics         []Topic        `yaml:"topics"`
}
