package model

// Difficulty is the bucket tag LeetCode uses for question and submission counts.
type Difficulty string

const (
	DifficultyAll    Difficulty = "All"
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists every bucket a normalized result carries.
var Difficulties = []Difficulty{DifficultyAll, DifficultyEasy, DifficultyMedium, DifficultyHard}

// Source identifies which upstream produced a UserSolvedStats.
type Source string

const (
	SourceStatsAPI     Source = "stats-api"
	SourceGraphQLRelay Source = "graphql-relay"
)

// QuestionCounts holds one value per difficulty bucket.
// Total is expected to be at least Easy+Medium+Hard but upstreams do not guarantee it.
type QuestionCounts struct {
	Total  int `json:"total"`
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// Get returns the value for d, or 0 for an unknown difficulty.
func (c QuestionCounts) Get(d Difficulty) int {
	switch d {
	case DifficultyAll:
		return c.Total
	case DifficultyEasy:
		return c.Easy
	case DifficultyMedium:
		return c.Medium
	case DifficultyHard:
		return c.Hard
	default:
		return 0
	}
}

// Set stores v under d. Unknown difficulties are ignored.
func (c *QuestionCounts) Set(d Difficulty, v int) {
	switch d {
	case DifficultyAll:
		c.Total = v
	case DifficultyEasy:
		c.Easy = v
	case DifficultyMedium:
		c.Medium = v
	case DifficultyHard:
		c.Hard = v
	}
}

// Metrics are summary values only some sources provide.
type Metrics struct {
	AcceptanceRate     *float64 `json:"acceptanceRate,omitempty"`
	Ranking            *int     `json:"ranking,omitempty"`
	ContributionPoints *int     `json:"contributionPoints,omitempty"`
	Reputation         *int     `json:"reputation,omitempty"`
}

// UserSolvedStats is the canonical, source-independent view of a user's progress.
type UserSolvedStats struct {
	Username             string         `json:"username"`
	Source               Source         `json:"source"`
	Questions            QuestionCounts `json:"questions"`
	Solved               QuestionCounts `json:"solved"`
	Submissions          QuestionCounts `json:"submissions"`
	SubmissionsEstimated bool           `json:"submissionsEstimated"`
	Metrics              Metrics        `json:"metrics"`
}

// Progress is the per-difficulty view a presenter draws.
type Progress struct {
	Difficulty  Difficulty
	Solved      int
	Total       int
	Submissions int
	Percent     float64
}

// Progress summarises one bucket. Percent is 0 when the bucket has no questions.
func (s *UserSolvedStats) Progress(d Difficulty) Progress {
	p := Progress{
		Difficulty:  d,
		Solved:      s.Solved.Get(d),
		Total:       s.Questions.Get(d),
		Submissions: s.Submissions.Get(d),
	}
	if p.Total > 0 {
		p.Percent = float64(p.Solved) / float64(p.Total) * 100
	}
	return p
}
