package models

// CriterionScore is one rating in a ScoreSet. Field is the normalized
// identifier the model answered under.
type CriterionScore struct {
	Criterion string `json:"criterion" example:"Python proficiency"`
	Field     string `json:"field" example:"python_proficiency"`
	Score     int    `json:"score" minimum:"1" maximum:"5" example:"4"`
}

// ScoreSet holds one score per criterion, in the order the criteria were given.
type ScoreSet struct {
	Scores []CriterionScore `json:"scores"`
}

func (s *ScoreSet) Criteria() []string {
	criteria := make([]string, 0, len(s.Scores))
	for _, score := range s.Scores {
		criteria = append(criteria, score.Criterion)
	}
	return criteria
}

// Map returns scores keyed by criterion label. When labels repeat, the
// later entry wins; use Scores to keep every entry.
func (s *ScoreSet) Map() map[string]int {
	m := make(map[string]int, len(s.Scores))
	for _, score := range s.Scores {
		m[score.Criterion] = score.Score
	}
	return m
}

type Evaluation struct {
	Criteria []string
	Scores   *ScoreSet
}
