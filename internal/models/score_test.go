package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreSet_CriteriaAndMap(t *testing.T) {
	set := &ScoreSet{Scores: []CriterionScore{
		{Criterion: "Go", Field: "go", Score: 4},
		{Criterion: "SQL", Field: "sql", Score: 2},
		{Criterion: "Go", Field: "go_2", Score: 5},
	}}

	assert.Equal(t, []string{"Go", "SQL", "Go"}, set.Criteria())
	assert.Equal(t, map[string]int{"Go": 5, "SQL": 2}, set.Map())
}

func TestScoreSet_Empty(t *testing.T) {
	set := &ScoreSet{}
	assert.Empty(t, set.Criteria())
	assert.Empty(t, set.Map())
}
