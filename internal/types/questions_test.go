package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionSet_JSONUnmarshaling(t *testing.T) {
	jsonInput := `{
		"job_role": "Backend Engineer",
		"experience_level_hint": "mid",
		"questions": [
			{
				"id": 1,
				"text": "Describe a time you debugged a production outage.",
				"type": "behavioral",
				"difficulty": "medium",
				"rationale": "The resume mentions on-call ownership.",
				"follow_ups": ["What would you do differently?"]
			},
			{
				"id": 2,
				"text": "How would you shard a relational database?",
				"type": "system-design",
				"difficulty": "hard",
				"rationale": "The role requires scaling experience.",
				"follow_ups": []
			}
		]
	}`

	var set QuestionSet
	require.NoError(t, json.Unmarshal([]byte(jsonInput), &set))

	assert.Equal(t, "Backend Engineer", set.JobRole)
	assert.Equal(t, LevelMid, set.ExperienceLevelHint)
	require.Len(t, set.Questions, 2)
	assert.Equal(t, 1, set.Questions[0].ID)
	assert.Equal(t, QuestionBehavioral, set.Questions[0].Type)
	assert.Equal(t, QuestionSystemDesign, set.Questions[1].Type)
	assert.Equal(t, QuestionHard, set.Questions[1].Difficulty)
}
