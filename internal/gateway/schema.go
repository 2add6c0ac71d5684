package gateway

import "github.com/google/generative-ai-go/genai"

// Request-side schema declarations attached to schema-backed calls so
// the provider constrains its output shape. These mirror the embedded
// JSON Schema documents in internal/schemas, which validate the
// response on the way back in.

func questionSetSchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"job_role", "experience_level_hint", "questions"},
		Properties: map[string]*genai.Schema{
			"job_role": {Type: genai.TypeString},
			"experience_level_hint": {
				Type: genai.TypeString,
				Enum: []string{"junior", "mid", "senior", "unknown"},
			},
			"questions": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"id", "text", "type", "difficulty", "rationale", "follow_ups"},
					Properties: map[string]*genai.Schema{
						"id":   {Type: genai.TypeInteger},
						"text": {Type: genai.TypeString},
						"type": {
							Type: genai.TypeString,
							Enum: []string{"behavioral", "technical", "situational", "coding", "system-design", "culture-fit"},
						},
						"difficulty": {
							Type: genai.TypeString,
							Enum: []string{"easy", "medium", "hard"},
						},
						"rationale": {Type: genai.TypeString},
						"follow_ups": {
							Type:  genai.TypeArray,
							Items: &genai.Schema{Type: genai.TypeString},
						},
					},
				},
			},
		},
	}
}

func resumeAnalysisSchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"missingSkills", "followUpQuestions", "skillMap"},
		Properties: map[string]*genai.Schema{
			"missingSkills": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"followUpQuestions": {
				Type:        genai.TypeArray,
				Description: "Exactly three likely follow-up questions",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
			"skillMap": {
				Type:     genai.TypeObject,
				Required: []string{"dsa", "systemDesign", "communication"},
				Properties: map[string]*genai.Schema{
					"dsa":           {Type: genai.TypeInteger},
					"systemDesign":  {Type: genai.TypeInteger},
					"communication": {Type: genai.TypeInteger},
				},
			},
		},
	}
}

func evaluationSchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"score", "feedback", "improvement_tips", "model_answer_outline"},
		Properties: map[string]*genai.Schema{
			"score": {
				Type:        genai.TypeInteger,
				Description: "Score from 0 to 10",
			},
			"feedback": {Type: genai.TypeString},
			"improvement_tips": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"model_answer_outline": {Type: genai.TypeString},
		},
	}
}
