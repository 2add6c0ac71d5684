package types

// EvaluationResult is the structured scoring of one candidate answer.
// Results are produced on demand and keyed by the transcript position
// of the candidate turn they evaluate.
type EvaluationResult struct {
	Score              int      `json:"score"`
	Feedback           string   `json:"feedback"`
	ImprovementTips    []string `json:"improvement_tips"`
	ModelAnswerOutline string   `json:"model_answer_outline"`
}
