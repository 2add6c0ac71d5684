package schemas

import (
	_ "embed"
)

// The contract documents are embedded at compile time so validation
// never depends on the working directory.
var (
	//go:embed question_set.json
	questionSetSchema string

	//go:embed resume_analysis.json
	resumeAnalysisSchema string

	//go:embed evaluation_result.json
	evaluationResultSchema string
)

// ValidateQuestionSet validates a raw question generation response.
func ValidateQuestionSet(jsonContent string) error {
	return validateAgainst("question_set", questionSetSchema, jsonContent)
}

// ValidateResumeAnalysis validates a raw resume analysis response.
func ValidateResumeAnalysis(jsonContent string) error {
	return validateAgainst("resume_analysis", resumeAnalysisSchema, jsonContent)
}

// ValidateEvaluation validates a raw answer evaluation response.
func ValidateEvaluation(jsonContent string) error {
	return validateAgainst("evaluation_result", evaluationResultSchema, jsonContent)
}
