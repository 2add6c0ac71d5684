package prompts

import (
	"strconv"

	"github.com/jonathan/interview-coach/internal/types"
)

// resumeSummaryLimit bounds the resume prefix embedded in the
// interviewer system instruction to keep prompt size under control.
const resumeSummaryLimit = 1000

// BuildGenerationPrompt assembles the instruction for the question
// generation operation. The requested count and all four mix minimums
// appear verbatim in the output; no local validation of the numbers is
// performed, the model is trusted to honor them.
func BuildGenerationPrompt(resumeText, role string, count int, mix types.QuestionMix) string {
	template := MustGet("generation.json", "generate-questions")
	return Format(template, map[string]string{
		"Role":        role,
		"Resume":      resumeText,
		"Count":       strconv.Itoa(count),
		"Behavioral":  strconv.Itoa(mix.Behavioral),
		"Technical":   strconv.Itoa(mix.Technical),
		"Situational": strconv.Itoa(mix.Situational),
		"Coding":      strconv.Itoa(mix.Coding),
	})
}

// BuildAnalysisPrompt assembles the instruction for the resume analysis
// operation. The resume itself travels beside the prompt (as text or as
// an inline document), so only the role is embedded here.
func BuildAnalysisPrompt(role string) string {
	template := MustGet("interview.json", "analyze-resume")
	return Format(template, map[string]string{
		"Role": role,
	})
}

// BuildInterviewerPrompt assembles the persona-setting system
// instruction for one conversational interviewer turn. The persona has
// three fixed tonal variants keyed by style; the resume summary is
// truncated to a bounded prefix.
func BuildInterviewerPrompt(cfg types.InterviewConfig, role string, resume types.ResumeInput) string {
	template := MustGet("interview.json", "interviewer-system")
	return Format(template, map[string]string{
		"Persona":       personaFor(cfg.Style),
		"Difficulty":    string(cfg.Difficulty),
		"Category":      string(cfg.Category),
		"Duration":      string(cfg.Duration),
		"Role":          role,
		"ResumeSummary": resume.Summary(resumeSummaryLimit),
	})
}

// InterviewerKickoff returns the fixed user message that opens the chat
// when no candidate turn exists yet.
func InterviewerKickoff() string {
	return MustGet("interview.json", "interviewer-kickoff")
}

// BuildEvaluationPrompt assembles the instruction for scoring one
// candidate answer against the interviewer question that prompted it.
func BuildEvaluationPrompt(question, answer, role string) string {
	template := MustGet("interview.json", "evaluate-answer")
	return Format(template, map[string]string{
		"Question": question,
		"Answer":   answer,
		"Role":     role,
	})
}

// personaFor maps an interview style to its tonal variant, defaulting
// to the FAANG persona for unrecognized styles.
func personaFor(style types.Style) string {
	switch style {
	case types.StyleStartup:
		return MustGet("interview.json", "persona-startup")
	case types.StyleServiceBased:
		return MustGet("interview.json", "persona-service-based")
	default:
		return MustGet("interview.json", "persona-faang")
	}
}
