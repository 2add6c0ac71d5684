// Package gateway is the boundary to the external generative-model
// service. It is the only package that issues model requests: one
// operation per contract, each one-shot and stateless, with no retries,
// timeouts, or caching.
package gateway

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/prompts"
	"github.com/jonathan/interview-coach/internal/schemas"
	"github.com/jonathan/interview-coach/internal/types"
)

// FallbackReply is substituted when the conversational operation
// returns an empty reply. A missing interviewer line is less disruptive
// than aborting the session, so this is the one deliberate soft-failure.
const FallbackReply = "I apologize, could you repeat that?"

// Gateway issues structured requests to the generative model.
// It holds no session state between calls.
type Gateway struct {
	client llm.Client
}

// New creates a Gateway backed by the given LLM client.
func New(client llm.Client) *Gateway {
	return &Gateway{client: client}
}

// GenerateQuestions produces a tailored question set for the given
// resume text, role, requested count, and per-category minimum mix.
// The returned count is not guaranteed to equal the requested count.
func (g *Gateway) GenerateQuestions(ctx context.Context, resumeText, role string, count int, mix types.QuestionMix) (*types.QuestionSet, error) {
	prompt := prompts.BuildGenerationPrompt(resumeText, role, count, mix)

	raw, err := g.client.GenerateJSON(ctx, llm.JSONRequest{
		Prompt: prompt,
		Schema: questionSetSchema(),
	}, llm.TierAdvanced)
	if err != nil {
		return nil, &APICallError{Message: "question generation failed", Cause: err}
	}

	if err := schemas.ValidateQuestionSet(raw); err != nil {
		return nil, &ParseError{Message: "question set failed contract validation", Cause: err}
	}

	var set types.QuestionSet
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return nil, &ParseError{Message: "failed to decode question set", Cause: err}
	}

	return &set, nil
}

// AnalyzeResume produces the skill-gap analysis for the given resume
// input and target role. Calling this with neither resume text nor
// document data is a caller error; no external call is made.
func (g *Gateway) AnalyzeResume(ctx context.Context, resume types.ResumeInput, role string) (*types.ResumeAnalysis, error) {
	if resume.IsEmpty() {
		return nil, &ValidationError{Field: "resume", Message: "resume text or document is required"}
	}

	req := llm.JSONRequest{
		Prompt: prompts.BuildAnalysisPrompt(role),
		Schema: resumeAnalysisSchema(),
	}
	if len(resume.Data) > 0 {
		req.Document = &llm.Document{MIMEType: resume.MIMEType, Data: resume.Data}
	} else {
		req.Prompt += "\n\nResume:\n\"\"\"\n" + resume.Text + "\n\"\"\""
	}

	raw, err := g.client.GenerateJSON(ctx, req, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "resume analysis failed", Cause: err}
	}

	if err := schemas.ValidateResumeAnalysis(raw); err != nil {
		return nil, &ParseError{Message: "resume analysis failed contract validation", Cause: err}
	}

	var analysis types.ResumeAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, &ParseError{Message: "failed to decode resume analysis", Cause: err}
	}

	return &analysis, nil
}

// NextInterviewerMessage generates one conversational interviewer reply
// given the configuration, the transcript so far, the target role, and
// the resume used as persona context. Empty replies are substituted
// with FallbackReply rather than failing the turn.
func (g *Gateway) NextInterviewerMessage(ctx context.Context, cfg types.InterviewConfig, history []types.Turn, role string, resume types.ResumeInput) (string, error) {
	system := prompts.BuildInterviewerPrompt(cfg, role, resume)

	// The provider chat API wants prior turns plus one outgoing user
	// message. When the transcript ends with a candidate turn that turn
	// is the outgoing message; otherwise the fixed kickoff opens the
	// interview.
	message := prompts.InterviewerKickoff()
	prior := history
	if n := len(history); n > 0 && history[n-1].Role == types.RoleCandidate {
		message = history[n-1].Text
		prior = history[:n-1]
	}

	chatHistory := make([]llm.Message, 0, len(prior))
	for _, turn := range prior {
		chatHistory = append(chatHistory, llm.Message{
			Role: chatRole(turn.Role),
			Text: turn.Text,
		})
	}

	reply, err := g.client.Chat(ctx, system, chatHistory, message, llm.TierStandard)
	if err != nil {
		return "", &APICallError{Message: "interviewer turn failed", Cause: err}
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return FallbackReply, nil
	}
	return reply, nil
}

// EvaluateAnswer scores one candidate answer against the interviewer
// question that prompted it.
func (g *Gateway) EvaluateAnswer(ctx context.Context, question, answer, role string) (*types.EvaluationResult, error) {
	prompt := prompts.BuildEvaluationPrompt(question, answer, role)

	raw, err := g.client.GenerateJSON(ctx, llm.JSONRequest{
		Prompt: prompt,
		Schema: evaluationSchema(),
	}, llm.TierLite)
	if err != nil {
		return nil, &APICallError{Message: "answer evaluation failed", Cause: err}
	}

	if err := schemas.ValidateEvaluation(raw); err != nil {
		return nil, &ParseError{Message: "evaluation failed contract validation", Cause: err}
	}

	var result types.EvaluationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, &ParseError{Message: "failed to decode evaluation", Cause: err}
	}

	return &result, nil
}

// chatRole maps transcript attribution to the provider chat convention.
func chatRole(role types.Role) string {
	if role == types.RoleCandidate {
		return "user"
	}
	return "model"
}
