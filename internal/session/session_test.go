package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/types"
)

// fakeGateway implements ModelGateway with canned responses.
type fakeGateway struct {
	analysis    *types.ResumeAnalysis
	analysisErr error
	reply       string
	replyErr    error
	eval        *types.EvaluationResult
	evalErr     error

	analyzeCalls int
	messageCalls int
	evalCalls    int
	lastHistory  []types.Turn
	lastQuestion string
	lastAnswer   string

	// blockReplies, when non-nil, blocks NextInterviewerMessage until closed
	blockReplies chan struct{}
}

func (f *fakeGateway) AnalyzeResume(_ context.Context, _ types.ResumeInput, _ string) (*types.ResumeAnalysis, error) {
	f.analyzeCalls++
	return f.analysis, f.analysisErr
}

func (f *fakeGateway) NextInterviewerMessage(_ context.Context, _ types.InterviewConfig, history []types.Turn, _ string, _ types.ResumeInput) (string, error) {
	f.messageCalls++
	f.lastHistory = history
	if f.blockReplies != nil {
		<-f.blockReplies
	}
	return f.reply, f.replyErr
}

func (f *fakeGateway) EvaluateAnswer(_ context.Context, question, answer, _ string) (*types.EvaluationResult, error) {
	f.evalCalls++
	f.lastQuestion = question
	f.lastAnswer = answer
	return f.eval, f.evalErr
}

func workingGateway() *fakeGateway {
	return &fakeGateway{
		analysis: &types.ResumeAnalysis{
			MissingSkills:     []string{"Kubernetes"},
			FollowUpQuestions: []string{"Q1", "Q2", "Q3"},
			SkillMap:          types.SkillMap{DSA: 60, SystemDesign: 50, Communication: 70},
		},
		reply: "Tell me about yourself.",
		eval: &types.EvaluationResult{
			Score:    7,
			Feedback: "Good answer.",
		},
	}
}

func startedSession(t *testing.T, gw *fakeGateway) *Session {
	t.Helper()
	s := NewSession(gw)
	err := s.Start(context.Background(), "Backend Engineer",
		types.ResumeInput{Text: "resume"}, types.DefaultInterviewConfig())
	require.NoError(t, err)
	return s
}

func TestStart(t *testing.T) {
	gw := workingGateway()
	s := startedSession(t, gw)

	snap := s.Snapshot()
	assert.Equal(t, StateChatActive, snap.State)
	require.NotNil(t, snap.Analysis)

	// Exactly one interviewer turn after start
	require.Len(t, snap.Transcript, 1)
	assert.Equal(t, types.RoleInterviewer, snap.Transcript[0].Role)
	assert.Equal(t, "Tell me about yourself.", snap.Transcript[0].Text)

	assert.Equal(t, 1, gw.analyzeCalls)
	assert.Equal(t, 1, gw.messageCalls)
	assert.Empty(t, gw.lastHistory, "opening turn is requested with empty history")
}

func TestStart_MissingInputsFailWithoutGatewayCall(t *testing.T) {
	gw := workingGateway()
	s := NewSession(gw)

	err := s.Start(context.Background(), "", types.ResumeInput{}, types.DefaultInterviewConfig())

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 0, gw.analyzeCalls)
	assert.Equal(t, 0, gw.messageCalls)
	assert.Equal(t, StateIntake, s.Snapshot().State)
}

func TestStart_MissingRoleFailsWithoutGatewayCall(t *testing.T) {
	gw := workingGateway()
	s := NewSession(gw)

	err := s.Start(context.Background(), "   ", types.ResumeInput{Text: "resume"}, types.DefaultInterviewConfig())

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "role", ve.Field)
	assert.Equal(t, 0, gw.analyzeCalls)
}

func TestStart_GatewayFailureStaysInIntake(t *testing.T) {
	gw := workingGateway()
	gw.analysisErr = errors.New("service unavailable")
	s := NewSession(gw)

	err := s.Start(context.Background(), "SWE", types.ResumeInput{Text: "resume"}, types.DefaultInterviewConfig())
	require.Error(t, err)
	assert.NotEmpty(t, err.Error())

	snap := s.Snapshot()
	assert.Equal(t, StateIntake, snap.State)
	assert.False(t, snap.Busy)
	assert.Nil(t, snap.Analysis)
	assert.Empty(t, snap.Transcript)
}

func TestStart_OpeningTurnFailureStaysInIntake(t *testing.T) {
	gw := workingGateway()
	gw.replyErr = errors.New("timeout")
	s := NewSession(gw)

	err := s.Start(context.Background(), "SWE", types.ResumeInput{Text: "resume"}, types.DefaultInterviewConfig())
	require.Error(t, err)

	snap := s.Snapshot()
	assert.Equal(t, StateIntake, snap.State)
	assert.Empty(t, snap.Transcript)
}

func TestSend(t *testing.T) {
	gw := workingGateway()
	s := startedSession(t, gw)
	gw.reply = "Why do you want this role?"

	reply, err := s.Send(context.Background(), "I am a Go developer.")
	require.NoError(t, err)
	assert.Equal(t, "Why do you want this role?", reply)

	snap := s.Snapshot()
	require.Len(t, snap.Transcript, 3)
	assert.Equal(t, types.RoleCandidate, snap.Transcript[1].Role)
	assert.Equal(t, types.RoleInterviewer, snap.Transcript[2].Role)

	// The request carried the transcript including the new candidate turn
	require.Len(t, gw.lastHistory, 2)
	assert.Equal(t, "I am a Go developer.", gw.lastHistory[1].Text)
}

func TestSend_TwiceWithoutEvaluation(t *testing.T) {
	gw := workingGateway()
	s := startedSession(t, gw)

	_, err := s.Send(context.Background(), "First answer.")
	require.NoError(t, err)
	_, err = s.Send(context.Background(), "Second answer.")
	require.NoError(t, err)

	assert.Len(t, s.Snapshot().Transcript, 5)
	assert.Empty(t, s.Snapshot().Evaluations)
}

func TestSend_GatewayFailureRollsBackCandidateTurn(t *testing.T) {
	gw := workingGateway()
	s := startedSession(t, gw)
	gw.replyErr = errors.New("boom")

	_, err := s.Send(context.Background(), "My answer.")
	require.Error(t, err)

	snap := s.Snapshot()
	assert.Len(t, snap.Transcript, 1, "failed send must leave the transcript unchanged")
	assert.False(t, snap.Busy)
	assert.Equal(t, StateChatActive, snap.State)
}

func TestSend_BeforeStart(t *testing.T) {
	s := NewSession(workingGateway())

	_, err := s.Send(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrSessionNotActive)
}

func TestSend_WhileBusyIsRejected(t *testing.T) {
	gw := workingGateway()
	s := startedSession(t, gw)

	gw.blockReplies = make(chan struct{})
	firstDone := make(chan error, 1)
	go func() {
		_, err := s.Send(context.Background(), "slow answer")
		firstDone <- err
	}()

	// Wait for the first send to be in flight
	require.Eventually(t, func() bool {
		return s.Snapshot().Busy
	}, time.Second, time.Millisecond)

	_, err := s.Send(context.Background(), "second answer")
	assert.ErrorIs(t, err, ErrSessionBusy)

	close(gw.blockReplies)
	require.NoError(t, <-firstDone)

	// Only the first send landed
	assert.Len(t, s.Snapshot().Transcript, 3)
}

func TestEvaluate_NoCandidateTurnIsNoop(t *testing.T) {
	gw := workingGateway()
	s := startedSession(t, gw)

	result, err := s.Evaluate(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 0, gw.evalCalls)
	assert.Empty(t, s.Snapshot().Evaluations)
}

func TestEvaluate_StoresResultKeyedAfterInterviewerTurn(t *testing.T) {
	gw := workingGateway()
	s := startedSession(t, gw)

	_, err := s.Send(context.Background(), "My answer.")
	require.NoError(t, err)

	// Transcript: [interviewer(0), candidate(1), interviewer(2)]
	result, err := s.Evaluate(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 7, result.Score)

	snap := s.Snapshot()
	require.Len(t, snap.Evaluations, 1)
	stored, ok := snap.Evaluations[3] // lastInterviewerIndex(2) + 1
	require.True(t, ok)
	assert.Equal(t, 7, stored.Score)

	// Most recent turns of each role, scanned independently
	assert.Equal(t, "Tell me about yourself.", gw.lastQuestion)
	assert.Equal(t, "My answer.", gw.lastAnswer)
	assert.Equal(t, StateChatActive, snap.State)
}

func TestEvaluate_GatewayFailurePropagates(t *testing.T) {
	gw := workingGateway()
	s := startedSession(t, gw)
	_, err := s.Send(context.Background(), "My answer.")
	require.NoError(t, err)

	gw.evalErr = errors.New("quota exceeded")
	_, err = s.Evaluate(context.Background())
	require.Error(t, err)

	snap := s.Snapshot()
	assert.Empty(t, snap.Evaluations)
	assert.False(t, snap.Busy)
	assert.Equal(t, StateChatActive, snap.State)
}

func TestExport_EmptyTranscript(t *testing.T) {
	s := NewSession(workingGateway())
	assert.Empty(t, s.Export())
}

func TestExport_RoundTrip(t *testing.T) {
	gw := workingGateway()
	s := startedSession(t, gw)
	_, err := s.Send(context.Background(), "Answer one.")
	require.NoError(t, err)
	_, err = s.Evaluate(context.Background())
	require.NoError(t, err)

	report := s.Export()
	require.NotEmpty(t, report)

	// N role-prefixed transcript lines and K evaluation blocks
	lines := strings.Split(report, "\n")
	var turnLines, evalBlocks int
	for _, line := range lines {
		if strings.HasPrefix(line, "Interviewer: ") || strings.HasPrefix(line, "Candidate: ") {
			turnLines++
		}
		if strings.Contains(line, "[Evaluation]") {
			evalBlocks++
		}
	}
	assert.Equal(t, 3, turnLines)
	assert.Equal(t, 1, evalBlocks)

	assert.Contains(t, report, "Backend Engineer")
	assert.Contains(t, report, "Kubernetes")
}

func TestReset(t *testing.T) {
	gw := workingGateway()
	s := startedSession(t, gw)
	_, err := s.Send(context.Background(), "Answer.")
	require.NoError(t, err)
	_, err = s.Evaluate(context.Background())
	require.NoError(t, err)

	id := s.ID()
	s.Reset()

	snap := s.Snapshot()
	assert.Equal(t, StateIntake, snap.State)
	assert.Empty(t, snap.Transcript)
	assert.Empty(t, snap.Evaluations)
	assert.Nil(t, snap.Analysis)
	assert.Equal(t, id, snap.ID, "reset keeps the session ID")

	// The session can be started again as an independent run
	require.NoError(t, s.Start(context.Background(), "SRE",
		types.ResumeInput{Text: "other resume"}, types.DefaultInterviewConfig()))
	fresh := s.Snapshot()
	assert.Len(t, fresh.Transcript, 1)
	assert.Empty(t, fresh.Evaluations)
	assert.Equal(t, "SRE", fresh.Role)
}

func TestManager(t *testing.T) {
	m := NewManager(workingGateway())

	s := m.Create()
	require.NotEmpty(t, s.ID())
	assert.Equal(t, 1, m.Count())

	got, err := m.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = m.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	m.Delete(s.ID())
	assert.Equal(t, 0, m.Count())
	m.Delete(s.ID()) // idempotent
}
