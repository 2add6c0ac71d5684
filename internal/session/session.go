// Package session holds the per-candidate interview session state
// machine and the in-memory session manager. All session mutation is
// funneled through the five operations: Start, Send, Evaluate, Export,
// Reset.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/interview-coach/internal/observability"
	"github.com/jonathan/interview-coach/internal/types"
)

// State names the session lifecycle phase
type State string

// Session states. Analyzing and Evaluating are transient phases while
// the corresponding model request is outstanding.
const (
	StateIntake     State = "intake"
	StateAnalyzing  State = "analyzing"
	StateChatActive State = "chat_active"
	StateEvaluating State = "evaluating"
)

// ModelGateway is the subset of gateway operations the session needs.
// Declared here so tests can substitute a fake.
type ModelGateway interface {
	AnalyzeResume(ctx context.Context, resume types.ResumeInput, role string) (*types.ResumeAnalysis, error)
	NextInterviewerMessage(ctx context.Context, cfg types.InterviewConfig, history []types.Turn, role string, resume types.ResumeInput) (string, error)
	EvaluateAnswer(ctx context.Context, question, answer, role string) (*types.EvaluationResult, error)
}

// Session is one candidate's end-to-end interaction, from intake
// through reset. At most one model request per session is outstanding
// at a time; concurrent operations are rejected with ErrSessionBusy.
type Session struct {
	id string
	gw ModelGateway

	mu          sync.Mutex
	state       State
	busy        bool
	role        string
	resume      types.ResumeInput
	config      types.InterviewConfig
	analysis    *types.ResumeAnalysis
	transcript  []types.Turn
	evaluations map[int]types.EvaluationResult
}

// NewSession creates a session in the Intake state.
func NewSession(gw ModelGateway) *Session {
	return &Session{
		id:          uuid.NewString(),
		gw:          gw,
		state:       StateIntake,
		evaluations: make(map[int]types.EvaluationResult),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Start collects the intake (role, resume, configuration), runs the
// resume analysis, and opens the chat with the first interviewer turn.
// Validation failures return before any gateway call; gateway failures
// leave the session in Intake with nothing stored.
func (s *Session) Start(ctx context.Context, role string, resume types.ResumeInput, cfg types.InterviewConfig) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrSessionBusy
	}
	if strings.TrimSpace(role) == "" {
		s.mu.Unlock()
		return &ValidationError{Field: "role", Message: "target role is required"}
	}
	if err := resume.Validate(); err != nil {
		s.mu.Unlock()
		return &ValidationError{Field: "resume", Message: err.Error()}
	}
	if err := cfg.Validate(); err != nil {
		s.mu.Unlock()
		return &ValidationError{Field: "config", Message: err.Error()}
	}
	s.busy = true
	s.state = StateAnalyzing
	s.mu.Unlock()

	// Busy must be released on every path so the session never
	// deadlocks in a perpetually-busy state.
	defer s.release()

	analysis, err := s.gw.AnalyzeResume(ctx, resume, role)
	if err != nil {
		s.setState(StateIntake)
		return err
	}

	opening, err := s.gw.NextInterviewerMessage(ctx, cfg, nil, role, resume)
	if err != nil {
		s.setState(StateIntake)
		return err
	}

	s.mu.Lock()
	s.role = role
	s.resume = resume
	s.config = cfg
	s.analysis = analysis
	s.transcript = []types.Turn{{Role: types.RoleInterviewer, Text: opening}}
	s.evaluations = make(map[int]types.EvaluationResult)
	s.state = StateChatActive
	s.mu.Unlock()
	return nil
}

// Send appends a candidate turn and requests the next interviewer reply
// using the full transcript so far. The reply for this turn is appended
// before any later request can be issued. On gateway failure the
// candidate turn is rolled back so the failed transition leaves no trace.
func (s *Session) Send(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	if s.state != StateChatActive {
		s.mu.Unlock()
		return "", ErrSessionNotActive
	}
	if s.busy {
		s.mu.Unlock()
		return "", ErrSessionBusy
	}
	if strings.TrimSpace(text) == "" {
		s.mu.Unlock()
		return "", &ValidationError{Field: "text", Message: "answer text is required"}
	}
	s.busy = true
	s.transcript = append(s.transcript, types.Turn{Role: types.RoleCandidate, Text: text})
	history := make([]types.Turn, len(s.transcript))
	copy(history, s.transcript)
	cfg, role, resume := s.config, s.role, s.resume
	s.mu.Unlock()

	defer s.release()

	reply, err := s.gw.NextInterviewerMessage(ctx, cfg, history, role, resume)
	if err != nil {
		s.mu.Lock()
		s.transcript = s.transcript[:len(s.transcript)-1]
		s.mu.Unlock()
		return "", err
	}

	s.mu.Lock()
	s.transcript = append(s.transcript, types.Turn{Role: types.RoleInterviewer, Text: reply})
	s.mu.Unlock()
	return reply, nil
}

// Evaluate scores the most recent candidate answer against the most
// recent interviewer question, scanning backward independently: the two
// need not be adjacent. If either turn is absent this is a no-op, not
// an error. The result is stored keyed by the index immediately after
// the evaluating interviewer turn.
func (s *Session) Evaluate(ctx context.Context) (*types.EvaluationResult, error) {
	s.mu.Lock()
	if s.state != StateChatActive {
		s.mu.Unlock()
		return nil, ErrSessionNotActive
	}
	if s.busy {
		s.mu.Unlock()
		return nil, ErrSessionBusy
	}

	lastCandidate := lastIndexOf(s.transcript, types.RoleCandidate)
	lastInterviewer := lastIndexOf(s.transcript, types.RoleInterviewer)
	if lastCandidate < 0 || lastInterviewer < 0 {
		s.mu.Unlock()
		return nil, nil
	}

	question := s.transcript[lastInterviewer].Text
	answer := s.transcript[lastCandidate].Text
	key := lastInterviewer + 1
	role := s.role
	s.busy = true
	s.state = StateEvaluating
	s.mu.Unlock()

	defer s.release()
	defer s.setState(StateChatActive)

	result, err := s.gw.EvaluateAnswer(ctx, question, answer, role)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.evaluations[key] = *result
	s.mu.Unlock()
	return result, nil
}

// Export serializes the configuration, resume analysis, and the full
// transcript interleaved with stored evaluations into a flat text
// report. Returns an empty string when the transcript is empty.
func (s *Session) Export() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.transcript) == 0 {
		return ""
	}

	evals := make(map[int]types.EvaluationResult, len(s.evaluations))
	for k, v := range s.evaluations {
		evals[k] = v
	}

	var sb strings.Builder
	observability.NewPrinter(&sb).PrintSessionReport(observability.Report{
		Role:        s.role,
		Config:      s.config,
		GeneratedAt: time.Now(),
		Analysis:    s.analysis,
		Transcript:  s.transcript,
		Evaluations: evals,
	})
	return sb.String()
}

// Reset returns the session to Intake, discarding the transcript,
// analysis, and evaluation history. The session ID is kept.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateIntake
	s.role = ""
	s.resume = types.ResumeInput{}
	s.config = types.InterviewConfig{}
	s.analysis = nil
	s.transcript = nil
	s.evaluations = make(map[int]types.EvaluationResult)
}

// Snapshot is a read-only copy of session state for presentation.
type Snapshot struct {
	ID          string                         `json:"id"`
	State       State                          `json:"state"`
	Busy        bool                           `json:"busy"`
	Role        string                         `json:"role,omitempty"`
	Config      types.InterviewConfig          `json:"config"`
	Analysis    *types.ResumeAnalysis          `json:"analysis,omitempty"`
	Transcript  []types.Turn                   `json:"transcript"`
	Evaluations map[int]types.EvaluationResult `json:"evaluations"`
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	transcript := make([]types.Turn, len(s.transcript))
	copy(transcript, s.transcript)

	evals := make(map[int]types.EvaluationResult, len(s.evaluations))
	for k, v := range s.evaluations {
		evals[k] = v
	}

	return Snapshot{
		ID:          s.id,
		State:       s.state,
		Busy:        s.busy,
		Role:        s.role,
		Config:      s.config,
		Analysis:    s.analysis,
		Transcript:  transcript,
		Evaluations: evals,
	}
}

// release clears the in-flight flag.
func (s *Session) release() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// setState transitions the session state under lock.
func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// lastIndexOf scans the transcript backward for the most recent turn
// with the given role, returning -1 if none exists.
func lastIndexOf(transcript []types.Turn, role types.Role) int {
	for i := len(transcript) - 1; i >= 0; i-- {
		if transcript[i].Role == role {
			return i
		}
	}
	return -1
}
