package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jonathan/interview-coach/internal/session"
	"github.com/jonathan/interview-coach/internal/types"
)

// startRequest is the intake payload for POST /sessions/{id}/start.
// Resume data, when present, is base64-encoded JSON and wins over text.
type startRequest struct {
	Role           string                 `json:"role"`
	ResumeText     string                 `json:"resume_text,omitempty"`
	ResumeData     []byte                 `json:"resume_data,omitempty"`
	ResumeMIMEType string                 `json:"resume_mime_type,omitempty"`
	Config         *types.InterviewConfig `json:"config,omitempty"`
}

// messageRequest is the payload for POST /sessions/{id}/messages.
type messageRequest struct {
	Text string `json:"text"`
}

// generateRequest is the payload for POST /questions/generate.
type generateRequest struct {
	Role       string            `json:"role"`
	ResumeText string            `json:"resume_text"`
	Count      int               `json:"count,omitempty"`
	Mix        types.QuestionMix `json:"mix,omitempty"`
}

// defaultQuestionCount is used when POST /questions/generate omits count.
const defaultQuestionCount = 10

// handleCreateSession creates a new session in the Intake state.
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.sessions.Create()
	s.jsonResponse(w, http.StatusCreated, map[string]string{
		"id":    sess.ID(),
		"state": string(session.StateIntake),
	})
}

// handleGetSession returns the session snapshot.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, sess.Snapshot())
}

// handleDeleteSession removes the session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if _, err := s.sessions.Get(r.PathValue("id")); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.sessions.Delete(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// handleStartSession runs intake: role, resume, and configuration, then
// the resume analysis and the opening interviewer turn.
func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	cfg := types.DefaultInterviewConfig()
	if req.Config != nil {
		cfg = *req.Config
	}

	resume := types.ResumeInput{
		Text:     req.ResumeText,
		Data:     req.ResumeData,
		MIMEType: req.ResumeMIMEType,
	}

	if err := sess.Start(r.Context(), req.Role, resume, cfg); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, sess.Snapshot())
}

// handleSendMessage appends a candidate answer and returns the
// interviewer's reply.
func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	reply, err := sess.Send(r.Context(), req.Text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"reply": reply})
}

// handleEvaluate scores the latest candidate answer. When there is
// nothing to evaluate yet the call is a no-op and returns 204.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := sess.Evaluate(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleReport exports the session as a plain-text report download.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	report := sess.Export()
	if report == "" {
		s.errorResponse(w, http.StatusConflict, "session has no transcript to export")
		return
	}

	filename := reportFilename(sess.Snapshot().Role)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report))
}

// handleResetSession returns the session to Intake, keeping its ID.
func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sess.Reset()
	s.jsonResponse(w, http.StatusOK, sess.Snapshot())
}

// handleGenerateQuestions runs the one-shot generation mode: a question
// set tailored to the resume and role, outside any session.
func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Role) == "" {
		s.errorResponse(w, http.StatusBadRequest, "role is required")
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		s.errorResponse(w, http.StatusBadRequest, "resume_text is required")
		return
	}
	if req.Count <= 0 {
		req.Count = defaultQuestionCount
	}

	set, err := s.gw.GenerateQuestions(r.Context(), req.ResumeText, req.Role, req.Count, req.Mix)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, set)
}

// reportFilename derives a download filename from the target role.
func reportFilename(role string) string {
	slug := strings.ToLower(strings.TrimSpace(role))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "interview"
	}
	return "interview-report-" + slug + ".txt"
}
