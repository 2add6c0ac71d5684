package types

import "fmt"

// SkillMap is the three-dimensional competency estimate produced by
// resume analysis. Values are 0-100 by contract, but the upstream model
// is not guaranteed to respect the range, so consumers should clamp at
// render time via Clamped.
type SkillMap struct {
	DSA           int `json:"dsa"`
	SystemDesign  int `json:"systemDesign"`
	Communication int `json:"communication"`
}

// Clamped returns a copy with every dimension clamped to [0, 100].
func (m SkillMap) Clamped() SkillMap {
	return SkillMap{
		DSA:           clampPercent(m.DSA),
		SystemDesign:  clampPercent(m.SystemDesign),
		Communication: clampPercent(m.Communication),
	}
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ResumeAnalysis is the structured result of the resume analysis
// operation: skill gaps relative to the target role, likely follow-up
// questions, and the skill map. Produced once per session; read-only
// afterward.
type ResumeAnalysis struct {
	MissingSkills     []string `json:"missingSkills"`
	FollowUpQuestions []string `json:"followUpQuestions"`
	SkillMap          SkillMap `json:"skillMap"`
}

// ResumeInput carries the candidate resume as either plain text or a
// binary document (e.g. a scanned PDF) with a declared media type.
// Exactly one of Text or Data should be set.
type ResumeInput struct {
	Text     string `json:"text,omitempty"`
	Data     []byte `json:"data,omitempty"`
	MIMEType string `json:"mime_type,omitempty"`
}

// IsEmpty reports whether neither text nor document data is present.
func (r ResumeInput) IsEmpty() bool {
	return r.Text == "" && len(r.Data) == 0
}

// Summary returns a bounded prefix of the textual resume for use as
// conversational context, keeping prompt size under control.
func (r ResumeInput) Summary(maxLen int) string {
	if len(r.Text) <= maxLen {
		return r.Text
	}
	return r.Text[:maxLen]
}

// Validate checks that the input carries a resume in exactly one form.
func (r ResumeInput) Validate() error {
	if r.IsEmpty() {
		return fmt.Errorf("resume input requires text or document data")
	}
	if len(r.Data) > 0 && r.MIMEType == "" {
		return fmt.Errorf("resume document data requires a declared media type")
	}
	return nil
}
