// Package observability provides formatted output utilities for session reports.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/interview-coach/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Report holds everything that goes into one exported session report.
type Report struct {
	Role        string
	Config      types.InterviewConfig
	GeneratedAt time.Time
	Analysis    *types.ResumeAnalysis
	Transcript  []types.Turn
	// Evaluations is keyed by the transcript index immediately after
	// the interviewer turn whose answer was scored.
	Evaluations map[int]types.EvaluationResult
}

// Printer handles formatted report output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to an in-memory builder; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSessionReport writes the full plain-text session report: header,
// resume analysis block, then the transcript with evaluations annotated
// inline after the turn they score.
func (p *Printer) PrintSessionReport(rep Report) {
	p.printHeader(rep)
	if rep.Analysis != nil {
		p.printAnalysis(rep.Analysis)
	}
	p.printTranscript(rep.Transcript, rep.Evaluations)
}

func (p *Printer) printHeader(rep Report) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:       %s\n", rep.Role))
	sb.WriteString(fmt.Sprintf("Difficulty: %s\n", rep.Config.Difficulty))
	sb.WriteString(fmt.Sprintf("Style:      %s\n", rep.Config.Style))
	sb.WriteString(fmt.Sprintf("Generated:  %s", rep.GeneratedAt.UTC().Format("2006-01-02 15:04 MST")))
	p.printBox("Interview Session Report", sb.String())
	fmt.Fprintln(p.out)
}

//nolint:errcheck // writing to an in-memory builder
func (p *Printer) printAnalysis(analysis *types.ResumeAnalysis) {
	fmt.Fprintln(p.out, "--- Resume Analysis ---")

	if len(analysis.MissingSkills) > 0 {
		fmt.Fprintln(p.out, "Missing skills:")
		for _, skill := range analysis.MissingSkills {
			fmt.Fprintf(p.out, "  - %s\n", skill)
		}
	}

	// Skill map values come from the upstream contract and may be out
	// of range; clamp at render time.
	skills := analysis.SkillMap.Clamped()
	fmt.Fprintln(p.out, "Skill map:")
	fmt.Fprintf(p.out, "  DSA:           %d%%\n", skills.DSA)
	fmt.Fprintf(p.out, "  System design: %d%%\n", skills.SystemDesign)
	fmt.Fprintf(p.out, "  Communication: %d%%\n", skills.Communication)

	if len(analysis.FollowUpQuestions) > 0 {
		fmt.Fprintln(p.out, "Likely follow-up questions:")
		for _, q := range analysis.FollowUpQuestions {
			fmt.Fprintf(p.out, "  - %s\n", q)
		}
	}

	fmt.Fprintln(p.out)
}

//nolint:errcheck // writing to an in-memory builder
func (p *Printer) printTranscript(transcript []types.Turn, evaluations map[int]types.EvaluationResult) {
	fmt.Fprintln(p.out, "--- Transcript ---")

	for i, turn := range transcript {
		fmt.Fprintf(p.out, "%s: %s\n", roleLabel(turn.Role), turn.Text)
		if eval, ok := evaluations[i]; ok {
			p.printEvaluation(eval)
		}
	}

	// Evaluations keyed past the end of the transcript (the scored
	// answer was the last turn) are appended after the final line.
	var trailing []int
	for key := range evaluations {
		if key >= len(transcript) {
			trailing = append(trailing, key)
		}
	}
	sort.Ints(trailing)
	for _, key := range trailing {
		p.printEvaluation(evaluations[key])
	}
}

//nolint:errcheck // writing to an in-memory builder
func (p *Printer) printEvaluation(eval types.EvaluationResult) {
	fmt.Fprintf(p.out, "  [Evaluation] Score: %d/10\n", eval.Score)
	if eval.Feedback != "" {
		fmt.Fprintf(p.out, "  Feedback: %s\n", eval.Feedback)
	}
	for _, tip := range eval.ImprovementTips {
		fmt.Fprintf(p.out, "    - %s\n", tip)
	}
	if eval.ModelAnswerOutline != "" {
		fmt.Fprintf(p.out, "  Model answer outline: %s\n", eval.ModelAnswerOutline)
	}
}

func roleLabel(role types.Role) string {
	if role == types.RoleCandidate {
		return "Candidate"
	}
	return "Interviewer"
}
