// Package types provides type definitions for structured data used throughout the interview-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// Role identifies the speaker of a transcript turn
type Role string

// Role constants for transcript attribution
const (
	// RoleInterviewer marks a turn spoken by the simulated interviewer
	RoleInterviewer Role = "interviewer"
	// RoleCandidate marks a turn spoken by the candidate
	RoleCandidate Role = "candidate"
)

// Turn is one exchange unit in the interview transcript.
// Turns are immutable once appended; the ordered sequence forms the transcript.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Difficulty is the interview difficulty level
type Difficulty string

// Difficulty levels
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Category is the interview question category
type Category string

// Interview categories
const (
	CategoryTechnical  Category = "technical"
	CategoryBehavioral Category = "behavioral"
	CategoryScenario   Category = "scenario"
	CategoryHRFit      Category = "hr-fit"
)

// Duration is the nominal interview length
type Duration string

// Interview durations
const (
	Duration15m Duration = "15m"
	Duration30m Duration = "30m"
	Duration60m Duration = "60m"
)

// Style selects the interviewer persona
type Style string

// Interviewer styles
const (
	StyleFAANG        Style = "faang"
	StyleStartup      Style = "startup"
	StyleServiceBased Style = "service-based"
)

// InterviewConfig holds the per-session interview preferences.
// It is set once before the chat loop starts and is immutable during
// an active chat; changing it means starting a new session.
type InterviewConfig struct {
	Difficulty Difficulty `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Category   Category   `json:"category" validate:"required,oneof=technical behavioral scenario hr-fit"`
	Duration   Duration   `json:"duration" validate:"required,oneof=15m 30m 60m"`
	Style      Style      `json:"style" validate:"required,oneof=faang startup service-based"`
}

// DefaultInterviewConfig returns the configuration used when the caller
// supplies none: an intermediate technical 30-minute FAANG-style interview.
func DefaultInterviewConfig() InterviewConfig {
	return InterviewConfig{
		Difficulty: DifficultyIntermediate,
		Category:   CategoryTechnical,
		Duration:   Duration30m,
		Style:      StyleFAANG,
	}
}

// Validate validates the InterviewConfig using the validator.
func (c *InterviewConfig) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
