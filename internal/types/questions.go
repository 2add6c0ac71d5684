package types

// QuestionType categorizes a generated interview question
type QuestionType string

// Generated question types
const (
	QuestionBehavioral   QuestionType = "behavioral"
	QuestionTechnical    QuestionType = "technical"
	QuestionSituational  QuestionType = "situational"
	QuestionCoding       QuestionType = "coding"
	QuestionSystemDesign QuestionType = "system-design"
	QuestionCultureFit   QuestionType = "culture-fit"
)

// QuestionDifficulty is the per-question difficulty hint
type QuestionDifficulty string

// Generated question difficulties
const (
	QuestionEasy   QuestionDifficulty = "easy"
	QuestionMedium QuestionDifficulty = "medium"
	QuestionHard   QuestionDifficulty = "hard"
)

// ExperienceLevel is the model's estimate of candidate seniority
type ExperienceLevel string

// Experience level hints
const (
	LevelJunior  ExperienceLevel = "junior"
	LevelMid     ExperienceLevel = "mid"
	LevelSenior  ExperienceLevel = "senior"
	LevelUnknown ExperienceLevel = "unknown"
)

// GeneratedQuestion is a single tailored interview question with its
// rationale and suggested follow-ups. IDs are unique within one QuestionSet.
type GeneratedQuestion struct {
	ID         int                `json:"id"`
	Text       string             `json:"text"`
	Type       QuestionType       `json:"type"`
	Difficulty QuestionDifficulty `json:"difficulty"`
	Rationale  string             `json:"rationale"`
	FollowUps  []string           `json:"follow_ups"`
}

// QuestionSet is the immutable batch output of the question generation
// operation. One request yields the whole set; there is no incremental
// mutation. The returned question count is not guaranteed to equal the
// requested count and callers must tolerate a mismatch.
type QuestionSet struct {
	JobRole             string              `json:"job_role"`
	ExperienceLevelHint ExperienceLevel     `json:"experience_level_hint"`
	Questions           []GeneratedQuestion `json:"questions"`
}

// QuestionMix holds minimum per-category question counts for the
// generation operation. Zero values mean no minimum for that category.
// The model is trusted to honor the mix; no local enforcement is done.
type QuestionMix struct {
	Behavioral  int `json:"behavioral"`
	Technical   int `json:"technical"`
	Situational int `json:"situational"`
	Coding      int `json:"coding"`
}
