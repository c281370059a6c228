package domain

// MaxXP is the upper bound of a score.
const MaxXP = 200

// ScoreComponents lists every term that contributed to a score.
// Penalties are stored as positive numbers and subtracted.
type ScoreComponents struct {
	WordBonus               int `json:"word_bonus"`
	CharBonus               int `json:"char_bonus"`
	SentenceBonus           int `json:"sentence_bonus"`
	EmotionalBonus          int `json:"emotional_bonus"`
	QuestionBonus           int `json:"question_bonus"`
	PunctuationVarietyBonus int `json:"punctuation_variety_bonus"`
	WarningPenalty          int `json:"warning_penalty"`
	ErrorPenalty            int `json:"error_penalty"`
}

// ScoreBreakdown is a bounded XP score with its components.
type ScoreBreakdown struct {
	Total      int             `json:"total"`
	Components ScoreComponents `json:"components"`
}

// ReadingTime is an estimate of how long text takes to read.
type ReadingTime struct {
	Text    string `json:"text"`
	Minutes int    `json:"minutes"`
	Words   int    `json:"words"`
}
