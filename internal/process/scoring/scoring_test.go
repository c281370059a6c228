package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lueurxax/inkguard/internal/core/domain"
	"github.com/lueurxax/inkguard/internal/process/lexicon"
)

const calmText = "The river was calm and bright today. Birds sang along the quiet green banks. " +
	"Evening came slowly over the distant hills."

func TestBreakdown_MinimumBoundary(t *testing.T) {
	got := Breakdown(calmText, domain.NewVerdict())

	assert.Equal(t, 10, got.Components.WordBonus)
	assert.Equal(t, 5, got.Components.CharBonus)
	assert.Equal(t, 10, got.Components.SentenceBonus)
	assert.Equal(t, 3, got.Components.EmotionalBonus)
	assert.Equal(t, 0, got.Components.PunctuationVarietyBonus)
	assert.Equal(t, 28, got.Total)
	assert.GreaterOrEqual(t, got.Total, 25)
}

func TestCalculateXP_Clamp(t *testing.T) {
	text := strings.Repeat("Why do we love the quiet morning light? ", 30)

	got := Breakdown(text, domain.NewVerdict())

	assert.Equal(t, 100, got.Components.WordBonus)
	assert.Equal(t, 45, got.Components.CharBonus)
	assert.Equal(t, 150, got.Components.QuestionBonus)
	assert.Equal(t, domain.MaxXP, got.Total)
	assert.Equal(t, domain.MaxXP, CalculateXP(text, domain.NewVerdict()))
}

func TestCalculateXP_Veto(t *testing.T) {
	tests := []struct {
		name    string
		verdict domain.Verdict
	}{
		{"errors", domain.Verdict{Errors: []string{"Links are not allowed in inks"}}},
		{"critical issues", domain.Verdict{CriticalIssues: []string{"Content contains profanity"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0, CalculateXP(calmText, tt.verdict))
		})
	}
}

func TestCalculateXP_WarningPenalty(t *testing.T) {
	clean := CalculateXP(calmText, domain.NewVerdict())
	warned := CalculateXP(calmText, domain.Verdict{Warnings: []string{"a", "b"}})

	assert.Equal(t, clean-4, warned)
}

func TestCalculateXP_NeverNegative(t *testing.T) {
	verdict := domain.Verdict{Warnings: []string{"a", "b", "c"}}

	assert.Equal(t, 0, CalculateXP("tiny", verdict))
}

func TestBreakdown_PunctuationAndQuestions(t *testing.T) {
	got := Breakdown("Really? Yes, truly; it's fine.", domain.NewVerdict())

	assert.Equal(t, 5, got.Components.QuestionBonus)
	assert.Equal(t, 10, got.Components.PunctuationVarietyBonus)
}

func TestBreakdown_EmotionalWordsDistinct(t *testing.T) {
	got := Breakdown("Love, LOVE and lovely hope", domain.NewVerdict())

	assert.Equal(t, 6, got.Components.EmotionalBonus)
}

func TestScorer_CustomLexicon(t *testing.T) {
	lex, err := lexicon.Parse([]byte("emotional_words: [tea]\n"))
	require.NoError(t, err)

	s := New(lex)

	assert.Equal(t, 3, s.Breakdown("green tea please", domain.NewVerdict()).Components.EmotionalBonus)
	assert.Equal(t, 0, s.Breakdown("I love coffee", domain.NewVerdict()).Components.EmotionalBonus)
}

func TestCalculateXP_Idempotent(t *testing.T) {
	verdict := domain.Verdict{Warnings: []string{"w"}}

	assert.Equal(t, CalculateXP(calmText, verdict), CalculateXP(calmText, verdict))
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantMinutes int
		wantWords   int
	}{
		{"empty", "", 0, 0},
		{"one word", "hello", 1, 1},
		{"two hundred words", strings.Repeat("word ", 200), 1, 200},
		{"four hundred words", strings.Repeat("word ", 400), 2, 400},
		{"four hundred and one words", strings.Repeat("word ", 401), 3, 401},
		{"extra whitespace", "  one \n\t two  ", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReadingTime(tt.text)

			assert.Equal(t, tt.wantMinutes, got.Minutes)
			assert.Equal(t, tt.wantWords, got.Words)
		})
	}

	assert.Equal(t, "2 min read", ReadingTime(strings.Repeat("word ", 400)).Text)
}
