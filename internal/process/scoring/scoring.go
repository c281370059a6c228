// Package scoring turns a piece of ink text and its verdict into a bounded XP
// reward, and estimates reading time.
package scoring

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/cloudflare/ahocorasick"

	"github.com/lueurxax/inkguard/internal/core/domain"
	"github.com/lueurxax/inkguard/internal/process/lexicon"
)

const (
	sentenceThreshold = 3
	sentenceBonus     = 10

	emotionalWordBonus = 3
	questionBonus      = 5

	punctuationVarietyThreshold = 3
	punctuationVarietyBonus     = 10

	warningPenalty = 2
	errorPenalty   = 20
)

type tier struct {
	min   int
	bonus int
}

// Tiers are additive: 200 words earn all four word bonuses.
var (
	wordTiers = []tier{{10, 10}, {50, 20}, {100, 30}, {200, 40}}
	charTiers = []tier{{100, 5}, {500, 15}, {1000, 25}}
)

const scoredPunctuation = `.,!?;:'"-()`

// Scorer is read-only after New and safe for concurrent use.
type Scorer struct {
	emotional *ahocorasick.Matcher
}

// New builds a Scorer from the emotional-word table of lex. A nil lex uses
// the embedded lexicon.
func New(lex *lexicon.Lexicon) *Scorer {
	if lex == nil {
		lex = lexicon.Default()
	}

	s := &Scorer{}
	if len(lex.EmotionalWords) > 0 {
		s.emotional = ahocorasick.NewStringMatcher(lex.EmotionalWords)
	}

	return s
}

var (
	defaultOnce   sync.Once
	defaultScorer *Scorer
)

func defaultInstance() *Scorer {
	defaultOnce.Do(func() {
		defaultScorer = New(nil)
	})

	return defaultScorer
}

// CalculateXP scores raw with the embedded lexicon.
func CalculateXP(raw string, verdict domain.Verdict) int {
	return defaultInstance().CalculateXP(raw, verdict)
}

// Breakdown scores raw with the embedded lexicon and returns every component.
func Breakdown(raw string, verdict domain.Verdict) domain.ScoreBreakdown {
	return defaultInstance().Breakdown(raw, verdict)
}

// CalculateXP returns the XP for raw, in [0, domain.MaxXP].
func (s *Scorer) CalculateXP(raw string, verdict domain.Verdict) int {
	return s.Breakdown(raw, verdict).Total
}

// Breakdown computes every score component. A verdict that blocks publishing
// (errors or critical issues) vetoes the total to 0; the components are still
// reported.
func (s *Scorer) Breakdown(raw string, verdict domain.Verdict) domain.ScoreBreakdown {
	c := domain.ScoreComponents{
		WordBonus:      tierBonus(wordTiers, len(strings.Fields(raw))),
		CharBonus:      tierBonus(charTiers, utf8.RuneCountInString(raw)),
		EmotionalBonus: emotionalWordBonus * s.emotionalHits(raw),
		QuestionBonus:  questionBonus * strings.Count(raw, "?"),
		WarningPenalty: warningPenalty * len(verdict.Warnings),
		ErrorPenalty:   errorPenalty * len(verdict.Errors),
	}

	if countSentences(raw) >= sentenceThreshold {
		c.SentenceBonus = sentenceBonus
	}

	if punctuationTypes(raw) >= punctuationVarietyThreshold {
		c.PunctuationVarietyBonus = punctuationVarietyBonus
	}

	if verdict.Blocked() {
		return domain.ScoreBreakdown{Total: 0, Components: c}
	}

	total := c.WordBonus + c.CharBonus + c.SentenceBonus + c.EmotionalBonus +
		c.QuestionBonus + c.PunctuationVarietyBonus - c.WarningPenalty - c.ErrorPenalty

	return domain.ScoreBreakdown{Total: clamp(total, 0, domain.MaxXP), Components: c}
}

// emotionalHits counts distinct emotional words occurring anywhere in raw,
// substrings included ("lovely" counts for "love").
func (s *Scorer) emotionalHits(raw string) int {
	if s.emotional == nil || raw == "" {
		return 0
	}

	hits := s.emotional.MatchThreadSafe([]byte(strings.ToLower(raw)))

	distinct := make(map[int]struct{}, len(hits))
	for _, h := range hits {
		distinct[h] = struct{}{}
	}

	return len(distinct)
}

func tierBonus(tiers []tier, n int) int {
	bonus := 0

	for _, t := range tiers {
		if n >= t.min {
			bonus += t.bonus
		}
	}

	return bonus
}

func countSentences(raw string) int {
	n := 0

	for _, part := range strings.FieldsFunc(raw, isSentenceEnd) {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}

	return n
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func punctuationTypes(raw string) int {
	seen := make(map[rune]struct{})

	for _, r := range raw {
		if strings.ContainsRune(scoredPunctuation, r) {
			seen[r] = struct{}{}
		}
	}

	return len(seen)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
