// Package filters implements the lexical matchers of the moderation pipeline.
//
// Matchers built from a lexicon run on sanitized text:
//   - Profanity, hate speech, NSFW, violence and forbidden topics
//   - Impersonation and clickbait phrases
//   - AI-generated / spam phrases
//   - Mental-health risk phrases
//
// The heuristics in heuristics.go run on raw text, since sanitizing would
// hide the signals they look for.
//
// Matching is word-boundary based and best-effort; it is not a security boundary.
package filters

import (
	"fmt"
	"regexp"
	"strings"

	apperrors "github.com/lueurxax/inkguard/internal/core/errors"
	"github.com/lueurxax/inkguard/internal/process/lexicon"
	"github.com/lueurxax/inkguard/internal/process/sanitize"
)

// Matchers holds one compiled matcher per lexicon table.
// It is read-only after New and safe for concurrent use.
type Matchers struct {
	profanity      *termMatcher
	hateSpeech     *termMatcher
	nsfw           *termMatcher
	violence       *termMatcher
	forbiddenTopic *termMatcher
	impersonation  *termMatcher
	clickbait      *termMatcher
	spam           *termMatcher
	mentalHealth   *termMatcher
}

// New compiles matchers for every table of lex.
func New(lex *lexicon.Lexicon) (*Matchers, error) {
	if lex == nil {
		lex = lexicon.Default()
	}

	m := &Matchers{}

	targets := []struct {
		table string
		terms []string
		dst   **termMatcher
	}{
		{lexicon.TableProfanity, lex.Profanity, &m.profanity},
		{lexicon.TableHateSpeech, lex.HateSpeech, &m.hateSpeech},
		{lexicon.TableNSFW, lex.NSFW, &m.nsfw},
		{lexicon.TableViolence, lex.Violence, &m.violence},
		{lexicon.TableForbiddenTopics, lex.ForbiddenTopics, &m.forbiddenTopic},
		{lexicon.TableImpersonation, lex.Impersonation, &m.impersonation},
		{lexicon.TableClickbait, lex.Clickbait, &m.clickbait},
		{lexicon.TableSpam, lex.Spam, &m.spam},
		{lexicon.TableMentalHealth, lex.MentalHealth, &m.mentalHealth},
	}

	for _, target := range targets {
		tm, err := compileTerms(target.terms)
		if err != nil {
			return nil, fmt.Errorf("compiling %s: %w", target.table, err)
		}

		*target.dst = tm
	}

	return m, nil
}

// MustNew is New for the embedded lexicon, which is covered by tests.
func MustNew(lex *lexicon.Lexicon) *Matchers {
	m, err := New(lex)
	if err != nil {
		panic(err)
	}

	return m
}

func (m *Matchers) ContainsProfanity(sanitized string) bool {
	return m.profanity.match(sanitized)
}

func (m *Matchers) ContainsHateSpeech(sanitized string) bool {
	return m.hateSpeech.match(sanitized)
}

func (m *Matchers) ContainsNSFW(sanitized string) bool {
	return m.nsfw.match(sanitized)
}

func (m *Matchers) ContainsViolence(sanitized string) bool {
	return m.violence.match(sanitized)
}

func (m *Matchers) ContainsForbiddenTopic(sanitized string) bool {
	return m.forbiddenTopic.match(sanitized)
}

func (m *Matchers) ContainsImpersonation(sanitized string) bool {
	return m.impersonation.match(sanitized)
}

func (m *Matchers) IsClickbait(sanitized string) bool {
	return m.clickbait.match(sanitized)
}

// LooksLikeSpam detects engagement-bait and leftover AI assistant phrasing.
func (m *Matchers) LooksLikeSpam(sanitized string) bool {
	return m.spam.match(sanitized)
}

// ContainsMentalHealthRisk detects phrases that suggest the author may be at risk.
// A hit never blocks publishing; see the moderation package.
func (m *Matchers) ContainsMentalHealthRisk(sanitized string) bool {
	return m.mentalHealth.match(sanitized)
}

// termMatcher is a single alternation regexp over a table. A nil matcher
// (empty table) never matches.
type termMatcher struct {
	re *regexp.Regexp
}

func (t *termMatcher) match(text string) bool {
	if t == nil || t.re == nil || text == "" {
		return false
	}

	return t.re.MatchString(text)
}

// Go's \b only knows ASCII, so boundaries are spelled out with Unicode classes.
const (
	boundaryBefore = `(?:^|[^\p{L}\p{N}_])`
	boundaryAfter  = `(?:$|[^\p{L}\p{N}_])`
)

func compileTerms(terms []string) (*termMatcher, error) {
	alternatives := make([]string, 0, len(terms))

	for _, term := range terms {
		// Terms go through the same normalization as the text they are matched against.
		clean := sanitize.Sanitize(term)
		if clean == "" {
			continue
		}

		words := strings.Fields(clean)
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}

		alternatives = append(alternatives, strings.Join(words, `\s+`))
	}

	if len(alternatives) == 0 {
		return &termMatcher{}, nil
	}

	re, err := regexp.Compile(`(?i)` + boundaryBefore + `(?:` + strings.Join(alternatives, "|") + `)` + boundaryAfter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidTerm, err)
	}

	return &termMatcher{re: re}, nil
}
