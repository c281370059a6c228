// Package moderation folds the lexical matchers, heuristics and hashtag rules
// into a single Verdict for a piece of ink text.
//
// Validation never fails: every finding is a message in the Verdict, and a
// matcher that panics is treated as "no match".
package moderation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/lueurxax/inkguard/internal/core/domain"
	"github.com/lueurxax/inkguard/internal/platform/observability"
	"github.com/lueurxax/inkguard/internal/process/filters"
	"github.com/lueurxax/inkguard/internal/process/hashtags"
	"github.com/lueurxax/inkguard/internal/process/lexicon"
	"github.com/lueurxax/inkguard/internal/process/sanitize"
)

// Validator is read-only after New and safe for concurrent use.
type Validator struct {
	limits  domain.Limits
	checks  []check
	version string
	logger  *zerolog.Logger
}

// New compiles the matchers for lex and binds them to the rule table.
// A nil lex uses the embedded lexicon; a nil logger discards output.
func New(lex *lexicon.Lexicon, limits domain.Limits, logger *zerolog.Logger) (*Validator, error) {
	if lex == nil {
		lex = lexicon.Default()
	}

	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	m, err := filters.New(lex)
	if err != nil {
		return nil, fmt.Errorf("building matchers: %w", err)
	}

	return &Validator{
		limits:  limits.WithDefaults(),
		checks:  buildChecks(m),
		version: lex.Version,
		logger:  logger,
	}, nil
}

// Limits returns the effective limits.
func (v *Validator) Limits() domain.Limits {
	return v.limits
}

// LexiconVersion returns the version of the lexicon the matchers were built from.
func (v *Validator) LexiconVersion() string {
	return v.version
}

// Policy returns the publish policy for flow.
func (v *Validator) Policy(flow domain.Flow) Policy {
	return NewPolicy(flow, v.limits)
}

// Validate runs the create-flow pipeline over raw.
func (v *Validator) Validate(raw string) domain.Verdict {
	return v.ValidateFlow(raw, domain.FlowCreate)
}

// ValidateFlow runs the pipeline over raw with the policy of flow.
func (v *Validator) ValidateFlow(raw string, flow domain.Flow) domain.Verdict {
	policy := v.Policy(flow)
	start := time.Now()

	verdict := v.run(raw, policy)

	observability.ValidationDuration.WithLabelValues(string(policy.Flow)).Observe(time.Since(start).Seconds())
	observability.Validations.WithLabelValues(string(policy.Flow), outcome(verdict)).Inc()

	for _, hit := range verdict.Hits {
		observability.RuleHits.WithLabelValues(string(hit.Category), string(hit.Severity)).Inc()
	}

	return verdict
}

// ValidateInkContent is ValidateFlow in the shape the editor consumes.
func (v *Validator) ValidateInkContent(raw string, flow domain.Flow) domain.InkValidation {
	return domain.InkValidationFromVerdict(v.ValidateFlow(raw, flow))
}

func (v *Validator) run(raw string, policy Policy) domain.Verdict {
	verdict := domain.NewVerdict()

	if strings.TrimSpace(raw) == "" {
		verdict.Add(ruleEmpty)
		return verdict
	}

	length := utf8.RuneCountInString(raw)

	if length < v.limits.MinCharacters {
		rule := ruleTooShort
		rule.Severity = policy.ShortContent

		verdict.AddMessage(rule, shortMessage(policy, v.limits.MinCharacters))
	}

	if length > v.limits.MaxCharacters {
		verdict.AddMessage(ruleTooLong,
			fmt.Sprintf("Content exceeds maximum length of %d characters", v.limits.MaxCharacters))
	}

	sanitized := sanitize.Sanitize(raw)

	for _, c := range v.checks {
		text := raw
		if c.input == inputSanitized {
			text = sanitized
		}

		if !v.safeMatch(c, text) {
			continue
		}

		verdict.Add(c.rule)

		if c.rule.Category == domain.CategoryMentalHealth {
			verdict.MentalHealthFlag = true
		}
	}

	report := hashtags.Validate(raw, v.limits)

	for _, msg := range report.Errors {
		verdict.AddMessage(ruleHashtagLimit, msg)
	}

	for _, msg := range report.Warnings {
		verdict.AddMessage(ruleHashtagQuality, msg)
	}

	verdict.Hashtags = report.Hashtags

	return verdict
}

func (v *Validator) safeMatch(c check, text string) (hit bool) {
	defer func() {
		if r := recover(); r != nil {
			observability.MatcherPanics.WithLabelValues(c.rule.ID).Inc()
			v.logger.Error().
				Str("rule", c.rule.ID).
				Interface("panic", r).
				Msg("matcher panicked, treating as no match")

			hit = false
		}
	}()

	return c.match(text)
}

func shortMessage(policy Policy, minChars int) string {
	if policy.ShortContent == domain.SeverityError {
		return fmt.Sprintf("Content must be at least %d characters", minChars)
	}

	return fmt.Sprintf("Content is short. Consider writing at least %d characters.", minChars)
}

func outcome(v domain.Verdict) string {
	switch {
	case v.Blocked():
		return observability.OutcomeBlocked
	case len(v.Warnings) > 0:
		return observability.OutcomeWarning
	default:
		return observability.OutcomeClean
	}
}
