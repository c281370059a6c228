package moderation

import (
	"github.com/lueurxax/inkguard/internal/core/domain"
	"github.com/lueurxax/inkguard/internal/process/filters"
)

// MentalHealthMessage is the support-resource text shown when the
// mental-health matcher fires.
const MentalHealthMessage = "It sounds like you might be going through a hard time. You're not alone. " +
	"Consider reaching out to a mental health professional or a crisis line such as 988 (US)."

var (
	ruleEmpty = domain.Rule{
		ID: "empty", Category: domain.CategoryLength, Severity: domain.SeverityError,
		Message: "Content cannot be empty",
	}
	ruleTooShort = domain.Rule{
		ID: "too_short", Category: domain.CategoryLength, Severity: domain.SeverityWarning,
	}
	ruleTooLong = domain.Rule{
		ID: "too_long", Category: domain.CategoryLength, Severity: domain.SeverityError,
	}
	ruleHashtagLimit = domain.Rule{
		ID: "hashtag_limit", Category: domain.CategoryHashtagRule, Severity: domain.SeverityError,
	}
	ruleHashtagQuality = domain.Rule{
		ID: "hashtag_quality", Category: domain.CategoryHashtagRule, Severity: domain.SeverityWarning,
	}
)

// input selects which view of the text a check reads.
type input int

const (
	inputRaw input = iota
	inputSanitized
)

// check binds a rule to the matcher that triggers it.
type check struct {
	rule  domain.Rule
	input input
	match func(string) bool
}

// buildChecks returns the rule table in reporting order. Length and hashtag
// rules carry computed messages and are applied outside the table.
func buildChecks(m *filters.Matchers) []check {
	return []check{
		{
			rule: domain.Rule{ID: "profanity", Category: domain.CategoryProfanity, Severity: domain.SeverityCritical,
				Message: "Content contains profanity"},
			input: inputSanitized, match: m.ContainsProfanity,
		},
		{
			rule: domain.Rule{ID: "hate_speech", Category: domain.CategoryHateSpeech, Severity: domain.SeverityCritical,
				Message: "Content contains hate speech"},
			input: inputSanitized, match: m.ContainsHateSpeech,
		},
		{
			rule: domain.Rule{ID: "nsfw", Category: domain.CategoryNSFW, Severity: domain.SeverityCritical,
				Message: "Content contains sexual or NSFW material"},
			input: inputSanitized, match: m.ContainsNSFW,
		},
		{
			rule: domain.Rule{ID: "violence", Category: domain.CategoryViolence, Severity: domain.SeverityCritical,
				Message: "Content contains violent language"},
			input: inputSanitized, match: m.ContainsViolence,
		},
		{
			rule: domain.Rule{ID: "forbidden_topic", Category: domain.CategoryForbiddenTopic, Severity: domain.SeverityCritical,
				Message: "Content references a forbidden topic"},
			input: inputSanitized, match: m.ContainsForbiddenTopic,
		},
		{
			// Sets MentalHealthFlag and never blocks.
			rule: domain.Rule{ID: "mental_health", Category: domain.CategoryMentalHealth, Severity: domain.SeverityWarning,
				Message: MentalHealthMessage},
			input: inputSanitized, match: m.ContainsMentalHealthRisk,
		},
		{
			rule: domain.Rule{ID: "punctuation_only", Category: domain.CategoryPunctuationOnly, Severity: domain.SeverityError,
				Message: "Content cannot consist only of punctuation"},
			input: inputRaw, match: filters.IsPunctuationOnly,
		},
		{
			rule: domain.Rule{ID: "emoji_spam", Category: domain.CategoryEmojiSpam, Severity: domain.SeverityWarning,
				Message: "Too many emojis. Consider adding more text."},
			input: inputRaw, match: filters.IsEmojiSpam,
		},
		{
			rule: domain.Rule{ID: "char_spam", Category: domain.CategoryCharSpam, Severity: domain.SeverityWarning,
				Message: "Avoid repeating the same character many times"},
			input: inputRaw, match: filters.IsRepeatedCharSpam,
		},
		{
			rule: domain.Rule{ID: "spam_phrase", Category: domain.CategorySpam, Severity: domain.SeverityWarning,
				Message: "Content looks like spam or machine-generated text"},
			input: inputSanitized, match: m.LooksLikeSpam,
		},
		{
			rule: domain.Rule{ID: "link", Category: domain.CategoryLink, Severity: domain.SeverityError,
				Message: "Links are not allowed in inks"},
			input: inputRaw, match: filters.ContainsLink,
		},
		{
			rule: domain.Rule{ID: "clickbait", Category: domain.CategoryClickbait, Severity: domain.SeverityWarning,
				Message: "Content looks like clickbait"},
			input: inputSanitized, match: m.IsClickbait,
		},
		{
			rule: domain.Rule{ID: "impersonation", Category: domain.CategoryImpersonation, Severity: domain.SeverityWarning,
				Message: "Content may impersonate another person or official account"},
			input: inputSanitized, match: m.ContainsImpersonation,
		},
		{
			rule: domain.Rule{ID: "excessive_caps", Category: domain.CategoryStyle, Severity: domain.SeverityWarning,
				Message: "Avoid using excessive capital letters"},
			input: inputRaw, match: filters.HasExcessiveCaps,
		},
		{
			rule: domain.Rule{ID: "special_chars", Category: domain.CategoryStyle, Severity: domain.SeverityWarning,
				Message: "Too many special characters"},
			input: inputRaw, match: filters.HasExcessiveSpecialChars,
		},
	}
}
