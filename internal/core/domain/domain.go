// Package domain holds the types shared by the moderation pipeline:
// rules, verdicts, hashtag reports, score breakdowns and limits.
package domain

// Category groups rules by what they detect.
type Category string

const (
	CategoryProfanity       Category = "profanity"
	CategoryHateSpeech      Category = "hate_speech"
	CategoryNSFW            Category = "nsfw"
	CategoryViolence        Category = "violence"
	CategoryForbiddenTopic  Category = "forbidden_topic"
	CategoryImpersonation   Category = "impersonation"
	CategoryClickbait       Category = "clickbait"
	CategorySpam            Category = "spam"
	CategoryMentalHealth    Category = "mental_health"
	CategoryLink            Category = "link"
	CategoryEmojiSpam       Category = "emoji_spam"
	CategoryCharSpam        Category = "char_spam"
	CategoryPunctuationOnly Category = "punctuation_only"
	CategoryHashtagRule     Category = "hashtag_rule"
	CategoryLength          Category = "length"
	CategoryStyle           Category = "style"
)

// Severity decides where a rule hit lands in a Verdict.
type Severity string

const (
	// SeverityError blocks publishing.
	SeverityError Severity = "error"
	// SeverityWarning is shown to the user but does not block.
	SeverityWarning Severity = "warning"
	// SeverityCritical blocks publishing and gets stronger UI treatment.
	SeverityCritical Severity = "critical"
)

// Rule is a named moderation rule. Rules are process-wide constants.
type Rule struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// RuleHit records that a rule fired during one validation pass.
type RuleHit struct {
	RuleID   string   `json:"rule_id"`
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
}

// Flow identifies the editor that asked for validation.
type Flow string

const (
	FlowCreate Flow = "create"
	FlowEdit   Flow = "edit"
)

// ParseFlow maps a flow name to a Flow. Empty input means FlowCreate.
func ParseFlow(name string) (Flow, bool) {
	switch Flow(name) {
	case "", FlowCreate:
		return FlowCreate, true
	case FlowEdit:
		return FlowEdit, true
	default:
		return "", false
	}
}

// Limits are the tunable bounds exposed to the UI.
type Limits struct {
	MaxCharacters    int `json:"max_characters"`
	MinCharacters    int `json:"min_characters"`
	MaxHashtags      int `json:"max_hashtags"`
	MaxHashtagLength int `json:"max_hashtag_length"`
}

// Default limits used by the create flow.
const (
	DefaultMaxCharacters    = 5000
	DefaultMinCharacters    = 10
	DefaultMaxHashtags      = 2
	DefaultMaxHashtagLength = 20
)

// DefaultLimits returns the built-in limits.
func DefaultLimits() Limits {
	return Limits{
		MaxCharacters:    DefaultMaxCharacters,
		MinCharacters:    DefaultMinCharacters,
		MaxHashtags:      DefaultMaxHashtags,
		MaxHashtagLength: DefaultMaxHashtagLength,
	}
}

// WithDefaults fills zero or negative fields from DefaultLimits.
func (l Limits) WithDefaults() Limits {
	def := DefaultLimits()

	if l.MaxCharacters <= 0 {
		l.MaxCharacters = def.MaxCharacters
	}

	if l.MinCharacters < 0 {
		l.MinCharacters = def.MinCharacters
	}

	if l.MaxHashtags <= 0 {
		l.MaxHashtags = def.MaxHashtags
	}

	if l.MaxHashtagLength <= 0 {
		l.MaxHashtagLength = def.MaxHashtagLength
	}

	return l
}
