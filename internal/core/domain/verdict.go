package domain

// DetectedTypeUnknown is the only content type the current rule set reports.
const DetectedTypeUnknown = "unknown"

// Verdict is the result of one moderation pass over a piece of text.
type Verdict struct {
	Errors           []string  `json:"errors"`
	Warnings         []string  `json:"warnings"`
	CriticalIssues   []string  `json:"critical_issues"`
	MentalHealthFlag bool      `json:"mental_health_flag"`
	Hashtags         []string  `json:"hashtags"`
	Hits             []RuleHit `json:"-"`
}

// NewVerdict returns a Verdict with non-nil slices.
func NewVerdict() Verdict {
	return Verdict{
		Errors:         []string{},
		Warnings:       []string{},
		CriticalIssues: []string{},
		Hashtags:       []string{},
	}
}

// Blocked reports whether the verdict forbids publishing.
func (v Verdict) Blocked() bool {
	return len(v.Errors) > 0 || len(v.CriticalIssues) > 0
}

// NeedsConfirmation reports whether publishing is allowed only after the user saw warnings.
func (v Verdict) NeedsConfirmation() bool {
	return !v.Blocked() && len(v.Warnings) > 0
}

// Add appends the rule message to the list matching its severity.
func (v *Verdict) Add(rule Rule) {
	v.AddMessage(rule, rule.Message)
}

// AddMessage is Add with a message computed at match time.
func (v *Verdict) AddMessage(rule Rule, message string) {
	switch rule.Severity {
	case SeverityCritical:
		v.CriticalIssues = append(v.CriticalIssues, message)
	case SeverityError:
		v.Errors = append(v.Errors, message)
	default:
		v.Warnings = append(v.Warnings, message)
	}

	v.Hits = append(v.Hits, RuleHit{RuleID: rule.ID, Category: rule.Category, Severity: rule.Severity})
}

// HashtagReport is the standalone result of the hashtag rule engine.
type HashtagReport struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Hashtags []string `json:"hashtags"`
}

// Hashtag is a single #tag found in the text.
type Hashtag struct {
	Raw        string `json:"raw"`
	Normalized string `json:"normalized"`
}

// InkValidation is the shape the editor consumes. Nudges and DetectedType
// are reserved and always empty / "unknown".
type InkValidation struct {
	Errors           []string `json:"errors"`
	Warnings         []string `json:"warnings"`
	Nudges           []string `json:"nudges"`
	DetectedType     string   `json:"detected_type"`
	CriticalIssues   []string `json:"critical_issues"`
	MentalHealthFlag bool     `json:"mental_health_flag"`
	Hashtags         []string `json:"hashtags"`
}

// InkValidationFromVerdict converts a Verdict to the editor shape.
func InkValidationFromVerdict(v Verdict) InkValidation {
	return InkValidation{
		Errors:           nonNil(v.Errors),
		Warnings:         nonNil(v.Warnings),
		Nudges:           []string{},
		DetectedType:     DetectedTypeUnknown,
		CriticalIssues:   nonNil(v.CriticalIssues),
		MentalHealthFlag: v.MentalHealthFlag,
		Hashtags:         nonNil(v.Hashtags),
	}
}

// Verdict converts the editor shape back into a Verdict.
func (iv InkValidation) Verdict() Verdict {
	return Verdict{
		Errors:           nonNil(iv.Errors),
		Warnings:         nonNil(iv.Warnings),
		CriticalIssues:   nonNil(iv.CriticalIssues),
		MentalHealthFlag: iv.MentalHealthFlag,
		Hashtags:         nonNil(iv.Hashtags),
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
