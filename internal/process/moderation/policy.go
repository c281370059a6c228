package moderation

import (
	"unicode/utf8"

	"github.com/lueurxax/inkguard/internal/core/domain"
)

// Policy holds the per-flow differences between the create and edit editors.
type Policy struct {
	Flow domain.Flow
	// ShortContent is the severity of content below MinCharacters.
	ShortContent domain.Severity
	// RequireMinLength makes CanPublish reject short content on its own.
	RequireMinLength bool
	MinCharacters    int
}

// NewPolicy returns the policy for flow. Unknown flows get the create policy.
func NewPolicy(flow domain.Flow, limits domain.Limits) Policy {
	limits = limits.WithDefaults()

	if flow == domain.FlowEdit {
		return Policy{
			Flow:             domain.FlowEdit,
			ShortContent:     domain.SeverityError,
			RequireMinLength: true,
			MinCharacters:    limits.MinCharacters,
		}
	}

	return Policy{
		Flow:          domain.FlowCreate,
		ShortContent:  domain.SeverityWarning,
		MinCharacters: limits.MinCharacters,
	}
}

// CanPublish reports whether the editor may enable its publish action.
// Warnings never block; they only require a confirmation step.
func (p Policy) CanPublish(raw string, v domain.Verdict) bool {
	if v.Blocked() {
		return false
	}

	if p.RequireMinLength && utf8.RuneCountInString(raw) < p.MinCharacters {
		return false
	}

	return true
}
