// Package hashtags extracts #tags from ink text and applies the hashtag
// rules: a maximum count, plus warnings for duplicates, over-long tags and
// number-only tags.
package hashtags

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lueurxax/inkguard/internal/core/domain"
)

var hashtagRegex = regexp.MustCompile(`#\w+`)

// Extract returns every hashtag in appearance order, duplicates included.
func Extract(text string) []domain.Hashtag {
	matches := hashtagRegex.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	tags := make([]domain.Hashtag, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, domain.Hashtag{
			Raw:        m,
			Normalized: strings.ToLower(strings.TrimPrefix(m, "#")),
		})
	}

	return tags
}

// Validate applies the hashtag rules to text.
func Validate(text string, limits domain.Limits) domain.HashtagReport {
	limits = limits.WithDefaults()

	report := domain.HashtagReport{
		Errors:   []string{},
		Warnings: []string{},
		Hashtags: []string{},
	}

	tags := Extract(text)
	if len(tags) == 0 {
		return report
	}

	if len(tags) > limits.MaxHashtags {
		report.Errors = append(report.Errors,
			fmt.Sprintf("Maximum %d hashtags allowed. Found %d.", limits.MaxHashtags, len(tags)))
	}

	seen := make(map[string]bool, len(tags))

	var duplicates []string

	for _, tag := range tags {
		if seen[tag.Normalized] {
			if !contains(duplicates, tag.Normalized) {
				duplicates = append(duplicates, tag.Normalized)
			}

			continue
		}

		seen[tag.Normalized] = true
		report.Hashtags = append(report.Hashtags, tag.Normalized)

		body := strings.TrimPrefix(tag.Raw, "#")

		if utf8.RuneCountInString(body) > limits.MaxHashtagLength {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Hashtag %s is too long (max %d characters)", tag.Raw, limits.MaxHashtagLength))
		}

		if isDigits(body) {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Hashtag %s should contain letters, not only numbers", tag.Raw))
		}
	}

	if len(duplicates) > 0 {
		report.Warnings = append(report.Warnings,
			"Duplicate hashtags found: "+strings.Join(duplicates, ", "))
	}

	return report
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func contains(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}

	return false
}
