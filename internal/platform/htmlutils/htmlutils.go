// Package htmlutils turns rich-editor markup back into plain text.
//
// Inline tags (<b>, <i>, <span>) are dropped so "<b>wo</b>rd" reads as one
// word; block tags (<p>, <br>, <li>) become a space. Anything else in angle
// brackets is text and stays, so "<kill you>" is still matched.
package htmlutils

import (
	"html"
	"regexp"
	"strings"
)

// Attributes must be name="value" pairs; "<i want to die>" is not a tag.
var tagRegex = regexp.MustCompile(`<(/?)([a-zA-Z][a-zA-Z0-9]*)((?:\s+[a-zA-Z_:][-a-zA-Z0-9_:.]*\s*=\s*(?:"[^"]*"|'[^']*'))*)\s*/?>`)

var blockTags = map[string]bool{
	"p":          true,
	"br":         true,
	"div":        true,
	"li":         true,
	"ul":         true,
	"ol":         true,
	"blockquote": true,
	"pre":        true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"hr":         true,
	"tr":         true,
	"td":         true,
}

var inlineTags = map[string]bool{
	"a":      true,
	"b":      true,
	"i":      true,
	"u":      true,
	"s":      true,
	"em":     true,
	"strong": true,
	"span":   true,
	"code":   true,
	"sub":    true,
	"sup":    true,
	"mark":   true,
	"small":  true,
	"del":    true,
	"ins":    true,
	"strike": true,
}

// GetTagName returns the lower-case name of a tag such as "</Div>" or "<br/>".
func GetTagName(fullTag string) string {
	m := tagRegex.FindStringSubmatch(fullTag)
	if m == nil {
		return ""
	}

	return strings.ToLower(m[2])
}

// StripHTMLTags decodes entities and removes known tags, keeping only the
// content. Text without markup is returned unchanged.
func StripHTMLTags(text string) string {
	if !strings.ContainsAny(text, "<&") {
		return text
	}

	text = html.UnescapeString(text)

	return tagRegex.ReplaceAllStringFunc(text, func(tag string) string {
		name := GetTagName(tag)

		switch {
		case blockTags[name]:
			return " "
		case inlineTags[name]:
			return ""
		default:
			return tag
		}
	})
}
