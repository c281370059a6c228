package filters

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/lueurxax/inkguard/internal/core/links/linkextract"
)

const (
	emojiSpamCount    = 10
	emojiSpamMinCount = 3
	emojiSpamRatio    = 0.3

	repeatedCharRun = 5

	capsWordThreshold = 3

	specialCharRatio = 0.3
)

var capsWordRegex = regexp.MustCompile(`\b[A-Z]{2,}\b`)

// Characters that are ordinary in prose and never count as "special".
const proseSymbols = `.,!?'"-:;()#@&/`

// IsEmojiSpam reports emoji-heavy text: either many emoji in total, or a few
// emoji that make up a large share of the visible characters.
func IsEmojiSpam(text string) bool {
	emoji, visible := 0, 0

	for _, r := range text {
		if unicode.IsSpace(r) || isEmojiModifier(r) {
			continue
		}

		visible++

		if IsEmoji(r) {
			emoji++
		}
	}

	if emoji >= emojiSpamCount {
		return true
	}

	return emoji >= emojiSpamMinCount && float64(emoji) > emojiSpamRatio*float64(visible)
}

// IsRepeatedCharSpam reports a run of the same non-space character
// repeatedCharRun or more times ("sooooo", "!!!!!"). Digits never count,
// so "100000 readers" is fine.
func IsRepeatedCharSpam(text string) bool {
	count := 0
	prev := rune(-1)

	for _, r := range text {
		if unicode.IsSpace(r) || unicode.IsDigit(r) {
			count = 0
			prev = -1

			continue
		}

		if r == prev {
			count++
			if count >= repeatedCharRun {
				return true
			}

			continue
		}

		count = 1
		prev = r
	}

	return false
}

// IsPunctuationOnly reports non-empty text without letters, digits or emoji.
func IsPunctuationOnly(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	for _, r := range trimmed {
		switch {
		case unicode.IsSpace(r), isEmojiModifier(r):
			continue
		case unicode.IsLetter(r), unicode.IsNumber(r), IsEmoji(r):
			return false
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			continue
		default:
			return false
		}
	}

	return true
}

// HasExcessiveCaps reports three or more ALL-CAPS words.
func HasExcessiveCaps(text string) bool {
	return len(capsWordRegex.FindAllStringIndex(text, capsWordThreshold)) >= capsWordThreshold
}

// HasExcessiveSpecialChars reports text where more than 30% of the characters
// are neither letters, digits, whitespace nor ordinary prose punctuation.
func HasExcessiveSpecialChars(text string) bool {
	total, special := 0, 0

	for _, r := range text {
		total++

		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) || strings.ContainsRune(proseSymbols, r) {
			continue
		}

		special++
	}

	if total == 0 {
		return false
	}

	return float64(special) > specialCharRatio*float64(total)
}

// ContainsLink reports URLs, www hosts, e-mail addresses and bare domains.
func ContainsLink(text string) bool {
	return linkextract.ContainsLink(text)
}

// IsEmoji reports pictographic runes: emoticons, pictographs, transport
// symbols, dingbats, flags and the misc-symbol blocks.
func IsEmoji(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r >= 0x2B00 && r <= 0x2BFF:
		return true
	case r == 0x00A9 || r == 0x00AE || r == 0x203C || r == 0x2049 || r == 0x2122:
		return true
	default:
		return false
	}
}

// isEmojiModifier covers joiners and selectors that only decorate a preceding emoji.
func isEmojiModifier(r rune) bool {
	return r == 0x200D || r == 0xFE0F || r == 0xFE0E || (r >= 0x1F3FB && r <= 0x1F3FF)
}

// CountEmoji returns the number of emoji in text, ignoring joiners and modifiers.
func CountEmoji(text string) int {
	n := 0

	for _, r := range text {
		if IsEmoji(r) && !isEmojiModifier(r) {
			n++
		}
	}

	return n
}
