// Package sanitize produces the normalized copy of user text that lexical
// matchers run against. The text shown to the user is never modified.
//
// Normalization is best-effort: it undoes common evasions (case, full-width
// letters, accents, leetspeak, "s p a c e d" letters) but is not a security
// boundary. Markup pasted from rich editors is reduced to its text first.
package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/lueurxax/inkguard/internal/platform/htmlutils"
)

// minSpacedRun is the number of single-letter tokens that must follow each
// other before they are joined back into one word.
const minSpacedRun = 3

var leetReplacements = map[rune]rune{
	'0': 'o',
	'1': 'i',
	'3': 'e',
	'4': 'a',
	'5': 's',
	'7': 't',
	'@': 'a',
	'$': 's',
}

var quoteReplacer = strings.NewReplacer("\u2018", "'", "\u2019", "'", "\u201c", `"`, "\u201d", `"`)

// Sanitize returns the matcher view of text. It is pure and total.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	text = htmlutils.StripHTMLTags(text)
	text = quoteReplacer.Replace(text)
	text = norm.NFKD.String(text)
	text = stripCombiningMarks(text)
	text = norm.NFC.String(text)
	// Casers keep state, so every call gets its own.
	text = cases.Fold().String(text)

	tokens := strings.Fields(text)
	for i, tok := range tokens {
		tokens[i] = undoLeet(tok)
	}

	tokens = joinSpacedLetters(tokens)

	return strings.Join(tokens, " ")
}

// CollapseWhitespace trims text and replaces every whitespace run with a single space.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func stripCombiningMarks(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if unicode.Is(unicode.Mn, r) {
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// undoLeet rewrites leet characters inside tokens that already contain a
// letter. Numbers and prices are left alone.
func undoLeet(token string) string {
	if !hasLetter(token) {
		return token
	}

	var b strings.Builder
	b.Grow(len(token))

	runes := []rune(token)
	for i, r := range runes {
		repl, ok := leetReplacements[r]
		if !ok {
			b.WriteRune(r)
			continue
		}

		// Keep a trailing '$' or '@' that is really punctuation, e.g. "cash$" stays readable.
		if (r == '@' || r == '$') && !isLetterNeighbour(runes, i) {
			b.WriteRune(r)
			continue
		}

		b.WriteRune(repl)
	}

	return b.String()
}

func isLetterNeighbour(runes []rune, i int) bool {
	if i > 0 && unicode.IsLetter(runes[i-1]) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLetter(runes[i+1])
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}

	return false
}

// joinSpacedLetters merges runs like "f u c k" or "f.u.c.k" into "fuck".
// Runs shorter than minSpacedRun stay untouched so "a b" is preserved.
func joinSpacedLetters(tokens []string) []string {
	out := make([]string, 0, len(tokens))

	var run []string

	flush := func() {
		// "a j e r k": the leading article is a word of its own.
		for len(run) > minSpacedRun && isStandaloneLetter(run[0]) {
			out = append(out, run[0])
			run = run[1:]
		}

		if len(run) >= minSpacedRun {
			out = append(out, strings.Join(run, ""))
		} else {
			out = append(out, run...)
		}

		run = nil
	}

	for _, tok := range tokens {
		if isSingleLetter(tok) {
			run = append(run, tok)
			continue
		}

		flush()
		out = append(out, undot(tok))
	}

	flush()

	return out
}

func isStandaloneLetter(tok string) bool {
	return tok == "a" || tok == "i"
}

// undot turns "f.u.c.k" or "f-u-c-k." into "fuck". Tokens that are not
// strictly letter-separator-letter keep their original form.
func undot(tok string) string {
	runes := []rune(tok)
	if len(runes) < 2*minSpacedRun-1 {
		return tok
	}

	var b strings.Builder

	letters := 0

	for i, r := range runes {
		if i%2 == 0 {
			if !unicode.IsLetter(r) {
				return tok
			}

			b.WriteRune(r)

			letters++

			continue
		}

		if !isSeparator(r) {
			return tok
		}
	}

	if letters < minSpacedRun {
		return tok
	}

	return b.String()
}

func isSeparator(r rune) bool {
	switch r {
	case '.', '-', '_', '*', '|', '/', '\\', ',', '+', '~':
		return true
	default:
		return false
	}
}

func isSingleLetter(tok string) bool {
	runes := []rune(tok)

	return len(runes) == 1 && unicode.IsLetter(runes[0])
}
