// Package lexicon holds the versioned word and phrase tables the moderation
// pipeline matches against. The default tables are embedded in the binary and
// parsed once; a Lexicon is never mutated after it is loaded.
package lexicon

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	apperrors "github.com/lueurxax/inkguard/internal/core/errors"
)

//go:embed lexicon.yaml
var embeddedYAML []byte

// Table names, as used in the YAML file and in Counts.
const (
	TableProfanity         = "profanity"
	TableHateSpeech        = "hate_speech"
	TableNSFW              = "nsfw"
	TableViolence          = "violence"
	TableForbiddenTopics   = "forbidden_topics"
	TableImpersonation     = "impersonation"
	TableClickbait         = "clickbait"
	TableSpam              = "spam"
	TableMentalHealth      = "mental_health"
	TableEmotionalWords    = "emotional_words"
	TableReservedUsernames = "reserved_usernames"
	TableTakenUsernames    = "taken_usernames"
)

// Lexicon is an immutable set of term tables.
type Lexicon struct {
	Version           string   `yaml:"version"`
	Profanity         []string `yaml:"profanity"`
	HateSpeech        []string `yaml:"hate_speech"`
	NSFW              []string `yaml:"nsfw"`
	Violence          []string `yaml:"violence"`
	ForbiddenTopics   []string `yaml:"forbidden_topics"`
	Impersonation     []string `yaml:"impersonation"`
	Clickbait         []string `yaml:"clickbait"`
	Spam              []string `yaml:"spam"`
	MentalHealth      []string `yaml:"mental_health"`
	EmotionalWords    []string `yaml:"emotional_words"`
	ReservedUsernames []string `yaml:"reserved_usernames"`
	TakenUsernames    []string `yaml:"taken_usernames"`
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the embedded lexicon. The embedded file is covered by tests,
// so a parse failure here is a build defect and panics.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		lex, err := Parse(embeddedYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded lexicon: %v", err))
		}

		defaultLex = lex
	})

	return defaultLex
}

// LoadFile reads a lexicon from a YAML file. An empty path returns Default.
func LoadFile(path string) (*Lexicon, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening lexicon %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads a lexicon from r.
func Load(r io.Reader) (*Lexicon, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML and normalizes every table: terms are lower-cased,
// trimmed, de-duplicated and sorted.
func Parse(data []byte) (*Lexicon, error) {
	lex := &Lexicon{}
	if err := yaml.Unmarshal(data, lex); err != nil {
		return nil, fmt.Errorf("decoding lexicon: %w", err)
	}

	for _, table := range lex.tables() {
		*table = normalizeTerms(*table)
	}

	if lex.Total() == 0 {
		return nil, apperrors.ErrEmptyLexicon
	}

	if lex.Version == "" {
		lex.Version = "unversioned"
	}

	return lex, nil
}

// Counts returns the number of terms per table.
func (l *Lexicon) Counts() map[string]int {
	return map[string]int{
		TableProfanity:         len(l.Profanity),
		TableHateSpeech:        len(l.HateSpeech),
		TableNSFW:              len(l.NSFW),
		TableViolence:          len(l.Violence),
		TableForbiddenTopics:   len(l.ForbiddenTopics),
		TableImpersonation:     len(l.Impersonation),
		TableClickbait:         len(l.Clickbait),
		TableSpam:              len(l.Spam),
		TableMentalHealth:      len(l.MentalHealth),
		TableEmotionalWords:    len(l.EmotionalWords),
		TableReservedUsernames: len(l.ReservedUsernames),
		TableTakenUsernames:    len(l.TakenUsernames),
	}
}

// Total returns the number of terms across all tables.
func (l *Lexicon) Total() int {
	total := 0
	for _, n := range l.Counts() {
		total += n
	}

	return total
}

// IsReservedUsername reports whether name is reserved by the platform.
func (l *Lexicon) IsReservedUsername(name string) bool {
	return containsSorted(l.ReservedUsernames, strings.ToLower(strings.TrimSpace(name)))
}

// IsTakenUsername reports whether name is already registered.
func (l *Lexicon) IsTakenUsername(name string) bool {
	return containsSorted(l.TakenUsernames, strings.ToLower(strings.TrimSpace(name)))
}

func (l *Lexicon) tables() []*[]string {
	return []*[]string{
		&l.Profanity, &l.HateSpeech, &l.NSFW, &l.Violence, &l.ForbiddenTopics,
		&l.Impersonation, &l.Clickbait, &l.Spam, &l.MentalHealth, &l.EmotionalWords,
		&l.ReservedUsernames, &l.TakenUsernames,
	}
}

func normalizeTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))

	for _, term := range terms {
		clean := strings.ToLower(strings.Join(strings.Fields(term), " "))
		if clean == "" {
			continue
		}

		if _, ok := seen[clean]; ok {
			continue
		}

		seen[clean] = struct{}{}
		out = append(out, clean)
	}

	sort.Strings(out)

	return out
}

func containsSorted(sorted []string, value string) bool {
	i := sort.SearchStrings(sorted, value)

	return i < len(sorted) && sorted[i] == value
}
