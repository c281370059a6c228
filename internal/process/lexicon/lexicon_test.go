package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lueurxax/inkguard/internal/core/errors"
)

func TestDefault(t *testing.T) {
	lex := Default()

	require.NotNil(t, lex)
	assert.NotEmpty(t, lex.Version)

	for table, n := range lex.Counts() {
		assert.Greaterf(t, n, 0, "table %s is empty", table)
	}

	assert.Same(t, lex, Default(), "Default must be loaded once")
}

func TestParse_Normalizes(t *testing.T) {
	lex, err := Parse([]byte(`
version: "test"
profanity:
  - "  Darn  "
  - darn
  - "Heck   It"
  - ""
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"darn", "heck it"}, lex.Profanity)
	assert.Equal(t, 2, lex.Total())
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse([]byte(`version: "x"`))

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrEmptyLexicon))
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("profanity: [unterminated"))

	require.Error(t, err)
}

func TestParse_DefaultsVersion(t *testing.T) {
	lex, err := Parse([]byte("spam:\n  - buy now\n"))

	require.NoError(t, err)
	assert.Equal(t, "unversioned", lex.Version)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: v2\nclickbait:\n  - wow\n"), 0o600))

	lex, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", lex.Version)
	assert.Equal(t, []string{"wow"}, lex.Clickbait)

	def, err := LoadFile("  ")
	require.NoError(t, err)
	assert.Same(t, Default(), def)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	lex, err := Load(strings.NewReader("version: r\nnsfw: [xxx]\n"))

	require.NoError(t, err)
	assert.Equal(t, []string{"xxx"}, lex.NSFW)
}

func TestUsernames(t *testing.T) {
	lex := Default()

	assert.True(t, lex.IsReservedUsername("Admin"))
	assert.True(t, lex.IsReservedUsername(" inkly "))
	assert.False(t, lex.IsReservedUsername("quietwriter"))
	assert.True(t, lex.IsTakenUsername("JOHN"))
	assert.False(t, lex.IsTakenUsername("quietwriter"))
}
