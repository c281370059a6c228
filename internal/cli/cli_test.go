package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const calmText = "The river was calm and bright today. Birds sang along the quiet green banks. " +
	"Evening came slowly over the distant hills."

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return buf.String(), err
}

func TestCheck_QuietAtInfoLevel(t *testing.T) {
	t.Setenv("APP_ENV", "local")
	t.Setenv("LOG_LEVEL", "info")

	stderr := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(calmText))
	cmd.SetArgs([]string{"check"})

	require.NoError(t, cmd.Execute())
	assert.Empty(t, stderr.String())

	t.Setenv("LOG_LEVEL", "debug")

	cmd = NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(calmText))
	cmd.SetArgs([]string{"check"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stderr.String(), "lexicon loaded")
}

func TestCheck_Clean(t *testing.T) {
	out, err := execute(t, calmText, "check")

	require.NoError(t, err)
	assert.Contains(t, out, "flow: create")
	assert.Contains(t, out, "status: ok")
}

func TestCheck_BlockedExitsOne(t *testing.T) {
	out, err := execute(t, "check this out http://example.com", "check", "-")

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "status: blocked")
	assert.Contains(t, out, "  - Links are not allowed in inks")
}

func TestCheck_WarningsNeedConfirmation(t *testing.T) {
	out, err := execute(t, "You won't believe what happened on my walk today", "check")

	require.NoError(t, err)
	assert.Contains(t, out, "status: needs confirmation")
	assert.Contains(t, out, "Content looks like clickbait")
}

func TestCheck_JSON(t *testing.T) {
	out, err := execute(t, "Hi #Poem", "check", "--format", "json", "--flow", "edit")

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var result CheckResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "edit", string(result.Flow))
	assert.False(t, result.CanPublish)
	assert.Equal(t, []string{"poem"}, result.Validation.Hashtags)
}

func TestCheck_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ink.txt")
	require.NoError(t, os.WriteFile(path, []byte(calmText), 0o600))

	_, err := execute(t, "", "check", path)
	require.NoError(t, err)

	_, err = execute(t, "", "check", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCheck_UnknownFlow(t *testing.T) {
	_, err := execute(t, calmText, "check", "--flow", "draft")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestScore_JSON(t *testing.T) {
	out, err := execute(t, calmText, "score", "--format", "json")
	require.NoError(t, err)

	var result ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 28, result.XP)
	assert.Equal(t, 21, result.ReadingTime.Words)
}

func TestScore_Text(t *testing.T) {
	out, err := execute(t, calmText, "score")

	require.NoError(t, err)
	assert.Contains(t, out, "xp: 28 / 200")
	assert.Contains(t, out, "reading time: 1 min read (21 words)")
}

func TestLexicon(t *testing.T) {
	out, err := execute(t, "", "lexicon")

	require.NoError(t, err)
	assert.Contains(t, out, "version: 2026.10.1")
	assert.Contains(t, out, "profanity")
}

func TestLexicon_CustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: custom\nspam: [buy now]\n"), 0o600))

	out, err := execute(t, "", "lexicon", "--lexicon", path, "--format", "json")
	require.NoError(t, err)

	var result LexiconResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "custom", result.Version)
	assert.Equal(t, 1, result.Total)
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "", "lexicon", "--format", "yaml")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitCommandError, GetExitCode(errors.New("boom")))
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "blocked")))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "read", errors.New("eof"))))
}
